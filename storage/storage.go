package storage

import (
	"fmt"
	"io"
)

const DefaultPresignDays = 7

type FileNotFound struct {
	Key string
}

func (f FileNotFound) Error() string {
	return fmt.Sprintf("could not find file with key '%s'", f.Key)
}

type WriteError struct {
	Key string
	Err error
}

func (w *WriteError) Error() string {
	return fmt.Sprintf("unable to upload '%s': %s", w.Key, w.Err)
}

func (w *WriteError) Unwrap() error { return w.Err }

type AccessError struct {
	Key string
	Err error
}

func (a *AccessError) Error() string {
	return fmt.Sprintf("unable to access '%s': %s", a.Key, a.Err)
}

func (a *AccessError) Unwrap() error { return a.Err }

type PutOptions struct {
	ContentType string
	// ExpDays sets an Expires header that many days out; 0 writes without one.
	ExpDays int
}

//go:generate counterfeiter . Store

type Store interface {
	Get(key string, destination io.Writer) error
	Put(key string, source io.Reader, opts PutOptions) error
	PutFile(key string, path string, opts PutOptions) error
	PresignGet(key string, expDays int) (string, error)
	Bucket() string
}
