package helpers

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

type S3Object struct {
	Body   []byte
	Header http.Header
}

// FakeS3 is an in-memory, path-style S3 endpoint covering the calls the
// plugins make: PUT, GET and HEAD on objects.
type FakeS3 struct {
	server *httptest.Server

	mu      sync.Mutex
	objects map[string]S3Object
}

func NewFakeS3(t *testing.T) *FakeS3 {
	t.Helper()

	f := &FakeS3{
		objects: map[string]S3Object{},
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)

	return f
}

func (f *FakeS3) URL() string {
	return f.server.URL
}

func (f *FakeS3) handle(w http.ResponseWriter, r *http.Request) {
	bucket, key := splitPath(r.URL.Path)
	if bucket == "" || key == "" {
		writeS3Error(w, http.StatusBadRequest, "InvalidRequest", r.URL.Path)
		return
	}

	switch r.Method {
	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeS3Error(w, http.StatusInternalServerError, "InternalError", err.Error())
			return
		}
		f.mu.Lock()
		f.objects[bucket+"/"+key] = S3Object{Body: body, Header: r.Header.Clone()}
		f.mu.Unlock()
		w.Header().Set("ETag", `"fake-etag"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodGet, http.MethodHead:
		obj, ok := f.Object(bucket, key)
		if !ok {
			if r.Method == http.MethodHead {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			writeS3Error(w, http.StatusNotFound, "NoSuchKey", key)
			return
		}
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(obj.Body)))
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			_, _ = w.Write(obj.Body)
		}
	default:
		writeS3Error(w, http.StatusMethodNotAllowed, "MethodNotAllowed", r.Method)
	}
}

func (f *FakeS3) Object(bucket string, key string) (S3Object, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	obj, ok := f.objects[bucket+"/"+key]
	return obj, ok
}

func (f *FakeS3) UploadObject(bucket string, key string, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.objects[bucket+"/"+key] = S3Object{Body: []byte(body), Header: http.Header{}}
}

func (f *FakeS3) ExpectS3ObjectToExist(t *testing.T, bucket string, key string) S3Object {
	t.Helper()

	obj, ok := f.Object(bucket, key)
	if !ok {
		t.Fatalf(
			"Expected S3 file '%s' to exist in bucket '%s', but it does not",
			key,
			bucket)
	}
	return obj
}

func (f *FakeS3) ExpectS3ObjectToNotExist(t *testing.T, bucket string, key string) {
	t.Helper()

	if _, ok := f.Object(bucket, key); ok {
		t.Fatalf(
			"Expected S3 file '%s' to not exist in bucket '%s', but it does",
			key,
			bucket)
	}
}

func splitPath(path string) (string, string) {
	parts := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)
	if len(parts) != 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func writeS3Error(w http.ResponseWriter, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>%s</Code><Message>%s</Message></Error>`, code, message)
}
