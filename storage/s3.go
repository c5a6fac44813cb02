package storage

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	awsSession "github.com/aws/aws-sdk-go/aws/session"
	awss3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/ljfranklin/process-api-plugins/config"
)

type S3 struct {
	bucket   string
	client   *awss3.S3
	uploader *s3manager.Uploader

	// Now is swapped out in tests.
	Now func() time.Time
}

func NewS3(c config.Config) (*S3, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	awsConfig := &aws.Config{
		Region:      aws.String(c.Region),
		Credentials: credentials.NewStaticCredentials(c.AccessKeyID, c.SecretAccessKey, ""),
		MaxRetries:  aws.Int(0),
		Logger:      nil,
	}
	if c.Mock {
		awsConfig.Endpoint = aws.String(c.Endpoint)
		awsConfig.DisableSSL = aws.Bool(true)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	session, err := awsSession.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("error creating s3 session: %s", err)
	}

	s3 := &S3{
		bucket: c.Bucket,
		client: awss3.New(session),
		Now:    time.Now,
	}
	s3.uploader = s3manager.NewUploaderWithClient(s3.client)

	return s3, nil
}

func (s *S3) Bucket() string {
	return s.bucket
}

func (s *S3) Get(key string, destination io.Writer) error {
	params := &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}

	resp, err := s.client.GetObject(params)
	if err != nil {
		if isNotFound(err) {
			return FileNotFound{Key: key}
		}
		return &AccessError{Key: key, Err: err}
	}
	defer resp.Body.Close()

	_, err = io.Copy(destination, resp.Body)
	if err != nil {
		return &AccessError{Key: key, Err: fmt.Errorf("failed to copy download: %s", err)}
	}

	return nil
}

func (s *S3) Put(key string, source io.Reader, opts PutOptions) error {
	params := &s3manager.UploadInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   source,
	}
	if opts.ContentType != "" {
		params.ContentType = aws.String(opts.ContentType)
	}
	if opts.ExpDays > 0 {
		params.Expires = aws.Time(s.Now().UTC().AddDate(0, 0, opts.ExpDays))
	}

	_, err := s.uploader.Upload(params)
	if err != nil {
		return &WriteError{Key: key, Err: err}
	}

	return nil
}

func (s *S3) PutFile(key string, path string, opts PutOptions) error {
	f, err := os.Open(path)
	if err != nil {
		return &WriteError{Key: key, Err: err}
	}
	defer f.Close()

	return s.Put(key, f, opts)
}

// PresignGet returns a GET URL for key valid for expDays days. Zero or
// negative expDays falls back to DefaultPresignDays.
func (s *S3) PresignGet(key string, expDays int) (string, error) {
	if expDays <= 0 {
		expDays = DefaultPresignDays
	}
	now := s.Now().UTC()
	expiration := now.AddDate(0, 0, expDays)

	req, _ := s.client.GetObjectRequest(&awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	url, err := req.Presign(expiration.Sub(now))
	if err != nil {
		return "", &AccessError{Key: key, Err: err}
	}

	return url, nil
}

func isNotFound(err error) bool {
	if reqErr, ok := err.(awserr.RequestFailure); ok && reqErr.StatusCode() == 404 {
		return true
	}
	if aerr, ok := err.(awserr.Error); ok {
		switch aerr.Code() {
		case awss3.ErrCodeNoSuchKey, "NotFound":
			return true
		}
	}
	return false
}
