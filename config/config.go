package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvAccessKeyID     = "AWS_ACCESS_KEY_ID"
	EnvSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	EnvRegion          = "AWS_REGION"
	EnvBucket          = "S3_BUCKET"
	EnvMock            = "S3_MOCK"
	EnvEndpoint        = "S3_ENDPOINT"
)

// Config holds the object store settings shared by every plugin that
// touches the store.
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	// Mock points the client at Endpoint over plain HTTP, e.g. a local minio.
	Mock     bool
	Endpoint string
}

type ConfigError struct {
	Missing []string
	Reason  string
}

func (c *ConfigError) Error() string {
	parts := []string{}
	if len(c.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing environment variables: %s", strings.Join(c.Missing, ", ")))
	}
	if c.Reason != "" {
		parts = append(parts, c.Reason)
	}
	return strings.Join(parts, "; ")
}

type LookupFunc func(string) (string, bool)

func FromEnv() (Config, error) {
	return Load(os.LookupEnv)
}

func Load(lookup LookupFunc) (Config, error) {
	get := func(name string) string {
		value, ok := lookup(name)
		if !ok {
			return ""
		}
		return strings.TrimSpace(value)
	}

	c := Config{
		AccessKeyID:     get(EnvAccessKeyID),
		SecretAccessKey: get(EnvSecretAccessKey),
		Region:          get(EnvRegion),
		Bucket:          get(EnvBucket),
		Endpoint:        get(EnvEndpoint),
	}
	rawMock := get(EnvMock)

	missing := []string{}
	for _, required := range []struct {
		name  string
		value string
	}{
		{EnvAccessKeyID, c.AccessKeyID},
		{EnvSecretAccessKey, c.SecretAccessKey},
		{EnvRegion, c.Region},
		{EnvBucket, c.Bucket},
		{EnvMock, rawMock},
	} {
		if required.value == "" {
			missing = append(missing, required.name)
		}
	}

	if rawMock != "" {
		mock, err := strconv.ParseBool(rawMock)
		if err != nil {
			return Config{}, &ConfigError{
				Missing: missing,
				Reason:  fmt.Sprintf("`%s` must be a boolean but was '%s'", EnvMock, rawMock),
			}
		}
		c.Mock = mock
	}
	if c.Mock && c.Endpoint == "" {
		missing = append(missing, EnvEndpoint)
	}

	if len(missing) > 0 {
		return Config{}, &ConfigError{Missing: missing}
	}
	return c, nil
}

// Validate reports fields a hand-built Config is missing.
func (c Config) Validate() error {
	missing := []string{}
	if c.AccessKeyID == "" {
		missing = append(missing, EnvAccessKeyID)
	}
	if c.SecretAccessKey == "" {
		missing = append(missing, EnvSecretAccessKey)
	}
	if c.Region == "" {
		missing = append(missing, EnvRegion)
	}
	if c.Bucket == "" {
		missing = append(missing, EnvBucket)
	}
	if c.Mock && c.Endpoint == "" {
		missing = append(missing, EnvEndpoint)
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}
