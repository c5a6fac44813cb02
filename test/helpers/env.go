package helpers

import "github.com/ljfranklin/process-api-plugins/config"

// MockStoreConfig points a config at the given fake S3 endpoint.
func MockStoreConfig(endpoint string, bucket string) config.Config {
	return config.Config{
		AccessKeyID:     "fake-access-key",
		SecretAccessKey: "fake-secret-key",
		Region:          "us-east-1",
		Bucket:          bucket,
		Mock:            true,
		Endpoint:        endpoint,
	}
}

// MockStoreEnv returns the environment variables matching MockStoreConfig.
func MockStoreEnv(endpoint string, bucket string) []string {
	return []string{
		config.EnvAccessKeyID + "=fake-access-key",
		config.EnvSecretAccessKey + "=fake-secret-key",
		config.EnvRegion + "=us-east-1",
		config.EnvBucket + "=" + bucket,
		config.EnvMock + "=true",
		config.EnvEndpoint + "=" + endpoint,
	}
}
