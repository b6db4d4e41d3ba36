package storage_test

import (
	"testing"

	"bom-checker/core/storage"
	"bom-checker/core/storage/mocks"

	"github.com/stretchr/testify/assert"
)

var _ storage.Client = (*mocks.Client)(nil)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{
			name: "ValidConfig",
			cfg: storage.Config{
				Endpoint:  "localhost:9000",
				AccessKey: "testkey",
				SecretKey: "testsecret",
				Bucket:    "boms",
				Region:    "us-east-1",
			},
		},
		{
			name: "EndpointWithHTTP",
			cfg:  storage.Config{Endpoint: "http://localhost:9000", AccessKey: "testkey", SecretKey: "testsecret"},
		},
		{
			name: "EndpointWithHTTPS",
			cfg:  storage.Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "testkey", SecretKey: "testsecret", UseSSL: true, Region: "us-east-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}
