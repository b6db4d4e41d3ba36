package bom

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"bom-checker/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Run("LocalFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bom.csv")
		require.NoError(t, os.WriteFile(path, []byte("header\n"), 0644))

		rc, err := Open(context.Background(), nil, path)
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "header\n", string(data))
	})

	t.Run("MissingLocalFile", func(t *testing.T) {
		_, err := Open(context.Background(), nil, filepath.Join(t.TempDir(), "missing.csv"))
		assert.Error(t, err)
	})

	t.Run("Object", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "boms").Return(true, nil)
		mockClient.On("GetObject", mock.Anything, "boms", "board.csv", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte(sampleBOM))), nil)

		rc, err := Open(context.Background(), mockClient, "s3://boms/board.csv")
		require.NoError(t, err)
		defer rc.Close()

		rows, err := NewReader(rc, DefaultConfig()).ReadAll()
		require.NoError(t, err)
		assert.Len(t, rows, 3)
		mockClient.AssertExpectations(t)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "boms").Return(false, nil)

		_, err := Open(context.Background(), mockClient, "s3://boms/board.csv")
		assert.Error(t, err)
	})

	t.Run("ObjectWithoutClient", func(t *testing.T) {
		_, err := Open(context.Background(), nil, "s3://boms/board.csv")
		assert.Error(t, err)
	})
}
