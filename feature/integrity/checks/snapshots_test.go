package checks

import (
	"context"
	"errors"
	"testing"

	"record-importer/core/storage"
	"record-importer/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func objectList(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

func TestCheckSnapshots(t *testing.T) {
	mockClient := new(mocks.Client)
	archiver := storage.NewArchiver(mockClient, "imports", "snapshots")

	mockClient.On("BucketExists", mock.Anything, "imports").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "imports", minio.ListObjectsOptions{Prefix: "snapshots/user/", Recursive: true}).
		Return(objectList("snapshots/user/20240102T000000Z-b.json", "snapshots/user/20240101T000000Z-a.json"))
	mockClient.On("ListObjects", mock.Anything, "imports", minio.ListObjectsOptions{Prefix: "snapshots/post/", Recursive: true}).
		Return(objectList())

	report, err := CheckSnapshots(context.Background(), archiver, "user", "post")
	require.NoError(t, err)
	assert.True(t, report.Exists)
	assert.Equal(t, "imports", report.Bucket)
	assert.Equal(t, "snapshots/user/20240102T000000Z-b.json", report.Latest["user"])
	assert.Equal(t, "", report.Latest["post"])
}

func TestCheckSnapshots_MissingBucket(t *testing.T) {
	mockClient := new(mocks.Client)
	archiver := storage.NewArchiver(mockClient, "imports", "snapshots")
	mockClient.On("BucketExists", mock.Anything, "imports").Return(false, nil)

	report, err := CheckSnapshots(context.Background(), archiver, "user")
	require.NoError(t, err)
	assert.False(t, report.Exists)
	assert.Empty(t, report.Latest)
	mockClient.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckSnapshots_BucketError(t *testing.T) {
	mockClient := new(mocks.Client)
	archiver := storage.NewArchiver(mockClient, "imports", "snapshots")
	mockClient.On("BucketExists", mock.Anything, "imports").Return(false, errors.New("connection refused"))

	_, err := CheckSnapshots(context.Background(), archiver, "user")
	assert.ErrorContains(t, err, "connection refused")
}
