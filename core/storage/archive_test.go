package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"record-importer/core/reconcile"
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

func TestArchiver_Archive(t *testing.T) {
	mockClient := new(mocks.Client)
	archiver := storage.NewArchiver(mockClient, "imports", "/snapshots/")

	var written []byte
	mockClient.On("PutObject", mock.Anything, "imports",
		mock.MatchedBy(func(name string) bool {
			return strings.HasPrefix(name, "snapshots/user/") && strings.HasSuffix(name, ".json")
		}),
		mock.Anything, mock.Anything, minio.PutObjectOptions{ContentType: "application/json"}).
		Run(func(args mock.Arguments) {
			written, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(minio.UploadInfo{}, nil)

	err := archiver.Archive(context.Background(), "user", []reconcile.Record{{"id": float64(1), "name": "Ana"}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"name":"Ana"}]`, string(written))
	mockClient.AssertExpectations(t)
}

func TestArchiver_ArchiveFailure(t *testing.T) {
	mockClient := new(mocks.Client)
	archiver := storage.NewArchiver(mockClient, "imports", "snapshots")

	mockClient.On("PutObject", mock.Anything, "imports", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	err := archiver.Archive(context.Background(), "post", []reconcile.Record{{"id": float64(1)}})
	assert.ErrorContains(t, err, "access denied")
}

func TestArchiver_EnsureBucket(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "imports").Return(true, nil)

		assert.NoError(t, storage.NewArchiver(mockClient, "imports", "").EnsureBucket(context.Background()))
		mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "imports").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "imports", mock.Anything).Return(nil)

		assert.NoError(t, storage.NewArchiver(mockClient, "imports", "").EnsureBucket(context.Background()))
		mockClient.AssertExpectations(t)
	})
}

func TestArchiver_SourceLatest(t *testing.T) {
	mockClient := new(mocks.Client)
	archiver := storage.NewArchiver(mockClient, "imports", "snapshots")

	mockClient.On("ListObjects", mock.Anything, "imports", minio.ListObjectsOptions{Prefix: "snapshots/user/", Recursive: true}).
		Return(objectList(
			"snapshots/user/20260102T000000Z-b.json",
			"snapshots/user/20260105T000000Z-c.json",
			"snapshots/user/20260101T000000Z-a.json",
			"snapshots/user/notes.txt",
		))
	mockClient.On("GetObject", mock.Anything, "imports", "snapshots/user/20260105T000000Z-c.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(`[{"id":2,"name":"Bo","email":"b@x.com"}]`))), nil)

	records, err := archiver.Source("user", storage.Latest).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []reconcile.Record{{"id": float64(2), "name": "Bo", "email": "b@x.com"}}, records)
}

func TestArchiver_SourceWithoutSnapshots(t *testing.T) {
	mockClient := new(mocks.Client)
	archiver := storage.NewArchiver(mockClient, "imports", "snapshots")
	mockClient.On("ListObjects", mock.Anything, "imports", mock.Anything).Return(objectList())

	_, err := archiver.Source("post", "").Fetch(context.Background())
	assert.ErrorIs(t, err, storage.ErrNoSnapshot)
}

func TestArchiver_LoadNamed(t *testing.T) {
	mockClient := new(mocks.Client)
	archiver := storage.NewArchiver(mockClient, "imports", "snapshots")

	mockClient.On("GetObject", mock.Anything, "imports", "snapshots/post/x.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(`not json`))), nil)

	_, err := archiver.Source("post", "snapshots/post/x.json").Fetch(context.Background())
	assert.ErrorContains(t, err, "failed to parse snapshot")
}
