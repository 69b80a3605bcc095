package integrity

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"record-importer/core/database"
	"record-importer/core/storage"
	"record-importer/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupStore(t *testing.T) *database.Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE `user` (id INTEGER PRIMARY KEY, name TEXT, email TEXT)").Error)
	require.NoError(t, db.Exec("CREATE TABLE post (id INTEGER PRIMARY KEY, owner_id INTEGER, title TEXT, body TEXT)").Error)
	return database.NewStoreFromDB(db)
}

func setupTestApp(t *testing.T, archiver *storage.Archiver) *fiber.App {
	app := fiber.New()
	feature := NewFeature(setupStore(t), archiver, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app
}

func emptyList() <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}

func TestLoader(t *testing.T) {
	feature := NewFeature(setupStore(t), nil, zap.NewNop())
	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}

func TestHandleSchemaCheck(t *testing.T) {
	app := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["matched"])
}

func TestHandleSchemaCheck_StoreUnavailable(t *testing.T) {
	app := fiber.New()
	require.NoError(t, NewFeature(database.NewStore(database.Config{Driver: "oracle"}), nil, zap.NewNop()).Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}

func TestHandleSnapshotCheck_Disabled(t *testing.T) {
	app := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/snapshots", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleSnapshotCheck_Fix(t *testing.T) {
	mockClient := new(mocks.Client)
	app := setupTestApp(t, storage.NewArchiver(mockClient, "imports", "snapshots"))

	mockClient.On("BucketExists", mock.Anything, "imports").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "imports", minio.MakeBucketOptions{}).Return(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/snapshots?fix=true", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "fixed", body["status"])
	mockClient.AssertExpectations(t)
}

func TestHandleSnapshotCheck_Error(t *testing.T) {
	mockClient := new(mocks.Client)
	app := setupTestApp(t, storage.NewArchiver(mockClient, "imports", "snapshots"))
	mockClient.On("BucketExists", mock.Anything, "imports").Return(false, errors.New("timeout"))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/snapshots", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleIntegrityCheck(t *testing.T) {
	mockClient := new(mocks.Client)
	app := setupTestApp(t, storage.NewArchiver(mockClient, "imports", "snapshots"))

	mockClient.On("BucketExists", mock.Anything, "imports").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "imports", mock.Anything).Return(emptyList())

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["schema"]["matched"])
	assert.Equal(t, true, body["snapshots"]["exists"])
}
