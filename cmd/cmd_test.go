package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"record-importer/core/database"
	"record-importer/core/reconcile"
	"record-importer/feature/hashing"
	"record-importer/feature/users"
	userModels "record-importer/feature/users/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserService(t *testing.T, records ...reconcile.Record) *users.Service {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE `user` (id INTEGER PRIMARY KEY, name TEXT NOT NULL, email TEXT NOT NULL)").Error)

	src := reconcile.SourceFunc(func(ctx context.Context) ([]reconcile.Record, error) {
		return records, nil
	})
	return users.NewService(src, database.NewStoreFromDB(db), zap.NewNop())
}

func TestHashAndVerifyCommands(t *testing.T) {
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	t.Cleanup(func() { RootCmd.SetOut(nil); RootCmd.SetArgs(nil) })

	RootCmd.SetArgs([]string{"hash", "abc"})
	require.NoError(t, RootCmd.Execute())
	assert.Equal(t, hashing.Hash("abc"), strings.TrimSpace(out.String()))

	out.Reset()
	RootCmd.SetArgs([]string{"verify", "abc", hashing.Hash("abc")})
	require.NoError(t, RootCmd.Execute())
	assert.Equal(t, "OK", strings.TrimSpace(out.String()))

	RootCmd.SetArgs([]string{"verify", "abc", hashing.Hash("abd")})
	assert.ErrorIs(t, RootCmd.Execute(), errDigestMismatch)
}

func TestRunImportListRemove(t *testing.T) {
	svc := newUserService(t,
		reconcile.Record{"id": float64(1), "name": "Ana", "email": "a@x.com"},
		reconcile.Record{"id": float64(2), "name": "Bo", "email": "b@x.com"},
		reconcile.Record{"id": float64(3), "name": "Cy"},
	)
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, runImport[userModels.User](ctx, &out, svc, zap.NewNop()))
	assert.Contains(t, out.String(), "user: fetched 3, imported 2, failed 1")
	assert.Contains(t, out.String(), `missing required field "email"`)

	out.Reset()
	require.NoError(t, printList[userModels.User](ctx, &out, svc, 1))
	var listed []userModels.User
	require.NoError(t, json.Unmarshal(out.Bytes(), &listed))
	assert.Equal(t, []userModels.User{{ID: 1, Name: "Ana", Email: "a@x.com"}}, listed)

	out.Reset()
	require.NoError(t, runRemove[userModels.User](ctx, &out, svc, 2))
	assert.Equal(t, "Deleted user 2\n", out.String())

	out.Reset()
	require.NoError(t, runRemove[userModels.User](ctx, &out, svc, 2))
	assert.Equal(t, "No user with id 2\n", out.String())
}

func TestRunImport_EmptySource(t *testing.T) {
	svc := newUserService(t)

	var out bytes.Buffer
	err := runImport[userModels.User](context.Background(), &out, svc, zap.NewNop())
	assert.ErrorIs(t, err, reconcile.ErrEmptySource)
	assert.Empty(t, out.String())
}

func TestRunImport_JSON(t *testing.T) {
	svc := newUserService(t, reconcile.Record{"id": float64(1), "name": "Ana", "email": "a@x.com"})
	importJSON = true
	t.Cleanup(func() { importJSON = false })

	var out bytes.Buffer
	require.NoError(t, runImport[userModels.User](context.Background(), &out, svc, zap.NewNop()))
	assert.JSONEq(t, `{"fetched":1,"count":1,"failures":[]}`, out.String())
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	t.Cleanup(func() { RootCmd.SetOut(nil); RootCmd.SetArgs(nil) })

	RootCmd.SetArgs([]string{"version"})
	require.NoError(t, RootCmd.Execute())
	assert.NotEmpty(t, out.String())
	assert.Equal(t, "record-importer", buildVersion().Name)
}
