package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	raw, err := fs.ReadFile(migrationsFS, "migrations/00001_init.sql")
	require.NoError(t, err)

	script := string(raw)
	assert.Contains(t, script, "-- +goose Up")
	assert.Contains(t, script, "-- +goose Down")
	for _, table := range []string{"users", "products", "contact_messages"} {
		assert.True(t, strings.Contains(script, "CREATE TABLE IF NOT EXISTS "+table), table)
	}
}

func TestRunMigrations(t *testing.T) {
	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })

	var gotDir string
	gooseUp = func(_ context.Context, _ *sql.DB, dir string) error {
		gotDir = dir
		return nil
	}

	require.NoError(t, runMigrations(t.Context(), &sql.DB{}))
	assert.Equal(t, "migrations", gotDir)
}

func TestRunMigrations_Error(t *testing.T) {
	orig := gooseUp
	t.Cleanup(func() { gooseUp = orig })

	gooseUp = func(context.Context, *sql.DB, string) error {
		return errors.New("boom")
	}

	err := runMigrations(t.Context(), &sql.DB{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply migrations")
}

func TestMigrate_NilPool(t *testing.T) {
	var db *DB
	assert.Error(t, db.Migrate(t.Context()))
}
