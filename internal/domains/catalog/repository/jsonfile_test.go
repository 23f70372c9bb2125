package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bagelhole-directory/internal/domains/catalog/model"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "restaurants.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidCatalog(t *testing.T) {
	path := writeCatalog(t, `[
		{"id":"bb-01","name":"Bagel Basement","neighborhood":"Downtown","price":"$","tags":["classic"]},
		{"id":"bb-02","name":"Hole Foods","neighborhood":"Riverside","price":"$$"}
	]`)

	got, err := NewJSONFileRepository(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Bagel Basement", got[0].Name)
	assert.Equal(t, []string{"classic"}, got[0].Tags)

	// Collections come back non-nil even when absent from the file.
	assert.NotNil(t, got[1].Tags)
	assert.NotNil(t, got[1].Features)
	assert.NotNil(t, got[1].SeedReviews)
}

func TestLoad_DropsEntriesMissingIdentity(t *testing.T) {
	path := writeCatalog(t, `[
		{"id":"bb-01","name":"Bagel Basement"},
		{"name":"No ID"},
		{"id":"bb-03"}
	]`)

	got, err := NewJSONFileRepository(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "bb-01", got[0].ID)
}

func TestLoad_NotAnArray(t *testing.T) {
	path := writeCatalog(t, `{"id":"bb-01"}`)

	_, err := NewJSONFileRepository(path).Load(context.Background())
	assert.ErrorIs(t, err, model.ErrInvalidCatalog)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewJSONFileRepository(filepath.Join(t.TempDir(), "absent.json")).Load(context.Background())
	assert.ErrorIs(t, err, model.ErrInvalidCatalog)
}

func TestLoad_CancelledContext(t *testing.T) {
	path := writeCatalog(t, `[]`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewJSONFileRepository(path).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
