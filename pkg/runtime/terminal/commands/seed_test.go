package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixtures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
documents:
  - id: doc-1
    tenant_id: t1
    status: ok
    created_at: 2024-01-02T09:00:00Z
  - tenant_id: t1
    status: expired
    expires_at: 2024-01-10T00:00:00Z
    created_at: 2024-01-02T09:00:00Z
tasks:
  - tenant_id: t1
    status: open
    source: missing_item
    created_at: 2024-01-02T09:00:00Z
exports:
  - tenant_id: t1
    kind: pdf
    created_at: 2024-01-03T09:00:00Z
`), 0o600))

	fixtures, err := LoadFixtures(path)
	require.NoError(t, err)

	require.Len(t, fixtures.Documents, 2)
	assert.Equal(t, "doc-1", fixtures.Documents[0].ID)
	_, err = uuid.Parse(fixtures.Documents[1].ID)
	assert.NoError(t, err, "generated id")
	require.NotNil(t, fixtures.Documents[1].ExpiresAt)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), fixtures.Documents[1].ExpiresAt.UTC())
	assert.Nil(t, fixtures.Documents[0].ExpiresAt)

	require.Len(t, fixtures.Tasks, 1)
	assert.NotEmpty(t, fixtures.Tasks[0].ID)
	assert.Nil(t, fixtures.Tasks[0].DueAt)
	require.Len(t, fixtures.Exports, 1)
	assert.NotEmpty(t, fixtures.Exports[0].ID)
}

func TestLoadFixtures_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte("documents: {not: a list}\n"), 0o600))

	_, err := LoadFixtures(path)
	assert.ErrorContains(t, err, "failed to parse fixtures file")
}

func TestParseTenant(t *testing.T) {
	id, err := parseTenant("7F9C2A1E-3B4D-4C5E-8F60-718293A4B5C6")
	require.NoError(t, err)
	assert.Equal(t, "7f9c2a1e-3b4d-4c5e-8f60-718293a4b5c6", id)

	_, err = parseTenant("")
	assert.Error(t, err)
}
