package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogcities/drzone/internal/domain"
)

func TestStore_WriteReadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "data"))

	orgs := []domain.Organization{
		{Login: "cogcities", Repositories: domain.Count{TotalCount: 12}},
		{Login: "regima-uk", Repositories: domain.Count{TotalCount: 3}},
	}
	require.NoError(t, store.Write(OrganizationsFile, orgs))

	var got []domain.Organization
	ok, err := store.Read(OrganizationsFile, &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, orgs, got)
}

func TestStore_ReadMissingDocument(t *testing.T) {
	store := NewStore(t.TempDir())

	var summary domain.Summary
	ok, err := store.Read(SummaryFile, &summary)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, summary)
}

func TestStore_WriteOverwritesPrevious(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Write(GistsFile, []domain.Gist{{Name: "old"}, {Name: "older"}}))
	require.NoError(t, store.Write(GistsFile, []domain.Gist{{Name: "new"}}))

	var gists []domain.Gist
	ok, err := store.Read(GistsFile, &gists)
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, gists, 1)
	assert.Equal(t, "new", gists[0].Name)
}

func TestStore_ReadCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, SummaryFile), []byte("{not json"), 0o644))

	var summary domain.Summary
	_, err := store.Read(SummaryFile, &summary)
	assert.ErrorContains(t, err, "decoding snapshot")
}
