package usecase

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogcities/drzone/internal/domain"
	"github.com/cogcities/drzone/internal/snapshot"
)

func TestReporter_Run_SkipsWithoutSummary(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "README.md")
	reporter := NewReporter(snapshot.NewStore(filepath.Join(dir, "data")), zerolog.Nop(), output)

	err := reporter.Run()
	require.NoError(t, err)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "no report should be written without a summary snapshot")
}

func TestReporter_Run_GeneratesReport(t *testing.T) {
	dir := t.TempDir()
	store := snapshot.NewStore(filepath.Join(dir, "data"))
	require.NoError(t, store.Write(snapshot.SummaryFile, sampleSummary()))
	require.NoError(t, store.Write(snapshot.OrganizationsFile, []domain.Organization{
		{Login: "cogcities", Repositories: domain.Count{TotalCount: 12}},
	}))
	require.NoError(t, store.Write(snapshot.RepositoriesFile, []domain.Repository{
		{NameWithOwner: "drzo/a", PrimaryLanguage: &domain.Language{Name: "Go"}},
	}))

	output := filepath.Join(dir, "README.md")
	reporter := NewReporter(store, zerolog.Nop(), output)

	err := reporter.Run()
	require.NoError(t, err)

	content, readErr := os.ReadFile(output)
	require.NoError(t, readErr)
	report := string(content)

	assert.Contains(t, report, "# DrZone - Ecosystem Dashboard")
	assert.Contains(t, report, "### Core Cognitive")
	assert.Contains(t, report, "| Go | 1 | 100.0% |")
	// Enterprises snapshot is absent, so the section reports no data.
	assert.Contains(t, report, "*No enterprise data available*")
}

func TestReporter_Run_OverwritesAndStaysDeterministic(t *testing.T) {
	dir := t.TempDir()
	store := snapshot.NewStore(filepath.Join(dir, "data"))
	require.NoError(t, store.Write(snapshot.SummaryFile, sampleSummary()))

	output := filepath.Join(dir, "README.md")
	reporter := NewReporter(store, zerolog.Nop(), output)
	reporter.now = func() time.Time { return time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC) }

	require.NoError(t, reporter.Run())
	first, err := os.ReadFile(output)
	require.NoError(t, err)

	require.NoError(t, reporter.Run())
	second, err := os.ReadFile(output)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}
