package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	cfg := Load()

	assert.Equal(t, "drzo", cfg.EcosystemUser)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "README.md", cfg.ReportFile)
	assert.Equal(t, 1000, cfg.RepoLimit)
	assert.Equal(t, 500, cfg.StarredLimit)
	assert.Empty(t, cfg.GitHubToken)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_example")
	t.Setenv("ECOSYSTEM_USER", "someone-else")
	t.Setenv("DATA_DIR", "/tmp/eco-data")
	t.Setenv("REPORT_FILE", "DASHBOARD.md")
	t.Setenv("REPO_LIMIT", "25")
	t.Setenv("STARRED_LIMIT", "10")

	cfg := Load()

	assert.Equal(t, "ghp_example", cfg.GitHubToken)
	assert.Equal(t, "someone-else", cfg.EcosystemUser)
	assert.Equal(t, "/tmp/eco-data", cfg.DataDir)
	assert.Equal(t, "DASHBOARD.md", cfg.ReportFile)
	assert.Equal(t, 25, cfg.RepoLimit)
	assert.Equal(t, 10, cfg.StarredLimit)
}
