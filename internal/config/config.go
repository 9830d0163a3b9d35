// Package config loads application configuration from environment variables.
package config

import "github.com/spf13/viper"

// Config holds everything the collect and report stages need. All values come
// from the environment; defaults match the hosted dashboard deployment.
type Config struct {
	GitHubToken   string
	EcosystemUser string
	DataDir       string
	ReportFile    string
	RepoLimit     int
	StarredLimit  int
}

// Load reads configuration from the environment. A missing GITHUB_TOKEN is
// not an error here; the collect command treats it as fatal before issuing
// any request, while report never needs it.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ecosystem_user", "drzo")
	v.SetDefault("data_dir", "data")
	v.SetDefault("report_file", "README.md")
	v.SetDefault("repo_limit", 1000)
	v.SetDefault("starred_limit", 500)

	return Config{
		GitHubToken:   v.GetString("github_token"),
		EcosystemUser: v.GetString("ecosystem_user"),
		DataDir:       v.GetString("data_dir"),
		ReportFile:    v.GetString("report_file"),
		RepoLimit:     v.GetInt("repo_limit"),
		StarredLimit:  v.GetInt("starred_limit"),
	}
}
