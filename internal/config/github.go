package config

import (
	"os"
	"sync"
)

type GitHubConfig struct {
	Token      string
	APIBaseURL string
}

var (
	githubConfig *GitHubConfig
	githubOnce   sync.Once
)

func LoadGitHubConfig() *GitHubConfig {
	githubOnce.Do(func() {
		base := os.Getenv("GITHUB_API_URL")
		if base == "" {
			base = "https://api.github.com"
		}
		githubConfig = &GitHubConfig{
			Token:      os.Getenv("GITHUB_TOKEN"),
			APIBaseURL: base,
		}
	})
	return githubConfig
}
