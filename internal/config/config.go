package config

import (
	"fmt"
	"os"
	"time"

	"github.com/Johannes-Berggren/ReleaseGoblin/internal/models"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIURL     = "https://api.github.com/"
	DefaultRemote     = "origin"
	DefaultBatchSize  = 10
	DefaultBatchDelay = 100 * time.Millisecond
	DefaultTimeout    = 30 * time.Second
)

type Config struct {
	GitHub GitHubConfig `yaml:"github"`
	Remote string       `yaml:"remote"`
	Fetch  FetchConfig  `yaml:"fetch"`
}

// GitHubConfig holds the API location and the static credential pair.
// Credentials only come from the environment.
type GitHubConfig struct {
	APIURL   string        `yaml:"api_url"`
	Timeout  time.Duration `yaml:"timeout"`
	Username string        `yaml:"-"`
	Token    string        `yaml:"-"`
}

type FetchConfig struct {
	BatchSize  int           `yaml:"batch_size"`
	BatchDelay time.Duration `yaml:"batch_delay"`
}

func Default() *Config {
	return &Config{
		GitHub: GitHubConfig{
			APIURL:  DefaultAPIURL,
			Timeout: DefaultTimeout,
		},
		Remote: DefaultRemote,
		Fetch: FetchConfig{
			BatchSize:  DefaultBatchSize,
			BatchDelay: DefaultBatchDelay,
		},
	}
}

// Load reads an optional .env file, the YAML file at path (skipped when path
// is empty) and finally the environment, later sources winning.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.GitHub.Username = os.Getenv("GITHUB_USERNAME")
	cfg.GitHub.Token = os.Getenv("GITHUB_ACCESS_TOKEN")
	cfg.GitHub.APIURL = getEnv("GITHUB_API_URL", cfg.GitHub.APIURL)

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.GitHub.APIURL == "" {
		c.GitHub.APIURL = DefaultAPIURL
	}
	if c.GitHub.Timeout <= 0 {
		c.GitHub.Timeout = DefaultTimeout
	}
	if c.Remote == "" {
		c.Remote = DefaultRemote
	}
	if c.Fetch.BatchSize < 1 {
		c.Fetch.BatchSize = DefaultBatchSize
	}
	if c.Fetch.BatchDelay < 0 {
		c.Fetch.BatchDelay = DefaultBatchDelay
	}
}

var errMissingCredentials = models.NewConfigurationError(
	"GitHub credentials required. Set GITHUB_ACCESS_TOKEN and GITHUB_USERNAME environment variables.",
)

// Validate checks the credential pair.
func (c GitHubConfig) Validate() error {
	if c.Token == "" || c.Username == "" {
		return errMissingCredentials
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
