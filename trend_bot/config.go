package trendbot

import (
	"os"

	"gopkg.in/yaml.v2"
)

const (
	// DefaultFeedURL は Google News (India, English) のトップニュースフィードです。
	DefaultFeedURL = "https://news.google.com/rss?hl=en-IN&gl=IN&ceid=IN:en"
	// DefaultAPIBaseURL is the X API v2 endpoint root.
	DefaultAPIBaseURL = "https://api.twitter.com"
)

// Environment variables holding the four OAuth 1.0a secrets.
const (
	EnvAPIKey       = "TWITTER_API_KEY"
	EnvAPISecret    = "TWITTER_API_SECRET"
	EnvAccessToken  = "TWITTER_ACCESS_TOKEN"
	EnvAccessSecret = "TWITTER_ACCESS_SECRET"
)

// Config は Bot の設定情報を保持する。
// 認証情報は設定ファイルには含めず、環境変数から読み込む。
type Config struct {
	RSS      RSSConfig     `yaml:"rss"`
	X        XConfig       `yaml:"x"`
	Posting  PostingConfig `yaml:"posting"`
	DryRun   bool          `yaml:"dry_run"`
	LogLevel string        `yaml:"log_level"`
}

type RSSConfig struct {
	URL        string `yaml:"url"`
	TimeoutSec int    `yaml:"timeout_sec"`
	UserAgent  string `yaml:"user_agent"`
}

type XConfig struct {
	APIBaseURL      string `yaml:"api_base_url"`
	WaitOnRateLimit bool   `yaml:"wait_on_rate_limit"`
	// MinRequestIntervalMs spaces API requests client-side. 0 disables it.
	MinRequestIntervalMs int `yaml:"min_request_interval_ms"`
}

type PostingConfig struct {
	FetchLimit int        `yaml:"fetch_limit"`
	MaxTopics  int        `yaml:"max_topics"`
	ThreadWait WaitPolicy `yaml:"thread_wait"`
	SingleWait WaitPolicy `yaml:"single_wait"`
}

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		RSS: RSSConfig{
			URL:        DefaultFeedURL,
			TimeoutSec: 30,
			UserAgent:  "trend-thread-bot/1.0",
		},
		X: XConfig{
			APIBaseURL:           DefaultAPIBaseURL,
			WaitOnRateLimit:      true,
			MinRequestIntervalMs: 1000,
		},
		Posting: PostingConfig{
			FetchLimit: 10,
			MaxTopics:  5,
			ThreadWait: WaitPolicy{MinSec: 8, MaxSec: 15},
			SingleWait: WaitPolicy{MinSec: 10, MaxSec: 20},
		},
		LogLevel: "info",
	}
}

// LoadConfig は指定されたパスから設定ファイルを読み込み、DefaultConfig に上書きします。
// ファイルに記載されていない項目はデフォルト値のままです。
func LoadConfig(configPath string) (*Config, error) {
	configYAML, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	err = yaml.Unmarshal(configYAML, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Credentials holds the OAuth 1.0a consumer and access token pairs.
type Credentials struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string
}

// LoadCredentials reads the four secrets using getenv (normally os.Getenv).
// Every missing or empty variable is reported in the returned *CredentialsError.
func LoadCredentials(getenv func(string) string) (Credentials, error) {
	creds := Credentials{
		APIKey:       getenv(EnvAPIKey),
		APISecret:    getenv(EnvAPISecret),
		AccessToken:  getenv(EnvAccessToken),
		AccessSecret: getenv(EnvAccessSecret),
	}

	var missing []string
	for _, v := range []struct{ name, value string }{
		{EnvAPIKey, creds.APIKey},
		{EnvAPISecret, creds.APISecret},
		{EnvAccessToken, creds.AccessToken},
		{EnvAccessSecret, creds.AccessSecret},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return Credentials{}, &CredentialsError{Missing: missing}
	}
	return creds, nil
}
