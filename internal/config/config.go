package config

import "github.com/caarlos0/env/v11"

type Config struct {
	Org             string `env:"TTV_AUDIT_ORG,required"`
	GithubPAT       string `env:"TTV_GITHUB_PAT"`
	SlackBotToken   string `env:"TTV_SLACK_BOT_TOKEN"`
	SlackChannel    string `env:"TTV_SLACK_CHANNEL"`
	SlackWebhookURL string `env:"TTV_SLACK_WEBHOOK_URL"`
	RepoFilter      string `env:"TTV_AUDIT_REPO_FILTER"`
	Debug           bool   `env:"TTV_AUDIT_DEBUG"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
