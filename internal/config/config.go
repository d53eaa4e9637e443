package config

import (
	"fmt"

	"github.com/Netflix/go-env"
)

type Config struct {
	DatabaseDSN      string `env:"DATABASE_DSN,required=true"`
	TwilioAccountSID string `env:"TWILIO_ACCOUNT_SID,required=true"`
	TwilioAuthToken  string `env:"TWILIO_AUTH_TOKEN,required=true"`
	TwilioFromNumber string `env:"TWILIO_FROM_NUMBER,required=true"`
	TwilioAPIURL     string `env:"TWILIO_API_URL,default=https://api.twilio.com"`
	APIPort          int    `env:"API_PORT,default=8080"`
	LogLevel         string `env:"LOG_LEVEL,default=info"`
}

func Load() (*Config, error) {
	var cfg Config
	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
