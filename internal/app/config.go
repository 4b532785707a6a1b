package app

import "errors"

// Config holds everything the CLI hands over for one invocation.
type Config struct {
	// InputRoot is the mounted directory holding the collections.
	InputRoot string

	// ConfigPath optionally points at an HCL pipeline file.
	ConfigPath string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int

	// Workers, TopN and LedgerPath override the pipeline file when set.
	Workers    int
	TopN       int
	LedgerPath string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputRoot == "" {
		return nil, errors.New("InputRoot is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
