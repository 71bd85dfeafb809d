package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Database holds the usage database configuration. URL may be a local
// "file:" URL or a remote libsql URL; when empty the client falls back to
// the default local data file.
type Database struct {
	URL       string `envconfig:"DESKFLOW_DATABASE_URL"`
	AuthToken string `envconfig:"DESKFLOW_AUTH_TOKEN"`
}

// Watch holds the polling cadences. These are tunable operational knobs,
// not contracts; the summary poll is deliberately slower than the sample
// poll.
type Watch struct {
	SampleInterval  time.Duration `envconfig:"DESKFLOW_SAMPLE_INTERVAL" default:"5s"`
	SummaryInterval time.Duration `envconfig:"DESKFLOW_SUMMARY_INTERVAL" default:"10s"`
	CollectInterval time.Duration `envconfig:"DESKFLOW_COLLECT_INTERVAL" default:"1s"`
	FlushInterval   time.Duration `envconfig:"DESKFLOW_FLUSH_INTERVAL" default:"5s"`
}

// Inspector holds the OS window-inspection helper endpoint.
type Inspector struct {
	URL     string        `envconfig:"DESKFLOW_INSPECTOR_URL" default:"http://127.0.0.1:8750"`
	Timeout time.Duration `envconfig:"DESKFLOW_INSPECTOR_TIMEOUT" default:"3s"`
}

// Otel holds metrics exporter configuration.
type Otel struct {
	Enabled  bool   `envconfig:"DESKFLOW_OTEL_ENABLED" default:"false"`
	Endpoint string `envconfig:"DESKFLOW_OTEL_ENDPOINT"`
	Insecure bool   `envconfig:"DESKFLOW_OTEL_INSECURE" default:"false"`
}

// Log holds logging configuration.
type Log struct {
	Level string `envconfig:"DESKFLOW_LOG_LEVEL" default:"info"`
}

// Client is the full configuration for the deskflow client.
type Client struct {
	Database  Database
	Watch     Watch
	Inspector Inspector
	Otel      Otel
	Log       Log
}

// Load reads configuration from environment variables.
func Load() (*Client, error) {
	var cfg Client
	for _, section := range []any{
		&cfg.Database,
		&cfg.Watch,
		&cfg.Inspector,
		&cfg.Otel,
		&cfg.Log,
	} {
		if err := envconfig.Process("", section); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}
