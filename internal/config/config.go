// Package config resolves client settings from the environment.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/muhzarfan/catatanku/session"
)

// Config holds everything the CLI needs to construct a client.
type Config struct {
	// APIURL is the base URL of the Catatanku backend.
	APIURL string `envconfig:"CATATANKU_API_URL" default:"http://localhost:5000/api"`

	// HTTPTimeout bounds a single HTTP request end to end.
	HTTPTimeout time.Duration `envconfig:"CATATANKU_HTTP_TIMEOUT" default:"30s"`

	// SessionFile overrides where the session is persisted. Empty means
	// the default location under the user config dir.
	SessionFile string `envconfig:"CATATANKU_SESSION_FILE"`

	// Debug turns on verbose logging including HTTP dumps.
	Debug bool `envconfig:"CATATANKU_DEBUG"`
}

// Load reads the environment and fills in defaults.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	if c.SessionFile == "" {
		c.SessionFile = session.DefaultPath()
	}
	return c, nil
}
