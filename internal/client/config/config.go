package config

import (
	"time"

	"github.com/harshpatel958/kontax/internal/payload"
)

// Config holds runtime settings for the Kontax CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend API.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - DataDir: directory holding the local database and voice notes.
//   - QRBaseURL: landing page the URL payload form points at.
//
// Units: OnlineCheckInterval is a time.Duration (e.g., 3*time.Second).
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	DataDir             string
	QRBaseURL           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.OnlineCheckInterval = 3 * time.Second
	c.DataDir = ""
	c.QRBaseURL = payload.DefaultBaseURL
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
