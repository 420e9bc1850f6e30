package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ClientConfig is the client-specific view of the merged configuration,
// holding only the fields the CLI binary needs.
type ClientConfig struct {
	// ServerURL is the base URL of the bookman server.
	ServerURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// SessionFile is the path where the bearer token is persisted
	// between CLI invocations.
	SessionFile string
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills in defaults for the request
// timeout and session file location, and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		ServerURL:      cfg.Client.ServerURL,
		RequestTimeout: cfg.Client.RequestTimeout,
		SessionFile:    cfg.Client.SessionFile,
	}

	if clientCfg.RequestTimeout == 0 {
		clientCfg.RequestTimeout = 30 * time.Second
	}
	if clientCfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		clientCfg.SessionFile = filepath.Join(home, ".bookman", "session")
	}

	return clientCfg, clientCfg.validate()
}
