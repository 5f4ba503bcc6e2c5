package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// TokenEnvVar is the key read from an optional .env file when no bearer
// token flag is given. The process environment is not consulted.
const TokenEnvVar = "EGRAFANA_TOKEN"

const (
	defaultDataDir     = "data"
	defaultHTTPTimeout = 60 * time.Second
	defaultMaxBodySize = 10 * 1024 * 1024 // 10MB
)

// Settings contains configuration for the Grafana API client and the
// export/import directories.
type Settings struct {
	ServerURL       string        // Required, base URL of the Grafana server (e.g. https://grafana.example.com)
	Bearer          string        // Bearer token for the Authorization header; empty means anonymous
	DataDir         string        // Base data directory for exported files (default: data/)
	HTTPTimeout     time.Duration // HTTP client timeout, defaults to 60 seconds
	HTTPMaxBodySize int64         // Maximum allowed API response body size in bytes, defaults to 10MB
}

// NewSettings builds Settings from CLI inputs. The server URL must carry an
// http or https scheme; a trailing slash is trimmed so API paths can be
// appended directly. When bearer is empty, a .env file in the working
// directory may supply EGRAFANA_TOKEN as a fallback; the flag always wins.
func NewSettings(serverURL, bearer, dataDir string) (*Settings, error) {
	serverURL = strings.TrimSpace(serverURL)
	if serverURL == "" {
		return nil, fmt.Errorf("server URL must not be empty")
	}
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", serverURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server URL %q must use http or https", serverURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("server URL %q has no host", serverURL)
	}
	serverURL = strings.TrimRight(serverURL, "/")

	if bearer == "" {
		bearer = tokenFromDotenv()
	}

	if dataDir == "" {
		dataDir = defaultDataDir
	}

	return &Settings{
		ServerURL:       serverURL,
		Bearer:          bearer,
		DataDir:         dataDir,
		HTTPTimeout:     defaultHTTPTimeout,
		HTTPMaxBodySize: defaultMaxBodySize,
	}, nil
}

// DashboardsDir is where exported dashboard JSON files are stored.
func (s *Settings) DashboardsDir() string {
	return filepath.Join(s.DataDir, "dashboards")
}

// DatasourcesDir is where exported datasource JSON files are stored.
func (s *Settings) DatasourcesDir() string {
	return filepath.Join(s.DataDir, "datasources")
}

// tokenFromDotenv reads TokenEnvVar from a .env file in the working
// directory, if one exists.
func tokenFromDotenv() string {
	if _, err := os.Stat(".env"); err != nil {
		return ""
	}
	envs, err := godotenv.Read()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error loading .env file: %v\n", err)
		return ""
	}
	return envs[TokenEnvVar]
}
