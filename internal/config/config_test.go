package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewSettings(t *testing.T) {
	tests := []struct {
		name      string
		serverURL string
		bearer    string
		dataDir   string
		want      *Settings
		wantError bool
	}{
		{
			name:      "returns error when server URL empty",
			serverURL: "",
			wantError: true,
		},
		{
			name:      "returns error when scheme missing",
			serverURL: "grafana.example.com",
			wantError: true,
		},
		{
			name:      "returns error when scheme unsupported",
			serverURL: "ftp://grafana.example.com",
			wantError: true,
		},
		{
			name:      "returns error when host missing",
			serverURL: "https://",
			wantError: true,
		},
		{
			name:      "applies defaults",
			serverURL: "https://grafana.example.com",
			bearer:    "tok",
			want: &Settings{
				ServerURL:       "https://grafana.example.com",
				Bearer:          "tok",
				DataDir:         "data",
				HTTPTimeout:     60 * time.Second,
				HTTPMaxBodySize: 10 * 1024 * 1024,
			},
		},
		{
			name:      "trims trailing slash",
			serverURL: "http://grafana.example.com:3000/",
			bearer:    "tok",
			dataDir:   "backup",
			want: &Settings{
				ServerURL:       "http://grafana.example.com:3000",
				Bearer:          "tok",
				DataDir:         "backup",
				HTTPTimeout:     60 * time.Second,
				HTTPMaxBodySize: 10 * 1024 * 1024,
			},
		},
		{
			name:      "trims surrounding whitespace",
			serverURL: "  https://grafana.example.com  ",
			bearer:    "tok",
			want: &Settings{
				ServerURL:       "https://grafana.example.com",
				Bearer:          "tok",
				DataDir:         "data",
				HTTPTimeout:     60 * time.Second,
				HTTPMaxBodySize: 10 * 1024 * 1024,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewSettings(tt.serverURL, tt.bearer, tt.dataDir)
			if tt.wantError {
				if err == nil {
					t.Errorf("NewSettings(%q) expected error, got nil", tt.serverURL)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSettings(%q) unexpected error: %v", tt.serverURL, err)
			}
			if *got != *tt.want {
				t.Errorf("NewSettings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSettingsDirs(t *testing.T) {
	s := &Settings{DataDir: "data"}

	if got, want := s.DashboardsDir(), filepath.Join("data", "dashboards"); got != want {
		t.Errorf("DashboardsDir() = %q, want %q", got, want)
	}
	if got, want := s.DatasourcesDir(), filepath.Join("data", "datasources"); got != want {
		t.Errorf("DatasourcesDir() = %q, want %q", got, want)
	}
}

func TestNewSettingsDotenvFallback(t *testing.T) {
	tmpDir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() unexpected error: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Chdir(%q) unexpected error: %v", tmpDir, err)
	}
	defer func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	}()

	envFile := filepath.Join(tmpDir, ".env")
	if err := os.WriteFile(envFile, []byte(TokenEnvVar+"=from-dotenv\n"), 0o644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	t.Run("fills token from .env when flag empty", func(t *testing.T) {
		got, err := NewSettings("https://grafana.example.com", "", "")
		if err != nil {
			t.Fatalf("NewSettings() unexpected error: %v", err)
		}
		if got.Bearer != "from-dotenv" {
			t.Errorf("NewSettings().Bearer = %q, want %q", got.Bearer, "from-dotenv")
		}
	})

	t.Run("flag wins over .env", func(t *testing.T) {
		got, err := NewSettings("https://grafana.example.com", "from-flag", "")
		if err != nil {
			t.Fatalf("NewSettings() unexpected error: %v", err)
		}
		if got.Bearer != "from-flag" {
			t.Errorf("NewSettings().Bearer = %q, want %q", got.Bearer, "from-flag")
		}
	})
}
