package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
api:
  url: http://localhost:9000/api
  timeout: 10
auth:
  client_id: myapp
  client_secret: 07c91feb29b393e9418416aef05b433d9de7f638
  user_id: x123456x
  course_permission: write
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/api", cfg.API.URL)
	assert.Equal(t, 10, cfg.API.Timeout)
	assert.Equal(t, "myapp", cfg.Auth.ClientID)
	assert.Equal(t, "write", cfg.Auth.CoursePermission)

	// Defaults apply to unset sections.
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			API: APIConfig{URL: "http://localhost:8000/api"},
			Auth: AuthConfig{
				ClientID:     "myapp",
				ClientSecret: "secret",
			},
			Logging: LoggingConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing api url",
			mutate:  func(c *Config) { c.API.URL = "" },
			wantErr: "api.url is required",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.API.Timeout = -1 },
			wantErr: "api.timeout",
		},
		{
			name:    "missing client id",
			mutate:  func(c *Config) { c.Auth.ClientID = "" },
			wantErr: "auth.client_id is required",
		},
		{
			name:    "placeholder client secret",
			mutate:  func(c *Config) { c.Auth.ClientSecret = "your-client-secret-here" },
			wantErr: "auth.client_secret",
		},
		{
			name:    "invalid course permission",
			mutate:  func(c *Config) { c.Auth.CoursePermission = "admin" },
			wantErr: "invalid course permission",
		},
		{
			name:   "read permission",
			mutate: func(c *Config) { c.Auth.CoursePermission = "read" },
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "invalid logging level",
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
