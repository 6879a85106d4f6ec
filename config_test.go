package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"controlsync/models"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"orgs": [{"org": "acme", "username": "jdoe"}],
		"reports": [{
			"org": "acme",
			"reportPath": "/reports/q1",
			"viewPath": "/views/q1",
			"inputControls": {"Year": "2020", "Color": "red, blue"}
		}]
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Len(t, cfg.Orgs, 1)
	assert.Equal(t, "acme", cfg.Orgs[0].Org)
	assert.Equal(t, "jdoe", cfg.Orgs[0].Username)

	require.Len(t, cfg.Reports, 1)
	report := cfg.Reports[0]
	assert.Equal(t, "/reports/q1", report.ReportPath)
	assert.Equal(t, "/views/q1", report.ViewPath)
	assert.Equal(t, map[string]string{"Year": "2020", "Color": "red, blue"}, report.InputControls)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestLoadConfigMalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{"orgs": [`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()
	require.NotEmpty(t, cfg.Orgs)
	require.NotEmpty(t, cfg.Reports)
	assert.NoError(t, validateConfig(cfg))
}

func TestFillCredentials(t *testing.T) {
	t.Setenv("REPORTSERVER_USER", "envuser")
	t.Setenv("REPORTSERVER_PASSWORD", "envpass")

	cfg := &models.Config{Orgs: []models.Org{
		{Org: "a"},
		{Org: "b", Username: "own", Password: "kept"},
	}}
	fillCredentials(cfg)

	assert.Equal(t, "envuser", cfg.Orgs[0].Username)
	assert.Equal(t, "envpass", cfg.Orgs[0].Password)
	// Explicit credentials win over the environment.
	assert.Equal(t, "own", cfg.Orgs[1].Username)
	assert.Equal(t, "kept", cfg.Orgs[1].Password)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *models.Config
		wantErr string
	}{
		{
			name: "valid",
			cfg: &models.Config{
				Orgs:    []models.Org{{Org: "acme"}},
				Reports: []models.Report{{Org: "acme", ReportPath: "/r", ViewPath: "/v"}},
			},
		},
		{
			name: "unknown org",
			cfg: &models.Config{
				Orgs:    []models.Org{{Org: "acme"}},
				Reports: []models.Report{{Org: "ghost", ReportPath: "/r", ViewPath: "/v"}},
			},
			wantErr: "unknown org",
		},
		{
			name: "missing view path",
			cfg: &models.Config{
				Orgs:    []models.Org{{Org: "acme"}},
				Reports: []models.Report{{Org: "acme", ReportPath: "/r"}},
			},
			wantErr: "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMaskPassword(t *testing.T) {
	tests := []struct {
		password string
		want     string
	}{
		{password: "", want: "<empty>"},
		{password: "a", want: "a"},
		{password: "ab", want: "ab"},
		{password: "secret", want: "s****t"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, maskPassword(tt.password))
	}
}
