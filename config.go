package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"controlsync/models"
)

// LoadConfig reads and parses a JSON configuration file.
func LoadConfig(path string) (*models.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	var cfg models.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return &cfg, nil
}

// GetDefaultConfig returns the built-in configuration used when no config
// file is given on the command line.
func GetDefaultConfig() *models.Config {
	return &models.Config{
		Orgs: []models.Org{
			{Org: "organization_1"},
		},
		Reports: []models.Report{
			{
				Org:        "organization_1",
				ReportPath: "/public/reports/sales_by_region",
				ViewPath:   "/public/adhoc/views/sales_by_region",
				InputControls: map[string]string{
					"Year": "2020",
				},
			},
		},
	}
}

// fillCredentials copies REPORTSERVER_USER / REPORTSERVER_PASSWORD into
// every org record that does not carry its own credentials.
func fillCredentials(cfg *models.Config) {
	user := os.Getenv("REPORTSERVER_USER")
	password := os.Getenv("REPORTSERVER_PASSWORD")
	for i := range cfg.Orgs {
		if cfg.Orgs[i].Username == "" {
			cfg.Orgs[i].Username = user
		}
		if cfg.Orgs[i].Password == "" {
			cfg.Orgs[i].Password = password
		}
	}
}

// validateConfig checks the referential integrity of a loaded configuration.
func validateConfig(cfg *models.Config) error {
	for _, report := range cfg.Reports {
		if report.ReportPath == "" || report.ViewPath == "" {
			return errors.Errorf("report %q: reportPath and viewPath are required", report.ReportPath)
		}
		if _, ok := cfg.OrgByID(report.Org); !ok {
			return errors.Errorf("report %s references unknown org %q", report.ReportPath, report.Org)
		}
	}
	return nil
}
