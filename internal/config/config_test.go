package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func etcPath(t *testing.T) string {
	t.Helper()

	// Get the project root by going up from internal/config
	projectRoot, err := filepath.Abs("../../")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(etcPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	// Test basic config fields
	if cfg.Title == "" {
		t.Error("Config.Title should not be empty")
	}

	if cfg.Webserver.Port == 0 {
		t.Error("Webserver.Port should not be 0")
	}

	if cfg.Webserver.URL == "" {
		t.Error("Webserver.URL should not be empty")
	}

	if cfg.Webserver.Session.ExpiryTime != 24*time.Hour {
		t.Errorf("Session.ExpiryTime = %v, want 24h", cfg.Webserver.Session.ExpiryTime)
	}

	if cfg.DB.GormEngine != EngineSQLite {
		t.Errorf("DB.GormEngine = %q, want %q", cfg.DB.GormEngine, EngineSQLite)
	}

	if cfg.Log.File.AccessLog != "access.log" {
		t.Errorf("Log.File.AccessLog = %q, want access.log", cfg.Log.File.AccessLog)
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	if _, err := ReadConfig(t.TempDir()); err == nil {
		t.Fatal("expected error for missing main.toml")
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "http://localhost:8080",
				},
			},
			wantErr: false,
		},
		{
			name: "missing port",
			config: Config{
				Webserver: Webserver{
					Port: 0,
					URL:  "http://localhost:8080",
				},
			},
			wantErr: true,
		},
		{
			name: "missing URL",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "",
				},
			},
			wantErr: true,
		},
		{
			name: "unknown engine",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "http://localhost:8080",
				},
				DB: DB{GormEngine: "oracle"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"}}

	if err := validate(&cfg); err != nil {
		t.Fatalf("validate() error = %v", err)
	}

	if cfg.DB.GormEngine != EngineSQLite {
		t.Errorf("GormEngine = %q, want %q", cfg.DB.GormEngine, EngineSQLite)
	}

	if cfg.Webserver.ShutDownTime != defaultShutDownTime {
		t.Errorf("ShutDownTime = %d, want %d", cfg.Webserver.ShutDownTime, defaultShutDownTime)
	}

	if cfg.Webserver.Session.CookieName == "" {
		t.Error("Session.CookieName should have a default")
	}
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	// Set JSON override environment variable
	t.Setenv(EnvConfigJSON, `{"Title":"Test Override","Webserver":{"Port":9090}}`)

	cfg, err := ReadConfig(etcPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Title != "Test Override" {
		t.Errorf("Title = %v, want %v", cfg.Title, "Test Override")
	}

	if cfg.Webserver.Port != 9090 {
		t.Errorf("Webserver.Port = %v, want %v", cfg.Webserver.Port, 9090)
	}

	// untouched keys keep the file value
	if cfg.Webserver.URL == "" {
		t.Error("Webserver.URL should survive the JSON merge")
	}
}

func TestReadConfigWithEnvKeyOverride(t *testing.T) {
	t.Setenv("DEVFOLIO_DB_NAME", "portfolio_test")

	cfg, err := ReadConfig(etcPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.DB.Name != "portfolio_test" {
		t.Errorf("DB.Name = %q, want portfolio_test", cfg.DB.Name)
	}
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	tomlStr, err := DumpConfig(&cfg)
	if err != nil {
		t.Fatalf("DumpConfig() error = %v", err)
	}

	if tomlStr == "" {
		t.Error("DumpConfig() returned empty string")
	}

	if !strings.Contains(tomlStr, "Test") {
		t.Error("DumpConfig() output should contain Title")
	}
}

func TestDumpConfigJSON(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	jsonStr, err := DumpConfigJSON(&cfg)
	if err != nil {
		t.Fatalf("DumpConfigJSON() error = %v", err)
	}

	if !strings.Contains(jsonStr, "Test") {
		t.Error("DumpConfigJSON() output should contain Title")
	}
}
