package config

import (
	"os"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.DefaultCountry != CountryIran {
		t.Errorf("DefaultCountry = %q, want %q", cfg.DefaultCountry, CountryIran)
	}
	if cfg.SheetName != "Sheet1" {
		t.Errorf("SheetName = %q, want %q", cfg.SheetName, "Sheet1")
	}
	if cfg.SheetColumn != 1 || !cfg.SheetSkipHeader {
		t.Errorf("SheetColumn = %d, SheetSkipHeader = %v, want 1, true", cfg.SheetColumn, cfg.SheetSkipHeader)
	}
	if cfg.RandomCount != 1 || cfg.MaxInputLength != 64 {
		t.Errorf("RandomCount = %d, MaxInputLength = %d, want 1, 64", cfg.RandomCount, cfg.MaxInputLength)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	os.Clearenv()
	os.Setenv("DEFAULT_COUNTRY", "Afghanistan")
	os.Setenv("RANDOM_COUNT", "5")
	os.Setenv("SHEET_NAME", "Numbers")
	os.Setenv("SHEET_COLUMN", "3")
	os.Setenv("SHEET_SKIP_HEADER", "false")
	os.Setenv("LOG_LEVEL", "debug")
	defer os.Clearenv()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.DefaultCountry != CountryAfghanistan {
		t.Errorf("DefaultCountry = %q, want %q", cfg.DefaultCountry, CountryAfghanistan)
	}
	if cfg.RandomCount != 5 {
		t.Errorf("RandomCount = %d, want 5", cfg.RandomCount)
	}
	if cfg.SheetName != "Numbers" || cfg.SheetColumn != 3 || cfg.SheetSkipHeader {
		t.Errorf("sheet settings = %q/%d/%v", cfg.SheetName, cfg.SheetColumn, cfg.SheetSkipHeader)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "Unknown country",
			envVars: map[string]string{"DEFAULT_COUNTRY": "pakistan"},
		},
		{
			name:    "Zero random count",
			envVars: map[string]string{"RANDOM_COUNT": "0"},
		},
		{
			name:    "Zero column",
			envVars: map[string]string{"SHEET_COLUMN": "0"},
		},
		{
			name:    "Negative input length",
			envVars: map[string]string{"MAX_INPUT_LENGTH": "-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear all env vars
			os.Clearenv()

			// Set only the provided env vars
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			_, err := LoadConfig()
			if err == nil {
				t.Error("LoadConfig() expected error, got nil")
			}
		})
	}
	os.Clearenv()
}

func TestGetEnvInt_IgnoresGarbage(t *testing.T) {
	os.Setenv("RANDOM_COUNT", "lots")
	defer os.Unsetenv("RANDOM_COUNT")

	if got := getEnvInt("RANDOM_COUNT", 7); got != 7 {
		t.Errorf("getEnvInt() = %d, want 7", got)
	}
}
