package config

import (
	"os"
	"testing"
)

const testDSN = "postgres://localhost/test"

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("POSTGRES_DSN")

	_, err := Load()
	if err == nil {
		t.Error("expected error for missing POSTGRES_DSN")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", testDSN)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.PostgresDSN != testDSN {
		t.Errorf("PostgresDSN = %q, want %q", cfg.PostgresDSN, testDSN)
	}

	if cfg.APIPort != 8000 {
		t.Errorf("APIPort = %d, want 8000", cfg.APIPort)
	}

	if cfg.AppEnv != "local" {
		t.Errorf("AppEnv = %q, want %q", cfg.AppEnv, "local")
	}

	if cfg.LLMModel != "gpt-4o-mini" {
		t.Errorf("LLMModel = %q, want %q", cfg.LLMModel, "gpt-4o-mini")
	}
}

func TestBrandKeywords(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "empty", raw: "", want: 0},
		{name: "valid", raw: `{"nike":["shoe","comfort"],"acme":["anvil"]}`, want: 2},
		{name: "invalid json", raw: `{nike}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{BrandKeywordsJSON: tt.raw}

			got, err := cfg.BrandKeywords()
			if (err != nil) != tt.wantErr {
				t.Fatalf("BrandKeywords() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err == nil && len(got) != tt.want {
				t.Errorf("BrandKeywords() len = %d, want %d", len(got), tt.want)
			}
		})
	}
}
