package config

import (
	"testing"
)

func TestNewServerConfigDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")

	cfg, err := NewServerConfig()
	if err != nil {
		t.Fatalf("NewServerConfig() returned error: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.MaxDescriptionLength != 4096 {
		t.Errorf("MaxDescriptionLength = %d, want 4096", cfg.MaxDescriptionLength)
	}
	if cfg.MaxKeyLength != 2048 {
		t.Errorf("MaxKeyLength = %d, want 2048", cfg.MaxKeyLength)
	}
}

func TestNewServerConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{"valid overrides", map[string]string{"PORT": "9000", "MAX_DESCRIPTION_LENGTH": "100"}, false},
		{"invalid environment", map[string]string{"ENVIRONMENT": "qa"}, true},
		{"port out of range", map[string]string{"PORT": "70000"}, true},
		{"zero description length", map[string]string{"MAX_DESCRIPTION_LENGTH": "0"}, true},
		{"zero key length", map[string]string{"MAX_KEY_LENGTH": "0"}, true},
		{"zero batch workers", map[string]string{"SIGN_BATCH_WORKERS": "0"}, true},
		{"zero request size", map[string]string{"MAX_REQUEST_SIZE": "0"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENVIRONMENT", "test")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := NewServerConfig()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

// the CLI does not care about http settings
func TestNewCLIConfigIgnoresServerSettings(t *testing.T) {
	t.Setenv("ENVIRONMENT", "dev")
	t.Setenv("PORT", "0")

	if _, err := NewCLIConfig(); err != nil {
		t.Fatalf("NewCLIConfig() returned error: %v", err)
	}
}
