package config

import "testing"

func validConfig() *Config {
	return &Config{
		UserID:     "local",
		Subject:    "english",
		Difficulty: "medium",
		Source:     "llm",
		Counts:     CountsConfig{MCQ: 15, Structured: 5},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults ok", func(c *Config) {}, false},
		{"bad difficulty", func(c *Config) { c.Difficulty = "extreme" }, true},
		{"api without base url", func(c *Config) { c.Source = "api" }, true},
		{"api with base url", func(c *Config) {
			c.Source = "api"
			c.APIBaseURL = "https://quiz.example.com"
		}, false},
		{"unknown source", func(c *Config) { c.Source = "carrier-pigeon" }, true},
		{"zero counts", func(c *Config) { c.Counts = CountsConfig{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Counts.MCQ != 15 || cfg.Counts.Structured != 5 || cfg.Counts.FillBlank != 0 {
		t.Errorf("counts = %+v", cfg.Counts)
	}
	if cfg.Source != "llm" || cfg.Difficulty != "medium" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("QUIZDECK_SUBJECT", "cloud")
	t.Setenv("QUIZDECK_SOURCE", "api")
	t.Setenv("QUIZDECK_API_BASE_URL", "https://quiz.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Subject != "cloud" {
		t.Errorf("subject = %q", cfg.Subject)
	}
	if cfg.Source != "api" || cfg.APIBaseURL != "https://quiz.example.com" {
		t.Errorf("source = %q url = %q", cfg.Source, cfg.APIBaseURL)
	}
}
