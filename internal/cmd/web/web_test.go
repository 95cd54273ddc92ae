package web

import (
	"flag"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AICOPILOT_WEB_HTTP_ADDR",
		"AICOPILOT_CONTENT_REVALIDATE",
		"AICOPILOT_CONTACT_DB_PATH",
		"AICOPILOT_TRUST_FORWARDED_PROTO",
		"SANITY_PROJECT_ID",
		"SANITY_DATASET",
		"SANITY_API_VERSION",
		"SANITY_USE_CDN",
	} {
		t.Setenv(key, "")
	}
}

func TestParseConfigDefaults(t *testing.T) {
	clearEnv(t)

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.Revalidate != 60*time.Second {
		t.Fatalf("Revalidate = %s, want %s", cfg.Revalidate, 60*time.Second)
	}
	if cfg.ContactDBPath != "data/aicopilot.db" {
		t.Fatalf("ContactDBPath = %q, want %q", cfg.ContactDBPath, "data/aicopilot.db")
	}
	if cfg.Sanity.APIVersion != "2024-01-01" {
		t.Fatalf("Sanity.APIVersion = %q, want %q", cfg.Sanity.APIVersion, "2024-01-01")
	}
	if cfg.Sanity.Configured() {
		t.Fatal("expected content source to be unconfigured by default")
	}
}

func TestParseConfigReadsEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("AICOPILOT_WEB_HTTP_ADDR", "0.0.0.0:9000")
	t.Setenv("SANITY_PROJECT_ID", "abc123")
	t.Setenv("SANITY_DATASET", "production")
	t.Setenv("AICOPILOT_TRUST_FORWARDED_PROTO", "true")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "0.0.0.0:9000")
	}
	if !cfg.Sanity.Configured() {
		t.Fatalf("Sanity = %+v, want configured", cfg.Sanity)
	}
	if !cfg.TrustForwardedProto {
		t.Fatal("TrustForwardedProto = false, want true")
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("AICOPILOT_WEB_HTTP_ADDR", "0.0.0.0:9000")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002", "-revalidate", "0", "-contact-db-path", ""})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
	if cfg.Revalidate != 0 {
		t.Fatalf("Revalidate = %s, want 0", cfg.Revalidate)
	}
	if cfg.ContactDBPath != "" {
		t.Fatalf("ContactDBPath = %q, want empty", cfg.ContactDBPath)
	}
}

func TestParseConfigRejectsNegativeRevalidate(t *testing.T) {
	clearEnv(t)

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-revalidate", "-1s"}); err == nil {
		t.Fatal("expected error for negative revalidate")
	}
}
