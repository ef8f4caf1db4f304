package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test profiles: %v", err)
	}
	return path
}

func TestRegistry_GetProfiles(t *testing.T) {
	path := writeProfiles(t, `[acme]
realm_id = 1234567890
access_token = tok-acme
base_url = https://quickbooks.api.intuit.com

[sandbox]
realm_id = 42
access_token = tok-sandbox
base_url = https://sandbox-quickbooks.api.intuit.com
page_size = 100`)

	registry, err := NewRegistry(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	profiles, err := registry.GetProfiles(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
	if profiles[0].Name != "acme" || profiles[0].RealmID != "1234567890" {
		t.Errorf("unexpected first profile: %+v", profiles[0])
	}
}

func TestRegistry_GetConfig(t *testing.T) {
	path := writeProfiles(t, `[sandbox]
realm_id = 42
access_token = tok-sandbox
base_url = https://sandbox-quickbooks.api.intuit.com
page_size = 100`)

	registry, err := NewRegistry(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	cfg, realmID, err := registry.GetConfig(context.Background(), "sandbox")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if realmID != "42" {
		t.Errorf("expected realm 42, got %s", realmID)
	}
	if cfg.AccessToken != "tok-sandbox" {
		t.Errorf("expected AccessToken=tok-sandbox, got %s", cfg.AccessToken)
	}
	if cfg.BaseURL != "https://sandbox-quickbooks.api.intuit.com" {
		t.Errorf("unexpected BaseURL %s", cfg.BaseURL)
	}
	if cfg.PageSize != 100 {
		t.Errorf("expected PageSize=100, got %d", cfg.PageSize)
	}
}

func TestRegistry_GetConfig_UnknownProfile(t *testing.T) {
	path := writeProfiles(t, `[acme]
realm_id = 1`)

	registry, err := NewRegistry(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, _, err := registry.GetConfig(context.Background(), "missing"); err == nil {
		t.Error("expected error for unknown profile, got nil")
	}
}

func TestRegistry_GetConfig_MissingRealm(t *testing.T) {
	path := writeProfiles(t, `[acme]
access_token = tok`)

	registry, err := NewRegistry(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, _, err := registry.GetConfig(context.Background(), "acme"); err == nil {
		t.Error("expected error for profile without realm_id, got nil")
	}
}
