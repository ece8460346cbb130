package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BLACKSTAR_DB", "")
	t.Setenv("BLACKSTAR_CATALOG", "")
	t.Setenv("BLACKSTAR_SNAPSHOT_KEEP", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBPath != "" || cfg.CatalogPath != "" {
		t.Errorf("paths = %q, %q, want empty", cfg.DBPath, cfg.CatalogPath)
	}
	if cfg.SnapshotKeep != 10 {
		t.Errorf("SnapshotKeep = %d, want 10", cfg.SnapshotKeep)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BLACKSTAR_DB", "/tmp/profile.db")
	t.Setenv("BLACKSTAR_CATALOG", "/tmp/catalog.json")
	t.Setenv("BLACKSTAR_SNAPSHOT_KEEP", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBPath != "/tmp/profile.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.CatalogPath != "/tmp/catalog.json" {
		t.Errorf("CatalogPath = %q", cfg.CatalogPath)
	}
	if cfg.SnapshotKeep != 3 {
		t.Errorf("SnapshotKeep = %d, want 3", cfg.SnapshotKeep)
	}
}

func TestLoadRejectsBadKeep(t *testing.T) {
	t.Setenv("BLACKSTAR_SNAPSHOT_KEEP", "0")
	if _, err := Load(); err == nil {
		t.Error("Load() error = nil with keep 0, want error")
	}

	t.Setenv("BLACKSTAR_SNAPSHOT_KEEP", "lots")
	if _, err := Load(); err == nil {
		t.Error("Load() error = nil with non-numeric keep, want error")
	}
}
