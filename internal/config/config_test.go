package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/folioapp/folio/internal/errors"
)

func testConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.json")
}

func TestLoadFrom_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadFrom(testConfigPath(t))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.GetTheme() != "" {
		t.Errorf("theme = %q, want empty", cfg.GetTheme())
	}
	if cfg.GetDefaultLinkMode() != "popup" {
		t.Errorf("default link mode = %q, want popup", cfg.GetDefaultLinkMode())
	}
}

func TestSaveAndReload(t *testing.T) {
	path := testConfigPath(t)
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	cfg.SetTheme("nord")
	cfg.SetNotificationsEnabled(true)
	cfg.SetLastActivePageID("page-1")
	cfg.SetDefaultLinkMode("split")
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.GetTheme() != "nord" {
		t.Errorf("theme = %q", reloaded.GetTheme())
	}
	if !reloaded.GetNotificationsEnabled() {
		t.Error("notifications flag lost")
	}
	if reloaded.GetLastActivePageID() != "page-1" {
		t.Errorf("last page = %q", reloaded.GetLastActivePageID())
	}
	if reloaded.GetDefaultLinkMode() != "split" {
		t.Errorf("link mode = %q", reloaded.GetDefaultLinkMode())
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	path := testConfigPath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); !errors.Is(err, errors.KindConfig) {
		t.Errorf("error = %v, want config kind", err)
	}
}

func TestValidate_RejectsUnknownLinkMode(t *testing.T) {
	path := testConfigPath(t)
	if err := os.WriteFile(path, []byte(`{"default_link_mode":"sideways"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); !errors.Is(err, errors.KindInvalid) {
		t.Errorf("error = %v, want invalid kind", err)
	}
}

func TestGetDBPath_Override(t *testing.T) {
	cfg, _ := LoadFrom(testConfigPath(t))
	cfg.SetDBPath("/tmp/elsewhere.db")
	got, err := cfg.GetDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/elsewhere.db" {
		t.Errorf("db path = %q", got)
	}

	cfg.SetDBPath("")
	got, err = cfg.GetDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(got) != "folio.db" {
		t.Errorf("default db path = %q", got)
	}
}
