package cmd

import (
	"strings"
	"testing"
)

func TestVersionTemplate(t *testing.T) {
	SetVersionInfo("1.2.3", "abc1234", "2026-08-01")
	tmpl := versionTemplate()
	if !strings.Contains(tmpl, "1.2.3") || !strings.Contains(tmpl, "abc1234") {
		t.Errorf("template should carry version and commit, got %q", tmpl)
	}

	SetVersionInfo("1.2.3", "none", "unknown")
	tmpl = versionTemplate()
	if strings.Contains(tmpl, "commit") {
		t.Errorf("dev builds should omit commit info, got %q", tmpl)
	}
}

func TestRootFlagsRegistered(t *testing.T) {
	for _, name := range []string{"debug", "quiet"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag --%s not registered", name)
		}
	}
	for _, name := range []string{"view", "db"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag --%s not registered", name)
		}
	}
}

func TestCleanRegistered(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Name() == "clean" {
			return
		}
	}
	t.Error("clean subcommand not registered")
}
