package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bgraf/trailmap/config"
	"github.com/spf13/viper"
)

func TestReadConfigMissingExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	err := readConfig(viper.New(), path)
	if err == nil {
		t.Fatalf("Expected error for missing config file %q", path)
	}
	if !strings.Contains(err.Error(), "read config file") {
		t.Errorf("unexpected error %q", err)
	}
}

func TestReadConfigMalformedExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("simplify: [unclosed\n"), 0o666); err != nil {
		t.Fatal(err)
	}

	if err := readConfig(viper.New(), path); err == nil {
		t.Errorf("Expected error for malformed config file")
	}
}

func TestReadConfigExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trailmap.yaml")
	if err := os.WriteFile(path, []byte("simplify:\n  above: 12\n"), 0o666); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	if err := readConfig(v, path); err != nil {
		t.Fatal(err)
	}
	if got := v.GetInt(config.KeySimplifyAbove); got != 12 {
		t.Errorf("Expected simplify.above 12 from config file, got %v", got)
	}
}

func TestRootCommandDoesNotPrintErrors(t *testing.T) {
	if !rootCmd.SilenceErrors {
		t.Errorf("Expected root command to leave error printing to Execute")
	}

	out, err := runCommand(t, "stats", filepath.Join(t.TempDir(), "missing.gpx"))
	if err == nil {
		t.Fatalf("Expected error for missing track")
	}
	if strings.Contains(out, "Error:") {
		t.Errorf("Expected no cobra error line, got %q", out)
	}
}
