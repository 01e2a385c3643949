package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())
	Load()

	if got := Get(KeyRuleStyle); got != "split" {
		t.Errorf("rule_style = %q, want %q", got, "split")
	}
	if !GetBool(KeyMergeSettings) {
		t.Error("merge_settings = false, want true")
	}
	if got := Get(KeyIDE); got != "" {
		t.Errorf("ide = %q, want empty", got)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AAMAD_IDE", "vscode")
	Load()

	if got := Get(KeyIDE); got != "vscode" {
		t.Errorf("ide = %q, want %q", got, "vscode")
	}
}

func TestSet_WritesFile(t *testing.T) {
	viper.Reset()
	home := t.TempDir()
	t.Setenv("HOME", home)
	Load()

	if err := Set(KeyIDE, "claude-code"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, ".aamad", "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("config file is empty")
	}
	if got := Get(KeyIDE); got != "claude-code" {
		t.Errorf("ide = %q, want %q", got, "claude-code")
	}
}
