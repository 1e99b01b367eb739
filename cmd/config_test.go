package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadConfig_DefaultsWhenFileMissing(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	if err := loadConfig(""); err != nil {
		t.Fatalf("missing default config must be tolerated: %v", err)
	}
	got := currentSettings()
	want := settings{
		Port:            "8080",
		LogLevel:        "info",
		MaxTablePoints:  1000,
		StreamInterval:  100 * time.Millisecond,
		ShutdownTimeout: 10 * time.Second,
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yml")
	yml := "port: \"9000\"\nlog:\n  level: debug\ntable:\n  max_points: 50\nws:\n  default_interval: 250ms\n"
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GROWTH_TABLE_MAX_POINTS", "75")

	if err := loadConfig(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	got := currentSettings()
	if got.Port != "9000" || got.LogLevel != "debug" || got.StreamInterval != 250*time.Millisecond {
		t.Fatalf("file values not applied: %+v", got)
	}
	if got.MaxTablePoints != 75 {
		t.Fatalf("env must override file, got %d", got.MaxTablePoints)
	}
	if got.ShutdownTimeout != 10*time.Second {
		t.Fatalf("default shutdown timeout expected, got %v", got.ShutdownTimeout)
	}
	if l := got.limits(); l.MaxTablePoints != 75 {
		t.Fatalf("limits: %+v", l)
	}
}

func TestLoadConfig_ExplicitFileMustExist(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	if err := loadConfig(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected error for a missing explicit config file")
	}
}

func TestVersionCommand(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out.String(), "growthdecay dev") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestMenuCommand_ScriptedInput(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	root := newRootCmd()
	root.SetIn(strings.NewReader("2\n6\n0.1\n0\n5\n"))
	root.SetOut(&out)
	root.SetArgs([]string{"menu"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "6.9315") {
		t.Fatalf("half-life missing from output:\n%s", out.String())
	}
}
