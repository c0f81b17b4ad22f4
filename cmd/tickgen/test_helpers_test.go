package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"tickgen/internal/config"
	"tickgen/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
	project    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	base := testsupport.BaseDir(cfg)
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("TICKGEN_OUTPUT_DIR", "")
	cfg.Logging.Level = "error"

	configPath := filepath.Join(homeDir, ".config", "tickgen", "config.toml")
	writeTestConfig(t, configPath, cfg)

	project := testsupport.WriteProject(t, base, "remix.rhre3", testsupport.ProjectZip(t, sampleEntities()...))

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		baseDir:    base,
		project:    project,
	}
}

func sampleEntities() []testsupport.Entity {
	return []testsupport.Entity{
		testsupport.Boundary(0, "A"),
		testsupport.Gameplay(1, "karateman_pot"),
		testsupport.Boundary(2, "B"),
		testsupport.Gameplay(2.5, "tapTrial_tap"),
		testsupport.Boundary(4, "C"),
		testsupport.Boundary(6, "D"),
		testsupport.Boundary(8, "A"),
		testsupport.Boundary(10, "E"),
		testsupport.End(12),
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
