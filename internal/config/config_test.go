package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"tickgen/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("TICKGEN_OUTPUT_DIR", "")
	chdir(t, tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantLogs := filepath.Join(tempHome, ".local", "share", "tickgen", "logs")
	if cfg.Paths.LogDir != wantLogs {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogs)
	}
	if cfg.Paths.HistoryDB != filepath.Join(tempHome, ".local", "share", "tickgen", "history.db") {
		t.Fatalf("unexpected history db: %q", cfg.Paths.HistoryDB)
	}
	if cfg.Paths.OutputDir != tempHome {
		t.Fatalf("expected output dir to default to working directory, got %q", cfg.Paths.OutputDir)
	}
	if cfg.Engine.Slots != 4 {
		t.Fatalf("expected 4 engine slots, got %d", cfg.Engine.Slots)
	}
	if cfg.Ticks.Style != "int" || cfg.Ticks.SplitRests {
		t.Fatalf("unexpected tick defaults: %+v", cfg.Ticks)
	}
	if cfg.Emitter.Placeholder != "sfx" || cfg.Emitter.Metronome {
		t.Fatalf("unexpected emitter defaults: %+v", cfg.Emitter)
	}
	if cfg.SwapsPath() != filepath.Join(tempHome, "swaps.txt") {
		t.Fatalf("unexpected swaps path: %q", cfg.SwapsPath())
	}
	if cfg.SectionsPath() != filepath.Join(tempHome, "cues.txt") {
		t.Fatalf("unexpected sections path: %q", cfg.SectionsPath())
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LogDir, filepath.Dir(cfg.Paths.HistoryDB)} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadUsesOutputDirFromEnv(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	out := filepath.Join(tempHome, "generated")
	t.Setenv("TICKGEN_OUTPUT_DIR", out)

	cfg, _, _, err := config.Load(filepath.Join(tempHome, "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.OutputDir != out {
		t.Fatalf("expected output dir from env, got %q", cfg.Paths.OutputDir)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "tickgen.toml")

	type payload struct {
		Ticks struct {
			Style      string `toml:"style"`
			SplitRests bool   `toml:"split_rests"`
		} `toml:"ticks"`
		Engine struct {
			Slots int `toml:"slots"`
		} `toml:"engine"`
		Emitter struct {
			Placeholder string `toml:"placeholder"`
			Metronome   bool   `toml:"metronome"`
		} `toml:"emitter"`
		Paths struct {
			OutputDir string `toml:"output_dir"`
		} `toml:"paths"`
	}
	custom := payload{}
	custom.Ticks.Style = "NOTE-NAME"
	custom.Ticks.SplitRests = true
	custom.Engine.Slots = 6
	custom.Emitter.Placeholder = "sub"
	custom.Emitter.Metronome = true
	custom.Paths.OutputDir = filepath.Join(tempDir, "out")
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Ticks.Style != "note" || !cfg.Ticks.SplitRests {
		t.Fatalf("unexpected ticks section: %+v", cfg.Ticks)
	}
	if cfg.Engine.Slots != 6 {
		t.Fatalf("expected 6 slots, got %d", cfg.Engine.Slots)
	}
	if cfg.Emitter.Placeholder != "sub" || !cfg.Emitter.Metronome {
		t.Fatalf("unexpected emitter section: %+v", cfg.Emitter)
	}
	if cfg.Paths.OutputDir != filepath.Join(tempDir, "out") {
		t.Fatalf("unexpected output dir: %q", cfg.Paths.OutputDir)
	}
	if cfg.Names.SwapEngine != "swapEngine" || cfg.Engine.IDPrefix != "engID_" {
		t.Fatalf("expected untouched defaults, got names=%+v engine=%+v", cfg.Names, cfg.Engine)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{"style", "[ticks]\nstyle = \"binary\"\n", "ticks.style"},
		{"negative slots", "[engine]\nslots = -1\n", "engine.slots"},
		{"too many slots", "[engine]\nslots = 64\n", "engine.slots"},
		{"placeholder", "[emitter]\nplaceholder = \"midi\"\n", "emitter.placeholder"},
		{"same files", "[output]\nswaps_file = \"a.txt\"\nsections_file = \"a.txt\"\n", "must differ"},
		{"nested file", "[output]\nswaps_file = \"dir/a.txt\"\n", "output.swaps_file"},
		{"name", "[names]\nswap_engine = \"swap engine\"\n", "names.swap_engine"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tickgen.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestKnownSpecialsAreDeduplicated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickgen.toml")
	content := "[validation]\nstrict = true\nknown_specials = [\"special_a\", \" special_a \", \"\", \"special_b\"]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.Validation.Strict {
		t.Fatal("expected strict validation")
	}
	got := strings.Join(cfg.Validation.KnownSpecials, ",")
	if got != "special_a,special_b" {
		t.Fatalf("unexpected known specials: %q", got)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	def := config.Default()
	if cfg.Engine.Slots != def.Engine.Slots || cfg.Ticks.Style != def.Ticks.Style {
		t.Fatalf("sample config diverges from defaults: %+v", cfg)
	}
}

// chdir mirrors testing.T.Chdir (added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
