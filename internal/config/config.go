package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains file and directory locations.
type Paths struct {
	OutputDir string `toml:"output_dir"`
	LogDir    string `toml:"log_dir"`
	HistoryDB string `toml:"history_db"`
}

// Output names the generated files.
type Output struct {
	SwapsFile    string `toml:"swaps_file"`
	SectionsFile string `toml:"sections_file"`
}

// Ticks controls how durations are rendered.
type Ticks struct {
	// Style is one of "int", "hex", or "note".
	Style      string `toml:"style"`
	SplitRests bool   `toml:"split_rests"`
}

// Engine describes the playback engine's game slots.
type Engine struct {
	Slots    int    `toml:"slots"`
	IDPrefix string `toml:"id_prefix"`
}

// Names holds the routine and label names written into generated tickflow.
type Names struct {
	SwapEngine    string `toml:"swap_engine"`
	DefaultSetup  string `toml:"default_setup"`
	Metronome     string `toml:"metronome"`
	FirstSection  string `toml:"first_section"`
	SectionPrefix string `toml:"section_prefix"`
}

// Emitter controls per-cue instruction output.
type Emitter struct {
	// Placeholder is "sfx" or "sub".
	Placeholder    string `toml:"placeholder"`
	PlaceholderSFX string `toml:"placeholder_sfx"`
	PlaceholderSub string `toml:"placeholder_sub"`
	Metronome      bool   `toml:"metronome"`
}

// Validation contains timeline checks applied before generation.
type Validation struct {
	Strict        bool     `toml:"strict"`
	KnownSpecials []string `toml:"known_specials"`
}

// History controls the run ledger.
type History struct {
	Enabled bool `toml:"enabled"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	// File enables writing a log file under paths.log_dir in addition to stderr.
	File bool `toml:"file"`
}

// Config encapsulates all configuration values for tickgen.
//
// Configuration sections by subsystem:
//   - Paths: output, log, and history database locations
//   - Output: generated file names
//   - Ticks: tick literal style and rest splitting
//   - Engine: slot count and engine ID prefix
//   - Names: generated routine and label names
//   - Emitter: placeholder cue instruction and metronome helper
//   - Validation: strict cue category checks
//   - History: run ledger toggle
//   - Logging: log format and level
type Config struct {
	Paths      Paths      `toml:"paths"`
	Output     Output     `toml:"output"`
	Ticks      Ticks      `toml:"ticks"`
	Engine     Engine     `toml:"engine"`
	Names      Names      `toml:"names"`
	Emitter    Emitter    `toml:"emitter"`
	Validation Validation `toml:"validation"`
	History    History    `toml:"history"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("tickgen.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the output and log directories, and the history
// database's parent when history is enabled.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.OutputDir, c.Paths.LogDir}
	if c.History.Enabled && strings.TrimSpace(c.Paths.HistoryDB) != "" {
		dirs = append(dirs, filepath.Dir(c.Paths.HistoryDB))
	}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// SwapsPath returns the full path of the swap stream output file.
func (c *Config) SwapsPath() string {
	return filepath.Join(c.Paths.OutputDir, c.Output.SwapsFile)
}

// SectionsPath returns the full path of the sections stream output file.
func (c *Config) SectionsPath() string {
	return filepath.Join(c.Paths.OutputDir, c.Output.SectionsFile)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
