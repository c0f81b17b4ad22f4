package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOutput()
	c.normalizeTicks()
	c.normalizeEngine()
	c.normalizeNames()
	c.normalizeEmitter()
	c.normalizeValidation()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		if value, ok := os.LookupEnv("TICKGEN_OUTPUT_DIR"); ok && strings.TrimSpace(value) != "" {
			c.Paths.OutputDir = strings.TrimSpace(value)
		} else {
			c.Paths.OutputDir = defaultOutputDir
		}
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.HistoryDB) == "" {
		c.Paths.HistoryDB = defaultHistoryDB
	}
	if c.Paths.HistoryDB, err = expandPath(c.Paths.HistoryDB); err != nil {
		return fmt.Errorf("paths.history_db: %w", err)
	}
	return nil
}

func (c *Config) normalizeOutput() {
	c.Output.SwapsFile = strings.TrimSpace(c.Output.SwapsFile)
	if c.Output.SwapsFile == "" {
		c.Output.SwapsFile = defaultSwapsFile
	}
	c.Output.SectionsFile = strings.TrimSpace(c.Output.SectionsFile)
	if c.Output.SectionsFile == "" {
		c.Output.SectionsFile = defaultSectionsFile
	}
}

func (c *Config) normalizeTicks() {
	c.Ticks.Style = strings.ToLower(strings.TrimSpace(c.Ticks.Style))
	switch c.Ticks.Style {
	case "":
		c.Ticks.Style = defaultTickStyle
	case "note-name", "note_name":
		c.Ticks.Style = "note"
	}
}

func (c *Config) normalizeEngine() {
	if c.Engine.Slots == 0 {
		c.Engine.Slots = defaultSlots
	}
	c.Engine.IDPrefix = strings.TrimSpace(c.Engine.IDPrefix)
}

func (c *Config) normalizeNames() {
	fill := func(value *string, fallback string) {
		*value = strings.TrimSpace(*value)
		if *value == "" {
			*value = fallback
		}
	}
	fill(&c.Names.SwapEngine, defaultSwapEngine)
	fill(&c.Names.DefaultSetup, defaultSetup)
	fill(&c.Names.Metronome, defaultMetronome)
	fill(&c.Names.FirstSection, defaultFirstSection)
	fill(&c.Names.SectionPrefix, defaultSectionPrefix)
}

func (c *Config) normalizeEmitter() {
	c.Emitter.Placeholder = strings.ToLower(strings.TrimSpace(c.Emitter.Placeholder))
	if c.Emitter.Placeholder == "" {
		c.Emitter.Placeholder = defaultPlaceholder
	}
	c.Emitter.PlaceholderSFX = strings.TrimSpace(c.Emitter.PlaceholderSFX)
	if c.Emitter.PlaceholderSFX == "" {
		c.Emitter.PlaceholderSFX = defaultPlaceholderSFX
	}
	c.Emitter.PlaceholderSub = strings.TrimSpace(c.Emitter.PlaceholderSub)
	if c.Emitter.PlaceholderSub == "" {
		c.Emitter.PlaceholderSub = defaultPlaceholderSub
	}
}

func (c *Config) normalizeValidation() {
	known := make([]string, 0, len(c.Validation.KnownSpecials))
	seen := make(map[string]struct{}, len(c.Validation.KnownSpecials))
	for _, name := range c.Validation.KnownSpecials {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, exists := seen[name]; exists {
			continue
		}
		seen[name] = struct{}{}
		known = append(known, name)
	}
	c.Validation.KnownSpecials = known
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
