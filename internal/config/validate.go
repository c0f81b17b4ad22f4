package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateTicks(); err != nil {
		return err
	}
	if err := c.validateEngine(); err != nil {
		return err
	}
	if err := c.validateNames(); err != nil {
		return err
	}
	if err := c.validateEmitter(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.SwapsFile == c.Output.SectionsFile {
		return errors.New("output.swaps_file and output.sections_file must differ")
	}
	for key, name := range map[string]string{
		"output.swaps_file":    c.Output.SwapsFile,
		"output.sections_file": c.Output.SectionsFile,
	} {
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%s must be a file name, not a path", key)
		}
	}
	return nil
}

func (c *Config) validateTicks() error {
	switch c.Ticks.Style {
	case "int", "hex", "note":
		return nil
	default:
		return fmt.Errorf("ticks.style must be one of int, hex, note (got %q)", c.Ticks.Style)
	}
}

func (c *Config) validateEngine() error {
	if c.Engine.Slots < 1 || c.Engine.Slots > maxSlots {
		return fmt.Errorf("engine.slots must be between 1 and %d", maxSlots)
	}
	if strings.ContainsAny(c.Engine.IDPrefix, " \t") {
		return errors.New("engine.id_prefix must not contain whitespace")
	}
	return nil
}

func (c *Config) validateNames() error {
	for key, name := range map[string]string{
		"names.swap_engine":    c.Names.SwapEngine,
		"names.default_setup":  c.Names.DefaultSetup,
		"names.metronome":      c.Names.Metronome,
		"names.first_section":  c.Names.FirstSection,
		"names.section_prefix": c.Names.SectionPrefix,
	} {
		if strings.ContainsAny(name, " \t:") {
			return fmt.Errorf("%s must be a single identifier (got %q)", key, name)
		}
	}
	return nil
}

func (c *Config) validateEmitter() error {
	switch c.Emitter.Placeholder {
	case "sfx", "sub":
		return nil
	default:
		return fmt.Errorf("emitter.placeholder must be sfx or sub (got %q)", c.Emitter.Placeholder)
	}
}
