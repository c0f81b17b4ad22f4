package tickflow

import (
	"fmt"

	"tickgen/internal/config"
	"tickgen/internal/routine"
	"tickgen/internal/sections"
	"tickgen/internal/ticks"
)

// Options is the immutable generation configuration shared by the scheduler,
// the emitter and the quantizer.
type Options struct {
	Slots          int
	Style          ticks.Style
	Split          bool
	Names          routine.Names
	Placeholder    sections.Placeholder
	PlaceholderSFX string
	PlaceholderSub string
	Metronome      bool
	Strict         bool
	KnownSpecials  []string
}

// DefaultOptions returns the options of a default configuration.
func DefaultOptions() Options {
	return Options{
		Slots:          4,
		Style:          ticks.StyleInt,
		Names:          routine.Default(),
		Placeholder:    sections.PlaceholderSFX,
		PlaceholderSFX: "0x1000291",
		PlaceholderSub: "tmpDefault",
	}
}

// FromConfig builds Options from a loaded configuration.
func FromConfig(cfg *config.Config) (Options, error) {
	if cfg == nil {
		return Options{}, fmt.Errorf("config is nil")
	}
	style, err := ticks.ParseStyle(cfg.Ticks.Style)
	if err != nil {
		return Options{}, fmt.Errorf("ticks.style: %w", err)
	}
	placeholder, err := sections.ParsePlaceholder(cfg.Emitter.Placeholder)
	if err != nil {
		return Options{}, fmt.Errorf("emitter.placeholder: %w", err)
	}
	known := make([]string, len(cfg.Validation.KnownSpecials))
	copy(known, cfg.Validation.KnownSpecials)

	return Options{
		Slots: cfg.Engine.Slots,
		Style: style,
		Split: cfg.Ticks.SplitRests,
		Names: routine.Names{
			SwapEngine:    cfg.Names.SwapEngine,
			DefaultSetup:  cfg.Names.DefaultSetup,
			Metronome:     cfg.Names.Metronome,
			FirstSection:  cfg.Names.FirstSection,
			SectionPrefix: cfg.Names.SectionPrefix,
			EnginePrefix:  cfg.Engine.IDPrefix,
		},
		Placeholder:    placeholder,
		PlaceholderSFX: cfg.Emitter.PlaceholderSFX,
		PlaceholderSub: cfg.Emitter.PlaceholderSub,
		Metronome:      cfg.Emitter.Metronome,
		Strict:         cfg.Validation.Strict,
		KnownSpecials:  known,
	}, nil
}
