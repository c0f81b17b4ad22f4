package tickflow

import (
	"fmt"

	"tickgen/internal/remix"
	"tickgen/internal/sections"
	"tickgen/internal/slots"
)

// Stats summarizes a generation run.
type Stats struct {
	Boundaries int `json:"boundaries" yaml:"boundaries"`
	Cues       int `json:"cues" yaml:"cues"`
	Evictions  int `json:"evictions" yaml:"evictions"`
	Preloads   int `json:"preloads" yaml:"preloads"`
	Stalls     int `json:"stalls" yaml:"stalls"`
	TotalTicks int `json:"total_ticks" yaml:"total_ticks"`
}

// Result holds both generated documents and the schedule behind them.
type Result struct {
	Swaps    string
	Sections string
	Plan     *slots.Plan
	Segments []sections.Segment
	Stats    Stats
}

// Generate runs the scheduler and the emitter over tl.
func Generate(tl *remix.Timeline, opts Options) (*Result, error) {
	if tl == nil {
		return nil, fmt.Errorf("timeline is nil")
	}
	if opts.Strict {
		if err := tl.CheckCategories(opts.KnownSpecials); err != nil {
			return nil, fmt.Errorf("validate timeline: %w", err)
		}
	}

	plan, err := slots.New(tl, slots.Options{
		Slots: opts.Slots,
		Style: opts.Style,
		Split: opts.Split,
		Names: opts.Names,
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("schedule slots: %w", err)
	}

	segments, err := sections.NewEmitter(sections.Options{
		Style:          opts.Style,
		Split:          opts.Split,
		Names:          opts.Names,
		Placeholder:    opts.Placeholder,
		PlaceholderSFX: opts.PlaceholderSFX,
		PlaceholderSub: opts.PlaceholderSub,
		Metronome:      opts.Metronome,
	}).Emit(tl)
	if err != nil {
		return nil, fmt.Errorf("emit sections: %w", err)
	}

	return &Result{
		Swaps:    plan.Text(),
		Sections: sections.Text(segments),
		Plan:     plan,
		Segments: segments,
		Stats:    summarize(plan, segments),
	}, nil
}

func summarize(plan *slots.Plan, segments []sections.Segment) Stats {
	stats := Stats{
		Boundaries: len(plan.Steps),
		Evictions:  plan.Evictions(),
		Preloads:   plan.Preloads(),
		Stalls:     len(plan.Stalls()),
	}
	for _, step := range plan.Steps {
		stats.TotalTicks += step.RestTicks
	}
	for _, seg := range segments {
		stats.Cues += len(seg.Cues)
	}
	return stats
}
