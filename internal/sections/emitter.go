package sections

import (
	"fmt"
	"strings"

	"tickgen/internal/remix"
	"tickgen/internal/routine"
	"tickgen/internal/ticks"
)

// Placeholder selects how a gameplay cue is written.
type Placeholder int

const (
	// PlaceholderSFX writes "play_sfx <id>".
	PlaceholderSFX Placeholder = iota
	// PlaceholderSub writes "call <routine>".
	PlaceholderSub
)

// ParsePlaceholder maps a configuration value to a Placeholder.
func ParsePlaceholder(value string) (Placeholder, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "sfx":
		return PlaceholderSFX, nil
	case "sub":
		return PlaceholderSub, nil
	default:
		return PlaceholderSFX, fmt.Errorf("unknown placeholder %q (want sfx or sub)", value)
	}
}

var prologue = []string{
	"0x8F 3",
	"fade<1> 7, 1, quarter",
	"rest half",
	"input 1",
	"async_sub 0x53",
	"rest half",
	"",
}

// Options configures an Emitter.
type Options struct {
	Style          ticks.Style
	Split          bool
	Names          routine.Names
	Placeholder    Placeholder
	PlaceholderSFX string
	PlaceholderSub string
	Metronome      bool
}

// Segment is one emitted section.
type Segment struct {
	Boundary int
	Label    string
	Start    float64
	End      float64
	Cues     []remix.Cue
	Lines    []string
}

// Emitter builds section routines from a timeline.
type Emitter struct {
	opts Options
}

// NewEmitter returns an emitter using opts.
func NewEmitter(opts Options) *Emitter {
	return &Emitter{opts: opts}
}

// Emit returns one segment per boundary, in order.
func (e *Emitter) Emit(tl *remix.Timeline) ([]Segment, error) {
	bounds := tl.Boundaries()
	if len(bounds) == 0 {
		return nil, remix.ErrEmptyTimeline
	}
	end, hasEnd := tl.End()

	segments := make([]Segment, 0, len(bounds))
	for i, b := range bounds {
		start := b.Beat
		if i == 0 {
			start = 0
		}
		var stop float64
		switch {
		case i+1 < len(bounds):
			stop = bounds[i+1].Beat
		case hasEnd:
			stop = end.Beat
		default:
			return nil, remix.AtBoundary(remix.ErrMissingEndMarker, i, b.Beat, nil)
		}

		seg := Segment{
			Boundary: i,
			Label:    e.opts.Names.SectionLabel(i),
			Start:    start,
			End:      stop,
			Cues:     Collect(tl.Cues(), start, stop),
		}
		lines, err := e.segmentLines(i, seg.Cues)
		if err != nil {
			return nil, remix.AtBoundary(nil, i, b.Beat, err)
		}
		seg.Lines = lines
		segments = append(segments, seg)
	}
	return segments, nil
}

// Collect returns the non-special cues with start <= beat < end, in timeline
// order.
func Collect(cues []remix.Cue, start, end float64) []remix.Cue {
	var out []remix.Cue
	for _, cue := range cues {
		if cue.IsSpecial() {
			continue
		}
		if cue.Beat >= start && cue.Beat < end {
			out = append(out, cue)
		}
	}
	return out
}

func (e *Emitter) segmentLines(i int, cues []remix.Cue) ([]string, error) {
	lines := []string{e.opts.Names.SectionLabel(i) + ":"}
	if i == 0 {
		lines = append(lines, prologue...)
	} else {
		metronome := "async_call " + e.opts.Names.Metronome
		if !e.opts.Metronome {
			metronome = "// " + metronome
		}
		lines = append(lines, "call "+e.opts.Names.DefaultSetup, metronome)
	}

	if len(cues) == 0 {
		return append(lines, "stop", "", ""), nil
	}
	for k, cue := range cues {
		lines = append(lines, e.placeholder())
		if k+1 == len(cues) {
			lines = append(lines, "stop", "", "")
			break
		}
		t, err := ticks.Between(cue.Beat, cues[k+1].Beat)
		if err != nil {
			return nil, fmt.Errorf("cue %d: %w", cue.Index, err)
		}
		lines = append(lines, ticks.RenderRest(t, e.opts.Style, e.opts.Split)...)
		lines = append(lines, "")
	}
	return lines, nil
}

func (e *Emitter) placeholder() string {
	if e.opts.Placeholder == PlaceholderSub {
		return "call " + e.opts.PlaceholderSub
	}
	return "play_sfx " + e.opts.PlaceholderSFX
}

// Text renders segments as the sections document.
func Text(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		for _, line := range seg.Lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
