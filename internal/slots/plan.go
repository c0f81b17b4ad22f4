package slots

import "strings"

// Eviction records a pre-load that displaced a resident game.
type Eviction struct {
	Slot    int
	Evicted string
	Loaded  string
	// Priorities holds the eviction priority of each occupied slot at the
	// time of the decision, in slot order.
	Priorities []int
}

// Step is the scheduler's work for one boundary.
type Step struct {
	Boundary int
	Label    string
	Beat     float64
	Lines    []string
	// Preload is the label loaded ahead of time at this boundary, if any.
	Preload     string
	PreloadSlot int
	Eviction    *Eviction
	// Resident reports whether the boundary's game was loaded when its
	// segment began.
	Resident  bool
	Slots     []string
	RestTicks int
}

// Plan is the full schedule for a timeline.
type Plan struct {
	SlotCount int
	Steps     []Step
}

// Text renders the swap instruction stream.
func (p *Plan) Text() string {
	var b strings.Builder
	for _, step := range p.Steps {
		for _, line := range step.Lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Evictions counts boundaries whose pre-load displaced a resident game.
func (p *Plan) Evictions() int {
	n := 0
	for _, step := range p.Steps {
		if step.Eviction != nil {
			n++
		}
	}
	return n
}

// Preloads counts pre-load instructions.
func (p *Plan) Preloads() int {
	n := 0
	for _, step := range p.Steps {
		if step.Preload != "" {
			n++
		}
	}
	return n
}

// Stalls lists the boundaries whose game was not resident when it started.
func (p *Plan) Stalls() []int {
	var out []int
	for _, step := range p.Steps {
		if !step.Resident {
			out = append(out, step.Boundary)
		}
	}
	return out
}
