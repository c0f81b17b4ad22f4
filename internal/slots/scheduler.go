package slots

import (
	"fmt"

	"tickgen/internal/remix"
	"tickgen/internal/routine"
	"tickgen/internal/ticks"
)

// Lookahead is how many boundaries ahead a game is pre-loaded.
const Lookahead = 2

// minLoadedForPreload is the occupancy at which pre-loading starts.
const minLoadedForPreload = 2

// Options configures a Scheduler.
type Options struct {
	Slots int
	Style ticks.Style
	Split bool
	Names routine.Names
}

// Scheduler assigns games to engine slots across a timeline.
type Scheduler struct {
	opts Options
	tl   *remix.Timeline
}

// New returns a scheduler for tl.
func New(tl *remix.Timeline, opts Options) *Scheduler {
	return &Scheduler{opts: opts, tl: tl}
}

type run struct {
	opts     Options
	bounds   []remix.Boundary
	labels   []string
	next     nextUse
	occ      *Occupancy
	position float64
	end      *remix.Cue
}

// Run walks every boundary and returns the schedule.
func (s *Scheduler) Run() (*Plan, error) {
	if s.opts.Slots < 1 {
		return nil, fmt.Errorf("slot count %d: need at least one slot", s.opts.Slots)
	}
	bounds := s.tl.Boundaries()
	if len(bounds) == 0 {
		return nil, remix.ErrEmptyTimeline
	}
	labels := s.tl.Labels()
	r := &run{
		opts:   s.opts,
		bounds: bounds,
		labels: labels,
		next:   newNextUse(labels),
		occ:    NewOccupancy(s.opts.Slots),
	}
	if end, ok := s.tl.End(); ok {
		r.end = &end
	}

	plan := &Plan{SlotCount: s.opts.Slots, Steps: make([]Step, 0, len(bounds))}
	for i := range bounds {
		step, err := r.process(i)
		if err != nil {
			return nil, err
		}
		plan.Steps = append(plan.Steps, step)
	}
	return plan, nil
}

func (r *run) process(i int) (Step, error) {
	b := r.bounds[i]
	step := Step{Boundary: i, Label: b.Label, Beat: b.Beat, PreloadSlot: -1}
	names := r.opts.Names

	if r.occ.Loaded() != 0 {
		step.Lines = append(step.Lines,
			"call "+names.SwapEngine,
			"engine "+names.EngineID(b.Label),
			"sub 4",
			"0x29<2>",
			"async_call "+names.SectionLabel(i),
		)
	} else {
		step.Lines = append(step.Lines,
			"rest quarter",
			"async_call "+names.FirstSection,
		)
	}

	if r.occ.Loaded() >= minLoadedForPreload {
		if err := r.preload(i, &step); err != nil {
			return Step{}, err
		}
	}

	if !r.occ.Full() {
		r.occ.Fill(b.Label)
	}
	_, step.Resident = r.occ.SlotOf(b.Label)

	rest, err := r.restAfter(i)
	if err != nil {
		return Step{}, err
	}
	step.RestTicks = rest
	step.Lines = append(step.Lines, ticks.RenderRest(rest, r.opts.Style, r.opts.Split)...)
	step.Slots = r.occ.Snapshot()
	return step, nil
}

// preload loads the game Lookahead boundaries ahead, evicting the resident
// game with the farthest next use. Only occupied slots are candidates.
func (r *run) preload(i int, step *Step) error {
	ahead := i + Lookahead
	if ahead >= len(r.labels) {
		return nil
	}
	label := r.labels[ahead]
	if _, ok := r.occ.SlotOf(label); ok {
		return nil
	}

	current := r.labels[i]
	priorities := make([]int, 0, r.occ.Len())
	victim, best := -1, -1
	for slot := 0; slot < r.occ.Len(); slot++ {
		occupant, ok := r.occ.At(slot)
		if !ok {
			continue
		}
		p := 0
		if occupant != current {
			p = r.next.distance(occupant, i)
		}
		priorities = append(priorities, p)
		if p > best {
			victim, best = slot, p
		}
	}
	if victim < 0 || best == 0 {
		return remix.AtBoundary(nil, i, r.bounds[i].Beat,
			fmt.Errorf("no evictable slot for %q", label))
	}

	evicted, err := r.occ.Replace(victim, label)
	if err != nil {
		return remix.AtBoundary(nil, i, r.bounds[i].Beat, err)
	}
	step.Preload = label
	step.PreloadSlot = victim
	step.Eviction = &Eviction{Slot: victim, Evicted: evicted, Loaded: label, Priorities: priorities}
	step.Lines = append(step.Lines, "async_call "+r.opts.Names.SlotLoader(label, victim))
	return nil
}

// restAfter returns the ticks from the current position to the next boundary,
// or to the end marker after the last boundary, and advances the position.
func (r *run) restAfter(i int) (int, error) {
	beat := r.bounds[i].Beat
	var target float64
	if i+1 < len(r.bounds) {
		target = r.bounds[i+1].Beat
	} else {
		if r.end == nil {
			return 0, remix.AtBoundary(remix.ErrMissingEndMarker, i, beat, nil)
		}
		target = r.end.Beat
	}
	t, err := ticks.Between(r.position, target)
	if err != nil {
		return 0, remix.AtBoundary(nil, i, beat, err)
	}
	r.position = target
	return t, nil
}
