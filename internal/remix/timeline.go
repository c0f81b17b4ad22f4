package remix

import (
	"errors"
	"fmt"
	"strings"
)

// Boundary is a segment boundary: the beat at which a minigame starts.
type Boundary struct {
	Cue
	Label string
}

// Timeline is the read-only view the generator works from.
type Timeline struct {
	cues       []Cue
	boundaries []Boundary
	end        *Cue
}

// NewTimeline indexes boundaries and the end marker. Boundaries must be
// strictly increasing; a missing end marker is tolerated here and reported by
// whichever step first needs it.
func NewTimeline(cues []Cue) (*Timeline, error) {
	tl := &Timeline{cues: make([]Cue, len(cues))}
	copy(tl.cues, cues)

	for i := range tl.cues {
		cue := tl.cues[i]
		switch cue.Category {
		case CategoryBoundary:
			if n := len(tl.boundaries); n > 0 && cue.Beat <= tl.boundaries[n-1].Beat {
				return nil, AtBoundary(ErrUnorderedBoundaries, n, cue.Beat,
					fmt.Errorf("previous boundary at beat %g", tl.boundaries[n-1].Beat))
			}
			tl.boundaries = append(tl.boundaries, Boundary{Cue: cue, Label: cue.Label()})
		case CategoryEnd:
			if tl.end != nil {
				return nil, AtCue(ErrDuplicateEndMarker, cue.Index, cue.Beat,
					fmt.Errorf("first end marker is cue %d", tl.end.Index))
			}
			tl.end = &tl.cues[i]
		}
	}
	return tl, nil
}

// Cues returns every cue in timeline order.
func (t *Timeline) Cues() []Cue { return t.cues }

// Boundaries returns the segment boundaries in order.
func (t *Timeline) Boundaries() []Boundary { return t.boundaries }

// Labels returns the game label of every boundary, in order.
func (t *Timeline) Labels() []string {
	labels := make([]string, len(t.boundaries))
	for i, b := range t.boundaries {
		labels[i] = b.Label
	}
	return labels
}

// End returns the end marker, if present.
func (t *Timeline) End() (Cue, bool) {
	if t.end == nil {
		return Cue{}, false
	}
	return *t.end, true
}

// CheckCategories rejects cues whose category is empty or a special kind not
// listed in known. Ordinary gameplay categories are always accepted.
func (t *Timeline) CheckCategories(known []string) error {
	allowed := make(map[string]struct{}, len(known)+2)
	allowed[CategoryBoundary] = struct{}{}
	allowed[CategoryEnd] = struct{}{}
	for _, k := range known {
		allowed[strings.TrimSpace(k)] = struct{}{}
	}
	for _, cue := range t.cues {
		if strings.TrimSpace(cue.Category) == "" {
			return AtCue(ErrUnrecognizedCategory, cue.Index, cue.Beat, errors.New("empty category"))
		}
		if !cue.IsSpecial() {
			continue
		}
		if _, ok := allowed[cue.Category]; !ok {
			return AtCue(ErrUnrecognizedCategory, cue.Index, cue.Beat, fmt.Errorf("category %q", cue.Category))
		}
	}
	return nil
}
