package remix

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyTimeline        = errors.New("timeline has no segment boundaries")
	ErrMissingEndMarker     = errors.New("timeline has no end marker")
	ErrDuplicateEndMarker   = errors.New("timeline has more than one end marker")
	ErrUnorderedBoundaries  = errors.New("segment boundaries are not strictly increasing")
	ErrUnrecognizedCategory = errors.New("unrecognized cue category")
	ErrInvalidProject       = errors.New("invalid remix project")
)

// PositionError ties a failure to the boundary or cue where it surfaced.
type PositionError struct {
	// Kind is one of the sentinel errors above, or another package's sentinel.
	Kind error
	// Subject is "boundary" or "cue".
	Subject string
	Index   int
	Beat    float64
	Err     error
}

func (e *PositionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d (beat %g)", e.Subject, e.Index, e.Beat)
	if e.Kind != nil {
		b.WriteString(": ")
		b.WriteString(e.Kind.Error())
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *PositionError) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

// AtBoundary builds a PositionError for boundary index i.
func AtBoundary(kind error, i int, beat float64, err error) error {
	return &PositionError{Kind: kind, Subject: "boundary", Index: i, Beat: beat, Err: err}
}

// AtCue builds a PositionError for the cue at entity index i.
func AtCue(kind error, i int, beat float64, err error) error {
	return &PositionError{Kind: kind, Subject: "cue", Index: i, Beat: beat, Err: err}
}
