package ticks

import (
	"errors"
	"fmt"
	"math"
)

// PerBeat is the number of ticks in one musical beat.
const PerBeat = 48

// ErrInvalidDuration reports a negative beat length.
var ErrInvalidDuration = errors.New("invalid duration")

// TicksFor converts a beat length into the nearest whole tick count.
func TicksFor(beats float64) (int, error) {
	if beats < 0 || math.IsNaN(beats) || math.IsInf(beats, 0) {
		return 0, fmt.Errorf("%w: %g beats", ErrInvalidDuration, beats)
	}
	return int(math.Round(beats * PerBeat)), nil
}

// Between returns the tick length of the span from start to end (in beats).
func Between(start, end float64) (int, error) {
	return TicksFor(end - start)
}
