// Package routine names the labels and subroutines that generated tickflow
// refers to.
package routine

import (
	"fmt"
	"strconv"
)

// Names holds every configurable identifier written into generated tickflow.
type Names struct {
	SwapEngine    string
	DefaultSetup  string
	Metronome     string
	FirstSection  string
	SectionPrefix string
	EnginePrefix  string
}

// Default returns the names used by the reference engine patch.
func Default() Names {
	return Names{
		SwapEngine:    "swapEngine",
		DefaultSetup:  "defaultGameSetup",
		Metronome:     "metronome",
		FirstSection:  "startingGame",
		SectionPrefix: "section",
		EnginePrefix:  "engID_",
	}
}

// SectionLabel returns the label of the section started by boundary i. The
// first section has a fixed name; later ones are numbered from 02.
func (n Names) SectionLabel(i int) string {
	if i == 0 {
		return n.FirstSection
	}
	return fmt.Sprintf("%s%02d", n.SectionPrefix, i+1)
}

// EngineID returns the engine constant for a game label.
func (n Names) EngineID(label string) string {
	return n.EnginePrefix + label
}

// SlotLoader returns the routine that loads label into slot.
func (n Names) SlotLoader(label string, slot int) string {
	return label + "_slot" + strconv.Itoa(slot)
}
