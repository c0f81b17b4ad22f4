package remix

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	// CategoryBoundary marks the start of a new minigame segment.
	CategoryBoundary = "specialVfx_subtitleEntity"
	// CategoryEnd marks the end of the remix.
	CategoryEnd = "special_endEntity"

	specialPrefix = "special"
	labelField    = "subtitle"
)

// Cue is one timeline entity.
type Cue struct {
	// Index is the cue's position in the project's entity list.
	Index    int
	Beat     float64
	Category string
	// Fields holds every other entity key, undecoded beyond JSON types.
	Fields map[string]any
}

// IsSpecial reports whether the cue is a control cue rather than gameplay.
func (c Cue) IsSpecial() bool {
	return strings.HasPrefix(c.Category, specialPrefix)
}

// Label returns the normalized game label carried by a boundary cue.
func (c Cue) Label() string {
	raw, _ := c.Fields[labelField].(string)
	return NormalizeLabel(raw)
}

// NormalizeLabel trims a game label and converts it to NFC.
func NormalizeLabel(label string) string {
	return norm.NFC.String(strings.TrimSpace(label))
}
