package ticks

import (
	"fmt"
	"strconv"
	"strings"
)

// Style selects how tick counts are written in generated tickflow.
type Style int

const (
	// StyleInt writes plain decimal tick counts ("192").
	StyleInt Style = iota
	// StyleHex writes uppercase hexadecimal with a 0x prefix ("0xC0").
	StyleHex
	// StyleNote writes note-length expressions ("whole", "quarter * 3").
	StyleNote
)

func (s Style) String() string {
	switch s {
	case StyleHex:
		return "hex"
	case StyleNote:
		return "note"
	default:
		return "int"
	}
}

// ParseStyle maps a configuration value onto a Style.
func ParseStyle(value string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "int", "":
		return StyleInt, nil
	case "hex":
		return StyleHex, nil
	case "note", "note-name", "note_name":
		return StyleNote, nil
	default:
		return StyleInt, fmt.Errorf("unsupported tick style %q", value)
	}
}

type noteUnit struct {
	name  string
	ticks int
}

// Largest first. Half notes are intentionally absent.
var noteUnits = []noteUnit{
	{"whole", 192},
	{"quarter", 48},
	{"eighth", 24},
	{"sixteenth", 12},
	{"thirtysecond", 6},
}

// Literal formats a tick count according to style.
func Literal(t int, style Style) string {
	switch style {
	case StyleHex:
		return fmt.Sprintf("0x%X", t)
	case StyleNote:
		return noteLiteral(t)
	default:
		return strconv.Itoa(t)
	}
}

func noteLiteral(t int) string {
	if t == 0 {
		return "0"
	}
	name, unit := "tick", 1
	for _, u := range noteUnits {
		if t%u.ticks == 0 {
			name, unit = u.name, u.ticks
			break
		}
	}
	if q := t / unit; q != 1 {
		return name + " * " + strconv.Itoa(q)
	}
	return name
}
