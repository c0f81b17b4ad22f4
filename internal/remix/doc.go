// Package remix models a decoded rhythm-game remix project as an ordered cue
// timeline.
//
// Projects arrive either as a bare remix.json document or as a .rhre3 zip
// container holding one. Decode sniffs the container, decodes the entity list
// into Cue values, and NewTimeline derives the segment boundaries (subtitle
// cues naming the minigame that starts there) and the end marker. Game labels
// are NFC-normalized so visually identical names compare equal.
//
// Timeline values are read-only once built; the scheduling and emission
// packages only ever read them.
package remix
