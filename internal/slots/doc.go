// Package slots decides which minigames the playback engine keeps loaded.
//
// The engine has a fixed number of game slots. Walking the segment boundaries
// in order, the Scheduler emits the engine-swap block for each boundary, fills
// empty slots during start-up, and pre-loads the game two boundaries ahead.
// When a pre-load needs room it evicts the resident game whose next use is
// farthest away (games that never return first), and never the game about to
// play.
//
// The result is a Plan: the swap instruction stream plus a per-boundary record
// of slot contents and evictions for diagnostics.
package slots
