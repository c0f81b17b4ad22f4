// Package sections emits the per-game cue routines ("sections") of a remix.
//
// Each segment boundary owns one labelled routine holding a placeholder line
// for every gameplay cue in its segment, separated by quantized rests. The
// opening routine carries the engine start-up prologue; every later routine
// starts with the default game setup call.
package sections
