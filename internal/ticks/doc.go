// Package ticks converts musical beat lengths into tickflow tick counts and
// renders them as rest instructions.
//
// One beat is 48 ticks. Durations are rounded to the nearest tick and must be
// non-negative. Rendering is a pure formatting concern: the same tick count
// can be written as hexadecimal, decimal, or as a note-length expression such
// as "quarter * 3", and long rests can optionally be broken into standard
// note-length chunks. Half-note chunks are never produced.
package ticks
