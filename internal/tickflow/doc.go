// Package tickflow assembles the swaps and sections documents for a remix
// timeline. Generate is a pure function of the timeline and Options; it
// performs no I/O and never returns a partial result.
package tickflow
