package slots

import "fmt"

// Occupancy is a fixed set of slots indexed 0..N-1 with a reverse map from
// label to slot. A label occupies at most one slot.
type Occupancy struct {
	slots  []string
	used   []bool
	index  map[string]int
	loaded int
}

// NewOccupancy returns n empty slots.
func NewOccupancy(n int) *Occupancy {
	return &Occupancy{
		slots: make([]string, n),
		used:  make([]bool, n),
		index: make(map[string]int, n),
	}
}

// Len returns the slot count.
func (o *Occupancy) Len() int { return len(o.slots) }

// Loaded returns the number of occupied slots.
func (o *Occupancy) Loaded() int { return o.loaded }

// Full reports whether every slot is occupied.
func (o *Occupancy) Full() bool { return o.loaded == len(o.slots) }

// At returns the label in slot i.
func (o *Occupancy) At(i int) (string, bool) {
	if i < 0 || i >= len(o.slots) || !o.used[i] {
		return "", false
	}
	return o.slots[i], true
}

// SlotOf returns the slot holding label.
func (o *Occupancy) SlotOf(label string) (int, bool) {
	i, ok := o.index[label]
	return i, ok
}

// Fill places label in the lowest free slot. It is a no-op when the label is
// already resident or no slot is free.
func (o *Occupancy) Fill(label string) (int, bool) {
	if _, ok := o.index[label]; ok {
		return 0, false
	}
	for i, used := range o.used {
		if used {
			continue
		}
		o.slots[i] = label
		o.used[i] = true
		o.index[label] = i
		o.loaded++
		return i, true
	}
	return 0, false
}

// Replace evicts the occupant of slot i in favour of label and returns the
// evicted label.
func (o *Occupancy) Replace(i int, label string) (string, error) {
	if i < 0 || i >= len(o.slots) || !o.used[i] {
		return "", fmt.Errorf("replace slot %d: slot is not occupied", i)
	}
	if j, ok := o.index[label]; ok {
		return "", fmt.Errorf("replace slot %d: %q already resident in slot %d", i, label, j)
	}
	evicted := o.slots[i]
	delete(o.index, evicted)
	o.slots[i] = label
	o.index[label] = i
	return evicted, nil
}

// Snapshot copies the slot contents; empty slots are "".
func (o *Occupancy) Snapshot() []string {
	out := make([]string, len(o.slots))
	copy(out, o.slots)
	return out
}
