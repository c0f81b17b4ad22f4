package ticks

// chunkSizes lists the rest chunk sizes tried when splitting, largest first.
// It is the halving sequence from a whole note with 96 removed.
var chunkSizes = []int{192, 48, 24, 12, 6, 3, 1}

// Chunk is a run of equally sized rest units.
type Chunk struct {
	Size  int
	Count int
}

// Ticks returns the total duration of the run.
func (c Chunk) Ticks() int {
	return c.Size * c.Count
}

// Chunks greedily decomposes t into runs of chunk units, largest unit first.
// Unit sizes that do not fit are omitted, and the runs always sum to t.
func Chunks(t int) []Chunk {
	if t <= 0 {
		return nil
	}
	var out []Chunk
	remaining := t
	for _, size := range chunkSizes {
		count := 0
		for remaining-size >= 0 {
			remaining -= size
			count++
		}
		if count != 0 {
			out = append(out, Chunk{Size: size, Count: count})
		}
	}
	return out
}

// RenderRest returns the rest instructions covering t ticks. A zero-length
// rest produces no instructions. With split enabled, one rest is written per
// chunk run.
func RenderRest(t int, style Style, split bool) []string {
	if t <= 0 {
		return nil
	}
	if !split {
		return []string{"rest " + Literal(t, style)}
	}
	chunks := Chunks(t)
	lines := make([]string, 0, len(chunks))
	for _, c := range chunks {
		lines = append(lines, "rest "+Literal(c.Ticks(), style))
	}
	return lines
}
