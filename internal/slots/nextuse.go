package slots

import (
	"math"
	"sort"
)

// NeverAgain is the eviction priority of a game that does not appear again.
const NeverAgain = math.MaxInt

// nextUse answers "how many boundaries until label is next played after i"
// from positions collected once up front.
type nextUse struct {
	positions map[string][]int
}

func newNextUse(labels []string) nextUse {
	positions := make(map[string][]int)
	for i, label := range labels {
		positions[label] = append(positions[label], i)
	}
	return nextUse{positions: positions}
}

// distance returns j-i for the first j > i where label plays, or NeverAgain.
func (n nextUse) distance(label string, i int) int {
	pos := n.positions[label]
	k := sort.SearchInts(pos, i+1)
	if k == len(pos) {
		return NeverAgain
	}
	return pos[k] - i
}
