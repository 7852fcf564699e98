package stats

import "sync"

// Stat is a string type to define keys of the counter map in a Statline.
type Stat string

const (
	Rebound        Stat = "REB"
	Assist         Stat = "AST"
	TwoPointMade   Stat = "2PM"
	TwoPointAtt    Stat = "2PA"
	ThreePointMade Stat = "3PM"
	ThreePointAtt  Stat = "3PA"
	Steal          Stat = "STL"
	Block          Stat = "BLK"
	Turnover       Stat = "TOV"
)

// Counters lists every stored counter in display order. Derived values such
// as points are never part of this list.
var Counters = []Stat{
	Rebound,
	Assist,
	TwoPointMade,
	TwoPointAtt,
	ThreePointMade,
	ThreePointAtt,
	Steal,
	Block,
	Turnover,
}

// Statline holds a map with keys of type Stat and value of type int. Int value
// holds current value of stat. Made and attempted counters are independent:
// nothing here ties 2PM to 2PA beyond the action catalog incrementing them
// together, so out-of-order action streams can record more makes than
// attempts.
type Statline struct {
	stats map[Stat]int
	mu    sync.Mutex
}

// get(): gets int value for key Stat
func (sl *Statline) get(stat Stat) int {
	return sl.stats[stat]
}

// set(): locks memory and adds int provided to value for key Stat, saturating
// at zero. Returns new value.
func (sl *Statline) set(stat Stat, add int) int {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	next := sl.stats[stat] + add
	if next < 0 {
		next = 0
	}
	sl.stats[stat] = next
	return next
}

// newStatline returns a pointer to a Statline with every counter in Counters
// initialized to 0.
func newStatline() *Statline {
	statline := Statline{
		stats: make(map[Stat]int),
	}
	for _, s := range Counters {
		statline.stats[s] = 0
	}
	return &statline
}
