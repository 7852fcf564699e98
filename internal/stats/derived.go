package stats

// DerivedStat is a value computed on read from stored counters and never
// itself stored, so it cannot go stale.
type DerivedStat struct {
	name    string
	getFunc func(sl *Statline) int
	req     []Stat
}

func (ds DerivedStat) getName() string {
	return ds.name
}

// DERIVED STATS
var (
	playerPoints = DerivedStat{
		name: "PTS",
		getFunc: func(sl *Statline) int {
			var points int
			points += sl.get(TwoPointMade) * 2
			points += sl.get(ThreePointMade) * 3
			return points
		},
		req: []Stat{TwoPointMade, ThreePointMade},
	}
)
