package stats

// Action maps a button label to the counter deltas it applies. Implied is the
// attempt counter incremented alongside a made shot, empty for everything
// else.
type Action struct {
	Label   string `json:"label"`
	Primary Stat   `json:"primary"`
	Implied Stat   `json:"implied,omitempty"`
}

// Catalog is configuration, not control flow: adding an entry here is all it
// takes to expose a new action to callers.
var Catalog = []Action{
	{Label: "Made 2-pointer", Primary: TwoPointMade, Implied: TwoPointAtt},
	{Label: "Missed 2-pointer", Primary: TwoPointAtt},
	{Label: "Made 3-pointer", Primary: ThreePointMade, Implied: ThreePointAtt},
	{Label: "Missed 3-pointer", Primary: ThreePointAtt},
	{Label: "Rebound", Primary: Rebound},
	{Label: "Assist", Primary: Assist},
	{Label: "Steal", Primary: Steal},
	{Label: "Block", Primary: Block},
	{Label: "Turnover", Primary: Turnover},
}

func lookupAction(label string) (Action, bool) {
	for _, a := range Catalog {
		if a.Label == label {
			return a, true
		}
	}
	return Action{}, false
}

// Delta is one signed change to one counter.
type Delta struct {
	Stat  Stat `json:"stat"`
	Value int  `json:"value"`
}

// Mutation is a non-empty ordered set of deltas applied to one player's
// counters as a single undoable unit.
type Mutation []Delta

func (a Action) mutation() Mutation {
	m := Mutation{{Stat: a.Primary, Value: 1}}
	if a.Implied != "" {
		m = append(m, Delta{Stat: a.Implied, Value: 1})
	}
	return m
}
