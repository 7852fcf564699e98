package stats

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrPlayerNotFound  = errors.New("player not found")
	ErrActionNotFound  = errors.New("action not found")
	ErrBlankPlayerName = errors.New("player name must not be blank")
)

type player struct {
	id     int64
	name   string
	number string
	line   *Statline
}

type historyEntry struct {
	playerID int64
	mutation Mutation
}

// Seed is one roster entry produced by an importer: a trimmed, non-blank name
// and an optional jersey number.
type Seed struct {
	Name   string
	Number string
}

// Ledger is the authoritative owner of the roster and every player's
// counters, and the only type permitted to mutate them. Players live in an
// arena keyed by a monotonically increasing id; roster order is a separate
// ordered id list, so ids stay stable across removals. The ledger and its
// undo history form a single unit of mutual exclusion: a mutation is applied
// and its undo entry pushed under one lock, never interleaved.
type Ledger struct {
	mu      sync.Mutex
	players map[int64]*player
	order   []int64
	nextID  int64
	history []historyEntry
}

func NewLedger() *Ledger {
	return &Ledger{
		players: make(map[int64]*player),
	}
}

// AddPlayer appends a player with all counters zero and returns its id.
func (l *Ledger) AddPlayer(name, number string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrBlankPlayerName
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.add(name, strings.TrimSpace(number)), nil
}

// add appends to the arena and order list. Callers must hold l.mu and pass a
// trimmed, non-blank name.
func (l *Ledger) add(name, number string) int64 {
	l.nextID++
	p := &player{
		id:     l.nextID,
		name:   name,
		number: number,
		line:   newStatline(),
	}
	l.players[p.id] = p
	l.order = append(l.order, p.id)
	return p.id
}

// RemovePlayer deletes the player and clears the undo history: history
// entries must never outlive a structural roster edit.
func (l *Ledger) RemovePlayer(id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.players[id]; !ok {
		return ErrPlayerNotFound
	}
	delete(l.players, id)

	order := make([]int64, 0, len(l.order)-1)
	for _, oid := range l.order {
		if oid != id {
			order = append(order, oid)
		}
	}
	l.order = order
	l.history = nil
	return nil
}

// ResetAllStats zeroes every player's counters, preserving names and order,
// and clears the undo history.
func (l *Ledger) ResetAllStats() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.players {
		p.line = newStatline()
	}
	l.history = nil
}

// ClearRoster empties the roster and the undo history.
func (l *Ledger) ClearRoster() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.players = make(map[int64]*player)
	l.order = nil
	l.history = nil
}

// Replace swaps in an imported roster wholesale. The undo history cannot
// survive a replacement. Ids keep counting up from the previous roster, so
// no id is ever reused within one session.
func (l *Ledger) Replace(seeds []Seed) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.players = make(map[int64]*player)
	l.order = nil
	l.history = nil
	for _, s := range seeds {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		l.add(name, strings.TrimSpace(s.Number))
	}
}

// ApplyAction resolves the named action through the catalog, applies its
// deltas to the player's counters with floor-clamping at zero, and pushes the
// result onto the undo history. The returned mutation carries the deltas
// actually applied, which can be smaller than requested when a decrement
// clamps.
func (l *Ledger) ApplyAction(playerID int64, label string) (Mutation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.players[playerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	action, ok := lookupAction(label)
	if !ok {
		return nil, ErrActionNotFound
	}

	requested := action.mutation()
	applied := make(Mutation, 0, len(requested))
	for _, d := range requested {
		before := p.line.get(d.Stat)
		after := p.line.set(d.Stat, d.Value)
		applied = append(applied, Delta{Stat: d.Stat, Value: after - before})
	}

	l.history = append(l.history, historyEntry{playerID: playerID, mutation: applied})
	return applied, nil
}

// Undo pops the most recent mutation and subtracts its deltas with the same
// floor clamp as forward application, so undoing a clamped decrement is not
// guaranteed to restore the exact prior state. Returns false when there is
// nothing to undo.
func (l *Ledger) Undo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.history) == 0 {
		return false
	}
	entry := l.history[len(l.history)-1]
	l.history = l.history[:len(l.history)-1]

	p, ok := l.players[entry.playerID]
	if !ok {
		// structural edits clear the history, so a stale id should not
		// happen; discard silently if it does
		return true
	}
	for _, d := range entry.mutation {
		p.line.set(d.Stat, -d.Value)
	}
	return true
}

// DerivedPoints recomputes the player's points from current counters.
func (l *Ledger) DerivedPoints(playerID int64) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.players[playerID]
	if !ok {
		return 0, ErrPlayerNotFound
	}
	return playerPoints.getFunc(p.line), nil
}

// Line is the read-side view of one player: a copy of the counters plus every
// derived stat, safe to hand to projectors without structural sharing.
type Line struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Number   string       `json:"number"`
	Points   int          `json:"pts"`
	Counters map[Stat]int `json:"counters"`
}

func (l *Ledger) line(p *player) Line {
	counters := make(map[Stat]int, len(Counters))
	for _, s := range Counters {
		counters[s] = p.line.get(s)
	}
	return Line{
		ID:       p.id,
		Name:     p.name,
		Number:   p.number,
		Points:   playerPoints.getFunc(p.line),
		Counters: counters,
	}
}

// Lines returns every player's line in roster order.
func (l *Ledger) Lines() []Line {
	l.mu.Lock()
	defer l.mu.Unlock()

	lines := make([]Line, 0, len(l.order))
	for _, id := range l.order {
		lines = append(lines, l.line(l.players[id]))
	}
	return lines
}

// Line returns a single player's line.
func (l *Ledger) Line(playerID int64) (Line, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.players[playerID]
	if !ok {
		return Line{}, ErrPlayerNotFound
	}
	return l.line(p), nil
}

// Size returns the number of rostered players.
func (l *Ledger) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.order)
}
