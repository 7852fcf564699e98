package boxscore

import (
	"StatClickerApi/internal/assert"
	"StatClickerApi/internal/stats"
	"bytes"
	"strings"
	"testing"
)

func buildLedger(t *testing.T) (*stats.Ledger, int64, int64) {
	t.Helper()

	l := stats.NewLedger()
	alice, err := l.AddPlayer("Alice", "12")
	assert.NilError(t, err)
	bob, err := l.AddPlayer("Bob", "7")
	assert.NilError(t, err)

	// Alice: 3PM=2, 3PA=3
	for i := 0; i < 2; i++ {
		_, err = l.ApplyAction(alice, "Made 3-pointer")
		assert.NilError(t, err)
	}
	_, err = l.ApplyAction(alice, "Missed 3-pointer")
	assert.NilError(t, err)

	// Bob: 2PM=1, 2PA=1
	_, err = l.ApplyAction(bob, "Made 2-pointer")
	assert.NilError(t, err)

	return l, alice, bob
}

func TestProject(t *testing.T) {
	l, _, _ := buildLedger(t)
	table := Project(l.Lines())

	assert.StringSliceEqual(t, table.Columns, []string{
		"PLAYER", "NUMBER", "PTS",
		"REB", "AST", "2PM", "2PA", "3PM", "3PA", "STL", "BLK", "TOV",
	})
	assert.Equal(t, len(table.Rows), 3)

	aliceRow := table.Rows[0]
	assert.Equal(t, aliceRow.Player, "Alice")
	assert.Equal(t, aliceRow.Points, 6)
	assert.Equal(t, aliceRow.Counters[stats.ThreePointMade], 2)
	assert.Equal(t, aliceRow.Counters[stats.ThreePointAtt], 3)
	assert.Equal(t, aliceRow.Counters[stats.Rebound], 0)

	bobRow := table.Rows[1]
	assert.Equal(t, bobRow.Player, "Bob")
	assert.Equal(t, bobRow.Points, 2)
	assert.Equal(t, bobRow.Counters[stats.TwoPointMade], 1)
	assert.Equal(t, bobRow.Counters[stats.TwoPointAtt], 1)

	totals := table.Rows[2]
	assert.Equal(t, totals.Player, TotalsLabel)
	assert.Equal(t, totals.Number, "")
	assert.Equal(t, totals.Points, 8)
	assert.Equal(t, totals.Counters[stats.TwoPointMade], 1)
	assert.Equal(t, totals.Counters[stats.TwoPointAtt], 1)
	assert.Equal(t, totals.Counters[stats.ThreePointMade], 2)
	assert.Equal(t, totals.Counters[stats.ThreePointAtt], 3)
	assert.Equal(t, totals.Counters[stats.Steal], 0)
}

func TestProjectEmptyRoster(t *testing.T) {
	table := Project(nil)
	assert.Equal(t, len(table.Rows), 0)
	assert.Equal(t, len(table.Columns), 12)
}

func TestWriteCSV(t *testing.T) {
	l, _, _ := buildLedger(t)

	var buf bytes.Buffer
	err := Project(l.Lines()).WriteCSV(&buf)
	assert.NilError(t, err)

	want := strings.Join([]string{
		"PLAYER,NUMBER,PTS,REB,AST,2PM,2PA,3PM,3PA,STL,BLK,TOV",
		"Alice,12,6,0,0,0,0,2,3,0,0,0",
		"Bob,7,2,0,0,1,1,0,0,0,0,0",
		"TOTALS,,8,0,0,1,1,2,3,0,0,0",
		"",
	}, "\n")
	assert.Equal(t, buf.String(), want)
}

func TestWriteCSVEmptyRoster(t *testing.T) {
	var buf bytes.Buffer
	err := Project(nil).WriteCSV(&buf)
	assert.NilError(t, err)
	assert.Equal(t, buf.String(), "PLAYER,NUMBER,PTS,REB,AST,2PM,2PA,3PM,3PA,STL,BLK,TOV\n")
}

func TestQuickView(t *testing.T) {
	l, alice, _ := buildLedger(t)
	line, err := l.Line(alice)
	assert.NilError(t, err)

	view := QuickView(line)
	assert.Equal(t, view["PTS"], "6")
	assert.Equal(t, view["3PM/3PA"], "2/3")
	assert.Equal(t, view["2PM/2PA"], "0/0")
	assert.Equal(t, view["REB"], "0")
}
