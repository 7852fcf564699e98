// Package boxscore is the read side of the ledger: it projects roster lines
// into the exportable stat-sheet table and never mutates anything.
package boxscore

import (
	"StatClickerApi/internal/stats"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Columns is the export header, in exact order.
var Columns = []string{
	"PLAYER", "NUMBER", "PTS",
	"REB", "AST", "2PM", "2PA", "3PM", "3PA", "STL", "BLK", "TOV",
}

// TotalsLabel marks the trailing aggregate row.
const TotalsLabel = "TOTALS"

// Row is one line of the projected table. Counters keys are the stored stat
// columns; points ride alongside since they are derived, not stored.
type Row struct {
	Player   string             `json:"player"`
	Number   string             `json:"number"`
	Points   int                `json:"pts"`
	Counters map[stats.Stat]int `json:"counters"`
}

// Table is the projected box score: one row per player in roster order, plus
// a trailing TOTALS row when the roster is non-empty.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Project builds the table from read-side lines. Totals are summed over the
// player rows post-derivation; since points derive linearly this equals
// re-deriving from summed makes.
func Project(lines []stats.Line) Table {
	t := Table{
		Columns: Columns,
		Rows:    make([]Row, 0, len(lines)+1),
	}

	for _, line := range lines {
		t.Rows = append(t.Rows, Row{
			Player:   line.Name,
			Number:   line.Number,
			Points:   line.Points,
			Counters: line.Counters,
		})
	}

	if len(lines) > 0 {
		totals := Row{
			Player:   TotalsLabel,
			Counters: make(map[stats.Stat]int, len(stats.Counters)),
		}
		for _, r := range t.Rows {
			totals.Points += r.Points
			for _, s := range stats.Counters {
				totals.Counters[s] += r.Counters[s]
			}
		}
		t.Rows = append(t.Rows, totals)
	}

	return t
}

// WriteCSV renders the table as a downloadable stat sheet. Numeric fields
// render as plain integers.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, r := range t.Rows {
		record := make([]string, 0, len(t.Columns))
		record = append(record, r.Player, r.Number, strconv.Itoa(r.Points))
		for _, s := range stats.Counters {
			record = append(record, strconv.Itoa(r.Counters[s]))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// QuickView is the selected-player summary, with made/attempted splits
// rendered as "made/attempted".
func QuickView(line stats.Line) map[string]string {
	c := line.Counters
	return map[string]string{
		"PTS":     strconv.Itoa(line.Points),
		"REB":     strconv.Itoa(c[stats.Rebound]),
		"AST":     strconv.Itoa(c[stats.Assist]),
		"2PM/2PA": fmt.Sprintf("%d/%d", c[stats.TwoPointMade], c[stats.TwoPointAtt]),
		"3PM/3PA": fmt.Sprintf("%d/%d", c[stats.ThreePointMade], c[stats.ThreePointAtt]),
		"STL":     strconv.Itoa(c[stats.Steal]),
		"BLK":     strconv.Itoa(c[stats.Block]),
		"TOV":     strconv.Itoa(c[stats.Turnover]),
	}
}
