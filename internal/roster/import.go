package roster

import (
	"StatClickerApi/internal/stats"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
)

// ErrNoNameColumn is returned when a roster source has no recognizable name
// column. The whole import is aborted and the caller's current roster must be
// left untouched.
var ErrNoNameColumn = errors.New("roster source must include a name column")

// numberColumns is the header match priority for the optional jersey number
// column; first match wins.
var numberColumns = []string{"number", "jersey", "jersey_number"}

// ParseCSV reads a roster source with a header row and returns one ledger
// seed per data row with a non-blank name. Header matching is
// case-insensitive and trimmed; unrecognized columns are ignored. Rows may
// have more or fewer fields than the header.
func ParseCSV(r io.Reader) ([]stats.Seed, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoNameColumn
		}
		return nil, err
	}

	nameIdx := matchColumn(header, "name")
	if nameIdx == -1 {
		return nil, ErrNoNameColumn
	}

	numberIdx := -1
	for _, candidate := range numberColumns {
		if i := matchColumn(header, candidate); i != -1 {
			numberIdx = i
			break
		}
	}

	seeds := make([]stats.Seed, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		name := field(record, nameIdx)
		if name == "" {
			continue
		}
		seeds = append(seeds, stats.Seed{
			Name:   name,
			Number: field(record, numberIdx),
		})
	}

	return seeds, nil
}

func matchColumn(header []string, name string) int {
	for i, c := range header {
		if strings.EqualFold(strings.TrimSpace(c), name) {
			return i
		}
	}
	return -1
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// LoadFile is the best-effort auto-load path: a missing, unreadable or
// malformed file is a silent no-op, never a user-visible error.
func LoadFile(path string) ([]stats.Seed, bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	seeds, err := ParseCSV(f)
	if err != nil {
		return nil, false
	}
	return seeds, true
}

// Template is the downloadable roster CSV template.
func Template() string {
	return "name,number\nPlayer 1,1\nPlayer 2,2\n"
}
