package roster

import (
	"StatClickerApi/internal/assert"
	"StatClickerApi/internal/stats"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []stats.Seed
		wantErr error
	}{
		{
			name:  "Name And Number",
			input: "name,number\nAlice,12\nBob,7\n",
			want: []stats.Seed{
				{Name: "Alice", Number: "12"},
				{Name: "Bob", Number: "7"},
			},
		},
		{
			name:  "Name Only",
			input: "name\nAlice\nBob\n",
			want: []stats.Seed{
				{Name: "Alice"},
				{Name: "Bob"},
			},
		},
		{
			name:  "Blank Name Rows Skipped",
			input: "name\nAlice\nBob\n,Eve\n",
			want: []stats.Seed{
				{Name: "Alice"},
				{Name: "Bob"},
			},
		},
		{
			name:  "Header Case Insensitive And Trimmed",
			input: " Name , NUMBER \nAlice,12\n",
			want: []stats.Seed{
				{Name: "Alice", Number: "12"},
			},
		},
		{
			name:  "Jersey Column Accepted",
			input: "jersey,name\n23,Alice\n",
			want: []stats.Seed{
				{Name: "Alice", Number: "23"},
			},
		},
		{
			name:  "Jersey Number Column Accepted",
			input: "name,jersey_number\nAlice,23\n",
			want: []stats.Seed{
				{Name: "Alice", Number: "23"},
			},
		},
		{
			name:  "Number Wins Over Jersey",
			input: "name,jersey,number\nAlice,99,12\n",
			want: []stats.Seed{
				{Name: "Alice", Number: "12"},
			},
		},
		{
			name:  "Extra Columns Ignored",
			input: "team,name,height,number\nHawks,Alice,180,12\n",
			want: []stats.Seed{
				{Name: "Alice", Number: "12"},
			},
		},
		{
			name:  "Short Rows Tolerated",
			input: "name,number\nAlice\n",
			want: []stats.Seed{
				{Name: "Alice"},
			},
		},
		{
			name:  "Fields Trimmed",
			input: "name,number\n  Alice  , 12 \n",
			want: []stats.Seed{
				{Name: "Alice", Number: "12"},
			},
		},
		{
			name:    "No Name Column",
			input:   "jersey,team\n12,Hawks\n",
			wantErr: ErrNoNameColumn,
		},
		{
			name:    "Empty Source",
			input:   "",
			wantErr: ErrNoNameColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seeds, err := ParseCSV(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NilError(t, err)

			assert.Equal(t, len(seeds), len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, seeds[i], want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("Missing File", func(t *testing.T) {
		_, ok := LoadFile(filepath.Join(t.TempDir(), "absent.csv"))
		assert.Equal(t, ok, false)
	})

	t.Run("Malformed File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roster.csv")
		err := os.WriteFile(path, []byte("jersey\n12\n"), 0o644)
		assert.NilError(t, err)

		_, ok := LoadFile(path)
		assert.Equal(t, ok, false)
	})

	t.Run("Readable File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roster.csv")
		err := os.WriteFile(path, []byte("name,number\nAlice,12\n"), 0o644)
		assert.NilError(t, err)

		seeds, ok := LoadFile(path)
		assert.Equal(t, ok, true)
		assert.Equal(t, len(seeds), 1)
		assert.Equal(t, seeds[0], stats.Seed{Name: "Alice", Number: "12"})
	})
}

func TestTemplate(t *testing.T) {
	seeds, err := ParseCSV(strings.NewReader(Template()))
	assert.NilError(t, err)
	assert.Equal(t, len(seeds), 2)
	assert.Equal(t, seeds[0], stats.Seed{Name: "Player 1", Number: "1"})
}
