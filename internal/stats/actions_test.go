package stats

import (
	"StatClickerApi/internal/assert"
	"testing"
)

func TestCatalog(t *testing.T) {
	assert.Equal(t, len(Catalog), 9)

	impliedWant := map[string]Stat{
		"Made 2-pointer": TwoPointAtt,
		"Made 3-pointer": ThreePointAtt,
	}

	for _, action := range Catalog {
		t.Run(action.Label, func(t *testing.T) {
			m := action.mutation()
			assert.Equal(t, m[0].Stat, action.Primary)
			assert.Equal(t, m[0].Value, 1)

			if want, ok := impliedWant[action.Label]; ok {
				assert.Equal(t, len(m), 2)
				assert.Equal(t, m[1].Stat, want)
				assert.Equal(t, m[1].Value, 1)
				return
			}
			assert.Equal(t, len(m), 1)
		})
	}
}

func TestLookupAction(t *testing.T) {
	a, ok := lookupAction("Made 3-pointer")
	assert.Equal(t, ok, true)
	assert.Equal(t, a.Primary, ThreePointMade)
	assert.Equal(t, a.Implied, ThreePointAtt)

	_, ok = lookupAction("made 3-pointer")
	assert.Equal(t, ok, false)
}
