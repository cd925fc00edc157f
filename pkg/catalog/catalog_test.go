package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Run("returns known experiment", func(t *testing.T) {
		exp, err := Lookup(7)
		require.NoError(t, err)
		assert.Equal(t, "Boron (Dissolved)", exp.Name)
		assert.Equal(t, []Reagent{{"KR7E1", 1100}, {"KR7E2", 1860}}, exp.Reagents)
	})

	t.Run("unknown id wraps ErrUnknownExperiment", func(t *testing.T) {
		_, err := Lookup(999)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownExperiment)
		assert.Contains(t, err.Error(), "999")
	})

	t.Run("ids skipped in the catalog are unknown", func(t *testing.T) {
		// The catalog numbering has gaps (23-26, 32-33, ...).
		for _, id := range []int{0, 23, 26, 32, 33, 41, 43} {
			_, err := Lookup(id)
			assert.ErrorIs(t, err, ErrUnknownExperiment, "id %d", id)
		}
	})
}

func TestList(t *testing.T) {
	all := List()
	require.Len(t, all, 32)

	t.Run("catalog order is id ascending", func(t *testing.T) {
		for i := 1; i < len(all); i++ {
			assert.Greater(t, all[i].ID, all[i-1].ID)
		}
	})

	t.Run("entries are well formed", func(t *testing.T) {
		for _, exp := range all {
			assert.NotEmpty(t, exp.Name, "id %d", exp.ID)
			require.NotEmpty(t, exp.Reagents, "id %d", exp.ID)
			assert.LessOrEqual(t, len(exp.Reagents), 4, "id %d", exp.ID)

			seen := make(map[string]bool)
			for _, r := range exp.Reagents {
				assert.Positive(t, r.VolumeUL, "id %d reagent %s", exp.ID, r.Code)
				assert.False(t, seen[r.Code], "id %d duplicate code %s", exp.ID, r.Code)
				seen[r.Code] = true
			}
		}
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		all[0] = Experiment{}
		fresh := List()
		assert.Equal(t, 1, fresh[0].ID)
	})
}

func TestExperimentVolumes(t *testing.T) {
	tests := []struct {
		id     int
		count  int
		maxVol int
		minVol int
	}{
		{id: 1, count: 2, maxVol: 850, minVol: 300},
		{id: 11, count: 1, maxVol: 1000, minVol: 1000},
		{id: 16, count: 4, maxVol: 1000, minVol: 1000},
		{id: 28, count: 3, maxVol: 2000, minVol: 1000},
		{id: 36, count: 2, maxVol: 2300, minVol: 1000},
	}

	for _, tt := range tests {
		exp, err := Lookup(tt.id)
		require.NoError(t, err)
		assert.Equal(t, tt.count, exp.ReagentCount(), "id %d count", tt.id)
		assert.Equal(t, tt.maxVol, exp.MaxVolumeUL(), "id %d max", tt.id)
		assert.Equal(t, tt.minVol, exp.MinVolumeUL(), "id %d min", tt.id)
	}
}
