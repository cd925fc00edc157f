package optimizer

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ketos-lab/traylims/pkg/catalog"
	"github.com/ketos-lab/traylims/pkg/tray"
)

// TestOptimizeInvariants runs the optimizer over seeded random request sets
// and checks every structural invariant a valid configuration must satisfy.
func TestOptimizeInvariants(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		ids := randomRequest(rand.New(rand.NewSource(seed)))

		cfg, err := Optimize(ids)
		require.NoError(t, err, "seed %d ids %v", seed, ids)
		checkInvariants(t, cfg, ids)
	}
}

// randomRequest draws a random set of distinct catalog ids whose combined
// reagent count fits on one tray.
func randomRequest(rng *rand.Rand) []int {
	all := catalog.List()
	rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })

	limit := 1 + rng.Intn(tray.SlotCount)
	var ids []int
	total := 0
	for _, exp := range all {
		if total+exp.ReagentCount() > limit {
			continue
		}
		ids = append(ids, exp.ID)
		total += exp.ReagentCount()
	}
	return ids
}

func checkInvariants(t *testing.T, cfg *Configuration, requested []int) {
	t.Helper()

	// Walk every placement recorded in the results.
	slotSeen := make(map[int]Placement)
	totalPlacements := 0
	for id, res := range cfg.Results {
		assert.Contains(t, requested, id, "result for unrequested experiment")

		exp, err := catalog.Lookup(id)
		require.NoError(t, err)

		sumSets := 0
		for _, set := range res.Sets {
			require.Len(t, set.Placements, exp.ReagentCount(), "experiment %d set size", id)

			// Set minimum.
			minTests := set.Placements[0].TestsPossible
			for _, p := range set.Placements {
				if p.TestsPossible < minTests {
					minTests = p.TestsPossible
				}
			}
			assert.Equal(t, minTests, set.TestsPerSet, "experiment %d set minimum", id)
			sumSets += set.TestsPerSet

			checkPairing(t, exp, set)

			for _, p := range set.Placements {
				// Slot exclusivity.
				_, dup := slotSeen[p.SlotIndex]
				require.False(t, dup, "slot %d placed twice", p.SlotIndex)
				slotSeen[p.SlotIndex] = p
				totalPlacements++

				// Capacity correctness and tests formula.
				assert.Equal(t, p.SlotIndex < 4, p.CapacityML == 270, "slot %d capacity class", p.SlotIndex)
				assert.Equal(t, tray.CapacityML(p.SlotIndex), p.CapacityML, "slot %d capacity", p.SlotIndex)
				assert.Equal(t, p.CapacityML*1000/p.VolumeUL, p.TestsPossible, "slot %d tests", p.SlotIndex)
				assert.Equal(t, id, p.ExperimentID)
			}
		}

		// Total equals sum.
		assert.Equal(t, sumSets, res.TotalTests, "experiment %d total", id)
	}

	// Capacity bound.
	assert.LessOrEqual(t, totalPlacements, tray.SlotCount)

	// Result placements are exactly the non-empty tray slots, and the
	// available mask is their complement.
	for slot := 0; slot < tray.SlotCount; slot++ {
		placed, ok := slotSeen[slot]
		if ok {
			require.NotNil(t, cfg.Slots[slot], "slot %d occupied in results but empty in tray", slot)
			assert.Equal(t, placed, *cfg.Slots[slot], "slot %d", slot)
			assert.False(t, cfg.Available.Has(slot), "slot %d occupied but available", slot)
		} else {
			assert.Nil(t, cfg.Slots[slot], "slot %d empty in results but occupied in tray", slot)
			assert.True(t, cfg.Available.Has(slot), "slot %d empty but unavailable", slot)
		}
	}

	// Every requested experiment got a result with a primary set.
	for _, id := range requested {
		res := cfg.Results[id]
		require.NotNil(t, res, "experiment %d missing result", id)
		assert.NotEmpty(t, res.Sets, "experiment %d has no sets", id)
	}

	// No waste without cause: a zero-test experiment implies a full tray.
	for id, res := range cfg.Results {
		if res.TotalTests == 0 {
			assert.True(t, cfg.Available.IsEmpty(),
				"experiment %d yields no tests while slots remain", id)
		}
	}
}

// checkPairing verifies the volume-descending / slot-ascending rule: iterating
// the experiment's reagents by descending volume against the set's slots by
// ascending index reproduces the recorded placements.
func checkPairing(t *testing.T, exp catalog.Experiment, set Set) {
	t.Helper()

	reagents := slices.Clone(exp.Reagents)
	slices.SortStableFunc(reagents, func(a, b catalog.Reagent) int {
		return b.VolumeUL - a.VolumeUL
	})

	slots := make([]int, 0, len(set.Placements))
	for _, p := range set.Placements {
		slots = append(slots, p.SlotIndex)
	}
	slices.Sort(slots)

	for i, r := range reagents {
		assert.Equal(t, r.Code, set.Placements[i].ReagentCode, "pairing position %d", i)
		assert.Equal(t, r.VolumeUL, set.Placements[i].VolumeUL, "pairing position %d", i)
		assert.Equal(t, slots[i], set.Placements[i].SlotIndex, "pairing position %d", i)
	}
}
