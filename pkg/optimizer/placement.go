package optimizer

import (
	"fmt"
	"slices"

	"github.com/ketos-lab/traylims/pkg/catalog"
	"github.com/ketos-lab/traylims/pkg/tray"
)

// reagentsByVolumeDesc returns the experiment's reagents ordered by per-test
// volume descending. The sort is stable so that equal-volume reagents keep
// their catalog order across every pairing computation.
func reagentsByVolumeDesc(reagents []catalog.Reagent) []catalog.Reagent {
	sorted := slices.Clone(reagents)
	slices.SortStableFunc(sorted, func(a, b catalog.Reagent) int {
		return b.VolumeUL - a.VolumeUL
	})
	return sorted
}

// installSet places one complete set of the experiment into the given slots
// and records it on the configuration.
//
// Pairing rule: reagents ordered by volume descending meet slots ordered by
// index ascending, positionally. Lower indices are the higher-capacity slots,
// and the set's test count is min-bounded, so the scarce capacity goes to the
// highest-volume reagent first.
//
// The slots must all be available and their count must equal the experiment's
// reagent count; a breach is an internal invariant violation and panics.
func (c *Configuration) installSet(exp catalog.Experiment, slotIndices []int) {
	if len(slotIndices) != len(exp.Reagents) {
		panic(fmt.Sprintf("optimizer: %d slots for %d reagents of experiment %d",
			len(slotIndices), len(exp.Reagents), exp.ID))
	}

	slots := slices.Clone(slotIndices)
	slices.Sort(slots)

	placements := make([]Placement, 0, len(slots))
	testsPerSet := 0
	for i, reagent := range reagentsByVolumeDesc(exp.Reagents) {
		slot := slots[i]
		if !c.Available.Has(slot) {
			panic(fmt.Sprintf("optimizer: slot %d is not available", slot))
		}

		capacity := tray.CapacityML(slot)
		tests := tray.TestsFrom(reagent.VolumeUL, capacity)
		placement := Placement{
			ReagentCode:   reagent.Code,
			ExperimentID:  exp.ID,
			SlotIndex:     slot,
			VolumeUL:      reagent.VolumeUL,
			CapacityML:    capacity,
			TestsPossible: tests,
		}

		c.Slots[slot] = &placement
		c.Available.Clear(slot)
		placements = append(placements, placement)

		if i == 0 || tests < testsPerSet {
			testsPerSet = tests
		}
	}

	result, ok := c.Results[exp.ID]
	if !ok {
		result = &ExperimentResult{Name: exp.Name}
		c.Results[exp.ID] = result
	}
	result.Sets = append(result.Sets, Set{Placements: placements, TestsPerSet: testsPerSet})
	result.TotalTests += testsPerSet
}

// projectedTests returns the per-set test count that installing the experiment
// into the given slots would yield, using the same pairing rule as installSet,
// without touching the configuration.
func projectedTests(exp catalog.Experiment, slotIndices []int) int {
	slots := slices.Clone(slotIndices)
	slices.Sort(slots)

	projected := 0
	for i, reagent := range reagentsByVolumeDesc(exp.Reagents) {
		tests := tray.TestsFrom(reagent.VolumeUL, tray.CapacityML(slots[i]))
		if i == 0 || tests < projected {
			projected = tests
		}
	}
	return projected
}
