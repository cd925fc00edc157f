// Package optimizer packs reagents for a set of requested experiments into a
// 16-slot tray so that the tray supports as many tests as possible before it
// is exhausted.
//
// Optimize is pure and deterministic: no I/O, no logging, no shared mutable
// state. The only data shared between calls is the immutable catalog, so any
// number of goroutines may call it concurrently without coordination.
package optimizer

import (
	"slices"

	"github.com/ketos-lab/traylims/pkg/catalog"
	"github.com/ketos-lab/traylims/pkg/tray"
)

// Optimize packs the requested experiments onto one tray.
//
// Every requested experiment receives one primary set; leftover slots are then
// spent on additional sets of whichever experiment currently supports the
// fewest tests, until another set would no longer raise that experiment's
// total by more than half.
//
// Errors: *UnknownExperimentError when an id is not in the catalog,
// *CapacityExceededError when the request needs more than 16 slots. Both are
// detected before any placement happens; there are no partial results.
func Optimize(requestedIDs []int) (*Configuration, error) {
	experiments := make([]catalog.Experiment, 0, len(requestedIDs))
	for _, id := range requestedIDs {
		exp, err := catalog.Lookup(id)
		if err != nil {
			return nil, &UnknownExperimentError{ID: id}
		}
		experiments = append(experiments, exp)
	}

	totalReagents := 0
	for _, exp := range experiments {
		totalReagents += exp.ReagentCount()
	}
	if totalReagents > tray.SlotCount {
		loads := make([]ExperimentLoad, 0, len(experiments))
		for _, exp := range experiments {
			loads = append(loads, ExperimentLoad{Name: exp.Name, Reagents: exp.ReagentCount()})
		}
		return nil, newCapacityExceededError(totalReagents, loads)
	}

	cfg := newConfiguration()

	// Phase 1: one primary set per experiment, most demanding first.
	orderForPlacement(experiments)
	for _, exp := range experiments {
		if err := cfg.placePrimarySet(exp); err != nil {
			return nil, err
		}
	}

	// Phase 2: spend leftover slots on the currently weakest experiment.
	cfg.addReplicaSets()

	return cfg, nil
}

// orderForPlacement sorts experiments into primary-set placement order:
// descending by reagent count, then by largest reagent volume, then by
// tightest (smallest) minimum volume. Remaining ties break by id ascending so
// the output is deterministic.
func orderForPlacement(experiments []catalog.Experiment) {
	slices.SortStableFunc(experiments, func(a, b catalog.Experiment) int {
		if d := b.ReagentCount() - a.ReagentCount(); d != 0 {
			return d
		}
		if d := b.MaxVolumeUL() - a.MaxVolumeUL(); d != 0 {
			return d
		}
		if d := a.MinVolumeUL() - b.MinVolumeUL(); d != 0 {
			return d
		}
		return a.ID - b.ID
	})
}

// placePrimarySet installs the experiment's first set.
//
// An experiment carrying any reagent above the high-volume threshold takes
// large slots when enough of them are free, lowest index first. Everything
// else picks slots one reagent at a time (volume descending) by greedy
// efficiency: the free slot maximizing tests-per-milliliter wins, ties going
// to the lowest index.
func (c *Configuration) placePrimarySet(exp catalog.Experiment) error {
	n := exp.ReagentCount()

	if exp.MaxVolumeUL() > tray.HighVolumeThresholdUL {
		large := c.Available.LargeSlots()
		if len(large) >= n {
			c.installSet(exp, large[:n])
			return nil
		}
	}

	var picked tray.SlotMask
	slots := make([]int, 0, n)
	for _, reagent := range reagentsByVolumeDesc(exp.Reagents) {
		best := -1
		bestTests, bestCapacity := 0, 1
		for _, slot := range c.Available.Slots() {
			if picked.Has(slot) {
				continue
			}
			capacity := tray.CapacityML(slot)
			tests := tray.TestsFrom(reagent.VolumeUL, capacity)
			// tests/capacity > bestTests/bestCapacity, cross-multiplied to
			// stay in integers. Strict: the first (lowest) slot keeps ties.
			if tests*bestCapacity > bestTests*capacity {
				best = slot
				bestTests, bestCapacity = tests, capacity
			}
		}
		if best < 0 {
			return &InfeasibleError{ExperimentID: exp.ID}
		}
		picked.Set(best)
		slots = append(slots, best)
	}

	c.installSet(exp, slots)
	return nil
}

// addReplicaSets runs the additional-set loop: find the experiment with the
// fewest total tests, tentatively aim a set at the lowest free slots, and
// install it only while a set still raises that experiment's total by more
// than half. The first set that fails the ratio stops the whole loop — if even
// the weakest experiment cannot gain enough, the remaining slots are not worth
// spending.
func (c *Configuration) addReplicaSets() {
	for !c.Available.IsEmpty() {
		id := c.minTestsExperiment()
		exp, err := catalog.Lookup(id)
		if err != nil {
			return
		}

		slots, ok := c.Available.LowestN(exp.ReagentCount())
		if !ok {
			return
		}

		projected := projectedTests(exp, slots)
		current := c.Results[id].TotalTests
		// projected > current*0.5, kept exact on integers.
		if 2*projected <= current {
			return
		}
		c.installSet(exp, slots)
	}
}

// minTestsExperiment returns the id of the experiment with the smallest
// TotalTests among those already holding a set, ties broken by id ascending.
func (c *Configuration) minTestsExperiment() int {
	minID := -1
	minTests := 0
	for id, res := range c.Results {
		switch {
		case minID < 0,
			res.TotalTests < minTests,
			res.TotalTests == minTests && id < minID:
			minID = id
			minTests = res.TotalTests
		}
	}
	return minID
}
