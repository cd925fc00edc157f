package optimizer

import (
	"github.com/ketos-lab/traylims/pkg/tray"
)

// Placement is one finalized reagent-to-slot assignment.
type Placement struct {
	ReagentCode   string `json:"reagent_code"`
	ExperimentID  int    `json:"experiment_id"`
	SlotIndex     int    `json:"slot_index"`
	VolumeUL      int    `json:"volume_per_test_ul"`
	CapacityML    int    `json:"slot_capacity_ml"`
	TestsPossible int    `json:"tests_possible"`
}

// Set is one complete placement of an experiment's reagent list into distinct
// slots. TestsPerSet is the minimum TestsPossible across its placements: the
// set yields that many tests before its first reagent runs out.
type Set struct {
	Placements  []Placement `json:"placements"`
	TestsPerSet int         `json:"tests_per_set"`
}

// ExperimentResult collects the sets installed for one experiment, primary set
// first. TotalTests is the sum of the sets' TestsPerSet.
type ExperimentResult struct {
	Name       string `json:"name"`
	Sets       []Set  `json:"sets"`
	TotalTests int    `json:"total_tests"`
}

// Configuration is the optimizer's output: each tray slot either empty (nil)
// or carrying exactly one placement, the per-experiment results, and the slots
// still unoccupied (diagnostic).
type Configuration struct {
	Slots     [tray.SlotCount]*Placement `json:"tray_slots"`
	Results   map[int]*ExperimentResult  `json:"results"`
	Available tray.SlotMask              `json:"available_slots"`
}

func newConfiguration() *Configuration {
	return &Configuration{
		Results:   make(map[int]*ExperimentResult),
		Available: tray.FullMask(),
	}
}

// TrayLife returns the number of tests the tray supports before its
// worst-supported experiment runs out: the minimum TotalTests across results.
// Returns 0 for a configuration with no results.
func (c *Configuration) TrayLife() int {
	life := 0
	first := true
	for _, res := range c.Results {
		if first || res.TotalTests < life {
			life = res.TotalTests
			first = false
		}
	}
	return life
}

// PlacementCount returns the number of occupied slots.
func (c *Configuration) PlacementCount() int {
	return tray.SlotCount - c.Available.Count()
}
