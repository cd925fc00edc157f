package optimizer

import (
	"fmt"
	"strings"

	"github.com/ketos-lab/traylims/pkg/tray"
)

// UnknownExperimentError reports a requested id that is absent from the catalog.
type UnknownExperimentError struct {
	ID int
}

func (e *UnknownExperimentError) Error() string {
	return fmt.Sprintf("invalid experiment number: %d", e.ID)
}

// ExperimentLoad names one requested experiment and its reagent count. Carried
// by CapacityExceededError so callers can show why the tray cannot hold the
// request.
type ExperimentLoad struct {
	Name     string `json:"name"`
	Reagents int    `json:"reagents"`
}

// CapacityExceededError reports a request whose combined reagent count does not
// fit on one tray.
type CapacityExceededError struct {
	TotalReagents int              `json:"total_reagents"`
	Limit         int              `json:"limit"`
	PerExperiment []ExperimentLoad `json:"per_experiment"`
}

func (e *CapacityExceededError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "total reagents needed (%d) exceeds available slots (%d)", e.TotalReagents, e.Limit)
	for _, load := range e.PerExperiment {
		fmt.Fprintf(&b, "; %s: %d reagents", load.Name, load.Reagents)
	}
	return b.String()
}

// InfeasibleError reports that a primary set could not be placed even though
// the capacity precondition held. It cannot occur in a correct build; it is
// named so the invariant stays testable, and callers should treat it as an
// assertion failure.
type InfeasibleError struct {
	ExperimentID int
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("could not find suitable slots for experiment %d", e.ExperimentID)
}

// newCapacityExceededError builds the error for a request needing totalReagents
// slots, with per-experiment detail in request order.
func newCapacityExceededError(totalReagents int, loads []ExperimentLoad) *CapacityExceededError {
	return &CapacityExceededError{
		TotalReagents: totalReagents,
		Limit:         tray.SlotCount,
		PerExperiment: loads,
	}
}
