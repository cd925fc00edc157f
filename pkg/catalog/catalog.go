// Package catalog exposes the fixed table of analytical experiments that can be
// manufactured onto a reagent tray. Each experiment names the reagents it consumes
// and their dose per test in microliters.
//
// The catalog is process-wide immutable data. Lookup and List never mutate it, so
// concurrent use requires no synchronization.
package catalog

import (
	"errors"
	"fmt"
)

// Reagent is one consumable of an experiment with its fixed dose per test.
type Reagent struct {
	Code     string `json:"code"`
	VolumeUL int    `json:"volume_per_test_ul"`
}

// Experiment is a catalog entry. Reagents is ordered as listed in the catalog;
// the order carries no meaning — the optimizer reorders by volume when placing.
type Experiment struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Reagents []Reagent `json:"reagents"`
}

// ReagentCount returns the number of reagents the experiment consumes per set.
func (e Experiment) ReagentCount() int {
	return len(e.Reagents)
}

// MaxVolumeUL returns the largest per-test reagent volume of the experiment.
func (e Experiment) MaxVolumeUL() int {
	maxVol := 0
	for _, r := range e.Reagents {
		if r.VolumeUL > maxVol {
			maxVol = r.VolumeUL
		}
	}
	return maxVol
}

// MinVolumeUL returns the smallest per-test reagent volume of the experiment.
func (e Experiment) MinVolumeUL() int {
	minVol := 0
	for _, r := range e.Reagents {
		if minVol == 0 || r.VolumeUL < minVol {
			minVol = r.VolumeUL
		}
	}
	return minVol
}

// ErrUnknownExperiment is returned by Lookup for ids absent from the catalog.
var ErrUnknownExperiment = errors.New("unknown experiment")

// experiments holds the catalog in id-ascending order. Volumes are µL per test.
var experiments = []Experiment{
	{ID: 1, Name: "Copper (II) (LR)", Reagents: []Reagent{{"KR1E", 850}, {"KR1S", 300}}},
	{ID: 2, Name: "Lead (II) Cadmium (II)", Reagents: []Reagent{{"KR1E", 850}, {"KR2S", 400}}},
	{ID: 3, Name: "Arsenic (III)", Reagents: []Reagent{{"KR3E", 850}, {"KR3S", 400}}},
	{ID: 4, Name: "Nitrates-N (LR)", Reagents: []Reagent{{"KR4E", 850}, {"KR4S", 300}}},
	{ID: 5, Name: "Chromium (VI) (LR)", Reagents: []Reagent{{"KR5E", 500}, {"KR5S", 400}}},
	{ID: 6, Name: "Manganese (II) (LR)", Reagents: []Reagent{{"KR6E1", 500}, {"KR6E2", 500}, {"KR6E3", 300}}},
	{ID: 7, Name: "Boron (Dissolved)", Reagents: []Reagent{{"KR7E1", 1100}, {"KR7E2", 1860}}},
	{ID: 8, Name: "Silica (Dissolved)", Reagents: []Reagent{{"KR8E1", 500}, {"KR8E2", 1600}}},
	{ID: 9, Name: "Free Chlorine", Reagents: []Reagent{{"KR9E1", 1000}, {"KR9E2", 1000}}},
	{ID: 10, Name: "Total Hardness", Reagents: []Reagent{{"KR10E1", 1000}, {"KR10E2", 1000}, {"KR10E3", 1600}}},
	{ID: 11, Name: "Total Alkalinity (LR)", Reagents: []Reagent{{"KR11E", 1000}}},
	{ID: 12, Name: "Orthophosphates-P (LR)", Reagents: []Reagent{{"KR12E1", 500}, {"KR12E2", 500}, {"KR12E3", 200}}},
	{ID: 13, Name: "Mercury (II)", Reagents: []Reagent{{"KR13E1", 850}, {"KR13S", 300}}},
	{ID: 14, Name: "Selenium (IV)", Reagents: []Reagent{{"KR14E", 500}, {"KR14S", 300}}},
	{ID: 15, Name: "Zinc (II) (LR)", Reagents: []Reagent{{"KR15E", 850}, {"KR15S", 400}}},
	{ID: 16, Name: "Iron (Dissolved)", Reagents: []Reagent{{"KR16E1", 1000}, {"KR16E2", 1000}, {"KR16E3", 1000}, {"KR16E4", 1000}}},
	{ID: 17, Name: "Residual Chlorine", Reagents: []Reagent{{"KR17E1", 1000}, {"KR17E2", 1000}, {"KR17E3", 1000}}},
	{ID: 18, Name: "Zinc (HR)", Reagents: []Reagent{{"KR18E1", 1000}, {"KR18E2", 1000}}},
	{ID: 19, Name: "Manganese (HR)", Reagents: []Reagent{{"KR19E1", 1000}, {"KR19E2", 1000}, {"KR19E3", 1000}}},
	{ID: 20, Name: "Orthophosphates-P (HR)", Reagents: []Reagent{{"KR20E", 850}}},
	{ID: 21, Name: "Total Alkalinity (HR)", Reagents: []Reagent{{"KR21E1", 1000}}},
	{ID: 22, Name: "Fluoride", Reagents: []Reagent{{"KR22E1", 1000}, {"KR22E2", 1000}}},
	{ID: 27, Name: "Molybdenum", Reagents: []Reagent{{"KR27E1", 1000}, {"KR27E2", 1000}}},
	{ID: 28, Name: "Nitrates-N (HR)", Reagents: []Reagent{{"KR28E1", 1000}, {"KR28E2", 2000}, {"KR28E3", 2000}}},
	{ID: 29, Name: "Total Ammonia-N", Reagents: []Reagent{{"KR29E1", 850}, {"KR29E2", 850}, {"KR29E3", 850}}},
	{ID: 30, Name: "Chromium (HR)", Reagents: []Reagent{{"KR30E1", 1000}, {"KR30E2", 1000}, {"KR30E3", 1000}}},
	{ID: 31, Name: "Nitrite-N", Reagents: []Reagent{{"KR31E1", 1000}, {"KR31E2", 1000}}},
	{ID: 34, Name: "Nickel (HR)", Reagents: []Reagent{{"KR34E1", 500}, {"KR34E2", 500}}},
	{ID: 35, Name: "Copper (II) (HR)", Reagents: []Reagent{{"KR35E1", 1000}, {"KR35E2", 1000}}},
	{ID: 36, Name: "Sulfate", Reagents: []Reagent{{"KR36E1", 1000}, {"KR36E2", 2300}}},
	{ID: 40, Name: "Potassium", Reagents: []Reagent{{"KR40E1", 1000}, {"KR40E2", 1000}}},
	{ID: 42, Name: "Aluminum-BB", Reagents: []Reagent{{"KR42E1", 1000}, {"KR42E2", 1000}}},
}

var byID = buildIndex()

func buildIndex() map[int]Experiment {
	index := make(map[int]Experiment, len(experiments))
	for _, exp := range experiments {
		index[exp.ID] = exp
	}
	return index
}

// List returns all experiments in catalog order (id ascending).
// The returned slice is a copy; callers may reorder it freely.
func List() []Experiment {
	out := make([]Experiment, len(experiments))
	copy(out, experiments)
	return out
}

// Lookup returns the experiment with the given id, or an error wrapping
// ErrUnknownExperiment if no such entry exists.
func Lookup(id int) (Experiment, error) {
	exp, ok := byID[id]
	if !ok {
		return Experiment{}, fmt.Errorf("%w: %d", ErrUnknownExperiment, id)
	}
	return exp, nil
}
