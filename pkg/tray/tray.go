// Package tray models the fixed geometry of a 16-slot reagent tray and the
// arithmetic that turns a slot's capacity into a per-reagent test count.
package tray

import "fmt"

// Tray geometry. Slot capacity is determined by index: the first four slots are
// the large 270 mL class, the remaining twelve the small 140 mL class. This is
// a property of the molded tray, not data.
const (
	// SlotCount is the number of slots on a tray.
	SlotCount = 16

	// LargeSlotCount is the number of leading large-capacity slots.
	LargeSlotCount = 4

	// LargeSlotCapacityML is the capacity of slots 0..3.
	LargeSlotCapacityML = 270

	// SmallSlotCapacityML is the capacity of slots 4..15.
	SmallSlotCapacityML = 140

	// HighVolumeThresholdUL is the per-test volume above which an experiment's
	// primary set is routed to large slots when enough of them are free to hold
	// all of its reagents.
	HighVolumeThresholdUL = 800
)

// CapacityML returns the capacity of the slot at the given index in milliliters.
// Panics if the index is outside [0, SlotCount): slot indices originate inside
// the optimizer, so an out-of-range index is a programmer error.
func CapacityML(slot int) int {
	if slot < 0 || slot >= SlotCount {
		panic(fmt.Sprintf("tray: slot index %d out of range [0,%d)", slot, SlotCount))
	}
	if slot < LargeSlotCount {
		return LargeSlotCapacityML
	}
	return SmallSlotCapacityML
}

// TestsFrom returns how many tests one slot filled with the given reagent can
// support: floor(capacityML*1000 / volumeUL). Integer truncation is required;
// a partial dose does not make a test. Both arguments must be positive.
func TestsFrom(volumeUL, capacityML int) int {
	return capacityML * 1000 / volumeUL
}
