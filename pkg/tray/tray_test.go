package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapacityML(t *testing.T) {
	t.Run("first four slots are large", func(t *testing.T) {
		for slot := 0; slot < LargeSlotCount; slot++ {
			assert.Equal(t, LargeSlotCapacityML, CapacityML(slot), "slot %d", slot)
		}
	})

	t.Run("remaining slots are small", func(t *testing.T) {
		for slot := LargeSlotCount; slot < SlotCount; slot++ {
			assert.Equal(t, SmallSlotCapacityML, CapacityML(slot), "slot %d", slot)
		}
	})

	t.Run("panics outside the tray", func(t *testing.T) {
		assert.Panics(t, func() { CapacityML(-1) })
		assert.Panics(t, func() { CapacityML(SlotCount) })
	})
}

func TestTestsFrom(t *testing.T) {
	tests := []struct {
		volumeUL   int
		capacityML int
		want       int
	}{
		{volumeUL: 1000, capacityML: 270, want: 270},
		{volumeUL: 1000, capacityML: 140, want: 140},
		{volumeUL: 850, capacityML: 270, want: 317},  // 317.6 truncates down
		{volumeUL: 850, capacityML: 140, want: 164},  // 164.7 truncates down
		{volumeUL: 1860, capacityML: 270, want: 145}, // 145.1
		{volumeUL: 1100, capacityML: 270, want: 245}, // 245.4
		{volumeUL: 300, capacityML: 270, want: 900},  // exact
		{volumeUL: 300, capacityML: 140, want: 466},  // 466.6
		{volumeUL: 2300, capacityML: 140, want: 60},  // smallest count in the catalog
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TestsFrom(tt.volumeUL, tt.capacityML),
			"%d µL in %d mL", tt.volumeUL, tt.capacityML)
	}
}
