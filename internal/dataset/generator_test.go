package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaauf/reservas-salasUSM/internal/model"
)

var testClock = Clock{Day: model.DayLunes, Block: 2}

func TestGenerationIsDeterministic(t *testing.T) {
	first := NewGenerator(7, testClock).Buildings(DefaultCatalog())
	second := NewGenerator(7, testClock).Buildings(DefaultCatalog())

	assert.Equal(t, first, second)
}

func TestScheduleInvariants(t *testing.T) {
	buildings := NewGenerator(1, testClock).Buildings(DefaultCatalog())

	for _, b := range buildings {
		assert.Equal(t, 10, b.TotalRooms)
		require.Len(t, b.Rooms, 10)

		for _, room := range b.Rooms {
			for _, day := range model.Days {
				slots := room.Schedule[day]
				require.Len(t, slots, 10, "%s %s", room.ID, day)

				seen := make(map[int]bool)
				for _, slot := range slots {
					assert.False(t, seen[slot.Block], "duplicate block %d in %s %s", slot.Block, room.ID, day)
					seen[slot.Block] = true

					assert.True(t, slot.Status.IsValid())
					checkSlotInvariants(t, day, slot, room.ID)
				}
			}
		}
	}
}

func checkSlotInvariants(t *testing.T, day model.Day, slot model.Slot, roomID string) {
	t.Helper()

	switch slot.Status {
	case model.SlotStatusAvailable:
		assert.Empty(t, slot.SpecificDateReservations, "%s %s block %d", roomID, day, slot.Block)
		assert.Empty(t, slot.Professor)
	case model.SlotStatusOccupied:
		assert.NotEmpty(t, slot.Professor, "%s %s block %d", roomID, day, slot.Block)
	case model.SlotStatusSpecificDate:
		require.NotEmpty(t, slot.SpecificDateReservations, "%s %s block %d", roomID, day, slot.Block)
		for _, res := range slot.SpecificDateReservations {
			// Every specific date falls on the slot's owning weekday.
			assert.Equal(t, day, model.DayOf(res.Date), "%s %s block %d date %s", roomID, day, slot.Block, res.Date)
			assert.True(t, res.ActivityType.IsValid())
		}
	}
}

func TestEquipmentAlwaysIncludesProjector(t *testing.T) {
	buildings := NewGenerator(3, testClock).Buildings(DefaultCatalog())

	for _, b := range buildings {
		for _, room := range b.Rooms {
			require.NotEmpty(t, room.Equipment)
			assert.Equal(t, "Proyector", room.Equipment[0].Name)
			assert.GreaterOrEqual(t, len(room.Equipment), 3)
			assert.LessOrEqual(t, len(room.Equipment), 5)
		}
	}
}

func TestAvailabilityHintMatchesClockSlot(t *testing.T) {
	buildings := NewGenerator(11, testClock).Buildings(DefaultCatalog())

	for _, b := range buildings {
		for _, room := range b.Rooms {
			slot, ok := room.Schedule.Slot(testClock.Day, testClock.Block)
			require.True(t, ok)

			if slot.Status == model.SlotStatusAvailable {
				assert.True(t, room.IsAvailable, "%s", room.ID)
				assert.Empty(t, room.NextFree)
			} else {
				assert.False(t, room.IsAvailable, "%s", room.ID)
				assert.NotEmpty(t, room.NextFree)
			}
		}
	}
}

func TestFixtures(t *testing.T) {
	buildings := NewGenerator(99, testClock).Buildings(DefaultCatalog())

	var m02, c05 *model.Room
	for _, b := range buildings {
		for _, room := range b.Rooms {
			switch room.Number {
			case "M-02":
				m02 = room
			case "C-05":
				c05 = room
			}
		}
	}
	require.NotNil(t, m02)
	require.NotNil(t, c05)

	slot, ok := m02.Schedule.Slot(model.DayLunes, 1)
	require.True(t, ok)
	assert.Equal(t, model.SlotStatusSpecificDate, slot.Status)
	require.Len(t, slot.SpecificDateReservations, 3)
	assert.Equal(t, time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC), slot.SpecificDateReservations[0].Date)
	assert.Equal(t, model.ActivityAyudantia, slot.SpecificDateReservations[0].ActivityType)

	assert.Equal(t, 60, c05.Capacity)
	free, ok := c05.Schedule.Slot(model.DayJueves, 2)
	require.True(t, ok)
	assert.Equal(t, model.SlotStatusAvailable, free.Status)
}

func TestSeedExceptionRequestsArePending(t *testing.T) {
	requests := SeedExceptionRequests()
	require.Len(t, requests, 4)

	assert.Equal(t, "req-001", requests[0].ID)
	for _, req := range requests {
		assert.True(t, req.IsPending(), "%s", req.ID)
		assert.NotEmpty(t, req.Conflicts, "%s", req.ID)
	}
}
