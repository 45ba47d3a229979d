package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaauf/reservas-salasUSM/internal/model"
)

func testSchedule() model.Schedule {
	sched := make(model.Schedule)
	for _, day := range model.Days {
		slots := make([]model.Slot, 0, 10)
		for block := 1; block <= 10; block++ {
			slots = append(slots, model.Slot{Block: block, Status: model.SlotStatusAvailable})
		}
		sched[day] = slots
	}
	return sched
}

func TestApplyReplacesOnlyTargetSlot(t *testing.T) {
	original := testSchedule()
	newSlot := model.Slot{Block: 3, Status: model.SlotStatusOccupied, Professor: "Dr. García"}

	updated, err := Apply(original, model.DayMartes, newSlot)
	require.NoError(t, err)

	got, ok := updated.Slot(model.DayMartes, 3)
	require.True(t, ok)
	assert.Equal(t, newSlot, got)

	// Everything else is untouched.
	for _, day := range model.Days {
		for block := 1; block <= 10; block++ {
			if day == model.DayMartes && block == 3 {
				continue
			}
			slot, ok := updated.Slot(day, block)
			require.True(t, ok)
			assert.Equal(t, model.Slot{Block: block, Status: model.SlotStatusAvailable}, slot)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	original := testSchedule()
	newSlot := model.Slot{Block: 5, Status: model.SlotStatusPending, Professor: "Dra. Morales"}

	_, err := Apply(original, model.DayViernes, newSlot)
	require.NoError(t, err)

	before, ok := original.Slot(model.DayViernes, 5)
	require.True(t, ok)
	assert.Equal(t, model.SlotStatusAvailable, before.Status)
}

func TestApplyIsIdempotent(t *testing.T) {
	original := testSchedule()
	newSlot := model.Slot{Block: 7, Status: model.SlotStatusOccupied, Professor: "Ing. Vargas"}

	once, err := Apply(original, model.DayJueves, newSlot)
	require.NoError(t, err)
	twice, err := Apply(once, model.DayJueves, newSlot)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestApplyMissingDayOrBlock(t *testing.T) {
	sched := model.Schedule{
		model.DayLunes: {{Block: 1, Status: model.SlotStatusAvailable}},
	}

	_, err := Apply(sched, model.DayDomingo, model.Slot{Block: 1})
	assert.ErrorIs(t, err, ErrDayNotFound)

	_, err = Apply(sched, model.DayLunes, model.Slot{Block: 9})
	assert.ErrorIs(t, err, ErrBlockNotFound)
}
