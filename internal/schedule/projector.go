package schedule

import (
	"errors"
	"fmt"
	"slices"

	"github.com/benjaauf/reservas-salasUSM/internal/model"
)

var (
	// ErrDayNotFound reports a day with no slots in the schedule.
	ErrDayNotFound = errors.New("day not found in schedule")
	// ErrBlockNotFound reports a target block absent from the day's slots.
	// Slots are never created ad hoc; they pre-exist from initialization.
	ErrBlockNotFound = errors.New("block not found in schedule")
)

// Apply returns a new schedule with newSlot in place of the slot at
// (day, newSlot.Block) and everything else untouched. The input schedule
// stays valid: callers may keep rendering the previous value.
func Apply(s model.Schedule, day model.Day, newSlot model.Slot) (model.Schedule, error) {
	daySlots, ok := s[day]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDayNotFound, day)
	}

	target := slices.IndexFunc(daySlots, func(slot model.Slot) bool {
		return slot.Block == newSlot.Block
	})
	if target < 0 {
		return nil, fmt.Errorf("%w: %s block %d", ErrBlockNotFound, day, newSlot.Block)
	}

	next := make(model.Schedule, len(s))
	for d, slots := range s {
		next[d] = slots
	}
	updated := slices.Clone(daySlots)
	updated[target] = newSlot
	next[day] = updated

	return next, nil
}
