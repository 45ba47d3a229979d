// Package schedule holds the pure reservation core: slot selectability,
// request resolution and copy-on-write schedule projection. Nothing here
// touches shared state; callers route every slot mutation through Resolve
// and Apply so the slot invariants hold.
package schedule

import (
	"time"

	"github.com/benjaauf/reservas-salasUSM/internal/model"
)

// IsSelectable reports whether a slot can start a reservation flow.
// Occupied slots are booked for the whole semester; pending slots are
// frozen until the secretary decides.
func IsSelectable(slot model.Slot) bool {
	return slot.Status == model.SlotStatusAvailable || slot.Status == model.SlotStatusSpecificDate
}

// IsDateReserved reports whether the slot already holds a specific-date
// reservation on the given calendar day. Time-of-day is ignored.
func IsDateReserved(slot model.Slot, date time.Time) bool {
	for _, res := range slot.SpecificDateReservations {
		if sameCalendarDay(res.Date, date) {
			return true
		}
	}
	return false
}

// IsDateSelectable is the date-picker predicate: the date must fall on the
// slot's owning weekday and must not already be reserved.
func IsDateSelectable(day model.Day, slot model.Slot, date time.Time) bool {
	if model.DayOf(date) != day {
		return false
	}
	return !IsDateReserved(slot, date)
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
