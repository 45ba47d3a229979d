package schedule

import (
	"errors"
	"fmt"
	"slices"

	"github.com/benjaauf/reservas-salasUSM/internal/model"
)

var (
	// ErrUnknownRequestType reports a reservation type outside semester/specific.
	ErrUnknownRequestType = errors.New("unknown reservation type")
	// ErrMissingDate reports a specific-date request without a date.
	ErrMissingDate = errors.New("specific reservation requires a date")
	// ErrWrongWeekday reports a specific date that does not fall on the slot's day.
	ErrWrongWeekday = errors.New("date does not fall on the slot's weekday")
	// ErrUnknownActivity reports an activity type outside the known set.
	ErrUnknownActivity = errors.New("unknown activity type")
)

// Outcome is the resolver's verdict: the slot as it should look after the
// reservation, and the specific-date bookings a semester request would
// override. A non-empty conflict list means the request went pending.
type Outcome struct {
	Slot      model.Slot
	Conflicts []model.ConflictDate
}

// Pending reports whether the request degraded to pending-approval.
func (o Outcome) Pending() bool {
	return o.Slot.Status == model.SlotStatusPending
}

// Resolve computes the new slot state for a confirmed reservation request.
// The input slot is never mutated. Every well-formed request is accepted,
// possibly as pending; malformed requests fail instead of defaulting.
//
// A specific request appends one reservation on its date, preserving all
// existing entries. A semester request claims the slot for the whole term:
// with no specific-date reservations in the way it lands as occupied,
// otherwise every existing entry becomes a conflict (in insertion order)
// and the slot flips to pending-approval, blocking further selection until
// the secretary resolves the exception.
func Resolve(day model.Day, slot model.Slot, req model.ReservationRequest) (Outcome, error) {
	switch req.Type {
	case model.ReservationSpecific:
		return resolveSpecific(day, slot, req)
	case model.ReservationSemester:
		return resolveSemester(slot, req)
	default:
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownRequestType, req.Type)
	}
}

func resolveSpecific(day model.Day, slot model.Slot, req model.ReservationRequest) (Outcome, error) {
	if req.Date == nil {
		return Outcome{}, ErrMissingDate
	}
	if model.DayOf(*req.Date) != day {
		return Outcome{}, fmt.Errorf("%w: %s is not a %s", ErrWrongWeekday, req.Date.Format("2006-01-02"), day)
	}
	if !req.ActivityType.IsValid() {
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownActivity, req.ActivityType)
	}

	next := slot
	next.Status = model.SlotStatusSpecificDate
	next.SpecificDateReservations = append(
		slices.Clone(slot.SpecificDateReservations),
		model.SpecificDateReservation{
			Date:         *req.Date,
			Subject:      req.Subject,
			Professor:    req.Professor,
			ActivityType: req.ActivityType,
		},
	)
	return Outcome{Slot: next}, nil
}

func resolveSemester(slot model.Slot, req model.ReservationRequest) (Outcome, error) {
	next := slot
	next.Professor = req.Professor
	next.Subject = req.Subject

	if slot.Status == model.SlotStatusSpecificDate && len(slot.SpecificDateReservations) > 0 {
		conflicts := make([]model.ConflictDate, 0, len(slot.SpecificDateReservations))
		for _, res := range slot.SpecificDateReservations {
			conflicts = append(conflicts, model.ConflictDate{
				Date:         res.Date,
				ActivityType: res.ActivityType,
				Professor:    res.Professor,
				Subject:      res.Subject,
			})
		}
		// The displaced reservations stay on the slot so a rejection can
		// restore them.
		next.Status = model.SlotStatusPending
		next.SpecificDateReservations = slices.Clone(slot.SpecificDateReservations)
		return Outcome{Slot: next, Conflicts: conflicts}, nil
	}

	next.Status = model.SlotStatusOccupied
	return Outcome{Slot: next}, nil
}
