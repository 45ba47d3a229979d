package model

type SlotStatus string

const (
	SlotStatusAvailable    SlotStatus = "disponible"
	SlotStatusOccupied     SlotStatus = "ocupado"
	SlotStatusSpecificDate SlotStatus = "reservado-especifico"
	SlotStatusPending      SlotStatus = "pendiente"
)

// IsValid checks that s is one of the four known statuses.
func (s SlotStatus) IsValid() bool {
	switch s {
	case SlotStatusAvailable, SlotStatusOccupied, SlotStatusSpecificDate, SlotStatusPending:
		return true
	}
	return false
}

// Slot is the atomic bookable unit at one (day, block) coordinate.
// Invariants: SlotStatusSpecificDate implies a non-empty reservation list,
// SlotStatusOccupied and SlotStatusPending imply a professor name,
// SlotStatusAvailable carries no reservation data.
type Slot struct {
	Block                    int                       `json:"block"` // 1-10
	Status                   SlotStatus                `json:"status"`
	Subject                  string                    `json:"subject,omitempty"`
	Professor                string                    `json:"professor,omitempty"`
	Group                    string                    `json:"group,omitempty"`
	SpecificDateReservations []SpecificDateReservation `json:"specific_date_reservations,omitempty"`
}

// Schedule maps a day label to its ordered block slots. Block indices are
// unique within a day; a missing block is "no data" to consumers.
type Schedule map[Day][]Slot

// Slot finds the slot at (day, block). Returns false when the day has no
// entry for that block.
func (s Schedule) Slot(day Day, block int) (Slot, bool) {
	for _, slot := range s[day] {
		if slot.Block == block {
			return slot, true
		}
	}
	return Slot{}, false
}
