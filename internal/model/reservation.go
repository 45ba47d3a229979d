package model

import "time"

type ActivityType string

const (
	ActivityReunion   ActivityType = "reunion"
	ActivityControl   ActivityType = "control"
	ActivityCertamen  ActivityType = "certamen"
	ActivityAyudantia ActivityType = "ayudantia"
	ActivityOtro      ActivityType = "otro"
	ActivityEvento    ActivityType = "evento-inamovible"
)

// ActivityTypes lists all known activity tokens.
var ActivityTypes = []ActivityType{
	ActivityReunion,
	ActivityControl,
	ActivityCertamen,
	ActivityAyudantia,
	ActivityOtro,
	ActivityEvento,
}

// IsValid checks that a is one of the known activity tokens.
func (a ActivityType) IsValid() bool {
	for _, known := range ActivityTypes {
		if a == known {
			return true
		}
	}
	return false
}

// SpecificDateReservation is one single-date booking on a slot that is
// otherwise recurring-available. Its date always falls on the slot's
// owning weekday.
type SpecificDateReservation struct {
	Date         time.Time    `json:"date"`
	Subject      string       `json:"subject"`
	Professor    string       `json:"professor"`
	ActivityType ActivityType `json:"activity_type"`
}

type ReservationType string

const (
	ReservationSemester ReservationType = "semester"
	ReservationSpecific ReservationType = "specific"
)

// ReservationRequest is the ephemeral form payload: built on submission,
// consumed by the resolver, never stored.
type ReservationRequest struct {
	Type         ReservationType `json:"type" validate:"required,oneof=semester specific"`
	Professor    string          `json:"professor" validate:"required"`
	Subject      string          `json:"subject"`
	Date         *time.Time      `json:"date,omitempty" validate:"required_if=Type specific"`
	ActivityType ActivityType    `json:"activity_type,omitempty"`
	Message      string          `json:"message,omitempty" validate:"max=500"`
}
