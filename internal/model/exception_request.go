package model

import "time"

// ConflictDate is one specific-date reservation that a competing semester
// reservation would override. It keeps the raw reservation data so a
// rejected request can be traced back to what it displaced; display
// formatting happens at the edge.
type ConflictDate struct {
	Date         time.Time    `json:"date"`
	ActivityType ActivityType `json:"activity_type"`
	Professor    string       `json:"professor"`
	Subject      string       `json:"subject"`
}

// Request status constants
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// ExceptionRequest records a semester reservation attempt that collided
// with existing specific-date reservations. Keyed by room/day/block,
// independent of any Room; only the secretary moves it out of pending.
type ExceptionRequest struct {
	ID              string         `json:"id"`
	RoomID          string         `json:"room_id"`
	RoomNumber      string         `json:"room_number"`
	BuildingCode    string         `json:"building_code"`
	Day             Day            `json:"day"`
	Block           int            `json:"block"`
	Professor       string         `json:"professor"`
	Subject         string         `json:"subject"`
	Conflicts       []ConflictDate `json:"conflicts"`
	Message         string         `json:"message,omitempty"`
	ResponseMessage string         `json:"response_message,omitempty"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       *time.Time     `json:"updated_at,omitempty"`
}

// IsPending checks if the request is still awaiting a decision
func (r *ExceptionRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}

// IsApproved checks if the request was approved
func (r *ExceptionRequest) IsApproved() bool {
	return r.Status == RequestStatusApproved
}

// IsRejected checks if the request was rejected
func (r *ExceptionRequest) IsRejected() bool {
	return r.Status == RequestStatusRejected
}
