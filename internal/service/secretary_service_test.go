package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/benjaauf/reservas-salasUSM/internal/model"
	"github.com/benjaauf/reservas-salasUSM/internal/store"
)

// pendingFixture builds a store where M-02's Monday block 1 went pending
// over two specific-date reservations, recorded as req-001.
func pendingFixture(t *testing.T) (*store.Store, *SecretaryService) {
	t.Helper()

	oct20 := time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC)
	st, reservations := newFixture(map[model.Day]map[int]model.Slot{
		model.DayLunes: {
			1: {
				Block:  1,
				Status: model.SlotStatusSpecificDate,
				SpecificDateReservations: []model.SpecificDateReservation{
					{Date: oct20, ActivityType: model.ActivityAyudantia, Professor: "Dr. García", Subject: "Taller"},
					{Date: oct20.AddDate(0, 0, 7), ActivityType: model.ActivityOtro, Professor: "Dr. García", Subject: "Consultas"},
				},
			},
		},
	})
	reservations.newID = func() string { return "req-001" }

	_, err := reservations.Reserve("M-2", model.DayLunes, 1, model.ReservationRequest{
		Type:      model.ReservationSemester,
		Professor: "Dra. Martínez",
		Subject:   "Cálculo Avanzado",
	})
	require.NoError(t, err)

	secretary := NewSecretaryService(st, zap.NewNop())
	secretary.now = func() time.Time { return fixedNow }
	return st, secretary
}

func TestApproveTransitionsRequestAndSlot(t *testing.T) {
	st, secretary := pendingFixture(t)

	// An unrelated request stays untouched.
	st.AddExceptionRequest(&model.ExceptionRequest{ID: "req-999", Status: model.RequestStatusPending})

	require.NoError(t, secretary.Approve("req-001", "Aprobado"))

	req, err := st.ExceptionRequest("req-001")
	require.NoError(t, err)
	assert.True(t, req.IsApproved())
	assert.Equal(t, "Aprobado", req.ResponseMessage)
	require.NotNil(t, req.UpdatedAt)

	other, err := st.ExceptionRequest("req-999")
	require.NoError(t, err)
	assert.True(t, other.IsPending())

	// The approved exception claims the slot for the semester.
	_, room, err := st.Room("M-2")
	require.NoError(t, err)
	slot, ok := room.Schedule.Slot(model.DayLunes, 1)
	require.True(t, ok)
	assert.Equal(t, model.SlotStatusOccupied, slot.Status)
	assert.Equal(t, "Dra. Martínez", slot.Professor)
	assert.Empty(t, slot.SpecificDateReservations)
}

func TestRejectRestoresDisplacedReservations(t *testing.T) {
	st, secretary := pendingFixture(t)

	require.NoError(t, secretary.Reject("req-001", "Sin cupo"))

	req, err := st.ExceptionRequest("req-001")
	require.NoError(t, err)
	assert.True(t, req.IsRejected())

	_, room, err := st.Room("M-2")
	require.NoError(t, err)
	slot, ok := room.Schedule.Slot(model.DayLunes, 1)
	require.True(t, ok)
	assert.Equal(t, model.SlotStatusSpecificDate, slot.Status)
	assert.Empty(t, slot.Professor)
	assert.Len(t, slot.SpecificDateReservations, 2)
}

func TestDecisionsAreTerminal(t *testing.T) {
	_, secretary := pendingFixture(t)

	require.NoError(t, secretary.Approve("req-001", ""))

	assert.ErrorIs(t, secretary.Approve("req-001", ""), ErrRequestNotPending)
	assert.ErrorIs(t, secretary.Reject("req-001", ""), ErrRequestNotPending)
}

func TestDecideUnknownRequest(t *testing.T) {
	_, secretary := pendingFixture(t)

	assert.ErrorIs(t, secretary.Approve("req-404", ""), store.ErrRequestNotFound)
}

func TestPendingAndProcessedSplit(t *testing.T) {
	st, secretary := pendingFixture(t)
	st.AddExceptionRequest(&model.ExceptionRequest{ID: "req-002", Status: model.RequestStatusPending})

	require.Len(t, secretary.PendingRequests(), 2)
	assert.Empty(t, secretary.ProcessedRequests())

	require.NoError(t, secretary.Approve("req-001", ""))

	pending := secretary.PendingRequests()
	require.Len(t, pending, 1)
	assert.Equal(t, "req-002", pending[0].ID)

	processed := secretary.ProcessedRequests()
	require.Len(t, processed, 1)
	assert.Equal(t, "req-001", processed[0].ID)
}
