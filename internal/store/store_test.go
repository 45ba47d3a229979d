package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/benjaauf/reservas-salasUSM/internal/model"
)

func testStore() *Store {
	buildings := []*model.Building{
		{
			ID: "1", Name: "Edificio M", Code: "M",
			Rooms: []*model.Room{
				{ID: "M-1", Number: "M-01", Schedule: model.Schedule{
					model.DayLunes: {{Block: 1, Status: model.SlotStatusAvailable}},
				}},
				{ID: "M-2", Number: "M-02"},
			},
		},
		{ID: "2", Name: "Edificio R", Code: "R"},
	}
	return New(buildings, zap.NewNop())
}

func TestBuildingLookup(t *testing.T) {
	s := testStore()

	b, err := s.Building("2")
	require.NoError(t, err)
	assert.Equal(t, "Edificio R", b.Name)

	_, err = s.Building("99")
	assert.ErrorIs(t, err, ErrBuildingNotFound)
}

func TestRoomLookupReturnsBuilding(t *testing.T) {
	s := testStore()

	b, r, err := s.Room("M-2")
	require.NoError(t, err)
	assert.Equal(t, "M", b.Code)
	assert.Equal(t, "M-02", r.Number)

	_, _, err = s.Room("Z-9")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestSwapRoomSchedule(t *testing.T) {
	s := testStore()

	next := model.Schedule{
		model.DayLunes: {{Block: 1, Status: model.SlotStatusOccupied, Professor: "Dr. García"}},
	}
	require.NoError(t, s.SwapRoomSchedule("M-1", next))

	_, r, err := s.Room("M-1")
	require.NoError(t, err)
	slot, ok := r.Schedule.Slot(model.DayLunes, 1)
	require.True(t, ok)
	assert.Equal(t, model.SlotStatusOccupied, slot.Status)

	assert.ErrorIs(t, s.SwapRoomSchedule("Z-9", next), ErrRoomNotFound)
}

func TestExceptionRequestsKeepCreationOrder(t *testing.T) {
	s := testStore()

	s.AddExceptionRequest(&model.ExceptionRequest{ID: "req-001", Status: model.RequestStatusPending})
	s.AddExceptionRequest(&model.ExceptionRequest{ID: "req-002", Status: model.RequestStatusPending})

	requests := s.ExceptionRequests()
	require.Len(t, requests, 2)
	assert.Equal(t, "req-001", requests[0].ID)
	assert.Equal(t, "req-002", requests[1].ID)

	req, err := s.ExceptionRequest("req-002")
	require.NoError(t, err)
	assert.Equal(t, "req-002", req.ID)

	_, err = s.ExceptionRequest("req-404")
	assert.ErrorIs(t, err, ErrRequestNotFound)
}
