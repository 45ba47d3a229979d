package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/benjaauf/reservas-salasUSM/internal/model"
	"github.com/benjaauf/reservas-salasUSM/internal/schedule"
	"github.com/benjaauf/reservas-salasUSM/internal/store"
)

var (
	// ErrSlotNotSelectable reports a reservation attempt on an occupied or
	// pending slot.
	ErrSlotNotSelectable = errors.New("slot is not selectable")
	// ErrInvalidRequest reports a malformed reservation request.
	ErrInvalidRequest = errors.New("invalid reservation request")
)

// ReservationResult is what the presentation layer renders after a
// reservation lands: the updated slot, the conflicts a semester request
// ran into, and the exception request raised for them (nil when none).
type ReservationResult struct {
	Slot      model.Slot
	Conflicts []model.ConflictDate
	Request   *model.ExceptionRequest
}

// Pending reports whether the reservation awaits secretary review.
func (r *ReservationResult) Pending() bool {
	return r.Request != nil
}

type ReservationService struct {
	store    *store.Store
	validate *validator.Validate
	logger   *zap.Logger

	newID func() string
	now   func() time.Time
}

func NewReservationService(st *store.Store, logger *zap.Logger) *ReservationService {
	return &ReservationService{
		store:    st,
		validate: validator.New(),
		logger:   logger,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// SelectSlot fetches the slot at (room, day, block) and checks it can
// start a reservation flow. The UI calls this on every grid click.
func (s *ReservationService) SelectSlot(roomID string, day model.Day, block int) (model.Slot, error) {
	_, room, err := s.store.Room(roomID)
	if err != nil {
		return model.Slot{}, fmt.Errorf("get room: %w", err)
	}

	slot, ok := room.Schedule.Slot(day, block)
	if !ok {
		return model.Slot{}, fmt.Errorf("get slot: %w: %s block %d", schedule.ErrBlockNotFound, day, block)
	}

	if !schedule.IsSelectable(slot) {
		return model.Slot{}, fmt.Errorf("%w: status %s", ErrSlotNotSelectable, slot.Status)
	}

	return slot, nil
}

// Reserve runs a confirmed reservation against the slot at
// (room, day, block): resolve the outcome, project it into the room's
// schedule, and raise an exception request when a semester reservation
// collided with specific dates.
func (s *ReservationService) Reserve(roomID string, day model.Day, block int, req model.ReservationRequest) (*ReservationResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	building, room, err := s.store.Room(roomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	slot, ok := room.Schedule.Slot(day, block)
	if !ok {
		return nil, fmt.Errorf("get slot: %w: %s block %d", schedule.ErrBlockNotFound, day, block)
	}

	if !schedule.IsSelectable(slot) {
		return nil, fmt.Errorf("%w: status %s", ErrSlotNotSelectable, slot.Status)
	}

	outcome, err := schedule.Resolve(day, slot, req)
	if err != nil {
		return nil, fmt.Errorf("resolve reservation: %w", err)
	}

	updated, err := schedule.Apply(room.Schedule, day, outcome.Slot)
	if err != nil {
		return nil, fmt.Errorf("apply slot: %w", err)
	}

	if err := s.store.SwapRoomSchedule(roomID, updated); err != nil {
		return nil, fmt.Errorf("swap schedule: %w", err)
	}

	result := &ReservationResult{
		Slot:      outcome.Slot,
		Conflicts: outcome.Conflicts,
	}

	if outcome.Pending() {
		request := &model.ExceptionRequest{
			ID:           s.newID(),
			RoomID:       room.ID,
			RoomNumber:   room.Number,
			BuildingCode: building.Code,
			Day:          day,
			Block:        block,
			Professor:    req.Professor,
			Subject:      req.Subject,
			Conflicts:    outcome.Conflicts,
			Message:      req.Message,
			Status:       model.RequestStatusPending,
			CreatedAt:    s.now(),
		}
		s.store.AddExceptionRequest(request)
		result.Request = request
	}

	s.logger.Info("Reservation resolved",
		zap.String("room_id", roomID),
		zap.String("day", string(day)),
		zap.Int("block", block),
		zap.String("type", string(req.Type)),
		zap.String("professor", req.Professor),
		zap.String("status", string(outcome.Slot.Status)),
		zap.Int("conflicts", len(outcome.Conflicts)),
	)

	return result, nil
}
