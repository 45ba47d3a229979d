package service

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/benjaauf/reservas-salasUSM/internal/model"
	"github.com/benjaauf/reservas-salasUSM/internal/schedule"
	"github.com/benjaauf/reservas-salasUSM/internal/store"
)

// ErrRequestNotPending reports a decision on an already-decided request.
// Approved and rejected are terminal.
var ErrRequestNotPending = errors.New("exception request is not pending")

type SecretaryService struct {
	store  *store.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewSecretaryService(st *store.Store, logger *zap.Logger) *SecretaryService {
	return &SecretaryService{
		store:  st,
		logger: logger,
		now:    time.Now,
	}
}

// Requests returns every exception request in creation order.
func (s *SecretaryService) Requests() []*model.ExceptionRequest {
	return s.store.ExceptionRequests()
}

// PendingRequests returns the requests still awaiting a decision.
func (s *SecretaryService) PendingRequests() []*model.ExceptionRequest {
	return s.filter(func(r *model.ExceptionRequest) bool { return r.IsPending() })
}

// ProcessedRequests returns the requests already decided.
func (s *SecretaryService) ProcessedRequests() []*model.ExceptionRequest {
	return s.filter(func(r *model.ExceptionRequest) bool { return !r.IsPending() })
}

func (s *SecretaryService) filter(keep func(*model.ExceptionRequest) bool) []*model.ExceptionRequest {
	var out []*model.ExceptionRequest
	for _, req := range s.store.ExceptionRequests() {
		if keep(req) {
			out = append(out, req)
		}
	}
	return out
}

// Approve grants the exception: the request becomes approved and the slot
// it froze becomes occupied by the requesting professor.
func (s *SecretaryService) Approve(requestID, responseMessage string) error {
	return s.decide(requestID, model.RequestStatusApproved, responseMessage)
}

// Reject denies the exception: the request becomes rejected and the slot
// returns to its pre-request state, with the displaced specific-date
// reservations back in force.
func (s *SecretaryService) Reject(requestID, responseMessage string) error {
	return s.decide(requestID, model.RequestStatusRejected, responseMessage)
}

func (s *SecretaryService) decide(requestID, decision, responseMessage string) error {
	req, err := s.store.ExceptionRequest(requestID)
	if err != nil {
		return fmt.Errorf("get request: %w", err)
	}

	if !req.IsPending() {
		return fmt.Errorf("%w: %s is %s", ErrRequestNotPending, requestID, req.Status)
	}

	if err := s.projectDecision(req, decision); err != nil {
		return err
	}

	req.Status = decision
	req.ResponseMessage = responseMessage
	decidedAt := s.now()
	req.UpdatedAt = &decidedAt

	s.logger.Info("Exception request decided",
		zap.String("request_id", requestID),
		zap.String("decision", decision),
		zap.String("room_id", req.RoomID),
		zap.String("day", string(req.Day)),
		zap.Int("block", req.Block),
	)

	return nil
}

// projectDecision writes the decision back onto the slot the request froze.
func (s *SecretaryService) projectDecision(req *model.ExceptionRequest, decision string) error {
	_, room, err := s.store.Room(req.RoomID)
	if err != nil {
		return fmt.Errorf("get room: %w", err)
	}

	slot, ok := room.Schedule.Slot(req.Day, req.Block)
	if !ok {
		return fmt.Errorf("get slot: %w: %s block %d", schedule.ErrBlockNotFound, req.Day, req.Block)
	}

	if decision == model.RequestStatusApproved {
		slot.Status = model.SlotStatusOccupied
		slot.Professor = req.Professor
		slot.Subject = req.Subject
		slot.SpecificDateReservations = nil
	} else {
		slot.Professor = ""
		slot.Subject = ""
		if len(slot.SpecificDateReservations) > 0 {
			slot.Status = model.SlotStatusSpecificDate
		} else {
			slot.Status = model.SlotStatusAvailable
		}
	}

	updated, err := schedule.Apply(room.Schedule, req.Day, slot)
	if err != nil {
		return fmt.Errorf("apply slot: %w", err)
	}

	if err := s.store.SwapRoomSchedule(req.RoomID, updated); err != nil {
		return fmt.Errorf("swap schedule: %w", err)
	}

	return nil
}
