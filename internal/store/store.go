// Package store holds the session-local dataset: the buildings loaded at
// startup and the exception requests raised during the session. It is the
// single source of truth the views read from; all writes go through its
// methods so room schedules are swapped whole, never edited in place.
package store

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/benjaauf/reservas-salasUSM/internal/model"
)

type Store struct {
	mu        sync.RWMutex
	buildings []*model.Building
	requests  []*model.ExceptionRequest
	logger    *zap.Logger
}

func New(buildings []*model.Building, logger *zap.Logger) *Store {
	return &Store{
		buildings: buildings,
		logger:    logger,
	}
}

// Buildings returns the building list in load order.
func (s *Store) Buildings() []*model.Building {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Building, len(s.buildings))
	copy(out, s.buildings)
	return out
}

// Building looks up a building by id.
func (s *Store) Building(id string) (*model.Building, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.buildings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrBuildingNotFound, id)
}

// Room looks up a room by id, returning its building as well.
func (s *Store) Room(roomID string) (*model.Building, *model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.buildings {
		if r := b.Room(roomID); r != nil {
			return b, r, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrRoomNotFound, roomID)
}

// SwapRoomSchedule replaces a room's schedule with a new value. This is
// the only write path into a room.
func (s *Store) SwapRoomSchedule(roomID string, schedule model.Schedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.buildings {
		if r := b.Room(roomID); r != nil {
			r.Schedule = schedule
			s.logger.Debug("Room schedule swapped", zap.String("room_id", roomID))
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrRoomNotFound, roomID)
}

// AddExceptionRequest appends a new request to the session list.
func (s *Store) AddExceptionRequest(req *model.ExceptionRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)
}

// ExceptionRequests returns all requests in creation order.
func (s *Store) ExceptionRequests() []*model.ExceptionRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.ExceptionRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// ExceptionRequest looks up a request by id.
func (s *Store) ExceptionRequest(id string) (*model.ExceptionRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, req := range s.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrRequestNotFound, id)
}
