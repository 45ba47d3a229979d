package store

import "errors"

var (
	ErrBuildingNotFound = errors.New("building not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrRequestNotFound  = errors.New("exception request not found")
)
