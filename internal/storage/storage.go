package storage

import "errors"

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrSpaceNotFound = errors.New("space not found")
)
