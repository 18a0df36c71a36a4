package booking

import "errors"

// Domain outcomes the transport layer is expected to classify. The texts
// are the exact reasons reported per request, so they double as messages.
var (
	ErrSpaceNotFound    = errors.New("Space not found")
	ErrRoomNotFound     = errors.New("Room not found")
	ErrSlotTaken        = errors.New("The selected time slot is already booked.")
	ErrNoSpaceAvailable = errors.New("No available spaces in the room.")
)
