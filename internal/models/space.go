package models

type Space struct {
	ID     int64  `json:"id"`
	RoomID int64  `json:"room_id"`
	Name   string `json:"name"`
}
