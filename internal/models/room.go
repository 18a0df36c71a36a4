package models

type Room struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Spaces []Space `json:"spaces,omitempty"`
}
