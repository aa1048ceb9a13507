package dto

import "time"

// ReportTicket is the payload for a new ticket or enforcement sighting.
type ReportTicket struct {
	Latitude   float64    `json:"latitude" validate:"latitude"`
	Longitude  float64    `json:"longitude" validate:"longitude"`
	Kind       string     `json:"kind" validate:"required,oneof=ticket enforcement"`
	ObservedAt *time.Time `json:"observedAt,omitempty"`
}

type StartParkingSession struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

type CreateBookmark struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	Name      string  `json:"name" validate:"max=120"`
}

// UpdateNotificationSettings carries a user's opt-in flags and radius.
// A zero radius means "use the default"; non-zero values are clamped to
// [0.05, 2.0] miles by the service.
type UpdateNotificationSettings struct {
	Email          string  `json:"email" validate:"omitempty,email"`
	ParkingNotify  bool    `json:"parkingNotify"`
	BookmarkNotify bool    `json:"bookmarkNotify"`
	RadiusMiles    float64 `json:"radiusMiles" validate:"omitempty,gte=0.05,lte=2"`
}
