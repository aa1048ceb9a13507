package entity

import "time"

type ReportKind string

const (
	ReportKindTicket      ReportKind = "ticket"
	ReportKindEnforcement ReportKind = "enforcement"
)

// Ticket is a persisted report of a parking ticket or an enforcement officer
// sighting. Reports may be anonymous, so ReporterID is nullable.
type Ticket struct {
	ID         string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ReporterID *int64     `gorm:"index"`
	Kind       ReportKind `gorm:"not null"`
	Latitude   float64    `gorm:"not null"`
	Longitude  float64    `gorm:"not null"`
	ObservedAt time.Time  `gorm:"not null"`
	CreatedAt  time.Time
}

func (t *Ticket) Coordinate() Coordinate {
	return Coordinate{Latitude: t.Latitude, Longitude: t.Longitude}
}
