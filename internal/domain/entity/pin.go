package entity

import (
	"time"

	"gorm.io/gorm"
)

// ParkingSession is a pin a user drops when they park. The application
// expects at most one active session per user; ending a session soft-deletes
// the row.
type ParkingSession struct {
	ID        uint  `gorm:"primaryKey"`
	UserID    int64 `gorm:"not null;index"`
	Latitude  float64
	Longitude float64
	StartedAt time.Time `gorm:"not null"`
	EndedAt   gorm.DeletedAt
}

func (p *ParkingSession) Coordinate() Coordinate {
	return Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
}

// Bookmark is a saved location a user wants to watch. A user may own many.
type Bookmark struct {
	ID        uint  `gorm:"primaryKey"`
	UserID    int64 `gorm:"not null;index"`
	Name      string
	Latitude  float64
	Longitude float64
	CreatedAt time.Time
}

func (b *Bookmark) Coordinate() Coordinate {
	return Coordinate{Latitude: b.Latitude, Longitude: b.Longitude}
}
