package entity

import "time"

// DefaultRadiusMiles is the notification radius applied when a user has not
// configured one.
const DefaultRadiusMiles = 1.0

type User struct {
	ID             int64  `gorm:"primaryKey"`
	Email          string `gorm:"index"`
	ParkingNotify  bool
	BookmarkNotify bool
	// RadiusMiles is clamped to [0.05, 2.0] by the settings layer.
	// Zero means the user never set one.
	RadiusMiles float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Radius returns the user's notification radius, falling back to
// DefaultRadiusMiles when unset.
func (u *User) Radius() float64 {
	if u.RadiusMiles <= 0 {
		return DefaultRadiusMiles
	}
	return u.RadiusMiles
}
