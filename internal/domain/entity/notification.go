package entity

import "time"

type NotificationKind string

const (
	NotificationKindParking  NotificationKind = "parking"
	NotificationKindBookmark NotificationKind = "bookmark"
)

// ProximityNotification records a proximity alert that has been sent to a user.
type ProximityNotification struct {
	ID        string           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TicketID  string           `gorm:"not null;index"`
	UserID    int64            `gorm:"not null;index"`
	Kind      NotificationKind `gorm:"not null"`
	CreatedAt time.Time        `gorm:"not null"`
}
