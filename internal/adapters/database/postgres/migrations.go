package postgres

import "github.com/parkwatch/parkwatch/internal/domain/entity"

// Migrations is a list of all gorm migrations for the database.
var Migrations = []interface{}{
	&entity.User{},
	&entity.ParkingSession{},
	&entity.Bookmark{},
	&entity.Ticket{},
	&entity.ProximityNotification{},
}
