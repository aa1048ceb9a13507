package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/parkwatch/parkwatch/internal/domain/entity"
)

type ParkingSessionStorage struct {
	db *gorm.DB
}

func NewParkingSessionStorage(db *gorm.DB) *ParkingSessionStorage {
	return &ParkingSessionStorage{
		db: db,
	}
}

func (s *ParkingSessionStorage) Create(ctx context.Context, session *entity.ParkingSession) (*entity.ParkingSession, error) {
	err := s.db.WithContext(ctx).Create(&session).Error
	return session, err
}

// EndByUserID soft-deletes the user's active session, if any. Ending a
// session that does not exist is not an error.
func (s *ParkingSessionStorage) EndByUserID(ctx context.Context, userID int64) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.ParkingSession{}).Error
}

func (s *ParkingSessionStorage) GetByUserID(ctx context.Context, userID int64) (*entity.ParkingSession, error) {
	var session entity.ParkingSession
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&session).Error
	return &session, err
}

// GetAllActive returns every live parking pin. Soft-deleted (ended)
// sessions are excluded by gorm automatically.
func (s *ParkingSessionStorage) GetAllActive(ctx context.Context) ([]entity.ParkingSession, error) {
	var sessions []entity.ParkingSession
	err := s.db.WithContext(ctx).Find(&sessions).Error
	return sessions, err
}
