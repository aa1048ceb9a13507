package service

import (
	"context"
	"time"

	"github.com/parkwatch/parkwatch/internal/domain/entity"
)

type parkingSessionStorage interface {
	Create(ctx context.Context, session *entity.ParkingSession) (*entity.ParkingSession, error)
	EndByUserID(ctx context.Context, userID int64) error
	GetByUserID(ctx context.Context, userID int64) (*entity.ParkingSession, error)
	GetAllActive(ctx context.Context) ([]entity.ParkingSession, error)
}

type ParkingSessionService struct {
	sessionStorage parkingSessionStorage
}

func NewParkingSessionService(sessionStorage parkingSessionStorage) *ParkingSessionService {
	return &ParkingSessionService{
		sessionStorage: sessionStorage,
	}
}

// Start drops a parking pin for the user. Any previous active session is
// ended first so a user holds at most one at a time.
func (s *ParkingSessionService) Start(ctx context.Context, userID int64, coordinate entity.Coordinate) (*entity.ParkingSession, error) {
	if err := s.sessionStorage.EndByUserID(ctx, userID); err != nil {
		return nil, err
	}

	session := &entity.ParkingSession{
		UserID:    userID,
		Latitude:  coordinate.Latitude,
		Longitude: coordinate.Longitude,
		StartedAt: time.Now(),
	}
	return s.sessionStorage.Create(ctx, session)
}

// End removes the user's active parking pin, if any.
func (s *ParkingSessionService) End(ctx context.Context, userID int64) error {
	return s.sessionStorage.EndByUserID(ctx, userID)
}

func (s *ParkingSessionService) Get(ctx context.Context, userID int64) (*entity.ParkingSession, error) {
	return s.sessionStorage.GetByUserID(ctx, userID)
}
