package service

import (
	"context"
	"fmt"

	"github.com/parkwatch/parkwatch/internal/domain/common/errorz"
	"github.com/parkwatch/parkwatch/internal/domain/entity"
)

// MaxNotifyRadiusMiles bounds the candidate set before any per-user radius
// policy is applied. It matches the upper clamp of the configurable user
// radius, so no pin beyond it can ever match.
const MaxNotifyRadiusMiles = 2.0

type proximitySessionStorage interface {
	GetAllActive(ctx context.Context) ([]entity.ParkingSession, error)
}

type proximityBookmarkStorage interface {
	GetAll(ctx context.Context) ([]entity.Bookmark, error)
}

// Nearby is the candidate pin set for one event.
type Nearby struct {
	Sessions  []entity.ParkingSession
	Bookmarks []entity.Bookmark
}

// ProximityService narrows all pins down to those close enough to an event
// to possibly notify. The store offers no server-side geo filtering, so both
// pin kinds are fetched whole (one query each) and filtered in memory.
type ProximityService struct {
	sessionStorage  proximitySessionStorage
	bookmarkStorage proximityBookmarkStorage
}

func NewProximityService(sessionStorage proximitySessionStorage, bookmarkStorage proximityBookmarkStorage) *ProximityService {
	return &ProximityService{
		sessionStorage:  sessionStorage,
		bookmarkStorage: bookmarkStorage,
	}
}

// FindNearby returns all pins within MaxNotifyRadiusMiles of the event.
// Pins with non-finite coordinates are dropped. A storage failure aborts:
// without the full candidate set the fan-out cannot be computed safely.
func (s *ProximityService) FindNearby(ctx context.Context, event Event) (Nearby, error) {
	sessions, err := s.sessionStorage.GetAllActive(ctx)
	if err != nil {
		return Nearby{}, fmt.Errorf("%w: parking sessions: %v", errorz.ErrPinFetch, err)
	}

	bookmarks, err := s.bookmarkStorage.GetAll(ctx)
	if err != nil {
		return Nearby{}, fmt.Errorf("%w: bookmarks: %v", errorz.ErrPinFetch, err)
	}

	var nearby Nearby
	for _, pin := range sessions {
		if !pin.Coordinate().IsFinite() {
			continue
		}
		if event.Coordinate.DistanceMiles(pin.Coordinate()) <= MaxNotifyRadiusMiles {
			nearby.Sessions = append(nearby.Sessions, pin)
		}
	}
	for _, pin := range bookmarks {
		if !pin.Coordinate().IsFinite() {
			continue
		}
		if event.Coordinate.DistanceMiles(pin.Coordinate()) <= MaxNotifyRadiusMiles {
			nearby.Bookmarks = append(nearby.Bookmarks, pin)
		}
	}
	return nearby, nil
}
