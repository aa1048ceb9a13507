package service

import (
	"context"
	"fmt"

	"github.com/parkwatch/parkwatch/internal/domain/common/errorz"
	"github.com/parkwatch/parkwatch/internal/domain/entity"
	"github.com/parkwatch/parkwatch/pkg/logger"
	"github.com/parkwatch/parkwatch/pkg/mailqueue"
)

type proximityIndex interface {
	FindNearby(ctx context.Context, event Event) (Nearby, error)
}

type preferenceStorage interface {
	GetByIDs(ctx context.Context, ids []int64) ([]entity.User, error)
}

type notificationStorage interface {
	Create(ctx context.Context, notification *entity.ProximityNotification) error
}

type emailQueue interface {
	Enqueue(p mailqueue.Payload)
}

// DispatchSummary reports which users were notified, per channel. A user can
// appear in both sets for the same event: the parking and bookmark channels
// are independent.
type DispatchSummary struct {
	ParkingUserIDs  map[int64]struct{}
	BookmarkUserIDs map[int64]struct{}
}

// NotifyService is the proximity fan-out core: given a freshly reported
// event, it finds every user with a nearby pin, applies their opt-in and
// radius preferences, and enqueues at most one email per user per channel.
type NotifyService struct {
	proximity     proximityIndex
	preferences   preferenceStorage
	notifications notificationStorage
	queue         emailQueue
	logger        *logger.Logger
}

func NewNotifyService(
	proximity proximityIndex,
	preferences preferenceStorage,
	notifications notificationStorage,
	queue emailQueue,
	log *logger.Logger,
) *NotifyService {
	return &NotifyService{
		proximity:     proximity,
		preferences:   preferences,
		notifications: notifications,
		queue:         queue,
		logger:        log,
	}
}

// Dispatch runs the fan-out for one event.
//
// Preferences are bulk-fetched once for the union of owners of nearby pins;
// a user absent from the result is treated as fully opted out. The exact
// distance is recomputed per pin because the candidate cutoff is coarser
// than any per-user radius. Failures past the bulk fetches are isolated per
// user: one bad enqueue or audit write never blocks the rest of the fan-out.
func (s *NotifyService) Dispatch(ctx context.Context, event Event) (*DispatchSummary, error) {
	nearby, err := s.proximity.FindNearby(ctx, event)
	if err != nil {
		return nil, err
	}

	summary := &DispatchSummary{
		ParkingUserIDs:  make(map[int64]struct{}),
		BookmarkUserIDs: make(map[int64]struct{}),
	}

	candidates := candidateIDs(nearby)
	if len(candidates) == 0 {
		s.logger.Debugf("no pins within %.1f miles of event %s", MaxNotifyRadiusMiles, event.ID)
		return summary, nil
	}

	users, err := s.preferences.GetByIDs(ctx, candidates)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errorz.ErrPreferenceFetch, err)
	}
	prefs := make(map[int64]entity.User, len(users))
	for _, u := range users {
		prefs[u.ID] = u
	}

	for _, pin := range nearby.Sessions {
		user, ok := prefs[pin.UserID]
		if !ok || !user.ParkingNotify {
			continue
		}
		if _, done := summary.ParkingUserIDs[pin.UserID]; done {
			continue
		}
		distance := event.Coordinate.DistanceMiles(pin.Coordinate())
		if distance > user.Radius() {
			continue
		}
		summary.ParkingUserIDs[pin.UserID] = struct{}{}
		s.notifyUser(ctx, event, user, entity.NotificationKindParking, distance)
	}

	for _, pin := range nearby.Bookmarks {
		user, ok := prefs[pin.UserID]
		if !ok || !user.BookmarkNotify {
			continue
		}
		if _, done := summary.BookmarkUserIDs[pin.UserID]; done {
			continue
		}
		distance := event.Coordinate.DistanceMiles(pin.Coordinate())
		if distance > user.Radius() {
			continue
		}
		summary.BookmarkUserIDs[pin.UserID] = struct{}{}
		s.notifyUser(ctx, event, user, entity.NotificationKindBookmark, distance)
	}

	s.logger.Infof(
		"dispatched event %s: %d parking, %d bookmark notifications",
		event.ID, len(summary.ParkingUserIDs), len(summary.BookmarkUserIDs),
	)
	return summary, nil
}

// notifyUser enqueues the alert email and records the notification. A user
// without an email on file still counts as notified; the send is skipped.
func (s *NotifyService) notifyUser(ctx context.Context, event Event, user entity.User, kind entity.NotificationKind, distance float64) {
	if user.Email == "" {
		s.logger.Debugf("user %d has no email on file, skipping %s alert", user.ID, kind)
	} else {
		s.queue.Enqueue(mailqueue.Payload{
			To:      user.Email,
			Subject: alertSubject(kind),
			Body:    alertBody(kind, event, distance),
		})
	}

	notification := &entity.ProximityNotification{
		TicketID: event.ID,
		UserID:   user.ID,
		Kind:     kind,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		s.logger.Errorf("failed to record %s notification for user %d (event %s): %v", kind, user.ID, event.ID, err)
	}
}

func candidateIDs(nearby Nearby) []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, pin := range nearby.Sessions {
		if _, ok := seen[pin.UserID]; !ok {
			seen[pin.UserID] = struct{}{}
			ids = append(ids, pin.UserID)
		}
	}
	for _, pin := range nearby.Bookmarks {
		if _, ok := seen[pin.UserID]; !ok {
			seen[pin.UserID] = struct{}{}
			ids = append(ids, pin.UserID)
		}
	}
	return ids
}

func alertSubject(kind entity.NotificationKind) string {
	if kind == entity.NotificationKindParking {
		return "Enforcement activity near your parked car"
	}
	return "Enforcement activity near a saved location"
}

func alertBody(kind entity.NotificationKind, event Event, distance float64) string {
	var what string
	if kind == entity.NotificationKindParking {
		what = "your parked car"
	} else {
		what = "a location you saved"
	}
	return fmt.Sprintf(
		"Parking enforcement was reported %.2f miles from %s at %s (lat %.5f, lon %.5f).\n\n"+
			"You can adjust your alert radius or turn these emails off in your notification settings.",
		distance,
		what,
		event.ObservedAt.Format("Jan 2 15:04 MST"),
		event.Coordinate.Latitude,
		event.Coordinate.Longitude,
	)
}
