package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/parkwatch/parkwatch/internal/domain/common/errorz"
	"github.com/parkwatch/parkwatch/internal/domain/entity"
)

type mockSessionStorage struct{ mock.Mock }

func (m *mockSessionStorage) GetAllActive(ctx context.Context) ([]entity.ParkingSession, error) {
	args := m.Called(ctx)
	if s, _ := args.Get(0).([]entity.ParkingSession); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookmarkStorage struct{ mock.Mock }

func (m *mockBookmarkStorage) GetAll(ctx context.Context) ([]entity.Bookmark, error) {
	args := m.Called(ctx)
	if b, _ := args.Get(0).([]entity.Bookmark); b != nil {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

// eventAt is the reference event for the proximity tests; latAt(miles)
// offsets its latitude north by roughly that many miles.
var testEvent = NewEvent("ticket-1", entity.Coordinate{Latitude: 40.0, Longitude: -74.0}, time.Time{})

func latAt(miles float64) float64 {
	return 40.0 + miles/69.09
}

func TestFindNearby_FiltersByCutoff(t *testing.T) {
	sessions := &mockSessionStorage{}
	bookmarks := &mockBookmarkStorage{}

	sessions.On("GetAllActive", mock.Anything).Return([]entity.ParkingSession{
		{ID: 1, UserID: 1, Latitude: latAt(0.5), Longitude: -74.0},
		{ID: 2, UserID: 2, Latitude: latAt(1.9), Longitude: -74.0},
		{ID: 3, UserID: 3, Latitude: latAt(2.5), Longitude: -74.0},
	}, nil)
	bookmarks.On("GetAll", mock.Anything).Return([]entity.Bookmark{
		{ID: 1, UserID: 4, Latitude: latAt(1.0), Longitude: -74.0},
		{ID: 2, UserID: 5, Latitude: latAt(3.0), Longitude: -74.0},
	}, nil)

	svc := NewProximityService(sessions, bookmarks)
	nearby, err := svc.FindNearby(context.Background(), testEvent)
	require.NoError(t, err)

	require.Len(t, nearby.Sessions, 2)
	assert.Equal(t, uint(1), nearby.Sessions[0].ID)
	assert.Equal(t, uint(2), nearby.Sessions[1].ID)

	require.Len(t, nearby.Bookmarks, 1)
	assert.Equal(t, uint(1), nearby.Bookmarks[0].ID)
}

func TestFindNearby_SkipsNonFinitePins(t *testing.T) {
	sessions := &mockSessionStorage{}
	bookmarks := &mockBookmarkStorage{}

	sessions.On("GetAllActive", mock.Anything).Return([]entity.ParkingSession{
		{ID: 1, UserID: 1, Latitude: math.NaN(), Longitude: -74.0},
		{ID: 2, UserID: 2, Latitude: latAt(0.1), Longitude: -74.0},
	}, nil)
	bookmarks.On("GetAll", mock.Anything).Return([]entity.Bookmark{
		{ID: 1, UserID: 3, Latitude: 40.0, Longitude: math.Inf(1)},
	}, nil)

	svc := NewProximityService(sessions, bookmarks)
	nearby, err := svc.FindNearby(context.Background(), testEvent)
	require.NoError(t, err)

	require.Len(t, nearby.Sessions, 1)
	assert.Equal(t, uint(2), nearby.Sessions[0].ID)
	assert.Empty(t, nearby.Bookmarks)
}

func TestFindNearby_ExactlyTwoReads(t *testing.T) {
	sessions := &mockSessionStorage{}
	bookmarks := &mockBookmarkStorage{}

	sessions.On("GetAllActive", mock.Anything).Return([]entity.ParkingSession{
		{ID: 1, UserID: 1, Latitude: latAt(0.5), Longitude: -74.0},
		{ID: 2, UserID: 2, Latitude: latAt(0.6), Longitude: -74.0},
	}, nil)
	bookmarks.On("GetAll", mock.Anything).Return([]entity.Bookmark{
		{ID: 1, UserID: 3, Latitude: latAt(0.7), Longitude: -74.0},
		{ID: 2, UserID: 4, Latitude: latAt(0.8), Longitude: -74.0},
	}, nil)

	svc := NewProximityService(sessions, bookmarks)
	_, err := svc.FindNearby(context.Background(), testEvent)
	require.NoError(t, err)

	sessions.AssertNumberOfCalls(t, "GetAllActive", 1)
	bookmarks.AssertNumberOfCalls(t, "GetAll", 1)
}

func TestFindNearby_SessionFetchFails(t *testing.T) {
	sessions := &mockSessionStorage{}
	bookmarks := &mockBookmarkStorage{}

	sessions.On("GetAllActive", mock.Anything).Return(nil, errors.New("connection refused"))

	svc := NewProximityService(sessions, bookmarks)
	_, err := svc.FindNearby(context.Background(), testEvent)
	require.Error(t, err)
	assert.ErrorIs(t, err, errorz.ErrPinFetch)
	bookmarks.AssertNotCalled(t, "GetAll", mock.Anything)
}

func TestFindNearby_BookmarkFetchFails(t *testing.T) {
	sessions := &mockSessionStorage{}
	bookmarks := &mockBookmarkStorage{}

	sessions.On("GetAllActive", mock.Anything).Return([]entity.ParkingSession{}, nil)
	bookmarks.On("GetAll", mock.Anything).Return(nil, errors.New("connection refused"))

	svc := NewProximityService(sessions, bookmarks)
	_, err := svc.FindNearby(context.Background(), testEvent)
	require.Error(t, err)
	assert.ErrorIs(t, err, errorz.ErrPinFetch)
}
