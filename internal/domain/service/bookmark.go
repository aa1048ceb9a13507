package service

import (
	"context"

	"github.com/parkwatch/parkwatch/internal/domain/entity"
)

type bookmarkStorage interface {
	Create(ctx context.Context, bookmark *entity.Bookmark) (*entity.Bookmark, error)
	Delete(ctx context.Context, id uint, userID int64) error
	GetByUserID(ctx context.Context, userID int64) ([]entity.Bookmark, error)
	GetAll(ctx context.Context) ([]entity.Bookmark, error)
}

type BookmarkService struct {
	bookmarkStorage bookmarkStorage
}

func NewBookmarkService(bookmarkStorage bookmarkStorage) *BookmarkService {
	return &BookmarkService{
		bookmarkStorage: bookmarkStorage,
	}
}

func (s *BookmarkService) Create(ctx context.Context, userID int64, name string, coordinate entity.Coordinate) (*entity.Bookmark, error) {
	bookmark := &entity.Bookmark{
		UserID:    userID,
		Name:      name,
		Latitude:  coordinate.Latitude,
		Longitude: coordinate.Longitude,
	}
	return s.bookmarkStorage.Create(ctx, bookmark)
}

// Delete removes a bookmark. The storage scopes the delete to the owning
// user, so one user cannot remove another's pins.
func (s *BookmarkService) Delete(ctx context.Context, id uint, userID int64) error {
	return s.bookmarkStorage.Delete(ctx, id, userID)
}

func (s *BookmarkService) GetByUserID(ctx context.Context, userID int64) ([]entity.Bookmark, error) {
	return s.bookmarkStorage.GetByUserID(ctx, userID)
}
