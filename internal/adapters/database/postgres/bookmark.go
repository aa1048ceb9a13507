package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/parkwatch/parkwatch/internal/domain/entity"
)

type BookmarkStorage struct {
	db *gorm.DB
}

func NewBookmarkStorage(db *gorm.DB) *BookmarkStorage {
	return &BookmarkStorage{
		db: db,
	}
}

func (s *BookmarkStorage) Create(ctx context.Context, bookmark *entity.Bookmark) (*entity.Bookmark, error) {
	err := s.db.WithContext(ctx).Create(&bookmark).Error
	return bookmark, err
}

func (s *BookmarkStorage) Delete(ctx context.Context, id uint, userID int64) error {
	return s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Bookmark{}).Error
}

func (s *BookmarkStorage) GetByUserID(ctx context.Context, userID int64) ([]entity.Bookmark, error) {
	var bookmarks []entity.Bookmark
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&bookmarks).Error
	return bookmarks, err
}

func (s *BookmarkStorage) GetAll(ctx context.Context) ([]entity.Bookmark, error) {
	var bookmarks []entity.Bookmark
	err := s.db.WithContext(ctx).Find(&bookmarks).Error
	return bookmarks, err
}
