package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/parkwatch/parkwatch/internal/domain/entity"
)

type NotificationStorage struct {
	db *gorm.DB
}

func NewNotificationStorage(db *gorm.DB) *NotificationStorage {
	return &NotificationStorage{
		db: db,
	}
}

func (s *NotificationStorage) Create(ctx context.Context, notification *entity.ProximityNotification) error {
	return s.db.WithContext(ctx).Create(notification).Error
}

func (s *NotificationStorage) GetByTicketID(ctx context.Context, ticketID string) ([]entity.ProximityNotification, error) {
	var notifications []entity.ProximityNotification
	err := s.db.WithContext(ctx).Where("ticket_id = ?", ticketID).Find(&notifications).Error
	return notifications, err
}
