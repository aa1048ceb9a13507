package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/parkwatch/parkwatch/internal/domain/entity"
)

type TicketStorage struct {
	db *gorm.DB
}

func NewTicketStorage(db *gorm.DB) *TicketStorage {
	return &TicketStorage{
		db: db,
	}
}

func (s *TicketStorage) Create(ctx context.Context, ticket *entity.Ticket) (*entity.Ticket, error) {
	err := s.db.WithContext(ctx).Create(&ticket).Error
	return ticket, err
}

func (s *TicketStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Ticket{}).Error
}

// GetSince returns reports observed after the cutoff, newest first. This
// feeds the heat map view.
func (s *TicketStorage) GetSince(ctx context.Context, since time.Time) ([]entity.Ticket, error) {
	var tickets []entity.Ticket
	err := s.db.WithContext(ctx).
		Where("observed_at >= ?", since).
		Order("observed_at DESC").
		Find(&tickets).Error
	return tickets, err
}
