package service

import (
	"context"
	"time"

	"github.com/parkwatch/parkwatch/internal/domain/entity"
	"github.com/parkwatch/parkwatch/pkg/logger"
)

type ticketStorage interface {
	Create(ctx context.Context, ticket *entity.Ticket) (*entity.Ticket, error)
	Delete(ctx context.Context, id string) error
	GetSince(ctx context.Context, since time.Time) ([]entity.Ticket, error)
}

type dispatcher interface {
	Dispatch(ctx context.Context, event Event) (*DispatchSummary, error)
}

// dispatchTimeout bounds a single fan-out, including the mail enqueue side.
const dispatchTimeout = time.Minute

// TicketService persists ticket and enforcement reports and triggers the
// proximity fan-out for each new one.
type TicketService struct {
	ticketStorage ticketStorage
	notifier      dispatcher
	logger        *logger.Logger
}

func NewTicketService(ticketStorage ticketStorage, notifier dispatcher, log *logger.Logger) *TicketService {
	return &TicketService{
		ticketStorage: ticketStorage,
		notifier:      notifier,
		logger:        log,
	}
}

// Report stores a new report and spawns the notification fan-out. The
// fan-out is best-effort and detached from the request: its failure never
// fails the report submission.
func (s *TicketService) Report(ctx context.Context, ticket entity.Ticket) (*entity.Ticket, error) {
	if ticket.ObservedAt.IsZero() {
		ticket.ObservedAt = time.Now()
	}

	created, err := s.ticketStorage.Create(ctx, &ticket)
	if err != nil {
		return nil, err
	}

	go s.dispatch(*created)

	return created, nil
}

func (s *TicketService) Delete(ctx context.Context, id string) error {
	return s.ticketStorage.Delete(ctx, id)
}

// GetSince returns reports for the heat map, newest first per the storage.
func (s *TicketService) GetSince(ctx context.Context, since time.Time) ([]entity.Ticket, error) {
	return s.ticketStorage.GetSince(ctx, since)
}

// dispatch runs the fan-out on its own context so it outlives the
// originating request.
func (s *TicketService) dispatch(ticket entity.Ticket) {
	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	event := NewEvent(ticket.ID, ticket.Coordinate(), ticket.ObservedAt)
	if _, err := s.notifier.Dispatch(ctx, event); err != nil {
		s.logger.Errorf("proximity dispatch failed for ticket %s: %v", ticket.ID, err)
	}
}
