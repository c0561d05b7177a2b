package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/agusvaldes/popup-api/internal/domain"
	"github.com/agusvaldes/popup-api/internal/repository"
)

var (
	ErrEventNotFound          = errors.New("event not found")
	ErrFormClosed             = errors.New("registration limit reached")
	ErrEmailAlreadyRegistered = repository.ErrEmailAlreadyRegistered
)

// IPQuotaExceededError carries the configured per-IP limit so callers can
// surface it in the rejection message.
type IPQuotaExceededError struct {
	Limit int
}

func (e *IPQuotaExceededError) Error() string {
	return fmt.Sprintf("limit of %d registrations per IP address reached", e.Limit)
}

type RegistrationRepository interface {
	Insert(ctx context.Context, registration domain.Registration) (domain.Registration, error)
	ExistsByEventAndEmail(ctx context.Context, eventID uint, email string) (bool, error)
	CountByEventAndIP(ctx context.Context, eventID uint, ipAddress string) (int64, error)
	SumTicketsByEvent(ctx context.Context, eventID uint) (int64, error)
}

type RegistrationService struct {
	repo   RegistrationRepository
	events *domain.EventCatalog
}

func NewRegistrationService(repo RegistrationRepository, events *domain.EventCatalog) *RegistrationService {
	return &RegistrationService{
		repo:   repo,
		events: events,
	}
}

// FormStatus reports whether the event's form is closed against its
// effective cap. Read-only.
func (s *RegistrationService) FormStatus(ctx context.Context, eventID uint) (domain.FormStatus, error) {
	event, ok := s.events.Get(eventID)
	if !ok {
		return domain.FormStatus{}, ErrEventNotFound
	}

	total, err := s.repo.SumTicketsByEvent(ctx, eventID)
	if err != nil {
		return domain.FormStatus{}, fmt.Errorf("s.repo.SumTicketsByEvent -> %w", err)
	}

	return domain.FormStatus{
		Closed:     total >= int64(event.EffectiveCap()),
		MaxTickets: event.EffectiveCap(),
	}, nil
}

// Register runs the gating checks in order (capacity, duplicate email,
// per-IP quota) and inserts the row. The pre-checks are best effort; the
// composite unique index on (event_id, email) is the backstop, and a
// uniqueness violation at insert time is reported as
// ErrEmailAlreadyRegistered.
func (s *RegistrationService) Register(ctx context.Context, registration domain.Registration) (domain.Registration, error) {
	event, ok := s.events.Get(registration.EventID)
	if !ok {
		return domain.Registration{}, ErrEventNotFound
	}

	total, err := s.repo.SumTicketsByEvent(ctx, registration.EventID)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.SumTicketsByEvent -> %w", err)
	}
	if total+int64(registration.TicketQuantity) > int64(event.EffectiveCap()) {
		return domain.Registration{}, ErrFormClosed
	}

	exists, err := s.repo.ExistsByEventAndEmail(ctx, registration.EventID, registration.Email)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.ExistsByEventAndEmail -> %w", err)
	}
	if exists {
		return domain.Registration{}, ErrEmailAlreadyRegistered
	}

	count, err := s.repo.CountByEventAndIP(ctx, registration.EventID, registration.IPAddress)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.CountByEventAndIP -> %w", err)
	}
	if count >= int64(event.MaxTicketsPerIP) {
		return domain.Registration{}, &IPQuotaExceededError{Limit: event.MaxTicketsPerIP}
	}

	created, err := s.repo.Insert(ctx, registration)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyRegistered) {
			return domain.Registration{}, ErrEmailAlreadyRegistered
		}

		return domain.Registration{}, fmt.Errorf("s.repo.Insert -> %w", err)
	}

	return created, nil
}
