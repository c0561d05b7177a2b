package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agusvaldes/popup-api/internal/domain"
)

type stubRegistrationRepo struct {
	insertFn func(ctx context.Context, registration domain.Registration) (domain.Registration, error)
	existsFn func(ctx context.Context, eventID uint, email string) (bool, error)
	countFn  func(ctx context.Context, eventID uint, ipAddress string) (int64, error)
	sumFn    func(ctx context.Context, eventID uint) (int64, error)
}

func (s *stubRegistrationRepo) Insert(ctx context.Context, registration domain.Registration) (domain.Registration, error) {
	return s.insertFn(ctx, registration)
}

func (s *stubRegistrationRepo) ExistsByEventAndEmail(ctx context.Context, eventID uint, email string) (bool, error) {
	return s.existsFn(ctx, eventID, email)
}

func (s *stubRegistrationRepo) CountByEventAndIP(ctx context.Context, eventID uint, ipAddress string) (int64, error) {
	return s.countFn(ctx, eventID, ipAddress)
}

func (s *stubRegistrationRepo) SumTicketsByEvent(ctx context.Context, eventID uint) (int64, error) {
	return s.sumFn(ctx, eventID)
}

func testCatalog() *domain.EventCatalog {
	return domain.NewEventCatalog([]domain.Event{
		{
			ID:               1,
			Name:             "Chris Stussy",
			MaxTickets:       300,
			MaxFemaleTickets: 150,
			MaxTicketsPerIP:  5,
		},
	})
}

func testRegistration() domain.Registration {
	return domain.Registration{
		EventID:        1,
		Name:           "Juan",
		Surname:        "Pérez",
		Email:          "juan@example.com",
		Gender:         domain.GenderMasculino,
		TicketQuantity: 1,
		IPAddress:      "203.0.113.7",
	}
}

func openRepo() *stubRegistrationRepo {
	return &stubRegistrationRepo{
		insertFn: func(_ context.Context, registration domain.Registration) (domain.Registration, error) {
			registration.ID = 42
			return registration, nil
		},
		existsFn: func(_ context.Context, _ uint, _ string) (bool, error) { return false, nil },
		countFn:  func(_ context.Context, _ uint, _ string) (int64, error) { return 0, nil },
		sumFn:    func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

func TestRegistrationService_Register(t *testing.T) {
	t.Run("accepts a valid registration", func(t *testing.T) {
		svc := NewRegistrationService(openRepo(), testCatalog())

		created, err := svc.Register(context.Background(), testRegistration())

		require.NoError(t, err)
		assert.Equal(t, uint(42), created.ID)
		assert.Equal(t, "juan@example.com", created.Email)
	})

	t.Run("rejects an unknown event", func(t *testing.T) {
		svc := NewRegistrationService(openRepo(), testCatalog())

		reg := testRegistration()
		reg.EventID = 99

		_, err := svc.Register(context.Background(), reg)

		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("rejects quantity that would exceed the effective cap", func(t *testing.T) {
		repo := openRepo()
		repo.sumFn = func(_ context.Context, _ uint) (int64, error) { return 449, nil }
		svc := NewRegistrationService(repo, testCatalog())

		reg := testRegistration()
		reg.TicketQuantity = 2

		_, err := svc.Register(context.Background(), reg)

		assert.ErrorIs(t, err, ErrFormClosed)
	})

	t.Run("accepts quantity that exactly reaches the effective cap", func(t *testing.T) {
		repo := openRepo()
		repo.sumFn = func(_ context.Context, _ uint) (int64, error) { return 449, nil }
		svc := NewRegistrationService(repo, testCatalog())

		reg := testRegistration()
		reg.TicketQuantity = 1

		_, err := svc.Register(context.Background(), reg)

		assert.NoError(t, err)
	})

	t.Run("rejects once the effective cap is reached", func(t *testing.T) {
		repo := openRepo()
		repo.sumFn = func(_ context.Context, _ uint) (int64, error) { return 450, nil }
		svc := NewRegistrationService(repo, testCatalog())

		_, err := svc.Register(context.Background(), testRegistration())

		assert.ErrorIs(t, err, ErrFormClosed)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		repo := openRepo()
		repo.existsFn = func(_ context.Context, _ uint, _ string) (bool, error) { return true, nil }
		svc := NewRegistrationService(repo, testCatalog())

		_, err := svc.Register(context.Background(), testRegistration())

		assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
	})

	t.Run("rejects when the IP quota is reached", func(t *testing.T) {
		repo := openRepo()
		repo.countFn = func(_ context.Context, _ uint, _ string) (int64, error) { return 5, nil }
		svc := NewRegistrationService(repo, testCatalog())

		_, err := svc.Register(context.Background(), testRegistration())

		var quotaErr *IPQuotaExceededError
		require.ErrorAs(t, err, &quotaErr)
		assert.Equal(t, 5, quotaErr.Limit)
	})

	t.Run("maps a uniqueness violation at insert time to duplicate email", func(t *testing.T) {
		repo := openRepo()
		repo.insertFn = func(_ context.Context, _ domain.Registration) (domain.Registration, error) {
			return domain.Registration{}, ErrEmailAlreadyRegistered
		}
		svc := NewRegistrationService(repo, testCatalog())

		_, err := svc.Register(context.Background(), testRegistration())

		assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
	})

	t.Run("wraps other insert failures", func(t *testing.T) {
		repo := openRepo()
		repo.insertFn = func(_ context.Context, _ domain.Registration) (domain.Registration, error) {
			return domain.Registration{}, errors.New("connection refused")
		}
		svc := NewRegistrationService(repo, testCatalog())

		_, err := svc.Register(context.Background(), testRegistration())

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmailAlreadyRegistered)
	})
}

func TestRegistrationService_FormStatus(t *testing.T) {
	t.Run("open below the effective cap", func(t *testing.T) {
		repo := openRepo()
		repo.sumFn = func(_ context.Context, _ uint) (int64, error) { return 449, nil }
		svc := NewRegistrationService(repo, testCatalog())

		status, err := svc.FormStatus(context.Background(), 1)

		require.NoError(t, err)
		assert.False(t, status.Closed)
		assert.Equal(t, 450, status.MaxTickets)
	})

	t.Run("closed at the effective cap", func(t *testing.T) {
		repo := openRepo()
		repo.sumFn = func(_ context.Context, _ uint) (int64, error) { return 450, nil }
		svc := NewRegistrationService(repo, testCatalog())

		status, err := svc.FormStatus(context.Background(), 1)

		require.NoError(t, err)
		assert.True(t, status.Closed)
	})

	t.Run("unknown event", func(t *testing.T) {
		svc := NewRegistrationService(openRepo(), testCatalog())

		_, err := svc.FormStatus(context.Background(), 99)

		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}
