package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/agusvaldes/popup-api/internal/domain"
	"github.com/agusvaldes/popup-api/internal/repository"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrNoEligibleTickets = errors.New("order has no eligible tickets for this flow")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrClaimExists       = repository.ErrClaimExists
	ErrClaimNotFound     = repository.ErrClaimNotFound
)

type ClaimRepository interface {
	Insert(ctx context.Context, claim domain.Claim) (domain.Claim, error)
	FindByOrderID(ctx context.Context, orderID string) (domain.Claim, error)
}

type OrderRepository interface {
	FindLinesByOrderAndEmail(ctx context.Context, orderRef, email string) ([]domain.TicketLine, error)
}

type ClaimService struct {
	repo     ClaimRepository
	orders   OrderRepository
	eligible map[string]struct{}
}

// NewClaimService builds the claim flow for one deployment variant. The
// eligible ETIDs come from configuration so the after-party and
// closing-party sites share this code.
func NewClaimService(repo ClaimRepository, orders OrderRepository, eligibleETIDs []string) *ClaimService {
	eligible := make(map[string]struct{}, len(eligibleETIDs))
	for _, etid := range eligibleETIDs {
		eligible[etid] = struct{}{}
	}

	return &ClaimService{
		repo:     repo,
		orders:   orders,
		eligible: eligible,
	}
}

// LookupOrder resolves an order for the claim flow: finds its ticket lines,
// keeps only the lines whose ticket type is eligible, then checks whether
// the order was already claimed.
func (s *ClaimService) LookupOrder(ctx context.Context, orderRef, email string) (domain.OrderLookup, error) {
	lines, err := s.orders.FindLinesByOrderAndEmail(ctx, orderRef, email)
	if err != nil {
		return domain.OrderLookup{}, fmt.Errorf("s.orders.FindLinesByOrderAndEmail -> %w", err)
	}
	if len(lines) == 0 {
		return domain.OrderLookup{}, ErrOrderNotFound
	}

	var eligible []domain.TicketLine
	for _, line := range lines {
		if _, ok := s.eligible[line.ETID]; ok {
			eligible = append(eligible, line)
		}
	}
	if len(eligible) == 0 {
		return domain.OrderLookup{}, ErrNoEligibleTickets
	}

	claim, err := s.repo.FindByOrderID(ctx, eligible[0].OrderID)
	if err == nil {
		return domain.OrderLookup{
			AlreadyRegistered:  true,
			RegisteredQuantity: claim.Quantity,
		}, nil
	}
	if !errors.Is(err, ErrClaimNotFound) {
		return domain.OrderLookup{}, fmt.Errorf("s.repo.FindByOrderID -> %w", err)
	}

	return domain.OrderLookup{
		Tickets:      eligible,
		TotalTickets: len(eligible),
	}, nil
}

// SaveClaim records the one-time claim for an order. The check-then-insert
// sequence in callers is not atomic; a concurrent duplicate loses here on
// the unique order_id index and gets an error, never an overwrite.
func (s *ClaimService) SaveClaim(ctx context.Context, orderID, email string, quantity int) (domain.Claim, error) {
	if quantity <= 0 {
		return domain.Claim{}, ErrInvalidQuantity
	}

	created, err := s.repo.Insert(ctx, domain.Claim{
		OrderID:  orderID,
		Email:    email,
		Quantity: quantity,
	})
	if err != nil {
		return domain.Claim{}, fmt.Errorf("s.repo.Insert -> %w", err)
	}

	return created, nil
}
