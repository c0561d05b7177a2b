package repository

import (
	"context"

	"github.com/agusvaldes/popup-api/internal/domain"
	"github.com/agusvaldes/popup-api/internal/repository/dao"
)

var (
	ErrClaimExists   = dao.ErrClaimExists
	ErrClaimNotFound = dao.ErrClaimNotFound
)

type ClaimDAO interface {
	Insert(ctx context.Context, claim dao.Claim) (dao.Claim, error)
	FindByOrderID(ctx context.Context, orderID string) (dao.Claim, error)
}

type ClaimRepository struct {
	dao ClaimDAO
}

func NewClaimRepository(dao ClaimDAO) *ClaimRepository {
	return &ClaimRepository{
		dao: dao,
	}
}

func (r *ClaimRepository) daoToDomain(c dao.Claim) domain.Claim {
	return domain.Claim{
		ID:        c.ID,
		OrderID:   c.OrderID,
		Email:     c.Email,
		Quantity:  c.Quantity,
		CreatedAt: c.CreatedAt,
	}
}

func (r *ClaimRepository) Insert(ctx context.Context, claim domain.Claim) (domain.Claim, error) {
	created, err := r.dao.Insert(ctx, dao.Claim{
		OrderID:  claim.OrderID,
		Email:    claim.Email,
		Quantity: claim.Quantity,
	})
	if err != nil {
		return domain.Claim{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *ClaimRepository) FindByOrderID(ctx context.Context, orderID string) (domain.Claim, error) {
	claim, err := r.dao.FindByOrderID(ctx, orderID)
	if err != nil {
		return domain.Claim{}, err
	}

	return r.daoToDomain(claim), nil
}
