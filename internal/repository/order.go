package repository

import (
	"context"

	"github.com/agusvaldes/popup-api/internal/domain"
	"github.com/agusvaldes/popup-api/internal/repository/dao"
)

type OrderDAO interface {
	FindLinesByOrderAndEmail(ctx context.Context, orderRef, email string) ([]dao.TicketLine, error)
}

type OrderRepository struct {
	dao OrderDAO
}

func NewOrderRepository(dao OrderDAO) *OrderRepository {
	return &OrderRepository{
		dao: dao,
	}
}

func (r *OrderRepository) FindLinesByOrderAndEmail(ctx context.Context, orderRef, email string) ([]domain.TicketLine, error) {
	daoLines, err := r.dao.FindLinesByOrderAndEmail(ctx, orderRef, email)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.TicketLine, len(daoLines))
	for i, l := range daoLines {
		lines[i] = domain.TicketLine{
			OrderID:  l.OrderID,
			TicketID: l.TicketID,
			Email:    l.Email,
			EventID:  l.EventID,
			ETID:     l.ETID,
		}
	}

	return lines, nil
}
