package repository

import (
	"context"

	"github.com/agusvaldes/popup-api/internal/domain"
	"github.com/agusvaldes/popup-api/internal/repository/dao"
)

var (
	ErrEmailAlreadyRegistered = dao.ErrEmailAlreadyRegistered
)

type RegistrationDAO interface {
	Insert(ctx context.Context, registration dao.Registration) (dao.Registration, error)
	ExistsByEventAndEmail(ctx context.Context, eventID uint, email string) (bool, error)
	CountByEventAndIP(ctx context.Context, eventID uint, ipAddress string) (int64, error)
	SumTicketsByEvent(ctx context.Context, eventID uint) (int64, error)
}

type RegistrationRepository struct {
	dao RegistrationDAO
}

func NewRegistrationRepository(dao RegistrationDAO) *RegistrationRepository {
	return &RegistrationRepository{
		dao: dao,
	}
}

func (r *RegistrationRepository) domainToDao(reg domain.Registration) dao.Registration {
	return dao.Registration{
		ID:             reg.ID,
		EventID:        reg.EventID,
		Name:           reg.Name,
		Surname:        reg.Surname,
		Email:          reg.Email,
		Gender:         reg.Gender,
		TicketQuantity: reg.TicketQuantity,
		IPAddress:      reg.IPAddress,
		CreatedAt:      reg.CreatedAt,
	}
}

func (r *RegistrationRepository) daoToDomain(reg dao.Registration) domain.Registration {
	return domain.Registration{
		ID:             reg.ID,
		EventID:        reg.EventID,
		Name:           reg.Name,
		Surname:        reg.Surname,
		Email:          reg.Email,
		Gender:         reg.Gender,
		TicketQuantity: reg.TicketQuantity,
		IPAddress:      reg.IPAddress,
		CreatedAt:      reg.CreatedAt,
	}
}

func (r *RegistrationRepository) Insert(ctx context.Context, registration domain.Registration) (domain.Registration, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(registration))
	if err != nil {
		return domain.Registration{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *RegistrationRepository) ExistsByEventAndEmail(ctx context.Context, eventID uint, email string) (bool, error) {
	return r.dao.ExistsByEventAndEmail(ctx, eventID, email)
}

func (r *RegistrationRepository) CountByEventAndIP(ctx context.Context, eventID uint, ipAddress string) (int64, error) {
	return r.dao.CountByEventAndIP(ctx, eventID, ipAddress)
}

func (r *RegistrationRepository) SumTicketsByEvent(ctx context.Context, eventID uint) (int64, error) {
	return r.dao.SumTicketsByEvent(ctx, eventID)
}
