package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered for this event")
)

type Registration struct {
	ID uint `gorm:"primaryKey"`

	EventID uint   `gorm:"not null;uniqueIndex:uni_registrations_event_email"`
	Email   string `gorm:"size:255;not null;uniqueIndex:uni_registrations_event_email"`

	Name           string `gorm:"size:100;not null"`
	Surname        string `gorm:"size:100;not null"`
	Gender         string `gorm:"size:20;not null"` // "Masculino", "Femenino", or "Otro"
	TicketQuantity int    `gorm:"not null"`
	IPAddress      string `gorm:"size:45;not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type RegistrationDAO struct {
	db *gorm.DB
}

func NewRegistrationDAO(db *gorm.DB) *RegistrationDAO {
	return &RegistrationDAO{
		db: db,
	}
}

func (d *RegistrationDAO) Insert(ctx context.Context, registration Registration) (Registration, error) {
	result := d.db.WithContext(ctx).Create(&registration)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, "uni_registrations_event_email") {
			return Registration{}, ErrEmailAlreadyRegistered
		}

		return Registration{}, result.Error
	}

	return registration, nil
}

func (d *RegistrationDAO) ExistsByEventAndEmail(ctx context.Context, eventID uint, email string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Registration{}).
		Where("event_id = ? AND email = ?", eventID, email).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *RegistrationDAO) CountByEventAndIP(ctx context.Context, eventID uint, ipAddress string) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Registration{}).
		Where("event_id = ? AND ip_address = ?", eventID, ipAddress).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *RegistrationDAO) SumTicketsByEvent(ctx context.Context, eventID uint) (int64, error) {
	var total int64

	result := d.db.WithContext(ctx).
		Model(&Registration{}).
		Where("event_id = ?", eventID).
		Select("COALESCE(SUM(ticket_quantity), 0)").
		Scan(&total)
	if result.Error != nil {
		return 0, result.Error
	}

	return total, nil
}
