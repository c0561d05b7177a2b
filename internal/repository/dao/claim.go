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
	ErrClaimExists   = errors.New("order already claimed")
	ErrClaimNotFound = errors.New("claim not found")
)

type Claim struct {
	ID uint `gorm:"primaryKey"`

	OrderID  string `gorm:"size:64;unique;not null"`
	Email    string `gorm:"size:255;not null"`
	Quantity int    `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type ClaimDAO struct {
	db *gorm.DB
}

func NewClaimDAO(db *gorm.DB) *ClaimDAO {
	return &ClaimDAO{
		db: db,
	}
}

func (d *ClaimDAO) Insert(ctx context.Context, claim Claim) (Claim, error) {
	result := d.db.WithContext(ctx).Create(&claim)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, "uni_claims_order_id") {
			return Claim{}, ErrClaimExists
		}

		return Claim{}, result.Error
	}

	return claim, nil
}

func (d *ClaimDAO) FindByOrderID(ctx context.Context, orderID string) (Claim, error) {
	var claim Claim

	result := d.db.WithContext(ctx).First(&claim, "order_id = ?", orderID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Claim{}, ErrClaimNotFound
		}

		return Claim{}, result.Error
	}

	return claim, nil
}
