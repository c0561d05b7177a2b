package dao

import (
	"context"

	"gorm.io/gorm"
)

// TicketLine is a row of the upstream ticketing system's order/ticket/user
// join. The tables are owned by that system; this DAO only ever reads them.
type TicketLine struct {
	OrderID  string `gorm:"column:order_id"`
	TicketID string `gorm:"column:tckid"`
	Email    string `gorm:"column:email"`
	EventID  string `gorm:"column:event_id"`
	ETID     string `gorm:"column:etid"`
}

type OrderDAO struct {
	db *gorm.DB
}

func NewOrderDAO(db *gorm.DB) *OrderDAO {
	return &OrderDAO{
		db: db,
	}
}

// FindLinesByOrderAndEmail returns every ticket line of the order whose
// reference and purchaser email match. An unknown pair yields an empty slice,
// not an error.
func (d *OrderDAO) FindLinesByOrderAndEmail(ctx context.Context, orderRef, email string) ([]TicketLine, error) {
	var lines []TicketLine

	result := d.db.WithContext(ctx).Raw(`
		SELECT o.reference AS order_id, t.id AS tckid, u.email, o.event_id, t.etid
		FROM orders o
		JOIN users u ON u.id = o.user_id
		JOIN tickets t ON t.order_id = o.id
		WHERE o.reference = ? AND LOWER(u.email) = LOWER(?)`,
		orderRef, email,
	).Scan(&lines)
	if result.Error != nil {
		return nil, result.Error
	}

	return lines, nil
}
