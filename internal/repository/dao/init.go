package dao

import "gorm.io/gorm"

// InitTables migrates the tables this service owns. The upstream ticketing
// tables read by OrderDAO are deliberately not listed.
func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Registration{},
		&Claim{},
	)
}
