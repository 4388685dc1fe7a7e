package models

import "time"

// Catalog category / unit ids mirror the upstream supply catalog:
// 285 = medical supplies, 18 = default unit of measurement.
const (
	MedicalCategoryID = 285
	DefaultUnitID     = 18
)

type Product struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:150;not null;unique"`
	Category  int    `gorm:"not null;index"`
	Unit      int    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
