package models

import "time"

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Discount    float64 `gorm:"default:0" json:"discount"`
	Featured    bool    `gorm:"default:false" json:"featured"`

	// CreatedBy is set once at creation and never reassigned. Creator is
	// resolved on reads; a deleted user simply loads as a zero value.
	CreatedBy string    `json:"created_by"`
	Creator   User      `gorm:"foreignKey:CreatedBy" json:"creator"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
