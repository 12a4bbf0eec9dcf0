package models

import "time"

type Banner struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Image    string `gorm:"not null" json:"image"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Link     string `json:"link"`
	Active   bool   `json:"active"`
	// SortOrder breaks ties between active banners; the lowest one wins.
	// Column named explicitly since "order" is an SQL keyword.
	SortOrder int       `gorm:"column:sort_order;default:0" json:"order"`
	CreatedAt time.Time `json:"created_at"`
}
