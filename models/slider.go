package models

import "time"

// Slide is one image in the home page carousel.
type Slide struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	Order     int       `gorm:"column:sort_order;default:0" json:"order"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
