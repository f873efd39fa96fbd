package models

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	User      string    `gorm:"not null" json:"user"`
	Rating    int       `gorm:"not null" json:"rating"`
	Content   string    `gorm:"not null" json:"content"`
	Helpful   int       `gorm:"default:0" json:"helpful"`
	CreatedAt time.Time `json:"created_at"`
}
