package models

import "time"

// Setting is a single admin-editable key/value pair. Known keys:
// shippingCost (flat shipping charge applied at checkout).
type Setting struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Key       string    `gorm:"uniqueIndex;not null" json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
