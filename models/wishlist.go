package models

import "time"

// Wishlist keeps one favorites record per guest id. Items carry set
// semantics even though they are stored as ordered rows.
type Wishlist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	GuestID   string         `gorm:"uniqueIndex;not null" json:"guest_id"`
	Items     []WishlistItem `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type WishlistItem struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	WishlistID uint      `gorm:"index" json:"-"`
	ProductID  uint      `gorm:"index" json:"product_id"`
	AddedAt    time.Time `json:"added_at"`
}
