package models

// Admin holds the single dashboard credential. The row is seeded lazily
// from the configured password on the first login attempt.
type Admin struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	PasswordHash string `gorm:"not null" json:"-"`
}
