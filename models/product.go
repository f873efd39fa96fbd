package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Slug          string         `gorm:"uniqueIndex;not null" json:"slug"`
	Price         float64        `gorm:"not null" json:"price"`
	OriginalPrice float64        `json:"original_price,omitempty"`
	Description   string         `json:"description"`
	Category      string         `gorm:"index" json:"category"`
	ArticleCode   string         `json:"article_code"`
	Composition   string         `json:"composition,omitempty"`
	Care          string         `json:"care,omitempty"`
	SizeChart     string         `json:"size_chart,omitempty"`
	Images        []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	Colors        []ProductColor `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"colors"`
	Sizes         []ProductSize  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"sizes"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ProductID uint   `gorm:"index" json:"-"`
	URL       string `gorm:"not null" json:"url"`
	Position  int    `json:"position"`
}

type ProductColor struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ProductID uint   `gorm:"index" json:"-"`
	Name      string `gorm:"not null" json:"name"`
	Value     string `gorm:"not null" json:"value"`
}

type ProductSize struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ProductID uint   `gorm:"index" json:"-"`
	Value     string `gorm:"not null" json:"value"`
	Stock     int    `gorm:"default:0" json:"stock"`
}
