package models

import "time"

// WebsiteConfig guarda a personalização do site público do negócio.
// Ainda não portado para o backend relacional (ver store.Postgres).
type WebsiteConfig struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	BusinessID string `gorm:"size:36;uniqueIndex;not null" json:"business_id"`

	Template     string `gorm:"size:50" json:"template"`
	PrimaryColor string `gorm:"size:7" json:"primary_color"`
	LogoURL      string `gorm:"size:255" json:"logo_url"`

	HeroTitle    string `gorm:"size:150" json:"hero_title"`
	HeroSubtitle string `gorm:"size:255" json:"hero_subtitle"`

	ShowPrices bool `gorm:"default:true" json:"show_prices"`
	Published  bool `gorm:"default:false" json:"published"`

	CustomDomain string `gorm:"size:255" json:"custom_domain"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
