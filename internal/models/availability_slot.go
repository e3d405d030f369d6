package models

import "time"

// AvailabilitySlot é uma janela semanal recorrente de atendimento.
// Pode existir mais de uma janela ativa no mesmo weekday; o motor de
// slots trata o conjunto como união.
type AvailabilitySlot struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	BusinessID string `gorm:"size:36;index;not null" json:"business_id"`

	// 0=domingo … 6=sábado
	DayOfWeek int `json:"day_of_week"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	SlotDurationMin int  `gorm:"default:30" json:"slot_duration_min"`
	Active          bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
