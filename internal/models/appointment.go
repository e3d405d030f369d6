package models

import "time"

type Appointment struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	BusinessID string `gorm:"size:36;index;uniqueIndex:idx_booking_slot" json:"business_id"`

	ServiceID    string `gorm:"size:36" json:"service_id"`
	TeamMemberID string `gorm:"size:36" json:"team_member_id"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`

	// Data de calendário normalizada ("YYYY-MM-DD") e horário do slot
	// ("HH:MM"). O índice único é a trava real contra double-booking
	// sob concorrência; a checagem do motor de slots só aconselha.
	AppointmentDate string `gorm:"size:10;uniqueIndex:idx_booking_slot" json:"appointment_date"`
	StartTime       string `gorm:"size:5;uniqueIndex:idx_booking_slot" json:"start_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
