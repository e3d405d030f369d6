package scheduling

import (
	"github.com/bookora/scheduler-api/internal/httperr"
	"github.com/bookora/scheduler-api/internal/models"
	"github.com/bookora/scheduler-api/internal/timeutil"
)

// ValidateWindows rejeita configuração de janela que deixaria o motor
// de slots em estado inválido. Roda na escrita (replace em bloco), não
// na geração: erro de configuração nunca deveria chegar na leitura.
func ValidateWindows(windows []models.AvailabilitySlot) error {
	for _, w := range windows {
		if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
			return httperr.ErrBusiness("invalid_weekday")
		}

		if w.SlotDurationMin <= 0 {
			return httperr.ErrBusiness("invalid_slot_duration")
		}

		start := timeutil.TimeToMinutes(w.StartTime)
		end := timeutil.TimeToMinutes(w.EndTime)
		if start >= end {
			return httperr.ErrBusiness("invalid_availability_window")
		}
	}

	return nil
}
