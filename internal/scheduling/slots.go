package scheduling

import (
	"sort"

	"github.com/bookora/scheduler-api/internal/models"
	"github.com/bookora/scheduler-api/internal/timeutil"
)

// AvailableSlots calcula os horários livres de um negócio numa data.
//
// Função pura: os dois backends de storage delegam aqui, então a
// paridade entre eles vale por construção. A sequência retornada é
// ordenada ("HH:MM" zero-padded ordena cronologicamente) e finita.
func AvailableSlots(
	windows []models.AvailabilitySlot,
	appointments []models.Appointment,
	date timeutil.Date,
) []string {

	weekday := date.Weekday()

	// Horários já ocupados na data. Comparação por data de calendário,
	// nunca por timestamp.
	//
	// NOTA: agendamentos cancelados também bloqueiam o slot — o status
	// não é filtrado aqui. Comportamento herdado; mudar isso altera o
	// contrato do facade.
	booked := make(map[string]struct{})
	dateKey := date.String()
	for _, ap := range appointments {
		if ap.AppointmentDate == dateKey {
			booked[ap.StartTime] = struct{}{}
		}
	}

	// União das janelas ativas do weekday. Set chaveado na string
	// formatada: janelas sobrepostas que geram o mesmo "HH:MM" contam
	// uma vez só.
	seen := make(map[string]struct{})
	var slots []string

	for _, w := range windows {
		if !w.Active || w.DayOfWeek != weekday {
			continue
		}

		// Janela mal configurada nunca deveria passar da validação de
		// escrita; o guard evita loop infinito se passar.
		if w.SlotDurationMin <= 0 {
			continue
		}

		start := timeutil.TimeToMinutes(w.StartTime)
		end := timeutil.TimeToMinutes(w.EndTime)

		// Caminhada exclusiva no fim: o próprio endTime nunca vira
		// slot, e sobra parcial é descartada em vez de gerar slot
		// curto.
		for cur := start; cur < end; cur += w.SlotDurationMin {
			hm := timeutil.MinutesToTime(cur)

			if _, taken := booked[hm]; taken {
				continue
			}
			if _, dup := seen[hm]; dup {
				continue
			}

			seen[hm] = struct{}{}
			slots = append(slots, hm)
		}
	}

	sort.Strings(slots)

	if slots == nil {
		return []string{}
	}
	return slots
}
