package export

import (
	"fmt"

	ics "github.com/arran4/golang-ical"

	"github.com/bookora/scheduler-api/internal/models"
	"github.com/bookora/scheduler-api/internal/timeutil"
	"github.com/bookora/scheduler-api/internal/timezone"
)

const defaultEventDurationMin = 30

// BuildCalendar serializa a agenda do negócio como iCalendar
// (RFC 5545). Horários são ancorados no timezone do negócio; a
// duração vem do serviço do agendamento, com fallback de 30 min.
func BuildCalendar(
	biz *models.Business,
	appointments []models.Appointment,
	services []models.Service,
) string {

	durations := make(map[string]int, len(services))
	for _, s := range services {
		durations[s.ID] = s.DurationMin
	}

	loc := timezone.Location(biz.Timezone)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//bookora//scheduler-api//EN")

	for _, ap := range appointments {
		date, err := timeutil.ParseDate(ap.AppointmentDate)
		if err != nil {
			continue // linha legada malformada não derruba o feed
		}

		start := date.At(ap.StartTime, loc)

		dur := durations[ap.ServiceID]
		if dur <= 0 {
			dur = defaultEventDurationMin
		}
		end := start.Add(minutes(dur))

		ev := cal.AddEvent(fmt.Sprintf("%s@bookora", ap.ID))
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(fmt.Sprintf("%s — %s", ap.CustomerName, biz.Name))
		ev.SetLocation(biz.Address)
		if ap.Notes != "" {
			ev.SetDescription(ap.Notes)
		}
		ev.SetStatus(eventStatus(ap.Status))
	}

	return cal.Serialize()
}

func eventStatus(status string) ics.ObjectStatus {
	if status == "cancelled" {
		return ics.ObjectStatusCancelled
	}
	return ics.ObjectStatusConfirmed
}
