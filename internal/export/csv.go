package export

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/bookora/scheduler-api/internal/models"
)

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}

// WriteCSV devolve a agenda como CSV pronto para download. O handler
// só seta os headers HTTP e escreve o buffer.
func WriteCSV(appointments []models.Appointment, services []models.Service) (*bytes.Buffer, error) {
	names := make(map[string]string, len(services))
	for _, s := range services {
		names[s.ID] = s.Name
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"date", "time", "customer", "phone", "email", "service", "status", "notes"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, ap := range appointments {
		row := []string{
			ap.AppointmentDate,
			ap.StartTime,
			ap.CustomerName,
			ap.CustomerPhone,
			ap.CustomerEmail,
			names[ap.ServiceID],
			ap.Status,
			ap.Notes,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf, nil
}
