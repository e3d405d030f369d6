package notify

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/bookora/scheduler-api/internal/models"
)

// Dispatcher manda confirmações de agendamento em background, no mesmo
// esquema de fila do audit: nunca bloqueia nem derruba a request.
type Dispatcher struct {
	sender Sender
	logger *zap.Logger
	queue  chan mail
}

type mail struct {
	to      string
	subject string
	body    string
}

func NewDispatcher(sender Sender, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		logger: logger,
		queue:  make(chan mail, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for m := range d.queue {
		if err := d.sender.Send(m.to, m.subject, m.body); err != nil {
			d.logger.Warn("confirmation email failed",
				zap.String("to", m.to), zap.Error(err))
		}
	}
}

// BookingConfirmed enfileira o e-mail de confirmação do cliente.
// Sem e-mail do cliente, nada a fazer.
func (d *Dispatcher) BookingConfirmed(biz *models.Business, ap *models.Appointment) {
	if ap.CustomerEmail == "" {
		return
	}

	subject := fmt.Sprintf("Appointment confirmed — %s", biz.Name)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour appointment at %s is confirmed for %s at %s.\n\nSee you soon!\n",
		ap.CustomerName, biz.Name, ap.AppointmentDate, ap.StartTime,
	)

	select {
	case d.queue <- mail{to: ap.CustomerEmail, subject: subject, body: body}:
	default:
		d.logger.Warn("notify queue full, dropping email",
			zap.String("to", ap.CustomerEmail))
	}
}
