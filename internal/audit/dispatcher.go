package audit

import "go.uber.org/zap"

type Event struct {
	BusinessID string
	Action     string
	Entity     string
	EntityID   string
	Metadata   any
}

type Dispatcher struct {
	logger *Logger
	zl     *zap.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, zl *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		zl:     zl,
		queue:  make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.BusinessID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.zl.Warn("audit write failed", zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		d.zl.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action))
	}
}
