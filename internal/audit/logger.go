package audit

import (
	"context"
	"encoding/json"

	"github.com/bookora/scheduler-api/internal/models"
	"github.com/bookora/scheduler-api/internal/store"
)

// Logger grava trilha de auditoria através do facade de storage, então
// o backend em memória também carrega auditoria.
type Logger struct {
	store store.Store
}

func New(st store.Store) *Logger {
	return &Logger{store: st}
}

func (l *Logger) Log(
	businessID string,
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		BusinessID: businessID,
		Action:     action,
		Entity:     entity,
		EntityID:   entityID,
		Metadata:   metaJSON,
	}

	return l.store.AppendAuditLog(context.Background(), &entry)
}
