package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookora/scheduler-api/internal/httperr"
	"github.com/bookora/scheduler-api/internal/httpresp"
	"github.com/bookora/scheduler-api/internal/store"
)

type AuditLogsHandler struct {
	store store.Store
}

func NewAuditLogsHandler(st store.Store) *AuditLogsHandler {
	return &AuditLogsHandler{store: st}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	logs, err := h.store.ListAuditLogs(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao listar auditoria.")
		return
	}

	httpresp.List(c, logs)
}
