package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookora/scheduler-api/internal/export"
	"github.com/bookora/scheduler-api/internal/httperr"
	"github.com/bookora/scheduler-api/internal/store"
)

type ExportHandler struct {
	store store.Store
}

func NewExportHandler(st store.Store) *ExportHandler {
	return &ExportHandler{store: st}
}

// ICS serve a agenda inteira do negócio como feed iCalendar, pronto
// para assinar no Google Calendar / Apple Calendar.
func (h *ExportHandler) ICS(c *gin.Context) {
	ctx := c.Request.Context()

	biz, err := h.store.GetBusiness(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "business_not_found", "Negócio não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	aps, err := h.store.ListAppointments(ctx, biz.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_export", "Erro ao exportar agenda.")
		return
	}

	services, err := h.store.ListServices(ctx, biz.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_export", "Erro ao exportar agenda.")
		return
	}

	payload := export.BuildCalendar(biz, aps, services)

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.ics"`, biz.Slug))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(payload))
}

func (h *ExportHandler) CSV(c *gin.Context) {
	ctx := c.Request.Context()

	biz, err := h.store.GetBusiness(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "business_not_found", "Negócio não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	aps, err := h.store.ListAppointments(ctx, biz.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_export", "Erro ao exportar agenda.")
		return
	}

	services, err := h.store.ListServices(ctx, biz.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_export", "Erro ao exportar agenda.")
		return
	}

	buf, err := export.WriteCSV(aps, services)
	if err != nil {
		httperr.Internal(c, "failed_to_export", "Erro ao exportar agenda.")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-appointments.csv"`, biz.Slug))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
