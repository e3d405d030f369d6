package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookora/scheduler-api/internal/httperr"
	"github.com/bookora/scheduler-api/internal/httpresp"
	"github.com/bookora/scheduler-api/internal/models"
	"github.com/bookora/scheduler-api/internal/store"
	"github.com/bookora/scheduler-api/internal/timeutil"
)

type AvailabilityHandler struct {
	store store.Store
}

func NewAvailabilityHandler(st store.Store) *AvailabilityHandler {
	return &AvailabilityHandler{store: st}
}

// --------- Requests ---------

type AvailabilityWindowConfig struct {
	DayOfWeek       int    `json:"day_of_week" binding:"min=0,max=6"`
	Active          bool   `json:"active"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	SlotDurationMin int    `json:"slot_duration_min"`
}

type AvailabilityUpdateRequest struct {
	Windows []AvailabilityWindowConfig `json:"windows" binding:"required"`
}

// --------- Handlers ---------

func (h *AvailabilityHandler) Get(c *gin.Context) {
	windows, err := h.store.ListAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", "Erro ao buscar disponibilidade.")
		return
	}

	httpresp.List(c, windows)
}

// Update troca a semana inteira de uma vez: a lista enviada substitui
// todas as janelas do negócio (delete-all-then-insert).
func (h *AvailabilityHandler) Update(c *gin.Context) {
	businessID := c.Param("id")

	var req AvailabilityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	windows := make([]models.AvailabilitySlot, 0, len(req.Windows))
	for _, w := range req.Windows {
		dur := w.SlotDurationMin
		if dur == 0 {
			dur = 30
		}
		windows = append(windows, models.AvailabilitySlot{
			BusinessID:      businessID,
			DayOfWeek:       w.DayOfWeek,
			Active:          w.Active,
			StartTime:       w.StartTime,
			EndTime:         w.EndTime,
			SlotDurationMin: dur,
		})
	}

	if err := h.store.ReplaceAvailability(c.Request.Context(), businessID, windows); err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) {
			httperr.BadRequest(c, be.Code, "Configuração de janela inválida.")
			return
		}
		httperr.Internal(c, "failed_to_save_availability", "Erro ao salvar disponibilidade.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// AvailableSlots expõe o motor de slots: ?date=YYYY-MM-DD →
// lista ordenada de "HH:MM" livres. Dia sem janela → lista vazia,
// nunca erro.
func (h *AvailabilityHandler) AvailableSlots(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := timeutil.ParseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.store.GetAvailableSlots(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		httperr.Internal(c, "failed_to_get_slots", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date.String(),
		"slots": slots,
	})
}
