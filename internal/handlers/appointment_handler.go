package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookora/scheduler-api/internal/audit"
	"github.com/bookora/scheduler-api/internal/httperr"
	"github.com/bookora/scheduler-api/internal/httpresp"
	"github.com/bookora/scheduler-api/internal/models"
	"github.com/bookora/scheduler-api/internal/notify"
	"github.com/bookora/scheduler-api/internal/scheduling"
	"github.com/bookora/scheduler-api/internal/store"
	"github.com/bookora/scheduler-api/internal/timeutil"
	"github.com/bookora/scheduler-api/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	store  store.Store
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewAppointmentHandler(
	st store.Store,
	auditDispatcher *audit.Dispatcher,
	notifyDispatcher *notify.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{
		store:  st,
		audit:  auditDispatcher,
		notify: notifyDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ServiceID     string `json:"service_id"`
	TeamMemberID  string `json:"team_member_id"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Notes         string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

// Create agenda um horário pelo dashboard. A checagem contra o motor
// de slots é aconselhamento (read-then-book); quem decide mesmo sob
// corrida é o storage (índice único / recheck sob lock).
func (h *AppointmentHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	businessID := c.Param("id")

	biz, err := h.store.GetBusiness(ctx, businessID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "business_not_found", "Negócio não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := timeutil.ParseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	if req.ServiceID != "" {
		if _, err := h.store.GetService(ctx, businessID, req.ServiceID); err != nil {
			httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
			return
		}
	}

	slots, err := h.store.GetAvailableSlots(ctx, businessID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_get_slots", "Erro ao validar horário.")
		return
	}
	if !contains(slots, req.Time) {
		httperr.BadRequest(c, "slot_unavailable", "Horário indisponível.")
		return
	}

	ap := models.Appointment{
		BusinessID:      businessID,
		ServiceID:       req.ServiceID,
		TeamMemberID:    req.TeamMemberID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		AppointmentDate: date.String(),
		StartTime:       req.Time,
		Status:          string(scheduling.InitialStatus()),
		Notes:           req.Notes,
	}

	if err := h.store.CreateAppointment(ctx, &ap); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			h.audit.Dispatch(audit.Event{
				BusinessID: businessID,
				Action:     "appointment_conflict",
				Entity:     "appointment",
				Metadata: map[string]any{
					"date": date.String(),
					"time": req.Time,
				},
			})
			httperr.Conflict(c, "slot_taken", "Horário acabou de ser ocupado.")
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		Action:     "appointment_created",
		Entity:     "appointment",
		EntityID:   ap.ID,
	})
	h.notify.BookingConfirmed(biz, &ap)

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	businessID := c.Param("id")

	dateStr := c.Query("date")
	if dateStr == "" {
		aps, err := h.store.ListAppointments(ctx, businessID)
		if err != nil {
			httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
			return
		}
		httpresp.List(c, aps)
		return
	}

	date, err := timeutil.ParseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	aps, err := h.store.ListAppointmentsByDate(ctx, businessID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}
	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.store.GetAppointment(c.Request.Context(), c.Param("id"), c.Param("apptID"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, "appointment_cancelled", scheduling.Cancel)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, "appointment_completed", scheduling.Complete)
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	action string,
	apply func(*models.Appointment, time.Time) error,
) {
	ctx := c.Request.Context()
	businessID := c.Param("id")

	biz, err := h.store.GetBusiness(ctx, businessID)
	if err != nil {
		httperr.NotFound(c, "business_not_found", "Negócio não encontrado.")
		return
	}

	ap, err := h.store.GetAppointment(ctx, businessID, c.Param("apptID"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	now := timezone.NowIn(biz.Timezone)
	if err := apply(ap, now); err != nil {
		httperr.BadRequest(c, "invalid_state", "Transição de status inválida.")
		return
	}

	if err := h.store.UpdateAppointment(ctx, ap); err != nil {
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		Action:     action,
		Entity:     "appointment",
		EntityID:   ap.ID,
	})

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	businessID := c.Param("id")

	err := h.store.DeleteAppointment(c.Request.Context(), businessID, c.Param("apptID"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao remover agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		Action:     "appointment_deleted",
		Entity:     "appointment",
		EntityID:   c.Param("apptID"),
	})

	c.Status(http.StatusNoContent)
}
