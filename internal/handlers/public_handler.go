package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookora/scheduler-api/internal/audit"
	"github.com/bookora/scheduler-api/internal/httperr"
	"github.com/bookora/scheduler-api/internal/models"
	"github.com/bookora/scheduler-api/internal/notify"
	"github.com/bookora/scheduler-api/internal/scheduling"
	"github.com/bookora/scheduler-api/internal/store"
	"github.com/bookora/scheduler-api/internal/timeutil"
	"github.com/bookora/scheduler-api/internal/validators"
)

// PublicHandler é a superfície consumida pelo site público do negócio,
// chaveada por slug. Sem autenticação; o rate limit protege o booking.
type PublicHandler struct {
	store  store.Store
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewPublicHandler(
	st store.Store,
	auditDispatcher *audit.Dispatcher,
	notifyDispatcher *notify.Dispatcher,
) *PublicHandler {
	return &PublicHandler{
		store:  st,
		audit:  auditDispatcher,
		notify: notifyDispatcher,
	}
}

// Site devolve o payload que o site público renderiza: perfil,
// personalização e catálogo de serviços ativos.
func (h *PublicHandler) Site(c *gin.Context) {
	ctx := c.Request.Context()

	biz, err := h.store.GetBusinessBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "business_not_found", "Negócio não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	services, err := h.store.ListServices(ctx, biz.ID)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}
	active := []models.Service{}
	for _, s := range services {
		if s.Active {
			active = append(active, s)
		}
	}

	team, err := h.store.ListTeamMembers(ctx, biz.ID)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	// Backend relacional ainda não persiste website config; site sem
	// config sai com seção "website" nula.
	website, err := h.store.GetWebsiteConfig(ctx, biz.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"business": biz,
		"website":  website,
		"services": active,
		"team":     team,
	})
}

// Availability é o endpoint que o widget de booking consulta:
// ?date=YYYY-MM-DD → horários livres.
func (h *PublicHandler) Availability(c *gin.Context) {
	ctx := c.Request.Context()

	biz, err := h.store.GetBusinessBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "business_not_found", "Negócio não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

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

	slots, err := h.store.GetAvailableSlots(ctx, biz.ID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_get_slots", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date.String(),
		"slots": slots,
	})
}

type PublicBookingRequest struct {
	ServiceID     string `json:"service_id"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Notes         string `json:"notes"`
}

// CreateAppointment é o booking do cliente final. Mesmo fluxo
// read-then-book do dashboard; o storage resolve a corrida.
func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	ctx := c.Request.Context()

	biz, err := h.store.GetBusinessBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "business_not_found", "Negócio não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := timeutil.ParseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	if req.CustomerEmail != "" && !validators.IsEmailDomainValid(req.CustomerEmail) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail não parece válido.")
		return
	}

	if req.ServiceID != "" {
		svc, err := h.store.GetService(ctx, biz.ID, req.ServiceID)
		if err != nil || !svc.Active {
			httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
			return
		}
	}

	slots, err := h.store.GetAvailableSlots(ctx, biz.ID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_get_slots", "Erro ao validar horário.")
		return
	}
	if !contains(slots, req.Time) {
		httperr.BadRequest(c, "slot_unavailable", "Horário indisponível.")
		return
	}

	ap := models.Appointment{
		BusinessID:      biz.ID,
		ServiceID:       req.ServiceID,
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
			httperr.Conflict(c, "slot_taken", "Horário acabou de ser ocupado.")
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BusinessID: biz.ID,
		Action:     "public_appointment_created",
		Entity:     "appointment",
		EntityID:   ap.ID,
	})
	h.notify.BookingConfirmed(biz, &ap)

	c.JSON(http.StatusCreated, ap)
}
