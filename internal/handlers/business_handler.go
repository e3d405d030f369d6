package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bookora/scheduler-api/internal/httperr"
	"github.com/bookora/scheduler-api/internal/httpresp"
	"github.com/bookora/scheduler-api/internal/models"
	"github.com/bookora/scheduler-api/internal/store"
	"github.com/bookora/scheduler-api/internal/timezone"
	"github.com/bookora/scheduler-api/internal/validators"
)

type BusinessHandler struct {
	store store.Store
}

func NewBusinessHandler(st store.Store) *BusinessHandler {
	return &BusinessHandler{store: st}
}

// --------- Requests ---------

type CreateBusinessRequest struct {
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Timezone string `json:"timezone"`
	About    string `json:"about"`
}

type UpdateBusinessRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`
	About    *string `json:"about"`
}

// --------- Handlers ---------

func (h *BusinessHandler) Create(c *gin.Context) {
	var req CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	if req.Email != "" && !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail não parece válido.")
		return
	}

	tz := req.Timezone
	if !timezone.IsValid(tz) {
		tz = timezone.DefaultTimezone
	}

	biz := models.Business{
		Name:     req.Name,
		Slug:     slug,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:    req.Phone,
		Address:  req.Address,
		Timezone: tz,
		About:    req.About,
	}

	if err := h.store.CreateBusiness(c.Request.Context(), &biz); err != nil {
		if httperr.IsBusiness(err, "slug_already_exists") {
			httperr.BadRequest(c, "slug_already_exists", "Slug já está em uso.")
			return
		}
		httperr.Internal(c, "failed_to_create_business", "Erro ao criar negócio.")
		return
	}

	c.JSON(http.StatusCreated, biz)
}

func (h *BusinessHandler) Get(c *gin.Context) {
	biz, err := h.store.GetBusiness(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "business_not_found", "Negócio não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	httpresp.OK(c, biz)
}

func (h *BusinessHandler) Update(c *gin.Context) {
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

	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		biz.Name = *req.Name
	}
	if req.Email != nil {
		biz.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		biz.Phone = *req.Phone
	}
	if req.Address != nil {
		biz.Address = *req.Address
	}
	if req.Timezone != nil && timezone.IsValid(*req.Timezone) {
		biz.Timezone = *req.Timezone
	}
	if req.About != nil {
		biz.About = *req.About
	}

	if err := h.store.UpdateBusiness(ctx, biz); err != nil {
		httperr.Internal(c, "failed_to_update_business", "Erro ao atualizar negócio.")
		return
	}

	httpresp.OK(c, biz)
}
