package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookora/scheduler-api/internal/httperr"
	"github.com/bookora/scheduler-api/internal/httpresp"
	"github.com/bookora/scheduler-api/internal/models"
	"github.com/bookora/scheduler-api/internal/store"
)

type TeamHandler struct {
	store store.Store
}

func NewTeamHandler(st store.Store) *TeamHandler {
	return &TeamHandler{store: st}
}

type CreateTeamMemberRequest struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Bio   string `json:"bio"`
}

type UpdateTeamMemberRequest struct {
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Bio    *string `json:"bio"`
	Active *bool   `json:"active"`
}

func (h *TeamHandler) List(c *gin.Context) {
	team, err := h.store.ListTeamMembers(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_team", "Erro ao listar equipe.")
		return
	}
	httpresp.List(c, team)
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	member := models.TeamMember{
		BusinessID: c.Param("id"),
		Name:       req.Name,
		Role:       req.Role,
		Email:      req.Email,
		Phone:      req.Phone,
		Bio:        req.Bio,
		Active:     true,
	}

	if err := h.store.CreateTeamMember(c.Request.Context(), &member); err != nil {
		httperr.Internal(c, "failed_to_create_team_member", "Erro ao criar membro.")
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (h *TeamHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	businessID := c.Param("id")
	memberID := c.Param("memberID")

	team, err := h.store.ListTeamMembers(ctx, businessID)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	var member *models.TeamMember
	for i := range team {
		if team[i].ID == memberID {
			member = &team[i]
			break
		}
	}
	if member == nil {
		httperr.NotFound(c, "team_member_not_found", "Membro não encontrado.")
		return
	}

	var req UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Bio != nil {
		member.Bio = *req.Bio
	}
	if req.Active != nil {
		member.Active = *req.Active
	}

	if err := h.store.UpdateTeamMember(ctx, member); err != nil {
		httperr.Internal(c, "failed_to_update_team_member", "Erro ao atualizar membro.")
		return
	}

	httpresp.OK(c, member)
}

func (h *TeamHandler) Delete(c *gin.Context) {
	err := h.store.DeleteTeamMember(c.Request.Context(), c.Param("id"), c.Param("memberID"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "team_member_not_found", "Membro não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_delete_team_member", "Erro ao remover membro.")
		return
	}

	c.Status(http.StatusNoContent)
}
