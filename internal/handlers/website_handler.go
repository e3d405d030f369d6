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

type WebsiteHandler struct {
	store store.Store
}

func NewWebsiteHandler(st store.Store) *WebsiteHandler {
	return &WebsiteHandler{store: st}
}

type WebsiteUpdateRequest struct {
	Template     string `json:"template"`
	PrimaryColor string `json:"primary_color"`
	LogoURL      string `json:"logo_url"`
	HeroTitle    string `json:"hero_title"`
	HeroSubtitle string `json:"hero_subtitle"`
	ShowPrices   bool   `json:"show_prices"`
	Published    bool   `json:"published"`
	CustomDomain string `json:"custom_domain"`
}

func (h *WebsiteHandler) Get(c *gin.Context) {
	wc, err := h.store.GetWebsiteConfig(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Sem config salva ainda: devolvemos o default em vez de 404,
			// o dashboard edita a partir dele.
			httpresp.OK(c, models.WebsiteConfig{
				BusinessID: c.Param("id"),
				Template:   "classic",
				ShowPrices: true,
			})
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	httpresp.OK(c, wc)
}

func (h *WebsiteHandler) Put(c *gin.Context) {
	var req WebsiteUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	wc := models.WebsiteConfig{
		BusinessID:   c.Param("id"),
		Template:     req.Template,
		PrimaryColor: req.PrimaryColor,
		LogoURL:      req.LogoURL,
		HeroTitle:    req.HeroTitle,
		HeroSubtitle: req.HeroSubtitle,
		ShowPrices:   req.ShowPrices,
		Published:    req.Published,
		CustomDomain: req.CustomDomain,
	}

	if err := h.store.UpsertWebsiteConfig(c.Request.Context(), &wc); err != nil {
		httperr.Internal(c, "failed_to_save_website", "Erro ao salvar site.")
		return
	}

	c.JSON(http.StatusOK, wc)
}
