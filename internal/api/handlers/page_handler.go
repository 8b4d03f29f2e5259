package handlers

import (
	"bytes"
	"net/http"

	"github.com/andresuchdata/eoq-calculator/internal/domain"
	"github.com/andresuchdata/eoq-calculator/internal/service"
	"github.com/andresuchdata/eoq-calculator/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	htmlContentType = "text/html; charset=utf-8"
	invalidFormMsg  = "Semua isian wajib diisi dengan angka minimal 1."
)

type PageHandler struct {
	service  *service.EOQService
	renderer *web.Renderer
}

func NewPageHandler(service *service.EOQService, renderer *web.Renderer) *PageHandler {
	return &PageHandler{service: service, renderer: renderer}
}

// Index renders the empty calculator form
func (h *PageHandler) Index(c *gin.Context) {
	h.render(c, http.StatusOK, h.renderer.NewPage(nil))
}

// Submit handles the calculator form post
func (h *PageHandler) Submit(c *gin.Context) {
	// ParseForm is needed so PostForm values survive a failed bind
	if err := c.Request.ParseForm(); err != nil {
		page := h.renderer.NewPage(nil)
		page.Error = invalidFormMsg
		h.render(c, http.StatusBadRequest, page)
		return
	}
	page := h.renderer.NewPage(c.Request.PostForm)

	var req domain.CalculationRequest
	if err := c.ShouldBind(&req); err != nil {
		log.Ctx(c.Request.Context()).Debug().Err(err).Msg("invalid calculator form")
		page.Error = invalidFormMsg
		h.render(c, http.StatusBadRequest, page)
		return
	}

	report, err := h.service.Calculate(c.Request.Context(), req.Inputs())
	if err != nil {
		page.Error = invalidFormMsg
		h.render(c, http.StatusBadRequest, page)
		return
	}

	if err := page.WithReport(report); err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("failed to build result page")
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}

	h.render(c, http.StatusOK, page)
}

func (h *PageHandler) render(c *gin.Context, status int, page *web.PageData) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page); err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("failed to render page")
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}
	c.Data(status, htmlContentType, buf.Bytes())
}
