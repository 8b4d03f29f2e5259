// internal/api/handlers/eoq_handler.go
package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/andresuchdata/eoq-calculator/internal/chart"
	"github.com/andresuchdata/eoq-calculator/internal/domain"
	"github.com/andresuchdata/eoq-calculator/internal/export"
	"github.com/andresuchdata/eoq-calculator/internal/inventory"
	"github.com/andresuchdata/eoq-calculator/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	svgContentType  = "image/svg+xml"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFilename  = "laporan-eoq.xlsx"
)

type EOQHandler struct {
	service *service.EOQService
}

func NewEOQHandler(service *service.EOQService) *EOQHandler {
	return &EOQHandler{service: service}
}

// Calculate handles a JSON calculation request
func (h *EOQHandler) Calculate(c *gin.Context) {
	var req domain.CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	report, ok := h.calculate(c, req)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetChart renders the stock chart for query parameter inputs as SVG
func (h *EOQHandler) GetChart(c *gin.Context) {
	var req domain.CalculationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	report, ok := h.calculate(c, req)
	if !ok {
		return
	}

	svg, err := chart.RenderSeries(report.Chart.Series())
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("failed to render chart")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render chart", "details": err.Error()})
		return
	}

	c.Data(http.StatusOK, svgContentType, svg)
}

// ExportXLSX returns the calculation report as a spreadsheet download
func (h *EOQHandler) ExportXLSX(c *gin.Context) {
	var req domain.CalculationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	report, ok := h.calculate(c, req)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteReport(&buf, report); err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("failed to export report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export report", "details": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *EOQHandler) calculate(c *gin.Context, req domain.CalculationRequest) (*domain.CalculationReport, bool) {
	report, err := h.service.Calculate(c.Request.Context(), req.Inputs())
	if err == nil {
		return report, true
	}

	status := http.StatusInternalServerError
	if errors.Is(err, inventory.ErrInvalidInput) {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": "failed to calculate", "details": err.Error()})
	return nil, false
}
