package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/pdf"
	"taskboard/internal/services"
)

type DashboardHandler struct {
	service services.DashboardService
	export  *pdf.SummaryGenerator
}

func NewDashboardHandler(service services.DashboardService, export *pdf.SummaryGenerator) *DashboardHandler {
	return &DashboardHandler{service: service, export: export}
}

// @Summary      Dashboard aggregation
// @Tags         Dashboard
// @Produce      json
// @Success      200  {object}  models.DashboardSummary
// @Failure      500  {object}  map[string]string
// @Router       /dashboard [get]
func (h *DashboardHandler) Index(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), currentUserID(c))
	if err != nil {
		log.Printf("[dashboard][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build dashboard"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /dashboard/export
func (h *DashboardHandler) Export(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), currentUserID(c))
	if err != nil {
		log.Printf("[dashboard][export][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build dashboard"})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="dashboard.pdf"`)
	if err := h.export.Write(c.Writer, summary); err != nil {
		log.Printf("[dashboard][export][err] pdf: %v", err)
	}
}
