package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nadeen-odeh/dept-assistant-api/internal/dto"
	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
	"github.com/nadeen-odeh/dept-assistant-api/internal/service"
	appErrors "github.com/nadeen-odeh/dept-assistant-api/pkg/errors"
	"github.com/nadeen-odeh/dept-assistant-api/pkg/export"
	"github.com/nadeen-odeh/dept-assistant-api/pkg/response"
)

// LabHandler exposes lab timetable endpoints.
type LabHandler struct {
	labs *service.LabService
	csv  *export.CSVExporter
	pdf  *export.PDFExporter
}

// NewLabHandler constructs LabHandler.
func NewLabHandler(labs *service.LabService) *LabHandler {
	return &LabHandler{labs: labs, csv: export.NewCSVExporter(), pdf: export.NewPDFExporter()}
}

// ListYears godoc
// @Summary List lab schedule years
// @Tags Labs
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /labs/years [get]
func (h *LabHandler) ListYears(c *gin.Context) {
	years, err := h.labs.ListYears(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, years)
}

// GetSemester godoc
// @Summary Get one semester's lab timetable
// @Tags Labs
// @Produce json
// @Param yearId path string true "Lab year"
// @Param semester path int true "Semester"
// @Success 200 {object} response.Envelope
// @Router /labs/{yearId}/{semester} [get]
func (h *LabHandler) GetSemester(c *gin.Context) {
	semester, err := semesterParam(c.Param("semester"))
	if err != nil {
		response.Error(c, err)
		return
	}
	doc, err := h.labs.GetSemester(c.Request.Context(), c.Param("yearId"), semester)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc)
}

// Replace godoc
// @Summary Replace one semester's lab timetable
// @Tags Admin
// @Accept json
// @Produce json
// @Param yearId path string true "Lab year"
// @Param semester path int true "Semester"
// @Param request body dto.ReplaceLabSemesterRequest true "Timetable"
// @Success 200 {object} response.Envelope
// @Router /admin/labs/{yearId}/{semester} [put]
func (h *LabHandler) Replace(c *gin.Context) {
	semester, err := semesterParam(c.Param("semester"))
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ReplaceLabSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errMissingParams("courses"))
		return
	}
	doc := models.LabSemesterDoc{Semester: semester, Courses: req.Courses}
	if err := h.labs.Replace(c.Request.Context(), c.Param("yearId"), req.YearLabel, doc); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"ok": true})
}

// Export godoc
// @Summary Export one semester's lab timetable
// @Tags Admin
// @Produce octet-stream
// @Param yearId path string true "Lab year"
// @Param semester path int true "Semester"
// @Param format query string true "csv or pdf"
// @Success 200 {file} binary
// @Router /admin/labs/{yearId}/{semester}/export [get]
func (h *LabHandler) Export(c *gin.Context) {
	semester, err := semesterParam(c.Param("semester"))
	if err != nil {
		response.Error(c, err)
		return
	}
	dataset, title, err := h.labs.ExportDataset(c.Request.Context(), c.Param("yearId"), semester)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("labs-%s-s%d", c.Param("yearId"), semester)
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		payload, err := h.csv.Render(dataset)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", filename))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", payload)
	case "pdf":
		payload, err := h.pdf.Render(dataset, title)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", filename))
		c.Data(http.StatusOK, "application/pdf", payload)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
	}
}
