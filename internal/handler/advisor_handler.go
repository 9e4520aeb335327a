package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nadeen-odeh/dept-assistant-api/internal/service"
	"github.com/nadeen-odeh/dept-assistant-api/pkg/response"
)

// AdvisorHandler exposes advisor finder and admin endpoints.
type AdvisorHandler struct {
	advisors *service.AdvisorService
}

// NewAdvisorHandler constructs AdvisorHandler.
func NewAdvisorHandler(advisors *service.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{advisors: advisors}
}

// Find godoc
// @Summary Find the advisors responsible for a student
// @Tags Advisors
// @Produce json
// @Param lastNameLetter query string true "First letter of the last name"
// @Param semester query int true "Semester"
// @Param track query string false "Track, relevant from semester 5"
// @Success 200 {object} response.Envelope
// @Router /advisors/find [get]
func (h *AdvisorHandler) Find(c *gin.Context) {
	letter := strings.TrimSpace(c.Query("lastNameLetter"))
	semester, _ := strconv.Atoi(c.DefaultQuery("semester", "0"))
	if letter == "" || semester == 0 {
		response.Error(c, errMissingParams("lastNameLetter", "semester"))
		return
	}

	advisors, err := h.advisors.Find(c.Request.Context(), letter, semester, c.Query("track"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"found": len(advisors) > 0, "advisors": advisors})
}

// List godoc
// @Summary List all advisors
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/advisors [get]
func (h *AdvisorHandler) List(c *gin.Context) {
	advisors, err := h.advisors.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, advisors)
}

// Save godoc
// @Summary Create or update an advisor
// @Tags Admin
// @Accept json
// @Produce json
// @Param advisorId path string false "Advisor ID, empty to create"
// @Param request body service.SaveAdvisorRequest true "Advisor"
// @Success 200 {object} response.Envelope
// @Router /admin/advisors/{advisorId} [post]
func (h *AdvisorHandler) Save(c *gin.Context) {
	var req service.SaveAdvisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errMissingParams("name", "email"))
		return
	}
	advisor, err := h.advisors.Save(c.Request.Context(), c.Param("advisorId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, advisor)
}

// Delete godoc
// @Summary Delete an advisor
// @Tags Admin
// @Produce json
// @Param advisorId path string true "Advisor ID"
// @Success 204 {object} nil
// @Router /admin/advisors/{advisorId} [delete]
func (h *AdvisorHandler) Delete(c *gin.Context) {
	if err := h.advisors.Delete(c.Request.Context(), c.Param("advisorId")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
