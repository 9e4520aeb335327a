package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nadeen-odeh/dept-assistant-api/internal/service"
	"github.com/nadeen-odeh/dept-assistant-api/pkg/response"
)

// RegistrationHandler exposes the admin registration guideline endpoints.
type RegistrationHandler struct {
	registration *service.RegistrationService
}

// NewRegistrationHandler constructs RegistrationHandler.
func NewRegistrationHandler(registration *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registration: registration}
}

// Get godoc
// @Summary Get one semester's registration guideline document
// @Tags Admin
// @Produce json
// @Param semester path int true "Semester"
// @Success 200 {object} response.Envelope
// @Router /admin/registration-guidelines/{semester} [get]
func (h *RegistrationHandler) Get(c *gin.Context) {
	semester, err := semesterParam(c.Param("semester"))
	if err != nil {
		response.Error(c, err)
		return
	}
	doc, err := h.registration.Get(c.Request.Context(), semester)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc)
}

// Save godoc
// @Summary Merge-save one semester's registration guideline document
// @Tags Admin
// @Accept json
// @Produce json
// @Param semester path int true "Semester"
// @Param request body object true "Partial document"
// @Success 200 {object} response.Envelope
// @Router /admin/registration-guidelines/{semester} [put]
func (h *RegistrationHandler) Save(c *gin.Context) {
	semester, err := semesterParam(c.Param("semester"))
	if err != nil {
		response.Error(c, err)
		return
	}
	patch := map[string]interface{}{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, errMissingParams("body"))
		return
	}
	if err := h.registration.Save(c.Request.Context(), semester, patch); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"ok": true})
}
