package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nadeen-odeh/dept-assistant-api/internal/service"
	"github.com/nadeen-odeh/dept-assistant-api/pkg/response"
)

// CourseHandler exposes yearbook and required-course endpoints.
type CourseHandler struct {
	courses *service.CourseService
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// ListYearbooks godoc
// @Summary List curriculum yearbooks
// @Tags Courses
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /yearbooks [get]
func (h *CourseHandler) ListYearbooks(c *gin.Context) {
	yearbooks, err := h.courses.ListYearbooks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, yearbooks)
}

// ListBySemester godoc
// @Summary List required courses of a yearbook semester
// @Tags Courses
// @Produce json
// @Param yearbookId path string true "Yearbook"
// @Param semesterKey path string true "Semester key"
// @Success 200 {object} response.Envelope
// @Router /yearbooks/{yearbookId}/courses/{semesterKey} [get]
func (h *CourseHandler) ListBySemester(c *gin.Context) {
	courses, err := h.courses.ListBySemester(c.Request.Context(), c.Param("yearbookId"), c.Param("semesterKey"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// Save godoc
// @Summary Create or update a required course
// @Tags Admin
// @Accept json
// @Produce json
// @Param yearbookId path string true "Yearbook"
// @Param semesterKey path string true "Semester key"
// @Param courseCode path string true "Course code"
// @Param request body service.SaveCourseRequest true "Course"
// @Success 200 {object} response.Envelope
// @Router /admin/yearbooks/{yearbookId}/courses/{semesterKey}/{courseCode} [put]
func (h *CourseHandler) Save(c *gin.Context) {
	var req service.SaveCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errMissingParams("courseName"))
		return
	}
	if err := h.courses.Save(c.Request.Context(), c.Param("yearbookId"), c.Param("semesterKey"), c.Param("courseCode"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"ok": true})
}

// Delete godoc
// @Summary Delete a required course
// @Tags Admin
// @Produce json
// @Param yearbookId path string true "Yearbook"
// @Param semesterKey path string true "Semester key"
// @Param courseCode path string true "Course code"
// @Success 204 {object} nil
// @Router /admin/yearbooks/{yearbookId}/courses/{semesterKey}/{courseCode} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.courses.Delete(c.Request.Context(), c.Param("yearbookId"), c.Param("semesterKey"), c.Param("courseCode")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
