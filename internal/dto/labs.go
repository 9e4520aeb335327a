package dto

import "github.com/nadeen-odeh/dept-assistant-api/internal/models"

// ReplaceLabSemesterRequest is the admin payload replacing one semester's
// timetable document in full.
type ReplaceLabSemesterRequest struct {
	YearLabel string                      `json:"yearLabel"`
	Semester  int                         `json:"semester" validate:"required,min=1,max=8"`
	Courses   map[string]models.LabCourse `json:"courses" validate:"required"`
}
