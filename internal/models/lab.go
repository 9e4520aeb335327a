package models

import "time"

// LabSession is one scheduled practical session.
type LabSession struct {
	Session string   `json:"session"`
	Date    string   `json:"date"`
	Day     string   `json:"day"`
	Time    string   `json:"time"`
	Group   string   `json:"group"`
	Staff   []string `json:"staff"`
}

// LabCourse groups the sessions of one course within a semester document.
type LabCourse struct {
	CourseCode string       `json:"courseCode"`
	CourseName string       `json:"courseName"`
	Labs       []LabSession `json:"labs"`
}

// LabSemesterDoc is the whole course→labs mapping of one semester. Admin
// saves replace it in full.
type LabSemesterDoc struct {
	Semester int                  `json:"semester"`
	Courses  map[string]LabCourse `json:"courses"`
}

// LabYear identifies one academic year of lab schedules.
type LabYear struct {
	ID        string    `db:"id" json:"id"`
	Label     string    `db:"label" json:"label"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// FlatLab is a session joined with its course and semester, the unit the
// chat answers and exports work with.
type FlatLab struct {
	Semester   int
	CourseName string
	LabSession
}
