package models

// Relation types between two required courses.
const (
	RelationPrerequisite = "PREREQUISITE"
	RelationCorequisite  = "COREQUISITE"
)

// Course is a required course inside a yearbook semester.
type Course struct {
	CourseCode string `db:"course_code" json:"courseCode"`
	CourseName string `db:"course_name" json:"courseName"`
}

// CourseRelation is a directed edge from the owning course to a counterpart
// course, keyed by the counterpart code.
type CourseRelation struct {
	CourseCode string `db:"related_code" json:"courseCode"`
	CourseName string `db:"related_name" json:"courseName"`
	Type       string `db:"relation_type" json:"type"`
}

// CourseWithRelations is the admin/read shape of a required course.
type CourseWithRelations struct {
	Course
	SemesterKey string           `json:"semesterKey,omitempty"`
	Relations   []CourseRelation `json:"relations"`
}

// Suggestion is a scored autocomplete candidate.
type Suggestion struct {
	CourseCode string `json:"courseCode"`
	CourseName string `json:"courseName"`
	Score      int    `json:"score"`
}
