package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
)

// CourseRepository manages persistence of required courses and their
// relations within a yearbook.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// ListByYearbook returns every required course of the yearbook across all
// semesters, deduplicated by course code.
func (r *CourseRepository) ListByYearbook(ctx context.Context, yearbookID string) ([]models.Course, error) {
	const query = `SELECT DISTINCT course_code, course_name FROM required_courses
        WHERE yearbook_id = $1 ORDER BY course_name`
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, yearbookID); err != nil {
		return nil, fmt.Errorf("list yearbook courses: %w", err)
	}
	return courses, nil
}

// ListBySemester returns the courses of one yearbook semester with their
// relation edges attached.
func (r *CourseRepository) ListBySemester(ctx context.Context, yearbookID, semesterKey string) ([]models.CourseWithRelations, error) {
	const query = `SELECT course_code, course_name FROM required_courses
        WHERE yearbook_id = $1 AND semester_key = $2 ORDER BY course_name`
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, yearbookID, semesterKey); err != nil {
		return nil, fmt.Errorf("list semester courses: %w", err)
	}

	result := make([]models.CourseWithRelations, 0, len(courses))
	for _, c := range courses {
		relations, err := r.listRelations(ctx, yearbookID, semesterKey, c.CourseCode)
		if err != nil {
			return nil, err
		}
		result = append(result, models.CourseWithRelations{Course: c, SemesterKey: semesterKey, Relations: relations})
	}
	return result, nil
}

func (r *CourseRepository) listRelations(ctx context.Context, yearbookID, semesterKey, courseCode string) ([]models.CourseRelation, error) {
	const query = `SELECT related_code, related_name, relation_type FROM course_relations
        WHERE yearbook_id = $1 AND semester_key = $2 AND course_code = $3 ORDER BY related_code`
	var relations []models.CourseRelation
	if err := r.db.SelectContext(ctx, &relations, query, yearbookID, semesterKey, courseCode); err != nil {
		return nil, fmt.Errorf("list course relations: %w", err)
	}
	return relations, nil
}

// GetRelationType returns the relation type from one course to another
// anywhere in the yearbook, or an empty string when no edge exists.
func (r *CourseRepository) GetRelationType(ctx context.Context, yearbookID, courseCode, relatedCode string) (string, error) {
	const query = `SELECT relation_type FROM course_relations
        WHERE yearbook_id = $1 AND course_code = $2 AND related_code = $3 LIMIT 1`
	var relationType string
	if err := r.db.GetContext(ctx, &relationType, query, yearbookID, courseCode, relatedCode); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("get relation type: %w", err)
	}
	return relationType, nil
}

// ListPrerequisites returns the prerequisite edges of a course across every
// semester of the yearbook.
func (r *CourseRepository) ListPrerequisites(ctx context.Context, yearbookID, courseCode string) ([]models.CourseRelation, error) {
	const query = `SELECT DISTINCT related_code, related_name, relation_type FROM course_relations
        WHERE yearbook_id = $1 AND course_code = $2 AND relation_type = $3 ORDER BY related_code`
	var relations []models.CourseRelation
	if err := r.db.SelectContext(ctx, &relations, query, yearbookID, courseCode, models.RelationPrerequisite); err != nil {
		return nil, fmt.Errorf("list prerequisites: %w", err)
	}
	return relations, nil
}

// Upsert writes a required course and replaces its relation set wholesale.
func (r *CourseRepository) Upsert(ctx context.Context, yearbookID, semesterKey string, course models.CourseWithRelations) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin course upsert: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const upsertQuery = `INSERT INTO required_courses (yearbook_id, semester_key, course_code, course_name)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (yearbook_id, semester_key, course_code) DO UPDATE SET course_name = EXCLUDED.course_name`
	if _, err = tx.ExecContext(ctx, upsertQuery, yearbookID, semesterKey, course.CourseCode, course.CourseName); err != nil {
		return fmt.Errorf("upsert course: %w", err)
	}

	const deleteQuery = `DELETE FROM course_relations
        WHERE yearbook_id = $1 AND semester_key = $2 AND course_code = $3`
	if _, err = tx.ExecContext(ctx, deleteQuery, yearbookID, semesterKey, course.CourseCode); err != nil {
		return fmt.Errorf("clear course relations: %w", err)
	}

	const insertQuery = `INSERT INTO course_relations (yearbook_id, semester_key, course_code, related_code, related_name, relation_type)
        VALUES ($1, $2, $3, $4, $5, $6)`
	for _, rel := range course.Relations {
		if _, err = tx.ExecContext(ctx, insertQuery, yearbookID, semesterKey, course.CourseCode, rel.CourseCode, rel.CourseName, rel.Type); err != nil {
			return fmt.Errorf("insert course relation: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit course upsert: %w", err)
	}
	return nil
}

// Delete removes a required course and its relations from a semester.
func (r *CourseRepository) Delete(ctx context.Context, yearbookID, semesterKey, courseCode string) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin course delete: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const deleteRelations = `DELETE FROM course_relations
        WHERE yearbook_id = $1 AND semester_key = $2 AND course_code = $3`
	if _, err = tx.ExecContext(ctx, deleteRelations, yearbookID, semesterKey, courseCode); err != nil {
		return fmt.Errorf("delete course relations: %w", err)
	}

	const deleteCourse = `DELETE FROM required_courses
        WHERE yearbook_id = $1 AND semester_key = $2 AND course_code = $3`
	res, err := tx.ExecContext(ctx, deleteCourse, yearbookID, semesterKey, courseCode)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete course rows affected: %w", err)
	}
	if affected == 0 {
		err = sql.ErrNoRows
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit course delete: %w", err)
	}
	return nil
}
