package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
	"github.com/nadeen-odeh/dept-assistant-api/internal/nlp"
	appErrors "github.com/nadeen-odeh/dept-assistant-api/pkg/errors"
	"github.com/nadeen-odeh/dept-assistant-api/pkg/ttlcache"
)

type courseRepository interface {
	ListByYearbook(ctx context.Context, yearbookID string) ([]models.Course, error)
	ListBySemester(ctx context.Context, yearbookID, semesterKey string) ([]models.CourseWithRelations, error)
	GetRelationType(ctx context.Context, yearbookID, courseCode, relatedCode string) (string, error)
	ListPrerequisites(ctx context.Context, yearbookID, courseCode string) ([]models.CourseRelation, error)
	Upsert(ctx context.Context, yearbookID, semesterKey string, course models.CourseWithRelations) error
	Delete(ctx context.Context, yearbookID, semesterKey, courseCode string) error
}

type yearbookRepository interface {
	List(ctx context.Context) ([]models.Yearbook, error)
}

// SaveCourseRequest is the admin payload for writing a required course.
type SaveCourseRequest struct {
	CourseName string `json:"courseName" validate:"required"`
	Relations  []struct {
		CourseCode string `json:"courseCode" validate:"required"`
		CourseName string `json:"courseName" validate:"required"`
		Type       string `json:"type" validate:"required,oneof=PREREQUISITE COREQUISITE"`
	} `json:"relations" validate:"dive"`
}

// CourseService serves the required-course catalogue: the cached per-yearbook
// course list the chat pipeline matches against, autocomplete suggestions,
// and the admin writes.
//
// The course list cache is deliberately never invalidated by admin writes;
// staleness is bounded by the TTL alone.
type CourseService struct {
	repo         courseRepository
	yearbooks    yearbookRepository
	courseCache  *ttlcache.Cache[[]models.Course]
	courseTTL    time.Duration
	suggestLimit int
	validator    *validator.Validate
	logger       *zap.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo courseRepository, yearbooks yearbookRepository, cache *ttlcache.Cache[[]models.Course], courseTTL time.Duration, suggestLimit int, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if cache == nil {
		cache = ttlcache.New[[]models.Course]()
	}
	if courseTTL <= 0 {
		courseTTL = 5 * time.Minute
	}
	if suggestLimit <= 0 {
		suggestLimit = 8
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{
		repo:         repo,
		yearbooks:    yearbooks,
		courseCache:  cache,
		courseTTL:    courseTTL,
		suggestLimit: suggestLimit,
		validator:    validate,
		logger:       logger,
	}
}

// CoursesFor returns the full course list of a yearbook, cached per
// yearbook for the configured TTL.
func (s *CourseService) CoursesFor(ctx context.Context, yearbookID string) ([]models.Course, error) {
	if courses, ok := s.courseCache.Get(yearbookID); ok {
		return courses, nil
	}
	courses, err := s.repo.ListByYearbook(ctx, yearbookID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
	}
	s.courseCache.Set(yearbookID, courses, s.courseTTL)
	return courses, nil
}

// Suggest returns scored autocomplete candidates for a partial query.
func (s *CourseService) Suggest(ctx context.Context, yearbookID, query string) ([]models.Suggestion, error) {
	courses, err := s.CoursesFor(ctx, yearbookID)
	if err != nil {
		return nil, err
	}
	return nlp.Suggest(query, courses, s.suggestLimit), nil
}

// RelationType returns the relation from one course to another within the
// yearbook, or an empty string when no edge exists.
func (s *CourseService) RelationType(ctx context.Context, yearbookID, courseCode, relatedCode string) (string, error) {
	relType, err := s.repo.GetRelationType(ctx, yearbookID, courseCode, relatedCode)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load relation")
	}
	return relType, nil
}

// Prerequisites returns the prerequisite edges of a course.
func (s *CourseService) Prerequisites(ctx context.Context, yearbookID, courseCode string) ([]models.CourseRelation, error) {
	relations, err := s.repo.ListPrerequisites(ctx, yearbookID, courseCode)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load prerequisites")
	}
	return relations, nil
}

// ListYearbooks returns all known yearbooks.
func (s *CourseService) ListYearbooks(ctx context.Context) ([]models.Yearbook, error) {
	yearbooks, err := s.yearbooks.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list yearbooks")
	}
	return yearbooks, nil
}

// ListBySemester returns one semester's courses with relations.
func (s *CourseService) ListBySemester(ctx context.Context, yearbookID, semesterKey string) ([]models.CourseWithRelations, error) {
	courses, err := s.repo.ListBySemester(ctx, yearbookID, semesterKey)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list semester courses")
	}
	return courses, nil
}

// Save validates and writes a required course, replacing its relation set.
func (s *CourseService) Save(ctx context.Context, yearbookID, semesterKey, courseCode string, req SaveCourseRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	course := models.CourseWithRelations{
		Course:      models.Course{CourseCode: courseCode, CourseName: req.CourseName},
		SemesterKey: semesterKey,
	}
	for _, rel := range req.Relations {
		course.Relations = append(course.Relations, models.CourseRelation{
			CourseCode: rel.CourseCode,
			CourseName: rel.CourseName,
			Type:       rel.Type,
		})
	}
	if err := s.repo.Upsert(ctx, yearbookID, semesterKey, course); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save course")
	}
	s.logger.Info("course saved",
		zap.String("yearbook_id", yearbookID),
		zap.String("semester_key", semesterKey),
		zap.String("course_code", courseCode))
	return nil
}

// Delete removes a required course from a semester.
func (s *CourseService) Delete(ctx context.Context, yearbookID, semesterKey, courseCode string) error {
	if err := s.repo.Delete(ctx, yearbookID, semesterKey, courseCode); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete course")
	}
	return nil
}
