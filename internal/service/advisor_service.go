package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
	appErrors "github.com/nadeen-odeh/dept-assistant-api/pkg/errors"
)

type advisorRepository interface {
	List(ctx context.Context) ([]models.Advisor, error)
	Upsert(ctx context.Context, advisor *models.Advisor) error
	Delete(ctx context.Context, id string) error
}

// Hebrew alphabet in order, used to resolve last-name letter ranges.
var hebrewLetters = []string{
	"א", "ב", "ג", "ד", "ה", "ו", "ז", "ח", "ט", "י", "כ", "ל",
	"מ", "נ", "ס", "ע", "פ", "צ", "ק", "ר", "ש", "ת",
}

func letterIndex(letter string) int {
	for i, l := range hebrewLetters {
		if l == letter {
			return i
		}
	}
	return -1
}

// SaveAdvisorRequest is the admin payload for writing an advisor.
type SaveAdvisorRequest struct {
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Semesters      []int    `json:"semesters" validate:"required,min=1,dive,min=1,max=8"`
	LastNameRanges []string `json:"lastNameRanges" validate:"required,min=1"`
	Tracks         []string `json:"tracks"`
}

// AdvisorService matches students to academic advisors and serves the
// admin advisor writes.
type AdvisorService struct {
	repo      advisorRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAdvisorService constructs the advisor service.
func NewAdvisorService(repo advisorRepository, validate *validator.Validate, logger *zap.Logger) *AdvisorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdvisorService{repo: repo, validator: validate, logger: logger}
}

// Find returns the advisors responsible for a student, matched on last-name
// letter range and semester. Track narrows the match only from semester 5
// on, where the curriculum splits into tracks.
func (s *AdvisorService) Find(ctx context.Context, lastNameLetter string, semester int, track string) ([]models.Advisor, error) {
	advisors, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list advisors")
	}

	var matched []models.Advisor
	for _, a := range advisors {
		if !containsInt(a.Semesters, semester) {
			continue
		}
		if !matchesLetter(a.LastNameRanges, lastNameLetter) {
			continue
		}
		if semester >= 5 && track != "" && !containsString(a.Tracks, track) {
			continue
		}
		matched = append(matched, a)
	}
	return matched, nil
}

func matchesLetter(ranges []string, letter string) bool {
	idx := letterIndex(letter)
	if idx < 0 {
		return false
	}
	for _, rng := range ranges {
		from, to, ok := splitRange(rng)
		if !ok {
			continue
		}
		if idx >= letterIndex(from) && idx <= letterIndex(to) {
			return true
		}
	}
	return false
}

// splitRange parses "א-י" into its bounds.
func splitRange(rng string) (string, string, bool) {
	for i, r := range rng {
		if r == '-' {
			return rng[:i], rng[i+1:], true
		}
	}
	return "", "", false
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func containsString(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// List returns every advisor.
func (s *AdvisorService) List(ctx context.Context) ([]models.Advisor, error) {
	advisors, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list advisors")
	}
	return advisors, nil
}

// Save validates and writes an advisor document.
func (s *AdvisorService) Save(ctx context.Context, id string, req SaveAdvisorRequest) (*models.Advisor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid advisor payload")
	}
	advisor := &models.Advisor{
		ID:             id,
		Name:           req.Name,
		Email:          req.Email,
		Semesters:      req.Semesters,
		LastNameRanges: req.LastNameRanges,
		Tracks:         req.Tracks,
	}
	if err := s.repo.Upsert(ctx, advisor); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save advisor")
	}
	s.logger.Info("advisor saved", zap.String("advisor_id", advisor.ID))
	return advisor, nil
}

// Delete removes an advisor.
func (s *AdvisorService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "advisor not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete advisor")
	}
	return nil
}
