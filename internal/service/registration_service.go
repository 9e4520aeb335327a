package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nadeen-odeh/dept-assistant-api/internal/answer"
	"github.com/nadeen-odeh/dept-assistant-api/internal/llm"
	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
	"github.com/nadeen-odeh/dept-assistant-api/internal/nlp"
	appErrors "github.com/nadeen-odeh/dept-assistant-api/pkg/errors"
)

type registrationRepository interface {
	Get(ctx context.Context, semester int) (*models.RegistrationGuideline, error)
	GetAll(ctx context.Context) ([]models.RegistrationGuideline, error)
	Save(ctx context.Context, semester int, patch map[string]interface{}) error
}

// RegistrationService answers registration guideline questions and serves
// the admin document reads and merge-saves.
type RegistrationService struct {
	repo       registrationRepository
	classifier llm.Classifier
	metrics    *MetricsService
	logger     *zap.Logger
}

// NewRegistrationService constructs the registration service.
func NewRegistrationService(repo registrationRepository, classifier llm.Classifier, metrics *MetricsService, logger *zap.Logger) *RegistrationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistrationService{repo: repo, classifier: classifier, metrics: metrics, logger: logger}
}

// Ask answers a registration question. A semester mentioned in the question
// scopes the answer to that semester's document; otherwise every semester
// document contributes to an aggregated answer.
func (s *RegistrationService) Ask(ctx context.Context, question string) (string, error) {
	start := time.Now()
	classification, err := s.classifier.ClassifyRegistration(ctx, question)
	if s.metrics != nil {
		s.metrics.ObserveClassifierCall("registration", err == nil && classification != nil, time.Since(start))
	}
	if err != nil {
		s.logger.Warn("registration classification failed", zap.Error(err))
	}

	intent := ""
	if classification != nil {
		intent = classification.Intent
	}
	intent = nlp.RefineRegistrationIntent(intent, question)

	if semester := nlp.ExtractSemesterNumber(question); semester > 0 {
		doc, err := s.repo.Get(ctx, semester)
		if err != nil {
			return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load guideline doc")
		}
		return answer.Registration(intent, *doc), nil
	}

	docs, err := s.repo.GetAll(ctx)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load guideline docs")
	}
	return answer.RegistrationAll(intent, docs), nil
}

// Get returns one semester's guideline document.
func (s *RegistrationService) Get(ctx context.Context, semester int) (*models.RegistrationGuideline, error) {
	doc, err := s.repo.Get(ctx, semester)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load guideline doc")
	}
	return doc, nil
}

// Save merges the patch into the stored semester document.
func (s *RegistrationService) Save(ctx context.Context, semester int, patch map[string]interface{}) error {
	if err := s.repo.Save(ctx, semester, patch); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save guideline doc")
	}
	s.logger.Info("registration guideline saved", zap.Int("semester", semester))
	return nil
}
