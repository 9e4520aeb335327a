package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nadeen-odeh/dept-assistant-api/internal/answer"
	"github.com/nadeen-odeh/dept-assistant-api/internal/llm"
	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
	"github.com/nadeen-odeh/dept-assistant-api/internal/nlp"
	appErrors "github.com/nadeen-odeh/dept-assistant-api/pkg/errors"
	"github.com/nadeen-odeh/dept-assistant-api/pkg/export"
)

type labRepository interface {
	ListYears(ctx context.Context) ([]models.LabYear, error)
	LatestYear(ctx context.Context) (*models.LabYear, error)
	GetSemester(ctx context.Context, yearID string, semester int) (*models.LabSemesterDoc, error)
	ListSemesters(ctx context.Context, yearID string) ([]models.LabSemesterDoc, error)
	ReplaceSemester(ctx context.Context, yearID, yearLabel string, doc models.LabSemesterDoc) error
}

// LabService answers lab timetable questions and serves the timetable
// reads, admin replaces and exports.
type LabService struct {
	repo       labRepository
	classifier llm.Classifier
	cache      *CacheService
	metrics    *MetricsService
	logger     *zap.Logger
	now        func() time.Time
}

// NewLabService constructs the lab service.
func NewLabService(repo labRepository, classifier llm.Classifier, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *LabService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LabService{
		repo:       repo,
		classifier: classifier,
		cache:      cache,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// Ask answers a free-text lab question with an HTML fragment. Failures the
// user can act on come back as answers, not errors.
func (s *LabService) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return answer.MissingQuestion(), nil
	}

	year, err := s.repo.LatestYear(ctx)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load lab year")
	}
	if year == nil {
		return answer.NoActiveLabYear(), nil
	}

	docs, err := s.repo.ListSemesters(ctx, year.ID)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load lab semesters")
	}
	if len(docs) == 0 {
		return answer.NoLabSemesters(), nil
	}

	parsed := nlp.PreClassifyLabQuestion(question, courseNames(docs))
	if parsed == nil {
		start := s.now()
		parsed, err = s.classifier.ClassifyLab(ctx, question)
		if s.metrics != nil {
			s.metrics.ObserveClassifierCall("lab", err == nil && parsed != nil, time.Since(start))
		}
		if err != nil {
			s.logger.Warn("lab classification failed", zap.Error(err))
		}
	}
	if parsed == nil || (parsed.Intent != nlp.LabIntentQuery && parsed.Intent != nlp.LabIntentNext) {
		return answer.LabNotUnderstood(), nil
	}

	labs := flattenLabs(docs, parsed.Course)
	labs = filterLabs(labs, parsed, s.now())

	if parsed.Intent == nlp.LabIntentNext {
		next, ok := nextLab(labs, s.now())
		if !ok {
			return answer.NoUpcomingLab(), nil
		}
		return answer.NextLab(next), nil
	}

	if len(labs) == 0 {
		return answer.NoMatchingLabs(), nil
	}
	sortLabsByTime(labs)
	return answer.LabsGrouped(labs), nil
}

func courseNames(docs []models.LabSemesterDoc) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, doc := range docs {
		for _, course := range doc.Courses {
			if _, ok := seen[course.CourseName]; ok {
				continue
			}
			seen[course.CourseName] = struct{}{}
			names = append(names, course.CourseName)
		}
	}
	return names
}

// flattenLabs turns semester documents into one flat session list,
// optionally keeping only courses whose normalized name contains the key.
func flattenLabs(docs []models.LabSemesterDoc, courseFilter string) []models.FlatLab {
	key := nlp.Normalize(courseFilter)
	var labs []models.FlatLab
	for _, doc := range docs {
		for _, course := range doc.Courses {
			if key != "" && !strings.Contains(nlp.Normalize(course.CourseName), key) {
				continue
			}
			for _, session := range course.Labs {
				labs = append(labs, models.FlatLab{
					Semester:   doc.Semester,
					CourseName: course.CourseName,
					LabSession: session,
				})
			}
		}
	}
	return labs
}

func filterLabs(labs []models.FlatLab, parsed *nlp.LabClassification, now time.Time) []models.FlatLab {
	out := labs[:0]
	for _, l := range labs {
		if parsed.Session != "" && l.Session != parsed.Session {
			continue
		}
		switch parsed.Time {
		case nlp.LabTimeToday:
			if !nlp.IsLabToday(l.Date, now) {
				continue
			}
		case nlp.LabTimeTomorrow:
			if !nlp.IsLabTomorrow(l.Date, now) {
				continue
			}
		case nlp.LabTimeWeek:
			if !nlp.IsLabThisWeek(l.Date, now) {
				continue
			}
		}
		out = append(out, l)
	}
	return out
}

func nextLab(labs []models.FlatLab, now time.Time) (models.FlatLab, bool) {
	var best models.FlatLab
	var bestAt time.Time
	found := false
	for _, l := range labs {
		at, ok := nlp.LabDateTime(l.Date, l.Time)
		if !ok || at.Before(now) {
			continue
		}
		if !found || at.Before(bestAt) {
			best, bestAt, found = l, at, true
		}
	}
	return best, found
}

// sortLabsByTime orders sessions chronologically; undated sessions sink to
// the end. The sort is stable so document order breaks ties.
func sortLabsByTime(labs []models.FlatLab) {
	sort.SliceStable(labs, func(i, j int) bool {
		ti, iOK := nlp.LabDateTime(labs[i].Date, labs[i].Time)
		tj, jOK := nlp.LabDateTime(labs[j].Date, labs[j].Time)
		if !iOK {
			return false
		}
		if !jOK {
			return true
		}
		return ti.Before(tj)
	})
}

// ListYears returns all lab years, newest first.
func (s *LabService) ListYears(ctx context.Context) ([]models.LabYear, error) {
	years, err := s.repo.ListYears(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list lab years")
	}
	return years, nil
}

// GetSemester returns one semester's timetable document, cached when a
// response cache is configured.
func (s *LabService) GetSemester(ctx context.Context, yearID string, semester int) (*models.LabSemesterDoc, error) {
	cacheKey := fmt.Sprintf("labs:%s:%d", yearID, semester)
	var cached models.LabSemesterDoc
	if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
		return &cached, nil
	}

	doc, err := s.repo.GetSemester(ctx, yearID, semester)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load lab semester")
	}
	if doc == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "lab semester not found")
	}
	_ = s.cache.Set(ctx, cacheKey, doc, 0)
	return doc, nil
}

// Replace stores a whole semester document and drops any cached reads.
func (s *LabService) Replace(ctx context.Context, yearID, yearLabel string, doc models.LabSemesterDoc) error {
	if err := s.repo.ReplaceSemester(ctx, yearID, yearLabel, doc); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to replace lab semester")
	}
	_ = s.cache.Invalidate(ctx, fmt.Sprintf("labs:%s:*", yearID))
	s.logger.Info("lab semester replaced",
		zap.String("year_id", yearID),
		zap.Int("semester", doc.Semester),
		zap.Int("courses", len(doc.Courses)))
	return nil
}

// ExportDataset flattens one semester's timetable into the tabular shape
// the CSV and PDF exporters consume, plus a title for the PDF variant.
func (s *LabService) ExportDataset(ctx context.Context, yearID string, semester int) (export.Dataset, string, error) {
	doc, err := s.GetSemester(ctx, yearID, semester)
	if err != nil {
		return export.Dataset{}, "", err
	}

	labs := flattenLabs([]models.LabSemesterDoc{*doc}, "")
	sortLabsByTime(labs)

	title := fmt.Sprintf("Lab timetable %s semester %d", yearID, semester)
	ds := export.Dataset{
		Headers: []string{"course", "session", "day", "date", "time", "group", "staff"},
	}
	for _, l := range labs {
		ds.Rows = append(ds.Rows, map[string]string{
			"course":  l.CourseName,
			"session": l.Session,
			"day":     l.Day,
			"date":    l.Date,
			"time":    l.Time,
			"group":   l.Group,
			"staff":   strings.Join(l.Staff, ", "),
		})
	}
	return ds, title, nil
}
