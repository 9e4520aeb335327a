package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nadeen-odeh/dept-assistant-api/internal/answer"
	"github.com/nadeen-odeh/dept-assistant-api/internal/llm"
	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
	"github.com/nadeen-odeh/dept-assistant-api/internal/nlp"
)

type courseSource interface {
	CoursesFor(ctx context.Context, yearbookID string) ([]models.Course, error)
	RelationType(ctx context.Context, yearbookID, courseCode, relatedCode string) (string, error)
	Prerequisites(ctx context.Context, yearbookID, courseCode string) ([]models.CourseRelation, error)
}

type questionAnswerer interface {
	Ask(ctx context.Context, question string) (string, error)
}

// askRoute pairs a cheap rule predicate with the branch that answers it.
// Routes are tried in order; the first match wins.
type askRoute struct {
	name   string
	match  func(question string) bool
	handle func(ctx context.Context, yearbookID, question string) (string, error)
}

// ChatService routes free-text questions: rule pre-filters pick the cheap
// branches, everything else goes through the course pipeline with its
// LLM classification fan-out.
type ChatService struct {
	courses      courseSource
	labs         questionAnswerer
	registration questionAnswerer
	classifier   llm.Classifier
	metrics      *MetricsService
	logger       *zap.Logger
	routes       []askRoute
}

// NewChatService constructs the chat service and its route table.
func NewChatService(courses courseSource, labs questionAnswerer, registration questionAnswerer, classifier llm.Classifier, metrics *MetricsService, logger *zap.Logger) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &ChatService{
		courses:      courses,
		labs:         labs,
		registration: registration,
		classifier:   classifier,
		metrics:      metrics,
		logger:       logger,
	}
	s.routes = []askRoute{
		{
			name:  "greeting",
			match: nlp.IsGreeting,
			handle: func(ctx context.Context, yearbookID, question string) (string, error) {
				return answer.Greeting(), nil
			},
		},
		{
			name:  "labs",
			match: nlp.IsLabQuestion,
			handle: func(ctx context.Context, yearbookID, question string) (string, error) {
				return s.labs.Ask(ctx, question)
			},
		},
		{
			// Prerequisite phrasing and course lookups mention registration
			// vocabulary all the time, so they veto this branch.
			name: "registration",
			match: func(question string) bool {
				return nlp.IsRegistrationQuestion(question) &&
					!nlp.IsAcademicCourseQuestion(question) &&
					!nlp.IsCourseLookupQuestion(question)
			},
			handle: func(ctx context.Context, yearbookID, question string) (string, error) {
				return s.registration.Ask(ctx, question)
			},
		},
	}
	return s
}

// Ask answers one free-text question with an HTML fragment scoped to the
// given yearbook.
func (s *ChatService) Ask(ctx context.Context, yearbookID, question string) (string, error) {
	for _, route := range s.routes {
		if route.match(question) {
			s.metrics.RecordAskBranch(route.name)
			return route.handle(ctx, yearbookID, question)
		}
	}
	s.metrics.RecordAskBranch("courses")
	return s.askCourses(ctx, yearbookID, question)
}

func (s *ChatService) askCourses(ctx context.Context, yearbookID, question string) (string, error) {
	courses, err := s.courses.CoursesFor(ctx, yearbookID)
	if err != nil {
		return "", err
	}
	index := nlp.NewCourseIndex(courses)

	emotion, classification := s.classifyInParallel(ctx, question)

	// The classifier's extraction is a hint; the question itself is the
	// fallback input for the first course slot.
	rawA, rawB := question, ""
	if classification != nil {
		if classification.CourseA != "" {
			rawA = classification.CourseA
		}
		rawB = classification.CourseB
	}
	courseA := index.Match(rawA)
	courseB := index.Match(rawB)

	// Distress answer only when no course resolved, so academic questions
	// with loaded phrasing still get their academic answer.
	if emotion != nil && emotion.Intent == nlp.EmotionSupport && courseA == nil {
		return answer.EmotionalSupport(), nil
	}

	kind := ""
	if classification != nil {
		kind = classification.Kind
	}

	if (kind == nlp.KindLookup || (courseA != nil && courseB == nil)) && courseA != nil {
		return answer.Lookup(*courseA), nil
	}

	if kind == nlp.KindRelation || (courseA != nil && courseB != nil) {
		if courseA == nil || courseB == nil {
			return answer.CouldNotIdentifyCourses(), nil
		}
		intent := nlp.DetectRelationIntent(question)
		relType, err := s.courses.RelationType(ctx, yearbookID, courseA.CourseCode, courseB.CourseCode)
		if err != nil {
			return "", err
		}
		prereqs, err := s.courses.Prerequisites(ctx, yearbookID, courseA.CourseCode)
		if err != nil {
			return "", err
		}
		names := make([]string, 0, len(prereqs))
		for _, p := range prereqs {
			names = append(names, p.CourseName)
		}
		return answer.Relation(intent, relType, *courseA, *courseB, names), nil
	}

	return answer.Default(), nil
}

// classifyInParallel runs the emotion and course classifications
// concurrently. Either may come back nil; the pipeline degrades to rule
// answers when it does.
func (s *ChatService) classifyInParallel(ctx context.Context, question string) (*nlp.EmotionClassification, *nlp.CourseClassification) {
	emotionCh := make(chan *nlp.EmotionClassification, 1)
	courseCh := make(chan *nlp.CourseClassification, 1)

	go func() {
		start := time.Now()
		emotion, err := s.classifier.ClassifyEmotion(ctx, question)
		s.metrics.ObserveClassifierCall("emotion", err == nil && emotion != nil, time.Since(start))
		if err != nil {
			s.logger.Warn("emotion classification failed", zap.Error(err))
		}
		emotionCh <- emotion
	}()
	go func() {
		start := time.Now()
		classification, err := s.classifier.ClassifyCourse(ctx, question)
		s.metrics.ObserveClassifierCall("course", err == nil && classification != nil, time.Since(start))
		if err != nil {
			s.logger.Warn("course classification failed", zap.Error(err))
		}
		courseCh <- classification
	}()

	return <-emotionCh, <-courseCh
}
