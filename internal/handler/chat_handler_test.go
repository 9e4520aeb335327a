package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadeen-odeh/dept-assistant-api/internal/dto"
	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
	"github.com/nadeen-odeh/dept-assistant-api/internal/service"
)

type courseSourceStub struct {
	courses []models.Course
	err     error
}

func (s *courseSourceStub) CoursesFor(ctx context.Context, yearbookID string) ([]models.Course, error) {
	return s.courses, s.err
}

func (s *courseSourceStub) RelationType(ctx context.Context, yearbookID, courseCode, relatedCode string) (string, error) {
	return "", nil
}

func (s *courseSourceStub) Prerequisites(ctx context.Context, yearbookID, courseCode string) ([]models.CourseRelation, error) {
	return nil, nil
}

type answererStub struct {
	html string
}

func (s *answererStub) Ask(ctx context.Context, question string) (string, error) {
	return s.html, nil
}

type courseRepoStub struct {
	courses   []models.Course
	upserted  *models.CourseWithRelations
	deleteErr error
}

func (s *courseRepoStub) ListByYearbook(ctx context.Context, yearbookID string) ([]models.Course, error) {
	return s.courses, nil
}

func (s *courseRepoStub) ListBySemester(ctx context.Context, yearbookID, semesterKey string) ([]models.CourseWithRelations, error) {
	return nil, nil
}

func (s *courseRepoStub) GetRelationType(ctx context.Context, yearbookID, courseCode, relatedCode string) (string, error) {
	return "", nil
}

func (s *courseRepoStub) ListPrerequisites(ctx context.Context, yearbookID, courseCode string) ([]models.CourseRelation, error) {
	return nil, nil
}

func (s *courseRepoStub) Upsert(ctx context.Context, yearbookID, semesterKey string, course models.CourseWithRelations) error {
	s.upserted = &course
	return nil
}

func (s *courseRepoStub) Delete(ctx context.Context, yearbookID, semesterKey, courseCode string) error {
	return s.deleteErr
}

type yearbookRepoStub struct{}

func (s *yearbookRepoStub) List(ctx context.Context) ([]models.Yearbook, error) {
	return nil, nil
}

func newChatHandlerForTest(courses *courseSourceStub) *ChatHandler {
	chat := service.NewChatService(courses, &answererStub{html: "labs"}, &answererStub{html: "registration"}, nil, nil, nil)
	return NewChatHandler(chat, nil, nil, nil)
}

func postAsk(t *testing.T, h *ChatHandler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req, _ := http.NewRequest(http.MethodPost, "/ask", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	h.Ask(c)
	return w
}

func TestChatHandlerAskMissingFields(t *testing.T) {
	h := newChatHandlerForTest(&courseSourceStub{})

	w := postAsk(t, h, dto.AskRequest{YearbookID: "tp25"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.AskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.HTML)
}

func TestChatHandlerAskGreeting(t *testing.T) {
	h := newChatHandlerForTest(&courseSourceStub{})

	w := postAsk(t, h, dto.AskRequest{YearbookID: "tp25", Question: "שלום"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.AskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.HTML, "היי")
}

func TestChatHandlerAskStoreFailure(t *testing.T) {
	h := newChatHandlerForTest(&courseSourceStub{err: errors.New("connection refused")})

	w := postAsk(t, h, dto.AskRequest{YearbookID: "tp25", Question: "מה הקורסים בסמסטר 3?"})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp dto.AskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.HTML)
}

func TestChatHandlerSuggestMissingParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewChatHandler(nil, nil, nil, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/courses/suggest?yearbookId=tp25", nil)

	h.Suggest(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHandlerSuggest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &courseRepoStub{courses: []models.Course{
		{CourseCode: "11006", CourseName: "מבני נתונים"},
	}}
	courses := service.NewCourseService(repo, &yearbookRepoStub{}, nil, 0, 0, nil, nil)
	h := NewChatHandler(nil, courses, nil, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/courses/suggest?yearbookId=tp25&q="+"מבני", nil)

	h.Suggest(c)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data dto.SuggestResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Suggestions, 1)
	assert.Equal(t, "11006", envelope.Data.Suggestions[0].CourseCode)
	assert.Equal(t, 150, envelope.Data.Suggestions[0].Score)
}
