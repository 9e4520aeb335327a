package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
	"github.com/nadeen-odeh/dept-assistant-api/internal/service"
)

type advisorRepoStub struct {
	advisors []models.Advisor
	deleted  string
}

func (s *advisorRepoStub) List(ctx context.Context) ([]models.Advisor, error) {
	return s.advisors, nil
}

func (s *advisorRepoStub) Upsert(ctx context.Context, advisor *models.Advisor) error {
	if advisor.ID == "" {
		advisor.ID = "generated-id"
	}
	return nil
}

func (s *advisorRepoStub) Delete(ctx context.Context, id string) error {
	s.deleted = id
	return nil
}

func newAdvisorHandlerForTest(repo *advisorRepoStub) *AdvisorHandler {
	return NewAdvisorHandler(service.NewAdvisorService(repo, nil, nil))
}

func TestAdvisorHandlerFindMissingParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newAdvisorHandlerForTest(&advisorRepoStub{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/advisors/find?semester=2", nil)

	h.Find(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdvisorHandlerFind(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newAdvisorHandlerForTest(&advisorRepoStub{advisors: []models.Advisor{
		{ID: "a1", Name: "ד\"ר לוי", Email: "levi@college.edu", Semesters: []int{1, 2, 3}, LastNameRanges: []string{"א-י"}},
	}})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/advisors/find?lastNameLetter="+"ג"+"&semester=2", nil)

	h.Find(c)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data struct {
			Found    bool             `json:"found"`
			Advisors []models.Advisor `json:"advisors"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.Found)
	require.Len(t, envelope.Data.Advisors, 1)
	assert.Equal(t, "a1", envelope.Data.Advisors[0].ID)
}

func TestAdvisorHandlerSave(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newAdvisorHandlerForTest(&advisorRepoStub{})

	body, _ := json.Marshal(service.SaveAdvisorRequest{
		Name:           "ד\"ר לוי",
		Email:          "levi@college.edu",
		Semesters:      []int{1, 2},
		LastNameRanges: []string{"א-י"},
	})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/admin/advisors/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "advisorId", Value: ""}}

	h.Save(c)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data models.Advisor `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "generated-id", envelope.Data.ID)
}

func TestAdvisorHandlerSaveInvalid(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newAdvisorHandlerForTest(&advisorRepoStub{})

	body, _ := json.Marshal(service.SaveAdvisorRequest{Name: "ד\"ר לוי"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/admin/advisors/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	h.Save(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdvisorHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &advisorRepoStub{advisors: []models.Advisor{{ID: "a1"}}}
	h := newAdvisorHandlerForTest(repo)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/admin/advisors/a1", nil)
	c.Params = gin.Params{{Key: "advisorId", Value: "a1"}}

	h.Delete(c)
	c.Writer.WriteHeaderNow()

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "a1", repo.deleted)
}
