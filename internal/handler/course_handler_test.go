package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadeen-odeh/dept-assistant-api/internal/service"
)

func newCourseHandlerForTest(repo *courseRepoStub) *CourseHandler {
	return NewCourseHandler(service.NewCourseService(repo, &yearbookRepoStub{}, nil, 0, 0, nil, nil))
}

func courseParams() gin.Params {
	return gin.Params{
		{Key: "yearbookId", Value: "tp25"},
		{Key: "semesterKey", Value: "semester3"},
		{Key: "courseCode", Value: "11006"},
	}
}

func TestCourseHandlerSave(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &courseRepoStub{}
	h := newCourseHandlerForTest(repo)

	body := []byte(`{"courseName":"מבני נתונים","relations":[{"courseCode":"11005","courseName":"חדו\"א 2","type":"PREREQUISITE"}]}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPut, "/admin/yearbooks/tp25/courses/semester3/11006", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = courseParams()

	h.Save(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, "11006", repo.upserted.CourseCode)
	require.Len(t, repo.upserted.Relations, 1)
	assert.Equal(t, "PREREQUISITE", repo.upserted.Relations[0].Type)
}

func TestCourseHandlerSaveInvalidRelationType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newCourseHandlerForTest(&courseRepoStub{})

	body := []byte(`{"courseName":"מבני נתונים","relations":[{"courseCode":"11005","courseName":"חדו\"א 2","type":"FOLLOWS"}]}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPut, "/admin/yearbooks/tp25/courses/semester3/11006", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = courseParams()

	h.Save(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCourseHandlerDeleteNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newCourseHandlerForTest(&courseRepoStub{deleteErr: sql.ErrNoRows})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/admin/yearbooks/tp25/courses/semester3/11006", nil)
	c.Params = courseParams()

	h.Delete(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	var envelope struct {
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
}

func TestCourseHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newCourseHandlerForTest(&courseRepoStub{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/admin/yearbooks/tp25/courses/semester3/11006", nil)
	c.Params = courseParams()

	h.Delete(c)
	c.Writer.WriteHeaderNow()

	require.Equal(t, http.StatusNoContent, w.Code)
}
