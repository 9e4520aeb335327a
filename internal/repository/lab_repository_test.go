package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
)

func TestLabRepositoryLatestYearEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLabRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, label, updated_at FROM lab_years ORDER BY updated_at DESC LIMIT 1")).
		WillReturnError(sql.ErrNoRows)

	year, err := repo.LatestYear(context.Background())
	require.NoError(t, err)
	require.Nil(t, year)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLabRepositoryGetSemester(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLabRepository(db)

	doc := models.LabSemesterDoc{
		Semester: 1,
		Courses: map[string]models.LabCourse{
			"11010": {
				CourseCode: "11010",
				CourseName: "פיזיקה 1",
				Labs:       []models.LabSession{{Session: "1", Date: "9.11.25", Time: "10:00"}},
			},
		},
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT doc FROM lab_semesters WHERE year_id = $1 AND semester = $2")).
		WithArgs("2025-2026", 1).
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow(raw))

	got, err := repo.GetSemester(context.Background(), "2025-2026", 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "פיזיקה 1", got.Courses["11010"].CourseName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLabRepositoryReplaceSemester(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLabRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO lab_years")).
		WithArgs("2025-2026", "תשפ״ו", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO lab_semesters")).
		WithArgs("2025-2026", 2, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	doc := models.LabSemesterDoc{Semester: 2, Courses: map[string]models.LabCourse{}}
	require.NoError(t, repo.ReplaceSemester(context.Background(), "2025-2026", "תשפ״ו", doc))
	require.NoError(t, mock.ExpectationsWereMet())
}
