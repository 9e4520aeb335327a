package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestRegistrationRepositoryGetCreatesEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewRegistrationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT doc FROM registration_guidelines WHERE semester_number = $1")).
		WithArgs(3).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO registration_guidelines")).
		WithArgs(3, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	doc, err := repo.Get(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, 3, doc.SemesterNumber)
	require.Empty(t, doc.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrationRepositorySaveDeepMerges(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewRegistrationRepository(db)

	stored := map[string]interface{}{
		"semesterNumber": 2,
		"title":          "הנחיות רישום",
		"registrationWindow": map[string]interface{}{
			"date": "01.09.25",
			"from": "08:00",
			"to":   "20:00",
		},
	}
	raw, err := json.Marshal(stored)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT doc FROM registration_guidelines WHERE semester_number = $1 FOR UPDATE")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow(raw))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO registration_guidelines")).
		WithArgs(2, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	patch := map[string]interface{}{
		"registrationWindow": map[string]interface{}{"from": "09:00"},
	}
	require.NoError(t, repo.Save(context.Background(), 2, patch))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeepMergePreservesNestedFields(t *testing.T) {
	dst := map[string]interface{}{
		"title": "הנחיות",
		"registrationWindow": map[string]interface{}{
			"date": "01.09.25",
			"from": "08:00",
			"to":   "20:00",
		},
		"keyRules": []interface{}{map[string]interface{}{"code": "A", "text": "ישן"}},
	}
	src := map[string]interface{}{
		"registrationWindow": map[string]interface{}{"from": "09:00"},
		"keyRules":           []interface{}{map[string]interface{}{"code": "B", "text": "חדש"}},
	}

	out := deepMerge(dst, src)

	window := out["registrationWindow"].(map[string]interface{})
	require.Equal(t, "09:00", window["from"])
	require.Equal(t, "01.09.25", window["date"])
	require.Equal(t, "20:00", window["to"])
	require.Equal(t, "הנחיות", out["title"])

	rules := out["keyRules"].([]interface{})
	require.Len(t, rules, 1)
	require.Equal(t, "B", rules[0].(map[string]interface{})["code"])
}
