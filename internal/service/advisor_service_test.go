package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
)

type mockAdvisorRepo struct {
	advisors []models.Advisor
	saved    *models.Advisor
	deleted  string
}

func (m *mockAdvisorRepo) List(ctx context.Context) ([]models.Advisor, error) {
	return m.advisors, nil
}

func (m *mockAdvisorRepo) Upsert(ctx context.Context, advisor *models.Advisor) error {
	if advisor.ID == "" {
		advisor.ID = "generated-id"
	}
	m.saved = advisor
	return nil
}

func (m *mockAdvisorRepo) Delete(ctx context.Context, id string) error {
	m.deleted = id
	return nil
}

func advisorFixtureRepo() *mockAdvisorRepo {
	return &mockAdvisorRepo{
		advisors: []models.Advisor{
			{
				ID: "a1", Name: "ד\"ר לוי", Email: "levi@college.edu",
				Semesters: []int{1, 2, 3}, LastNameRanges: []string{"א-י"},
			},
			{
				ID: "a2", Name: "ד\"ר כהן", Email: "cohen@college.edu",
				Semesters: []int{1, 2, 3}, LastNameRanges: []string{"כ-ת"},
			},
			{
				ID: "a3", Name: "ד\"ר מזרחי", Email: "mizrahi@college.edu",
				Semesters: []int{5, 6}, LastNameRanges: []string{"א-ת"}, Tracks: []string{"תוכנה"},
			},
		},
	}
}

func TestAdvisorFindByLetterRange(t *testing.T) {
	svc := NewAdvisorService(advisorFixtureRepo(), nil, nil)

	matched, err := svc.Find(context.Background(), "ב", 2, "")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "a1", matched[0].ID)

	matched, err = svc.Find(context.Background(), "ש", 2, "")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "a2", matched[0].ID)
}

func TestAdvisorFindTrackIgnoredBelowSemesterFive(t *testing.T) {
	svc := NewAdvisorService(advisorFixtureRepo(), nil, nil)

	// Track filter applies only from semester 5 on.
	matched, err := svc.Find(context.Background(), "ב", 2, "רשתות")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "a1", matched[0].ID)

	matched, err = svc.Find(context.Background(), "ב", 5, "רשתות")
	require.NoError(t, err)
	assert.Empty(t, matched)

	matched, err = svc.Find(context.Background(), "ב", 5, "תוכנה")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "a3", matched[0].ID)
}

func TestAdvisorFindUnknownLetter(t *testing.T) {
	svc := NewAdvisorService(advisorFixtureRepo(), nil, nil)

	matched, err := svc.Find(context.Background(), "x", 2, "")
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestAdvisorSaveAssignsID(t *testing.T) {
	repo := advisorFixtureRepo()
	svc := NewAdvisorService(repo, nil, nil)

	advisor, err := svc.Save(context.Background(), "", SaveAdvisorRequest{
		Name:           "ד\"ר ברק",
		Email:          "barak@college.edu",
		Semesters:      []int{4},
		LastNameRanges: []string{"א-ת"},
	})
	require.NoError(t, err)
	assert.Equal(t, "generated-id", advisor.ID)
}

func TestAdvisorSaveValidates(t *testing.T) {
	repo := advisorFixtureRepo()
	svc := NewAdvisorService(repo, nil, nil)

	_, err := svc.Save(context.Background(), "", SaveAdvisorRequest{Name: "חסר אימייל"})
	require.Error(t, err)
	assert.Nil(t, repo.saved)
}
