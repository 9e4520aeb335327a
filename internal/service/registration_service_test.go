package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
	"github.com/nadeen-odeh/dept-assistant-api/internal/nlp"
)

type mockRegistrationRepo struct {
	docs       map[int]models.RegistrationGuideline
	savedSem   int
	savedPatch map[string]interface{}
}

func (m *mockRegistrationRepo) Get(ctx context.Context, semester int) (*models.RegistrationGuideline, error) {
	if doc, ok := m.docs[semester]; ok {
		return &doc, nil
	}
	empty := models.RegistrationGuideline{SemesterNumber: semester}
	return &empty, nil
}

func (m *mockRegistrationRepo) GetAll(ctx context.Context) ([]models.RegistrationGuideline, error) {
	var out []models.RegistrationGuideline
	for sem := 1; sem <= 8; sem++ {
		if doc, ok := m.docs[sem]; ok {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (m *mockRegistrationRepo) Save(ctx context.Context, semester int, patch map[string]interface{}) error {
	m.savedSem = semester
	m.savedPatch = patch
	return nil
}

func registrationFixtureRepo() *mockRegistrationRepo {
	return &mockRegistrationRepo{
		docs: map[int]models.RegistrationGuideline{
			2: {
				SemesterNumber:     2,
				Title:              "הנחיות רישום – סמסטר 2",
				RegistrationWindow: models.RegistrationWindow{Date: "01.09.25", From: "08:00", To: "20:00"},
				Contacts: models.RegistrationContacts{
					Labs: []models.Contact{{Name: "רכזת מעבדות", Email: "labs@college.edu"}},
				},
			},
			3: {
				SemesterNumber:     3,
				Title:              "הנחיות רישום – סמסטר 3",
				RegistrationWindow: models.RegistrationWindow{Date: "02.09.25", From: "09:00", To: "21:00"},
			},
		},
	}
}

func TestRegistrationAskSemesterScoped(t *testing.T) {
	classifier := &fakeClassifier{registration: &nlp.RegistrationClassification{Intent: nlp.RegIntentGeneral}}
	svc := NewRegistrationService(registrationFixtureRepo(), classifier, nil, nil)

	// "חלון" refines the intent to window regardless of the classifier.
	html, err := svc.Ask(context.Background(), "מה חלון הרישום בסמסטר 2?")
	require.NoError(t, err)
	assert.Contains(t, html, "01.09.25")
	assert.NotContains(t, html, "02.09.25")
}

func TestRegistrationAskAggregatesAllSemesters(t *testing.T) {
	classifier := &fakeClassifier{registration: &nlp.RegistrationClassification{Intent: nlp.RegIntentWindow}}
	svc := NewRegistrationService(registrationFixtureRepo(), classifier, nil, nil)

	html, err := svc.Ask(context.Background(), "מה חלון הרישום?")
	require.NoError(t, err)
	assert.Contains(t, html, "01.09.25")
	assert.Contains(t, html, "02.09.25")
}

func TestRegistrationAskRuleOverridesClassifier(t *testing.T) {
	classifier := &fakeClassifier{registration: &nlp.RegistrationClassification{Intent: nlp.RegIntentWindow}}
	svc := NewRegistrationService(registrationFixtureRepo(), classifier, nil, nil)

	html, err := svc.Ask(context.Background(), "למי פונים בנושא מעבדה בסמסטר 2?")
	require.NoError(t, err)
	assert.Contains(t, html, "labs@college.edu")
}

func TestRegistrationAskClassifierFailure(t *testing.T) {
	svc := NewRegistrationService(registrationFixtureRepo(), &fakeClassifier{}, nil, nil)

	html, err := svc.Ask(context.Background(), "ספרי לי על ההנחיות בסמסטר 3")
	require.NoError(t, err)
	assert.Contains(t, html, "סמסטר 3")
}

func TestRegistrationSavePassesPatch(t *testing.T) {
	repo := registrationFixtureRepo()
	svc := NewRegistrationService(repo, &fakeClassifier{}, nil, nil)

	patch := map[string]interface{}{"title": "עודכן"}
	require.NoError(t, svc.Save(context.Background(), 4, patch))
	assert.Equal(t, 4, repo.savedSem)
	assert.Equal(t, "עודכן", repo.savedPatch["title"])
}
