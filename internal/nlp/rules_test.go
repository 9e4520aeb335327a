package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLabQuestionRequiresLabAndTimeTerm(t *testing.T) {
	assert.True(t, IsLabQuestion("מתי המעבדה הבאה?"))
	assert.True(t, IsLabQuestion("איזה מעבדות יש השבוע"))

	// a lab term alone is not a schedule question
	assert.False(t, IsLabQuestion("למי פונים בנושא מעבדות"))
	// a time term alone is not a schedule question
	assert.False(t, IsLabQuestion("מתי חלון הרישום"))
}

func TestIsRegistrationQuestion(t *testing.T) {
	assert.True(t, IsRegistrationQuestion("מתי נפתח חלון הרישום?"))
	assert.True(t, IsRegistrationQuestion("מי היועצת של סמסטר 2"))
	assert.True(t, IsRegistrationQuestion("יש לי שאלה על ייעוץ"))
	assert.False(t, IsRegistrationQuestion("מה הקוד של פיזיקה 1"))
}

func TestIsAcademicCourseQuestionVetoesRegistration(t *testing.T) {
	q := "האם אלגוריתמים דורש קורס קדם ומתי נרשמים אליו?"
	assert.True(t, IsRegistrationQuestion(q))
	assert.True(t, IsAcademicCourseQuestion(q))
}

func TestIsCourseLookupQuestion(t *testing.T) {
	assert.True(t, IsCourseLookupQuestion("מה הקוד של חדו\"א 2?"))
	assert.True(t, IsCourseLookupQuestion("מה השם של 11005"))
	assert.False(t, IsCourseLookupQuestion("מתי המעבדה של כימיה"))
}

func TestIsGreeting(t *testing.T) {
	assert.True(t, IsGreeting("שלום"))
	assert.True(t, IsGreeting("בוקר טוב"))
	assert.False(t, IsGreeting("שלום, מה הקוד של פיזיקה?"))
}

func TestDetectRelationIntent(t *testing.T) {
	assert.Equal(t, RelationIntentBefore, DetectRelationIntent("אפשר ללמוד אלגוריתמים לפני מבני נתונים?"))
	assert.Equal(t, RelationIntentParallel, DetectRelationIntent("אפשר ללמוד אותם במקביל?"))
	assert.Equal(t, RelationIntentGeneral, DetectRelationIntent("מה הקשר בין הקורסים?"))
}

func TestRefineRegistrationIntentOverridesClassifier(t *testing.T) {
	assert.Equal(t, RegIntentMentors, RefineRegistrationIntent(RegIntentGeneral, "מי הסטודנט המלווה שלי?"))
	assert.Equal(t, RegIntentInternship, RefineRegistrationIntent(RegIntentWindow, "איך נרשמים לסטאז'?"))
	assert.Equal(t, RegIntentAdvisors, RefineRegistrationIntent("", "מי היועץ שלי"))
	assert.Equal(t, RegIntentCredits, RefineRegistrationIntent("", "כמה נז צריך"))
	assert.Equal(t, RegIntentWindow, RefineRegistrationIntent("", "מתי הרישום"))
	// no rule hit keeps the classifier intent
	assert.Equal(t, RegIntentRules, RefineRegistrationIntent(RegIntentRules, "ספרי לי עוד"))
	assert.Equal(t, RegIntentGeneral, RefineRegistrationIntent("", "ספרי לי עוד"))
}

func TestPreClassifyLabQuestion(t *testing.T) {
	names := []string{"כימיה כללית", "פיזיקה 1"}

	parsed := PreClassifyLabQuestion("מתי המעבדה הבאה של כימיה כללית?", names)
	require.NotNil(t, parsed)
	assert.Equal(t, LabIntentNext, parsed.Intent)
	assert.Equal(t, "כימיה כללית", parsed.Course)

	parsed = PreClassifyLabQuestion("אילו מעבדות יש היום?", names)
	require.NotNil(t, parsed)
	assert.Equal(t, LabIntentQuery, parsed.Intent)
	assert.Equal(t, LabTimeToday, parsed.Time)
	assert.Empty(t, parsed.Course)

	parsed = PreClassifyLabQuestion("מתי מעבדה 2 של פיזיקה 1?", names)
	require.NotNil(t, parsed)
	assert.Equal(t, "2", parsed.Session)
	assert.Equal(t, "פיזיקה 1", parsed.Course)

	// no signal at all falls through to the hosted classifier
	assert.Nil(t, PreClassifyLabQuestion("ספרי לי על המחלקה", names))
	assert.Nil(t, PreClassifyLabQuestion("", names))
}

func TestPreClassifyLabQuestionPrefersLongestCourse(t *testing.T) {
	names := []string{"כימיה", "כימיה אנליטית"}
	parsed := PreClassifyLabQuestion("מתי המעבדה של כימיה אנליטית?", names)
	require.NotNil(t, parsed)
	assert.Equal(t, "כימיה אנליטית", parsed.Course)
}
