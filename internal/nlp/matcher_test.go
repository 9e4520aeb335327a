package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
)

var matcherCourses = []models.Course{
	{CourseCode: "11005", CourseName: "חדו״א 2"},
	{CourseCode: "11006", CourseName: "מבני נתונים"},
	{CourseCode: "11007", CourseName: "אלגוריתמים"},
	{CourseCode: "11008", CourseName: "כימיה כללית"},
	{CourseCode: "11009", CourseName: "כימיה אנליטית"},
}

func TestMatchCourseByCode(t *testing.T) {
	ix := NewCourseIndex(matcherCourses)

	got := ix.Match("11005")
	require.NotNil(t, got)
	assert.Equal(t, "חדו״א 2", got.CourseName)

	// a code token matches only its exact course, never a prefix of a
	// longer code
	assert.Nil(t, ix.Match("110051"))
}

func TestMatchCourseByNormalizedName(t *testing.T) {
	ix := NewCourseIndex(matcherCourses)

	got := ix.Match(`חדו"א 2`)
	require.NotNil(t, got)
	assert.Equal(t, "11005", got.CourseCode)

	got = ix.Match("מבני  נתונים")
	require.NotNil(t, got)
	assert.Equal(t, "11006", got.CourseCode)
}

func TestMatchCourseSubstringPrefersLongestName(t *testing.T) {
	ix := NewCourseIndex(matcherCourses)

	got := ix.Match("כימיה אנליטית למתקדמים")
	require.NotNil(t, got)
	assert.Equal(t, "11009", got.CourseCode)
}

func TestMatchCourseUnknown(t *testing.T) {
	ix := NewCourseIndex(matcherCourses)
	assert.Nil(t, ix.Match("פיסיקה קוונטית"))
	assert.Nil(t, ix.Match(""))
}

func TestSuggestScoring(t *testing.T) {
	courses := []models.Course{
		{CourseCode: "11008", CourseName: "כימיה כללית"},
		{CourseCode: "11009", CourseName: "כימיה אנליטית"},
		{CourseCode: "11010", CourseName: "מבוא לכימיה אורגנית"},
		{CourseCode: "11006", CourseName: "מבני נתונים"},
	}

	got := Suggest("כימיה כללית", courses, 0)
	require.NotEmpty(t, got)
	assert.Equal(t, "11008", got[0].CourseCode)
	assert.Equal(t, 200, got[0].Score)

	got = Suggest("כימיה", courses, 0)
	require.Len(t, got, 3)
	// prefix beats substring
	assert.Equal(t, 150, got[0].Score)
	assert.Equal(t, 100, got[2].Score)
	assert.Equal(t, "מבוא לכימיה אורגנית", got[2].CourseName)

	got = Suggest("110", courses, 2)
	assert.Len(t, got, 2)
	assert.Equal(t, 150, got[0].Score)
}

func TestSuggestPartialWordScore(t *testing.T) {
	courses := []models.Course{
		{CourseCode: "11006", CourseName: "מבני נתונים"},
	}
	got := Suggest("נתונים מבני", courses, 0)
	require.Len(t, got, 1)
	// both query words hit: 60 + 2×10
	assert.Equal(t, 80, got[0].Score)
}

func TestSuggestEmptyQuery(t *testing.T) {
	assert.Nil(t, Suggest("   ", matcherCourses, 5))
}
