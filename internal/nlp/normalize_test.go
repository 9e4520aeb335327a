package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStripsQuotesAndSpaces(t *testing.T) {
	assert.Equal(t, "חדוא2", Normalize(`חדו"א 2`))
	assert.Equal(t, "חדוא2", Normalize("חדו״א 2"))
	assert.Equal(t, "מבנינתונים", Normalize("  מבני   נתונים "))
	assert.Equal(t, "חדוא1", Normalize("חדו-א 1"))
}

func TestNormalizeSpacedCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "כימיה כללית", NormalizeSpaced("  כימיה    כללית "))
}

func TestNormalizeLooseCollapsesDoubleYod(t *testing.T) {
	assert.Equal(t, NormalizeLoose("יעוץ"), NormalizeLoose("ייעוץ"))
	assert.Equal(t, "מתי נפתח", NormalizeLoose("מתי-נפתח."))
}

func TestIsCourseCode(t *testing.T) {
	assert.True(t, IsCourseCode("11005"))
	assert.True(t, IsCourseCode(" 110051 "))
	assert.False(t, IsCourseCode("1100"))
	assert.False(t, IsCourseCode("1100512"))
	assert.False(t, IsCourseCode("abc11"))
}

func TestExtractCourseCode(t *testing.T) {
	assert.Equal(t, "11005", ExtractCourseCode("מה השם של הקורס 11005?"))
	assert.Equal(t, "", ExtractCourseCode("מה השם של חדו\"א"))
	// a 7 digit run is not a course code
	assert.Equal(t, "", ExtractCourseCode("טלפון 0521234"))
}

func TestExtractSemesterNumber(t *testing.T) {
	assert.Equal(t, 3, ExtractSemesterNumber("מי היועץ של סמסטר 3?"))
	assert.Equal(t, 5, ExtractSemesterNumber("סמ 5"))
	assert.Equal(t, 0, ExtractSemesterNumber("מתי חלון הרישום?"))
	assert.Equal(t, 0, ExtractSemesterNumber("סמסטר 9"))
}
