package nlp

import (
	"sort"
	"strings"

	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
)

// CourseIndex resolves free-text course references against a yearbook's
// course list. Built once per request from the cached list.
type CourseIndex struct {
	courses []models.Course
	byName  map[string]models.Course
}

// NewCourseIndex indexes courses by normalized name and by code.
func NewCourseIndex(courses []models.Course) *CourseIndex {
	byName := make(map[string]models.Course, len(courses)*2)
	for _, c := range courses {
		byName[Normalize(c.CourseName)] = c
		byName[Normalize(c.CourseCode)] = c
	}
	return &CourseIndex{courses: courses, byName: byName}
}

// Match resolves a raw reference to a course. Codes match exactly; names
// match exactly on the normalized index, then by bidirectional substring
// containment with the longest matching name winning (ties break on the
// lexicographically smaller key, keeping results order-independent).
func (ix *CourseIndex) Match(raw string) *models.Course {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if IsCourseCode(s) {
		for _, c := range ix.courses {
			if c.CourseCode == s {
				matched := c
				return &matched
			}
		}
		return nil
	}

	n := Normalize(s)
	if n == "" {
		return nil
	}

	if c, ok := ix.byName[n]; ok {
		matched := c
		return &matched
	}

	var bestKey string
	var best *models.Course
	for key, course := range ix.byName {
		if !strings.Contains(key, n) && !strings.Contains(n, key) {
			continue
		}
		if best == nil || len(key) > len(bestKey) || (len(key) == len(bestKey) && key < bestKey) {
			matched := course
			best = &matched
			bestKey = key
		}
	}
	return best
}

// Suggest scores every course against the query and returns matches in
// descending score order. Scoring: exact 200, prefix 150, substring 100,
// partial word match 60 plus 10 per matching word.
func Suggest(query string, courses []models.Course, limit int) []models.Suggestion {
	qn := NormalizeSpaced(query)
	if qn == "" {
		return nil
	}

	var out []models.Suggestion
	for _, c := range courses {
		score := scoreCourse(qn, c)
		if score == 0 {
			continue
		}
		out = append(out, models.Suggestion{
			CourseCode: c.CourseCode,
			CourseName: c.CourseName,
			Score:      score,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].CourseName < out[j].CourseName
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func scoreCourse(qn string, c models.Course) int {
	name := NormalizeSpaced(c.CourseName)
	code := strings.TrimSpace(c.CourseCode)

	if qn == name || qn == code {
		return 200
	}
	if strings.HasPrefix(name, qn) || strings.HasPrefix(code, qn) {
		return 150
	}
	if strings.Contains(name, qn) {
		return 100
	}

	matches := 0
	nameWords := strings.Fields(name)
	for _, qw := range strings.Fields(qn) {
		for _, nw := range nameWords {
			if strings.Contains(nw, qw) {
				matches++
				break
			}
		}
	}
	if matches > 0 {
		return 60 + 10*matches
	}
	return 0
}
