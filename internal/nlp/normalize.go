package nlp

import (
	"regexp"
	"strings"
)

var (
	quoteRunsRe   = regexp.MustCompile("[\"׳״'`]")
	dashRe        = regexp.MustCompile("[-–—]")
	whitespaceRe  = regexp.MustCompile(`\s+`)
	dotDashRe     = regexp.MustCompile(`[.-]`)
	courseCodeRe  = regexp.MustCompile(`^\d{5,6}$`)
	codeTokenRe   = regexp.MustCompile(`\b\d{5,6}\b`)
	semesterRe    = regexp.MustCompile(`סמסטר\s*([1-8])`)
	semesterAbbRe = regexp.MustCompile(`סמ\s*([1-8])`)
)

// Normalize canonicalizes Hebrew text for course-name comparison: quote
// marks and dashes dropped, all whitespace removed, lowercased.
func Normalize(s string) string {
	out := quoteRunsRe.ReplaceAllString(s, "")
	out = whitespaceRe.ReplaceAllString(out, "")
	out = dashRe.ReplaceAllString(out, "")
	return strings.TrimSpace(strings.ToLower(out))
}

// NormalizeSpaced keeps single spaces between words, for keyword and
// whole-word matching.
func NormalizeSpaced(s string) string {
	out := quoteRunsRe.ReplaceAllString(s, "")
	out = whitespaceRe.ReplaceAllString(out, " ")
	out = dashRe.ReplaceAllString(out, "")
	return strings.TrimSpace(strings.ToLower(out))
}

// NormalizeLoose is the registration variant: dots and dashes become
// spaces and double-yod spelling variants collapse, so יועץ/ייעוץ phrasing
// matches a single keyword form.
func NormalizeLoose(s string) string {
	out := quoteRunsRe.ReplaceAllString(s, "")
	out = dotDashRe.ReplaceAllString(out, " ")
	out = whitespaceRe.ReplaceAllString(out, " ")
	out = strings.ReplaceAll(out, "ייע", "יע")
	out = strings.ReplaceAll(out, "יי", "י")
	return strings.TrimSpace(strings.ToLower(out))
}

// IsCourseCode reports whether s is a bare 5-6 digit course code.
func IsCourseCode(s string) bool {
	return courseCodeRe.MatchString(strings.TrimSpace(s))
}

// ExtractCourseCode returns the first 5-6 digit token in free text, or "".
func ExtractCourseCode(question string) string {
	return codeTokenRe.FindString(question)
}

// ExtractSemesterNumber pulls a semester number (1-8) from "סמסטר N" or
// "סמ N" phrasing. Zero means no semester was mentioned.
func ExtractSemesterNumber(question string) int {
	if m := semesterRe.FindStringSubmatch(question); m != nil {
		return int(m[1][0] - '0')
	}
	if m := semesterAbbRe.FindStringSubmatch(question); m != nil {
		return int(m[1][0] - '0')
	}
	return 0
}
