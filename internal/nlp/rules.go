package nlp

import (
	"regexp"
	"strings"
)

// Keyword sets for the cheap pre-filters. Matching is substring based, so
// short stems (מע, סטאז) also catch their longer inflections.
var (
	labWords = []string{"מעבדה", "מעבדות", "מע"}

	labTimeWords = []string{
		"מתי",
		"איזה יום", "איזה תאריך", "תאריך",
		"היום", "מחר", "השבוע",
		"שעה", "באיזה", "לוח", "זמן", "מפגש", "שעות",
	}

	// Two-letter question words match whole words only; as substrings they
	// fire on למי/כמה and drag contact questions into the lab branch.
	labTimeExactWords = []string{"מי", "מה"}

	registrationWords = []string{
		"רישום", "הרשמה", "חלון", "מתי",
		"יועץ", "יועצת", "יעוץ", "ייעוץ",
		"פטור", "חריג", "נז", "165",
		"קישור", "הדרכה",
		"למי פונים",
		"מעבדה", "מעבדות",
		"מנטור", "מלווה",
		"סטודנטים חדשים",
		"סטאז", "סטאז׳", "התמחות",
	}

	academicCourseWords = []string{
		"קדם", "דרישת", "דרישות", "לפני", "במקביל", "צמוד", "תנאי",
	}

	lookupPhrases = []string{
		"מה הקוד של", "מה השם של", "מה המספר של", "איזה קוד",
	}

	namingWords = []string{"קוד", "שם", "מספר"}

	greetings = []string{
		"היי", "שלום", "הי", "אהלן", "בוקר טוב", "ערב טוב", "מה נשמע", "מה קורה",
	}

	nextLabPhrases = []string{
		"המעבדה הבאה", "מעבדה הבאה", "הקרובה", "הבא", "next lab",
	}

	sessionRe = regexp.MustCompile(`(?i)(?:מעבדה|מפגש|session)\s*([0-9]+)`)
)

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func containsWord(haystack string, words []string) bool {
	for _, field := range strings.Fields(haystack) {
		field = strings.Trim(field, "?!,.:;")
		for _, w := range words {
			if field == w {
				return true
			}
		}
	}
	return false
}

// IsLabQuestion reports whether a question asks about the lab timetable.
// Both a lab term and a time/date term are required, so "who handles labs"
// style questions stay with the registration branch.
func IsLabQuestion(question string) bool {
	q := strings.ToLower(question)
	return containsAny(q, labWords) &&
		(containsAny(q, labTimeWords) || containsWord(q, labTimeExactWords))
}

// IsRegistrationQuestion matches the fixed registration keyword set.
func IsRegistrationQuestion(question string) bool {
	q := NormalizeLoose(question)
	return containsAny(q, registrationWords)
}

// IsAcademicCourseQuestion detects prerequisite/concurrency phrasing. It
// vetoes the registration branch so course-relation questions are not
// misrouted by shared keywords like מתי.
func IsAcademicCourseQuestion(question string) bool {
	q := NormalizeSpaced(question)
	return containsAny(q, academicCourseWords)
}

// IsCourseLookupQuestion detects "what is the code/name of ..." phrasing,
// or a question that carries a course code together with a naming word.
func IsCourseLookupQuestion(question string) bool {
	q := NormalizeSpaced(question)
	if containsAny(q, lookupPhrases) {
		return true
	}
	if ExtractCourseCode(question) != "" && containsAny(q, namingWords) {
		return true
	}
	return false
}

// IsGreeting matches short greeting phrases exactly, after normalization.
func IsGreeting(question string) bool {
	q := Normalize(question)
	for _, g := range greetings {
		if q == Normalize(g) {
			return true
		}
	}
	return false
}

// DetectRelationIntent picks the temporal sense of a relation question.
func DetectRelationIntent(question string) string {
	q := strings.ToLower(question)
	if strings.Contains(q, "לפני") || strings.Contains(q, "קדם") {
		return RelationIntentBefore
	}
	if strings.Contains(q, "במקביל") || strings.Contains(q, "צמוד") {
		return RelationIntentParallel
	}
	return RelationIntentGeneral
}

// RefineRegistrationIntent overrides the classifier's registration facet
// with rule matches. Order matters: the more specific audiences (mentors,
// internship) win over the generic window/contacts fallbacks.
func RefineRegistrationIntent(intent, question string) string {
	q := NormalizeLoose(question)

	switch {
	case strings.Contains(q, "סטודנט חדש"),
		strings.Contains(q, "סטודנטים חדשים"),
		strings.Contains(q, "מלווה"):
		return RegIntentMentors
	case strings.Contains(q, "סטאז"):
		return RegIntentInternship
	case strings.Contains(q, "מעבדה"):
		return RegIntentLabs
	case strings.Contains(q, "יועץ"):
		return RegIntentAdvisors
	case strings.Contains(q, "פטור"), strings.Contains(q, "חריג"):
		return RegIntentExemptions
	case strings.Contains(q, "קישור"), strings.Contains(q, "הדרכה"):
		return RegIntentLinks
	case strings.Contains(q, "נז"), strings.Contains(q, "165"):
		return RegIntentCredits
	case strings.Contains(q, "מתי"), strings.Contains(q, "חלון"):
		return RegIntentWindow
	case strings.Contains(q, "למי פונים"), strings.Contains(q, "בעיה"):
		return RegIntentContacts
	}

	if intent == "" {
		return RegIntentGeneral
	}
	return intent
}

// PreClassifyLabQuestion classifies a lab question by rules alone. It
// returns nil when no signal is strong enough, and the caller falls back
// to the hosted classifier.
func PreClassifyLabQuestion(question string, courseNames []string) *LabClassification {
	q := strings.TrimSpace(question)
	if q == "" {
		return nil
	}

	qn := NormalizeSpaced(q)

	isNext := containsAny(qn, nextLabPhrases)

	timeWindow := LabTimeAll
	switch {
	case strings.Contains(qn, "היום") || strings.Contains(qn, "today"):
		timeWindow = LabTimeToday
	case strings.Contains(qn, "מחר") || strings.Contains(qn, "tomorrow"):
		timeWindow = LabTimeTomorrow
	case strings.Contains(qn, "השבוע") || strings.Contains(qn, "week"):
		timeWindow = LabTimeWeek
	}

	session := ""
	if m := sessionRe.FindStringSubmatch(q); m != nil {
		session = m[1]
	}

	// Longest matching course name wins, both containment directions, so
	// "כימיה כללית" beats a bare "כימיה" entry.
	course := ""
	bestLen := 0
	for _, name := range courseNames {
		nn := NormalizeSpaced(name)
		if nn == "" {
			continue
		}
		if strings.Contains(qn, nn) || strings.Contains(nn, qn) {
			if len(nn) > bestLen {
				bestLen = len(nn)
				course = name
			}
		}
	}

	if !isNext && timeWindow == LabTimeAll && session == "" && course == "" {
		return nil
	}

	intent := LabIntentQuery
	if isNext {
		intent = LabIntentNext
	}

	return &LabClassification{
		Intent:  intent,
		Course:  course,
		Session: session,
		Time:    timeWindow,
	}
}
