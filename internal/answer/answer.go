// Package answer builds the HTML fragments shown in the chat transcript.
// Every builder is a pure function over resolved entities; user-facing
// failure states are answers here too, not HTTP errors.
package answer

import (
	"fmt"
	"strings"

	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
	"github.com/nadeen-odeh/dept-assistant-api/internal/nlp"
)

func wrap(inner string) string {
	return `<div class="text-sm">` + inner + `</div>`
}

// MissingFields answers a request without a question or yearbook id.
func MissingFields() string {
	return "❌ חסרה שאלה או מזהה שנתון"
}

// ServerError is the apologetic catch-all for route-level failures.
func ServerError() string {
	return "⚠️ שגיאה בעיבוד הבקשה."
}

// Greeting replies to a bare greeting.
func Greeting() string {
	return wrap("👋 היי! אפשר לשאול אותי על קורסים, דרישות קדם, מעבדות והנחיות רישום.")
}

// EmotionalSupport replies to distress questions with referral guidance.
func EmotionalSupport() string {
	return wrap(`
      💙 זה בסדר להרגיש ככה, את לא לבד.<br/>
      הרבה סטודנטים חווים עומס ובלבול במהלך הלימודים.<br/><br/>
      אפשר וכדאי לפנות ליועץ/ת האקדמי/ת שלך או לדיקנט הסטודנטים.<br/>
      ניתן למצוא יועץ/ת דרך התפריט למטה 👇
    `)
}

// Lookup answers a direct course lookup.
func Lookup(course models.Course) string {
	return wrap(fmt.Sprintf("✅ <b>%s</b> (%s)", course.CourseName, course.CourseCode))
}

// CouldNotIdentifyCourses answers a relation question with unresolved
// courses.
func CouldNotIdentifyCourses() string {
	return wrap("❌ לא הצלחתי לזהות את שני הקורסים שציינת.")
}

// Default is the generic fallback when nothing resolved.
func Default() string {
	return wrap("ℹ️ לא מצאתי תשובה מדויקת. אם שאלת על קורס, וודאי שרשמת את שמו המלא. אם את/ה חווה קושי, אנחנו כאן.")
}

// Relation answers a two-course question, crossing the temporal intent
// (before/parallel/general) with the stored relation type.
func Relation(intent, relType string, courseA, courseB models.Course, prereqs []string) string {
	var body string
	switch intent {
	case nlp.RelationIntentBefore:
		switch relType {
		case models.RelationPrerequisite:
			body = fmt.Sprintf("❌ לא ניתן ללמוד <b>%s</b> לפני <b>%s</b>", courseA.CourseName, courseB.CourseName)
		case models.RelationCorequisite:
			body = "⚠️ הקורסים צמודים – יש ללמוד במקביל"
		default:
			body = prerequisitesBody(courseA, prereqs)
		}
	case nlp.RelationIntentParallel:
		switch relType {
		case models.RelationCorequisite:
			body = fmt.Sprintf("✅ ניתן ללמוד <b>%s</b> במקביל עם <b>%s</b>", courseA.CourseName, courseB.CourseName)
		case models.RelationPrerequisite:
			body = fmt.Sprintf("⚠️ לא מומלץ/לא אפשרי במקביל: <b>%s</b> הוא <b>קורס קדם</b> ל־<b>%s</b>.", courseB.CourseName, courseA.CourseName)
		default:
			body = prerequisitesBody(courseA, prereqs)
		}
	default:
		if relType == models.RelationPrerequisite {
			body = fmt.Sprintf("ℹ️ <b>%s</b> הוא קורס קדם ל־<b>%s</b>", courseB.CourseName, courseA.CourseName)
		} else {
			body = prerequisitesBody(courseA, prereqs)
		}
	}
	return wrap(body)
}

// prerequisitesBody lists a single course's prerequisite courses. A course
// with none states that explicitly rather than omitting the section.
func prerequisitesBody(course models.Course, prereqs []string) string {
	var listing string
	if len(prereqs) > 0 {
		items := make([]string, len(prereqs))
		for i, p := range prereqs {
			items[i] = "• " + p
		}
		listing = fmt.Sprintf("יש קורסי קדם:<br/>%s", strings.Join(items, "<br/>"))
	} else {
		listing = "אין קורסי קדם."
	}
	return fmt.Sprintf("לפי הנתונים בשנתון, ל־<b>%s</b> %s<br/><br/>אם סיימת את דרישות הקדם – לא צפויה בעיה.",
		course.CourseName, listing)
}
