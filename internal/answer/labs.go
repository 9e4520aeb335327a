package answer

import (
	"fmt"
	"strings"

	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
)

// Lab-branch failure answers.
func MissingQuestion() string   { return "❌ חסרה שאלה" }
func NoActiveLabYear() string   { return "❌ לא נמצאה שנת לימודים פעילה" }
func NoLabSemesters() string    { return "❌ לא נמצאו סמסטרים לשנה הנוכחית" }
func LabNotUnderstood() string  { return "❌ לא הצלחתי להבין את השאלה" }
func NoUpcomingLab() string     { return "ℹ️ לא נמצאה מעבדה עתידית לפי התנאים." }
func NoMatchingLabs() string    { return "ℹ️ לא נמצאו מעבדות מתאימות לפי השאלה." }

func staffLine(staff []string) string {
	if len(staff) == 0 {
		return "-"
	}
	return strings.Join(staff, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func sessionLabel(session string) string {
	if session == "" {
		return "מעבדה"
	}
	return "מעבדה " + session
}

// NextLab renders the single upcoming session card.
func NextLab(lab models.FlatLab) string {
	card := fmt.Sprintf(`
        <div class="border rounded-xl p-4 bg-gray-50">
          <div class="font-bold text-lg text-blue-700 mb-2">⏭️ המעבדה הבאה</div>
          <div class="font-medium">📘 %s <span class="text-sm text-gray-500">(סמסטר %d)</span></div>
          <div class="text-sm mt-2">🧪 %s</div>
          <div class="text-sm mt-1">📅 %s %s | ⏰ %s</div>
          <div class="text-sm mt-1">👥 קבוצה: %s</div>
          <div class="text-sm mt-1">👩‍🏫 מרצה: %s</div>
        </div>
      `,
		lab.CourseName, lab.Semester,
		sessionLabel(lab.Session),
		lab.Day, orDash(lab.Date), orDash(lab.Time),
		orDash(lab.Group),
		staffLine(lab.Staff))
	return wrap(card)
}

// LabsGrouped renders sessions grouped by course and semester, in the
// order given (callers sort by date/time first).
func LabsGrouped(labs []models.FlatLab) string {
	type groupKey struct {
		course   string
		semester int
	}

	var order []groupKey
	grouped := make(map[groupKey][]models.FlatLab)
	for _, l := range labs {
		key := groupKey{course: l.CourseName, semester: l.Semester}
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], l)
	}

	var blocks []string
	for _, key := range order {
		var items []string
		for _, l := range grouped[key] {
			items = append(items, fmt.Sprintf(`
              <li class="border rounded-lg p-3 bg-gray-50">
                <div class="font-medium">🧪 %s</div>
                <div class="text-sm mt-1">📅 %s %s | ⏰ %s</div>
                <div class="text-sm mt-1">👥 קבוצה: %s</div>
                <div class="text-sm mt-1">👩‍🏫 מרצה: %s</div>
              </li>
            `,
				sessionLabel(l.Session),
				l.Day, orDash(l.Date), orDash(l.Time),
				orDash(l.Group),
				staffLine(l.Staff)))
		}
		blocks = append(blocks, fmt.Sprintf(`
          <div class="mb-6">
            <div class="font-bold text-lg text-blue-700 mb-2">
              📘 %s
              <span class="text-sm text-gray-500">(סמסטר %d)</span>
            </div>
            <ul class="space-y-3">%s</ul>
          </div>
        `, key.course, key.semester, strings.Join(items, "")))
	}

	return wrap(strings.Join(blocks, ""))
}
