package answer

import (
	"fmt"
	"strings"

	"github.com/nadeen-odeh/dept-assistant-api/internal/models"
	"github.com/nadeen-odeh/dept-assistant-api/internal/nlp"
)

func contactList(contacts []models.Contact) string {
	items := make([]string, len(contacts))
	for i, c := range contacts {
		items[i] = fmt.Sprintf(`• %s – <a href="mailto:%s">%s</a>`, c.Name, c.Email, c.Email)
	}
	return strings.Join(items, "<br/>")
}

func cohortSuffix(doc models.RegistrationGuideline) string {
	if doc.Audience.CohortText == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", doc.Audience.CohortText)
}

// Registration renders a single-semester facet answer.
func Registration(intent string, doc models.RegistrationGuideline) string {
	sem := doc.SemesterNumber

	switch intent {
	case nlp.RegIntentLinks:
		if len(doc.Links) > 0 {
			items := make([]string, len(doc.Links))
			for i, l := range doc.Links {
				items[i] = fmt.Sprintf(`• <a href="%s" target="_blank">%s</a>`, l.URL, l.Label)
			}
			return wrap(fmt.Sprintf("<b>הדרכות רישום – סמסטר %d%s</b><br/><br/>%s",
				sem, cohortSuffix(doc), strings.Join(items, "<br/>")))
		}
		var rules []string
		for _, r := range doc.KeyRules {
			if strings.Contains(r.Text, "רישום") || strings.Contains(r.Text, "דמו") {
				rules = append(rules, "• "+r.Text)
			}
		}
		body := strings.Join(rules, "<br/>")
		if body == "" {
			body = "הרישום מתבצע דרך אתר המכללה."
		}
		return wrap(fmt.Sprintf("<b>הנחיות רישום – סמסטר %d</b><br/><br/>%s", sem, body))

	case nlp.RegIntentWindow:
		w := doc.RegistrationWindow
		return wrap(fmt.Sprintf("⏰ <b>חלון הרישום – סמסטר %d%s</b><br/>%s בין %s ל-%s",
			sem, cohortSuffix(doc), w.Date, w.From, w.To))

	case nlp.RegIntentAdvisors:
		return wrap(fmt.Sprintf(`<b>יועצים אקדמיים – סמסטר %d</b><br/><br/>%s
      <hr style="margin:12px 0; border:none; border-top:1px solid #e5e7eb;" />
      <div style="font-size:12px; color:#6b7280; text-align:center;">
        ניתן למצוא את היועץ/ת האקדמי/ת שלך גם דרך התפריט למטה ⬇️
      </div>`,
			sem, contactList(doc.Contacts.AcademicAdvisors)))

	case nlp.RegIntentLabs:
		if len(doc.Contacts.Labs) == 0 {
			return wrap(fmt.Sprintf("ℹ️ אין אחראי/ת מעבדות בסמסטר %d.", sem))
		}
		return wrap(fmt.Sprintf("<b>אחראי/ת מעבדות – סמסטר %d</b><br/><br/>%s",
			sem, contactList(doc.Contacts.Labs)))

	case nlp.RegIntentMentors:
		if len(doc.Contacts.Mentors) == 0 {
			return wrap(fmt.Sprintf("ℹ️ אין סטודנט/ית מלווה בסמסטר %d.", sem))
		}
		return wrap(fmt.Sprintf("<b>סטודנט/ית מלווה – סמסטר %d</b><br/><br/>%s",
			sem, contactList(doc.Contacts.Mentors)))

	case nlp.RegIntentExemptions:
		if len(doc.Contacts.Exemptions) == 0 {
			return wrap("ℹ️ אין מידע על פטורים בסמסטר זה.")
		}
		return wrap(fmt.Sprintf("<b>פטורים / חריגים</b><br/><br/>%s",
			contactList(doc.Contacts.Exemptions)))

	case nlp.RegIntentInternship:
		var rules []string
		for _, r := range doc.KeyRules {
			if strings.Contains(r.Code, "INTERNSHIP") {
				rules = append(rules, "• "+r.Text)
			}
		}
		body := strings.Join(rules, "<br/>")
		if body == "" {
			body = "מידע על סטאז' מתפרסם לפי סמסטר ובהנחיות המחלקה."
		}
		return wrap(fmt.Sprintf("<b>סטאז' / התמחות – סמסטר %d</b><br/><br/>%s", sem, body))

	case nlp.RegIntentCredits:
		body := doc.Audience.CreditsRuleText
		if body == "" {
			body = "נדרש מינימום 165 נ״ז"
		}
		return wrap(fmt.Sprintf("<b>נקודות זכות</b><br/>%s", body))

	case nlp.RegIntentContacts:
		if len(doc.Contacts.RegistrationSupport) == 0 {
			return wrap("ℹ️ אין איש קשר ייעודי לרישום בסמסטר זה.")
		}
		return wrap(fmt.Sprintf("<b>אנשי קשר לרישום</b><br/><br/>%s",
			contactList(doc.Contacts.RegistrationSupport)))
	}

	return wrap(doc.Title)
}

// RegistrationAll aggregates a facet across all semester documents,
// grouped by semester number.
func RegistrationAll(intent string, docs []models.RegistrationGuideline) string {
	switch intent {
	case nlp.RegIntentAdvisors:
		return contactsBySemester("יועצים אקדמיים לפי סמסטר", docs,
			func(d models.RegistrationGuideline) []models.Contact { return d.Contacts.AcademicAdvisors })
	case nlp.RegIntentLabs:
		return contactsBySemester("אחראי/ת מעבדות לפי סמסטר", docs,
			func(d models.RegistrationGuideline) []models.Contact { return d.Contacts.Labs })
	case nlp.RegIntentMentors:
		return contactsBySemester("סטודנטים מלווים לפי סמסטר", docs,
			func(d models.RegistrationGuideline) []models.Contact { return d.Contacts.Mentors })
	case nlp.RegIntentExemptions:
		return contactsBySemester("פטורים / חריגים לפי סמסטר", docs,
			func(d models.RegistrationGuideline) []models.Contact { return d.Contacts.Exemptions })
	case nlp.RegIntentContacts:
		return contactsBySemester("אנשי קשר לרישום לפי סמסטר", docs,
			func(d models.RegistrationGuideline) []models.Contact { return d.Contacts.RegistrationSupport })
	case nlp.RegIntentWindow:
		var blocks []string
		for _, d := range docs {
			w := d.RegistrationWindow
			if w.Date == "" {
				continue
			}
			blocks = append(blocks, fmt.Sprintf("<b>סמסטר %d</b><br/>%s בין %s ל-%s",
				d.SemesterNumber, w.Date, w.From, w.To))
		}
		return wrap("⏰ <b>חלונות רישום לפי סמסטר</b><br/><br/>" + strings.Join(blocks, "<br/><br/>"))
	}

	// facets without a natural per-semester grouping answer from the
	// first populated document
	for _, d := range docs {
		return Registration(intent, d)
	}
	return Default()
}

func contactsBySemester(title string, docs []models.RegistrationGuideline, pick func(models.RegistrationGuideline) []models.Contact) string {
	var blocks []string
	for _, d := range docs {
		contacts := pick(d)
		if len(contacts) == 0 {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("<b>סמסטר %d</b><br/>%s", d.SemesterNumber, contactList(contacts)))
	}
	return wrap(fmt.Sprintf("<b>%s</b><br/><br/>%s", title, strings.Join(blocks, "<br/><br/>")))
}
