package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	hebrewDayPrefixRe = regexp.MustCompile(`^[א-ת]'?\s*`)
	dottedDateRe      = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{2,4})$`)
	clockRe           = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// ParseLabDate reads schedule dates as stored by the department: dd.mm.yy or
// dd.mm.yyyy, optionally prefixed with a Hebrew day letter ("א' 9.11.25").
// Two-digit years are taken as 20xx. Falls back to RFC 3339 / ISO dates.
func ParseLabDate(dateStr string) (time.Time, bool) {
	clean := strings.TrimSpace(hebrewDayPrefixRe.ReplaceAllString(strings.TrimSpace(dateStr), ""))
	if clean == "" {
		return time.Time{}, false
	}

	if m := dottedDateRe.FindStringSubmatch(clean); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			year += 2000
		}
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, false
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, clean, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseTimeToMinutes converts "HH:MM" to minutes since midnight.
func ParseTimeToMinutes(timeStr string) (int, bool) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(timeStr))
	if m == nil {
		return 0, false
	}
	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	if hh > 23 || mm > 59 {
		return 0, false
	}
	return hh*60 + mm, true
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsLabToday reports whether the lab date falls on now's calendar day.
func IsLabToday(dateStr string, now time.Time) bool {
	d, ok := ParseLabDate(dateStr)
	return ok && sameDay(d, now)
}

// IsLabTomorrow reports whether the lab date falls on the day after now.
func IsLabTomorrow(dateStr string, now time.Time) bool {
	d, ok := ParseLabDate(dateStr)
	return ok && sameDay(d, now.AddDate(0, 0, 1))
}

// IsLabThisWeek reports whether the lab date falls inside the calendar week
// containing now. Weeks start on Sunday, matching the Israeli academic week.
func IsLabThisWeek(dateStr string, now time.Time) bool {
	d, ok := ParseLabDate(dateStr)
	if !ok {
		return false
	}
	y, m, day := now.Date()
	start := time.Date(y, m, day, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -int(now.Weekday()))
	end := start.AddDate(0, 0, 7)
	return !d.Before(start) && d.Before(end)
}

// LabDateTime combines a lab's date and start time into one instant. When the
// time column is missing or malformed the date alone (midnight) is used.
func LabDateTime(dateStr, timeStr string) (time.Time, bool) {
	d, ok := ParseLabDate(dateStr)
	if !ok {
		return time.Time{}, false
	}
	if mins, ok := ParseTimeToMinutes(timeStr); ok {
		return d.Add(time.Duration(mins) * time.Minute), true
	}
	return d, true
}
