package utils

import (
	"spectrum-sense-service/internal/pkg/constvars"
	"time"
)

// AgeInMonths counts whole months between dateOfBirth and now. A month only
// counts once its day of month has been reached, so a child born on the 20th
// is still one month short on the 19th. Dates in the future give 0.
//
// Both values are reduced to calendar dates in their own location first, so
// a UTC date of birth compares against the day now falls on where it was
// taken.
func AgeInMonths(dateOfBirth, now time.Time) int {
	birthYear, birthMonth, birthDay := dateOfBirth.Date()
	year, month, day := now.Date()

	months := (year-birthYear)*12 + int(month-birthMonth)
	if day < birthDay {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// ParseDate reads a calendar date as UTC midnight, which is how dates of
// birth are stored and how mongo-driver decodes them.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(constvars.DateLayoutISO, value, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(constvars.DateLayoutISO)
}
