package domain

import "time"

// ISOWeekRange returns the Monday and Sunday of the given ISO week.
func ISOWeekRange(year, week int) (time.Time, time.Time) {
	// January 4th is always in ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	wd := int(jan4.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := jan4.AddDate(0, 0, -(wd-1)+(week-1)*7)
	return monday, monday.AddDate(0, 0, 6)
}

// ISOYearRange returns the first Monday and last Sunday of an ISO year.
func ISOYearRange(year int) (time.Time, time.Time) {
	first, _ := ISOWeekRange(year, 1)
	next, _ := ISOWeekRange(year+1, 1)
	return first, next.AddDate(0, 0, -1)
}

// WeeksInISOYear returns 52 or 53.
func WeeksInISOYear(year int) int {
	_, w := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}
