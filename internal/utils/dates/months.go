// Package dates provides calendar arithmetic for installment scheduling.
package dates

import "time"

// AddMonths advances t by the given number of calendar months, preserving the
// day of month where possible and clamping to the last day of the target
// month otherwise. Unlike time.Time.AddDate, Jan 31 plus one month yields
// Feb 28 (or Feb 29 in a leap year), never Mar 3.
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	// Normalize the target year/month first, then clamp the day.
	m := int(month) - 1 + months
	year += m / 12
	m = m % 12
	if m < 0 {
		m += 12
		year--
	}
	targetMonth := time.Month(m + 1)

	if last := DaysIn(year, targetMonth); day > last {
		day = last
	}

	h, min, sec := t.Clock()
	return time.Date(year, targetMonth, day, h, min, sec, t.Nanosecond(), t.Location())
}

// DaysIn reports the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
