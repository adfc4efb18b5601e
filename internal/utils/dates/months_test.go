package dates_test

import (
	"testing"
	"time"

	"github.com/finassoc/association_finance_app/internal/utils/dates"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"simple advance", date(2025, time.March, 15), 1, date(2025, time.April, 15)},
		{"jan 31 clamps to feb 28", date(2025, time.January, 31), 1, date(2025, time.February, 28)},
		{"jan 31 clamps to feb 29 in leap year", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"jan 31 plus two months keeps day 31", date(2025, time.January, 31), 2, date(2025, time.March, 31)},
		{"jan 31 plus three months clamps to apr 30", date(2025, time.January, 31), 3, date(2025, time.April, 30)},
		{"may 31 clamps to jun 30", date(2025, time.May, 31), 1, date(2025, time.June, 30)},
		{"feb 29 plus a year clamps to feb 28", date(2024, time.February, 29), 12, date(2025, time.February, 28)},
		{"year rollover", date(2025, time.November, 30), 3, date(2026, time.February, 28)},
		{"multi-year advance", date(2025, time.January, 15), 25, date(2027, time.February, 15)},
		{"zero months is identity", date(2025, time.July, 31), 0, date(2025, time.July, 31)},
		{"negative month goes back", date(2025, time.March, 31), -1, date(2025, time.February, 28)},
		{"negative across year boundary", date(2025, time.January, 15), -2, date(2024, time.November, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dates.AddMonths(tt.start, tt.months)
			assert.True(t, got.Equal(tt.want), "AddMonths(%v, %d) = %v, want %v", tt.start, tt.months, got, tt.want)
		})
	}
}

func TestAddMonthsOffsetsFromOrigin(t *testing.T) {
	// Installment schedules offset each installment from the template date,
	// so a clamped month must not shorten later installments.
	start := date(2025, time.January, 31)

	assert.Equal(t, date(2025, time.February, 28), dates.AddMonths(start, 1))
	assert.Equal(t, date(2025, time.March, 31), dates.AddMonths(start, 2))
	assert.Equal(t, date(2025, time.April, 30), dates.AddMonths(start, 3))
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, dates.DaysIn(2025, time.January))
	assert.Equal(t, 28, dates.DaysIn(2025, time.February))
	assert.Equal(t, 29, dates.DaysIn(2024, time.February))
	assert.Equal(t, 30, dates.DaysIn(2025, time.April))
	assert.Equal(t, 29, dates.DaysIn(2000, time.February))
	assert.Equal(t, 28, dates.DaysIn(1900, time.February))
}
