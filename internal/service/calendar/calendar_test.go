package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/kinetic-booking/internal/domain"
	"github.com/m04kA/kinetic-booking/internal/service/availability"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func TestGenerate_January2026(t *testing.T) {
	rules := availability.NewRulesWithClock(time.Sunday, nil, time.UTC,
		fixedClock{now: time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)})
	svc := NewService(rules)

	days := svc.Generate(domain.BookingPeriod{Year: 2026, Month: time.January})

	require.Len(t, days, 35)
	for i := 0; i < 4; i++ {
		assert.True(t, days[i].Empty, "cell %d", i)
		assert.False(t, days[i].Selectable())
	}
	for i, d := range days[4:] {
		assert.False(t, d.Empty)
		assert.Equal(t, i+1, d.Day)
	}

	// 1 число попадает в колонку четверга
	assert.Equal(t, 1, days[4].Day)

	day15 := days[4+14]
	assert.Equal(t, 15, day15.Day)
	assert.True(t, day15.Selectable())

	day4 := days[4+3]
	assert.True(t, day4.IsClosedWeekday)
	assert.True(t, day4.IsPast)

	day9 := days[4+8]
	assert.True(t, day9.IsPast)
	assert.False(t, day9.IsClosedWeekday)
}

func TestGenerate_LeadingCells(t *testing.T) {
	rules := availability.NewRulesWithClock(time.Sunday, nil, time.UTC,
		fixedClock{now: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)})
	svc := NewService(rules)

	tests := []struct {
		name    string
		period  domain.BookingPeriod
		leading int
		total   int
	}{
		// 1 февраля 2026 воскресенье
		{name: "starts on sunday", period: domain.BookingPeriod{Year: 2026, Month: time.February}, leading: 0, total: 28},
		// 1 августа 2026 суббота
		{name: "starts on saturday", period: domain.BookingPeriod{Year: 2026, Month: time.August}, leading: 6, total: 37},
		// 1 февраля 2028 вторник, високосный год
		{name: "leap february", period: domain.BookingPeriod{Year: 2028, Month: time.February}, leading: 2, total: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := svc.Generate(tt.period)
			require.Len(t, days, tt.total)

			empty := 0
			for _, d := range days {
				if d.Empty {
					empty++
				}
			}
			assert.Equal(t, tt.leading, empty)
			assert.Equal(t, 1, days[tt.leading].Day)
			assert.Equal(t, tt.period.DaysInMonth(), days[len(days)-1].Day)
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	rules := availability.NewRulesWithClock(time.Sunday, nil, time.UTC,
		fixedClock{now: time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)})
	svc := NewService(rules)
	period := domain.BookingPeriod{Year: 2026, Month: time.January}

	assert.Equal(t, svc.Generate(period), svc.Generate(period))
}
