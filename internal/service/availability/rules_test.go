package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/kinetic-booking/internal/domain"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fullDays map[int]bool

func (f fullDays) IsFullyBooked(date time.Time) bool { return f[date.Day()] }

func (f fullDays) IsSlotBooked(date time.Time, _ domain.TimeSlot) bool { return f[date.Day()] }

func newTestRules(now time.Time) *Rules {
	return NewRulesWithClock(time.Sunday, nil, time.UTC, fixedClock{now: now})
}

func TestRules_PastDateExclusion(t *testing.T) {
	// день среды, 14 января 2026
	rules := newTestRules(time.Date(2026, time.January, 14, 15, 30, 0, 0, time.UTC))
	period := domain.BookingPeriod{Year: 2026, Month: time.January}

	for day := 1; day < 14; day++ {
		assert.True(t, rules.IsPastDate(period.Year, period.Month, day), "day %d", day)
		assert.False(t, rules.IsSelectable(period.Year, period.Month, day), "day %d", day)
	}

	// сегодняшний день не прошедший, хотя полночь уже прошла
	assert.False(t, rules.IsPastDate(period.Year, period.Month, 14))
	assert.True(t, rules.IsSelectable(period.Year, period.Month, 14))
	assert.False(t, rules.IsPastDate(period.Year, period.Month, 31))
}

func TestRules_ClosedWeekdayExclusion(t *testing.T) {
	rules := newTestRules(time.Date(2025, time.December, 1, 9, 0, 0, 0, time.UTC))
	period := domain.BookingPeriod{Year: 2026, Month: time.January}

	// воскресенья января 2026
	for _, day := range []int{4, 11, 18, 25} {
		assert.True(t, rules.IsClosedWeekday(period.Year, period.Month, day), "day %d", day)
		assert.False(t, rules.IsSelectable(period.Year, period.Month, day), "day %d", day)
	}

	assert.False(t, rules.IsClosedWeekday(period.Year, period.Month, 15))
	assert.True(t, rules.IsSelectable(period.Year, period.Month, 15))
}

func TestRules_ClosedWeekdayIndependentOfPast(t *testing.T) {
	rules := newTestRules(time.Date(2026, time.January, 20, 9, 0, 0, 0, time.UTC))

	// 11 января одновременно прошедший день и воскресенье
	assert.True(t, rules.IsPastDate(2026, time.January, 11))
	assert.True(t, rules.IsClosedWeekday(2026, time.January, 11))
	// 25 января будущее воскресенье
	assert.False(t, rules.IsPastDate(2026, time.January, 25))
	assert.True(t, rules.IsClosedWeekday(2026, time.January, 25))
	assert.False(t, rules.IsSelectable(2026, time.January, 25))
}

func TestRules_ConfiguredClosedWeekday(t *testing.T) {
	rules := NewRulesWithClock(time.Monday, nil, time.UTC,
		fixedClock{now: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)})

	assert.True(t, rules.IsClosedWeekday(2026, time.January, 5))
	assert.False(t, rules.IsClosedWeekday(2026, time.January, 4))
}

func TestRules_FullyBookedAlwaysFalseByDefault(t *testing.T) {
	rules := newTestRules(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC))

	for day := 1; day <= 31; day++ {
		assert.False(t, rules.IsFullyBooked(2026, time.January, day))
		assert.False(t, rules.IsSlotBooked(2026, time.January, day, domain.DefaultSlots[0]))
	}
}

func TestRules_CapacityPolicyHook(t *testing.T) {
	rules := NewRulesWithClock(time.Sunday, fullDays{16: true}, time.UTC,
		fixedClock{now: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)})

	assert.True(t, rules.IsFullyBooked(2026, time.January, 16))
	assert.False(t, rules.IsSelectable(2026, time.January, 16))
	assert.True(t, rules.IsSelectable(2026, time.January, 15))
}

func TestRules_TimezoneNormalization(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*60*60)
	// 03:00 UTC 15 января это еще 14 января в UTC-8
	rules := NewRulesWithClock(time.Sunday, nil, loc,
		fixedClock{now: time.Date(2026, time.January, 15, 3, 0, 0, 0, time.UTC)})

	assert.False(t, rules.IsPastDate(2026, time.January, 14))
	assert.True(t, rules.IsPastDate(2026, time.January, 13))
}

func TestRules_Classify(t *testing.T) {
	rules := newTestRules(time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC))
	period := domain.BookingPeriod{Year: 2026, Month: time.January}

	assert.Equal(t, domain.CalendarDay{Day: 9, IsPast: true}, rules.Classify(period, 9))
	assert.Equal(t, domain.CalendarDay{Day: 11, IsClosedWeekday: true}, rules.Classify(period, 11))
	assert.Equal(t, domain.CalendarDay{Day: 15}, rules.Classify(period, 15))

	outside := rules.Classify(period, 32)
	assert.False(t, outside.Selectable())
}
