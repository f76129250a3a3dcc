package calendar_test

import (
	"testing"
	"time"

	"bracelet/internal/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFourPillarsEpochAnchor(t *testing.T) {
	// 1900-01-01 is the day-pillar epoch: stem 0, branch 0 (甲子).
	p, err := calendar.ComputeFourPillars(1900, 1, 1, 0, false)
	require.NoError(t, err)

	assert.Equal(t, "甲子", p.Day.String())
	// January counts as the previous solar-term year (1899, 己亥).
	assert.Equal(t, "己亥", p.Year.String())
	// The first double-hour of a 甲 day is 甲子.
	assert.Equal(t, "甲子", p.Hour.String())
}

func TestDayPillarSixtyDayCycle(t *testing.T) {
	starts := []calendar.SolarDate{
		{Year: 1900, Month: 1, Day: 1},
		{Year: 1955, Month: 6, Day: 17},
		{Year: 2000, Month: 2, Day: 29},
		{Year: 2077, Month: 11, Day: 3},
	}
	for _, d := range starts {
		base, err := calendar.ComputeFourPillars(d.Year, d.Month, d.Day, 12, false)
		require.NoError(t, err)

		next := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 60)
		shifted, err := calendar.ComputeFourPillars(next.Year(), int(next.Month()), next.Day(), 12, false)
		require.NoError(t, err)

		assert.Equal(t, base.Day, shifted.Day, "60 days after %v", d)
	}
}

func TestYearPillarStableAcrossNewYear(t *testing.T) {
	// Jan 1 through Feb 3 belong to the previous solar-term year.
	prev, err := calendar.ComputeFourPillars(2023, 12, 31, 12, false)
	require.NoError(t, err)

	for _, d := range []calendar.SolarDate{
		{Year: 2024, Month: 1, Day: 1},
		{Year: 2024, Month: 1, Day: 20},
		{Year: 2024, Month: 2, Day: 3},
	} {
		p, err := calendar.ComputeFourPillars(d.Year, d.Month, d.Day, 12, false)
		require.NoError(t, err)
		assert.Equal(t, prev.Year, p.Year, "date %v", d)
	}

	// Feb 4 rolls over to the new year pillar.
	rolled, err := calendar.ComputeFourPillars(2024, 2, 4, 12, false)
	require.NoError(t, err)
	assert.NotEqual(t, prev.Year, rolled.Year)
}

func TestHourPillarWindowBoundary(t *testing.T) {
	// 23:00 and 00:00 share the 子 window.
	late, err := calendar.ComputeFourPillars(2024, 5, 20, 23, false)
	require.NoError(t, err)
	early, err := calendar.ComputeFourPillars(2024, 5, 20, 0, false)
	require.NoError(t, err)
	assert.Equal(t, late.Hour.Branch, early.Hour.Branch)
	assert.Equal(t, "子", early.Hour.Branch)

	// Windows open on odd hours: 01:00 is already 丑.
	next, err := calendar.ComputeFourPillars(2024, 5, 20, 1, false)
	require.NoError(t, err)
	assert.Equal(t, "丑", next.Hour.Branch)
}

func TestHourStemFollowsDayStem(t *testing.T) {
	p, err := calendar.ComputeFourPillars(1900, 1, 1, 13, false)
	require.NoError(t, err)
	// 甲 day, 未 window (13:00-14:59): stem = (0*2 + 7) mod 10 = 辛.
	assert.Equal(t, "辛未", p.Hour.String())
}

func TestFourPillarsLunarInput(t *testing.T) {
	// Lunar 1999-11-25 is solar 2000-01-01; both inputs must agree.
	fromLunar, err := calendar.ComputeFourPillars(1999, 11, 25, 8, true)
	require.NoError(t, err)
	fromSolar, err := calendar.ComputeFourPillars(2000, 1, 1, 8, false)
	require.NoError(t, err)
	assert.Equal(t, fromSolar, fromLunar)
}

func TestFourPillarsInvalidInput(t *testing.T) {
	_, err := calendar.ComputeFourPillars(2023, 2, 30, 12, false)
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)

	_, err = calendar.ComputeFourPillars(2002, 13, 1, 12, true)
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
}

func TestElementsOrderAndDedup(t *testing.T) {
	p := calendar.FourPillars{
		Year:  calendar.Pillar{Stem: "甲", Branch: "子"},
		Month: calendar.Pillar{Stem: "丙", Branch: "寅"},
		Day:   calendar.Pillar{Stem: "戊", Branch: "辰"},
		Hour:  calendar.Pillar{Stem: "庚", Branch: "午"},
	}
	assert.Equal(t, []string{"木", "水", "火", "土", "金"}, calendar.Elements(p))

	uniform := calendar.FourPillars{
		Year:  calendar.Pillar{Stem: "壬", Branch: "子"},
		Month: calendar.Pillar{Stem: "癸", Branch: "亥"},
		Day:   calendar.Pillar{Stem: "壬", Branch: "子"},
		Hour:  calendar.Pillar{Stem: "癸", Branch: "亥"},
	}
	assert.Equal(t, []string{"水"}, calendar.Elements(uniform))
}
