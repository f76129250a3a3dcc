package calendar_test

import (
	"testing"

	"bracelet/internal/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolarToLunarKnownDate(t *testing.T) {
	lunar, zodiac, err := calendar.SolarToLunar(calendar.SolarDate{Year: 2000, Month: 1, Day: 1})
	require.NoError(t, err)

	assert.Equal(t, calendar.LunarDate{Year: 1999, Month: 11, Day: 25}, lunar)
	assert.Equal(t, "1999年11月25日", lunar.String())
	assert.Equal(t, "龙", zodiac)
}

func TestSolarToLunarInvalid(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
	}{
		{"february 30th", 2023, 2, 30},
		{"month 13", 2023, 13, 1},
		{"day zero", 2023, 5, 0},
		{"before table range", 1900, 1, 15},
		{"after table range", 2101, 2, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := calendar.SolarToLunar(calendar.SolarDate{Year: tc.year, Month: tc.month, Day: tc.day})
			assert.ErrorIs(t, err, calendar.ErrInvalidDate)
		})
	}
}

func TestLunarToSolarValidation(t *testing.T) {
	// 2004 has a leap second month of 29 days; 2002 has no leap month.
	tests := []struct {
		name    string
		date    calendar.LunarDate
		wantErr bool
	}{
		{"regular date", calendar.LunarDate{Year: 1999, Month: 11, Day: 25}, false},
		{"leap month exists", calendar.LunarDate{Year: 2004, Month: 2, Day: 1, IsLeapMonth: true}, false},
		{"leap month day 29", calendar.LunarDate{Year: 2004, Month: 2, Day: 29, IsLeapMonth: true}, false},
		{"leap month overflow", calendar.LunarDate{Year: 2004, Month: 2, Day: 30, IsLeapMonth: true}, true},
		{"leap month absent", calendar.LunarDate{Year: 2002, Month: 2, Day: 1, IsLeapMonth: true}, true},
		{"wrong leap position", calendar.LunarDate{Year: 2004, Month: 5, Day: 1, IsLeapMonth: true}, true},
		{"year below range", calendar.LunarDate{Year: 1899, Month: 1, Day: 1}, true},
		{"year above range", calendar.LunarDate{Year: 2101, Month: 1, Day: 1}, true},
		{"month 13", calendar.LunarDate{Year: 2000, Month: 13, Day: 1}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := calendar.LunarToSolar(tc.date)
			if tc.wantErr {
				assert.ErrorIs(t, err, calendar.ErrInvalidDate)
				assert.False(t, calendar.IsValidLunarDate(tc.date.Year, tc.date.Month, tc.date.Day, tc.date.IsLeapMonth))
			} else {
				assert.NoError(t, err)
				assert.True(t, calendar.IsValidLunarDate(tc.date.Year, tc.date.Month, tc.date.Day, tc.date.IsLeapMonth))
			}
		})
	}
}

func TestSolarLunarRoundTrip(t *testing.T) {
	dates := []calendar.SolarDate{
		{Year: 1900, Month: 1, Day: 31},
		{Year: 1949, Month: 10, Day: 1},
		{Year: 1984, Month: 2, Day: 2},
		{Year: 2000, Month: 1, Day: 1},
		{Year: 2004, Month: 3, Day: 21}, // inside the 2004 leap month
		{Year: 2024, Month: 2, Day: 10},
		{Year: 2033, Month: 12, Day: 25}, // 2033 leap 11th month year
		{Year: 2100, Month: 12, Day: 31},
	}
	for _, d := range dates {
		lunar, _, err := calendar.SolarToLunar(d)
		require.NoError(t, err, "solar %v", d)

		back, err := calendar.LunarToSolar(lunar)
		require.NoError(t, err, "lunar %v", lunar)
		assert.Equal(t, d, back, "round trip through %v", lunar)
	}
}

func TestLunarNewYearBoundary(t *testing.T) {
	// 1900-01-31 is lunar 1900-01-01, the table's zero point.
	lunar, _, err := calendar.SolarToLunar(calendar.SolarDate{Year: 1900, Month: 1, Day: 31})
	require.NoError(t, err)
	assert.Equal(t, calendar.LunarDate{Year: 1900, Month: 1, Day: 1}, lunar)
}

func TestIsValidSolarDate(t *testing.T) {
	assert.True(t, calendar.IsValidSolarDate(2024, 2, 29))
	assert.False(t, calendar.IsValidSolarDate(2023, 2, 29))
	assert.False(t, calendar.IsValidSolarDate(2023, 4, 31))
	assert.False(t, calendar.IsValidSolarDate(2023, 0, 10))
}

func TestZodiacPeriodicity(t *testing.T) {
	for year := 1900; year <= 2088; year += 7 {
		assert.Equal(t, calendar.Zodiac(year), calendar.Zodiac(year+12), "year %d", year)
	}
	assert.Equal(t, "鼠", calendar.Zodiac(1900))
	assert.Equal(t, "龙", calendar.Zodiac(2000))
}
