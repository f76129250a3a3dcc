package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned for dates that do not exist on the Gregorian
// calendar, lunar dates that do not exist in the lunisolar table, and dates
// outside the supported 1900–2100 range.
var ErrInvalidDate = errors.New("invalid date")

// SolarDate is a Gregorian calendar date.
type SolarDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// LunarDate is a date on the traditional lunisolar calendar.
type LunarDate struct {
	Year        int  `json:"year"`
	Month       int  `json:"month"`
	Day         int  `json:"day"`
	IsLeapMonth bool `json:"isLeapMonth"`
}

// String renders the date the traditional way, e.g. 1999年闰11月25日.
func (d LunarDate) String() string {
	leap := ""
	if d.IsLeapMonth {
		leap = "闰"
	}
	return fmt.Sprintf("%d年%s%d月%d日", d.Year, leap, d.Month, d.Day)
}

// Supported lunar-year range of the embedded table.
const (
	minLunarYear = 1900
	maxLunarYear = 2100
)

// lunarNewYear1900 is the solar date of lunar 1900-01-01, the zero point of
// the conversion offsets.
var lunarNewYear1900 = time.Date(1900, 1, 31, 0, 0, 0, 0, time.UTC)

// lunarYearInfo encodes each lunar year 1900–2100 in a bitmask:
// bits 15..4 flag the 30-day months 1..12, the low nibble is the leap-month
// number (0 for none) and bit 16 flags a 30-day leap month. The values are a
// fixed reference table; changing any entry changes observable output.
var lunarYearInfo = [201]int{
	0x04bd8, 0x04ae0, 0x0a570, 0x054d5, 0x0d260, 0x0d950, 0x16554, 0x056a0, 0x09ad0, 0x055d2, // 1900-1909
	0x04ae0, 0x0a5b6, 0x0a4d0, 0x0d250, 0x1d255, 0x0b540, 0x0d6a0, 0x0ada2, 0x095b0, 0x14977, // 1910-1919
	0x04970, 0x0a4b0, 0x0b4b5, 0x06a50, 0x06d40, 0x1ab54, 0x02b60, 0x09570, 0x052f2, 0x04970, // 1920-1929
	0x06566, 0x0d4a0, 0x0ea50, 0x06e95, 0x05ad0, 0x02b60, 0x186e3, 0x092e0, 0x1c8d7, 0x0c950, // 1930-1939
	0x0d4a0, 0x1d8a6, 0x0b550, 0x056a0, 0x1a5b4, 0x025d0, 0x092d0, 0x0d2b2, 0x0a950, 0x0b557, // 1940-1949
	0x06ca0, 0x0b550, 0x15355, 0x04da0, 0x0a5b0, 0x14573, 0x052b0, 0x0a9a8, 0x0e950, 0x06aa0, // 1950-1959
	0x0aea6, 0x0ab50, 0x04b60, 0x0aae4, 0x0a570, 0x05260, 0x0f263, 0x0d950, 0x05b57, 0x056a0, // 1960-1969
	0x096d0, 0x04dd5, 0x04ad0, 0x0a4d0, 0x0d4d4, 0x0d250, 0x0d558, 0x0b540, 0x0b5a0, 0x195a6, // 1970-1979
	0x095b0, 0x049b0, 0x0a974, 0x0a4b0, 0x0b27a, 0x06a50, 0x06d40, 0x0af46, 0x0ab60, 0x09570, // 1980-1989
	0x04af5, 0x04970, 0x064b0, 0x074a3, 0x0ea50, 0x06b58, 0x05ac0, 0x0ab60, 0x096d5, 0x092e0, // 1990-1999
	0x0c960, 0x0d954, 0x0d4a0, 0x0da50, 0x07552, 0x056a0, 0x0abb7, 0x025d0, 0x092d0, 0x0cab5, // 2000-2009
	0x0a950, 0x0b4a0, 0x0baa4, 0x0ad50, 0x055d9, 0x04ba0, 0x0a5b0, 0x15176, 0x052b0, 0x0a930, // 2010-2019
	0x07954, 0x06aa0, 0x0ad50, 0x05b52, 0x04b60, 0x0a6e6, 0x0a4e0, 0x0d260, 0x0ea65, 0x0d530, // 2020-2029
	0x05aa0, 0x076a3, 0x096d0, 0x04afb, 0x04ad0, 0x0a4d0, 0x1d0b6, 0x0d250, 0x0d520, 0x0dd45, // 2030-2039
	0x0b5a0, 0x056d0, 0x055b2, 0x049b0, 0x0a577, 0x0a4b0, 0x0aa50, 0x1b255, 0x06d20, 0x0ada0, // 2040-2049
	0x14b63, 0x09370, 0x049f8, 0x04970, 0x064b0, 0x168a6, 0x0ea50, 0x06b20, 0x1a6c4, 0x0aae0, // 2050-2059
	0x0a2e0, 0x0d2e3, 0x0c960, 0x0d557, 0x0d4a0, 0x0da50, 0x05d55, 0x056a0, 0x0a6d0, 0x055d4, // 2060-2069
	0x052d0, 0x0a9b8, 0x0a950, 0x0b4a0, 0x0b6a6, 0x0ad50, 0x055a0, 0x0aba4, 0x0a5b0, 0x052b0, // 2070-2079
	0x0b273, 0x06930, 0x07337, 0x06aa0, 0x0ad50, 0x14b55, 0x04b60, 0x0a570, 0x054e4, 0x0d160, // 2080-2089
	0x0e968, 0x0d520, 0x0daa0, 0x16aa6, 0x056d0, 0x04ae0, 0x0a9d4, 0x0a2d0, 0x0d150, 0x0f252, // 2090-2099
	0x0d520, // 2100
}

func yearInfo(year int) int { return lunarYearInfo[year-minLunarYear] }

// leapMonth returns the leap month of a lunar year, 0 when it has none.
func leapMonth(year int) int { return yearInfo(year) & 0xf }

// leapMonthDays returns the length of the leap month, 0 when there is none.
func leapMonthDays(year int) int {
	if leapMonth(year) == 0 {
		return 0
	}
	if yearInfo(year)&0x10000 != 0 {
		return 30
	}
	return 29
}

// lunarMonthDays returns the length of regular month m (1..12) of a lunar year.
func lunarMonthDays(year, month int) int {
	if yearInfo(year)&(0x10000>>uint(month)) != 0 {
		return 30
	}
	return 29
}

// lunarYearDays returns the total day count of a lunar year, leap month
// included.
func lunarYearDays(year int) int {
	sum := 348
	for mask := 0x8000; mask > 0x8; mask >>= 1 {
		if yearInfo(year)&mask != 0 {
			sum++
		}
	}
	return sum + leapMonthDays(year)
}

// IsValidSolarDate reports whether the date exists on the Gregorian calendar.
func IsValidSolarDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// IsValidLunarDate reports whether the lunar date exists in the table,
// including leap-month placement and month length.
func IsValidLunarDate(year, month, day int, isLeapMonth bool) bool {
	_, err := LunarToSolar(LunarDate{Year: year, Month: month, Day: day, IsLeapMonth: isLeapMonth})
	return err == nil
}

// SolarToLunar converts a solar date to its lunar date and zodiac animal.
func SolarToLunar(d SolarDate) (LunarDate, string, error) {
	if !IsValidSolarDate(d.Year, d.Month, d.Day) {
		return LunarDate{}, "", fmt.Errorf("%w: 无效的阳历日期 %d-%d-%d", ErrInvalidDate, d.Year, d.Month, d.Day)
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	offset := int(t.Sub(lunarNewYear1900).Hours() / 24)
	if offset < 0 {
		return LunarDate{}, "", fmt.Errorf("%w: 日期早于支持范围 (1900年1月31日)", ErrInvalidDate)
	}

	year := minLunarYear
	for year <= maxLunarYear && offset >= lunarYearDays(year) {
		offset -= lunarYearDays(year)
		year++
	}
	if year > maxLunarYear {
		return LunarDate{}, "", fmt.Errorf("%w: 日期晚于支持范围 (2100年)", ErrInvalidDate)
	}

	leap := leapMonth(year)
	isLeap := false
	month := 1
	var days int
	for ; month <= 12 && offset > 0; month++ {
		if leap > 0 && month == leap+1 && !isLeap {
			month--
			isLeap = true
			days = leapMonthDays(year)
		} else {
			days = lunarMonthDays(year, month)
		}
		if isLeap && month == leap+1 {
			isLeap = false
		}
		offset -= days
	}
	// Landing exactly on the first day of the leap month, or overshooting
	// into the previous month, needs the canonical fixups.
	if offset == 0 && leap > 0 && month == leap+1 {
		if isLeap {
			isLeap = false
		} else {
			isLeap = true
			month--
		}
	}
	if offset < 0 {
		offset += days
		month--
	}

	lunar := LunarDate{Year: year, Month: month, Day: offset + 1, IsLeapMonth: isLeap}
	return lunar, Zodiac(d.Year), nil
}

// LunarToSolar converts a lunar date back to the solar calendar. The date is
// validated against the table: a leap month must exist in that year and the
// day must fit the actual month length.
func LunarToSolar(d LunarDate) (SolarDate, error) {
	if d.Year < minLunarYear || d.Year > maxLunarYear || d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return SolarDate{}, fmt.Errorf("%w: 无效的阴历日期 %s", ErrInvalidDate, d)
	}
	if d.IsLeapMonth {
		if leapMonth(d.Year) != d.Month || d.Day > leapMonthDays(d.Year) {
			return SolarDate{}, fmt.Errorf("%w: 无效的阴历日期 %s", ErrInvalidDate, d)
		}
	} else if d.Day > lunarMonthDays(d.Year, d.Month) {
		return SolarDate{}, fmt.Errorf("%w: 无效的阴历日期 %s", ErrInvalidDate, d)
	}

	offset := 0
	for y := minLunarYear; y < d.Year; y++ {
		offset += lunarYearDays(y)
	}
	leap := leapMonth(d.Year)
	for m := 1; m < d.Month; m++ {
		offset += lunarMonthDays(d.Year, m)
		if m == leap {
			offset += leapMonthDays(d.Year)
		}
	}
	// The leap month follows its regular month.
	if d.IsLeapMonth {
		offset += lunarMonthDays(d.Year, d.Month)
	}
	offset += d.Day - 1

	t := lunarNewYear1900.AddDate(0, 0, offset)
	return SolarDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}
