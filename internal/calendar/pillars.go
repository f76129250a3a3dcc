package calendar

import (
	"fmt"
	"time"
)

// Pillar is one stem-branch pair of the sexagenary cycle.
type Pillar struct {
	Stem   string `json:"stem"`
	Branch string `json:"branch"`
}

// String renders the pair as the usual two-character ganzhi, e.g. 甲子.
func (p Pillar) String() string { return p.Stem + p.Branch }

// FourPillars is the complete ganzhi encoding of a birth moment.
type FourPillars struct {
	Year  Pillar `json:"year"`
	Month Pillar `json:"month"`
	Day   Pillar `json:"day"`
	Hour  Pillar `json:"hour"`
}

// dayPillarEpoch is the fixed reference date of the day-pillar arithmetic,
// defined as stem 0 / branch 0 (甲子). The +10/+12 offsets below calibrate
// index 0 onto this date and are part of the contract.
var dayPillarEpoch = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// monthBoundaries[m] is the day of solar month m on which the governing
// solar term approximately falls; days before it belong to the previous
// pillar month. Index 0 is unused. Fixed approximations, not ephemeris.
var monthBoundaries = [13]int{0, 6, 4, 6, 5, 6, 6, 7, 8, 8, 8, 7, 7}

// hourBranchTable maps an hour of day to its double-hour branch. Windows
// open on odd hours, so 23:00 and 00:00 both fall in the 子 window.
var hourBranchTable = [24]int{
	0,          // 00
	1, 1,       // 01-02
	2, 2,       // 03-04
	3, 3,       // 05-06
	4, 4,       // 07-08
	5, 5,       // 09-10
	6, 6,       // 11-12
	7, 7,       // 13-14
	8, 8,       // 15-16
	9, 9,       // 17-18
	10, 10,     // 19-20
	11, 11,     // 21-22
	0,          // 23
}

// ComputeFourPillars derives the year, month, day and hour pillars for a
// birth moment. Lunar input is first normalized to the solar calendar;
// invalid dates surface ErrInvalidDate.
func ComputeFourPillars(year, month, day, hour int, isLunar bool) (FourPillars, error) {
	solar := SolarDate{Year: year, Month: month, Day: day}
	if isLunar {
		var err error
		solar, err = LunarToSolar(LunarDate{Year: year, Month: month, Day: day})
		if err != nil {
			return FourPillars{}, err
		}
	} else if !IsValidSolarDate(year, month, day) {
		return FourPillars{}, fmt.Errorf("%w: 无效的阳历日期 %d-%d-%d", ErrInvalidDate, year, month, day)
	}

	// Year pillar. The year boundary is 立春, approximated as Feb 4: dates
	// before it count as the previous year.
	yearOffset := 0
	if solar.Month == 1 || (solar.Month == 2 && solar.Day < 4) {
		yearOffset = -1
	}
	yearStemIdx := mod(solar.Year+yearOffset-4, 10)
	yearBranchIdx := mod(solar.Year+yearOffset-4, 12)

	// Month pillar. Which stem opens month 1 is fixed by the year stem's
	// position in its five-pair group, then stems advance one per month.
	monthOffset := 0
	if solar.Day < monthBoundaries[solar.Month] {
		monthOffset = -1
	}
	monthIdx := mod(solar.Month+monthOffset-1, 12)
	if monthIdx <= 0 {
		monthIdx += 12
	}
	monthStemIdx := mod((yearStemIdx%5)*2+monthIdx+1, 10)
	monthBranchIdx := mod(monthIdx+1, 12)

	// Day pillar: straight day-count arithmetic from the 甲子 epoch.
	t := time.Date(solar.Year, time.Month(solar.Month), solar.Day, 0, 0, 0, 0, time.UTC)
	daysSinceEpoch := int(t.Sub(dayPillarEpoch).Hours() / 24)
	dayStemIdx := mod(daysSinceEpoch+10, 10)
	dayBranchIdx := mod(daysSinceEpoch+12, 12)

	// Hour pillar: the first window's stem follows the day stem, then one
	// per window.
	hourBranchIdx := hourBranchTable[mod(hour, 24)]
	hourStemIdx := mod(dayStemIdx*2+hourBranchIdx, 10)

	return FourPillars{
		Year:  Pillar{Stem: heavenlyStems[yearStemIdx], Branch: earthlyBranches[yearBranchIdx]},
		Month: Pillar{Stem: heavenlyStems[monthStemIdx], Branch: earthlyBranches[monthBranchIdx]},
		Day:   Pillar{Stem: heavenlyStems[dayStemIdx], Branch: earthlyBranches[dayBranchIdx]},
		Hour:  Pillar{Stem: heavenlyStems[hourStemIdx], Branch: earthlyBranches[hourBranchIdx]},
	}, nil
}

// Elements maps every stem and branch of the four pillars through the element
// table, preserving first-seen order and suppressing duplicates. At most the
// five elements come back.
func Elements(p FourPillars) []string {
	seen := make(map[string]bool, 5)
	out := make([]string, 0, 5)
	for _, pillar := range []Pillar{p.Year, p.Month, p.Day, p.Hour} {
		for _, symbol := range []string{pillar.Stem, pillar.Branch} {
			if e, ok := fiveElements[symbol]; ok && !seen[e] {
				seen[e] = true
				out = append(out, e)
			}
		}
	}
	return out
}
