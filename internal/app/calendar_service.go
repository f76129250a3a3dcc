// Package app holds the application services and business logic.
package app

import (
	"fmt"

	"bracelet/internal/calendar"
)

// LunarConversion is the API-facing result of a solar→lunar conversion.
type LunarConversion struct {
	LunarYear   int    `json:"lunarYear"`
	LunarMonth  int    `json:"lunarMonth"`
	LunarDay    int    `json:"lunarDay"`
	IsLeapMonth bool   `json:"isLeapMonth"`
	LunarDate   string `json:"lunarDate"`
	Zodiac      string `json:"zodiac"`
	SolarDate   string `json:"solarDate"`
}

// SolarConversion is the API-facing result of a lunar→solar conversion.
type SolarConversion struct {
	SolarYear  int    `json:"solarYear"`
	SolarMonth int    `json:"solarMonth"`
	SolarDay   int    `json:"solarDay"`
	SolarDate  string `json:"solarDate"`
	LunarDate  string `json:"lunarDate"`
	Zodiac     string `json:"zodiac"`
}

// CalendarService exposes the calendar conversions as use cases.
type CalendarService struct{}

// NewCalendarService creates a CalendarService.
func NewCalendarService() *CalendarService {
	return &CalendarService{}
}

// SolarToLunar converts a solar date, returning the lunar date and zodiac.
func (s *CalendarService) SolarToLunar(year, month, day int) (*LunarConversion, error) {
	lunar, zodiac, err := calendar.SolarToLunar(calendar.SolarDate{Year: year, Month: month, Day: day})
	if err != nil {
		return nil, err
	}
	return &LunarConversion{
		LunarYear:   lunar.Year,
		LunarMonth:  lunar.Month,
		LunarDay:    lunar.Day,
		IsLeapMonth: lunar.IsLeapMonth,
		LunarDate:   lunar.String(),
		Zodiac:      zodiac,
		SolarDate:   isoDate(year, month, day),
	}, nil
}

// LunarToSolar converts a lunar date back to the solar calendar.
func (s *CalendarService) LunarToSolar(year, month, day int, isLeapMonth bool) (*SolarConversion, error) {
	lunar := calendar.LunarDate{Year: year, Month: month, Day: day, IsLeapMonth: isLeapMonth}
	solar, err := calendar.LunarToSolar(lunar)
	if err != nil {
		return nil, err
	}
	return &SolarConversion{
		SolarYear:  solar.Year,
		SolarMonth: solar.Month,
		SolarDay:   solar.Day,
		SolarDate:  isoDate(solar.Year, solar.Month, solar.Day),
		LunarDate:  lunar.String(),
		Zodiac:     calendar.Zodiac(year),
	}, nil
}

// EightCharacters derives the four pillars for a birth moment.
func (s *CalendarService) EightCharacters(year, month, day, hour int, isLunar bool) (calendar.FourPillars, error) {
	return calendar.ComputeFourPillars(year, month, day, hour, isLunar)
}

func isoDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
