// Package profile formats and validates edits to the user's birth details.
package profile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xaenox/astro-chat/internal/models"
)

var ZodiacSigns = []string{
	"Aries ♈", "Taurus ♉", "Gemini ♊", "Cancer ♋",
	"Leo ♌", "Virgo ♍", "Libra ♎", "Scorpio ♏",
	"Sagittarius ♐", "Capricorn ♑", "Aquarius ♒", "Pisces ♓",
}

var Dashas = []string{
	"Surya (Sun) Mahadasha",
	"Chandra (Moon) Mahadasha",
	"Mangal (Mars) Mahadasha",
	"Rahu Mahadasha",
	"Guru (Jupiter) Mahadasha",
	"Shani (Saturn) Mahadasha",
	"Budh (Mercury) Mahadasha",
	"Ketu Mahadasha",
	"Shukra (Venus) Mahadasha",
}

var ErrUnknownField = errors.New("unknown profile field")

// Field names accepted by Update.
const (
	FieldName         = "name"
	FieldBirthDate    = "birthDate"
	FieldBirthTime    = "birthTime"
	FieldBirthPlace   = "birthPlace"
	FieldSunSign      = "sunSign"
	FieldMoonSign     = "moonSign"
	FieldAscendant    = "ascendant"
	FieldCurrentDasha = "currentDasha"
)

// Options lists the picker choices for a field, or nil for free text.
func Options(field string) []string {
	switch field {
	case FieldSunSign, FieldMoonSign, FieldAscendant:
		return ZodiacSigns
	case FieldCurrentDasha:
		return Dashas
	}
	return nil
}

// Title is the heading of the picker for field.
func Title(field string) string {
	switch field {
	case FieldSunSign:
		return "Select Sun Sign"
	case FieldMoonSign:
		return "Select Moon Sign"
	case FieldAscendant:
		return "Select Ascendant"
	case FieldCurrentDasha:
		return "Select Current Dasha"
	}
	return "Edit Profile"
}

// Update builds a single-field update.
func Update(field, value string) (models.ProfileUpdate, error) {
	var u models.ProfileUpdate
	switch field {
	case FieldName:
		u.Name = &value
	case FieldBirthDate:
		u.BirthDate = &value
	case FieldBirthTime:
		u.BirthTime = &value
	case FieldBirthPlace:
		u.BirthPlace = &value
	case FieldSunSign:
		u.SunSign = &value
	case FieldMoonSign:
		u.MoonSign = &value
	case FieldAscendant:
		u.Ascendant = &value
	case FieldCurrentDasha:
		u.CurrentDasha = &value
	default:
		return u, fmt.Errorf("%q: %w", field, ErrUnknownField)
	}
	return u, nil
}

// FormatBirthDate renders t as "15 March 1990".
func FormatBirthDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), t.Month(), t.Year())
}

// ParseBirthDate reads the FormatBirthDate layout.
func ParseBirthDate(s string) (time.Time, error) {
	return time.Parse("2 January 2006", s)
}

// FormatBirthTime renders t as a zero-padded 12-hour clock, "02:30 PM".
func FormatBirthTime(t time.Time) string {
	return t.Format("03:04 PM")
}

// ParseBirthTime reads "hh:mm AM|PM" into hour and minute on a 24-hour
// clock. A PM hour already past 12 is taken as written, so the seeded
// "14:30 PM" reads as 14:30. AM hours past 12 are rejected.
func ParseBirthTime(s string) (hour, minute int, err error) {
	clock, period, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return 0, 0, fmt.Errorf("birth time %q: missing AM/PM", s)
	}
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, 0, fmt.Errorf("birth time %q: missing minutes", s)
	}
	if hour, err = strconv.Atoi(hh); err != nil {
		return 0, 0, fmt.Errorf("birth time %q: %w", s, err)
	}
	if minute, err = strconv.Atoi(mm); err != nil {
		return 0, 0, fmt.Errorf("birth time %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("birth time %q: out of range", s)
	}

	switch strings.ToUpper(period) {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour > 12 {
			return 0, 0, fmt.Errorf("birth time %q: hour %d is not a morning hour", s, hour)
		}
		if hour == 12 {
			hour = 0
		}
	default:
		return 0, 0, fmt.Errorf("birth time %q: bad period %q", s, period)
	}
	return hour, minute, nil
}
