package ingest

import (
	"strconv"
	"strings"

	"voyagedb/src/entities"
)

// Field validators. Each is a pure predicate over the raw field string; the
// builders run them before any catalog insertion so a record is either
// fully indexed or fully rejected.

// ValidDate accepts YYYY/MM/DD with calendar-plausible components. No
// leap-year or days-per-month precision, matching the dataset contract.
func ValidDate(s string) bool {
	_, err := entities.ParseDate(s)
	return err == nil
}

// ValidDateTime accepts YYYY/MM/DD HH:MM:SS.
func ValidDateTime(s string) bool {
	_, err := entities.ParseDateTime(s)
	return err == nil
}

// ValidEmail checks the <username>@<domain>.<tld> shape: non-empty username
// and domain, tld of at least two characters.
func ValidEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at < 1 {
		return false
	}
	dot := strings.LastIndexByte(s[at+1:], '.')
	if dot < 1 {
		return false
	}
	return len(s[at+1:])-dot >= 3
}

// ValidCountryCode accepts exactly two letters.
func ValidCountryCode(s string) bool {
	return len(s) == 2 && isLetter(s[0]) && isLetter(s[1])
}

// ValidAccountStatus accepts "active" or "inactive" in any case.
func ValidAccountStatus(s string) bool {
	up := strings.ToUpper(s)
	return up == entities.StatusActive || up == entities.StatusInactive
}

// ValidSeats accepts a non-negative integer.
func ValidSeats(s string) bool {
	return allDigits(s)
}

// ValidAirport accepts exactly three letters, any case.
func ValidAirport(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}
	return true
}

// ValidHotelStars accepts an integer rating of 1 to 5.
func ValidHotelStars(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n >= 1 && n <= 5
}

// ValidCityTax accepts a non-negative integer.
func ValidCityTax(s string) bool {
	return s != "" && allDigits(s)
}

// ValidPricePerNight accepts a positive integer.
func ValidPricePerNight(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && allDigits(s) && n > 0
}

// ValidBreakfast accepts the tri-state encodings: empty (absent), 1/0, t/f
// or true/false in any case.
func ValidBreakfast(s string) bool {
	switch strings.ToUpper(s) {
	case "", "0", "1", "T", "F", "TRUE", "FALSE":
		return true
	}
	return false
}

// ValidRating accepts an empty field or an integer 1 to 5.
func ValidRating(s string) bool {
	return s == "" || ValidHotelStars(s)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseBreakfast maps a validated field onto the tri-state flag.
func ParseBreakfast(s string) entities.Breakfast {
	switch strings.ToUpper(s) {
	case "1", "T", "TRUE":
		return entities.BreakfastTrue
	case "0", "F", "FALSE":
		return entities.BreakfastFalse
	}
	return entities.BreakfastUnset
}
