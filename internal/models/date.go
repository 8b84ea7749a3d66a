package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a civil calendar date with no time-of-day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns a normalized date, so NewDate(2025, 2, 30) is March 2nd.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the local calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// FromDayNumber is the inverse of DayNumber.
func FromDayNumber(n int64) Date {
	return NewDate(1970, time.January, 1+int(n))
}

// ParseDate parses YYYY-MM-DD as written by String. The year has at least
// four digits and may be negative, e.g. "-0044-03-15" or "10000-01-01".
func ParseDate(s string) (Date, error) {
	body, sign := s, 1
	if strings.HasPrefix(body, "-") {
		body, sign = body[1:], -1
	}

	parts := strings.Split(body, "-")
	if len(parts) != 3 || len(parts[0]) < 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return Date{}, fmt.Errorf("parsing date %q: want YYYY-MM-DD", s)
	}
	var fields [3]int
	for i, p := range parts {
		if !isDigits(p) {
			return Date{}, fmt.Errorf("parsing date %q: want YYYY-MM-DD", s)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
		}
		fields[i] = n
	}

	d := Date{Year: sign * fields[0], Month: time.Month(fields[1]), Day: fields[2]}
	if !d.Valid() {
		return Date{}, fmt.Errorf("parsing date %q: not a calendar date", s)
	}
	return d, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// Valid reports whether d names a real calendar day, i.e. it is already
// normalized.
func (d Date) Valid() bool {
	return d.Month >= time.January && d.Month <= time.December &&
		NewDate(d.Year, d.Month, d.Day) == d
}

// Time returns midnight of the date in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	return d.DaysSince(other) < 0
}

// DaysSince returns the number of whole days from other to d.
// It does not go through time.Duration, so it holds for any year.
func (d Date) DaysSince(other Date) int64 {
	return d.DayNumber() - other.DayNumber()
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	// 1970-01-01 was a Thursday.
	n := (d.DayNumber() + 4) % 7
	if n < 0 {
		n += 7
	}
	return time.Weekday(n)
}

func (d Date) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.Year, int(d.Month), d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DayNumber counts days since 1970-01-01 in the proleptic Gregorian calendar.
func (d Date) DayNumber() int64 {
	y := int64(d.Year)
	m := int64(d.Month)
	if m <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + int64(d.Day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}
