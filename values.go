/* Copyright (c) 2021 David Bulkow */

package dateutil

import (
	"fmt"
	"time"
)

const (
	MinYear = 1
	MaxYear = 9999
)

// Kind identifies which calendar value a parse produced.
type Kind int

const (
	KindDate Kind = iota
	KindTime
	KindDateTime
)

var kindNames = map[Kind]string{
	KindDate:     "date",
	KindTime:     "time",
	KindDateTime: "datetime",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Value is one of Date, Time or DateTime.
type Value interface {
	Kind() Kind
	String() string
	value()
}

type Date struct {
	Year  int
	Month int
	Day   int
}

type Time struct {
	Hour        int
	Minute      int
	Second      int
	Microsecond int
}

type DateTime struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Microsecond int
}

func (Date) Kind() Kind     { return KindDate }
func (Time) Kind() Kind     { return KindTime }
func (DateTime) Kind() Kind { return KindDateTime }

func (Date) value()     {}
func (Time) value()     {}
func (DateTime) value() {}

// months with 31 days
var months31 = map[int]bool{
	1:  true,
	3:  true,
	5:  true,
	7:  true,
	8:  true,
	10: true,
	12: true,
}

func isLeapYear(year int) bool {
	if year%4 == 0 {
		if year%100 == 0 {
			return year%400 == 0
		}
		return true
	}
	return false
}

func daysIn(year, month int) int {
	switch {
	case month == 2 && isLeapYear(year):
		return 29
	case month == 2:
		return 28
	case months31[month]:
		return 31
	}
	return 30
}

func checkDate(year, month, day int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("year %d is out of range", year)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be in 1..12")
	}
	if day < 1 || day > daysIn(year, month) {
		return fmt.Errorf("day is out of range for month")
	}
	return nil
}

func checkTime(hour, minute, second, microsecond int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("hour must be in 0..23")
	}
	if minute < 0 || minute > 59 {
		return fmt.Errorf("minute must be in 0..59")
	}
	if second < 0 || second > 59 {
		return fmt.Errorf("second must be in 0..59")
	}
	if microsecond < 0 || microsecond > 999999 {
		return fmt.Errorf("microsecond must be in 0..999999")
	}
	return nil
}

func NewDate(year, month, day int) (Date, error) {
	if err := checkDate(year, month, day); err != nil {
		return Date{}, err
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

func NewTime(hour, minute, second, microsecond int) (Time, error) {
	if err := checkTime(hour, minute, second, microsecond); err != nil {
		return Time{}, err
	}
	return Time{Hour: hour, Minute: minute, Second: second, Microsecond: microsecond}, nil
}

func NewDateTime(year, month, day, hour, minute, second, microsecond int) (DateTime, error) {
	if err := checkDate(year, month, day); err != nil {
		return DateTime{}, err
	}
	if err := checkTime(hour, minute, second, microsecond); err != nil {
		return DateTime{}, err
	}
	return DateTime{
		Year:        year,
		Month:       month,
		Day:         day,
		Hour:        hour,
		Minute:      minute,
		Second:      second,
		Microsecond: microsecond,
	}, nil
}

// At combines the date with a wall clock time.
func (d Date) At(t Time) DateTime {
	return DateTime{
		Year:        d.Year,
		Month:       d.Month,
		Day:         d.Day,
		Hour:        t.Hour,
		Minute:      t.Minute,
		Second:      t.Second,
		Microsecond: t.Microsecond,
	}
}

func (dt DateTime) Date() Date {
	return Date{Year: dt.Year, Month: dt.Month, Day: dt.Day}
}

func (dt DateTime) Clock() Time {
	return Time{Hour: dt.Hour, Minute: dt.Minute, Second: dt.Second, Microsecond: dt.Microsecond}
}

// Time returns the wall clock fields as an instant in UTC.
func (dt DateTime) Time() time.Time {
	return time.Date(
		dt.Year,
		time.Month(dt.Month),
		dt.Day,
		dt.Hour,
		dt.Minute,
		dt.Second,
		dt.Microsecond*int(time.Microsecond),
		time.UTC,
	)
}

// DateTimeOf takes the wall clock fields of t in its own location,
// truncating to the microsecond.
func DateTimeOf(t time.Time) DateTime {
	return DateTime{
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Microsecond: t.Nanosecond() / int(time.Microsecond),
	}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (t Time) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Microsecond != 0 {
		s += fmt.Sprintf(".%06d", t.Microsecond)
	}
	return s
}

func (dt DateTime) String() string {
	return dt.Date().String() + "T" + dt.Clock().String()
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (dt DateTime) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

func (d *Date) UnmarshalText(data []byte) error {
	v, err := parseKind(string(data), KindDate)
	if err != nil {
		return err
	}
	*d = v.(Date)
	return nil
}

func (t *Time) UnmarshalText(data []byte) error {
	v, err := parseKind(string(data), KindTime)
	if err != nil {
		return err
	}
	*t = v.(Time)
	return nil
}

func (dt *DateTime) UnmarshalText(data []byte) error {
	v, err := parseKind(string(data), KindDateTime)
	if err != nil {
		return err
	}
	*dt = v.(DateTime)
	return nil
}

func parseKind(text string, want Kind) (Value, error) {
	v, err := Parse(text)
	if err != nil {
		return nil, err
	}
	if v.Kind() != want {
		return nil, fmt.Errorf("%q is a %s, not a %s", text, v.Kind(), want)
	}
	return v, nil
}
