/* Copyright (c) 2021 David Bulkow */

package dateutil

import "time"

const (
	secondsPerDay = 24 * 60 * 60
)

// Duration is a span of time decomposed into days, seconds and
// microseconds. Seconds stay in [0, 86400) and Microseconds in
// [0, 1000000); only Days may be negative.
type Duration struct {
	Days         int64
	Seconds      int64
	Microseconds int64
}

// floorDiv divides rounding toward negative infinity so the remainder
// keeps the sign of the divisor.
func floorDiv(a, b int64) (q, r int64) {
	q, r = a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}

// NewDuration normalizes the fields, carrying overflow from microseconds
// into seconds and from seconds into days.
func NewDuration(days, seconds, microseconds int64) Duration {
	carry, micros := floorDiv(microseconds, microsPerSecond)
	seconds += carry

	carry, seconds = floorDiv(seconds, secondsPerDay)
	days += carry

	return Duration{Days: days, Seconds: seconds, Microseconds: micros}
}

// DurationOf converts a time.Duration, truncating below the microsecond.
func DurationOf(d time.Duration) Duration {
	return NewDuration(0, 0, d.Microseconds())
}

func (d Duration) Duration() time.Duration {
	return time.Duration(d.Days)*secondsPerDay*time.Second +
		time.Duration(d.Seconds)*time.Second +
		time.Duration(d.Microseconds)*time.Microsecond
}

// DurationSeconds returns the total length of d in seconds.
func DurationSeconds(d Duration) float64 {
	micros := d.Microseconds + (d.Seconds+d.Days*secondsPerDay)*microsPerSecond
	return float64(micros) / microsPerSecond
}
