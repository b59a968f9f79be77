/* Copyright (c) 2021 David Bulkow */

package dateutil

import (
	"math"
	"time"
)

// ToEpochSeconds reads the wall clock fields of dt as UTC and returns
// seconds since the Unix epoch, microseconds included as a fraction.
func ToEpochSeconds(dt DateTime) float64 {
	secs := dt.Time().Unix()
	return float64(secs) + float64(dt.Microsecond)/microsPerSecond
}

// FromEpochSeconds is the inverse of ToEpochSeconds, rounded to the
// nearest microsecond.
func FromEpochSeconds(seconds float64) DateTime {
	whole := math.Floor(seconds)
	micros := math.Round((seconds - whole) * microsPerSecond)
	if micros >= microsPerSecond {
		whole++
		micros -= microsPerSecond
	}

	t := time.Unix(int64(whole), int64(micros)*int64(time.Microsecond)).UTC()
	return DateTimeOf(t)
}
