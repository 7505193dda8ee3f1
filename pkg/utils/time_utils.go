package utils

import (
	"math"
	"time"
)

const DefaultTripDurationDays = 7

func NowUnixSeconds() int64 { return time.Now().Unix() }

// ParseDateOnly accepts the "2006-01-02" form the trip form submits.
func ParseDateOnly(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// DurationDays computes a trip length as the ceiling of the day
// difference between start and end. Either date missing or unparsable,
// or a non-positive range, falls back to the default of 7 days.
func DurationDays(startDate, endDate string) int {
	if startDate == "" || endDate == "" {
		return DefaultTripDurationDays
	}
	start, err := ParseDateOnly(startDate)
	if err != nil {
		return DefaultTripDurationDays
	}
	end, err := ParseDateOnly(endDate)
	if err != nil {
		return DefaultTripDurationDays
	}
	diff := end.Sub(start)
	if diff <= 0 {
		return DefaultTripDurationDays
	}
	return int(math.Ceil(diff.Hours() / 24))
}
