package services

import (
	"math"
	"time"
)

// Date arithmetic shared by the rollup and analytics services. All day
// boundaries are UTC; weeks start on Monday.

func dayStartUTC(t time.Time) time.Time {
	tt := t.UTC()
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC)
}

func dayEndUTC(t time.Time) time.Time {
	return dayStartUTC(t).Add(24*time.Hour - time.Nanosecond)
}

// startOfWeek returns the most recent Monday at UTC midnight, treating
// Sunday as weekday 0 so the offset is (weekday+6) mod 7.
func startOfWeek(t time.Time) time.Time {
	d := dayStartUTC(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// sameDay reports whether two instants fall on the same UTC calendar day.
func sameDay(a, b time.Time) bool {
	return dayStartUTC(a).Equal(dayStartUTC(b))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// pctOf guards every percentage computation against a zero denominator:
// ratios over nothing are 0, never NaN/Inf.
func pctOf(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return round2(part / whole * 100.0)
}
