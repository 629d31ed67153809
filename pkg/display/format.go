package display

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Severity buckets a 0-100 percentage for coloring gauges
// (tyre wear, rev lights, throttle, brake).
type Severity int

const (
	SeveritySafe Severity = iota
	SeverityWarning
	SeverityCritical
)

// WearSeverity maps a percentage to its bucket:
// [0,50] safe, (50,70] warning, above critical.
func WearSeverity(percent int) Severity {
	switch {
	case percent <= 50:
		return SeveritySafe
	case percent <= 70:
		return SeverityWarning
	default:
		return SeverityCritical
	}
}

// FormatLaptime renders a duration as "m:ss.mmm" with minutes
// wrapping modulo 60.
func FormatLaptime(d time.Duration) string {
	mins := (int64(d.Seconds()) / 60) % 60
	secs := math.Mod(d.Seconds(), 60)
	return fmt.Sprintf("%d:%.3f", mins, secs)
}

// SuggestedGearLabel renders values below 1 as an explicit
// "no suggestion" marker.
func SuggestedGearLabel(gear int) string {
	if gear < 1 {
		return "[N/A]"
	}
	return strconv.Itoa(gear)
}

// LastName extracts the second token of a driver display name for the
// compact position table. Names without a space are returned as is.
func LastName(driverName string) string {
	parts := strings.Fields(driverName)
	if len(parts) < 2 {
		return driverName
	}
	return parts[1]
}
