package captions

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseTimestamp accepts HH:MM:SS.mmm, MM:SS.mmm and the SubRip comma form.
func parseTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	value = strings.ReplaceAll(value, ",", ".")
	clock, fraction, ok := strings.Cut(value, ".")
	if !ok || fraction == "" {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	fields := strings.Split(clock, ":")
	var hours, minutes, seconds int
	var errH, errM, errS error
	switch len(fields) {
	case 3:
		hours, errH = strconv.Atoi(fields[0])
		minutes, errM = strconv.Atoi(fields[1])
		seconds, errS = strconv.Atoi(fields[2])
	case 2:
		minutes, errM = strconv.Atoi(fields[0])
		seconds, errS = strconv.Atoi(fields[1])
	default:
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	millis, errMS := strconv.Atoi(fraction)
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	if hours < 0 || minutes < 0 || seconds < 0 || millis < 0 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	// Fractions shorter or longer than three digits are scaled to milliseconds.
	frac := float64(millis) / math.Pow10(len(fraction))
	return float64(hours*3600+minutes*60+seconds) + frac, nil
}

// FormatTimestamp renders seconds as HH:MM:SS.mmm.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalMillis := int64(math.Round(seconds * 1000))
	hours := totalMillis / 3_600_000
	minutes := (totalMillis % 3_600_000) / 60_000
	secs := (totalMillis % 60_000) / 1000
	millis := totalMillis % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, millis)
}
