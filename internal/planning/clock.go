package planning

import (
	"fmt"
	"strings"
)

// Clock arithmetic works on minutes since midnight so slot math stays
// integral; "HH:MM" strings only exist at the boundaries.

func parseClock(v string) (int, bool) {
	var h, m int
	if _, err := fmt.Sscanf(v, "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func formatClock(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes > 23*60+59 {
		minutes = 23*60 + 59
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// parseRange splits an "HH:MM-HH:MM" range into start/end minutes.
func parseRange(v string) (start, end int, ok bool) {
	parts := strings.SplitN(v, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, ok1 := parseClock(strings.TrimSpace(parts[0]))
	end, ok2 := parseClock(strings.TrimSpace(parts[1]))
	if !ok1 || !ok2 || end <= start {
		return 0, 0, false
	}
	return start, end, true
}

func hoursToMinutes(h float64) int {
	return int(h*60 + 0.5)
}
