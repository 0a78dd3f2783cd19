// Package slotutil holds the half-hour slot arithmetic shared by the store,
// the exporters and the grid renderers. A slot is a half-hour of a calendar
// day, indexed 0, 0.5, 1, ... 23.5.
package slotutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date layout used everywhere. Dates are kept
// as zero-padded strings so lexicographic comparison orders them correctly.
const DateLayout = "2006-01-02"

// Slots returns all 48 half-hour slots of a day in ascending order.
func Slots() []float64 {
	out := make([]float64, 48)
	for i := range out {
		out[i] = float64(i) * 0.5
	}
	return out
}

// Valid reports whether slot is a half-hour index within the day.
func Valid(slot float64) bool {
	if slot < 0 || slot > 23.5 {
		return false
	}
	return slot == math.Trunc(slot*2)/2
}

// Hour returns the hour a slot belongs to.
func Hour(slot float64) int {
	return int(math.Floor(slot))
}

// IsHalf reports whether slot is a :30 sub-slot.
func IsHalf(slot float64) bool {
	return slot != math.Trunc(slot)
}

// Format renders a slot's start time as "HH:MM".
func Format(slot float64) string {
	m := "00"
	if IsHalf(slot) {
		m = "30"
	}
	return fmt.Sprintf("%02d:%s", Hour(slot), m)
}

// End renders the time 30 minutes after the slot's start. The last slot of
// the day ends at "24:00".
func End(slot float64) string {
	return Format2400(slot + 0.5)
}

// Format2400 is Format extended to accept 24.0 for end-of-day labels.
func Format2400(slot float64) string {
	if slot == 24 {
		return "24:00"
	}
	return Format(slot)
}

// Parse reads a slot from "9", "9:30", "09:00" or "9.5" forms.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty slot")
	}

	if h, m, ok := strings.Cut(s, ":"); ok {
		hour, err := strconv.Atoi(h)
		if err != nil {
			return 0, fmt.Errorf("invalid slot %q", s)
		}
		var half float64
		switch m {
		case "00":
			half = 0
		case "30":
			half = 0.5
		default:
			return 0, fmt.Errorf("invalid slot %q (minutes must be 00 or 30)", s)
		}
		slot := float64(hour) + half
		if !Valid(slot) {
			return 0, fmt.Errorf("slot %q out of range", s)
		}
		return slot, nil
	}

	slot, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid slot %q", s)
	}
	if !Valid(slot) {
		return 0, fmt.Errorf("slot %q out of range", s)
	}
	return slot, nil
}

// ValidDate reports whether s is a well-formed ISO calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseDate parses an ISO calendar date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// FormatDate renders t as an ISO calendar date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
