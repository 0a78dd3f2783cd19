// Package export turns repository snapshots into deliverable documents:
// the canonical CSV format and a PDF rendition of the same range. Window and
// filename computation are pure; writing the bytes anywhere is the caller's
// business.
package export

import (
	"fmt"
	"time"

	"github.com/valery-blanc/timesheet-pal/internal/slotutil"
)

// Scope selects the exported date window relative to an anchor date.
type Scope string

const (
	ScopeDay   Scope = "day"
	ScopeWeek  Scope = "week"
	ScopeMonth Scope = "month"
	ScopeAll   Scope = "all"
)

// Sentinel bounds for the unbounded scope; every zero-padded ISO date
// compares inside them.
const (
	minDate = "0000-00-00"
	maxDate = "9999-99-99"
)

// ParseScope validates a scope string.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeDay, ScopeWeek, ScopeMonth, ScopeAll:
		return Scope(s), nil
	}
	return "", fmt.Errorf("unknown scope %q (expected day, week, month or all)", s)
}

// Window computes the inclusive [start, end] date bounds for a scope and
// anchor. Weeks are ISO weeks, Monday through Sunday.
func Window(scope Scope, anchor time.Time) (start, end string) {
	switch scope {
	case ScopeDay:
		d := slotutil.FormatDate(anchor)
		return d, d
	case ScopeWeek:
		monday := startOfISOWeek(anchor)
		return slotutil.FormatDate(monday), slotutil.FormatDate(monday.AddDate(0, 0, 6))
	case ScopeMonth:
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		last := first.AddDate(0, 1, -1)
		return slotutil.FormatDate(first), slotutil.FormatDate(last)
	default:
		return minDate, maxDate
	}
}

// Filename derives the suggested file name for a scope, anchor and
// extension ("csv" or "pdf").
func Filename(scope Scope, anchor time.Time, ext string) string {
	switch scope {
	case ScopeDay:
		return fmt.Sprintf("timesheet-%s.%s", slotutil.FormatDate(anchor), ext)
	case ScopeWeek:
		_, week := anchor.ISOWeek()
		return fmt.Sprintf("timesheet-%04d-W%02d.%s", anchor.Year(), week, ext)
	case ScopeMonth:
		return fmt.Sprintf("timesheet-%04d-%02d.%s", anchor.Year(), int(anchor.Month()), ext)
	default:
		return fmt.Sprintf("timesheet-all.%s", ext)
	}
}

// startOfISOWeek returns the Monday of the anchor's week.
func startOfISOWeek(anchor time.Time) time.Time {
	d := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return d.AddDate(0, 0, -offset)
}
