// Package workweek expands a compact weekly schedule spec into the concrete
// dates and slots to pre-fill. A spec looks like "mon-fri 9-17" or
// "weekdays 8:30-16:30": a day selector followed by a time range whose end
// is exclusive.
package workweek

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/valery-blanc/timesheet-pal/internal/slotutil"
)

// Plan is a parsed weekly fill schedule.
type Plan struct {
	Weekdays []rrule.Weekday
	From     float64 // first slot filled
	To       float64 // first slot NOT filled
}

// Fill lists the slots to fill on one date.
type Fill struct {
	Date  string
	Slots []float64
}

var dayAliases = map[string]rrule.Weekday{
	"mon": rrule.MO, "monday": rrule.MO,
	"tue": rrule.TU, "tuesday": rrule.TU,
	"wed": rrule.WE, "wednesday": rrule.WE,
	"thu": rrule.TH, "thursday": rrule.TH,
	"fri": rrule.FR, "friday": rrule.FR,
	"sat": rrule.SA, "saturday": rrule.SA,
	"sun": rrule.SU, "sunday": rrule.SU,
}

// dayOrder gives ranges like "mon-fri" a defined span.
var dayOrder = []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU}

// Parse reads a plan spec: "<days> <from>-<to>" where days is "weekdays",
// "weekends", "daily", a single day name, a comma list ("mon,wed,fri") or a
// range ("mon-fri"), and the times accept the same forms as slot parsing
// ("9", "9:30").
func Parse(spec string) (Plan, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(spec)))
	if len(fields) != 2 {
		return Plan{}, fmt.Errorf("invalid schedule %q (expected e.g. \"mon-fri 9-17\")", spec)
	}

	days, err := parseDays(fields[0])
	if err != nil {
		return Plan{}, err
	}

	fromStr, toStr, ok := strings.Cut(fields[1], "-")
	if !ok {
		return Plan{}, fmt.Errorf("invalid time range %q (expected e.g. 9-17)", fields[1])
	}
	from, err := slotutil.Parse(fromStr)
	if err != nil {
		return Plan{}, err
	}
	var to float64
	if toStr == "24" || toStr == "24:00" {
		to = 24
	} else {
		to, err = slotutil.Parse(toStr)
		if err != nil {
			return Plan{}, err
		}
	}
	if from >= to {
		return Plan{}, fmt.Errorf("schedule start %s must be before end %s", fromStr, toStr)
	}

	return Plan{Weekdays: days, From: from, To: to}, nil
}

func parseDays(s string) ([]rrule.Weekday, error) {
	switch s {
	case "weekdays", "workdays":
		return []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR}, nil
	case "weekends":
		return []rrule.Weekday{rrule.SA, rrule.SU}, nil
	case "daily", "everyday":
		return append([]rrule.Weekday{}, dayOrder...), nil
	}

	if from, to, ok := strings.Cut(s, "-"); ok {
		start, okFrom := dayAliases[from]
		end, okTo := dayAliases[to]
		if !okFrom || !okTo {
			return nil, fmt.Errorf("unknown day range %q", s)
		}
		return daySpan(start, end)
	}

	var days []rrule.Weekday
	for _, tok := range strings.Split(s, ",") {
		wd, ok := dayAliases[tok]
		if !ok {
			return nil, fmt.Errorf("unknown day %q", tok)
		}
		days = append(days, wd)
	}
	return days, nil
}

// daySpan expands "start through end" over the Monday-first week.
func daySpan(start, end rrule.Weekday) ([]rrule.Weekday, error) {
	si, ei := -1, -1
	for i, d := range dayOrder {
		if d == start {
			si = i
		}
		if d == end {
			ei = i
		}
	}
	if si == -1 || ei == -1 || si > ei {
		return nil, fmt.Errorf("invalid day range")
	}
	return append([]rrule.Weekday{}, dayOrder[si:ei+1]...), nil
}

// Slots lists the half-hour slots a plan fills on each matching day.
func (p Plan) Slots() []float64 {
	var out []float64
	for s := p.From; s < p.To; s += 0.5 {
		out = append(out, s)
	}
	return out
}

// Expand evaluates the plan over [start, end] inclusive and returns one Fill
// per matching date, in date order.
func (p Plan) Expand(start, end time.Time) ([]Fill, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return nil, fmt.Errorf("range end %s before start %s",
			slotutil.FormatDate(end), slotutil.FormatDate(start))
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: p.Weekdays,
		Dtstart:   start,
	})
	if err != nil {
		return nil, err
	}

	slots := p.Slots()
	var fills []Fill
	for _, d := range r.Between(start, end, true) {
		fills = append(fills, Fill{
			Date:  slotutil.FormatDate(d),
			Slots: append([]float64{}, slots...),
		})
	}
	return fills, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
