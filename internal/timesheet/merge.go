package timesheet

// The half-hour merge view and the compound hour gestures are a derived
// layer over the atomic per-slot toggle. Storage only ever holds one record
// per half-hour slot; merging is computed at read time.

// EntryAt finds the entry occupying a slot within an already-loaded entry
// set.
func EntryAt(entries []TimeEntry, date string, slot float64) (TimeEntry, bool) {
	for _, e := range entries {
		if e.Date == date && e.Slot == slot {
			return e, true
		}
	}
	return TimeEntry{}, false
}

// MergedHour reports whether the :00 and :30 sub-slots of hour on date are
// both filled with the same (client, activity) pair, in which case they are
// rendered as one merged unit. The returned entry is the :00 sub-slot's.
func MergedHour(entries []TimeEntry, date string, hour int) (TimeEntry, bool) {
	top, okTop := EntryAt(entries, date, float64(hour))
	bottom, okBottom := EntryAt(entries, date, float64(hour)+0.5)
	if !okTop || !okBottom {
		return TimeEntry{}, false
	}
	if top.ClientID != bottom.ClientID || top.ActivityID != bottom.ActivityID {
		return TimeEntry{}, false
	}
	return top, true
}

// ToggleHour is the "fill whole hour" gesture: if either sub-slot of the
// hour is occupied both are cleared, otherwise both are filled. On a frozen
// date it refuses and changes nothing.
func (s *Store) ToggleHour(date string, hour int, clientID, activityID string) (bool, error) {
	frozen, err := s.IsDayFrozen(date)
	if err != nil || frozen {
		return false, err
	}

	entries, err := s.EntriesForDate(date)
	if err != nil {
		return false, err
	}

	top := float64(hour)
	bottom := float64(hour) + 0.5
	_, okTop := EntryAt(entries, date, top)
	_, okBottom := EntryAt(entries, date, bottom)

	if okTop || okBottom {
		changed := false
		if okTop {
			ok, err := s.ToggleEntry(date, top, "", "")
			if err != nil {
				return changed, err
			}
			changed = changed || ok
		}
		if okBottom {
			ok, err := s.ToggleEntry(date, bottom, "", "")
			if err != nil {
				return changed, err
			}
			changed = changed || ok
		}
		return changed, nil
	}

	okFirst, err := s.ToggleEntry(date, top, clientID, activityID)
	if err != nil || !okFirst {
		return false, err
	}
	okSecond, err := s.ToggleEntry(date, bottom, clientID, activityID)
	if err != nil {
		return true, err
	}
	return okFirst && okSecond, nil
}

// ToggleHalfHour is the "fill half hour" gesture: it toggles only the :30
// sub-slot of the hour.
func (s *Store) ToggleHalfHour(date string, hour int, clientID, activityID string) (bool, error) {
	return s.ToggleEntry(date, float64(hour)+0.5, clientID, activityID)
}
