package timesheet

// IsDayFrozen reports whether a frozen-day record exists for the date.
func (s *Store) IsDayFrozen(date string) (bool, error) {
	frozen, err := s.loadFrozen()
	if err != nil {
		return false, err
	}
	for _, f := range frozen {
		if f.Date == date {
			return true, nil
		}
	}
	return false, nil
}

// ToggleFreeze freezes the date if it is thawed and thaws it if it is
// frozen, returning the new state. Freezing never touches the date's
// entries; it only blocks further toggles.
func (s *Store) ToggleFreeze(date string) (bool, error) {
	frozen, err := s.loadFrozen()
	if err != nil {
		return false, err
	}

	for i, f := range frozen {
		if f.Date == date {
			frozen = append(frozen[:i], frozen[i+1:]...)
			return false, s.saveFrozen(frozen)
		}
	}

	frozen = append(frozen, FrozenDay{Date: date, FrozenAt: s.nowMillis()})
	return true, s.saveFrozen(frozen)
}
