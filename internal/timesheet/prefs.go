package timesheet

// Preference records: small pieces of UI convenience state stored alongside
// the collections. They never participate in the core invariants.

// DefaultWorkHours is the display window used when no preference is stored.
var DefaultWorkHours = WorkHours{Start: 0, End: 23}

// GetWorkHours returns the stored display window, or DefaultWorkHours when
// none is stored.
func (s *Store) GetWorkHours() (WorkHours, error) {
	return s.WorkHoursOr(DefaultWorkHours)
}

// WorkHoursOr returns the stored display window, falling back to def when
// none is stored or the stored value is out of range. def lets callers seed
// the window from configuration without writing a preference.
func (s *Store) WorkHoursOr(def WorkHours) (WorkHours, error) {
	wh := def
	if err := s.load(keyWorkHours, &wh); err != nil {
		return def, err
	}
	if !wh.Valid() {
		return def, nil
	}
	return wh, nil
}

// SetWorkHours stores the display window preference.
func (s *Store) SetWorkHours(wh WorkHours) error {
	if !wh.Valid() {
		return ErrBadWorkHours
	}
	return s.kv.Set(keyWorkHours, wh)
}

// CurrentViewDate returns the last viewed date, or "" when none is stored.
func (s *Store) CurrentViewDate() (string, error) {
	var date string
	err := s.load(keyViewDate, &date)
	return date, err
}

// SetCurrentViewDate stores the last viewed date.
func (s *Store) SetCurrentViewDate(date string) error {
	return s.kv.Set(keyViewDate, date)
}

// SelectedClient returns the sticky client selection, or "" when none.
func (s *Store) SelectedClient() (string, error) {
	var id string
	err := s.load(keySelClient, &id)
	return id, err
}

// SetSelectedClient stores the sticky client selection.
func (s *Store) SetSelectedClient(id string) error {
	return s.kv.Set(keySelClient, id)
}

// SelectedActivity returns the sticky activity selection, or "" when none.
func (s *Store) SelectedActivity() (string, error) {
	var id string
	err := s.load(keySelActivity, &id)
	return id, err
}

// SetSelectedActivity stores the sticky activity selection.
func (s *Store) SetSelectedActivity(id string) error {
	return s.kv.Set(keySelActivity, id)
}
