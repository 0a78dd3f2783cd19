package timesheet

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/valery-blanc/timesheet-pal/internal/palette"
)

// ActivityUpdate carries the fields UpdateActivity may change. Nil fields
// are left untouched; ID, Order and CreatedAt are not updatable here
// (Order is owned by ReorderActivities).
type ActivityUpdate struct {
	Label     *string
	ShortCode *string
	Color     *string
	Active    *bool
}

// normalizeShortCode trims and upper-cases a short code, enforcing the 1-3
// character length rule.
func normalizeShortCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if len(code) < 1 || len(code) > 3 {
		return "", ErrBadShortCode
	}
	return strings.ToUpper(code), nil
}

// AddActivity creates an activity appended at the end of the display order,
// with the next free activity palette color.
func (s *Store) AddActivity(label, shortCode string) (Activity, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Activity{}, ErrEmptyName
	}
	code, err := normalizeShortCode(shortCode)
	if err != nil {
		return Activity{}, err
	}

	activities, err := s.loadActivities()
	if err != nil {
		return Activity{}, err
	}

	used := make([]string, len(activities))
	for i, a := range activities {
		used[i] = a.Color
	}

	activity := Activity{
		ID:        uuid.NewString(),
		Label:     label,
		Color:     palette.Assign(palette.Activity, used, len(activities)),
		ShortCode: code,
		Active:    true,
		Order:     len(activities),
		CreatedAt: s.nowMillis(),
	}

	activities = append(activities, activity)
	if err := s.saveActivities(activities); err != nil {
		return Activity{}, err
	}
	return activity, nil
}

// UpdateActivity merges the provided fields into the activity with the given
// id. Unknown ids return ErrNotFound.
func (s *Store) UpdateActivity(id string, upd ActivityUpdate) error {
	activities, err := s.loadActivities()
	if err != nil {
		return err
	}

	idx := -1
	for i := range activities {
		if activities[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}

	if upd.Label != nil {
		label := strings.TrimSpace(*upd.Label)
		if label == "" {
			return ErrEmptyName
		}
		activities[idx].Label = label
	}
	if upd.ShortCode != nil {
		code, err := normalizeShortCode(*upd.ShortCode)
		if err != nil {
			return err
		}
		activities[idx].ShortCode = code
	}
	if upd.Color != nil {
		activities[idx].Color = *upd.Color
	}
	if upd.Active != nil {
		activities[idx].Active = *upd.Active
	}

	return s.saveActivities(activities)
}

// DeleteActivity removes the activity unless any time entry still references
// it. The boolean reports whether the deletion happened. Order values of the
// remaining activities are re-packed to stay contiguous from 0.
func (s *Store) DeleteActivity(id string) (bool, error) {
	entries, err := s.loadEntries()
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if e.ActivityID == id {
			return false, nil
		}
	}

	activities, err := s.loadActivities()
	if err != nil {
		return false, err
	}
	kept := activities[:0]
	for _, a := range activities {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(activities) {
		return false, nil
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Order < kept[j].Order })
	for i := range kept {
		kept[i].Order = i
	}
	return true, s.saveActivities(kept)
}

// ReorderActivities rewrites the order of the whole activity set to match
// orderedIDs. Ids that don't name an existing activity are ignored, but the
// remaining ids must cover every activity exactly once; otherwise
// ErrIncompleteOrder is returned and nothing changes.
func (s *Store) ReorderActivities(orderedIDs []string) error {
	activities, err := s.loadActivities()
	if err != nil {
		return err
	}

	byID := make(map[string]*Activity, len(activities))
	for i := range activities {
		byID[activities[i].ID] = &activities[i]
	}

	pos := 0
	seen := make(map[string]bool, len(activities))
	for _, id := range orderedIDs {
		a, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		a.Order = pos
		pos++
	}
	if pos != len(activities) {
		return ErrIncompleteOrder
	}

	return s.saveActivities(activities)
}

// Activities returns all activities sorted by display order.
func (s *Store) Activities() ([]Activity, error) {
	activities, err := s.loadActivities()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Order < activities[j].Order
	})
	return activities, nil
}

// FindActivity resolves an activity by id, label or short code, ignoring
// case.
func (s *Store) FindActivity(ref string) (Activity, bool, error) {
	activities, err := s.loadActivities()
	if err != nil {
		return Activity{}, false, err
	}
	for _, a := range activities {
		if a.ID == ref || strings.EqualFold(a.Label, ref) || strings.EqualFold(a.ShortCode, ref) {
			return a, true, nil
		}
	}
	return Activity{}, false, nil
}
