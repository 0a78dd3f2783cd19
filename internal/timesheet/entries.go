package timesheet

import (
	"github.com/valery-blanc/timesheet-pal/internal/slotutil"
)

// ToggleEntry is the atomic slot mutation. On a frozen date it refuses and
// changes nothing. An occupied slot is cleared regardless of the client and
// activity arguments; an empty slot is filled, provided both ids name
// existing entities, and the client's LastUsed is bumped. The boolean
// reports whether a mutation happened.
func (s *Store) ToggleEntry(date string, slot float64, clientID, activityID string) (bool, error) {
	if !slotutil.ValidDate(date) || !slotutil.Valid(slot) {
		return false, nil
	}

	frozen, err := s.IsDayFrozen(date)
	if err != nil {
		return false, err
	}
	if frozen {
		return false, nil
	}

	entries, err := s.loadEntries()
	if err != nil {
		return false, err
	}

	// Clearing path: the ids are deliberately ignored.
	for i, e := range entries {
		if e.Date == date && e.Slot == slot {
			entries = append(entries[:i], entries[i+1:]...)
			return true, s.saveEntries(entries)
		}
	}

	if clientID == "" || activityID == "" {
		return false, nil
	}

	// Entries must reference existing entities at creation time; deletion
	// of referenced entities is blocked elsewhere, so references can never
	// dangle.
	client, ok, err := s.clientByID(clientID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if ok, err := s.activityExists(activityID); err != nil || !ok {
		return false, err
	}

	entries = append(entries, TimeEntry{
		Date:       date,
		Slot:       slot,
		ClientID:   clientID,
		ActivityID: activityID,
	})
	if err := s.saveEntries(entries); err != nil {
		return false, err
	}

	return true, s.touchClient(client.ID, s.nowMillis())
}

// touchClient sets a client's LastUsed timestamp.
func (s *Store) touchClient(id string, lastUsed int64) error {
	clients, err := s.loadClients()
	if err != nil {
		return err
	}
	for i := range clients {
		if clients[i].ID == id {
			clients[i].LastUsed = lastUsed
			return s.saveClients(clients)
		}
	}
	return nil
}

func (s *Store) clientByID(id string) (Client, bool, error) {
	clients, err := s.loadClients()
	if err != nil {
		return Client{}, false, err
	}
	for _, c := range clients {
		if c.ID == id {
			return c, true, nil
		}
	}
	return Client{}, false, nil
}

func (s *Store) activityExists(id string) (bool, error) {
	activities, err := s.loadActivities()
	if err != nil {
		return false, err
	}
	for _, a := range activities {
		if a.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// EntriesForDate returns all entries on the given date, in no particular
// order; callers sort by slot when they need to.
func (s *Store) EntriesForDate(date string) ([]TimeEntry, error) {
	entries, err := s.loadEntries()
	if err != nil {
		return nil, err
	}
	var out []TimeEntry
	for _, e := range entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

// EntriesForRange returns all entries with startDate <= date <= endDate.
// The comparison is lexicographic, which is correct for zero-padded ISO
// date strings.
func (s *Store) EntriesForRange(startDate, endDate string) ([]TimeEntry, error) {
	entries, err := s.loadEntries()
	if err != nil {
		return nil, err
	}
	var out []TimeEntry
	for _, e := range entries {
		if e.Date >= startDate && e.Date <= endDate {
			out = append(out, e)
		}
	}
	return out, nil
}
