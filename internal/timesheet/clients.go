package timesheet

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/valery-blanc/timesheet-pal/internal/palette"
)

// ClientUpdate carries the fields UpdateClient may change. Nil fields are
// left untouched; ID and CreatedAt are immutable and have no field here.
type ClientUpdate struct {
	Name   *string
	Color  *string
	Active *bool
	Notes  *string
}

// AddClient creates a client with the next free palette color. The name is
// trimmed and must be non-empty and unique among clients, compared
// case-insensitively.
func (s *Store) AddClient(name, notes string) (Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Client{}, ErrEmptyName
	}

	clients, err := s.loadClients()
	if err != nil {
		return Client{}, err
	}
	if clientNameTaken(clients, name, "") {
		return Client{}, ErrDuplicateName
	}

	used := make([]string, len(clients))
	for i, c := range clients {
		used[i] = c.Color
	}

	now := s.nowMillis()
	client := Client{
		ID:        uuid.NewString(),
		Name:      name,
		Color:     palette.Assign(palette.Client, used, len(clients)),
		Active:    true,
		Notes:     notes,
		LastUsed:  now,
		CreatedAt: now,
	}

	clients = append(clients, client)
	if err := s.saveClients(clients); err != nil {
		return Client{}, err
	}
	return client, nil
}

// UpdateClient merges the provided fields into the client with the given id.
// Unknown ids return ErrNotFound; a name change is validated like AddClient.
func (s *Store) UpdateClient(id string, upd ClientUpdate) error {
	clients, err := s.loadClients()
	if err != nil {
		return err
	}

	idx := -1
	for i := range clients {
		if clients[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return ErrEmptyName
		}
		if clientNameTaken(clients, name, id) {
			return ErrDuplicateName
		}
		clients[idx].Name = name
	}
	if upd.Color != nil {
		clients[idx].Color = *upd.Color
	}
	if upd.Active != nil {
		clients[idx].Active = *upd.Active
	}
	if upd.Notes != nil {
		clients[idx].Notes = *upd.Notes
	}

	return s.saveClients(clients)
}

// DeleteClient removes the client unless any time entry still references it.
// The boolean reports whether the deletion happened.
func (s *Store) DeleteClient(id string) (bool, error) {
	entries, err := s.loadEntries()
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if e.ClientID == id {
			return false, nil
		}
	}

	clients, err := s.loadClients()
	if err != nil {
		return false, err
	}
	kept := clients[:0]
	for _, c := range clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(clients) {
		return false, nil
	}
	return true, s.saveClients(kept)
}

// Clients returns all clients, most recently used first. The ordering is a
// presentation contract, not a storage order.
func (s *Store) Clients() ([]Client, error) {
	clients, err := s.loadClients()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(clients, func(i, j int) bool {
		return clients[i].LastUsed > clients[j].LastUsed
	})
	return clients, nil
}

// FindClient resolves a client by id or (case-insensitive) name.
func (s *Store) FindClient(ref string) (Client, bool, error) {
	clients, err := s.loadClients()
	if err != nil {
		return Client{}, false, err
	}
	for _, c := range clients {
		if c.ID == ref || strings.EqualFold(c.Name, ref) {
			return c, true, nil
		}
	}
	return Client{}, false, nil
}

// clientNameTaken reports whether another client (with an id different from
// selfID) already uses the name, ignoring case.
func clientNameTaken(clients []Client, name, selfID string) bool {
	for _, c := range clients {
		if c.ID != selfID && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}
