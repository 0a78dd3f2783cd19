package timesheet

// Client is someone time is billed against. Name is unique among clients,
// compared case-insensitively. Color is a palette token; LastUsed moves the
// client up the selector each time a slot is assigned to it.
type Client struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Active    bool   `json:"active"`
	Notes     string `json:"notes"`
	LastUsed  int64  `json:"lastUsed"`
	CreatedAt int64  `json:"createdAt"`
}

// Activity is a kind of work. ShortCode is 1-3 characters, stored upper-cased.
// Order drives display ordering and is kept contiguous from 0.
type Activity struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Color     string `json:"color"`
	ShortCode string `json:"shortCode"`
	Active    bool   `json:"active"`
	Order     int    `json:"order"`
	CreatedAt int64  `json:"createdAt"`
}

// TimeEntry assigns one half-hour slot of a day to a (client, activity) pair.
// At most one entry exists per (date, slot). The stored field name "hour" is
// historical; it holds the half-hour slot index (0, 0.5, ... 23.5).
type TimeEntry struct {
	Date       string  `json:"date"`
	Slot       float64 `json:"hour"`
	ClientID   string  `json:"clientId"`
	ActivityID string  `json:"activityId"`
}

// FrozenDay marks a date whose entries may no longer be mutated.
type FrozenDay struct {
	Date     string `json:"date"`
	FrozenAt int64  `json:"frozenAt"`
}

// WorkHours is the display window preference: which hours the grids render.
// It never restricts which slots can be toggled or exported.
type WorkHours struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Valid reports whether the window stays inside the day with a non-negative
// span.
func (wh WorkHours) Valid() bool {
	return wh.Start >= 0 && wh.End <= 23 && wh.Start <= wh.End
}
