package cli

import (
	"fmt"
	"time"

	"github.com/valery-blanc/timesheet-pal/internal/config"
	"github.com/valery-blanc/timesheet-pal/internal/slotutil"
	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

// openStore loads the configuration and opens the configured backend.
func openStore() (*timesheet.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}
	backend, err := cfg.OpenStore()
	if err != nil {
		return nil, config.Config{}, err
	}
	return timesheet.New(backend), cfg, nil
}

// configWindow converts the configured work-hours window into the display
// preference type. The stored preference, when present, still wins.
func configWindow(cfg config.Config) timesheet.WorkHours {
	return timesheet.WorkHours{Start: cfg.WorkHours.Start, End: cfg.WorkHours.End}
}

// resolveDate turns a --date flag into a concrete date. An empty flag means
// the store's current view date when one is set, today otherwise.
func resolveDate(store *timesheet.Store, flagVal string, nowFunc func() time.Time) (string, error) {
	if flagVal != "" {
		if !slotutil.ValidDate(flagVal) {
			return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", flagVal)
		}
		return flagVal, nil
	}
	viewDate, err := store.CurrentViewDate()
	if err != nil {
		return "", err
	}
	if viewDate != "" {
		return viewDate, nil
	}
	return slotutil.FormatDate(nowFunc()), nil
}

// resolvePair resolves the client and activity an entry should point at,
// falling back to the stored selection when a reference is empty.
func resolvePair(store *timesheet.Store, clientRef, activityRef string) (timesheet.Client, timesheet.Activity, error) {
	if clientRef == "" {
		id, err := store.SelectedClient()
		if err != nil {
			return timesheet.Client{}, timesheet.Activity{}, err
		}
		clientRef = id
	}
	if clientRef == "" {
		return timesheet.Client{}, timesheet.Activity{}, fmt.Errorf("no client given and none selected (run 'timesheet select client')")
	}
	client, ok, err := store.FindClient(clientRef)
	if err != nil {
		return timesheet.Client{}, timesheet.Activity{}, err
	}
	if !ok {
		return timesheet.Client{}, timesheet.Activity{}, fmt.Errorf("unknown client %q", clientRef)
	}

	if activityRef == "" {
		id, err := store.SelectedActivity()
		if err != nil {
			return timesheet.Client{}, timesheet.Activity{}, err
		}
		activityRef = id
	}
	if activityRef == "" {
		return timesheet.Client{}, timesheet.Activity{}, fmt.Errorf("no activity given and none selected (run 'timesheet select activity')")
	}
	activity, ok, err := store.FindActivity(activityRef)
	if err != nil {
		return timesheet.Client{}, timesheet.Activity{}, err
	}
	if !ok {
		return timesheet.Client{}, timesheet.Activity{}, fmt.Errorf("unknown activity %q", activityRef)
	}
	return client, activity, nil
}
