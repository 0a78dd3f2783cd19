package cli

import (
	"bytes"
	"time"

	"github.com/spf13/cobra"

	"github.com/valery-blanc/timesheet-pal/internal/kv"
	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

// memStore returns a store over an in-memory backend with a deterministic
// clock that advances one second per call.
func memStore() *timesheet.Store {
	base := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	calls := 0
	return timesheet.NewWithClock(kv.NewMemoryStore(), func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	})
}

// capture wires a fresh buffer into cmd and returns both.
func capture(cmd *cobra.Command) (*cobra.Command, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	cmd.SetOut(stdout)
	return cmd, stdout
}

func fixedNow() time.Time {
	return time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)
}
