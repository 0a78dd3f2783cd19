package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/valery-blanc/timesheet-pal/internal/export"
	"github.com/valery-blanc/timesheet-pal/internal/slotutil"
	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

var exportCmd = LeafCommand{
	Use:   "export",
	Short: "Export entries to CSV or PDF",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "scope", Usage: "day, week, month or all", Default: "week"},
		{Name: "date", Usage: "anchor date for the scope (YYYY-MM-DD, default: current view date)"},
		{Name: "format", Usage: "csv or pdf", Default: "csv"},
		{Name: "out", Usage: "output file (default: derived from scope and date)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore()
		if err != nil {
			return err
		}
		scope, _ := cmd.Flags().GetString("scope")
		date, _ := cmd.Flags().GetString("date")
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")
		return runExport(cmd, store, scope, date, format, out, cfg.Locale, time.Now)
	},
}.Build()

func runExport(
	cmd *cobra.Command,
	store *timesheet.Store,
	scopeFlag, dateFlag, format, outPath, locale string,
	nowFunc func() time.Time,
) error {
	scope, err := export.ParseScope(scopeFlag)
	if err != nil {
		return err
	}
	date, err := resolveDate(store, dateFlag, nowFunc)
	if err != nil {
		return err
	}
	anchor, err := slotutil.ParseDate(date)
	if err != nil {
		return err
	}

	entries, err := store.Entries()
	if err != nil {
		return err
	}
	clients, err := store.Clients()
	if err != nil {
		return err
	}
	activities, err := store.Activities()
	if err != nil {
		return err
	}

	var data []byte
	var ext string
	switch format {
	case "csv":
		ext = "csv"
		headers := export.DefaultHeaders
		if locale == "fr" {
			headers = export.FrenchHeaders
		}
		data = export.CSV(entries, clients, activities, scope, anchor, headers)
	case "pdf":
		ext = "pdf"
		data, err = export.PDF(entries, clients, activities, scope, anchor, "Timesheet")
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q (valid: csv, pdf)", format)
	}

	if outPath == "" {
		outPath = export.Filename(scope, anchor, ext)
	}
	if outPath == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("exported to %s", Primary(outPath))))
	return nil
}
