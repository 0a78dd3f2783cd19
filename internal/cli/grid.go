package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/valery-blanc/timesheet-pal/internal/slotutil"
	"github.com/valery-blanc/timesheet-pal/internal/timesheet"
)

var (
	gridHeaderStyle   = lipgloss.NewStyle().Bold(true)
	gridFooterStyle   = lipgloss.NewStyle().Faint(true)
	gridEmptyStyle    = lipgloss.NewStyle().Faint(true)
	gridSelectedStyle = lipgloss.NewStyle().Reverse(true)
)

var gridCmd = LeafCommand{
	Use:   "grid",
	Short: "Interactively toggle a day's slots",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "date", Usage: "date to open (YYYY-MM-DD, default: current view date)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openStore()
		if err != nil {
			return err
		}
		dateFlag, _ := cmd.Flags().GetString("date")
		// Pipes get the static rendering.
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			return runDay(cmd, store, dateFlag, false, configWindow(cfg), time.Now)
		}
		date, err := resolveDate(store, dateFlag, time.Now)
		if err != nil {
			return err
		}
		m, err := newGridModel(store, date, configWindow(cfg))
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	},
}.Build()

type gridModel struct {
	store   *timesheet.Store
	date    string
	window  timesheet.WorkHours
	entries []timesheet.TimeEntry
	frozen  bool
	names   nameIndex
	cursor  int // index into visibleSlots()
	errMsg  string
}

func newGridModel(store *timesheet.Store, date string, fallback timesheet.WorkHours) (gridModel, error) {
	window, err := store.WorkHoursOr(fallback)
	if err != nil {
		return gridModel{}, err
	}
	names, err := pairNames(store)
	if err != nil {
		return gridModel{}, err
	}
	m := gridModel{store: store, date: date, window: window, names: names}
	if err := m.reload(); err != nil {
		return gridModel{}, err
	}
	return m, nil
}

func (m *gridModel) reload() error {
	entries, err := m.store.EntriesForDate(m.date)
	if err != nil {
		return err
	}
	frozen, err := m.store.IsDayFrozen(m.date)
	if err != nil {
		return err
	}
	m.entries = entries
	m.frozen = frozen
	return nil
}

// visibleSlots lists the slots the grid renders: the work-hours window, both
// halves of each hour.
func (m gridModel) visibleSlots() []float64 {
	slots := make([]float64, 0, (m.window.End-m.window.Start+1)*2)
	for h := m.window.Start; h <= m.window.End; h++ {
		slots = append(slots, float64(h), float64(h)+0.5)
	}
	return slots
}

func (m gridModel) Init() tea.Cmd {
	return nil
}

func (m gridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	slots := m.visibleSlots()
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(slots)-1 {
			m.cursor++
		}
	case "left":
		m.shiftDay(-1)
	case "right":
		m.shiftDay(1)
	case " ", "enter":
		m.toggleAt(slots[m.cursor], false)
	case "h":
		m.toggleAt(slots[m.cursor], true)
	case "f":
		if _, err := m.store.ToggleFreeze(m.date); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		if err := m.reload(); err != nil {
			m.errMsg = err.Error()
		}
	}
	return m, nil
}

func (m *gridModel) shiftDay(days int) {
	t, err := slotutil.ParseDate(m.date)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.date = slotutil.FormatDate(t.AddDate(0, 0, days))
	m.cursor = 0
	if err := m.store.SetCurrentViewDate(m.date); err != nil {
		m.errMsg = err.Error()
		return
	}
	if err := m.reload(); err != nil {
		m.errMsg = err.Error()
	}
}

func (m *gridModel) toggleAt(slot float64, fullHour bool) {
	m.errMsg = ""
	occupied, err := slotOccupied(m.store, m.date, slot, fullHour)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	clientID, activityID := "", ""
	if !occupied {
		client, activity, err := resolvePair(m.store, "", "")
		if err != nil {
			m.errMsg = err.Error()
			return
		}
		clientID, activityID = client.ID, activity.ID
	}

	var changed bool
	if fullHour {
		changed, err = m.store.ToggleHour(m.date, slotutil.Hour(slot), clientID, activityID)
	} else {
		changed, err = m.store.ToggleEntry(m.date, slot, clientID, activityID)
	}
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	if !changed && m.frozen {
		m.errMsg = m.date + " is frozen"
	}
	if err := m.reload(); err != nil {
		m.errMsg = err.Error()
	}
}

func (m gridModel) View() string {
	var b strings.Builder

	header := m.date
	if m.frozen {
		header += "  [frozen]"
	}
	b.WriteString(gridHeaderStyle.Render(header))
	b.WriteString("\n\n")

	for i, slot := range m.visibleSlots() {
		span := fmt.Sprintf("%s–%s", slotutil.Format(slot), slotutil.End(slot))
		label := ""
		if e, ok := timesheet.EntryAt(m.entries, m.date, slot); ok {
			label = m.names.line(e)
		}
		line := fmt.Sprintf(" %s  %-40s", span, label)
		switch {
		case i == m.cursor:
			line = gridSelectedStyle.Render(line)
		case label == "":
			line = gridEmptyStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(gridFooterStyle.Render("space toggle · h hour · ←/→ day · f freeze · q quit"))
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(Error(m.errMsg))
	}
	return b.String()
}
