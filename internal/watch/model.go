// Package watch implements the live display dashboard: a Bubble Tea model
// that re-reads the display inventory on an interval and renders each
// display's capabilities.
package watch

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JosNun/displayreset/internal/display"
)

// Model is the Bubble Tea model for the watch dashboard.
type Model struct {
	inventory  *display.Inventory
	interval   time.Duration
	records    []display.Record
	width      int
	height     int
	lastUpdate time.Time
	quitting   bool
}

// New creates a dashboard over the given inventory.
func New(inv *display.Inventory, interval time.Duration) Model {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return Model{
		inventory: inv,
		interval:  interval,
	}
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// recordsMsg carries a fresh inventory snapshot.
type recordsMsg []display.Record

// Init kicks off the first poll and the refresh ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.poll(), m.tick())
}

// Update handles keys, ticks, and inventory snapshots.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			return m, m.poll()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		return m, tea.Batch(m.poll(), m.tick())

	case recordsMsg:
		m.records = msg
		m.lastUpdate = time.Now()
	}

	return m, nil
}

func (m Model) poll() tea.Cmd {
	inv := m.inventory
	return func() tea.Msg {
		return recordsMsg(inv.ListDisplays())
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
