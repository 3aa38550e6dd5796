package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/echo-breakout/internal/storage"
)

// PreferenceEditor is the storage used by the preferences screen.
type PreferenceEditor interface {
	PreferenceStore
	Preferences(defaults storage.Preferences) (storage.Preferences, error)
	All() ([]storage.Entry, error)
	Reset() error
}

// PrefsKeyMap defines the key bindings for the preferences screen.
type PrefsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PrefsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Reset, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PrefsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Reset, k.Quit},
	}
}

// DefaultPrefsKeyMap returns default key bindings.
func DefaultPrefsKeyMap() PrefsKeyMap {
	return PrefsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "done"),
		),
	}
}

// prefRow describes one editable switch.
type prefRow struct {
	key   string
	title string
	get   func(storage.Preferences) bool
	set   func(*storage.Preferences, bool)
}

var prefRows = []prefRow{
	{
		key:   storage.KeyAudioAccessibility,
		title: "Audio guidance",
		get:   func(p storage.Preferences) bool { return p.AudioAccessibility },
		set:   func(p *storage.Preferences, v bool) { p.AudioAccessibility = v },
	},
	{
		key:   storage.KeyVisuallyImpaired,
		title: "Low vision",
		get:   func(p storage.Preferences) bool { return p.VisuallyImpaired },
		set:   func(p *storage.Preferences, v bool) { p.VisuallyImpaired = v },
	},
}

// PrefsModel is the Bubble Tea model for the preferences screen.
type PrefsModel struct {
	store    PreferenceEditor
	defaults storage.Preferences
	prefs    storage.Preferences
	table    table.Model
	help     help.Model
	keys     PrefsKeyMap
	width    int
	height   int
	err      error
	quitting bool
}

// NewPrefsModel creates the preferences screen. defaults are shown for
// switches that were never stored.
func NewPrefsModel(store PreferenceEditor, defaults storage.Preferences, width, height int) PrefsModel {
	m := PrefsModel{
		store:    store,
		defaults: defaults,
		keys:     DefaultPrefsKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates the table with columns sized for the screen.
func (m *PrefsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Setting", Width: 16},
		{Title: "Value", Width: 6},
		{Title: "Updated", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(len(prefRows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the stored switches and refreshes the rows.
func (m *PrefsModel) load() {
	m.prefs = m.defaults
	updated := map[string]string{}

	prefs, err := m.store.Preferences(m.defaults)
	if err != nil {
		m.err = err
	} else {
		m.prefs = prefs
	}

	entries, err := m.store.All()
	if err != nil {
		m.err = err
	}
	for _, e := range entries {
		updated[e.Key] = e.UpdatedAt.Format("Jan 02 15:04")
	}

	rows := make([]table.Row, len(prefRows))
	for i, r := range prefRows {
		when, ok := updated[r.key]
		if !ok {
			when = "default"
		}
		rows[i] = table.Row{r.title, onOff(r.get(m.prefs)), when}
	}
	m.table.SetRows(rows)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Prefs returns the switches as currently shown.
func (m PrefsModel) Prefs() storage.Preferences {
	return m.prefs
}

// Init initializes the preferences model.
func (m PrefsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the preferences screen.
func (m PrefsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			row := prefRows[m.table.Cursor()]
			prefs := m.prefs
			row.set(&prefs, !row.get(prefs))
			m.err = m.store.SavePreferences(prefs)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Reset):
			m.err = m.store.Reset()
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the preferences screen.
func (m PrefsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("PREFERENCES", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString(errStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunPrefs runs the interactive preferences screen.
func RunPrefs(store PreferenceEditor, defaults storage.Preferences, width, height int) error {
	model := NewPrefsModel(store, defaults, width, height)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
