// Package ui renders a search session in the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"portfolio/internal/search"
	"portfolio/internal/searchindex"
)

const maxRows = 10

// Options configures a Model.
type Options struct {
	// SiteURL is prefixed to selected result URLs.
	SiteURL string
	// StartOpen opens the search box immediately.
	StartOpen bool
	NoColor   bool
}

// Model is the Bubble Tea model of the search box.
type Model struct {
	session  *search.Session
	entries  []searchindex.Entry
	input    textinput.Model
	styles   Styles
	siteURL  string
	selected string
	quitting bool
	width    int
}

// NewModel creates a model over entries.
func NewModel(entries []searchindex.Entry, opts Options) *Model {
	in := textinput.New()
	in.Placeholder = "Search pages, posts and papers"
	in.Prompt = "> "
	in.CharLimit = 200

	m := &Model{
		entries: entries,
		input:   in,
		styles:  DefaultStyles(),
		siteURL: strings.TrimRight(opts.SiteURL, "/"),
		width:   80,
	}
	if opts.NoColor {
		m.styles = NoColorStyles()
	}
	m.session = search.NewSession(entries, func(url string) {
		m.selected = m.siteURL + url
	})
	if opts.StartOpen {
		m.open()
	}
	return m
}

// Selected returns the absolute URL of the chosen result, or "" when the
// user quit without choosing.
func (m *Model) Selected() string { return m.selected }

// Session exposes the underlying session state.
func (m *Model) Session() *search.Session { return m.session }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.session.IsOpen() {
		return textinput.Blink
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// ctrl+k is the toggle shortcut; the text input would otherwise
		// treat it as delete-to-end-of-line.
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+k":
			if m.session.IsOpen() {
				m.close()
				return m, nil
			}
			return m, m.open()
		}

		if !m.session.IsOpen() {
			switch msg.String() {
			case "/", "enter":
				return m, m.open()
			case "q", "esc":
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "esc":
			m.close()
			return m, nil
		case "up", "ctrl+p":
			m.session.MoveUp()
			return m, nil
		case "down", "ctrl+n":
			m.session.MoveDown()
			return m, nil
		case "enter":
			if _, ok := m.session.Enter(); ok {
				m.input.Reset()
				m.input.Blur()
				return m, tea.Quit
			}
			return m, nil
		}
	}

	if !m.session.IsOpen() {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.session.Query() {
		m.session.SetQuery(m.input.Value())
	}
	return m, cmd
}

func (m *Model) open() tea.Cmd {
	m.session.Open()
	return m.input.Focus()
}

func (m *Model) close() {
	m.session.Close()
	m.input.Reset()
	m.input.Blur()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.selected != "" {
		return ""
	}
	if !m.session.IsOpen() {
		return m.styles.Help.Render("ctrl+k or / to search, q to quit") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	results := m.session.Results()
	switch {
	case len(results) == 0 && strings.TrimSpace(m.session.Query()) != "":
		b.WriteString(m.styles.Row.Render("No results"))
		b.WriteString("\n")
		if hints := search.Suggest(m.entries, m.session.Query()); len(hints) > 0 {
			b.WriteString(m.styles.Crumb.Render("Did you mean: " + strings.Join(hints, ", ")))
			b.WriteString("\n")
		}
	case len(results) == 0:
		b.WriteString(m.styles.Row.Render("Nothing to show"))
		b.WriteString("\n")
	default:
		m.renderRows(&b, results)
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("↑/↓ move  enter open  esc close  ctrl+c quit"))

	width := m.width - 4
	if width < 40 {
		width = 40
	}
	return m.styles.Panel.Width(width).Render(b.String()) + "\n"
}

func (m *Model) renderRows(b *strings.Builder, results []search.Result) {
	active := m.session.ActiveIndex()
	start := 0
	if active >= maxRows {
		start = active - maxRows + 1
	}
	end := start + maxRows
	if end > len(results) {
		end = len(results)
	}

	for i := start; i < end; i++ {
		r := results[i]
		cursor := "  "
		label := m.styles.Row
		if i == active {
			cursor = "▸ "
			label = m.styles.Active
		}
		b.WriteString(cursor)
		b.WriteString(m.styles.Category.Render(string(r.Entry.Category)))
		b.WriteString(label.Render(rowLabel(r)))
		b.WriteString("\n")
		if i == active {
			if snippet := r.Snippet(); snippet != "" {
				b.WriteString("  ")
				b.WriteString(m.styles.Snippet.Render(snippet))
				b.WriteString("\n")
			}
		}
	}
	if len(results) > end {
		b.WriteString(m.styles.Help.Render(fmt.Sprintf("  … %d more", len(results)-end)))
		b.WriteString("\n")
	}
}

func rowLabel(r search.Result) string {
	if len(r.Breadcrumb) > 0 {
		return strings.Join(r.Breadcrumb, " › ")
	}
	return r.Title()
}
