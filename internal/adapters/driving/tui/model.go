// Package tui provides the interactive debounced shop search.
//
// The model follows the Elm architecture: a single Update loop owns all
// state, so no synchronisation is needed beyond bubbletea's own message
// dispatch. Debouncing uses the tick-tag pattern: every edit bumps a
// sequence counter and arms a tick carrying that counter; a tick whose
// counter is stale (the user typed again) is dropped, so only the text
// value present when the window expires is searched.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/shopfeed-cli/internal/core/domain"
	"github.com/custodia-labs/shopfeed-cli/internal/core/ports/driving"
	"github.com/custodia-labs/shopfeed-cli/internal/core/services"
)

// DefaultDebounce is the trailing-edge debounce window.
const DefaultDebounce = 300 * time.Millisecond

// state tracks what the space under the input is showing.
type state int

const (
	// stateIdle: empty query, recent-search chips visible.
	stateIdle state = iota
	// stateHint: non-empty query below the minimum length.
	stateHint
	// stateResults: a settled search produced results.
	stateResults
	// stateEmpty: a settled search produced nothing.
	stateEmpty
)

// debounceMsg fires when a debounce window expires. seq identifies the
// edit that armed it; stale values are dropped.
type debounceMsg struct {
	seq int
}

// searchDoneMsg carries settled search results back to the model.
type searchDoneMsg struct {
	query   string
	results []domain.ShopItem
}

// historyMsg carries a refreshed recent-search list back to the model.
type historyMsg struct {
	terms []string
}

// Model is the bubbletea model for the search screen.
type Model struct {
	styles  *Styles
	input   textinput.Model
	search  driving.SearchService
	history driving.HistoryService
	ctx     context.Context

	shops    []domain.ShopItem
	debounce time.Duration

	// seq tags the most recent edit; ticks carrying older values are stale.
	seq int

	// lastSettled collapses duplicate settles: identical consecutive
	// trimmed queries do not re-trigger the matcher.
	lastSettled string

	state      state
	results    []domain.ShopItem
	recent     []string
	cursor     int
	chipCursor int

	width  int
	height int
}

// NewModel creates the search model over the given shop candidates.
func NewModel(
	search driving.SearchService,
	history driving.HistoryService,
	shops []domain.ShopItem,
) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search shops..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &Model{
		styles:   DefaultStyles(),
		input:    ti,
		search:   search,
		history:  history,
		ctx:      context.Background(),
		shops:    shops,
		debounce: DefaultDebounce,
		state:    stateIdle,
		width:    80,
		height:   24,
	}
}

// WithContext sets the context used for service calls.
func (m *Model) WithContext(ctx context.Context) *Model {
	m.ctx = ctx
	return m
}

// WithDebounce overrides the debounce window. Useful for tests.
func (m *Model) WithDebounce(d time.Duration) *Model {
	m.debounce = d
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadHistory())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case debounceMsg:
		if msg.seq != m.seq {
			return m, nil // stale: the user typed again
		}
		return m, m.settle()

	case searchDoneMsg:
		return m.handleSearchDone(msg)

	case historyMsg:
		m.recent = msg.terms
		if m.chipCursor >= len(m.recent) {
			m.chipCursor = 0
		}
		return m, nil
	}

	return m, nil
}

// handleKey routes keyboard input. Navigation keys act on whatever list
// is visible; everything else goes to the text input, and an edit arms
// a fresh debounce window (cancelling any pending one via seq).
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyUp:
		m.moveUp()
		return m, nil

	case tea.KeyDown:
		m.moveDown()
		return m, nil

	case tea.KeyEnter:
		if m.chipsVisible() && len(m.recent) > 0 {
			return m, m.selectChip(m.recent[m.chipCursor])
		}
		return m, nil

	case tea.KeyCtrlD:
		if m.chipsVisible() && len(m.recent) > 0 {
			return m, m.deleteChip(m.recent[m.chipCursor])
		}
		return m, nil

	case tea.KeyCtrlX:
		if m.chipsVisible() && len(m.recent) > 0 {
			return m, m.clearChips()
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != before {
		return m, tea.Batch(cmd, m.armDebounce())
	}
	return m, cmd
}

// armDebounce restarts the debounce window. Bumping seq implicitly
// cancels any pending tick: it will arrive stale.
func (m *Model) armDebounce() tea.Cmd {
	m.seq++
	seq := m.seq
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

// settle runs when a debounce window expires with no further edits.
func (m *Model) settle() tea.Cmd {
	trimmed := strings.TrimSpace(m.input.Value())
	if trimmed == m.lastSettled {
		return nil // duplicate-collapse
	}
	m.lastSettled = trimmed

	switch {
	case trimmed == "":
		m.state = stateIdle
		m.results = nil
		m.cursor = 0
		return nil

	case len([]rune(trimmed)) < services.MinQueryLength:
		m.state = stateHint
		m.results = nil
		m.cursor = 0
		return nil
	}

	query := m.input.Value()
	return func() tea.Msg {
		return searchDoneMsg{
			query:   trimmed,
			results: m.search.Search(m.ctx, query, m.shops),
		}
	}
}

// handleSearchDone publishes settled results and, on success, refreshes
// the recent-search chips (the search recorded the term).
func (m *Model) handleSearchDone(msg searchDoneMsg) (tea.Model, tea.Cmd) {
	m.results = msg.results
	m.cursor = 0

	if len(msg.results) == 0 {
		m.state = stateEmpty
		return m, nil
	}

	m.state = stateResults
	return m, m.loadHistory()
}

// selectChip sets the query text to a recent term, re-entering the
// debounce pipeline like any other edit.
func (m *Model) selectChip(term string) tea.Cmd {
	m.input.SetValue(term)
	m.input.CursorEnd()
	return m.armDebounce()
}

// deleteChip removes one term and refreshes the chip list immediately;
// history mutations are not debounced.
func (m *Model) deleteChip(term string) tea.Cmd {
	return func() tea.Msg {
		m.history.Delete(m.ctx, term)
		return historyMsg{terms: m.history.Recent(m.ctx)}
	}
}

// clearChips removes all terms and refreshes immediately.
func (m *Model) clearChips() tea.Cmd {
	return func() tea.Msg {
		m.history.DeleteAll(m.ctx)
		return historyMsg{terms: m.history.Recent(m.ctx)}
	}
}

// loadHistory fetches the recent-search list.
func (m *Model) loadHistory() tea.Cmd {
	return func() tea.Msg {
		return historyMsg{terms: m.history.Recent(m.ctx)}
	}
}

// chipsVisible reports whether the recent-search chips are on screen.
func (m *Model) chipsVisible() bool {
	return m.state == stateIdle
}

func (m *Model) moveUp() {
	switch m.state {
	case stateResults:
		if m.cursor > 0 {
			m.cursor--
		}
	case stateIdle:
		if m.chipCursor > 0 {
			m.chipCursor--
		}
	default:
	}
}

func (m *Model) moveDown() {
	switch m.state {
	case stateResults:
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
	case stateIdle:
		if m.chipCursor < len(m.recent)-1 {
			m.chipCursor++
		}
	default:
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := make([]string, 0, 8)

	sections = append(sections,
		m.styles.Title.Render("Shopfeed"),
		"",
		m.styles.InputField.Render(m.input.View()),
		"")

	switch m.state {
	case stateIdle:
		sections = append(sections, m.renderChips())
	case stateHint:
		sections = append(sections,
			m.styles.Muted.Render(fmt.Sprintf(
				"Keep typing: at least %d characters to search.", services.MinQueryLength)))
	case stateResults:
		sections = append(sections, m.renderResults())
	case stateEmpty:
		sections = append(sections,
			m.styles.Warning.Render(fmt.Sprintf(
				"No shops match %q.", strings.TrimSpace(m.input.Value()))))
	}

	sections = append(sections, "", m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderChips() string {
	if len(m.recent) == 0 {
		return m.styles.Muted.Render("No recent searches.")
	}

	lines := make([]string, 0, len(m.recent)+1)
	lines = append(lines, m.styles.Normal.Render("Recent searches:"))
	for i, term := range m.recent {
		indicator := "  "
		line := m.styles.Chip.Render(term)
		if i == m.chipCursor {
			indicator = "> "
			line = m.styles.Selected.Render(term)
		}
		lines = append(lines, indicator+line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderResults() string {
	lines := make([]string, 0, len(m.results)+1)
	lines = append(lines, m.styles.Normal.Render(
		fmt.Sprintf("%d shops:", len(m.results))))

	for i, shop := range m.results {
		suffix := ""
		if len(shop.Tags) > 0 {
			suffix = "  " + m.styles.Muted.Render("["+strings.Join(shop.Tags, ", ")+"]")
		}

		if i == m.cursor {
			lines = append(lines, "> "+m.styles.Selected.Render(shop.Title)+suffix)
		} else {
			lines = append(lines, "  "+m.styles.Normal.Render(shop.Title)+suffix)
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderHelp() string {
	help := "type to search - up/down navigate - esc quit"
	if m.chipsVisible() && len(m.recent) > 0 {
		help = "enter search chip - ctrl+d delete chip - ctrl+x clear all - esc quit"
	}
	return m.styles.Muted.Render(help)
}

// Run starts the TUI program.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
