package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lifehub/internal/config"
	"lifehub/internal/query"
	"lifehub/internal/store"
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
)

var domains = []query.Domain{
	query.DomainTasks,
	query.DomainFinance,
	query.DomainMood,
	query.DomainNotes,
}

var scopes = []query.RangeKind{
	query.RangeAll,
	query.RangeToday,
	query.RangeWeek,
	query.RangeMonth,
	query.RangeQuarter,
	query.RangeYear,
}

type Model struct {
	width, height int
	mode          mode

	domainIdx int
	scopeIdx  int
	archived  bool
	search    string
	page      int
	cursor    int

	// current page of the pipeline output
	entries  []query.Record
	pageInfo query.Pagination
	warnings []string
	agg      query.Aggregate

	searchInput textinput.Model

	loc *time.Location
	now time.Time

	st     *store.Store
	cfg    config.Config
	theme  Theme
	status string
}

type recordsLoadedMsg struct {
	entries  []query.Record
	pageInfo query.Pagination
	warnings []string
	agg      query.Aggregate
	err      error
}

type tickMsg struct{ now time.Time }

func tickNow() tea.Cmd {
	return tea.Tick(time.Minute, func(time.Time) tea.Msg { return tickMsg{now: time.Now()} })
}

// Run opens the dashboard on an already-open store.
func Run(st *store.Store, cfg config.Config) error {
	loc := cfg.Location()

	si := textinput.New()
	si.Placeholder = "search title, notes, category, tags..."
	si.CharLimit = 128
	si.Width = 48

	m := Model{
		domainIdx:   0,
		scopeIdx:    0,
		page:        1,
		searchInput: si,
		loc:         loc,
		now:         time.Now().In(loc),
		st:          st,
		cfg:         cfg,
		theme:       DefaultTheme,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickNow(), m.loadRecordsCmd())
}

func (m Model) domain() query.Domain { return domains[m.domainIdx] }

// loadRecordsCmd runs the full pipeline off the event loop: snapshot, filter,
// sort, paginate, summarize.
func (m Model) loadRecordsCmd() tea.Cmd {
	domain := m.domain()
	crit := query.Criteria{
		Search: m.search,
		Range:  scopes[m.scopeIdx],
	}
	if m.archived {
		crit.View = query.ViewArchived
	}
	now, loc, page := m.now, m.loc, m.page
	st := m.st

	return func() tea.Msg {
		records, err := st.List(domain)
		if err != nil {
			return recordsLoadedMsg{err: err}
		}

		win, winOK := query.ResolveWindow(crit.Range, now, loc, "", "")
		filtered, warnings := query.Filter(records, crit, win, winOK)

		key := query.SortByDate
		if domain == query.DomainNotes {
			key = query.SortByUpdated
		}
		pinnedFirst := domain == query.DomainTasks || domain == query.DomainNotes
		sorted := query.Sort(filtered, key, query.Desc, pinnedFirst)

		entries, pageInfo := query.Paginate(sorted, page, 20)
		agg := query.Summarize(filtered, domain, now, loc)

		return recordsLoadedMsg{
			entries:  entries,
			pageInfo: pageInfo,
			warnings: warnings,
			agg:      agg,
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		m.now = msg.now.In(m.loc)
		return m, tea.Batch(tickNow(), m.loadRecordsCmd())

	case recordsLoadedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.entries = msg.entries
		m.pageInfo = msg.pageInfo
		m.warnings = msg.warnings
		m.agg = msg.agg
		if m.cursor >= len(m.entries) {
			m.cursor = max(0, len(m.entries)-1)
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeSearch {
			return m.updateSearch(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeNormal
		m.search = strings.TrimSpace(m.searchInput.Value())
		m.page = 1
		return m, m.loadRecordsCmd()
	case "esc":
		m.mode = modeNormal
		m.searchInput.SetValue(m.search)
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.domainIdx = (m.domainIdx + 1) % len(domains)
		m.page, m.cursor = 1, 0
		return m, m.loadRecordsCmd()
	case "shift+tab":
		m.domainIdx = (m.domainIdx + len(domains) - 1) % len(domains)
		m.page, m.cursor = 1, 0
		return m, m.loadRecordsCmd()

	case "r":
		m.scopeIdx = (m.scopeIdx + 1) % len(scopes)
		m.page, m.cursor = 1, 0
		return m, m.loadRecordsCmd()

	case "a":
		m.archived = !m.archived
		m.page, m.cursor = 1, 0
		return m, m.loadRecordsCmd()

	case "/":
		m.mode = modeSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case "esc":
		if m.search != "" {
			m.search = ""
			m.searchInput.SetValue("")
			m.page = 1
			return m, m.loadRecordsCmd()
		}
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		return m, nil

	case "left", "h":
		if m.pageInfo.HasPrev() {
			m.page--
			m.cursor = 0
			return m, m.loadRecordsCmd()
		}
		return m, nil
	case "right", "l":
		if m.pageInfo.HasNext() {
			m.page++
			m.cursor = 0
			return m, m.loadRecordsCmd()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("LifeHub") + "  " + m.renderTabs() + "\n")
	b.WriteString(m.theme.Hint.Render(fmt.Sprintf("range: %s  view: %s  %s",
		scopes[m.scopeIdx], m.viewLabel(), m.searchLabel())) + "\n\n")

	for i, rec := range m.entries {
		line := m.renderRecord(rec)
		if i == m.cursor {
			line = m.theme.Selected.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if len(m.entries) == 0 {
		b.WriteString(m.theme.Hint.Render("no entries") + "\n")
	}

	b.WriteString("\n" + m.theme.Label.Render(m.pageInfo.Summary()) + "\n")
	b.WriteString(m.renderSummary() + "\n")

	for _, w := range m.warnings {
		b.WriteString(m.theme.Error.Render("warning: "+w) + "\n")
	}
	if m.status != "" {
		b.WriteString(m.theme.Error.Render(m.status) + "\n")
	}

	if m.mode == modeSearch {
		b.WriteString("\n" + m.searchInput.View() + "\n")
	} else {
		b.WriteString("\n" + m.theme.Hint.Render("tab: domain  r: range  a: archive  /: search  h/l: page  q: quit") + "\n")
	}
	return b.String()
}

func (m Model) renderTabs() string {
	parts := make([]string, len(domains))
	for i, d := range domains {
		if i == m.domainIdx {
			parts[i] = m.theme.TabOn.Render(string(d))
		} else {
			parts[i] = m.theme.TabOff.Render(string(d))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) viewLabel() string {
	if m.archived {
		return "archived"
	}
	return "active"
}

func (m Model) searchLabel() string {
	if m.search == "" {
		return ""
	}
	return fmt.Sprintf("search: %q", m.search)
}

func (m Model) renderRecord(rec query.Record) string {
	head := rec.Title
	if head == "" {
		head = rec.Notes
	}
	if head == "" {
		head = "(untitled)"
	}

	line := m.theme.Label.Render(rec.Date) + "  " + m.theme.Value.Render(head)
	if rec.Pinned {
		line = m.theme.Pinned.Render("*") + " " + line
	} else {
		line = "  " + line
	}

	switch rec.Domain {
	case query.DomainFinance:
		line += "  " + m.theme.Value.Render(strconv.FormatFloat(rec.Amount, 'f', 2, 64))
	case query.DomainMood:
		line += "  " + m.theme.Value.Render(strconv.Itoa(rec.Score)+"/10")
	case query.DomainTasks:
		line += "  " + m.theme.Hint.Render(rec.Status)
	}
	if rec.Category != "" {
		line += "  " + m.theme.Hint.Render("["+rec.Category+"]")
	}
	return line
}

// renderSummary shows the aggregate strip under the list.
func (m Model) renderSummary() string {
	parts := []string{
		fmt.Sprintf("entries %d", m.agg.TotalCount),
		fmt.Sprintf("streak %d (best %d)", m.agg.StreakCurrent, m.agg.StreakBest),
	}
	switch m.domain() {
	case query.DomainFinance:
		parts = append(parts, fmt.Sprintf("balance %.2f", m.agg.Balance))
	case query.DomainMood:
		parts = append(parts, fmt.Sprintf("trend %+.1f", m.agg.TrendDelta))
	}
	return m.theme.Border.Render(lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, "   ")))
}
