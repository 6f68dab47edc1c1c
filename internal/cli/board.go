package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/pursuit/internal/app"
	"github.com/alexanderramin/pursuit/internal/cli/formatter"
	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBoardCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Browse the campaign interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return errors.New("board needs an interactive terminal; use campaign instead")
			}
			_, err := tea.NewProgram(newBoardModel(a), tea.WithAltScreen()).Run()
			return err
		},
	}
}

type boardKeyMap struct {
	Detail  key.Binding
	Advance key.Binding
	Reload  key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func defaultBoardKeys() boardKeyMap {
	return boardKeyMap{
		Detail:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Advance: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "advance")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k boardKeyMap) shortHelp() []key.Binding {
	return []key.Binding{k.Detail, k.Advance, k.Reload, k.Quit}
}

type boardLoadedMsg struct {
	resp *app.CampaignResponse
	err  error
}

type boardDetailMsg struct {
	text string
	err  error
}

type boardAdvancedMsg struct {
	resp *app.AdvanceResponse
	err  error
}

// boardModel lists the campaign in a table. Enter shows a record, a moves
// the selected record one stage forward.
type boardModel struct {
	app    *App
	policy domain.Policy
	keys   boardKeyMap
	table  table.Model

	items    []app.CampaignItem
	summary  app.CampaignSummary
	warnings []string

	loading bool
	err     error
	detail  string
	notice  string
	height  int
}

var boardColumns = []table.Column{
	{Title: "URGENCY", Width: 9},
	{Title: "ID", Width: 28},
	{Title: "STATUS", Width: 10},
	{Title: "DEADLINE", Width: 10},
	{Title: "WHEN", Width: 9},
	{Title: "EFFORT", Width: 8},
	{Title: "OK", Width: 3},
}

func newBoardModel(a *App) *boardModel {
	t := table.New(
		table.WithColumns(boardColumns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(formatter.ColorHeader).Bold(true)
	styles.Selected = styles.Selected.Foreground(formatter.ColorFg).Background(formatter.ColorDim).Bold(true)
	t.SetStyles(styles)

	return &boardModel{
		app:     a,
		policy:  a.policy(),
		keys:    defaultBoardKeys(),
		table:   t,
		loading: true,
	}
}

func (m *boardModel) Init() tea.Cmd {
	return m.load()
}

func (m *boardModel) load() tea.Cmd {
	a := m.app
	return func() tea.Msg {
		resp, err := a.Services.Campaign.Campaign(context.Background(), app.CampaignRequest{Now: a.now()})
		return boardLoadedMsg{resp: resp, err: err}
	}
}

func (m *boardModel) selected() (app.CampaignItem, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.items) {
		return app.CampaignItem{}, false
	}
	return m.items[i], true
}

// nextStage is the forward move the board offers. Outcome needs a tag and
// is left to the advance command.
func (m *boardModel) nextStage(s domain.Status) (domain.Status, bool) {
	idx := m.policy.StageIndex(s)
	if idx < 0 || idx+1 >= len(m.policy.StatusOrder) {
		return "", false
	}
	next := m.policy.StatusOrder[idx+1]
	return next, next != domain.StatusOutcome
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		if h := msg.Height - 10; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case boardLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.setCampaign(msg.resp)
		}
		return m, nil

	case boardDetailMsg:
		if msg.err != nil {
			m.notice = formatter.StyleRed.Render(msg.err.Error())
			return m, nil
		}
		m.detail = msg.text
		return m, nil

	case boardAdvancedMsg:
		if msg.err != nil {
			m.notice = formatter.StyleRed.Render(msg.err.Error())
			return m, nil
		}
		m.notice = strings.TrimRight(formatter.Advance(msg.resp), "\n")
		return m, m.load()

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *boardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case m.detail != "":
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Detail) {
			m.detail = ""
		}
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		m.notice = ""
		return m, m.load()
	case key.Matches(msg, m.keys.Detail):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.show(it.ID)
	case key.Matches(msg, m.keys.Advance):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		next, ok := m.nextStage(it.Status)
		if !ok {
			m.notice = formatter.Dim(fmt.Sprintf("%s: use the advance command from %s", it.ID, it.Status))
			return m, nil
		}
		return m, m.advance(it.ID, next)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *boardModel) show(id string) tea.Cmd {
	a := m.app
	return func() tea.Msg {
		resp, err := a.Services.Opportunities.Show(context.Background(), app.ShowRequest{ID: id, Now: a.now()})
		if err != nil {
			return boardDetailMsg{err: err}
		}
		return boardDetailMsg{text: formatter.Show(resp)}
	}
}

func (m *boardModel) advance(id string, to domain.Status) tea.Cmd {
	a := m.app
	return func() tea.Msg {
		resp, err := a.Services.Opportunities.Advance(context.Background(), app.AdvanceRequest{ID: id, To: to, Now: a.now()})
		return boardAdvancedMsg{resp: resp, err: err}
	}
}

func (m *boardModel) setCampaign(resp *app.CampaignResponse) {
	m.summary = resp.Summary
	m.warnings = resp.Warnings
	m.items = m.items[:0]
	var rows []table.Row
	for _, g := range resp.Groups {
		for _, it := range g.Items {
			m.items = append(m.items, it)
			deadline, when := string(it.DeadlineType), "--"
			if it.DeadlineDate != nil {
				deadline = *it.DeadlineDate
			}
			if it.DaysLeft != nil {
				when = formatter.DaysLabel(*it.DaysLeft)
			}
			ok := "yes"
			if !it.Feasible {
				ok = "no"
			}
			rows = append(rows, table.Row{
				string(g.Urgency), it.ID, string(it.Status), deadline, when, string(it.Effort), ok,
			})
		}
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m *boardModel) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading campaign...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.detail != "" {
		return m.detail + "\n" + formatter.Dim("esc back · q quit") + "\n"
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Campaign") + "\n")
	fmt.Fprintf(&b, "%s opportunities  %s infeasible  %s effort  %s\n\n",
		formatter.Bold(formatter.Count(m.summary.CountsTotal)),
		formatter.Count(m.summary.CountsInfeasible),
		formatter.FormatMinutes(m.summary.TotalRequiredMin),
		formatter.Dim(fmt.Sprintf("horizon %dd", m.summary.HorizonDays)))

	if len(m.items) == 0 {
		b.WriteString("  " + formatter.Dim("Nothing actionable inside the horizon.") + "\n")
	} else {
		b.WriteString(m.table.View() + "\n")
	}

	if m.notice != "" {
		b.WriteString("\n" + m.notice + "\n")
	}
	for _, w := range m.warnings {
		b.WriteString(formatter.Warn(w) + "\n")
	}

	help := make([]string, 0, len(m.keys.shortHelp()))
	for _, k := range m.keys.shortHelp() {
		help = append(help, k.Help().Key+" "+k.Help().Desc)
	}
	b.WriteString("\n" + formatter.Dim(strings.Join(help, " · ")) + "\n")
	return b.String()
}
