package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/parser"
	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/session"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	stateBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2)

	logBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	autocompleteStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#F25D94"))

	endedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F25D94"))
)

const welcome = "A shadow stirs before you.\nType 'help' to see what you can do, 'exit' to leave."

type suggestion string

func (s suggestion) Title() string       { return string(s) }
func (s suggestion) Description() string { return "" }
func (s suggestion) FilterValue() string { return string(s) }

type replModel struct {
	ctx         context.Context
	enc         *session.Encounter
	textInput   textinput.Model
	viewport    viewport.Model
	suggestions list.Model
	history     []string
	historyIdx  int
	logContent  string
	width       int
	height      int
	showList    bool
}

func newREPLModel(ctx context.Context, enc *session.Encounter) replModel {
	ti := textinput.New()
	ti.Placeholder = "Enter command (e.g., illuminate)..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 60

	vp := viewport.New(0, 0)
	vp.SetContent(welcome)

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)
	sugList := list.New([]list.Item{}, delegate, 50, 7)
	sugList.SetShowTitle(false)
	sugList.SetShowStatusBar(false)
	sugList.SetFilteringEnabled(false)
	sugList.SetShowHelp(false)

	return replModel{
		ctx:         ctx,
		enc:         enc,
		textInput:   ti,
		viewport:    vp,
		suggestions: sugList,
		history:     []string{},
		historyIdx:  -1,
		logContent:  welcome,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

// completions returns the commands matching the typed prefix. After "help "
// the command names themselves are offered as topics.
func completions(val string) []string {
	lower := strings.ToLower(val)
	if lower == "" {
		return nil
	}
	var out []string
	if rest, ok := strings.CutPrefix(lower, "help "); ok {
		for _, c := range parser.Commands() {
			if strings.HasPrefix(c, rest) && len(rest) < len(c) {
				out = append(out, "help "+c)
			}
		}
		return out
	}
	for _, c := range append(parser.Commands(), "exit") {
		if strings.HasPrefix(c, lower) && len(lower) < len(c) {
			out = append(out, c)
		}
	}
	return out
}

func (m *replModel) updateSuggestions() {
	var items []list.Item
	for _, c := range completions(m.textInput.Value()) {
		items = append(items, suggestion(c))
	}

	m.suggestions.SetItems(items)
	m.showList = len(items) > 0
	if m.showList {
		m.suggestions.SetHeight(max(min(len(items), 10), 4))
		m.suggestions.ResetSelected()
	}
}

// submit runs one command line against the encounter and appends the
// result to the log view.
func (m *replModel) submit(val string) {
	if len(m.history) == 0 || m.history[len(m.history)-1] != val {
		m.history = append(m.history, val)
	}
	m.historyIdx = -1
	m.textInput.SetValue("")
	m.updateSuggestions()

	m.logContent += fmt.Sprintf("\n\n> %s\n", val)
	text, err := m.enc.Execute(m.ctx, val)
	if err != nil {
		m.logContent += fmt.Sprintf("Error: %v", err)
	} else {
		m.logContent += text
	}
	if m.enc.Ended() {
		m.logContent += "\n" + endedStyle.Render("The encounter is over. Press esc to leave.")
	}

	m.viewport.SetContent(m.logContent)
	m.viewport.GotoBottom()
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		lsCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyUp:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else if len(m.history) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.history) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.history[m.historyIdx])
				m.updateSuggestions()
			}

		case tea.KeyDown:
			if m.showList {
				m.suggestions, lsCmd = m.suggestions.Update(msg)
			} else if len(m.history) > 0 && m.historyIdx != -1 {
				if m.historyIdx < len(m.history)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.history[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.updateSuggestions()
			}

		case tea.KeyTab:
			if m.showList {
				if i, ok := m.suggestions.SelectedItem().(suggestion); ok {
					m.textInput.SetValue(string(i))
					m.textInput.SetCursor(len(string(i)))
					m.updateSuggestions()
				}
			}

		case tea.KeyEnter:
			val := strings.TrimSpace(m.textInput.Value())
			if val == "exit" || val == "quit" {
				return m, tea.Quit
			}
			if val != "" {
				m.submit(val)
			}

		default:
			m.textInput, tiCmd = m.textInput.Update(msg)
			m.updateSuggestions()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.suggestions.SetWidth(msg.Width - 6)
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	titleH := lipgloss.Height(titleStyle.Render("Dummy"))
	stateH := lipgloss.Height(m.renderState())
	inputH := 1
	listAreaHeight := 0
	if m.showList {
		listAreaHeight = m.suggestions.Height() + 2
	}
	infoH := lipgloss.Height(infoStyle.Render("Dummy"))
	paddingH := 7

	overhead := titleH + stateH + inputH + listAreaHeight + infoH + paddingH + 4
	m.viewport.Height = max(m.height-overhead, 4)

	return m, tea.Batch(tiCmd, vpCmd, lsCmd)
}

func (m *replModel) renderState() string {
	view := session.FormatStatus(m.enc.State(), m.enc.EndureCost())
	if m.enc.Ended() {
		view += "\n\n" + endedStyle.Render(m.enc.Result().Reason)
	}
	return stateBoxStyle.Width(max(m.width-4, 0)).Render(view)
}

func (m *replModel) title() string {
	s := m.enc.State()
	name := "unknown shadow"
	if s.Enemy != nil {
		name = s.Enemy.Name
	}
	return titleStyle.Render(fmt.Sprintf(" Luminaris | %s | turn %d ", name, s.Turn))
}

func (m *replModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	logBox := logBoxStyle.Width(m.width - 4).Render(m.viewport.View())

	inputArea := m.textInput.View()
	if m.showList {
		inputArea = fmt.Sprintf("%s\n%s", inputArea, autocompleteStyle.Render(m.suggestions.View()))
	}

	mainView := lipgloss.JoinVertical(lipgloss.Left,
		m.title(),
		m.renderState(),
		logBox,
		"\n",
		inputArea,
		infoStyle.Render("(esc to quit, tab to complete, up/down history)"),
	)

	return mainView + strings.Repeat("\n", 7)
}

// RunTUI drives the encounter from an alternate-screen terminal UI until the
// player quits.
func RunTUI(ctx context.Context, enc *session.Encounter) error {
	m := newREPLModel(ctx, enc)
	p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
