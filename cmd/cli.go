package cmd

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/ws396/wmacalc/internal/analysis"
	"github.com/ws396/wmacalc/internal/settings"
	"github.com/ws396/wmacalc/internal/util"
	"go.uber.org/zap"
)

var (
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
)

// All view-related data goes through CLI
type CLI struct {
	quitting  bool
	textInput textinput.Model
	width     int
	info      string
	err       error
	help      string
	node      *ViewNode
	decimal   bool
	S         *settings.Settings
	Prices    []float64
	Weights   []float64
	Result    *analysis.Analysis
}

func InitialModel(s *settings.Settings) *CLI {
	ti := textinput.New()
	ti.Focus()
	ti.Width = 80

	return &CLI{
		textInput: ti,
		help:      "\\q - back to root, ctrl+c - quit",
		node:      root,
		decimal:   s.Decimal,
		S:         s,
		Weights:   append([]float64(nil), s.DefaultWeights...),
	}
}

func (m *CLI) Init() tea.Cmd {
	return textinput.Blink
}

func (m *CLI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m.QuitApp()
		case tea.KeyEnter:
			m.Logic()
			m.textInput.Reset()
			if m.quitting {
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	m.textInput, cmd = m.textInput.Update(msg)

	return m, cmd
}

// Logic runs the action of the current node on the submitted input and moves to the
// node it returns, if any.
func (m *CLI) Logic() {
	m.err = nil
	m.info = ""

	if m.textInput.Value() == "\\q" {
		m.node = root
		return
	}

	if next := m.node.action(m); next != nil {
		m.node = next
	}
}

func (m *CLI) HandleError(err error) {
	m.err = err
	util.Logger.Warn("input rejected", zap.Error(err), zap.String("input", m.textInput.Value()))
}

func (m *CLI) QuitApp() (tea.Model, tea.Cmd) {
	m.quitting = true

	return m, tea.Quit
}

func (m *CLI) View() string {
	if m.quitting {
		return ""
	}

	var errMsg string
	if m.err != nil {
		errMsg = m.err.Error()
	}

	err := errStyle.Render(errMsg)
	help := helpStyle.Render(m.help)
	border := borderStyle.Render(" ───────────────────────────────────────────")

	return wordwrap.String(
		indent.String(
			"\n"+m.node.view(m)+"\n\n"+m.textInput.View()+"\n\n"+border+"\n"+m.info+"\n"+err+"\n"+help,
			4,
		),
		m.width,
	)
}
