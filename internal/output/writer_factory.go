package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/ws396/wmacalc/internal/analysis"
	"github.com/ws396/wmacalc/internal/globals"
	"github.com/ws396/wmacalc/internal/util"
	"gopkg.in/yaml.v3"
)

type action string

const (
	Txt    action = "txt"
	Styled action = "styled"
	JSON   action = "json"
	YAML   action = "yaml"
	Stub   action = "stub"
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BE9FD"))
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#50FA7B"))
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555")).
			Padding(0, 1)
)

type Creator interface {
	CreateWriter(action action) (Writer, error)
}

type Writer interface {
	Write(a *analysis.Analysis) error
}

type ConcreteWriterCreator struct {
	out       io.Writer
	precision int
}

// NewWriterCreator returns a Creator whose writers print to out, rounding averages to
// precision decimals where the format is meant for people.
func NewWriterCreator(out io.Writer, precision int) Creator {
	return &ConcreteWriterCreator{out, precision}
}

func (p *ConcreteWriterCreator) CreateWriter(action action) (Writer, error) {
	var w Writer

	switch action {
	case Txt:
		w = &TxtWriter{p.out, p.precision}
	case Styled:
		w = &StyledWriter{p.out, p.precision}
	case JSON:
		w = &JSONWriter{p.out}
	case YAML:
		w = &YAMLWriter{p.out}
	case Stub:
		w = &StubWriter{}
	default:
		return nil, fmt.Errorf("%w: %q", globals.ErrWriterNotFound, action)
	}

	return w, nil
}

// Action converts a user supplied format name.
func Action(name string) action {
	return action(name)
}

type TxtWriter struct {
	out       io.Writer
	precision int
}

func (p *TxtWriter) Write(a *analysis.Analysis) error {
	_, err := fmt.Fprint(p.out,
		"Prices: ", fmt.Sprint(a.Prices), "\n",
		"Weights: ", fmt.Sprint(a.Weights), "\n",
		"Weighted Moving Average: ", util.FormatFloats(a.Averages, p.precision), "\n",
	)

	return err
}

type StyledWriter struct {
	out       io.Writer
	precision int
}

func (p *StyledWriter) Write(a *analysis.Analysis) error {
	_, err := fmt.Fprintln(p.out, Render(a, p.precision))

	return err
}

// Render draws a in a bordered box. The terminal UI uses it directly.
func Render(a *analysis.Analysis, precision int) string {
	mode := "float64"
	if a.Decimal {
		mode = "decimal"
	}

	body := fmt.Sprint(
		labelStyle.Render("Prices: "), fmt.Sprint(a.Prices), "\n",
		labelStyle.Render("Weights: "), fmt.Sprint(a.Weights), "\n",
		labelStyle.Render("Normalized: "), util.FormatFloats(a.NormalizedWeights, precision+2), "\n",
		labelStyle.Render("Windows: "), a.Windows, " (", mode, ")", "\n",
		labelStyle.Render("Min/Max: "), util.Round(a.Min, precision), " / ", util.Round(a.Max, precision), "\n",
		labelStyle.Render("Weighted Moving Average: "), resultStyle.Render(util.FormatFloats(a.Averages, precision)),
	)

	return boxStyle.Render(body)
}

type JSONWriter struct {
	out io.Writer
}

func (p *JSONWriter) Write(a *analysis.Analysis) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "    ")

	return enc.Encode(a)
}

type YAMLWriter struct {
	out io.Writer
}

func (p *YAMLWriter) Write(a *analysis.Analysis) error {
	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(a); err != nil {
		return err
	}

	return enc.Close()
}

type StubWriter struct {
}

func (p *StubWriter) Write(a *analysis.Analysis) error {
	return nil
}
