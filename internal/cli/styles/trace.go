package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/webwindow/internal/infrastructure/scenario"
)

// TraceRenderer renders the notification trace of a scenario run.
type TraceRenderer struct {
	theme *Theme
}

// NewTraceRenderer creates a new trace renderer with the given theme.
func NewTraceRenderer(theme *Theme) *TraceRenderer {
	return &TraceRenderer{theme: theme}
}

// Render renders res as a header line and a table of entries.
func (r *TraceRenderer) Render(res *scenario.Result) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	name := res.Name
	if name == "" {
		name = "scenario"
	}
	header := fmt.Sprintf("\n  %s %s %s\n",
		iconStyle.Render(IconPlay),
		r.theme.Title.Render(name),
		r.theme.Subtle.Render(fmt.Sprintf("%d steps, %d notifications", res.Steps, len(res.Trace))),
	)
	if len(res.Trace) == 0 {
		return header
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("#", "STEP", "WINDOW", "NOTIFICATION", "DETAIL").
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return base.Foreground(r.theme.Accent).Bold(true)
			}
			if col == 3 && row >= 0 && row < len(res.Trace) {
				return base.Foreground(r.kindColor(res.Trace[row].Kind))
			}
			return base.Foreground(r.theme.Text)
		})
	for _, e := range res.Trace {
		step := "setup"
		if e.Step > 0 {
			step = strconv.Itoa(e.Step)
		}
		t.Row(strconv.Itoa(e.Seq), step, e.Window, e.Kind, e.Detail)
	}
	return header + t.Render() + "\n"
}

// RenderFailure renders a replay error.
func (r *TraceRenderer) RenderFailure(name string, err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s %s %s\n",
		iconStyle.Render(IconX),
		r.theme.Title.Render(name),
		r.theme.ErrorStyle.Render(err.Error()),
	)
}

func (r *TraceRenderer) kindColor(kind string) lipgloss.Color {
	switch {
	case kind == scenario.KindFault:
		return r.theme.Error
	case strings.HasPrefix(kind, "drop."), strings.HasPrefix(kind, "input."):
		return r.theme.Warning
	case strings.HasPrefix(kind, "content."):
		return r.theme.Muted
	default:
		return r.theme.Accent
	}
}
