package styles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/webwindow/internal/infrastructure/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path and whether it exists.
func (r *ConfigRenderer) RenderConfigInfo(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	status := r.theme.SuccessStyle.Render("found")
	if !exists {
		status = r.theme.WarningStyle.Render("not found, using defaults")
	}
	return fmt.Sprintf("\n  %s Config %s (%s)\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		status,
	)
}

// RenderSummary lists the windows, schemes and key bindings of cfg.
func (r *ConfigRenderer) RenderSummary(cfg *config.Config) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	var sb strings.Builder

	windows := cfg.AllWindows()
	sb.WriteString(fmt.Sprintf("\n  Windows (%d):\n", len(windows)))
	for _, w := range windows {
		flags := []string{w.Category}
		if w.Frameless {
			flags = append(flags, "frameless")
		}
		if w.Defer {
			flags = append(flags, "deferred")
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s %s\n",
			iconStyle.Render(IconWindow),
			r.theme.Highlight.Render(w.Name),
			r.theme.Subtle.Render(fmt.Sprintf("%gx%g", w.Width, w.Height)),
			r.theme.BadgeMuted.Render(strings.Join(flags, " ")),
		))
		if w.URL != "" {
			sb.WriteString(fmt.Sprintf("      %s\n", r.theme.Subtle.Render(w.URL)))
		}
	}

	if len(cfg.Content.Schemes) > 0 {
		sb.WriteString(fmt.Sprintf("\n  Schemes (%d):\n", len(cfg.Content.Schemes)))
		for _, s := range cfg.Content.Schemes {
			sb.WriteString(fmt.Sprintf("    %s %s %s\n",
				iconStyle.Render(IconCursor),
				r.theme.Highlight.Render(s.Name+"://"),
				r.theme.Subtle.Render(schemeSource(s)),
			))
		}
	}

	if len(cfg.Keybindings) > 0 {
		accels := make([]string, 0, len(cfg.Keybindings))
		for a := range cfg.Keybindings {
			accels = append(accels, a)
		}
		sort.Strings(accels)
		sb.WriteString(fmt.Sprintf("\n  Key bindings (%d):\n", len(accels)))
		for _, a := range accels {
			sb.WriteString(fmt.Sprintf("    %s %s\n",
				r.theme.Badge.Render(a),
				r.theme.Normal.Render(cfg.Keybindings[a]),
			))
		}
	}
	return sb.String()
}

func schemeSource(s config.SchemeConfig) string {
	switch {
	case s.Dir != "":
		return "dir " + s.Dir
	case s.Archive != "":
		return "archive " + s.Archive
	default:
		return fmt.Sprintf("%d inline pages", len(s.Pages))
	}
}

// RenderWritten renders the success message after a file was written.
func (r *ConfigRenderer) RenderWritten(what, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s %s written to %s\n",
		iconStyle.Render(IconCheck),
		what,
		r.theme.Subtle.Render(path),
	)
}

// RenderValid renders a successful validation.
func (r *ConfigRenderer) RenderValid(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s %s is valid\n", iconStyle.Render(IconCheck), r.theme.Subtle.Render(path))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
