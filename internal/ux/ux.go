// Package ux styles terminal output for the aqlplan CLI.
package ux

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/bayneri/aqlplan/internal/acceptance"
	"github.com/bayneri/aqlplan/internal/planner"
	"github.com/charmbracelet/lipgloss"
)

var (
	ColorAccent  = lipgloss.Color("#20B9B4")
	ColorBorder  = lipgloss.Color("#16858E")
	ColorAccept  = lipgloss.Color("#2CD7C7")
	ColorReject  = lipgloss.Color("#E74C3C")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorMuted   = lipgloss.Color("#2C4A54")
)

var Styles = struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
	Box     lipgloss.Style
	Accept  lipgloss.Style
	Reject  lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	Warning: lipgloss.NewStyle().Foreground(ColorWarning),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1),
	Accept: lipgloss.NewStyle().Bold(true).Foreground(ColorAccept),
	Reject: lipgloss.NewStyle().Bold(true).Foreground(ColorReject),
}

func VerdictBadge(v acceptance.Verdict) string {
	switch v {
	case acceptance.VerdictAccept:
		return Styles.Accept.Render("✓ " + string(v))
	case acceptance.VerdictReject:
		return Styles.Reject.Render("✗ " + string(v))
	default:
		return ""
	}
}

// RenderPlan writes the plan either as the plain planner block or framed and
// coloured for a terminal.
func RenderPlan(w io.Writer, plan planner.Plan, plain bool) {
	if plain {
		planner.Render(w, plan)
		return
	}
	var body bytes.Buffer
	planner.Render(&body, plan)

	fmt.Fprintln(w, Styles.Title.Render("AQL sampling plan"))
	fmt.Fprintln(w, Styles.Box.Render(strings.TrimRight(body.String(), "\n")))
	if plan.Defects != nil {
		fmt.Fprintln(w, VerdictBadge(plan.Verdict))
	}
}

func Warn(w io.Writer, plain bool, msg string) {
	if plain {
		fmt.Fprintf(w, "warning: %s\n", msg)
		return
	}
	fmt.Fprintln(w, Styles.Warning.Render("⚠ "+msg))
}
