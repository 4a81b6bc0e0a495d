package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/prettymuchbryce/reportdetails/internal/details"
	"github.com/prettymuchbryce/reportdetails/internal/rules"
)

var (
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	boldStyle      = lipgloss.NewStyle().Bold(true)
	labelStyle     = lipgloss.NewStyle().Width(12)
	okStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	boxStyle       = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(0, 4)
)

func printWelcome(w io.Writer, path string) {
	welcome := "👋 Welcome to reportdetails\n\n" +
		"1. Write a fact snapshot (YAML or JSON) for a report.\n" +
		"2. Run " + highlightStyle.Render("reportdetails evaluate 'snapshots/**/*.yaml'") + " to see its actions.\n\n" +
		dimStyle.Render("config: "+path)
	fmt.Fprintln(w, boxStyle.Render(welcome))
}

// printField prints one label/value row.
func printField(w io.Writer, label, value string) {
	fmt.Fprintln(w, labelStyle.Render(label)+value)
}

func formatOutcome(o details.Outcome) string {
	switch o {
	case details.OutcomeFailed:
		return errStyle.Render(string(o))
	case details.OutcomeSkipped:
		return dimStyle.Render(string(o))
	case details.OutcomeConfirmationRequired, details.OutcomeNoticeShown:
		return boldStyle.Render(string(o))
	default:
		return okStyle.Render(string(o))
	}
}

func formatKeys[K ~string](keys []K) string {
	if len(keys) == 0 {
		return dimStyle.Render("none")
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}

// printResult prints the menu, promoted and header actions of a result.
func printResult(w io.Writer, r *rules.Result) {
	printField(w, "case", string(r.Case))
	printField(w, "menu", formatKeys(r.MenuKeys()))
	printField(w, "promoted", formatKeys(r.PromotedKeys()))
	printField(w, "header", formatKeys(r.HeaderKeys()))
	target := string(r.Delete.Target)
	if target == "" {
		target = dimStyle.Render("none")
	}
	printField(w, "delete", target)
}
