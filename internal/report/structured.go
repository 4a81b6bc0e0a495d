package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/xlab/treeprint"
)

// Styles for the structured reporter
var (
	reportStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // Cyan
	caseStyle   = lipgloss.NewStyle().Bold(true)
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // Gray
)

const (
	passIcon = "✓"
	failIcon = "✗"
)

// StructuredReporter outputs a tree-style report of rule evaluation.
type StructuredReporter struct {
	w       io.Writer
	verbose bool

	// Current report state
	reportID string
	caseID   string
	sections []Section
	current  *Section
	matched  int
}

// NewStructured creates a new StructuredReporter.
func NewStructured(verbose bool) *StructuredReporter {
	return &StructuredReporter{
		w:       os.Stdout,
		verbose: verbose,
	}
}

// NewStructuredWithWriter creates a StructuredReporter writing to a custom writer.
func NewStructuredWithWriter(w io.Writer, verbose bool) *StructuredReporter {
	return &StructuredReporter{
		w:       w,
		verbose: verbose,
	}
}

// StartReport begins reporting for a snapshot.
func (r *StructuredReporter) StartReport(reportID string, caseID string) {
	if r == nil {
		return
	}
	r.reportID = reportID
	r.caseID = caseID
	r.sections = nil
	r.current = nil
	r.matched = 0
}

// StartSection begins a group of rule decisions.
func (r *StructuredReporter) StartSection(name string) {
	if r == nil {
		return
	}
	r.sections = append(r.sections, Section{Name: name})
	r.current = &r.sections[len(r.sections)-1]
}

// EndSection closes the current section.
func (r *StructuredReporter) EndSection() {
	if r == nil {
		return
	}
	r.current = nil
}

// RecordRule records a single rule decision. Decisions recorded outside of
// a section are dropped.
func (r *StructuredReporter) RecordRule(name string, matched bool, detail string) {
	if r == nil || r.current == nil {
		return
	}
	r.current.Rules = append(r.current.Rules, RuleDetail{Name: name, Matched: matched, Detail: detail})
	if matched {
		r.matched++
	}
}

// Sections returns the decisions recorded for the current report.
func (r *StructuredReporter) Sections() []Section {
	return r.sections
}

// EndReport prints the report and returns the number of matched rules.
func (r *StructuredReporter) EndReport() int {
	if r == nil {
		return 0
	}

	title := reportStyle.Render("━━━ Report: "+r.reportID+" ━━━") + " " + caseStyle.Render(r.caseID)
	tree := treeprint.NewWithRoot(title)
	maxWidth := r.calculateMaxWidth()

	for _, s := range r.sections {
		branch := tree.AddBranch(s.Name + ":")
		shown := 0
		for _, d := range s.Rules {
			if !d.Matched && !r.verbose {
				continue
			}
			branch.AddNode(formatRule(d, maxWidth))
			shown++
		}
		if shown == 0 {
			branch.AddNode(detailStyle.Render("(none)"))
		}
	}

	fmt.Fprint(r.w, tree.String())
	if r.matched == 0 && !r.verbose {
		fmt.Fprintf(r.w, "%s\n", detailStyle.Render("  No rules matched. Use --verbose for more info."))
	}

	return r.matched
}

// calculateMaxWidth calculates the maximum rule name width for alignment.
func (r *StructuredReporter) calculateMaxWidth() int {
	maxWidth := 0
	for _, s := range r.sections {
		for _, d := range s.Rules {
			if len(d.Name) > maxWidth {
				maxWidth = len(d.Name)
			}
		}
	}
	return maxWidth
}

// formatRule formats a RuleDetail padded to the widest rule name.
func formatRule(d RuleDetail, maxWidth int) string {
	var icon string
	if d.Matched {
		icon = passStyle.Render(passIcon)
	} else {
		icon = failStyle.Render(failIcon)
	}

	result := fmt.Sprintf("%-*s %s", maxWidth+1, d.Name+":", icon)
	if d.Detail != "" {
		result += " " + detailStyle.Render(d.Detail)
	}
	return result
}
