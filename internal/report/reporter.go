package report

// Reporter provides structured output for rule evaluation.
// Implementations can format output as tree-style text, JSON, etc.
type Reporter interface {
	// StartReport begins reporting for one evaluated snapshot.
	StartReport(reportID string, caseID string)

	// EndReport finishes reporting for the current snapshot.
	// Returns the number of rules that matched.
	EndReport() int

	// StartSection begins a group of rule decisions (e.g. "menu", "promoted").
	StartSection(name string)

	// EndSection closes the current section.
	EndSection()

	// RecordRule records a single rule decision. Detail is a short
	// human-readable reason, or the items the rule produced.
	RecordRule(name string, matched bool, detail string)
}

// RuleDetail describes one recorded rule decision.
type RuleDetail struct {
	Name    string
	Matched bool
	Detail  string
}

// Section groups rule decisions.
type Section struct {
	Name  string
	Rules []RuleDetail
}

// NullReporter is a no-op reporter for when reporting is disabled.
// It allows evaluation code to call methods unconditionally.
type NullReporter struct{}

func (NullReporter) StartReport(reportID string, caseID string)          {}
func (NullReporter) EndReport() int                                      { return 0 }
func (NullReporter) StartSection(name string)                            {}
func (NullReporter) EndSection()                                         {}
func (NullReporter) RecordRule(name string, matched bool, detail string) {}
