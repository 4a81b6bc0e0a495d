package rules

import (
	"log/slog"

	"github.com/prettymuchbryce/reportdetails/internal/facts"
	"github.com/prettymuchbryce/reportdetails/internal/report"
)

// Result is everything the details view needs to render its actions.
type Result struct {
	ReportID string            `json:"report_id"`
	Case     CaseID            `json:"case"`
	Menu     []MenuAction      `json:"menu"`
	Promoted []PromotedAction  `json:"promoted"`
	Delete   DeleteEligibility `json:"delete"`
	UI       UIFlags           `json:"ui"`
	Header   []HeaderAction    `json:"header"`
}

// Action returns the menu action with the given key.
func (r *Result) Action(key ActionKey) (MenuAction, bool) {
	for _, a := range r.Menu {
		if a.Key == key {
			return a, true
		}
	}
	return MenuAction{}, false
}

// HeaderAction returns the header element with the given key.
func (r *Result) HeaderAction(key HeaderKey) (HeaderAction, bool) {
	for _, h := range r.Header {
		if h.Key == key {
			return h, true
		}
	}
	return HeaderAction{}, false
}

// HeaderKeys returns the header keys in display order.
func (r *Result) HeaderKeys() []HeaderKey {
	keys := make([]HeaderKey, 0, len(r.Header))
	for _, h := range r.Header {
		keys = append(keys, h.Key)
	}
	return keys
}

// MenuKeys returns the menu keys in display order.
func (r *Result) MenuKeys() []ActionKey {
	keys := make([]ActionKey, 0, len(r.Menu))
	for _, a := range r.Menu {
		keys = append(keys, a.Key)
	}
	return keys
}

// PromotedKeys returns the promoted action keys in display order.
func (r *Result) PromotedKeys() []PromotedKey {
	keys := make([]PromotedKey, 0, len(r.Promoted))
	for _, a := range r.Promoted {
		keys = append(keys, a.Key)
	}
	return keys
}

// Evaluator runs the rules against fact snapshots.
// It holds no state between evaluations.
type Evaluator struct {
	reporter   report.Reporter
	forceDebug bool
}

// NewEvaluator creates an Evaluator.
// If reporter is nil, NullReporter is used.
func NewEvaluator(reporter report.Reporter) *Evaluator {
	if reporter == nil {
		reporter = report.NullReporter{}
	}
	return &Evaluator{reporter: reporter}
}

// WithDebugMode forces the debug menu item on regardless of the snapshot.
func (e *Evaluator) WithDebugMode(on bool) *Evaluator {
	e.forceDebug = on
	return e
}

// Evaluate computes the result for a snapshot. The snapshot is not modified.
func (e *Evaluator) Evaluate(f *facts.Facts) *Result {
	in := &input{
		f:      f,
		caseID: ClassifyFacts(f),
		debug:  f.Flags.IsDebugModeEnabled || e.forceDebug,
	}

	e.reporter.StartReport(f.Report.ID, string(in.caseID))

	e.reporter.StartSection("menu")
	menu := buildMenu(in, e.reporter)
	e.reporter.EndSection()

	e.reporter.StartSection("promoted")
	promoted := buildPromoted(in, e.reporter)
	e.reporter.EndSection()

	e.reporter.StartSection("delete")
	del := resolveDelete(in, e.reporter)
	e.reporter.EndSection()

	ui := buildUI(in, del)
	e.reporter.StartSection("header")
	header := buildHeader(in, ui, e.reporter)
	e.reporter.EndSection()

	e.reporter.EndReport()

	result := &Result{
		ReportID: f.Report.ID,
		Case:     in.caseID,
		Menu:     menu,
		Promoted: promoted,
		Delete:   del,
		UI:       ui,
		Header:   header,
	}

	slog.Debug("evaluated report", "report", f.Report.ID, "case", in.caseID, "menu", len(menu), "promoted", len(promoted))
	return result
}

// Evaluate computes the result for a snapshot without reporting.
func Evaluate(f *facts.Facts) *Result {
	return NewEvaluator(nil).Evaluate(f)
}
