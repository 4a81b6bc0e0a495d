package rules

import "github.com/prettymuchbryce/reportdetails/internal/report"

// PromotedKey identifies a promoted shortcut.
type PromotedKey string

const (
	PromotedJoin   PromotedKey = "join"
	PromotedHold   PromotedKey = "hold"
	PromotedUnhold PromotedKey = "unhold"
	PromotedPin    PromotedKey = "pin"
	PromotedShare  PromotedKey = "share"
)

// PromotedAction is a shortcut shown above the menu.
type PromotedAction struct {
	Key      PromotedKey `json:"key"`
	ReportID string      `json:"report_id"`
	ActionID string      `json:"action_id,omitempty"`
	BackTo   string      `json:"back_to,omitempty"`
	Gate     Gate        `json:"gate,omitempty"`
}

// buildPromoted assembles join, hold, pin and share. Each is decided on its
// own; share is always last.
func buildPromoted(in *input, r report.Reporter) []PromotedAction {
	f := in.f
	result := []PromotedAction{}

	canJoin := f.Flags.CanJoin
	r.RecordRule("join", canJoin, "")
	if canJoin {
		result = append(result, PromotedAction{Key: PromotedJoin, ReportID: f.Report.ID})
	}

	showHold := f.IsMoneyView() &&
		in.caseID != CaseDefault &&
		(f.Flags.CanHold || f.Flags.CanUnhold) &&
		!f.IsHoldTargetArchived()
	if showHold {
		hold := PromotedAction{Key: PromotedUnhold}
		if f.Flags.CanHold {
			hold.Key = PromotedHold
		}
		if f.ParentAction != nil {
			hold.ActionID = f.ParentAction.ID
			hold.ReportID = f.ParentAction.ChildReportID
		}
		if f.TransactionThreadID != "" {
			hold.ReportID = f.Report.ID
		}
		if f.Flags.IsDelegateAccessRestricted {
			hold.Gate = GateNoAccess
		}
		result = append(result, hold)
		r.RecordRule("hold", true, string(hold.Key))
	} else {
		r.RecordRule("hold", false, "")
	}

	hasReport := f.Report.ID != ""
	r.RecordRule("pin", hasReport, "")
	if hasReport {
		result = append(result, PromotedAction{Key: PromotedPin, ReportID: f.Report.ID})
	}

	r.RecordRule("share", true, "")
	result = append(result, PromotedAction{Key: PromotedShare, ReportID: f.Report.ID, BackTo: f.BackTo})

	return result
}
