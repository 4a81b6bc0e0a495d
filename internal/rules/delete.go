package rules

import (
	"github.com/prettymuchbryce/reportdetails/internal/facts"
	"github.com/prettymuchbryce/reportdetails/internal/report"
)

// DeleteTarget is the deletion the delete button performs.
type DeleteTarget string

const (
	DeleteNone         DeleteTarget = ""
	DeleteTask         DeleteTarget = "task"
	DeleteMoneyRequest DeleteTarget = "money_request"
	DeleteTrackExpense DeleteTarget = "track_expense"
)

// DeleteEligibility holds the two independent delete decisions and the
// deletion that applies for the report's case.
type DeleteEligibility struct {
	Task        bool         `json:"task"`
	Transaction bool         `json:"transaction"`
	Target      DeleteTarget `json:"target,omitempty"`
}

// Visible returns true if the delete button is shown.
func (d DeleteEligibility) Visible() bool {
	return d.Task || d.Transaction
}

// CanDeleteTask returns true for an open, writable task the actor can both
// modify and act on.
func CanDeleteTask(f *facts.Facts) bool {
	return f.IsTask() &&
		!f.IsCanceledTask() &&
		f.Report.CanWrite &&
		!f.IsApproved() &&
		!f.IsClosed() &&
		f.Flags.CanModifyTask &&
		f.Flags.CanActionTask
}

// CanDeleteTransaction returns true when the actor owns the originating
// action, the holding report allows deletion (or it is a tracked expense in
// the actor's self DM), and the action is still there.
func CanDeleteTransaction(f *facts.Facts) bool {
	return f.IsActionOwner() &&
		(f.Flags.CanDeleteTransaction || f.IsSelfDMTrackExpense()) &&
		!f.IsParentActionDeleted()
}

// resolveDelete decides delete eligibility. In the default case only a task
// can be deleted; otherwise only the transaction can.
func resolveDelete(in *input, r report.Reporter) DeleteEligibility {
	d := DeleteEligibility{
		Task:        CanDeleteTask(in.f),
		Transaction: CanDeleteTransaction(in.f),
	}
	r.RecordRule("task_delete", d.Task, "")
	r.RecordRule("transaction_delete", d.Transaction, "")

	switch {
	case in.caseID == CaseDefault && d.Task:
		d.Target = DeleteTask
	case in.caseID != CaseDefault && d.Transaction:
		d.Target = DeleteMoneyRequest
		if in.f.ParentAction.Kind == facts.ActionTrackExpense {
			d.Target = DeleteTrackExpense
		}
	}

	return d
}
