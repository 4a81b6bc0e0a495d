package details

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prettymuchbryce/reportdetails/internal/collab"
	"github.com/prettymuchbryce/reportdetails/internal/rules"
)

// DeleteState is the phase of a deferred deletion.
type DeleteState string

const (
	DeleteIdle     DeleteState = "idle"
	DeletePending  DeleteState = "pending_delete"
	DeleteExecuted DeleteState = "executed"
)

// pendingDelete is a confirmed deletion waiting for the view to close.
// The target is captured at confirmation so later snapshot changes do not
// alter what gets deleted.
type pendingDelete struct {
	state       DeleteState
	target      rules.DeleteTarget
	reportID    string
	transaction collab.Transaction
}

// arm moves idle to pending. It returns false in any other state.
func (p *pendingDelete) arm(target rules.DeleteTarget, reportID string, t collab.Transaction) bool {
	if p.state != DeleteIdle {
		return false
	}
	p.state = DeletePending
	p.target = target
	p.reportID = reportID
	p.transaction = t
	return true
}

// fire runs the deletion once. It returns false if nothing was pending.
// The state moves to executed even when the collaborator fails, so the
// deletion is never attempted twice.
func (p *pendingDelete) fire(ctx context.Context, actions collab.ReportActions) (bool, error) {
	if p.state != DeletePending {
		return false, nil
	}
	p.state = DeleteExecuted

	var err error
	switch p.target {
	case rules.DeleteTask:
		err = actions.DeleteTask(ctx, p.reportID)
	case rules.DeleteMoneyRequest:
		err = actions.DeleteMoneyRequest(ctx, p.transaction)
	case rules.DeleteTrackExpense:
		err = actions.DeleteTrackExpense(ctx, p.transaction)
	default:
		return false, fmt.Errorf("unknown delete target %q", p.target)
	}

	if err != nil {
		return true, fmt.Errorf("failed to delete %s: %w", p.target, err)
	}
	slog.Debug("deferred delete executed", "target", p.target, "report", p.reportID)
	return true, nil
}
