package collab

import (
	"context"
	"log/slog"
)

// DryRun logs every call and succeeds without doing anything.
type DryRun struct{}

// NewDryRun creates collaborators that only log.
func NewDryRun() Collaborators {
	return &DryRun{}
}

func (d *DryRun) Navigate(ctx context.Context, url string) error {
	slog.Info("dry-run: navigate", "url", url)
	return nil
}

func (d *DryRun) DismissModal(ctx context.Context) error {
	slog.Info("dry-run: dismiss modal")
	return nil
}

func (d *DryRun) GoBack(ctx context.Context, backTo string) error {
	slog.Info("dry-run: go back", "back_to", backTo)
	return nil
}

func (d *DryRun) DeleteTask(ctx context.Context, reportID string) error {
	slog.Info("dry-run: delete task", "report", reportID)
	return nil
}

func (d *DryRun) DeleteMoneyRequest(ctx context.Context, t Transaction) error {
	slog.Info("dry-run: delete money request", "transaction", t.TransactionID, "report", t.ReportID)
	return nil
}

func (d *DryRun) DeleteTrackExpense(ctx context.Context, t Transaction) error {
	slog.Info("dry-run: delete track expense", "transaction", t.TransactionID, "report", t.ReportID)
	return nil
}

func (d *DryRun) LeaveRoom(ctx context.Context, reportID string, workspaceMember bool) error {
	slog.Info("dry-run: leave room", "report", reportID, "workspace_member", workspaceMember)
	return nil
}

func (d *DryRun) LeaveGroupChat(ctx context.Context, reportID string) error {
	slog.Info("dry-run: leave group chat", "report", reportID)
	return nil
}

func (d *DryRun) CancelPayment(ctx context.Context, reportID string) error {
	slog.Info("dry-run: cancel payment", "report", reportID)
	return nil
}

func (d *DryRun) Unapprove(ctx context.Context, reportID string) error {
	slog.Info("dry-run: unapprove", "report", reportID)
	return nil
}

func (d *DryRun) ReopenTask(ctx context.Context, reportID string) error {
	slog.Info("dry-run: reopen task", "report", reportID)
	return nil
}

func (d *DryRun) ExportCSV(ctx context.Context, reportID, filename string) error {
	slog.Info("dry-run: export csv", "report", reportID, "file", filename)
	return nil
}

func (d *DryRun) CreateDraft(ctx context.Context, draft Draft) error {
	slog.Info("dry-run: create draft", "transaction", draft.TransactionID, "report", draft.ReportID, "action", draft.Action)
	return nil
}

func (d *DryRun) UpdateAvatar(ctx context.Context, reportID, file string) error {
	if file == "" {
		slog.Info("dry-run: remove avatar", "report", reportID)
		return nil
	}
	slog.Info("dry-run: update avatar", "report", reportID, "file", file)
	return nil
}

func (d *DryRun) ClearErrors(ctx context.Context, reportID, field string) error {
	slog.Info("dry-run: clear errors", "report", reportID, "field", field)
	return nil
}
