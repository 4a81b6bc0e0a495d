package collab

import (
	"context"
	"time"

	"github.com/prettymuchbryce/reportdetails/internal/routes"
)

// DefaultExportFilename is used when no export filename is configured.
const DefaultExportFilename routes.Template = "report-${reportID}-%Y%m%d.csv"

// Navigator moves the details view between screens.
type Navigator interface {
	// Navigate opens the given rendered route.
	Navigate(ctx context.Context, url string) error

	// DismissModal closes the details view.
	DismissModal(ctx context.Context) error

	// GoBack returns to the previous screen, or to backTo when it is set.
	GoBack(ctx context.Context, backTo string) error
}

// ReportActions performs the mutations the details view can start.
type ReportActions interface {
	// DeleteTask deletes a task report.
	DeleteTask(ctx context.Context, reportID string) error

	// DeleteMoneyRequest deletes the transaction behind a money request.
	DeleteMoneyRequest(ctx context.Context, t Transaction) error

	// DeleteTrackExpense deletes a tracked expense.
	DeleteTrackExpense(ctx context.Context, t Transaction) error

	LeaveRoom(ctx context.Context, reportID string, workspaceMember bool) error
	LeaveGroupChat(ctx context.Context, reportID string) error
	CancelPayment(ctx context.Context, reportID string) error
	Unapprove(ctx context.Context, reportID string) error
	ReopenTask(ctx context.Context, reportID string) error

	// ExportCSV writes the report's transactions to filename.
	ExportCSV(ctx context.Context, reportID, filename string) error

	// CreateDraft starts a draft transaction from a tracked expense.
	CreateDraft(ctx context.Context, d Draft) error

	// UpdateAvatar replaces a group chat avatar with the image at file. An
	// empty file removes the avatar.
	UpdateAvatar(ctx context.Context, reportID, file string) error

	// ClearErrors drops the errors recorded against one field of a report.
	ClearErrors(ctx context.Context, reportID, field string) error
}

// Collaborators is everything the details view calls out to.
type Collaborators interface {
	Navigator
	ReportActions
}

// Transaction identifies a transaction and the report that holds it.
type Transaction struct {
	TransactionID string `json:"transaction_id"`
	ReportID      string `json:"report_id"`
	ActionID      string `json:"action_id"`
}

// Draft is the context a tracked expense is triaged with.
type Draft struct {
	TransactionID   string `json:"transaction_id"`
	ReportID        string `json:"report_id"`
	Action          string `json:"action"`
	WhisperActionID string `json:"whisper_action_id,omitempty"`
}

// ExportFilename expands an export filename template for a report.
// ${reportID} is replaced first, then strftime tokens are expanded
// using at.
func ExportFilename(tmpl routes.Template, reportID string, at time.Time) string {
	if tmpl == "" {
		tmpl = DefaultExportFilename
	}
	return tmpl.ExpandWithParams(routes.Params{ReportID: reportID}).ExpandWithTime(at).String()
}
