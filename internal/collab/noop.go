package collab

import "context"

// Noop panics on any call.
// Use this in tests where no collaborator should be reached.
type Noop struct{}

// NewNoop creates collaborators that panic on any call.
func NewNoop() Collaborators {
	return &Noop{}
}

func (n *Noop) Navigate(ctx context.Context, url string) error {
	panic("Noop: Navigate called")
}

func (n *Noop) DismissModal(ctx context.Context) error {
	panic("Noop: DismissModal called")
}

func (n *Noop) GoBack(ctx context.Context, backTo string) error {
	panic("Noop: GoBack called")
}

func (n *Noop) DeleteTask(ctx context.Context, reportID string) error {
	panic("Noop: DeleteTask called")
}

func (n *Noop) DeleteMoneyRequest(ctx context.Context, t Transaction) error {
	panic("Noop: DeleteMoneyRequest called")
}

func (n *Noop) DeleteTrackExpense(ctx context.Context, t Transaction) error {
	panic("Noop: DeleteTrackExpense called")
}

func (n *Noop) LeaveRoom(ctx context.Context, reportID string, workspaceMember bool) error {
	panic("Noop: LeaveRoom called")
}

func (n *Noop) LeaveGroupChat(ctx context.Context, reportID string) error {
	panic("Noop: LeaveGroupChat called")
}

func (n *Noop) CancelPayment(ctx context.Context, reportID string) error {
	panic("Noop: CancelPayment called")
}

func (n *Noop) Unapprove(ctx context.Context, reportID string) error {
	panic("Noop: Unapprove called")
}

func (n *Noop) ReopenTask(ctx context.Context, reportID string) error {
	panic("Noop: ReopenTask called")
}

func (n *Noop) ExportCSV(ctx context.Context, reportID, filename string) error {
	panic("Noop: ExportCSV called")
}

func (n *Noop) CreateDraft(ctx context.Context, d Draft) error {
	panic("Noop: CreateDraft called")
}

func (n *Noop) UpdateAvatar(ctx context.Context, reportID, file string) error {
	panic("Noop: UpdateAvatar called")
}

func (n *Noop) ClearErrors(ctx context.Context, reportID, field string) error {
	panic("Noop: ClearErrors called")
}
