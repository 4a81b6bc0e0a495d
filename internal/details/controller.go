package details

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prettymuchbryce/reportdetails/internal/collab"
	"github.com/prettymuchbryce/reportdetails/internal/facts"
	"github.com/prettymuchbryce/reportdetails/internal/routes"
	"github.com/prettymuchbryce/reportdetails/internal/rules"
)

// Outcome is what happened when an action was triggered.
type Outcome string

const (
	OutcomeNavigated            Outcome = "navigated"
	OutcomeExecuted             Outcome = "executed"
	OutcomeConfirmationRequired Outcome = "confirmation_required"
	OutcomeNoticeShown          Outcome = "notice_shown"
	OutcomeFailed               Outcome = "failed"
	OutcomeSkipped              Outcome = "skipped"
)

// Notice is an informational modal shown instead of running an action.
type Notice string

const (
	NoticeNone     Notice = ""
	NoticeNoAccess Notice = "no_access"
	NoticeOffline  Notice = "offline"
)

// ErrNotOffered is returned when a key or modal is not available in the
// current state of the view.
var ErrNotOffered = errors.New("not offered")

// ErrDisabled is returned for a header element that is shown but not
// interactive.
var ErrDisabled = errors.New("disabled")

// Options configure a Controller.
type Options struct {
	// Routes renders navigation destinations. Defaults to routes.DefaultTable.
	Routes routes.Table

	// ExportFilename is the CSV export filename template.
	ExportFilename routes.Template

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Controller drives one open details view: it dispatches menu and header
// actions to collaborators, tracks which modal is open and owns the deferred
// deletion.
// A Controller is not safe for concurrent use.
type Controller struct {
	evaluator *rules.Evaluator
	collab    collab.Collaborators
	routes    routes.Table
	exportTpl routes.Template
	now       func() time.Time

	facts  *facts.Facts
	result *rules.Result

	modal         rules.Modal
	notice        Notice
	downloadError bool
	deletion      pendingDelete
}

// New evaluates f and returns a Controller for it.
// If evaluator is nil, a default evaluator is used.
func New(f *facts.Facts, evaluator *rules.Evaluator, c collab.Collaborators, opts Options) *Controller {
	if evaluator == nil {
		evaluator = rules.NewEvaluator(nil)
	}
	if opts.Routes == nil {
		opts.Routes = routes.DefaultTable()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ctrl := &Controller{
		evaluator: evaluator,
		collab:    c,
		routes:    opts.Routes,
		exportTpl: opts.ExportFilename,
		now:       opts.Now,
		deletion:  pendingDelete{state: DeleteIdle},
	}
	ctrl.facts = f
	ctrl.result = evaluator.Evaluate(f)
	return ctrl
}

// Result returns the current evaluation.
func (c *Controller) Result() *rules.Result {
	return c.result
}

// Modal returns the open confirmation modal, or an empty string.
func (c *Controller) Modal() rules.Modal {
	return c.modal
}

// Notice returns the open notice, if any.
func (c *Controller) Notice() Notice {
	return c.notice
}

// DismissNotice closes the open notice.
func (c *Controller) DismissNotice() {
	c.notice = NoticeNone
}

// DownloadError returns true after a CSV export failed.
func (c *Controller) DownloadError() bool {
	return c.downloadError
}

// DeleteState returns the phase of the deferred deletion.
func (c *Controller) DeleteState() DeleteState {
	return c.deletion.state
}

// Update re-evaluates the view against a new snapshot. An open modal
// closes when the action behind it is no longer offered.
func (c *Controller) Update(f *facts.Facts) {
	c.facts = f
	c.result = c.evaluator.Evaluate(f)

	if c.modal == rules.ModalNone {
		return
	}
	if !c.modalOffered(c.modal) {
		slog.Debug("closing modal no longer offered", "modal", c.modal, "report", f.Report.ID)
		c.modal = rules.ModalNone
	}
}

func (c *Controller) modalOffered(m rules.Modal) bool {
	if m == rules.ModalDelete {
		return c.result.Delete.Visible() && c.result.Delete.Target != rules.DeleteNone
	}
	for _, a := range c.result.Menu {
		if a.Modal == m {
			return true
		}
	}
	return false
}

// Trigger runs the menu action with the given key.
func (c *Controller) Trigger(ctx context.Context, key rules.ActionKey) (Outcome, error) {
	action, ok := c.result.Action(key)
	if !ok {
		return OutcomeSkipped, fmt.Errorf("action %q: %w", key, ErrNotOffered)
	}

	switch action.Gate {
	case rules.GateNoAccess:
		c.notice = NoticeNoAccess
		return OutcomeNoticeShown, nil
	case rules.GateOffline:
		c.notice = NoticeOffline
		return OutcomeNoticeShown, nil
	case rules.GateConfirm:
		c.modal = action.Modal
		return OutcomeConfirmationRequired, nil
	}

	return c.run(ctx, action)
}

// run performs an ungated action.
func (c *Controller) run(ctx context.Context, action rules.MenuAction) (Outcome, error) {
	dest := action.Destination
	if dest.Kind == rules.DestinationNavigate {
		if err := c.navigate(ctx, dest); err != nil {
			return OutcomeFailed, fmt.Errorf("action %q: %w", action.Key, err)
		}
		return OutcomeNavigated, nil
	}

	if err := c.invoke(ctx, action); err != nil {
		return OutcomeFailed, fmt.Errorf("action %q: %w", action.Key, err)
	}
	return OutcomeExecuted, nil
}

func (c *Controller) navigate(ctx context.Context, dest rules.Destination) error {
	url, err := c.routes.Render(dest.Route, dest.Params)
	if err != nil {
		return err
	}
	if err := c.collab.Navigate(ctx, url); err != nil {
		return fmt.Errorf("failed to navigate: %w", err)
	}
	return nil
}

func (c *Controller) invoke(ctx context.Context, action rules.MenuAction) error {
	reportID := c.facts.Report.ID

	switch action.Destination.Operation {
	case rules.OpLeaveRoom:
		workspaceMember := action.Leave != nil && action.Leave.WorkspaceMember
		return c.collab.LeaveRoom(ctx, reportID, workspaceMember)
	case rules.OpLeaveGroupChat:
		return c.collab.LeaveGroupChat(ctx, reportID)
	case rules.OpReopenTask:
		return c.collab.ReopenTask(ctx, reportID)
	case rules.OpCancelPayment:
		return c.collab.CancelPayment(ctx, reportID)
	case rules.OpUnapprove:
		return c.collab.Unapprove(ctx, reportID)
	case rules.OpExportCSV:
		filename := collab.ExportFilename(c.exportTpl, reportID, c.now())
		if err := c.collab.ExportCSV(ctx, reportID, filename); err != nil {
			c.downloadError = true
			return err
		}
		return nil
	case rules.OpCreateDraft:
		if action.TrackExpense == nil {
			return fmt.Errorf("missing track expense context")
		}
		te := action.TrackExpense
		return c.collab.CreateDraft(ctx, collab.Draft{
			TransactionID:   te.TransactionID,
			ReportID:        te.ReportID,
			Action:          te.Action,
			WhisperActionID: te.WhisperActionID,
		})
	default:
		return fmt.Errorf("unknown operation %q", action.Destination.Operation)
	}
}

// TriggerHeader runs the header element with the given key. Replacing the
// avatar needs an image and goes through UpdateAvatar instead.
func (c *Controller) TriggerHeader(ctx context.Context, key rules.HeaderKey) (Outcome, error) {
	if key == rules.HeaderUpdateAvatar {
		return OutcomeSkipped, fmt.Errorf("header %q needs an image", key)
	}
	h, err := c.headerAction(key)
	if err != nil {
		return OutcomeSkipped, err
	}
	return c.runHeader(ctx, h, "")
}

// UpdateAvatar replaces the group chat avatar with the image at file.
func (c *Controller) UpdateAvatar(ctx context.Context, file string) (Outcome, error) {
	if file == "" {
		return OutcomeSkipped, fmt.Errorf("header %q needs an image", rules.HeaderUpdateAvatar)
	}
	h, err := c.headerAction(rules.HeaderUpdateAvatar)
	if err != nil {
		return OutcomeSkipped, err
	}
	return c.runHeader(ctx, h, file)
}

func (c *Controller) headerAction(key rules.HeaderKey) (rules.HeaderAction, error) {
	h, ok := c.result.HeaderAction(key)
	if !ok {
		return h, fmt.Errorf("header %q: %w", key, ErrNotOffered)
	}
	if h.Disabled {
		return h, fmt.Errorf("header %q: %w", key, ErrDisabled)
	}
	return h, nil
}

func (c *Controller) runHeader(ctx context.Context, h rules.HeaderAction, file string) (Outcome, error) {
	dest := h.Destination
	if dest.Kind == rules.DestinationNavigate {
		if err := c.navigate(ctx, dest); err != nil {
			return OutcomeFailed, fmt.Errorf("header %q: %w", h.Key, err)
		}
		return OutcomeNavigated, nil
	}

	reportID := c.facts.Report.ID
	var err error
	switch dest.Operation {
	case rules.OpUpdateAvatar:
		// An empty file removes the avatar.
		err = c.collab.UpdateAvatar(ctx, reportID, file)
	case rules.OpClearErrors:
		err = c.collab.ClearErrors(ctx, reportID, h.ErrorField)
	default:
		err = fmt.Errorf("unknown operation %q", dest.Operation)
	}
	if err != nil {
		return OutcomeFailed, fmt.Errorf("header %q: %w", h.Key, err)
	}
	return OutcomeExecuted, nil
}

// Back leaves the view through the header back button, returning to the
// snapshot's backTo route when there is one.
func (c *Controller) Back(ctx context.Context) (Outcome, error) {
	if err := c.collab.GoBack(ctx, c.facts.BackTo); err != nil {
		return OutcomeFailed, fmt.Errorf("failed to go back: %w", err)
	}
	return OutcomeNavigated, nil
}

// RequestDelete opens the delete confirmation. It returns false when
// nothing can be deleted.
func (c *Controller) RequestDelete() bool {
	if !c.result.Delete.Visible() || c.result.Delete.Target == rules.DeleteNone {
		return false
	}
	if c.deletion.state != DeleteIdle {
		return false
	}
	c.modal = rules.ModalDelete
	return true
}

// Confirm completes the open confirmation modal.
//
// Confirming a deletion does not delete anything: it arms the deferred
// deletion and navigates back. The deletion runs on Close.
func (c *Controller) Confirm(ctx context.Context, m rules.Modal) (Outcome, error) {
	if m == rules.ModalNone || c.modal != m {
		return OutcomeSkipped, fmt.Errorf("modal %q: %w", m, ErrNotOffered)
	}
	c.modal = rules.ModalNone

	if m == rules.ModalDelete {
		return c.confirmDelete(ctx)
	}

	for _, a := range c.result.Menu {
		if a.Modal == m {
			if err := c.invoke(ctx, a); err != nil {
				return OutcomeFailed, fmt.Errorf("action %q: %w", a.Key, err)
			}
			return OutcomeExecuted, nil
		}
	}
	return OutcomeSkipped, fmt.Errorf("modal %q: %w", m, ErrNotOffered)
}

func (c *Controller) confirmDelete(ctx context.Context) (Outcome, error) {
	f := c.facts
	del := c.result.Delete
	if del.Target == rules.DeleteNone {
		return OutcomeSkipped, fmt.Errorf("delete: %w", ErrNotOffered)
	}

	var t collab.Transaction
	if f.ParentAction != nil {
		t = collab.Transaction{
			TransactionID: f.TransactionID(),
			ReportID:      f.MoneyRequestReportID(),
			ActionID:      f.ParentAction.ID,
		}
	}

	if !c.deletion.arm(del.Target, f.Report.ID, t) {
		return OutcomeSkipped, fmt.Errorf("delete already %s", c.deletion.state)
	}
	slog.Debug("delete pending until view closes", "target", del.Target, "report", f.Report.ID)

	backURL, err := c.BackURL()
	if err != nil {
		return OutcomeFailed, err
	}
	if backURL == "" {
		if err := c.collab.DismissModal(ctx); err != nil {
			return OutcomeFailed, fmt.Errorf("failed to dismiss: %w", err)
		}
		return OutcomeNavigated, nil
	}
	if err := c.collab.Navigate(ctx, backURL); err != nil {
		return OutcomeFailed, fmt.Errorf("failed to navigate back: %w", err)
	}
	return OutcomeNavigated, nil
}

// BackURL returns where the view goes after a deletion: the report holding
// the deleted transaction, or the task's parent report. An empty string
// means the view is dismissed.
func (c *Controller) BackURL() (string, error) {
	f := c.facts

	var target string
	switch c.result.Delete.Target {
	case rules.DeleteTask:
		target = f.Report.ParentID
	case rules.DeleteMoneyRequest, rules.DeleteTrackExpense:
		target = f.MoneyRequestReportID()
		if target == f.Report.ID {
			target = f.Report.ParentID
		}
	}
	if target == "" {
		return "", nil
	}
	return c.routes.Render(routes.Report, routes.Params{ReportID: target})
}

// Dismiss closes the modal without acting. Dismissing the delete modal
// before it is confirmed cancels the deletion.
func (c *Controller) Dismiss(m rules.Modal) bool {
	if m == rules.ModalNone || c.modal != m {
		return false
	}
	c.modal = rules.ModalNone
	return true
}

// Close handles the view closing. A pending deletion runs exactly once;
// every later Close is a no-op.
func (c *Controller) Close(ctx context.Context) (Outcome, error) {
	c.modal = rules.ModalNone
	c.notice = NoticeNone

	fired, err := c.deletion.fire(ctx, c.collab)
	switch {
	case err != nil:
		return OutcomeFailed, err
	case fired:
		return OutcomeExecuted, nil
	default:
		return OutcomeSkipped, nil
	}
}
