package rules

import (
	"strings"

	"github.com/prettymuchbryce/reportdetails/internal/facts"
	"github.com/prettymuchbryce/reportdetails/internal/report"
	"github.com/prettymuchbryce/reportdetails/internal/routes"
)

// input is what every rule reads. It is built once per evaluation.
type input struct {
	f      *facts.Facts
	caseID CaseID
	debug  bool
}

func (in *input) params() routes.Params {
	return routes.Params{ReportID: in.f.Report.ID, PolicyID: in.f.Report.PolicyID, BackTo: in.f.BackTo}
}

// menuRule produces zero or more menu actions. Rules only read the input;
// none depends on what an earlier rule produced.
type menuRule struct {
	name  string
	build func(in *input) []MenuAction
}

// menuRules is evaluated in order; display order is table order.
var menuRules = []menuRule{
	{"membership", membershipActions},
	{"settings", settingsActions},
	{"track_expense", trackExpenseActions},
	{"private_notes", privateNotesActions},
	{"mark_incomplete", markIncompleteActions},
	{"cancel_payment", cancelPaymentActions},
	{"leave", leaveActions},
	{"download", downloadActions},
	{"export", exportActions},
	{"unapprove", unapproveActions},
	{"debug", debugActions},
}

// buildMenu evaluates the menu rule table. Self DMs and archived rooms stop
// evaluation before any rule runs.
func buildMenu(in *input, r report.Reporter) []MenuAction {
	items := []MenuAction{}

	if in.f.IsSelfDM() {
		r.RecordRule("self_dm", true, "stop")
		return items
	}

	if in.f.IsArchivedRoom() {
		r.RecordRule("archived", true, "stop")
		return items
	}

	for _, rule := range menuRules {
		produced := rule.build(in)
		r.RecordRule(rule.name, len(produced) > 0, joinKeys(produced))
		items = append(items, produced...)
	}

	return items
}

func joinKeys(items []MenuAction) string {
	keys := make([]string, 0, len(items))
	for _, item := range items {
		keys = append(keys, string(item.Key))
	}
	return strings.Join(keys, ", ")
}

// membershipActions shows Members for rooms whose member list the actor can
// see, and Invite for rooms the actor can only add people to.
func membershipActions(in *input) []MenuAction {
	f := in.f
	employee := f.IsPolicyEmployee()
	hasParticipants := len(f.Participants) > 0

	showMembers := (f.IsGroupChat() ||
		(f.IsDefaultRoom() && f.IsChatThread() && employee) ||
		(!f.IsUserCreatedPolicyRoom() && hasParticipants) ||
		(f.IsUserCreatedPolicyRoom() && (employee || (f.IsChatThread() && !f.IsPublicRoom())))) &&
		!f.Report.IsConcierge &&
		!f.IsSystemChat()

	if showMembers {
		route := routes.ReportParticipants
		if f.IsUserCreatedPolicyRoom() || f.IsChatThread() || (f.IsPolicyExpenseChat() && f.IsPolicyAdmin()) {
			route = routes.RoomMembers
		}
		count := f.ActiveParticipantCount()
		return []MenuAction{{
			Key:            KeyMembers,
			TranslationKey: "common.members",
			ShowRightIcon:  true,
			Subtitle:       &count,
			Destination:    navigate(route, in.params()),
		}}
	}

	showInvite := (f.IsUserCreatedPolicyRoom() && (!hasParticipants || !employee)) ||
		((f.IsDefaultRoom() || f.IsPolicyExpenseChat()) && f.IsChatThread() && !employee)

	if showInvite {
		return []MenuAction{{
			Key:            KeyInvite,
			TranslationKey: "common.invite",
			ShowRightIcon:  true,
			Destination:    navigate(routes.RoomInvite, routes.Params{ReportID: f.Report.ID}),
		}}
	}

	return nil
}

func settingsActions(in *input) []MenuAction {
	f := in.f
	showNotificationPref := !f.IsMoneyRequestReport() && !f.Report.IsHidden
	showWriteCapability := !f.IsMoneyRequestReport()
	showVisibility := f.Report.Visibility != facts.VisibilityNone && f.Report.ChatType != facts.ChatTypeInvoice

	if !showNotificationPref && !showWriteCapability && !showVisibility {
		return nil
	}

	return []MenuAction{{
		Key:            KeySettings,
		TranslationKey: "common.settings",
		ShowRightIcon:  true,
		Destination:    navigate(routes.ReportSettings, in.params()),
	}}
}

// trackExpenseActions offers to submit, categorize or share a tracked
// expense. All three create a draft transaction and differ only in the
// action they carry.
func trackExpenseActions(in *input) []MenuAction {
	f := in.f
	if !f.IsTrackExpense() || f.IsParentActionDeleted() {
		return nil
	}

	triage := []struct {
		key            ActionKey
		action         string
		translationKey string
	}{
		{KeyTrackSubmit, "submit", "actionableMentionTrackExpense.submit"},
		{KeyTrackCategorize, "categorize", "actionableMentionTrackExpense.categorize"},
		{KeyTrackShare, "share", "actionableMentionTrackExpense.share"},
	}

	items := make([]MenuAction, 0, len(triage))
	for _, t := range triage {
		items = append(items, MenuAction{
			Key:            t.key,
			TranslationKey: t.translationKey,
			ShowRightIcon:  true,
			Destination:    invoke(OpCreateDraft, in.params()),
			TrackExpense: &TrackExpenseContext{
				TransactionID:   f.TransactionID(),
				ReportID:        f.OriginalReportID(),
				Action:          t.action,
				WhisperActionID: f.ParentAction.WhisperActionID,
			},
		})
	}
	return items
}

func privateNotesActions(in *input) []MenuAction {
	f := in.f
	if f.IsChatThread() || f.IsMoneyRequestReport() || f.IsInvoiceReport() || f.IsTask() {
		return nil
	}

	return []MenuAction{{
		Key:            KeyPrivateNotes,
		TranslationKey: "privateNotes.title",
		ShowRightIcon:  true,
		ErrorIndicator: f.Flags.HasPrivateNoteErrors,
		Destination:    navigate(routes.PrivateNotes, in.params()),
	}}
}

func markIncompleteActions(in *input) []MenuAction {
	f := in.f
	if !f.IsTask() || f.IsCanceledTask() || !f.IsCompletedTask() {
		return nil
	}
	if !f.Flags.CanModifyTask || !f.Flags.CanActionTask {
		return nil
	}

	return []MenuAction{{
		Key:            KeyMarkIncomplete,
		TranslationKey: "task.markAsIncomplete",
		Destination:    invoke(OpReopenTask, in.params()),
	}}
}

func cancelPaymentActions(in *input) []MenuAction {
	f := in.f
	if in.caseID != CaseAggregateMoneyReport || !f.Flags.IsPayer || !f.IsSettled() || !f.IsExpenseReport() {
		return nil
	}

	return []MenuAction{{
		Key:            KeyCancelPayment,
		TranslationKey: "iou.cancelPayment",
		Gate:           GateConfirm,
		Modal:          ModalCancelPayment,
		Destination:    invoke(OpCancelPayment, in.params()),
	}}
}

// leaveActions lets the actor leave. The last member of a root group chat
// has to confirm first, since leaving deletes the group.
func leaveActions(in *input) []MenuAction {
	f := in.f
	if !f.Flags.CanLeave {
		return nil
	}

	op := OpLeaveRoom
	if f.IsRootGroupChat() {
		op = OpLeaveGroupChat
	}

	action := MenuAction{
		Key:            KeyLeave,
		TranslationKey: "common.leave",
		Anonymous:      true,
		Destination:    invoke(op, in.params()),
		Leave: &LeaveContext{
			GroupChat:       f.IsRootGroupChat(),
			WorkspaceMember: (f.Report.Visibility == facts.VisibilityRestricted || f.IsPolicyExpenseChat()) && f.IsPolicyEmployee(),
		},
	}

	if f.IsRootGroupChat() && f.ActiveParticipantCount() == 1 {
		action.Gate = GateConfirm
		action.Modal = ModalLastMemberLeave
	}

	return []MenuAction{action}
}

func downloadActions(in *input) []MenuAction {
	if !in.f.IsMoneyRequestReport() {
		return nil
	}

	action := MenuAction{
		Key:            KeyDownload,
		TranslationKey: "common.download",
		Destination:    invoke(OpExportCSV, in.params()),
	}
	if in.f.Flags.IsOffline {
		action.Gate = GateOffline
	}
	return []MenuAction{action}
}

func exportActions(in *input) []MenuAction {
	f := in.f
	integration := f.ConnectedIntegration()
	if integration == "" || !f.IsPolicyAdmin() || f.IsSingleTransactionView() || !f.IsMoneyView() {
		return nil
	}

	p := in.params()
	p.Integration = integration
	return []MenuAction{{
		Key:            KeyExport,
		TranslationKey: "common.export",
		Destination:    navigate(routes.ReportExport, p),
	}}
}

// unapproveActions offers to unapprove an approved expense report. Delegates
// without access get a notice, and reports already exported to the
// accounting integration need confirmation.
func unapproveActions(in *input) []MenuAction {
	f := in.f
	if !f.IsExpenseReport() || !(f.IsReportManager() || f.IsPolicyAdmin()) || !f.IsApproved() || f.IsSubmitAndClose() {
		return nil
	}

	action := MenuAction{
		Key:            KeyUnapprove,
		TranslationKey: "iou.unapprove",
		Destination:    invoke(OpUnapprove, in.params()),
	}

	switch {
	case f.Flags.IsDelegateAccessRestricted:
		action.Gate = GateNoAccess
	case f.Flags.IsExported:
		action.Gate = GateConfirm
		action.Modal = ModalUnapproveExported
	}

	return []MenuAction{action}
}

func debugActions(in *input) []MenuAction {
	if in.f.Report.ID == "" || !in.debug {
		return nil
	}

	return []MenuAction{{
		Key:            KeyDebug,
		TranslationKey: "debug.debug",
		Anonymous:      true,
		ShowRightIcon:  true,
		Destination:    navigate(routes.DebugReport, routes.Params{ReportID: in.f.Report.ID}),
	}}
}
