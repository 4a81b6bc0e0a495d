package facts

// Predicates derived from the snapshot. They read only the snapshot and
// never modify it.

// IsThread returns true if the report hangs off an action in a parent report.
func (f *Facts) IsThread() bool {
	return f.Report.ParentID != "" && f.Report.ParentActionID != ""
}

// IsChatThread returns true for threads of plain chat reports.
func (f *Facts) IsChatThread() bool {
	return f.IsThread() && f.Report.Type == TypeChat
}

func (f *Facts) parentActionKind() ActionKind {
	if f.ParentAction == nil {
		return ""
	}
	return f.ParentAction.Kind
}

// IsMoneyRequest returns true for a single transaction thread created by a
// money request.
func (f *Facts) IsMoneyRequest() bool {
	return f.IsThread() && f.parentActionKind() == ActionMoneyRequest
}

// IsTrackExpense returns true for a single transaction thread created by a
// tracked expense.
func (f *Facts) IsTrackExpense() bool {
	return f.IsThread() && f.parentActionKind() == ActionTrackExpense
}

// IsSingleTransactionView returns true when the report shows one transaction.
func (f *Facts) IsSingleTransactionView() bool {
	return f.IsMoneyRequest() || f.IsTrackExpense()
}

// IsMoneyRequestReport returns true for expense and IOU reports.
func (f *Facts) IsMoneyRequestReport() bool {
	return f.Report.Type == TypeExpense || f.Report.Type == TypeIOU
}

func (f *Facts) IsInvoiceReport() bool {
	return f.Report.Type == TypeInvoice
}

// IsExpenseReport returns true only for workspace expense reports. IOU
// reports between individuals are not expense reports.
func (f *Facts) IsExpenseReport() bool {
	return f.Report.Type == TypeExpense
}

// IsMoneyView returns true when the report shows money in any form: an
// aggregate report, an invoice, or a single money request.
func (f *Facts) IsMoneyView() bool {
	return f.IsMoneyRequestReport() || f.IsInvoiceReport() || f.IsMoneyRequest()
}

func (f *Facts) IsTask() bool {
	return f.Report.Type == TypeTask
}

func (f *Facts) IsCompletedTask() bool {
	return f.IsTask() && f.Report.Status == StatusApproved
}

// IsCanceledTask returns true when the task was canceled or the action that
// created it has been deleted.
func (f *Facts) IsCanceledTask() bool {
	if !f.IsTask() {
		return false
	}
	if f.Report.Status == StatusCanceled {
		return true
	}
	return f.ParentAction != nil && f.ParentAction.IsDeleted
}

func (f *Facts) IsGroupChat() bool {
	return f.Report.ChatType == ChatTypeGroup
}

// IsRootGroupChat returns true for a group chat that is not a thread.
func (f *Facts) IsRootGroupChat() bool {
	return f.IsGroupChat() && !f.IsThread()
}

// IsDefaultRoom returns true for the rooms every workspace gets automatically.
func (f *Facts) IsDefaultRoom() bool {
	switch f.Report.ChatType {
	case ChatTypePolicyAdmins, ChatTypePolicyAnnounce, ChatTypeDomainAll:
		return true
	}
	return false
}

func (f *Facts) IsUserCreatedPolicyRoom() bool {
	return f.Report.ChatType == ChatTypePolicyRoom
}

func (f *Facts) IsPolicyExpenseChat() bool {
	return f.Report.ChatType == ChatTypePolicyExpenseChat
}

func (f *Facts) IsInvoiceRoom() bool {
	return f.Report.ChatType == ChatTypeInvoice
}

func (f *Facts) IsChatRoom() bool {
	return f.IsUserCreatedPolicyRoom() || f.IsDefaultRoom() || f.IsInvoiceRoom()
}

func (f *Facts) IsPublicRoom() bool {
	return f.Report.Visibility == VisibilityPublic || f.Report.Visibility == VisibilityPublicAnnounce
}

func (f *Facts) IsSelfDM() bool {
	return f.Report.ChatType == ChatTypeSelfDM
}

func (f *Facts) IsSystemChat() bool {
	return f.Report.ChatType == ChatTypeSystem
}

func (f *Facts) IsArchivedRoom() bool {
	return f.Report.IsArchived
}

func (f *Facts) IsPolicyAdmin() bool {
	return f.Policy != nil && f.Policy.Role == RoleAdmin
}

func (f *Facts) IsPolicyEmployee() bool {
	return f.Policy != nil && f.Policy.IsEmployee
}

// IsPolicyPendingDelete returns true while the workspace is being deleted.
func (f *Facts) IsPolicyPendingDelete() bool {
	return f.Policy != nil && f.Policy.IsPendingDelete
}

// DefaultTitleFieldID is the title field of policies that do not name one.
const DefaultTitleFieldID = "text_title"

// TitleFieldID returns the report field that holds the title.
func (f *Facts) TitleFieldID() string {
	if f.Report.TitleFieldID == "" {
		return DefaultTitleFieldID
	}
	return f.Report.TitleFieldID
}

func (f *Facts) IsSubmitAndClose() bool {
	return f.Policy != nil && f.Policy.IsSubmitAndClose
}

// ConnectedIntegration returns the accounting integration of the policy, or
// an empty string when there is none.
func (f *Facts) ConnectedIntegration() string {
	if f.Policy == nil {
		return ""
	}
	return f.Policy.ConnectedIntegration
}

// IsActionOwner returns true when the current actor created the originating
// action. Unknown identities never match.
func (f *Facts) IsActionOwner() bool {
	if f.ParentAction == nil {
		return false
	}
	return f.ParentAction.ActorID != 0 && f.Session.AccountID != 0 && f.ParentAction.ActorID == f.Session.AccountID
}

func (f *Facts) IsParentActionDeleted() bool {
	return f.ParentAction != nil && f.ParentAction.IsDeleted
}

func (f *Facts) IsReportManager() bool {
	return f.Report.ManagerID != 0 && f.Report.ManagerID == f.Session.AccountID
}

func (f *Facts) IsApproved() bool {
	return f.Report.Status == StatusApproved
}

func (f *Facts) IsClosed() bool {
	return f.Report.Status == StatusClosed
}

func (f *Facts) IsSettled() bool {
	return f.Report.Status == StatusReimbursed
}

// IsSelfDMTrackExpense returns true for a tracked expense living in the
// actor's self DM.
func (f *Facts) IsSelfDMTrackExpense() bool {
	return f.IsTrackExpense() && f.ParentReport != nil && f.ParentReport.IsSelfDM
}

// IsHoldTargetArchived reports whether the report that holds apply to is
// archived: the report itself when it has a single transaction thread,
// its parent otherwise.
func (f *Facts) IsHoldTargetArchived() bool {
	if f.TransactionThreadID != "" {
		return f.Report.IsArchived
	}
	return f.ParentReport != nil && f.ParentReport.IsArchived
}

// ActiveParticipantCount returns the number of participants not pending
// removal.
func (f *Facts) ActiveParticipantCount() int {
	count := 0
	for _, p := range f.Participants {
		if !p.PendingRemoval {
			count++
		}
	}
	return count
}

// TransactionID returns the transaction behind the originating action.
func (f *Facts) TransactionID() string {
	if f.ParentAction == nil || f.ParentAction.Kind == ActionTask {
		return ""
	}
	return f.ParentAction.TransactionID
}

// MoneyRequestReportID returns the report that holds the transaction: the
// parent for a single transaction view, the report itself otherwise.
func (f *Facts) MoneyRequestReportID() string {
	if f.IsSingleTransactionView() {
		return f.Report.ParentID
	}
	return f.Report.ID
}

// OriginalReportID returns the report an action should be filed against. For
// threads that is the parent report.
func (f *Facts) OriginalReportID() string {
	if f.IsThread() {
		return f.Report.ParentID
	}
	return f.Report.ID
}
