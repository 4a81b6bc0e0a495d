package facts

// ReportType is the storage type of a report.
type ReportType string

const (
	TypeChat    ReportType = "chat"
	TypeExpense ReportType = "expense"
	TypeIOU     ReportType = "iou"
	TypeInvoice ReportType = "invoice"
	TypeTask    ReportType = "task"
)

// ChatType narrows a chat report into the kind of room it is.
type ChatType string

const (
	ChatTypeNone              ChatType = ""
	ChatTypeGroup             ChatType = "group"
	ChatTypePolicyRoom        ChatType = "policy_room"
	ChatTypePolicyAdmins      ChatType = "policy_admins"
	ChatTypePolicyAnnounce    ChatType = "policy_announce"
	ChatTypeDomainAll         ChatType = "domain_all"
	ChatTypePolicyExpenseChat ChatType = "policy_expense_chat"
	ChatTypeSelfDM            ChatType = "self_dm"
	ChatTypeSystem            ChatType = "system"
	ChatTypeInvoice           ChatType = "invoice"
)

// Visibility controls who can discover a room.
type Visibility string

const (
	VisibilityNone           Visibility = ""
	VisibilityPublic         Visibility = "public"
	VisibilityPublicAnnounce Visibility = "public_announce"
	VisibilityPrivate        Visibility = "private"
	VisibilityRestricted     Visibility = "restricted"
)

// Status is the lifecycle status of a report.
type Status string

const (
	StatusOpen       Status = "open"
	StatusSubmitted  Status = "submitted"
	StatusApproved   Status = "approved"
	StatusClosed     Status = "closed"
	StatusReimbursed Status = "reimbursed"
	StatusCanceled   Status = "canceled"
)

// ActionKind is the kind of the action a report was created from.
type ActionKind string

const (
	ActionTrackExpense ActionKind = "track_expense"
	ActionMoneyRequest ActionKind = "money_request"
	ActionTask         ActionKind = "task"
)

// PolicyRole is the actor's role on the report's workspace policy.
type PolicyRole string

const (
	RoleAdmin   PolicyRole = "admin"
	RoleAuditor PolicyRole = "auditor"
	RoleUser    PolicyRole = "user"
)

// Report describes the report being viewed.
type Report struct {
	ID             string     `yaml:"id" json:"id"`
	ParentID       string     `yaml:"parent_id" json:"parent_id"`
	ParentActionID string     `yaml:"parent_action_id" json:"parent_action_id"`
	PolicyID       string     `yaml:"policy_id" json:"policy_id"`
	Type           ReportType `yaml:"type" json:"type"`
	ChatType       ChatType   `yaml:"chat_type" json:"chat_type"`
	Visibility     Visibility `yaml:"visibility" json:"visibility"`
	Status         Status     `yaml:"status" json:"status"`
	ManagerID      int64      `yaml:"manager_id" json:"manager_id"`
	Description    string     `yaml:"description" json:"description"`
	IsArchived     bool       `yaml:"is_archived" json:"is_archived"`
	IsConcierge    bool       `yaml:"is_concierge" json:"is_concierge"`
	IsHidden       bool       `yaml:"is_hidden" json:"is_hidden"`
	CanWrite       bool       `yaml:"can_write" json:"can_write"`
	HasAvatar      bool       `yaml:"has_avatar" json:"has_avatar"`

	// TitleFieldID is the policy report field holding the report title.
	TitleFieldID string `yaml:"title_field_id" json:"title_field_id"`
}

// ParentReport carries the few facts needed about the parent of a thread.
type ParentReport struct {
	ID         string `yaml:"id" json:"id"`
	IsArchived bool   `yaml:"is_archived" json:"is_archived"`
	IsSelfDM   bool   `yaml:"is_self_dm" json:"is_self_dm"`
}

// Policy is the workspace policy the report belongs to.
type Policy struct {
	ID                   string     `yaml:"id" json:"id"`
	Role                 PolicyRole `yaml:"role" json:"role"`
	IsEmployee           bool       `yaml:"is_employee" json:"is_employee"`
	ConnectedIntegration string     `yaml:"connected_integration" json:"connected_integration"`
	IsSubmitAndClose     bool       `yaml:"is_submit_and_close" json:"is_submit_and_close"`
	IsPendingDelete      bool       `yaml:"is_pending_delete" json:"is_pending_delete"`
}

// Session identifies the current actor.
type Session struct {
	AccountID int64 `yaml:"account_id" json:"account_id"`
}

// ReportAction is the action that originated the report. For aggregate
// reports with a single transaction it is the parent action of that
// transaction's thread.
type ReportAction struct {
	ID              string     `yaml:"id" json:"id"`
	ActorID         int64      `yaml:"actor_id" json:"actor_id"`
	Kind            ActionKind `yaml:"kind" json:"kind"`
	IsDeleted       bool       `yaml:"is_deleted" json:"is_deleted"`
	TransactionID   string     `yaml:"transaction_id" json:"transaction_id"`
	ChildReportID   string     `yaml:"child_report_id" json:"child_report_id"`
	WhisperActionID string     `yaml:"whisper_action_id" json:"whisper_action_id"`
}

// Participant is a member of the report.
type Participant struct {
	AccountID      int64 `yaml:"account_id" json:"account_id"`
	PendingRemoval bool  `yaml:"pending_removal" json:"pending_removal"`
}

// Flags are booleans computed by the data layer that the engine consumes
// as-is.
type Flags struct {
	CanModifyTask               bool `yaml:"can_modify_task" json:"can_modify_task"`
	CanActionTask               bool `yaml:"can_action_task" json:"can_action_task"`
	IsExported                  bool `yaml:"is_exported" json:"is_exported"`
	IsPayer                     bool `yaml:"is_payer" json:"is_payer"`
	CanHold                     bool `yaml:"can_hold" json:"can_hold"`
	CanUnhold                   bool `yaml:"can_unhold" json:"can_unhold"`
	CanJoin                     bool `yaml:"can_join" json:"can_join"`
	CanLeave                    bool `yaml:"can_leave" json:"can_leave"`
	CanDeleteTransaction        bool `yaml:"can_delete_transaction" json:"can_delete_transaction"`
	CanEditDescription          bool `yaml:"can_edit_description" json:"can_edit_description"`
	IsDebugModeEnabled          bool `yaml:"is_debug_mode_enabled" json:"is_debug_mode_enabled"`
	IsDelegateAccessRestricted  bool `yaml:"is_delegate_access_restricted" json:"is_delegate_access_restricted"`
	IsOffline                   bool `yaml:"is_offline" json:"is_offline"`
	HasPrivateNoteErrors        bool `yaml:"has_private_note_errors" json:"has_private_note_errors"`
	DisableRename               bool `yaml:"disable_rename" json:"disable_rename"`
	HasTitleField               bool `yaml:"has_title_field" json:"has_title_field"`
	IsTitleFieldDisabled        bool `yaml:"is_title_field_disabled" json:"is_title_field_disabled"`
	IsAdminOwnerApproverOrOwner bool `yaml:"is_admin_owner_approver_or_owner" json:"is_admin_owner_approver_or_owner"`
	HasAvatarErrors             bool `yaml:"has_avatar_errors" json:"has_avatar_errors"`
	HasNameErrors               bool `yaml:"has_name_errors" json:"has_name_errors"`
}

// Facts is an immutable snapshot of everything the rules engine reads.
// Optional relations are nil when absent.
type Facts struct {
	Report              Report        `yaml:"report" json:"report"`
	ParentReport        *ParentReport `yaml:"parent_report" json:"parent_report"`
	Policy              *Policy       `yaml:"policy" json:"policy"`
	Session             Session       `yaml:"session" json:"session"`
	ParentAction        *ReportAction `yaml:"parent_action" json:"parent_action"`
	TransactionThreadID string        `yaml:"transaction_thread_id" json:"transaction_thread_id"`
	Participants        []Participant `yaml:"participants" json:"participants"`
	Flags               Flags         `yaml:"flags" json:"flags"`

	// BackTo is the route the view returns to, passed through to navigation.
	BackTo string `yaml:"back_to" json:"back_to"`
}
