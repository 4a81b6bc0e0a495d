package rules

import "github.com/prettymuchbryce/reportdetails/internal/routes"

// ActionKey is the stable identifier of a menu action.
type ActionKey string

const (
	KeyMembers         ActionKey = "members"
	KeyInvite          ActionKey = "invite"
	KeySettings        ActionKey = "settings"
	KeyTrackSubmit     ActionKey = "track_submit"
	KeyTrackCategorize ActionKey = "track_categorize"
	KeyTrackShare      ActionKey = "track_share"
	KeyPrivateNotes    ActionKey = "private_notes"
	KeyMarkIncomplete  ActionKey = "mark_incomplete"
	KeyCancelPayment   ActionKey = "cancel_payment"
	KeyLeave           ActionKey = "leave"
	KeyDownload        ActionKey = "download"
	KeyExport          ActionKey = "export"
	KeyUnapprove       ActionKey = "unapprove"
	KeyDebug           ActionKey = "debug"
)

// Operation is a mutating call made on behalf of a menu or header action.
type Operation string

const (
	OpLeaveRoom      Operation = "leave_room"
	OpLeaveGroupChat Operation = "leave_group_chat"
	OpReopenTask     Operation = "reopen_task"
	OpCancelPayment  Operation = "cancel_payment"
	OpExportCSV      Operation = "export_csv"
	OpUnapprove      Operation = "unapprove"
	OpCreateDraft    Operation = "create_draft"
	OpUpdateAvatar   Operation = "update_avatar"
	OpClearErrors    Operation = "clear_errors"
)

// DestinationKind tells whether an action navigates or invokes an operation.
type DestinationKind string

const (
	DestinationNavigate DestinationKind = "navigate"
	DestinationInvoke   DestinationKind = "invoke"
)

// Gate is what stands between selecting an action and performing it.
type Gate string

const (
	GateNone     Gate = ""
	GateConfirm  Gate = "confirm"   // a confirmation modal must be accepted first
	GateNoAccess Gate = "no_access" // delegate access: show a notice instead
	GateOffline  Gate = "offline"   // show the offline notice instead
)

// Modal names a confirmation step.
type Modal string

const (
	ModalNone              Modal = ""
	ModalLastMemberLeave   Modal = "last_member_leave"
	ModalUnapproveExported Modal = "unapprove_exported"
	ModalCancelPayment     Modal = "cancel_payment"
	ModalDelete            Modal = "delete"
)

// Destination describes where an action leads. Navigate destinations name
// a route; invoke destinations name an operation.
type Destination struct {
	Kind      DestinationKind `json:"kind"`
	Route     routes.Name     `json:"route,omitempty"`
	Operation Operation       `json:"operation,omitempty"`
	Params    routes.Params   `json:"params"`
}

// TrackExpenseContext is carried by the track-expense triage actions.
type TrackExpenseContext struct {
	TransactionID   string `json:"transaction_id"`
	ReportID        string `json:"report_id"`
	Action          string `json:"action"`
	WhisperActionID string `json:"whisper_action_id,omitempty"`
}

// LeaveContext is carried by the leave action.
type LeaveContext struct {
	GroupChat       bool `json:"group_chat"`
	WorkspaceMember bool `json:"workspace_member"`
}

// MenuAction is one entry of the details menu. It is a declarative
// description: performing it is up to the caller.
type MenuAction struct {
	Key            ActionKey            `json:"key"`
	TranslationKey string               `json:"translation_key"`
	Anonymous      bool                 `json:"anonymous"`
	ShowRightIcon  bool                 `json:"show_right_icon"`
	Subtitle       *int                 `json:"subtitle,omitempty"`
	ErrorIndicator bool                 `json:"error_indicator,omitempty"`
	Gate           Gate                 `json:"gate,omitempty"`
	Modal          Modal                `json:"modal,omitempty"`
	Destination    Destination          `json:"destination"`
	TrackExpense   *TrackExpenseContext `json:"track_expense,omitempty"`
	Leave          *LeaveContext        `json:"leave,omitempty"`
}

// RequiresConfirmation returns true if the action only runs after its modal
// is confirmed.
func (a MenuAction) RequiresConfirmation() bool {
	return a.Gate == GateConfirm
}

func navigate(route routes.Name, p routes.Params) Destination {
	return Destination{Kind: DestinationNavigate, Route: route, Params: p}
}

func invoke(op Operation, p routes.Params) Destination {
	return Destination{Kind: DestinationInvoke, Operation: op, Params: p}
}
