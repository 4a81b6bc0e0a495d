package rules

import (
	"testing"

	"github.com/prettymuchbryce/reportdetails/internal/facts"
	"github.com/prettymuchbryce/reportdetails/internal/routes"
)

func TestMenu_PlainChat(t *testing.T) {
	assertKeys(t, menuKeys(t, chat()), []ActionKey{KeySettings, KeyPrivateNotes})
}

func TestMenu_SelfDMIsEmpty(t *testing.T) {
	f := room(facts.ChatTypeSelfDM)
	f.Participants = participants(actor)
	f.Flags = facts.Flags{CanLeave: true, IsDebugModeEnabled: true}

	result := Evaluate(f)
	if len(result.Menu) != 0 {
		t.Errorf("expected empty menu for self DM, got %v", result.MenuKeys())
	}
	if result.Menu == nil {
		t.Error("expected an empty, non-nil menu")
	}
}

func TestMenu_ArchivedRoomIsEmpty(t *testing.T) {
	f := room(facts.ChatTypePolicyRoom)
	f.Report.IsArchived = true
	f.Policy.IsEmployee = true
	f.Participants = participants(actor, 8)
	f.Flags = facts.Flags{CanLeave: true, IsDebugModeEnabled: true}

	if keys := menuKeys(t, f); len(keys) != 0 {
		t.Errorf("expected empty menu for archived room, got %v", keys)
	}
}

func TestMenu_Membership(t *testing.T) {
	tests := []struct {
		name      string
		facts     func() *facts.Facts
		key       ActionKey
		route     routes.Name
		wantCount int
	}{
		{
			name: "group chat shows members",
			facts: func() *facts.Facts {
				f := room(facts.ChatTypeGroup)
				f.Participants = []facts.Participant{{AccountID: 7}, {AccountID: 8}, {AccountID: 9, PendingRemoval: true}}
				return f
			},
			key:       KeyMembers,
			route:     routes.ReportParticipants,
			wantCount: 2,
		},
		{
			name: "user created room with employee opens room members",
			facts: func() *facts.Facts {
				f := room(facts.ChatTypePolicyRoom)
				f.Policy.IsEmployee = true
				f.Participants = participants(7, 8)
				return f
			},
			key:       KeyMembers,
			route:     routes.RoomMembers,
			wantCount: 2,
		},
		{
			name: "user created room without employee access invites",
			facts: func() *facts.Facts {
				f := room(facts.ChatTypePolicyRoom)
				f.Report.Visibility = facts.VisibilityPublic
				f.Participants = participants(7, 8)
				return f
			},
			key:   KeyInvite,
			route: routes.RoomInvite,
		},
		{
			name: "private user created room thread shows members",
			facts: func() *facts.Facts {
				f := thread(room(facts.ChatTypePolicyRoom), "")
				f.Report.Visibility = facts.VisibilityPrivate
				return f
			},
			key:   KeyMembers,
			route: routes.RoomMembers,
		},
		{
			name: "default room thread for employee shows members",
			facts: func() *facts.Facts {
				f := thread(room(facts.ChatTypePolicyAdmins), "")
				f.Policy.IsEmployee = true
				return f
			},
			key:   KeyMembers,
			route: routes.RoomMembers,
		},
		{
			name: "default room thread for non employee invites",
			facts: func() *facts.Facts {
				return thread(room(facts.ChatTypePolicyAnnounce), "")
			},
			key:   KeyInvite,
			route: routes.RoomInvite,
		},
		{
			name: "policy expense chat for admin opens room members",
			facts: func() *facts.Facts {
				f := room(facts.ChatTypePolicyExpenseChat)
				f.Policy.Role = facts.RoleAdmin
				f.Participants = participants(7, 8)
				return f
			},
			key:       KeyMembers,
			route:     routes.RoomMembers,
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(tt.facts())
			if hasKey(result.MenuKeys(), KeyMembers) && hasKey(result.MenuKeys(), KeyInvite) {
				t.Fatalf("members and invite are exclusive, got %v", result.MenuKeys())
			}

			action, ok := result.Action(tt.key)
			if !ok {
				t.Fatalf("expected %s in %v", tt.key, result.MenuKeys())
			}
			if action.Destination.Route != tt.route {
				t.Errorf("route = %q, want %q", action.Destination.Route, tt.route)
			}
			if tt.key == KeyMembers {
				if action.Subtitle == nil || *action.Subtitle != tt.wantCount {
					t.Errorf("subtitle = %v, want %d", action.Subtitle, tt.wantCount)
				}
			}
		})
	}
}

func TestMenu_NoMembershipForConciergeAndSystem(t *testing.T) {
	concierge := chat()
	concierge.Report.IsConcierge = true
	concierge.Participants = participants(7, 8)

	system := room(facts.ChatTypeSystem)
	system.Participants = participants(7, 8)

	for name, f := range map[string]*facts.Facts{"concierge": concierge, "system": system} {
		keys := menuKeys(t, f)
		if hasKey(keys, KeyMembers) || hasKey(keys, KeyInvite) {
			t.Errorf("%s: unexpected membership action in %v", name, keys)
		}
	}
}

func TestMenu_Settings(t *testing.T) {
	tests := []struct {
		name     string
		facts    func() *facts.Facts
		expected bool
	}{
		{"chat", chat, true},
		{"hidden chat keeps write capability", func() *facts.Facts {
			f := chat()
			f.Report.IsHidden = true
			return f
		}, true},
		{"expense report", func() *facts.Facts { return expenseReport(facts.StatusOpen) }, false},
		{"expense report with visibility", func() *facts.Facts {
			f := expenseReport(facts.StatusOpen)
			f.Report.Visibility = facts.VisibilityRestricted
			return f
		}, true},
		{"invoice chat type with visibility", func() *facts.Facts {
			f := expenseReport(facts.StatusOpen)
			f.Report.Visibility = facts.VisibilityRestricted
			f.Report.ChatType = facts.ChatTypeInvoice
			return f
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasKey(menuKeys(t, tt.facts()), KeySettings); got != tt.expected {
				t.Errorf("settings shown = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMenu_TrackExpense(t *testing.T) {
	f := thread(room(facts.ChatTypeNone), facts.ActionTrackExpense)
	f.ParentAction.WhisperActionID = "w1"

	result := Evaluate(f)
	assertKeys(t, result.MenuKeys(), []ActionKey{KeySettings, KeyTrackSubmit, KeyTrackCategorize, KeyTrackShare})

	wantActions := map[ActionKey]string{KeyTrackSubmit: "submit", KeyTrackCategorize: "categorize", KeyTrackShare: "share"}
	for key, want := range wantActions {
		action, _ := result.Action(key)
		ctx := action.TrackExpense
		if ctx == nil {
			t.Fatalf("%s: missing track expense context", key)
		}
		if ctx.Action != want || ctx.TransactionID != "t1" || ctx.ReportID != "50" || ctx.WhisperActionID != "w1" {
			t.Errorf("%s: unexpected context %+v", key, *ctx)
		}
		if action.Destination.Operation != OpCreateDraft {
			t.Errorf("%s: operation = %q, want %q", key, action.Destination.Operation, OpCreateDraft)
		}
	}

	f.ParentAction.IsDeleted = true
	if keys := menuKeys(t, f); hasKey(keys, KeyTrackSubmit) {
		t.Errorf("deleted track expense should not offer triage, got %v", keys)
	}
}

func TestMenu_PrivateNotes(t *testing.T) {
	f := chat()
	f.Flags.HasPrivateNoteErrors = true
	action, ok := Evaluate(f).Action(KeyPrivateNotes)
	if !ok || !action.ErrorIndicator {
		t.Errorf("expected private notes with error indicator, got %+v", action)
	}

	excluded := map[string]*facts.Facts{
		"chat thread": thread(chat(), ""),
		"expense":     expenseReport(facts.StatusOpen),
		"invoice":     func() *facts.Facts { f := chat(); f.Report.Type = facts.TypeInvoice; return f }(),
		"task":        func() *facts.Facts { f := chat(); f.Report.Type = facts.TypeTask; return f }(),
	}
	for name, f := range excluded {
		if hasKey(menuKeys(t, f), KeyPrivateNotes) {
			t.Errorf("%s: private notes should be hidden", name)
		}
	}
}

func TestMenu_MarkIncomplete(t *testing.T) {
	task := func(status facts.Status, modify, action bool) *facts.Facts {
		f := chat()
		f.Report.Type = facts.TypeTask
		f.Report.Status = status
		f.Flags.CanModifyTask = modify
		f.Flags.CanActionTask = action
		return f
	}

	tests := []struct {
		name     string
		facts    *facts.Facts
		expected bool
	}{
		{"completed with permissions", task(facts.StatusApproved, true, true), true},
		{"open task", task(facts.StatusOpen, true, true), false},
		{"cannot modify", task(facts.StatusApproved, false, true), false},
		{"cannot action", task(facts.StatusApproved, true, false), false},
		{"canceled", task(facts.StatusCanceled, true, true), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasKey(menuKeys(t, tt.facts), KeyMarkIncomplete); got != tt.expected {
				t.Errorf("mark incomplete shown = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMenu_CancelPayment(t *testing.T) {
	f := expenseReport(facts.StatusReimbursed)
	f.Flags.IsPayer = true

	action, ok := Evaluate(f).Action(KeyCancelPayment)
	if !ok {
		t.Fatal("expected cancel payment")
	}
	if !action.RequiresConfirmation() || action.Modal != ModalCancelPayment {
		t.Errorf("cancel payment should require confirmation, got gate %q modal %q", action.Gate, action.Modal)
	}

	iou := expenseReport(facts.StatusReimbursed)
	iou.Report.Type = facts.TypeIOU
	iou.Flags.IsPayer = true
	if hasKey(menuKeys(t, iou), KeyCancelPayment) {
		t.Error("IOU reports are not expense reports")
	}

	unsettled := expenseReport(facts.StatusApproved)
	unsettled.Flags.IsPayer = true
	if hasKey(menuKeys(t, unsettled), KeyCancelPayment) {
		t.Error("unsettled reports cannot cancel payment")
	}

	notPayer := expenseReport(facts.StatusReimbursed)
	if hasKey(menuKeys(t, notPayer), KeyCancelPayment) {
		t.Error("only the payer can cancel payment")
	}
}

func TestMenu_Leave(t *testing.T) {
	tests := []struct {
		name         string
		participants []facts.Participant
		thread       bool
		wantGate     Gate
		wantOp       Operation
	}{
		{
			name:         "last member of root group chat confirms",
			participants: participants(actor),
			wantGate:     GateConfirm,
			wantOp:       OpLeaveGroupChat,
		},
		{
			name:         "pending removals do not count",
			participants: []facts.Participant{{AccountID: actor}, {AccountID: 8, PendingRemoval: true}},
			wantGate:     GateConfirm,
			wantOp:       OpLeaveGroupChat,
		},
		{
			name:         "several members leave directly",
			participants: participants(actor, 8),
			wantGate:     GateNone,
			wantOp:       OpLeaveGroupChat,
		},
		{
			name:         "group chat thread leaves the room",
			participants: participants(actor),
			thread:       true,
			wantGate:     GateNone,
			wantOp:       OpLeaveRoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := room(facts.ChatTypeGroup)
			if tt.thread {
				f = thread(f, "")
			}
			f.Participants = tt.participants
			f.Flags.CanLeave = true

			action, ok := Evaluate(f).Action(KeyLeave)
			if !ok {
				t.Fatal("expected leave action")
			}
			if action.Gate != tt.wantGate {
				t.Errorf("gate = %q, want %q", action.Gate, tt.wantGate)
			}
			if action.Destination.Operation != tt.wantOp {
				t.Errorf("operation = %q, want %q", action.Destination.Operation, tt.wantOp)
			}
			if tt.wantGate == GateConfirm && action.Modal != ModalLastMemberLeave {
				t.Errorf("modal = %q, want %q", action.Modal, ModalLastMemberLeave)
			}
			if !action.Anonymous {
				t.Error("leave should be allowed for anonymous users")
			}
		})
	}
}

func TestMenu_LeaveWorkspaceMember(t *testing.T) {
	f := room(facts.ChatTypePolicyRoom)
	f.Report.Visibility = facts.VisibilityRestricted
	f.Policy.IsEmployee = true
	f.Flags.CanLeave = true

	action, _ := Evaluate(f).Action(KeyLeave)
	if action.Leave == nil || !action.Leave.WorkspaceMember || action.Leave.GroupChat {
		t.Errorf("unexpected leave context %+v", action.Leave)
	}

	f.Policy.IsEmployee = false
	action, _ = Evaluate(f).Action(KeyLeave)
	if action.Leave.WorkspaceMember {
		t.Error("non employees are not workspace members")
	}
}

func TestMenu_Download(t *testing.T) {
	f := expenseReport(facts.StatusOpen)
	action, ok := Evaluate(f).Action(KeyDownload)
	if !ok || action.Gate != GateNone || action.Destination.Operation != OpExportCSV {
		t.Errorf("unexpected download action %+v (present %v)", action, ok)
	}

	f.Flags.IsOffline = true
	action, _ = Evaluate(f).Action(KeyDownload)
	if action.Gate != GateOffline {
		t.Errorf("gate = %q, want %q", action.Gate, GateOffline)
	}

	if hasKey(menuKeys(t, chat()), KeyDownload) {
		t.Error("chats cannot be downloaded")
	}
}

func TestMenu_Export(t *testing.T) {
	admin := func() *facts.Facts {
		f := expenseReport(facts.StatusApproved)
		f.Policy.Role = facts.RoleAdmin
		f.Policy.ConnectedIntegration = "netsuite"
		return f
	}

	action, ok := Evaluate(admin()).Action(KeyExport)
	if !ok {
		t.Fatal("expected export action")
	}
	if action.Destination.Route != routes.ReportExport || action.Destination.Params.Integration != "netsuite" {
		t.Errorf("unexpected destination %+v", action.Destination)
	}

	noIntegration := admin()
	noIntegration.Policy.ConnectedIntegration = ""
	notAdmin := admin()
	notAdmin.Policy.Role = facts.RoleUser
	single := thread(room(facts.ChatTypeNone), facts.ActionMoneyRequest)
	single.Policy.Role = facts.RoleAdmin
	single.Policy.ConnectedIntegration = "netsuite"
	plainChat := room(facts.ChatTypePolicyRoom)
	plainChat.Policy.Role = facts.RoleAdmin
	plainChat.Policy.ConnectedIntegration = "netsuite"

	for name, f := range map[string]*facts.Facts{
		"no integration":     noIntegration,
		"not admin":          notAdmin,
		"single transaction": single,
		"not money":          plainChat,
	} {
		if hasKey(menuKeys(t, f), KeyExport) {
			t.Errorf("%s: export should be hidden", name)
		}
	}
}

func TestMenu_Unapprove(t *testing.T) {
	approved := func() *facts.Facts {
		f := expenseReport(facts.StatusApproved)
		f.Report.ManagerID = actor
		return f
	}

	tests := []struct {
		name     string
		facts    func() *facts.Facts
		shown    bool
		wantGate Gate
	}{
		{"manager", approved, true, GateNone},
		{"admin", func() *facts.Facts {
			f := approved()
			f.Report.ManagerID = 99
			f.Policy.Role = facts.RoleAdmin
			return f
		}, true, GateNone},
		{"exported needs confirmation", func() *facts.Facts {
			f := approved()
			f.Flags.IsExported = true
			return f
		}, true, GateConfirm},
		{"delegate gets notice", func() *facts.Facts {
			f := approved()
			f.Flags.IsExported = true
			f.Flags.IsDelegateAccessRestricted = true
			return f
		}, true, GateNoAccess},
		{"neither manager nor admin", func() *facts.Facts {
			f := approved()
			f.Report.ManagerID = 99
			return f
		}, false, GateNone},
		{"not approved", func() *facts.Facts {
			f := approved()
			f.Report.Status = facts.StatusSubmitted
			return f
		}, false, GateNone},
		{"submit and close", func() *facts.Facts {
			f := approved()
			f.Policy.IsSubmitAndClose = true
			return f
		}, false, GateNone},
		{"iou", func() *facts.Facts {
			f := approved()
			f.Report.Type = facts.TypeIOU
			return f
		}, false, GateNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := Evaluate(tt.facts()).Action(KeyUnapprove)
			if ok != tt.shown {
				t.Fatalf("unapprove shown = %v, want %v", ok, tt.shown)
			}
			if ok && action.Gate != tt.wantGate {
				t.Errorf("gate = %q, want %q", action.Gate, tt.wantGate)
			}
		})
	}
}

func TestMenu_DebugIsLast(t *testing.T) {
	f := expenseReport(facts.StatusReimbursed)
	f.Participants = participants(actor, 8)
	f.Policy.Role = facts.RoleAdmin
	f.Policy.ConnectedIntegration = "xero"
	f.Flags = facts.Flags{IsPayer: true, CanLeave: true, IsDebugModeEnabled: true}

	assertKeys(t, menuKeys(t, f), []ActionKey{KeyMembers, KeyCancelPayment, KeyLeave, KeyDownload, KeyExport, KeyDebug})
}

func TestMenu_DebugNeedsReportID(t *testing.T) {
	f := chat()
	f.Report.ID = ""
	f.Flags.IsDebugModeEnabled = true
	if hasKey(menuKeys(t, f), KeyDebug) {
		t.Error("debug needs a report id")
	}
}

func TestMenu_ForcedDebugMode(t *testing.T) {
	result := NewEvaluator(nil).WithDebugMode(true).Evaluate(chat())
	keys := result.MenuKeys()
	if keys[len(keys)-1] != KeyDebug {
		t.Errorf("expected debug last, got %v", keys)
	}
}
