package rules

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/prettymuchbryce/reportdetails/internal/facts"
	"github.com/prettymuchbryce/reportdetails/internal/report"
)

var (
	reportTypes = []facts.ReportType{facts.TypeChat, facts.TypeExpense, facts.TypeIOU, facts.TypeInvoice, facts.TypeTask}
	chatTypes   = []facts.ChatType{facts.ChatTypeNone, facts.ChatTypeGroup, facts.ChatTypePolicyRoom, facts.ChatTypePolicyAdmins, facts.ChatTypePolicyExpenseChat, facts.ChatTypeSelfDM}
	statuses    = []facts.Status{facts.StatusOpen, facts.StatusApproved, facts.StatusReimbursed}
	kinds       = []facts.ActionKind{"", facts.ActionMoneyRequest, facts.ActionTrackExpense, facts.ActionTask}
)

// snapshots enumerates a broad grid of snapshots. Each bit of mask toggles
// one boolean fact.
func snapshots() []*facts.Facts {
	var result []*facts.Facts
	for _, rt := range reportTypes {
		for _, ct := range chatTypes {
			for _, st := range statuses {
				for _, kind := range kinds {
					for mask := 0; mask < 1<<8; mask++ {
						f := room(ct)
						f.Report.Type = rt
						f.Report.Status = st
						if kind != "" {
							f = thread(f, kind)
						}
						bit := func(n int) bool { return mask&(1<<n) != 0 }
						f.Report.IsArchived = bit(0)
						f.Policy.IsSubmitAndClose = bit(1)
						if bit(2) {
							f.Policy.Role = facts.RoleAdmin
							f.Policy.ConnectedIntegration = "xero"
						}
						if bit(3) {
							f.Participants = participants(actor)
						} else {
							f.Participants = participants(actor, 8)
						}
						f.Report.ManagerID = actor
						f.Flags = facts.Flags{
							CanLeave:           bit(4),
							IsDebugModeEnabled: bit(5),
							IsPayer:            bit(6),
							IsExported:         bit(7),
							CanHold:            bit(7),
						}
						result = append(result, f)
					}
				}
			}
		}
	}
	return result
}

func TestEvaluate_Properties(t *testing.T) {
	for _, f := range snapshots() {
		result := Evaluate(f)
		keys := result.MenuKeys()

		switch result.Case {
		case CaseDefault, CaseSingleTransaction, CaseAggregateMoneyReport:
		default:
			t.Fatalf("unknown case %q", result.Case)
		}

		if f.IsSelfDM() && len(keys) != 0 {
			t.Fatalf("self DM produced menu %v for %+v", keys, f.Report)
		}
		if f.IsArchivedRoom() && len(keys) != 0 {
			t.Fatalf("archived room produced menu %v for %+v", keys, f.Report)
		}
		if f.Policy.IsSubmitAndClose && hasKey(keys, KeyUnapprove) {
			t.Fatalf("unapprove offered with submit and close for %+v", f.Report)
		}
		if hasKey(keys, KeyDebug) && keys[len(keys)-1] != KeyDebug {
			t.Fatalf("debug is not last in %v", keys)
		}
		if f.Flags.IsDebugModeEnabled && !f.IsSelfDM() && !f.IsArchivedRoom() && !hasKey(keys, KeyDebug) {
			t.Fatalf("debug missing from %v", keys)
		}

		if leave, ok := result.Action(KeyLeave); ok && f.IsRootGroupChat() {
			lastMember := f.ActiveParticipantCount() == 1
			if lastMember != leave.RequiresConfirmation() {
				t.Fatalf("leave confirmation = %v with %d participants", leave.RequiresConfirmation(), f.ActiveParticipantCount())
			}
		}

		promoted := result.PromotedKeys()
		if promoted[len(promoted)-1] != PromotedShare {
			t.Fatalf("share is not last in %v", promoted)
		}
		if result.Case == CaseDefault && (hasPromoted(promoted, PromotedHold) || hasPromoted(promoted, PromotedUnhold)) {
			t.Fatalf("hold offered in default case: %v", promoted)
		}
	}
}

func hasPromoted(keys []PromotedKey, key PromotedKey) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

func TestEvaluate_Deterministic(t *testing.T) {
	for _, f := range snapshots()[:512] {
		first, err := json.Marshal(Evaluate(f))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		second, err := json.Marshal(Evaluate(f))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if !bytes.Equal(first, second) {
			t.Fatalf("evaluation is not deterministic:\n%s\n%s", first, second)
		}
	}
}

func TestEvaluate_DoesNotModifySnapshot(t *testing.T) {
	f := expenseReport(facts.StatusReimbursed)
	f.Participants = participants(actor, 8)
	f.Flags.IsPayer = true

	before, _ := json.Marshal(f)
	Evaluate(f)
	after, _ := json.Marshal(f)
	if !bytes.Equal(before, after) {
		t.Errorf("snapshot changed:\n%s\n%s", before, after)
	}
}

func TestEvaluate_PayerScenario(t *testing.T) {
	f := expenseReport(facts.StatusReimbursed)
	f.Flags.IsPayer = true

	result := Evaluate(f)
	if result.Case != CaseAggregateMoneyReport {
		t.Fatalf("case = %q", result.Case)
	}
	if !hasKey(result.MenuKeys(), KeyCancelPayment) {
		t.Errorf("expected cancel payment in %v", result.MenuKeys())
	}
	promoted := result.PromotedKeys()
	if hasPromoted(promoted, PromotedHold) || hasPromoted(promoted, PromotedUnhold) {
		t.Errorf("unexpected hold in %v", promoted)
	}

	owner := thread(room(facts.ChatTypeNone), facts.ActionMoneyRequest)
	owner.Flags.CanDeleteTransaction = true
	if !Evaluate(owner).Delete.Visible() {
		t.Error("owner of a single transaction should be able to delete it")
	}
}

func TestEvaluate_ReporterSections(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewStructuredWithWriter(&buf, true)

	NewEvaluator(r).Evaluate(expenseReport(facts.StatusOpen))

	sections := r.Sections()
	names := make([]string, 0, len(sections))
	for _, s := range sections {
		names = append(names, s.Name)
	}
	assertKeys(t, names, []string{"menu", "promoted", "delete", "header"})

	if got := len(sections[0].Rules); got != len(menuRules) {
		t.Errorf("menu rules recorded = %d, want %d", got, len(menuRules))
	}

	output := buf.String()
	for _, want := range []string{"Report: 100", "aggregate-money-report", "download", "share"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestEvaluate_ReporterShortCircuit(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewStructuredWithWriter(&buf, false)

	NewEvaluator(r).Evaluate(room(facts.ChatTypeSelfDM))

	menu := r.Sections()[0]
	if len(menu.Rules) != 1 || menu.Rules[0].Name != "self_dm" {
		t.Errorf("expected only the self_dm stop, got %+v", menu.Rules)
	}
}

func TestEvaluate_UIFlags(t *testing.T) {
	tests := []struct {
		name     string
		facts    func() *facts.Facts
		expected UIFlags
	}{
		{
			name:  "plain chat",
			facts: chat,
			expected: UIFlags{
				Avatar:        AvatarRoomHeader,
				NameSection:   NameSectionGroupWorkspace,
				RoomNameLabel: "newRoomPage.roomName",
			},
		},
		{
			name:  "group chat",
			facts: func() *facts.Facts { return room(facts.ChatTypeGroup) },
			expected: UIFlags{
				Avatar:        AvatarEditable,
				NameSection:   NameSectionGroupWorkspace,
				RoomNameLabel: "groupConfirmPage.groupName",
			},
		},
		{
			name: "room with description",
			facts: func() *facts.Facts {
				f := room(facts.ChatTypePolicyRoom)
				f.Report.Description = "Quarterly planning"
				return f
			},
			expected: UIFlags{
				ShowDescription: true,
				Avatar:          AvatarRoomHeader,
				NameSection:     NameSectionGroupWorkspace,
				RoomNameLabel:   "newRoomPage.roomName",
			},
		},
		{
			name: "expense report with title field",
			facts: func() *facts.Facts {
				f := expenseReport(facts.StatusOpen)
				f.Report.ParentID = "50"
				f.Flags.IsAdminOwnerApproverOrOwner = true
				f.Flags.HasTitleField = true
				return f
			},
			expected: UIFlags{
				ShowTitleField:       true,
				ShowParentNavigation: true,
				Avatar:               AvatarMultiple,
				NameSection:          NameSectionTitleField,
				RoomNameLabel:        "newRoomPage.roomName",
			},
		},
		{
			name: "disabled title field",
			facts: func() *facts.Facts {
				f := expenseReport(facts.StatusOpen)
				f.Flags.IsAdminOwnerApproverOrOwner = true
				f.Flags.HasTitleField = true
				f.Flags.IsTitleFieldDisabled = true
				return f
			},
			expected: UIFlags{
				Avatar:        AvatarMultiple,
				NameSection:   NameSectionExpense,
				RoomNameLabel: "newRoomPage.roomName",
			},
		},
		{
			name: "single transaction",
			facts: func() *facts.Facts {
				f := thread(room(facts.ChatTypeNone), facts.ActionMoneyRequest)
				f.Flags.IsAdminOwnerApproverOrOwner = true
				f.Flags.DisableRename = true
				return f
			},
			expected: UIFlags{
				ShowParentNavigation: true,
				DisableRename:        true,
				Avatar:               AvatarRoomHeader,
				NameSection:          NameSectionExpense,
				RoomNameLabel:        "common.name",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.facts()).UI; got != tt.expected {
				t.Errorf("UI = %+v, want %+v", got, tt.expected)
			}
		})
	}
}
