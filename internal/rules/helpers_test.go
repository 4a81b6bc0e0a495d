package rules

import (
	"reflect"
	"testing"

	"github.com/prettymuchbryce/reportdetails/internal/facts"
)

const actor int64 = 7

// chat returns a plain chat snapshot viewed by actor.
func chat() *facts.Facts {
	return &facts.Facts{
		Report:  facts.Report{ID: "100", Type: facts.TypeChat, Status: facts.StatusOpen, CanWrite: true},
		Session: facts.Session{AccountID: actor},
	}
}

// room returns a chat snapshot of the given chat type.
func room(ct facts.ChatType) *facts.Facts {
	f := chat()
	f.Report.ChatType = ct
	f.Policy = &facts.Policy{ID: "pol"}
	f.Report.PolicyID = "pol"
	return f
}

// thread turns the snapshot into a thread of report 50.
func thread(f *facts.Facts, kind facts.ActionKind) *facts.Facts {
	f.Report.ParentID = "50"
	f.Report.ParentActionID = "a1"
	if kind != "" {
		f.ParentAction = &facts.ReportAction{ID: "a1", ActorID: actor, Kind: kind, TransactionID: "t1", ChildReportID: f.Report.ID}
	}
	f.ParentReport = &facts.ParentReport{ID: "50"}
	return f
}

// expenseReport returns an aggregate expense report snapshot.
func expenseReport(status facts.Status) *facts.Facts {
	f := chat()
	f.Report.Type = facts.TypeExpense
	f.Report.Status = status
	f.Report.PolicyID = "pol"
	f.Policy = &facts.Policy{ID: "pol"}
	return f
}

func participants(ids ...int64) []facts.Participant {
	result := make([]facts.Participant, 0, len(ids))
	for _, id := range ids {
		result = append(result, facts.Participant{AccountID: id})
	}
	return result
}

func menuKeys(t *testing.T, f *facts.Facts) []ActionKey {
	t.Helper()
	return Evaluate(f).MenuKeys()
}

func assertKeys[K comparable](t *testing.T, got, want []K) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}
}

func hasKey(keys []ActionKey, key ActionKey) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
