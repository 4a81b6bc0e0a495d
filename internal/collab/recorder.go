package collab

import (
	"context"
	"sync"
)

// Call is one recorded collaborator call.
type Call struct {
	Method string
	Args   []string
}

// Recorder records calls in memory. Use it in tests.
type Recorder struct {
	mu       sync.Mutex
	calls    []Call
	failures map[string]error
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{failures: make(map[string]error)}
}

// Fail makes every later call to method return err.
func (r *Recorder) Fail(method string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures[method] = err
}

// Calls returns a copy of the recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Methods returns the recorded method names in order.
func (r *Recorder) Methods() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	methods := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		methods = append(methods, c.Method)
	}
	return methods
}

// Count returns how often method was called.
func (r *Recorder) Count(method string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

func (r *Recorder) record(method string, args ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Method: method, Args: args})
	return r.failures[method]
}

func boolArg(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func (r *Recorder) Navigate(ctx context.Context, url string) error {
	return r.record("Navigate", url)
}

func (r *Recorder) DismissModal(ctx context.Context) error {
	return r.record("DismissModal")
}

func (r *Recorder) GoBack(ctx context.Context, backTo string) error {
	return r.record("GoBack", backTo)
}

func (r *Recorder) DeleteTask(ctx context.Context, reportID string) error {
	return r.record("DeleteTask", reportID)
}

func (r *Recorder) DeleteMoneyRequest(ctx context.Context, t Transaction) error {
	return r.record("DeleteMoneyRequest", t.TransactionID, t.ReportID)
}

func (r *Recorder) DeleteTrackExpense(ctx context.Context, t Transaction) error {
	return r.record("DeleteTrackExpense", t.TransactionID, t.ReportID)
}

func (r *Recorder) LeaveRoom(ctx context.Context, reportID string, workspaceMember bool) error {
	return r.record("LeaveRoom", reportID, boolArg(workspaceMember))
}

func (r *Recorder) LeaveGroupChat(ctx context.Context, reportID string) error {
	return r.record("LeaveGroupChat", reportID)
}

func (r *Recorder) CancelPayment(ctx context.Context, reportID string) error {
	return r.record("CancelPayment", reportID)
}

func (r *Recorder) Unapprove(ctx context.Context, reportID string) error {
	return r.record("Unapprove", reportID)
}

func (r *Recorder) ReopenTask(ctx context.Context, reportID string) error {
	return r.record("ReopenTask", reportID)
}

func (r *Recorder) ExportCSV(ctx context.Context, reportID, filename string) error {
	return r.record("ExportCSV", reportID, filename)
}

func (r *Recorder) CreateDraft(ctx context.Context, d Draft) error {
	return r.record("CreateDraft", d.TransactionID, d.ReportID, d.Action, d.WhisperActionID)
}

func (r *Recorder) UpdateAvatar(ctx context.Context, reportID, file string) error {
	return r.record("UpdateAvatar", reportID, file)
}

func (r *Recorder) ClearErrors(ctx context.Context, reportID, field string) error {
	return r.record("ClearErrors", reportID, field)
}
