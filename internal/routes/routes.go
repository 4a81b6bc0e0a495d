package routes

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Name identifies a navigation destination.
type Name string

const (
	Report             Name = "report"
	RoomMembers        Name = "room_members"
	ReportParticipants Name = "report_participants"
	RoomInvite         Name = "room_invite"
	ReportSettings     Name = "report_settings"
	ReportSettingsName Name = "report_settings_name"
	PrivateNotes       Name = "private_notes"
	ReportExport       Name = "report_export"
	ReportAvatar       Name = "report_avatar"
	ReportDescription  Name = "report_description"
	EditReportField    Name = "edit_report_field"
	WorkspaceInitial   Name = "workspace_initial"
	DebugReport        Name = "debug_report"
)

// Params are the values a route template can reference.
type Params struct {
	ReportID    string `json:"report_id,omitempty"`
	PolicyID    string `json:"policy_id,omitempty"`
	FieldID     string `json:"field_id,omitempty"`
	Integration string `json:"integration,omitempty"`
	BackTo      string `json:"back_to,omitempty"`
}

func (p Params) vars() map[string]string {
	return map[string]string{
		"reportID":    p.ReportID,
		"policyID":    p.PolicyID,
		"fieldID":     p.FieldID,
		"integration": p.Integration,
	}
}

// Table maps route names to templates.
type Table map[Name]Template

// DefaultTable returns the built-in route templates.
func DefaultTable() Table {
	return Table{
		Report:             "r/${reportID}",
		RoomMembers:        "r/${reportID}/members",
		ReportParticipants: "r/${reportID}/participants",
		RoomInvite:         "r/${reportID}/invite",
		ReportSettings:     "r/${reportID}/settings",
		ReportSettingsName: "r/${reportID}/settings/name",
		PrivateNotes:       "r/${reportID}/notes",
		ReportExport:       "r/${reportID}/details/export/${integration}",
		ReportAvatar:       "r/${reportID}/avatar",
		ReportDescription:  "r/${reportID}/description",
		EditReportField:    "r/${reportID}/edit/policyField/${policyID}/${fieldID}",
		WorkspaceInitial:   "settings/workspaces/${policyID}",
		DebugReport:        "debug/${reportID}",
	}
}

// WithOverrides returns a copy of the table with the given templates
// replaced. Unknown route names are rejected.
func (t Table) WithOverrides(overrides map[string]string) (Table, error) {
	result := make(Table, len(t))
	for k, v := range t {
		result[k] = v
	}

	for name, tmpl := range overrides {
		if _, ok := t[Name(name)]; !ok {
			available := make([]string, 0, len(t))
			for k := range t {
				available = append(available, string(k))
			}
			sort.Strings(available)
			return nil, fmt.Errorf("unknown route %q, available: %v", name, available)
		}
		result[Name(name)] = Template(tmpl)
	}

	return result, nil
}

// Render expands the named route. A non-empty BackTo is appended as a
// query parameter.
func (t Table) Render(name Name, p Params) (string, error) {
	tmpl, ok := t[name]
	if !ok {
		return "", fmt.Errorf("unknown route %q", name)
	}

	rendered := tmpl.ExpandWithParams(p).String()
	if strings.Contains(rendered, "${") {
		return "", fmt.Errorf("route %q has unresolved variables: %s", name, rendered)
	}

	if p.BackTo != "" {
		sep := "?"
		if strings.Contains(rendered, "?") {
			sep = "&"
		}
		rendered += sep + "backTo=" + url.QueryEscape(p.BackTo)
	}

	return rendered, nil
}
