package rules

import (
	"github.com/prettymuchbryce/reportdetails/internal/report"
	"github.com/prettymuchbryce/reportdetails/internal/routes"
)

// HeaderKey identifies an interactive element of the view header.
type HeaderKey string

const (
	HeaderViewAvatar        HeaderKey = "view_avatar"
	HeaderUpdateAvatar      HeaderKey = "update_avatar"
	HeaderRemoveAvatar      HeaderKey = "remove_avatar"
	HeaderClearAvatarErrors HeaderKey = "clear_avatar_errors"
	HeaderWorkspace         HeaderKey = "workspace"
	HeaderRename            HeaderKey = "rename"
	HeaderEditTitle         HeaderKey = "edit_title"
	HeaderClearNameErrors   HeaderKey = "clear_name_errors"
	HeaderDescription       HeaderKey = "description"
)

// Error fields cleared by the header.
const (
	ErrorFieldAvatar     = "avatar"
	ErrorFieldReportName = "reportName"
)

// HeaderAction is an interactive element above the promoted actions: the
// avatar picker, the name section and the description.
type HeaderAction struct {
	Key         HeaderKey   `json:"key"`
	Disabled    bool        `json:"disabled,omitempty"`
	ErrorField  string      `json:"error_field,omitempty"`
	Destination Destination `json:"destination"`
}

// buildHeader derives the header elements from the avatar and name section
// already chosen for the view.
func buildHeader(in *input, ui UIFlags, r report.Reporter) []HeaderAction {
	f := in.f
	id := routes.Params{ReportID: f.Report.ID}
	result := []HeaderAction{}

	editable := ui.Avatar == AvatarEditable
	r.RecordRule("avatar", editable, string(ui.Avatar))
	if editable {
		if f.Report.HasAvatar {
			result = append(result, HeaderAction{Key: HeaderViewAvatar, Destination: navigate(routes.ReportAvatar, id)})
		}
		result = append(result, HeaderAction{Key: HeaderUpdateAvatar, Destination: invoke(OpUpdateAvatar, id)})
		if f.Report.HasAvatar {
			result = append(result, HeaderAction{Key: HeaderRemoveAvatar, Destination: invoke(OpUpdateAvatar, id)})
		}
		if f.Flags.HasAvatarErrors {
			result = append(result, HeaderAction{Key: HeaderClearAvatarErrors, ErrorField: ErrorFieldAvatar, Destination: invoke(OpClearErrors, id)})
		}
	}

	switch ui.NameSection {
	case NameSectionExpense:
		// Only the read-only name block links to the workspace.
		link := ui.DisableRename && f.IsPolicyAdmin()
		r.RecordRule("workspace", link, "")
		if link {
			result = append(result, HeaderAction{
				Key:         HeaderWorkspace,
				Disabled:    f.IsPolicyPendingDelete(),
				Destination: navigate(routes.WorkspaceInitial, routes.Params{PolicyID: f.Report.PolicyID}),
			})
		}
	case NameSectionGroupWorkspace:
		r.RecordRule("rename", !ui.DisableRename, "")
		if !ui.DisableRename {
			result = append(result, HeaderAction{Key: HeaderRename, Destination: navigate(routes.ReportSettingsName, in.params())})
		}
	case NameSectionTitleField:
		r.RecordRule("edit_title", true, f.TitleFieldID())
		p := in.params()
		p.FieldID = f.TitleFieldID()
		result = append(result, HeaderAction{Key: HeaderEditTitle, Destination: navigate(routes.EditReportField, p)})
	}

	nameErrors := f.Flags.HasNameErrors && ui.NameSection != NameSectionExpense
	r.RecordRule("name_errors", nameErrors, "")
	if nameErrors {
		result = append(result, HeaderAction{Key: HeaderClearNameErrors, ErrorField: ErrorFieldReportName, Destination: invoke(OpClearErrors, id)})
	}

	r.RecordRule("description", ui.ShowDescription, "")
	if ui.ShowDescription {
		result = append(result, HeaderAction{Key: HeaderDescription, Destination: navigate(routes.ReportDescription, in.params())})
	}

	return result
}
