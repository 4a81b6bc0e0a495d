package rules

// AvatarKind is the avatar component the header uses.
type AvatarKind string

const (
	AvatarMultiple   AvatarKind = "multiple"
	AvatarEditable   AvatarKind = "editable"
	AvatarRoomHeader AvatarKind = "room_header"
)

// NameSection is the block that shows the report name.
type NameSection string

const (
	NameSectionTitleField     NameSection = "title_field"
	NameSectionExpense        NameSection = "expense"
	NameSectionGroupWorkspace NameSection = "group_workspace"
)

// UIFlags are the remaining visibility decisions of the view.
type UIFlags struct {
	ShowDeleteButton     bool        `json:"show_delete_button"`
	ShowTitleField       bool        `json:"show_title_field"`
	ShowDescription      bool        `json:"show_description"`
	ShowParentNavigation bool        `json:"show_parent_navigation"`
	DisableRename        bool        `json:"disable_rename"`
	Avatar               AvatarKind  `json:"avatar"`
	NameSection          NameSection `json:"name_section"`
	RoomNameLabel        string      `json:"room_name_label"`
}

func buildUI(in *input, del DeleteEligibility) UIFlags {
	f := in.f

	ui := UIFlags{
		ShowDeleteButton: del.Visible(),
		ShowTitleField:   in.caseID != CaseSingleTransaction && !f.Flags.IsTitleFieldDisabled && f.Flags.IsAdminOwnerApproverOrOwner,
		ShowDescription:  f.IsChatRoom() && (f.Flags.CanEditDescription || f.Report.Description != ""),
		DisableRename:    f.Flags.DisableRename,
	}

	ui.ShowParentNavigation = f.Report.ParentID != "" &&
		(f.IsMoneyRequestReport() || f.IsInvoiceReport() || f.IsMoneyRequest() || f.IsTask())

	switch {
	case f.IsMoneyRequestReport() || f.IsInvoiceReport():
		ui.Avatar = AvatarMultiple
	case f.IsGroupChat() && !f.IsThread():
		ui.Avatar = AvatarEditable
	default:
		ui.Avatar = AvatarRoomHeader
	}

	switch {
	case !f.IsMoneyView():
		ui.NameSection = NameSectionGroupWorkspace
	case ui.ShowTitleField && f.Flags.HasTitleField:
		ui.NameSection = NameSectionTitleField
	default:
		ui.NameSection = NameSectionExpense
	}

	switch {
	case in.caseID == CaseSingleTransaction:
		ui.RoomNameLabel = "common.name"
	case f.IsGroupChat():
		ui.RoomNameLabel = "groupConfirmPage.groupName"
	default:
		ui.RoomNameLabel = "newRoomPage.roomName"
	}

	return ui
}
