package authorization

// Action identifies an operation subject to the permission predicate.
type Action string

const (
	ActionTicketCreate         Action = "ticket:create"
	ActionTicketEdit           Action = "ticket:edit"
	ActionTicketChangeStatus   Action = "ticket:change_status"
	ActionTicketChangePriority Action = "ticket:change_priority"
	ActionTicketAssign         Action = "ticket:assign"
	ActionTicketGenerateCode   Action = "ticket:generate_code"
	ActionTicketViewActivity   Action = "ticket:view_activity"

	ActionCommentAdd          Action = "comment:add"
	ActionCommentAddInternal  Action = "comment:add_internal"
	ActionCommentViewInternal Action = "comment:view_internal"

	ActionInvitationCreate Action = "invitation:create"
	ActionInvitationList   Action = "invitation:list"
	ActionInvitationRevoke Action = "invitation:revoke"

	ActionTeamView         Action = "team:view"
	ActionTeamManage       Action = "team:manage"
	ActionOrganizationEdit Action = "organization:edit"
)

// policy is the complete role/action matrix. Absence means deny.
var policy = map[Role]map[Action]bool{
	RoleOwner: {
		ActionTicketCreate:         true,
		ActionTicketEdit:           true,
		ActionTicketChangeStatus:   true,
		ActionTicketChangePriority: true,
		ActionTicketAssign:         true,
		ActionTicketGenerateCode:   true,
		ActionTicketViewActivity:   true,
		ActionCommentAdd:           true,
		ActionCommentAddInternal:   true,
		ActionCommentViewInternal:  true,
		ActionInvitationCreate:     true,
		ActionInvitationList:       true,
		ActionInvitationRevoke:     true,
		ActionTeamView:             true,
		ActionTeamManage:           true,
		ActionOrganizationEdit:     true,
	},
	RoleAdmin: {
		ActionTicketCreate:         true,
		ActionTicketEdit:           true,
		ActionTicketChangeStatus:   true,
		ActionTicketChangePriority: true,
		ActionTicketAssign:         true,
		ActionTicketGenerateCode:   true,
		ActionTicketViewActivity:   true,
		ActionCommentAdd:           true,
		ActionCommentAddInternal:   true,
		ActionCommentViewInternal:  true,
		ActionInvitationCreate:     true,
		ActionInvitationList:       true,
		ActionInvitationRevoke:     true,
		ActionTeamView:             true,
		ActionTeamManage:           true,
	},
	RoleAgent: {
		ActionTicketCreate:         true,
		ActionTicketEdit:           true,
		ActionTicketChangeStatus:   true,
		ActionTicketChangePriority: true,
		ActionTicketAssign:         true,
		ActionTicketViewActivity:   true,
		ActionCommentAdd:           true,
		ActionCommentAddInternal:   true,
		ActionCommentViewInternal:  true,
	},
	RoleRequester: {
		// Requesters can open tickets and comment on what they can see;
		// every other mutation is denied. Internal comments are forced
		// off server-side regardless of request input.
		ActionTicketCreate: true,
		ActionCommentAdd:   true,
	},
}

// Can is the authorization predicate: (role, action) -> allow/deny.
func Can(role Role, action Action) bool {
	actions, ok := policy[role]
	if !ok {
		return false
	}
	return actions[action]
}
