package entity

// Role is the closed set of account roles. Access decisions go through
// the capability table below instead of ad hoc string checks.
type Role string

const (
	RoleCustomer     Role = "CUSTOMER"
	RoleReceptionist Role = "RECEPTIONIST"
	RoleAccountant   Role = "ACCOUNTANT"
	RoleCRMStaff     Role = "CRM_STAFF"
	RoleAdmin        Role = "ADMIN"
)

// Action names a privileged operation guarded by the capability table
type Action string

const (
	ActionViewAllBookings    Action = "booking.view_all"
	ActionApproveReview      Action = "booking.approve_review"
	ActionConfirmPayment     Action = "booking.confirm_payment"
	ActionAssignRoom         Action = "booking.assign_room"
	ActionCheckIn            Action = "booking.check_in"
	ActionCheckOut           Action = "booking.check_out"
	ActionCancelAnyBooking   Action = "booking.cancel_any"
	ActionManageRooms        Action = "room.manage"
	ActionManageCatalog      Action = "catalog.manage"
	ActionManageServices     Action = "service.manage"
	ActionManageTickets      Action = "ticket.manage"
	ActionViewAuditLog       Action = "audit.view"
	ActionManageStaffAccount Action = "staff.manage"
)

// capabilities maps each role to its permitted actions. Admin implicitly
// holds every capability and is not enumerated here.
var capabilities = map[Role]map[Action]bool{
	RoleReceptionist: {
		ActionViewAllBookings:  true,
		ActionApproveReview:    true,
		ActionAssignRoom:       true,
		ActionCheckIn:          true,
		ActionCheckOut:         true,
		ActionCancelAnyBooking: true,
		ActionManageRooms:      true,
	},
	RoleAccountant: {
		ActionViewAllBookings: true,
		ActionConfirmPayment:  true,
	},
	RoleCRMStaff: {
		ActionManageTickets: true,
	},
	RoleCustomer: {},
}

// Can reports whether the role is permitted to perform the action
func (r Role) Can(action Action) bool {
	if r == RoleAdmin {
		return true
	}
	allowed, ok := capabilities[r]
	if !ok {
		return false
	}
	return allowed[action]
}

// IsStaff reports whether the role belongs to hotel personnel
func (r Role) IsStaff() bool {
	switch r {
	case RoleReceptionist, RoleAccountant, RoleCRMStaff, RoleAdmin:
		return true
	}
	return false
}

// Valid reports whether the role is one of the closed set
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleReceptionist, RoleAccountant, RoleCRMStaff, RoleAdmin:
		return true
	}
	return false
}
