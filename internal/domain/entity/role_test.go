package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminHoldsEveryCapability(t *testing.T) {
	actions := []Action{
		ActionViewAllBookings, ActionApproveReview, ActionConfirmPayment,
		ActionAssignRoom, ActionCheckIn, ActionCheckOut, ActionCancelAnyBooking,
		ActionManageRooms, ActionManageCatalog, ActionManageServices,
		ActionManageTickets, ActionViewAuditLog, ActionManageStaffAccount,
	}
	for _, action := range actions {
		assert.True(t, RoleAdmin.Can(action), "admin should hold %s", action)
	}
}

func TestReceptionistCapabilities(t *testing.T) {
	assert.True(t, RoleReceptionist.Can(ActionApproveReview))
	assert.True(t, RoleReceptionist.Can(ActionAssignRoom))
	assert.True(t, RoleReceptionist.Can(ActionCheckIn))
	assert.True(t, RoleReceptionist.Can(ActionCheckOut))
	assert.True(t, RoleReceptionist.Can(ActionCancelAnyBooking))
	assert.True(t, RoleReceptionist.Can(ActionManageRooms))

	assert.False(t, RoleReceptionist.Can(ActionConfirmPayment))
	assert.False(t, RoleReceptionist.Can(ActionManageCatalog))
	assert.False(t, RoleReceptionist.Can(ActionManageTickets))
}

func TestAccountantCapabilities(t *testing.T) {
	assert.True(t, RoleAccountant.Can(ActionConfirmPayment))
	assert.True(t, RoleAccountant.Can(ActionViewAllBookings))

	assert.False(t, RoleAccountant.Can(ActionApproveReview))
	assert.False(t, RoleAccountant.Can(ActionCheckIn))
	assert.False(t, RoleAccountant.Can(ActionManageRooms))
}

func TestCRMStaffCapabilities(t *testing.T) {
	assert.True(t, RoleCRMStaff.Can(ActionManageTickets))

	assert.False(t, RoleCRMStaff.Can(ActionViewAllBookings))
	assert.False(t, RoleCRMStaff.Can(ActionConfirmPayment))
}

func TestCustomerHasNoStaffCapabilities(t *testing.T) {
	assert.False(t, RoleCustomer.Can(ActionViewAllBookings))
	assert.False(t, RoleCustomer.Can(ActionManageTickets))
	assert.False(t, RoleCustomer.IsStaff())
}

func TestUnknownRoleDeniedEverything(t *testing.T) {
	ghost := Role("SUPERVISOR")
	assert.False(t, ghost.Can(ActionViewAllBookings))
	assert.False(t, ghost.IsStaff())
	assert.False(t, ghost.Valid())
}

func TestIsStaff(t *testing.T) {
	for _, role := range []Role{RoleReceptionist, RoleAccountant, RoleCRMStaff, RoleAdmin} {
		assert.True(t, role.IsStaff())
	}
	assert.False(t, RoleCustomer.IsStaff())
}
