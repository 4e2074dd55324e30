package board

import "github.com/swapdesk/swapdesk/pkg/core/model"

// Viewer identifies the account a board is being computed for
type Viewer struct {
	Role   model.Role
	UserID string
}

// RoleConfig parameterizes the generic request board for one role: which
// requests the viewer is entitled to see, and how status filter values expand
// into concrete statuses. A nil keep func means no relevance filter.
type RoleConfig struct {
	Role       model.Role
	KeepShift  func(v Viewer, r model.ShiftSwapRequest) bool
	KeepDayOff func(v Viewer, r model.DayOffSwapRequest) bool

	// StatusBuckets maps a filter value to the set of statuses it selects.
	// Statuses not present expand to themselves.
	StatusBuckets map[string][]model.RequestStatus
}

// ConfigFor returns the board configuration for a role.
//
// The supervisor config carries a known asymmetry from the product: the shift
// view hides requests that are still collecting peer offers, while the day-off
// view keeps matched requests in the supervisor's action list.
func ConfigFor(role model.Role) RoleConfig {
	switch role {
	case model.RoleEmployee:
		return RoleConfig{
			Role:       model.RoleEmployee,
			KeepShift:  employeeKeepShift,
			KeepDayOff: employeeKeepDayOff,
		}
	case model.RoleSupervisor:
		return RoleConfig{
			Role:       model.RoleSupervisor,
			KeepShift:  supervisorKeepShift,
			KeepDayOff: supervisorKeepDayOff,
			StatusBuckets: map[string][]model.RequestStatus{
				string(model.StatusPending): {
					model.StatusPending,
					model.StatusOffersReceived,
					model.StatusMatched,
				},
			},
		}
	case model.RoleModerator:
		// The moderator endpoint already restricts to approved|rejected;
		// no client-side relevance filter on top.
		return RoleConfig{Role: model.RoleModerator}
	default:
		// Company sees every request for the company.
		return RoleConfig{Role: model.RoleCompany}
	}
}

// ExpandStatus resolves a status filter value to the concrete statuses it
// selects under this config.
func (c RoleConfig) ExpandStatus(status string) []model.RequestStatus {
	if bucket, ok := c.StatusBuckets[status]; ok {
		return bucket
	}
	return []model.RequestStatus{model.RequestStatus(status)}
}
