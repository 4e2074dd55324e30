package board

import "github.com/swapdesk/swapdesk/pkg/core/model"

// employeeKeepShift keeps a request the employee submitted or is negotiating
// on as an offerer.
func employeeKeepShift(v Viewer, r model.ShiftSwapRequest) bool {
	if r.RequesterUserID == v.UserID {
		return true
	}
	for _, o := range r.Offers {
		if o.OffererUserID == v.UserID {
			return true
		}
	}
	return false
}

func employeeKeepDayOff(v Viewer, r model.DayOffSwapRequest) bool {
	if r.RequesterUserID == v.UserID {
		return true
	}
	for _, m := range r.Matches {
		if m.MatcherUserID == v.UserID {
			return true
		}
	}
	return false
}

// supervisorKeepShift keeps requests the supervisor is assigned to approve,
// excluding ones still awaiting peer offers.
func supervisorKeepShift(v Viewer, r model.ShiftSwapRequest) bool {
	if !assignedSupervisor(v.UserID, r.FirstSupervisorID, r.SecondSupervisorID) {
		return false
	}
	return r.Status != model.StatusOffersReceived
}

// supervisorKeepDayOff keeps assigned requests. Matched day-off requests stay
// in the supervisor's action list.
func supervisorKeepDayOff(v Viewer, r model.DayOffSwapRequest) bool {
	return assignedSupervisor(v.UserID, r.FirstSupervisorID, r.SecondSupervisorID)
}

func assignedSupervisor(userID, first, second string) bool {
	return userID != "" && (first == userID || second == userID)
}

// ApplyRelevance narrows both collections to the records the viewer is
// entitled to see under the role config.
func ApplyRelevance(
	cfg RoleConfig,
	v Viewer,
	shiftReqs []model.ShiftSwapRequest,
	dayOffReqs []model.DayOffSwapRequest,
) ([]model.ShiftSwapRequest, []model.DayOffSwapRequest) {
	if cfg.KeepShift == nil && cfg.KeepDayOff == nil {
		return shiftReqs, dayOffReqs
	}

	keptShift := shiftReqs
	if cfg.KeepShift != nil {
		keptShift = make([]model.ShiftSwapRequest, 0, len(shiftReqs))
		for _, r := range shiftReqs {
			if cfg.KeepShift(v, r) {
				keptShift = append(keptShift, r)
			}
		}
	}

	keptDayOff := dayOffReqs
	if cfg.KeepDayOff != nil {
		keptDayOff = make([]model.DayOffSwapRequest, 0, len(dayOffReqs))
		for _, r := range dayOffReqs {
			if cfg.KeepDayOff(v, r) {
				keptDayOff = append(keptDayOff, r)
			}
		}
	}

	return keptShift, keptDayOff
}
