package model

import "time"

// Role identifies which kind of account a session belongs to
type Role string

const (
	RoleCompany    Role = "company"
	RoleSupervisor Role = "supervisor"
	RoleEmployee   Role = "employee"
	RoleModerator  Role = "moderator"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleCompany, RoleSupervisor, RoleEmployee, RoleModerator:
		return true
	}
	return false
}

// RolePrecedence is the fixed resolution order when credentials for more than
// one role are present at the same time. The first role with stored
// credentials wins.
var RolePrecedence = []Role{RoleCompany, RoleSupervisor, RoleEmployee, RoleModerator}

// RequestStatus is the lifecycle state of a swap request as reported by the
// server. The client never advances a status locally; it only reflects what
// the last fetch returned.
type RequestStatus string

const (
	StatusPending        RequestStatus = "pending"
	StatusOffersReceived RequestStatus = "offers_received"
	StatusMatched        RequestStatus = "matched"
	StatusApproved       RequestStatus = "approved"
	StatusRejected       RequestStatus = "rejected"
)

// OfferStatus is the state of a single peer offer or match inside a request's
// negotiation history.
type OfferStatus string

const (
	OfferOffered  OfferStatus = "offered"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
)

// Position is an employee's role within the company roster.
type Position string

const (
	PositionExpert     Position = "expert"
	PositionModerator  Position = "moderator"
	PositionSupervisor Position = "supervisor"
	PositionSME        Position = "sme"
)

func (p Position) IsValid() bool {
	switch p {
	case PositionExpert, PositionModerator, PositionSupervisor, PositionSME:
		return true
	}
	return false
}

// SwapOffer is one peer counter-offer on a shift swap request
type SwapOffer struct {
	ID             string      `json:"_id"`
	OffererUserID  string      `json:"offererUserId"`
	OffererName    string      `json:"offererName,omitempty"`
	ShiftStartTime *time.Time  `json:"shiftStartTime,omitempty"`
	ShiftEndTime   *time.Time  `json:"shiftEndTime,omitempty"`
	Status         OfferStatus `json:"status"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// ShiftSwapRequest is an employee's ask to trade a scheduled shift, optionally
// with an overtime window, subject to supervisor approval and peer offers
type ShiftSwapRequest struct {
	ID                 string        `json:"_id"`
	RequesterUserID    string        `json:"requesterUserId"`
	RequesterName      string        `json:"requesterName,omitempty"`
	RequesterPosition  Position      `json:"requesterPosition,omitempty"`
	ReceiverUserID     string        `json:"receiverUserId,omitempty"`
	Reason             string        `json:"reason"`
	ShiftStartTime     time.Time     `json:"shiftStartTime"`
	ShiftEndTime       time.Time     `json:"shiftEndTime"`
	OvertimeStartTime  *time.Time    `json:"overtimeStartTime,omitempty"`
	OvertimeEndTime    *time.Time    `json:"overtimeEndTime,omitempty"`
	Status             RequestStatus `json:"status"`
	FirstSupervisorID  string        `json:"firstSupervisorId,omitempty"`
	SecondSupervisorID string        `json:"secondSupervisorId,omitempty"`
	Offers             []SwapOffer   `json:"offers,omitempty"`
	Comment            string        `json:"comment,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

// HasAcceptedOffer reports whether any offer in the negotiation history has
// been accepted by the requester.
func (r ShiftSwapRequest) HasAcceptedOffer() bool {
	for _, o := range r.Offers {
		if o.Status == OfferAccepted {
			return true
		}
	}
	return false
}

// DayOffMatch is one proposed exchange match on a day-off swap request
type DayOffMatch struct {
	ID            string      `json:"_id"`
	MatcherUserID string      `json:"matcherUserId"`
	MatcherName   string      `json:"matcherName,omitempty"`
	OfferedDayOff string      `json:"offeredDayOff,omitempty"` // Date format
	Status        OfferStatus `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// DayOffSwapRequest is an employee's ask to exchange an assigned day off for
// another date. The shift window is required alongside the day-off swap.
type DayOffSwapRequest struct {
	ID                 string        `json:"_id"`
	RequesterUserID    string        `json:"requesterUserId"`
	RequesterName      string        `json:"requesterName,omitempty"`
	RequesterPosition  Position      `json:"requesterPosition,omitempty"`
	OriginalDayOff     string        `json:"originalDayOff"`  // Date format
	RequestedDayOff    string        `json:"requestedDayOff"` // Date format
	ShiftStartTime     time.Time     `json:"shiftStartTime"`
	ShiftEndTime       time.Time     `json:"shiftEndTime"`
	OvertimeStartTime  *time.Time    `json:"overtimeStartTime,omitempty"`
	OvertimeEndTime    *time.Time    `json:"overtimeEndTime,omitempty"`
	Status             RequestStatus `json:"status"`
	FirstSupervisorID  string        `json:"firstSupervisorId,omitempty"`
	SecondSupervisorID string        `json:"secondSupervisorId,omitempty"`
	Matches            []DayOffMatch `json:"matches,omitempty"`
	Comment            string        `json:"comment,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

// HasAcceptedMatch reports whether any match has been accepted by the requester.
func (r DayOffSwapRequest) HasAcceptedMatch() bool {
	for _, m := range r.Matches {
		if m.Status == OfferAccepted {
			return true
		}
	}
	return false
}

// EmployeeIDRecord is a company roster entry used to gate employee signup
type EmployeeIDRecord struct {
	ID         string    `json:"_id"`
	EmployeeID string    `json:"employeeId"`
	Name       string    `json:"name"`
	Position   Position  `json:"position"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Supervisor is a roster entry selectable as an approver
type Supervisor struct {
	ID         string `json:"_id"`
	FullName   string `json:"fullName"`
	EmployeeID string `json:"employeeId,omitempty"`
}

// Profile is the display-only account snapshot stored alongside a role's
// credentials at login time. It is never refreshed except by re-login.
type Profile struct {
	ID          string `json:"_id,omitempty" yaml:"id,omitempty"`
	FullName    string `json:"fullName,omitempty" yaml:"fullName,omitempty"`
	Email       string `json:"email,omitempty" yaml:"email,omitempty"`
	EmployeeID  string `json:"employeeId,omitempty" yaml:"employeeId,omitempty"`
	Position    string `json:"position,omitempty" yaml:"position,omitempty"`
	CompanyName string `json:"companyName,omitempty" yaml:"companyName,omitempty"`
}
