package board

import "github.com/swapdesk/swapdesk/pkg/core/model"

// Stats summarizes status counts across both request collections.
// Total is always Pending + Approved + Rejected + Other.
type Stats struct {
	Total    int
	Pending  int
	Approved int
	Rejected int
	Other    int
}

// Summarize counts statuses over the concatenation of both collections
func Summarize(shiftReqs []model.ShiftSwapRequest, dayOffReqs []model.DayOffSwapRequest) Stats {
	var s Stats
	for _, r := range shiftReqs {
		s.add(r.Status)
	}
	for _, r := range dayOffReqs {
		s.add(r.Status)
	}
	return s
}

func (s *Stats) add(status model.RequestStatus) {
	s.Total++
	switch status {
	case model.StatusPending:
		s.Pending++
	case model.StatusApproved:
		s.Approved++
	case model.StatusRejected:
		s.Rejected++
	default:
		s.Other++
	}
}
