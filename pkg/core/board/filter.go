package board

import (
	"sort"
	"strings"
	"time"

	"github.com/swapdesk/swapdesk/pkg/core/model"
)

// Kind selects which request collections a query applies to
type Kind string

const (
	KindAll    Kind = "all"
	KindShift  Kind = "shift"
	KindDayOff Kind = "dayoff"
)

// StatusAll is the status filter value that matches every status
const StatusAll = "all"

// Query is a free-text/status/type filter over a board's collections
type Query struct {
	Search string
	Status string // StatusAll or a status name, expanded through the role's buckets
	Type   Kind
}

// IsEmpty reports whether the query filters nothing
func (q Query) IsEmpty() bool {
	return q.Search == "" &&
		(q.Status == "" || q.Status == StatusAll) &&
		(q.Type == "" || q.Type == KindAll)
}

// Filter applies a query to both collections and returns the two filtered
// collections, re-split by kind. An empty query returns the inputs unchanged.
func Filter(
	cfg RoleConfig,
	q Query,
	shiftReqs []model.ShiftSwapRequest,
	dayOffReqs []model.DayOffSwapRequest,
) ([]model.ShiftSwapRequest, []model.DayOffSwapRequest) {
	if q.IsEmpty() {
		return shiftReqs, dayOffReqs
	}

	var statuses map[model.RequestStatus]bool
	if q.Status != "" && q.Status != StatusAll {
		statuses = make(map[model.RequestStatus]bool)
		for _, s := range cfg.ExpandStatus(q.Status) {
			statuses[s] = true
		}
	}

	term := strings.ToLower(q.Search)

	outShift := make([]model.ShiftSwapRequest, 0, len(shiftReqs))
	if q.Type == "" || q.Type == KindAll || q.Type == KindShift {
		for _, r := range shiftReqs {
			if statuses != nil && !statuses[r.Status] {
				continue
			}
			if term != "" && !matchesShift(r, term) {
				continue
			}
			outShift = append(outShift, r)
		}
	}

	outDayOff := make([]model.DayOffSwapRequest, 0, len(dayOffReqs))
	if q.Type == "" || q.Type == KindAll || q.Type == KindDayOff {
		for _, r := range dayOffReqs {
			if statuses != nil && !statuses[r.Status] {
				continue
			}
			if term != "" && !matchesDayOff(r, term) {
				continue
			}
			outDayOff = append(outDayOff, r)
		}
	}

	return outShift, outDayOff
}

// matchesShift does a case-insensitive substring match over the reason and
// the participants' display names.
func matchesShift(r model.ShiftSwapRequest, term string) bool {
	if containsFold(r.Reason, term) || containsFold(r.RequesterName, term) {
		return true
	}
	for _, o := range r.Offers {
		if containsFold(o.OffererName, term) {
			return true
		}
	}
	return false
}

func matchesDayOff(r model.DayOffSwapRequest, term string) bool {
	if containsFold(r.Comment, term) || containsFold(r.RequesterName, term) {
		return true
	}
	for _, m := range r.Matches {
		if containsFold(m.MatcherName, term) {
			return true
		}
	}
	return false
}

// containsFold assumes term is already lowercased
func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), term)
}

// Entry is one row of the merged recent-requests view
type Entry struct {
	Kind          Kind
	ID            string
	RequesterName string
	Summary       string
	Status        model.RequestStatus
	CreatedAt     time.Time
}

// Recent merges both collections and returns the n most recently created
// entries, descending by creation time. The sort is stable, so entries with
// equal timestamps keep their encounter order (shift requests first).
func Recent(shiftReqs []model.ShiftSwapRequest, dayOffReqs []model.DayOffSwapRequest, n int) []Entry {
	merged := make([]Entry, 0, len(shiftReqs)+len(dayOffReqs))
	for _, r := range shiftReqs {
		merged = append(merged, Entry{
			Kind:          KindShift,
			ID:            r.ID,
			RequesterName: r.RequesterName,
			Summary:       r.Reason,
			Status:        r.Status,
			CreatedAt:     r.CreatedAt,
		})
	}
	for _, r := range dayOffReqs {
		merged = append(merged, Entry{
			Kind:          KindDayOff,
			ID:            r.ID,
			RequesterName: r.RequesterName,
			Summary:       r.OriginalDayOff + " -> " + r.RequestedDayOff,
			Status:        r.Status,
			CreatedAt:     r.CreatedAt,
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	if n >= 0 && n < len(merged) {
		merged = merged[:n]
	}
	return merged
}
