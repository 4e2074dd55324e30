package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/swapdesk/swapdesk/pkg/core/model"
)

func TestSummarize_CountsAcrossBothCollections(t *testing.T) {
	now := time.Now()
	shift := []model.ShiftSwapRequest{
		shiftReq("s1", "A", "r", model.StatusPending, now),
		shiftReq("s2", "B", "r", model.StatusApproved, now),
		shiftReq("s3", "C", "r", model.StatusOffersReceived, now),
	}
	dayOff := []model.DayOffSwapRequest{
		dayOffReq("d1", "D", model.StatusRejected, now),
		dayOffReq("d2", "E", model.StatusMatched, now),
		dayOffReq("d3", "F", model.StatusPending, now),
	}

	s := Summarize(shift, dayOff)

	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 2, s.Pending)
	assert.Equal(t, 1, s.Approved)
	assert.Equal(t, 1, s.Rejected)
	assert.Equal(t, 2, s.Other)
}

// Partition invariant: pending + approved + rejected + other always equals
// total, whatever the status mix.
func TestSummarize_PartitionInvariant(t *testing.T) {
	now := time.Now()
	statuses := []model.RequestStatus{
		model.StatusPending, model.StatusOffersReceived, model.StatusMatched,
		model.StatusApproved, model.StatusRejected, model.RequestStatus("weird"),
	}

	var shift []model.ShiftSwapRequest
	var dayOff []model.DayOffSwapRequest
	for i, status := range statuses {
		shift = append(shift, shiftReq(string(rune('a'+i)), "N", "r", status, now))
		dayOff = append(dayOff, dayOffReq(string(rune('A'+i)), "N", status, now))
	}

	s := Summarize(shift, dayOff)
	assert.Equal(t, s.Total, s.Pending+s.Approved+s.Rejected+s.Other)
	assert.Equal(t, len(shift)+len(dayOff), s.Total)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, nil)
	assert.Equal(t, Stats{}, s)
}
