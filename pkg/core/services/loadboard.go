package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/swapdesk/swapdesk/pkg/clients/swapapi"
	"github.com/swapdesk/swapdesk/pkg/core/board"
	"github.com/swapdesk/swapdesk/pkg/core/model"
)

// BoardFetcher defines the API operations needed to load a role's board
type BoardFetcher interface {
	ListShiftSwaps(ctx context.Context) ([]model.ShiftSwapRequest, error)
	ListDayOffSwaps(ctx context.Context) ([]model.DayOffSwapRequest, error)
	ListMyDayOffSwaps(ctx context.Context) ([]model.DayOffSwapRequest, error)
	CompanyAllRequests(ctx context.Context) (*swapapi.AllRequests, error)
}

// Board is an immutable snapshot of the two request collections after
// relevance filtering. All derived view state (filtered lists, stats, recent
// entries) is computed on demand from this snapshot; nothing mutates it
// except replacing it wholesale with a fresh LoadBoard result.
type Board struct {
	Viewer         board.Viewer
	Config         board.RoleConfig
	ShiftRequests  []model.ShiftSwapRequest
	DayOffRequests []model.DayOffSwapRequest
	FetchedAt      time.Time
}

// Filter applies a search/status/type query and returns the two filtered
// collections.
func (b *Board) Filter(q board.Query) ([]model.ShiftSwapRequest, []model.DayOffSwapRequest) {
	return board.Filter(b.Config, q, b.ShiftRequests, b.DayOffRequests)
}

// Stats summarizes status counts across both collections
func (b *Board) Stats() board.Stats {
	return board.Summarize(b.ShiftRequests, b.DayOffRequests)
}

// Recent returns the n most recently created requests across both kinds
func (b *Board) Recent(n int) []board.Entry {
	return board.Recent(b.ShiftRequests, b.DayOffRequests, n)
}

// LoadBoard fetches both request collections for the viewer's role and
// narrows them to the records the viewer is entitled to see.
//
// An ErrUnauthorized from either fetch propagates unchanged so the caller can
// clear the role's stored credentials; no partial data is returned in that
// case.
func LoadBoard(ctx context.Context, api BoardFetcher, logger *zap.Logger, viewer board.Viewer) (*Board, error) {
	logger.Debug("Loading board", zap.String("role", string(viewer.Role)), zap.String("user_id", viewer.UserID))

	var (
		shiftReqs  []model.ShiftSwapRequest
		dayOffReqs []model.DayOffSwapRequest
	)

	switch viewer.Role {
	case model.RoleCompany:
		all, err := api.CompanyAllRequests(ctx)
		if err != nil {
			return nil, err
		}
		shiftReqs = all.ShiftRequests
		dayOffReqs = all.DayOffRequests

	case model.RoleEmployee:
		var err error
		shiftReqs, err = api.ListShiftSwaps(ctx)
		if err != nil {
			return nil, err
		}
		dayOffReqs, err = api.ListMyDayOffSwaps(ctx)
		if err != nil {
			return nil, err
		}

	case model.RoleSupervisor, model.RoleModerator:
		var err error
		shiftReqs, err = api.ListShiftSwaps(ctx)
		if err != nil {
			return nil, err
		}
		dayOffReqs, err = api.ListDayOffSwaps(ctx)
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unsupported role: %s", viewer.Role)
	}

	logger.Debug("Fetched collections",
		zap.Int("shift_count", len(shiftReqs)),
		zap.Int("day_off_count", len(dayOffReqs)))

	cfg := board.ConfigFor(viewer.Role)
	keptShift, keptDayOff := board.ApplyRelevance(cfg, viewer, shiftReqs, dayOffReqs)

	logger.Debug("Applied relevance filter",
		zap.Int("shift_kept", len(keptShift)),
		zap.Int("day_off_kept", len(keptDayOff)))

	return &Board{
		Viewer:         viewer,
		Config:         cfg,
		ShiftRequests:  keptShift,
		DayOffRequests: keptDayOff,
		FetchedAt:      time.Now(),
	}, nil
}
