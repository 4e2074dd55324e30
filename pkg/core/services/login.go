package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/swapdesk/swapdesk/pkg/core/model"
)

// ValidateCredentials checks a candidate token against the API before it is
// persisted, by performing the role's cheapest authenticated fetch. A stored
// token alone is not proof of a live session; login is the explicit
// validation point.
func ValidateCredentials(ctx context.Context, api BoardFetcher, logger *zap.Logger, role model.Role) error {
	logger.Debug("Validating credentials", zap.String("role", string(role)))

	var err error
	switch role {
	case model.RoleCompany:
		_, err = api.CompanyAllRequests(ctx)
	case model.RoleEmployee:
		_, err = api.ListShiftSwaps(ctx)
	case model.RoleSupervisor, model.RoleModerator:
		_, err = api.ListShiftSwaps(ctx)
	default:
		return preconditionError("unknown role: " + string(role))
	}
	return err
}
