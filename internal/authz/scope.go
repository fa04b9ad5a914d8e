package authz

import (
	"strings"

	"fitness-center/internal/dto"
	apperrors "fitness-center/pkg/errors"
	"fitness-center/pkg/utils"

	"github.com/labstack/echo/v4"
)

const (
	BranchQueryParam = "branchId"
	BranchHeader     = "X-Branch-ID"
)

// ResolveBranchScope returns the branch the session may operate on.
//
// A super_admin gets requested back unchanged, nil meaning every branch.
// Every other role is pinned to the branch bound in its session: a missing
// binding is ErrBranchNotAssigned, a different requested branch is
// ErrBranchMismatch. An empty requested value counts as not supplied.
func ResolveBranchScope(session *dto.SessionPayload, requested *string) (*string, error) {
	if session == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if requested != nil && *requested == "" {
		requested = nil
	}

	if session.IsSuperAdmin() {
		return requested, nil
	}

	if session.BranchID == nil || *session.BranchID == "" {
		return nil, apperrors.ErrBranchNotAssigned
	}
	if requested != nil && *requested != *session.BranchID {
		return nil, apperrors.ErrBranchMismatch
	}

	bound := *session.BranchID
	return &bound, nil
}

// BranchScope resolves the branch requested by query parameter or header
// against the session placed in the context by the auth middleware.
func BranchScope(c echo.Context) (*string, error) {
	session, err := utils.GetSessionFromContext(c.Request().Context())
	if err != nil {
		return nil, err
	}

	requested := strings.TrimSpace(c.QueryParam(BranchQueryParam))
	if requested == "" {
		requested = strings.TrimSpace(c.Request().Header.Get(BranchHeader))
	}

	return ResolveBranchScope(session, utils.NonEmptyPtr(requested))
}
