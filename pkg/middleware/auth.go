package middleware

import (
	"fitness-center/internal/dto"
	apperrors "fitness-center/pkg/errors"
	"fitness-center/pkg/service"
	"fitness-center/pkg/session"
	"fitness-center/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequireSession is the only way to obtain a trusted session. A stale or
// forged cookie is removed before ErrUnauthorized is returned.
func RequireSession(jwtSvc service.JWTService, cookies session.CookieStore, cookieName string, allowedRoles ...dto.Role) (*dto.SessionPayload, error) {
	token, ok := cookies.Get(cookieName)
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}

	payload, err := jwtSvc.Verify(token)
	if err != nil {
		cookies.Delete(cookieName)
		return nil, apperrors.ErrUnauthorized
	}

	if !payload.HasRole(allowedRoles...) {
		return nil, apperrors.ErrForbidden
	}

	return payload, nil
}

type AuthMiddleware struct {
	jwtService   service.JWTService
	cookieName   string
	cookieSecure bool
	logger       *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, cookieName string, cookieSecure bool, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:   jwtSvc,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}

// Require gates a route on a valid session cookie and, when roles are
// given, on the session role being one of them.
func (m *AuthMiddleware) Require(roles ...dto.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookies := session.NewEchoCookieStore(c, m.cookieSecure)
			payload, err := RequireSession(m.jwtService, cookies, m.cookieName, roles...)
			if err != nil {
				m.logger.Warn("AuthMiddleware: request rejected",
					zap.String("uri", c.Request().RequestURI),
					zap.Error(err),
				)
				return utils.ErrorResponse(c, err, m.logger)
			}

			c.SetRequest(c.Request().WithContext(utils.WithSession(c.Request().Context(), payload)))

			m.logger.Debug("AuthMiddleware: session verified",
				zap.String("sub", payload.Subject),
				zap.String("role", string(payload.Role)),
				zap.String("branch", utils.SafeDeref(payload.BranchID)),
			)
			return next(c)
		}
	}
}
