// Файл: pkg/utils/context_utils.go

package utils

import (
	"context"

	"fitness-center/internal/dto"
	"fitness-center/pkg/contextkeys"
	apperrors "fitness-center/pkg/errors"
)

// WithSession is called by the session middleware only.
func WithSession(ctx context.Context, session *dto.SessionPayload) context.Context {
	return context.WithValue(ctx, contextkeys.SessionKey, session)
}

// GetSessionFromContext returns the session verified by the auth middleware.
func GetSessionFromContext(ctx context.Context) (*dto.SessionPayload, error) {
	session, ok := ctx.Value(contextkeys.SessionKey).(*dto.SessionPayload)
	if !ok || session == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return session, nil
}

func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextkeys.RequestIDKey).(string)
	return id
}
