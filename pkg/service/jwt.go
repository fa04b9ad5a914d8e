package service

import (
	"errors"
	"time"

	"fitness-center/internal/dto"
	apperrors "fitness-center/pkg/errors"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const signingAlg = "HS256"

// SessionClaims is the wire form of dto.SessionPayload.
type SessionClaims struct {
	Role     dto.Role `json:"role"`
	Name     string   `json:"name,omitempty"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Avatar   string   `json:"avatar,omitempty"`
	BranchID *string  `json:"branchId,omitempty"`
	jwt.RegisteredClaims
}

type JWTService interface {
	Sign(payload dto.SessionPayload, ttl time.Duration) (string, error)
	Verify(tokenString string) (*dto.SessionPayload, error)
}

type jwtService struct {
	secretKey []byte
	now       func() time.Time
	parser    *jwt.Parser
	logger    *zap.Logger
}

type Option func(*jwtService)

// WithClock overrides the time source used for iat/exp.
func WithClock(now func() time.Time) Option {
	return func(s *jwtService) { s.now = now }
}

func NewJWTService(secretKey string, logger *zap.Logger, opts ...Option) JWTService {
	s := &jwtService{
		secretKey: []byte(secretKey),
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{signingAlg}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(s.now),
	)
	return s
}

func (s *jwtService) Sign(payload dto.SessionPayload, ttl time.Duration) (string, error) {
	if len(s.secretKey) == 0 {
		return "", errors.New("session secret is not configured")
	}
	if ttl < time.Second {
		return "", errors.New("session ttl must be at least one second")
	}
	if payload.Subject == "" || !payload.Role.Valid() {
		return "", errors.New("session payload requires subject and a known role")
	}

	issuedAt := s.now().Truncate(time.Second)
	claims := &SessionClaims{
		Role:     payload.Role,
		Name:     payload.Name,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Avatar:   payload.Avatar,
		BranchID: payload.BranchID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.Subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
}

// Verify returns the payload of a valid token. Every failure, whatever its
// cause, is reported as apperrors.ErrInvalidToken.
func (s *jwtService) Verify(tokenString string) (*dto.SessionPayload, error) {
	claims := &SessionClaims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		s.logger.Debug("session token rejected", zap.Error(err))
		return nil, apperrors.ErrInvalidToken
	}

	if claims.Subject == "" || !claims.Role.Valid() || claims.ExpiresAt == nil {
		s.logger.Debug("session token misses required claims")
		return nil, apperrors.ErrInvalidToken
	}
	// exp is whole seconds: a token is dead from the second it names.
	if claims.ExpiresAt.Unix() <= s.now().Unix() {
		return nil, apperrors.ErrInvalidToken
	}

	payload := &dto.SessionPayload{
		Subject:   claims.Subject,
		Role:      claims.Role,
		Name:      claims.Name,
		Email:     claims.Email,
		Phone:     claims.Phone,
		Avatar:    claims.Avatar,
		BranchID:  claims.BranchID,
		ExpiresAt: claims.ExpiresAt.Unix(),
	}
	if claims.IssuedAt != nil {
		payload.IssuedAt = claims.IssuedAt.Unix()
	}
	return payload, nil
}
