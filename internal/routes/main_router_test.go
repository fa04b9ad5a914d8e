// Файл: internal/routes/main_router_test.go
package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitness-center/internal/entities"
	"fitness-center/internal/repositories"
	"fitness-center/internal/services"
	"fitness-center/pkg/config"
	"fitness-center/pkg/customvalidator"
	apperrors "fitness-center/pkg/errors"
	"fitness-center/pkg/service"
	"fitness-center/pkg/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type memoryAccounts struct{ byEmail map[string]*entities.Account }

func (m *memoryAccounts) FindByEmail(_ context.Context, email string) (*entities.Account, error) {
	if a, ok := m.byEmail[email]; ok {
		return a, nil
	}
	return nil, apperrors.ErrNotFound
}

func (m *memoryAccounts) FindByPhone(context.Context, string) (*entities.Account, error) {
	return nil, apperrors.ErrNotFound
}

func (m *memoryAccounts) Create(_ context.Context, a *entities.Account) error {
	m.byEmail[a.Email] = a
	return nil
}

func (m *memoryAccounts) EnsureIndexes(context.Context) error { return nil }

type memorySettings struct{ stored *entities.RateLimitSettings }

func (m *memorySettings) GetRateLimit(context.Context) (*entities.RateLimitSettings, error) {
	if m.stored == nil {
		return nil, apperrors.ErrNotFound
	}
	copied := *m.stored
	return &copied, nil
}

func (m *memorySettings) SaveRateLimit(_ context.Context, s *entities.RateLimitSettings) error {
	copied := *s
	m.stored = &copied
	return nil
}

type SessionFlowSuite struct {
	suite.Suite
	Echo     *echo.Echo
	Redis    *miniredis.Miniredis
	Settings *memorySettings
	Cfg      *config.Config
}

func (s *SessionFlowSuite) SetupTest() {
	nop := zap.NewNop()
	s.Cfg = &config.Config{
		Session: config.SessionConfig{
			SecretKey:   "0123456789abcdef0123456789abcdef",
			CookieName:  "session",
			PasswordTTL: 24 * time.Hour,
			CodeTTL:     7 * 24 * time.Hour,
		},
		RateLimit: config.RateLimitConfig{Enabled: true, Window: time.Minute, MaxRequests: 100},
		Auth:      config.AuthConfig{CodeTTL: 5 * time.Minute, CodeLength: 6, MaxCodeAttempts: 5},
	}

	hash, err := utils.HashPassword("secret-pass")
	s.Require().NoError(err)
	accounts := &memoryAccounts{byEmail: map[string]*entities.Account{
		"root@example.com": {ID: "USR_0", Role: "super_admin", Name: "Root", Email: "root@example.com", PasswordHash: hash, IsActive: true},
		"ada@example.com": {ID: "USR_1", Role: "branch_admin", Name: "Ada", Email: "ada@example.com",
			BranchID: utils.ToPtr("BRN_1"), PasswordHash: hash, IsActive: true},
		"mo@example.com": {ID: "USR_2", Role: "member", Name: "Mo", Email: "mo@example.com",
			BranchID: utils.ToPtr("BRN_1"), PasswordHash: hash, IsActive: true},
	}}

	s.Redis = miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: s.Redis.Addr()})
	s.T().Cleanup(func() { _ = client.Close() })

	s.Settings = &memorySettings{}
	svcs := Services{
		Auth: services.NewAuthService(accounts, repositories.NewRedisCacheRepository(client),
			services.NewMockNotificationService(nop), nop, &s.Cfg.Auth),
		Accounts: services.NewAccountService(accounts, nop),
		Settings: services.NewSettingsService(s.Settings, s.Cfg.RateLimit, nop),
	}

	e := echo.New()
	v := validator.New()
	s.Require().NoError(customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)

	RegisterRoutes(e, svcs, service.NewJWTService(s.Cfg.Session.SecretKey, nop), &Loggers{Main: nop, Auth: nop}, s.Cfg)
	s.Echo = e
}

func (s *SessionFlowSuite) do(method, target string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func (s *SessionFlowSuite) login(email string) *http.Cookie {
	rec := s.do(http.MethodPost, "/api/auth/login", map[string]string{"login": email, "password": "secret-pass"}, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	for _, c := range rec.Result().Cookies() {
		if c.Name == s.Cfg.Session.CookieName {
			return c
		}
	}
	s.FailNow("session cookie not set")
	return nil
}

func (s *SessionFlowSuite) TestLoginSetsSessionCookie() {
	cookie := s.login("ada@example.com")
	assert.True(s.T(), cookie.HttpOnly)
	assert.Equal(s.T(), http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(s.T(), int((24 * time.Hour).Seconds()), cookie.MaxAge)

	rec := s.do(http.MethodGet, "/api/auth/me", nil, cookie)
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp struct {
		Body struct {
			ID       string  `json:"id"`
			Role     string  `json:"role"`
			BranchID *string `json:"branchId"`
		} `json:"body"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(s.T(), "USR_1", resp.Body.ID)
	assert.Equal(s.T(), "branch_admin", resp.Body.Role)
	assert.Equal(s.T(), "BRN_1", *resp.Body.BranchID)
}

func (s *SessionFlowSuite) TestWrongPassword() {
	rec := s.do(http.MethodPost, "/api/auth/login", map[string]string{"login": "ada@example.com", "password": "wrong-pass"}, nil)
	assert.Equal(s.T(), http.StatusUnauthorized, rec.Code)
	assert.Empty(s.T(), rec.Result().Cookies())
}

func (s *SessionFlowSuite) TestValidationError() {
	rec := s.do(http.MethodPost, "/api/auth/login", map[string]string{"login": "ada@example.com"}, nil)
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
}

func (s *SessionFlowSuite) TestMeWithoutCookie() {
	rec := s.do(http.MethodGet, "/api/auth/me", nil, nil)
	assert.Equal(s.T(), http.StatusUnauthorized, rec.Code)
}

func (s *SessionFlowSuite) TestForgedCookieIsCleared() {
	rec := s.do(http.MethodGet, "/api/auth/me", nil, &http.Cookie{Name: "session", Value: "a.b.c"})
	assert.Equal(s.T(), http.StatusUnauthorized, rec.Code)
	s.Require().Len(rec.Result().Cookies(), 1)
	assert.Less(s.T(), rec.Result().Cookies()[0].MaxAge, 0)
}

func (s *SessionFlowSuite) TestBranchScope() {
	admin := s.login("ada@example.com")

	rec := s.do(http.MethodGet, "/api/auth/scope?branchId=BRN_2", nil, admin)
	assert.Equal(s.T(), http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodGet, "/api/auth/scope", nil, admin)
	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Contains(s.T(), rec.Body.String(), `"branchId":"BRN_1"`)

	root := s.login("root@example.com")
	rec = s.do(http.MethodGet, "/api/auth/scope?branchId=BRN_9", nil, root)
	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Contains(s.T(), rec.Body.String(), `"branchId":"BRN_9"`)

	rec = s.do(http.MethodGet, "/api/auth/scope", nil, root)
	assert.Contains(s.T(), rec.Body.String(), `"global":true`)
}

func (s *SessionFlowSuite) TestSettingsAreSuperAdminOnly() {
	member := s.login("mo@example.com")
	rec := s.do(http.MethodGet, "/api/settings/rate-limit", nil, member)
	assert.Equal(s.T(), http.StatusForbidden, rec.Code)

	root := s.login("root@example.com")
	rec = s.do(http.MethodPut, "/api/settings/rate-limit",
		map[string]interface{}{"enabled": true, "windowSeconds": 60, "maxRequests": 3}, root)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(s.T(), "USR_0", s.Settings.stored.UpdatedBy)

	rec = s.do(http.MethodGet, "/api/settings/rate-limit", nil, root)
	assert.Contains(s.T(), rec.Body.String(), `"maxRequests":3`)
}

func (s *SessionFlowSuite) TestSettingsUpdateRequiresEnabledFlag() {
	root := s.login("root@example.com")
	rec := s.do(http.MethodPut, "/api/settings/rate-limit",
		map[string]interface{}{"windowSeconds": 60, "maxRequests": 3}, root)
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	assert.Nil(s.T(), s.Settings.stored)
}

func (s *SessionFlowSuite) TestSettingsShowDefaultsForInvalidStoredValues() {
	s.Settings.stored = &entities.RateLimitSettings{Enabled: true, WindowSeconds: 0, MaxRequests: 0}

	rec := s.do(http.MethodGet, "/api/settings/rate-limit", nil, s.login("root@example.com"))
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(s.T(), rec.Body.String(), `"windowSeconds":60`)
	assert.Contains(s.T(), rec.Body.String(), `"maxRequests":100`)
}

func (s *SessionFlowSuite) TestStaffCreateAccounts() {
	newMember := func(email string, extra map[string]interface{}) map[string]interface{} {
		body := map[string]interface{}{"name": "New Member", "email": email, "password": "member-pass", "role": "member"}
		for k, v := range extra {
			body[k] = v
		}
		return body
	}

	rec := s.do(http.MethodPost, "/api/accounts", newMember("x@example.com", nil), s.login("mo@example.com"))
	assert.Equal(s.T(), http.StatusForbidden, rec.Code)

	admin := s.login("ada@example.com")
	rec = s.do(http.MethodPost, "/api/accounts", newMember("x@example.com", map[string]interface{}{"branchId": "BRN_2"}), admin)
	assert.Equal(s.T(), http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/api/accounts", newMember("x@example.com", map[string]interface{}{"role": "owner"}), admin)
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/accounts", newMember("new@example.com", nil), admin)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(s.T(), rec.Body.String(), `"branchId":"BRN_1"`)

	rec = s.do(http.MethodPost, "/api/auth/login", map[string]string{"login": "new@example.com", "password": "member-pass"}, nil)
	assert.Equal(s.T(), http.StatusOK, rec.Code)
}

func (s *SessionFlowSuite) TestLoginIsThrottledWithLiveSettings() {
	s.Settings.stored = &entities.RateLimitSettings{Enabled: true, WindowSeconds: 60, MaxRequests: 3}

	body := map[string]string{"login": "ada@example.com", "password": "wrong-pass"}
	for i := 0; i < 3; i++ {
		rec := s.do(http.MethodPost, "/api/auth/login", body, nil)
		assert.Equal(s.T(), http.StatusUnauthorized, rec.Code)
	}

	rec := s.do(http.MethodPost, "/api/auth/login", body, nil)
	assert.Equal(s.T(), http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(s.T(), rec.Header().Get("Retry-After"))

	s.Settings.stored.Enabled = false
	rec = s.do(http.MethodPost, "/api/auth/login", body, nil)
	assert.Equal(s.T(), http.StatusUnauthorized, rec.Code)
}

func (s *SessionFlowSuite) TestCodeLoginIssuesWeekLongSession() {
	rec := s.do(http.MethodPost, "/api/auth/send_code", map[string]string{"email": "mo@example.com"}, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	code, err := s.Redis.Get("login_code:mo@example.com")
	s.Require().NoError(err)

	rec = s.do(http.MethodPost, "/api/auth/verify_code", map[string]string{"email": "mo@example.com", "code": code}, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	cookies := rec.Result().Cookies()
	s.Require().Len(cookies, 1)
	assert.Equal(s.T(), int((7 * 24 * time.Hour).Seconds()), cookies[0].MaxAge)
}

func (s *SessionFlowSuite) TestLogoutDeletesCookie() {
	rec := s.do(http.MethodPost, "/api/auth/logout", nil, s.login("mo@example.com"))
	assert.Equal(s.T(), http.StatusOK, rec.Code)
	s.Require().Len(rec.Result().Cookies(), 1)
	assert.Less(s.T(), rec.Result().Cookies()[0].MaxAge, 0)
}

func TestSessionFlowSuite(t *testing.T) {
	suite.Run(t, new(SessionFlowSuite))
}

func TestRegisterRoutesReturnsLimiter(t *testing.T) {
	cfg := &config.Config{RateLimit: config.RateLimitConfig{Enabled: true, Window: time.Minute, MaxRequests: 1}}
	nop := zap.NewNop()
	limiter := RegisterRoutes(echo.New(), Services{Settings: services.NewSettingsService(&memorySettings{}, cfg.RateLimit, nop)},
		service.NewJWTService("0123456789abcdef0123456789abcdef", nop), &Loggers{Main: nop, Auth: nop}, cfg)
	require.NotNil(t, limiter)

	_, err := limiter.Check(context.Background(), "login", "ip")
	require.NoError(t, err)
	_, err = limiter.Check(context.Background(), "login", "ip")
	assert.ErrorIs(t, err, apperrors.ErrRateLimited)
}
