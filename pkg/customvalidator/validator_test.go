package customvalidator

import (
	"testing"

	"fitness-center/internal/dto"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))
	return v
}

func TestPhoneRule(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(dto.SendCodeDTO{Phone: "+992900000001"}))
	assert.Error(t, v.Struct(dto.SendCodeDTO{Phone: "900000001"}))
	assert.Error(t, v.Struct(dto.SendCodeDTO{Phone: "+0123"}))
}

func TestSendCodeNeedsEmailOrPhone(t *testing.T) {
	v := newValidator(t)

	assert.Error(t, v.Struct(dto.SendCodeDTO{}))
	assert.NoError(t, v.Struct(dto.SendCodeDTO{Email: "a@example.com"}))
	assert.Error(t, v.Struct(dto.SendCodeDTO{Email: "not-an-email"}))
}

func TestSessionRoleRule(t *testing.T) {
	v := newValidator(t)
	account := func(role string) dto.CreateAccountDTO {
		return dto.CreateAccountDTO{Name: "Mo", Email: "mo@example.com", Password: "secret-pass", Role: dto.Role(role)}
	}

	for _, role := range []string{"super_admin", "branch_admin", "member"} {
		assert.NoError(t, v.Struct(account(role)), role)
	}
	assert.Error(t, v.Struct(account("owner")))
	assert.Error(t, v.Struct(account("")))
}

func TestRateLimitSettingsNeedEnabledFlag(t *testing.T) {
	v := newValidator(t)

	assert.Error(t, v.Struct(dto.RateLimitSettingsDTO{WindowSeconds: 60, MaxRequests: 5}))
	off := false
	assert.NoError(t, v.Struct(dto.RateLimitSettingsDTO{Enabled: &off, WindowSeconds: 60, MaxRequests: 5}))
}
