package services

import (
	"context"
	"sync"

	"fitness-center/internal/entities"
	apperrors "fitness-center/pkg/errors"
)

type memoryAccountRepo struct {
	accounts []*entities.Account
}

func (r *memoryAccountRepo) find(match func(*entities.Account) bool) (*entities.Account, error) {
	for _, a := range r.accounts {
		if match(a) {
			copied := *a
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memoryAccountRepo) FindByEmail(_ context.Context, email string) (*entities.Account, error) {
	return r.find(func(a *entities.Account) bool { return a.Email == email })
}

func (r *memoryAccountRepo) FindByPhone(_ context.Context, phone string) (*entities.Account, error) {
	return r.find(func(a *entities.Account) bool { return a.Phone == phone })
}

func (r *memoryAccountRepo) Create(_ context.Context, account *entities.Account) error {
	r.accounts = append(r.accounts, account)
	return nil
}

func (r *memoryAccountRepo) EnsureIndexes(context.Context) error { return nil }

type memorySettingsRepo struct {
	mu       sync.Mutex
	settings *entities.RateLimitSettings
	err      error
}

func (r *memorySettingsRepo) GetRateLimit(context.Context) (*entities.RateLimitSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if r.settings == nil {
		return nil, apperrors.ErrNotFound
	}
	copied := *r.settings
	return &copied, nil
}

func (r *memorySettingsRepo) SaveRateLimit(_ context.Context, settings *entities.RateLimitSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *settings
	r.settings = &copied
	return nil
}

type recordingNotifier struct {
	sent map[string]string
}

func (n *recordingNotifier) SendLoginCode(to, code string) error {
	n.sent[to] = code
	return nil
}
