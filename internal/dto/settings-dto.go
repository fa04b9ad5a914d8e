package dto

type RateLimitSettingsDTO struct {
	Enabled       *bool `json:"enabled" validate:"required"`
	WindowSeconds int   `json:"windowSeconds" validate:"required,min=1,max=86400"`
	MaxRequests   int   `json:"maxRequests" validate:"required,min=1,max=100000"`
}
