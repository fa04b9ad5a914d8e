package entities

import "time"

const RateLimitSettingsID = "rate_limit"

type RateLimitSettings struct {
	ID            string    `bson:"_id"`
	Enabled       bool      `bson:"enabled"`
	WindowSeconds int       `bson:"windowSeconds"`
	MaxRequests   int       `bson:"maxRequests"`
	UpdatedBy     string    `bson:"updatedBy,omitempty"`
	UpdatedAt     time.Time `bson:"updatedAt"`
}
