package ratelimit

// UnknownClient is the shared bucket for requests without any address.
const UnknownClient = "unknown"

// ClientKey turns the address reported by echo's RealIP into a bucket key.
func ClientKey(realIP string) string {
	if realIP == "" {
		return UnknownClient
	}
	return realIP
}
