package handler

import "time"

// CacheTTLConfig holds cache TTL configuration for different data types
type CacheTTLConfig struct {
	Listing time.Duration
	Search  time.Duration
	Detail  time.Duration
	Latest  time.Duration
}

// DefaultCacheTTL returns default cache TTL configuration
func DefaultCacheTTL() *CacheTTLConfig {
	return &CacheTTLConfig{
		Listing: 30 * time.Minute,
		Search:  30 * time.Minute,
		Detail:  24 * time.Hour,
		Latest:  10 * time.Minute,
	}
}
