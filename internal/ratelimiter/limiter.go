// Package ratelimiter provides fixed-window admission control for the public
// contact endpoint, keyed by client identifier. Counters are per process:
// a restart resets all windows, and with N instances the effective global
// limit is N times the configured limit. Both stores share one contract so
// the Redis-backed store can take over without touching the handler.
package ratelimiter

import (
	"context"
	"time"
)

// Defaults for the contact endpoint.
const (
	DefaultLimit  = 5
	DefaultWindow = 15 * time.Minute
)

// Decision is the outcome of an admission check.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter admits or rejects one request for a client identifier. A non-nil
// error means the store itself failed, not that the request was rejected;
// callers decide whether to fail open.
type Limiter interface {
	Admit(ctx context.Context, clientID string) (Decision, error)
}
