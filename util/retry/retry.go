// Package retry wraps idempotent node reads with bounded exponential backoff.
// Only errors that look transient (rate limiting, timeouts, gateway hiccups)
// are retried; anything else is returned immediately. On exhaustion the
// returned error carries every attempt's message with its attempt index.
package retry

import (
	"context"
	"strings"
	"time"

	retrygo "github.com/avast/retry-go/v4"
)

const (
	DefaultMaxRetries uint          = 5
	DefaultBaseDelay  time.Duration = 500 * time.Millisecond
)

// transientMarkers are matched case-insensitively against the rendered error
// chain. The list mirrors what public RPC endpoints actually return when they
// are throttling or falling over.
var transientMarkers = []string{
	"rate",
	"limit",
	"429",
	"too many",
	"timeout",
	"timed out",
	"connection",
	"temporarily",
	"unavailable",
	"502",
	"503",
	"504",
}

// IsTransient reports whether err is worth retrying.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// Executor runs operations with up to maxRetries+1 attempts and a delay of
// baseDelay * 2^attempt between retryable failures. It holds no mutable
// state and is safe to share.
type Executor struct {
	maxRetries uint
	baseDelay  time.Duration
}

func NewExecutor(maxRetries uint, baseDelay time.Duration) *Executor {
	if baseDelay <= 0 {
		baseDelay = DefaultBaseDelay
	}
	return &Executor{
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
	}
}

func DefaultExecutor() *Executor {
	return NewExecutor(DefaultMaxRetries, DefaultBaseDelay)
}

func (e *Executor) options(ctx context.Context) []retrygo.Option {
	return []retrygo.Option{
		retrygo.Attempts(e.maxRetries + 1),
		retrygo.Delay(e.baseDelay),
		retrygo.DelayType(retrygo.BackOffDelay),
		retrygo.RetryIf(IsTransient),
		// keep the whole attempt log, not just the last failure
		retrygo.LastErrorOnly(false),
		retrygo.Context(ctx),
	}
}

// Do runs op until it succeeds, fails non-transiently, or attempts run out.
// The op must be idempotent. The calling goroutine sleeps between attempts;
// ctx cancellation cuts the wait short.
func (e *Executor) Do(ctx context.Context, op func() error) error {
	return retrygo.Do(op, e.options(ctx)...)
}

// Try is Do for operations that produce a value.
func Try[T any](ctx context.Context, e *Executor, op func() (T, error)) (T, error) {
	return retrygo.DoWithData(op, e.options(ctx)...)
}
