// Package retry runs an operation until it succeeds or an exponential backoff
// budget is exhausted.
//
// Every failure is retried; callers are expected to reject invalid input
// before handing an operation to Do. The delay before retry n (starting from
// zero) is min(Base*2^n, Cap), without jitter.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// DefaultRetries is the number of retries after the first attempt.
	DefaultRetries = 3
	// DefaultBase is the delay before the first retry.
	DefaultBase = time.Second
	// DefaultCap bounds every delay.
	DefaultCap = 10 * time.Second
)

// Options tune a retry loop. Zero values fall back to the package defaults,
// except Retries which is only defaulted when negative.
type Options struct {
	// Retries is the retry budget. Zero means a single attempt.
	Retries int
	// Base is the delay before the first retry.
	Base time.Duration
	// Cap is the maximum delay between two attempts.
	Cap time.Duration
	// Timer replaces the wall clock timer used between attempts. Tests inject
	// a timer that fires immediately.
	Timer backoff.Timer
	// OnRetry is called before waiting for the next attempt.
	OnRetry func(err error, wait time.Duration)
}

// Default returns the options used by the registrar client by default.
func Default() Options {
	return Options{Retries: DefaultRetries, Base: DefaultBase, Cap: DefaultCap}
}

func (o Options) backOff(ctx context.Context) backoff.BackOffContext {
	if o.Retries < 0 {
		o.Retries = DefaultRetries
	}
	if o.Base <= 0 {
		o.Base = DefaultBase
	}
	if o.Cap <= 0 {
		o.Cap = DefaultCap
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = o.Base
	exp.Multiplier = 2
	exp.RandomizationFactor = 0
	exp.MaxInterval = o.Cap
	// the retry budget is the only stop condition
	exp.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(o.Retries)), ctx) //nolint: gosec
}

// Do executes op, retrying failures according to opts. It returns the first
// successful value, the last error once the budget is exhausted, or ctx.Err()
// when ctx is cancelled while waiting.
func Do[T any](ctx context.Context, opts Options, op func(ctx context.Context) (T, error)) (T, error) {
	var out T
	operation := func() error {
		res, err := op(ctx)
		if err != nil {
			return err
		}
		out = res

		return nil
	}

	if err := backoff.RetryNotifyWithTimer(operation, opts.backOff(ctx), opts.OnRetry, opts.Timer); err != nil {
		var zero T

		return zero, err //nolint: wrapcheck
	}

	return out, nil
}

// delays returns the waits a loop configured with opts would perform when
// every attempt fails.
func delays(opts Options) []time.Duration {
	b := opts.backOff(context.Background())
	b.Reset()

	var out []time.Duration
	for {
		d := b.NextBackOff()
		if d == backoff.Stop {
			return out
		}
		out = append(out, d)
	}
}
