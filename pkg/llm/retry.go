package llm

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// RetryProvider decorates a Provider with bounded retries for transient
// failures. Timeouts and backend-unavailable errors are retried with
// exponential backoff; everything else fails on the first attempt.
type RetryProvider struct {
	inner    Provider
	maxTries uint
	initial  time.Duration
}

var _ Provider = &RetryProvider{}

func NewRetryProvider(inner Provider, maxTries uint) *RetryProvider {
	if maxTries == 0 {
		maxTries = 3
	}
	return &RetryProvider{
		inner:    inner,
		maxTries: maxTries,
		initial:  200 * time.Millisecond,
	}
}

func (r *RetryProvider) Chat(ctx context.Context, history []Message, options ...Option) (string, error) {
	return r.retry(ctx, func() (string, error) {
		return r.inner.Chat(ctx, history, options...)
	})
}

func (r *RetryProvider) Generate(ctx context.Context, prompt string, options ...Option) (string, error) {
	return r.retry(ctx, func() (string, error) {
		return r.inner.Generate(ctx, prompt, options...)
	})
}

func (r *RetryProvider) retry(ctx context.Context, call func() (string, error)) (string, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initial

	return backoff.Retry(ctx, func() (string, error) {
		out, err := call()
		if err != nil && !IsTransient(err) {
			return "", backoff.Permanent(err)
		}
		return out, err
	}, backoff.WithBackOff(bo), backoff.WithMaxTries(r.maxTries))
}
