package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyProvider struct {
	failures int
	err      error
	calls    int
}

func (p *flakyProvider) Generate(ctx context.Context, prompt string, options ...Option) (string, error) {
	p.calls++
	if p.calls <= p.failures {
		return "", p.err
	}
	return "answer", nil
}

func (p *flakyProvider) Chat(ctx context.Context, history []Message, options ...Option) (string, error) {
	return p.Generate(ctx, "")
}

func TestRetryProviderRecoversFromTransientFailure(t *testing.T) {
	inner := &flakyProvider{failures: 2, err: ErrUnavailable}
	r := NewRetryProvider(inner, 3)
	r.initial = time.Millisecond

	out, err := r.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "answer", out)
	assert.Equal(t, 3, inner.calls)
}

func TestRetryProviderGivesUpAfterMaxTries(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: ErrTimeout}
	r := NewRetryProvider(inner, 3)
	r.initial = time.Millisecond

	_, err := r.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, 3, inner.calls)
}

func TestRetryProviderDoesNotRetryPermanentErrors(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: errors.New("malformed request")}
	r := NewRetryProvider(inner, 3)
	r.initial = time.Millisecond

	_, err := r.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, 1, inner.calls)
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(ErrUnavailable))
	assert.True(t, IsTransient(ErrTimeout))
	assert.True(t, IsTransient(errors.Join(errors.New("wrapped"), ErrTimeout)))
	assert.False(t, IsTransient(errors.New("bad prompt")))
	assert.False(t, IsTransient(nil))
}
