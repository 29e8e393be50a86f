package httpx

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuitBreaker_Success(t *testing.T) {
	breaker := NewCircuitBreaker("success-test", 30*time.Second, 3)

	assert.NoError(t, breaker.Execute(func() error { return nil }))
	assert.Equal(t, "closed", breaker.State())
}

func TestCircuitBreaker_FailureWrapsName(t *testing.T) {
	breaker := NewCircuitBreaker("failure-test", 30*time.Second, 3)
	testError := errors.New("test error")

	err := breaker.Execute(func() error { return testError })

	require.Error(t, err)
	assert.ErrorIs(t, err, testError)
	assert.Contains(t, err.Error(), "failure-test")
}

func TestCircuitBreaker_PanicBecomesError(t *testing.T) {
	breaker := NewCircuitBreaker("panic-test", 30*time.Second, 3)

	err := breaker.Execute(func() error { panic("boom") })

	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic recovered: boom")
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	breaker := NewCircuitBreaker("open-test", 30*time.Second, 3)

	for i := 0; i < 3; i++ {
		assert.Error(t, breaker.Execute(func() error { return errors.New("failure") }))
	}

	called := false
	err := breaker.Execute(func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpenState)
	assert.False(t, called)
	assert.Equal(t, "open", breaker.State())
}

func TestCircuitBreaker_Recovers(t *testing.T) {
	breaker := NewCircuitBreaker("recovery-test", 50*time.Millisecond, 1)

	assert.Error(t, breaker.Execute(func() error { return errors.New("trigger failure") }))
	time.Sleep(100 * time.Millisecond)

	assert.NoError(t, breaker.Execute(func() error { return nil }))
	assert.Equal(t, "closed", breaker.State())
}

func TestCircuitBreaker_SuccessFilter(t *testing.T) {
	errClient := errors.New("bad request")
	var transitions []string
	breaker := NewCircuitBreaker("filter-test", 30*time.Second, 1,
		WithSuccessFilter(func(err error) bool { return err == nil || errors.Is(err, errClient) }),
		WithStateChange(func(_, from, to string) { transitions = append(transitions, from+"->"+to) }),
	)

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, breaker.Execute(func() error { return errClient }), errClient)
	}
	assert.Equal(t, "closed", breaker.State())
	assert.Empty(t, transitions)

	assert.Error(t, breaker.Execute(func() error { return errors.New("server error") }))
	assert.Equal(t, []string{"closed->open"}, transitions)
}
