package apiclient

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/failsafe-go/failsafe-go/circuitbreaker"

	"github.com/changesci/changes-web/pkg/models"
)

// newBreaker returns the circuit breaker guarding upstream calls, or nil
// when threshold is 0
func newBreaker(threshold int, delay time.Duration) circuitbreaker.CircuitBreaker[any] {
	if threshold <= 0 {
		return nil
	}
	return circuitbreaker.Builder[any]().
		HandleIf(func(_ any, err error) bool {
			return isUpstreamFailure(err)
		}).
		WithFailureThreshold(uint(threshold)).
		WithDelay(delay).
		Build()
}

// isUpstreamFailure reports whether err means the API itself is failing.
// Client errors and cancelled requests do not count.
func isUpstreamFailure(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	var upstreamErr *models.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}
