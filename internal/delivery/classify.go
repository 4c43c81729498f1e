package delivery

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/docflowhq/docflow/constants"
)

// RetrySchedule is the fixed escalating delay between delivery retries.
// Predictable beats jittered here: receivers and operators can reason about
// exactly when the next attempt lands.
var RetrySchedule = []time.Duration{10 * time.Second, 30 * time.Second, 90 * time.Second}

// MaxAttempts is the initial try plus one retry per schedule slot.
var MaxAttempts = len(RetrySchedule) + 1

// Delay returns the wait before the retry following attempt n (0-based).
func Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if attempt >= len(RetrySchedule) {
		return RetrySchedule[len(RetrySchedule)-1]
	}
	return RetrySchedule[attempt]
}

// Classify maps an HTTP response or transport error to a delivery outcome.
func Classify(status int, err error) constants.Outcome {
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return constants.OutcomeTimeout
		}
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return constants.OutcomeTimeout
		}
		return constants.OutcomeNetworkError
	}
	switch {
	case status >= 200 && status < 300:
		return constants.OutcomeSuccess
	case status == http.StatusTooManyRequests:
		return constants.OutcomeRateLimited
	case status >= 400 && status < 500:
		return constants.OutcomeClientError
	default:
		return constants.OutcomeServerError
	}
}

// Retryable reports whether an outcome gets another attempt. Success never
// retries; a non-429 4xx is terminal and dead-letters immediately.
func Retryable(o constants.Outcome) bool {
	switch o {
	case constants.OutcomeRateLimited, constants.OutcomeServerError,
		constants.OutcomeTimeout, constants.OutcomeNetworkError:
		return true
	default:
		return false
	}
}
