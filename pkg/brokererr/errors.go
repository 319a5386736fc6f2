package brokererr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes, grouped by origin. Callers distinguish failure kinds by code
// (e.g. exhaustion vs. closed pool) to apply their own retry policies; the
// broker deliberately ships none.
const (
	CodeCreationFailed     = "CONN_001"
	CodePoolExhausted      = "POOL_001"
	CodePoolClosed         = "POOL_002"
	CodeTransactionFailure = "TX_001"
)

// BrokerError is a structured error that also maps to the ops HTTP surface.
type BrokerError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to clients)
}

func (e *BrokerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *BrokerError) Unwrap() error {
	return e.Err
}

// New creates a new BrokerError.
func New(code string, message string, httpStatus int) *BrokerError {
	return &BrokerError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with a BrokerError.
func Wrap(code string, message string, httpStatus int, err error) *BrokerError {
	return &BrokerError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Connection creation (CONN) ----

// ErrCreationFailed reports a factory failure, whether from the backend
// rejecting the attempt or the connect timeout expiring.
func ErrCreationFailed(err error) *BrokerError {
	return Wrap(CodeCreationFailed, "Failed to create backend connection", http.StatusBadGateway, err)
}

// ---- Pool lifecycle (POOL) ----

// ErrPoolExhausted reports that the pool is at capacity with nothing
// immediately available. Acquire never waits for capacity to free up.
func ErrPoolExhausted(err error) *BrokerError {
	return Wrap(CodePoolExhausted, "Connection pool exhausted", http.StatusServiceUnavailable, err)
}

// ErrPoolClosed reports an operation attempted after shutdown.
func ErrPoolClosed() *BrokerError {
	return New(CodePoolClosed, "Connection pool is closed", http.StatusServiceUnavailable)
}

// ---- Transaction coordination (TX) ----

// ErrTransactionFailure reports a failed begin, commit or rollback,
// wrapping the underlying cause.
func ErrTransactionFailure(stage string, err error) *BrokerError {
	return Wrap(CodeTransactionFailure, fmt.Sprintf("Transaction %s failed", stage), http.StatusInternalServerError, err)
}

// ---- Kind predicates ----

func hasCode(err error, code string) bool {
	var be *BrokerError
	return errors.As(err, &be) && be.Code == code
}

// IsCreationFailed reports whether err is a connection creation failure.
func IsCreationFailed(err error) bool { return hasCode(err, CodeCreationFailed) }

// IsPoolExhausted reports whether err is a pool exhaustion failure.
func IsPoolExhausted(err error) bool { return hasCode(err, CodePoolExhausted) }

// IsPoolClosed reports whether err is a closed-pool rejection.
func IsPoolClosed(err error) bool { return hasCode(err, CodePoolClosed) }

// IsTransactionFailure reports whether err is a begin/commit/rollback failure.
func IsTransactionFailure(err error) bool { return hasCode(err, CodeTransactionFailure) }
