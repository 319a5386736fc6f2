package brokererr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrokerError_Error(t *testing.T) {
	tests := []struct {
		name      string
		brokerErr *BrokerError
		expected  string
	}{
		{
			name:      "without wrapped error",
			brokerErr: New("POOL_002", "Connection pool is closed", http.StatusServiceUnavailable),
			expected:  "[POOL_002] Connection pool is closed",
		},
		{
			name:      "with wrapped error",
			brokerErr: Wrap("CONN_001", "Creation failed", http.StatusBadGateway, fmt.Errorf("connection refused")),
			expected:  "[CONN_001] Creation failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.brokerErr.Error())
		})
	}
}

func TestBrokerError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	brokerErr := Wrap("TX_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(brokerErr, inner))
}

func TestBrokerError_IsNilUnwrap(t *testing.T) {
	brokerErr := New("POOL_001", "test", http.StatusServiceUnavailable)
	assert.Nil(t, brokerErr.Unwrap())
}

func TestTaxonomy(t *testing.T) {
	inner := fmt.Errorf("backend rejected")

	tests := []struct {
		name       string
		err        *BrokerError
		code       string
		httpStatus int
	}{
		{"CreationFailed", ErrCreationFailed(inner), "CONN_001", 502},
		{"PoolExhausted", ErrPoolExhausted(nil), "POOL_001", 503},
		{"PoolClosed", ErrPoolClosed(), "POOL_002", 503},
		{"TransactionFailure", ErrTransactionFailure("commit", inner), "TX_001", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestTransactionFailure_Stage(t *testing.T) {
	err := ErrTransactionFailure("begin", fmt.Errorf("cannot begin"))
	assert.Contains(t, err.Message, "begin")
	assert.True(t, errors.Is(err, err.Err))
}

func TestKindPredicates(t *testing.T) {
	creation := ErrCreationFailed(fmt.Errorf("refused"))
	exhausted := ErrPoolExhausted(creation)
	closed := ErrPoolClosed()
	txFail := ErrTransactionFailure("rollback", fmt.Errorf("conn gone"))

	assert.True(t, IsCreationFailed(creation))
	assert.True(t, IsPoolExhausted(exhausted))
	assert.True(t, IsPoolClosed(closed))
	assert.True(t, IsTransactionFailure(txFail))

	// Predicates distinguish kinds so callers can retry differently.
	assert.False(t, IsPoolClosed(exhausted))
	assert.False(t, IsPoolExhausted(closed))
	assert.False(t, IsTransactionFailure(creation))

	// Wrapped chains still match the outermost kind.
	wrapped := fmt.Errorf("acquire: %w", exhausted)
	assert.True(t, IsPoolExhausted(wrapped))

	// Plain errors match nothing.
	assert.False(t, IsPoolExhausted(fmt.Errorf("plain")))
	assert.False(t, IsPoolExhausted(nil))
}
