package entities_test

import (
	"testing"

	"github.com/erikm/ecommerce-orders/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    entities.Status
		wantErr error
	}{
		{name: "exact match", input: "CONFIRMED", want: entities.StatusConfirmed},
		{name: "lower case", input: "delivered", want: entities.StatusDelivered},
		{name: "mixed case", input: "Cancelled", want: entities.StatusCancelled},
		{name: "surrounding spaces", input: "  pending ", want: entities.StatusPending},
		{name: "unknown", input: "bogus", wantErr: entities.ErrUnknownStatus},
		{name: "empty", input: "", wantErr: entities.ErrUnknownStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := entities.ParseStatus(tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, entities.StatusConfirmed, entities.InitialStatus(true))
	assert.Equal(t, entities.StatusPending, entities.InitialStatus(false))
}

func TestStatus_EditTo(t *testing.T) {
	testCases := []struct {
		name    string
		current entities.Status
		request string
		want    entities.Status
		wantErr error
	}{
		{name: "pending to confirmed", current: entities.StatusPending, request: "confirmed", want: entities.StatusConfirmed},
		{name: "confirmed to delivered", current: entities.StatusConfirmed, request: "DELIVERED", want: entities.StatusDelivered},
		// админские переходы нарочно не ограничены, пока исходный статус не терминальный
		{name: "confirmed back to created", current: entities.StatusConfirmed, request: "created", want: entities.StatusCreated},
		{name: "pending straight to cancelled", current: entities.StatusPending, request: "cancelled", want: entities.StatusCancelled},
		{name: "delivered is terminal", current: entities.StatusDelivered, request: "pending", wantErr: entities.ErrInvalidTransition},
		{name: "cancelled is terminal", current: entities.StatusCancelled, request: "confirmed", wantErr: entities.ErrInvalidTransition},
		{name: "unknown target", current: entities.StatusPending, request: "bogus", wantErr: entities.ErrUnknownStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.current.EditTo(tc.request)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStatus_CanCancel(t *testing.T) {
	assert.True(t, entities.StatusCreated.CanCancel())
	assert.True(t, entities.StatusPending.CanCancel())
	assert.True(t, entities.StatusConfirmed.CanCancel())
	assert.False(t, entities.StatusDelivered.CanCancel())
	assert.False(t, entities.StatusCancelled.CanCancel())
}

func TestStatus_RestocksOnCancel(t *testing.T) {
	// PENDING склад не списывал, возвращать нечего
	assert.True(t, entities.StatusCreated.RestocksOnCancel())
	assert.True(t, entities.StatusConfirmed.RestocksOnCancel())
	assert.False(t, entities.StatusPending.RestocksOnCancel())
}

func TestStatus_Terminal(t *testing.T) {
	assert.True(t, entities.StatusDelivered.Terminal())
	assert.True(t, entities.StatusCancelled.Terminal())
	assert.False(t, entities.StatusCreated.Terminal())
	assert.False(t, entities.StatusPending.Terminal())
	assert.False(t, entities.StatusConfirmed.Terminal())
}
