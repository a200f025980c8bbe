package order_test

import (
	"errors"
	"fmt"
	"testing"

	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Confirmed))
		assert.Equal(t, 3, int(order.Shipped))
		assert.Equal(t, 4, int(order.Delivered))
		assert.Equal(t, 5, int(order.Cancelled))
	})

	t.Run("should list statuses in lifecycle order", func(t *testing.T) {
		assert.Equal(t,
			[]order.Status{order.Pending, order.Confirmed, order.Shipped, order.Delivered, order.Cancelled},
			order.Statuses())
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.Statuses() {
		t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Confirmed", order.Confirmed.String())
	assert.Equal(t, "Shipped", order.Shipped.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(-1).String())
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse names case-insensitively", func(t *testing.T) {
		cases := map[string]order.Status{
			"pending":     order.Pending,
			"CONFIRMED":   order.Confirmed,
			"sHiPpEd":     order.Shipped,
			" Delivered ": order.Delivered,
			"Cancelled":   order.Cancelled,
		}

		for name, expected := range cases {
			status, err := order.ParseStatus(name)

			require.NoError(t, err, name)
			assert.Equal(t, expected, status, name)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "Lost", "1", "Pending!"} {
			status, err := order.ParseStatus(name)

			require.Error(t, err, name)
			assert.Equal(t, order.Unknown, status)
			assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
		}
	})
}

func TestCanTransition(t *testing.T) {
	expected := map[order.Status][]order.Status{
		order.Pending:   {order.Confirmed, order.Cancelled},
		order.Confirmed: {order.Shipped, order.Cancelled},
		order.Shipped:   {order.Delivered},
		order.Delivered: {},
		order.Cancelled: {},
	}

	t.Run("should match the transition table for every pair", func(t *testing.T) {
		for _, from := range order.Statuses() {
			for _, to := range order.Statuses() {
				want := false
				for _, allowed := range expected[from] {
					if allowed == to {
						want = true
					}
				}

				assert.Equal(t, want, order.CanTransition(from.String(), to.String()),
					"%s -> %s", from, to)
				assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
			}
		}
	})

	t.Run("should be case-insensitive", func(t *testing.T) {
		assert.True(t, order.CanTransition("pending", "CONFIRMED"))
		assert.True(t, order.CanTransition("SHIPPED", "delivered"))
		assert.False(t, order.CanTransition("delivered", "PENDING"))
	})

	t.Run("should return false for unknown names instead of failing", func(t *testing.T) {
		assert.False(t, order.CanTransition("Pending", "Lost"))
		assert.False(t, order.CanTransition("Lost", "Pending"))
		assert.False(t, order.CanTransition("", ""))
		assert.False(t, order.CanTransition("Unknown", "Pending"))
		assert.False(t, order.CanTransition("\x00garbage", "Confirmed"))
	})

	t.Run("should not allow staying in the same status", func(t *testing.T) {
		for _, s := range order.Statuses() {
			assert.False(t, order.CanTransition(s.String(), s.String()), s.String())
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Confirmed.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
	assert.False(t, order.Unknown.IsTerminal())
}

func TestStatus_AllowedTransitions(t *testing.T) {
	t.Run("should return a copy", func(t *testing.T) {
		targets := order.Pending.AllowedTransitions()
		targets[0] = order.Delivered

		assert.Equal(t, []order.Status{order.Confirmed, order.Cancelled}, order.Pending.AllowedTransitions())
	})

	t.Run("should be empty for terminal statuses", func(t *testing.T) {
		assert.Empty(t, order.Delivered.AllowedTransitions())
		assert.Empty(t, order.Unknown.AllowedTransitions())
	})
}
