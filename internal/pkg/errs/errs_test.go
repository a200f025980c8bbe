package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "123")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("customer", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: customer, ID is: 123 (cause: database connection failed)",
			err.Error())
	})

	t.Run("several identifiers", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("product", "p1, p2")
		assert.Equal(t, "object not found: product p1, p2", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000)

		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 1000, err.Max)
		assert.Equal(t, "value is out of range: 0 is quantity, min value is 1, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("score", -5, 0, 100, cause)

		assert.Equal(t,
			"value is out of range: -5 is score, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("shipping address")

	assert.Equal(t, "value is required: shipping address", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("items", errors.New("empty list"))
	assert.Equal(t, "value is required: items (cause: empty list)", withCause.Error())
}

func TestIsInvalidInput(t *testing.T) {
	assert.True(t, errs.IsInvalidInput(errs.NewValueIsRequiredError("a")))
	assert.True(t, errs.IsInvalidInput(errs.NewValueIsInvalidError("b")))
	assert.True(t, errs.IsInvalidInput(errs.NewValueIsOutOfRangeError("c", 1, 2, 3)))
	assert.True(t, errs.IsInvalidInput(errors.Join(errors.New("x"), errs.NewValueIsRequiredError("d"))))
	assert.True(t, errs.IsInvalidInput(fmt.Errorf("wrapped: %w", errs.NewValueIsInvalidError("e"))))

	assert.False(t, errs.IsInvalidInput(errs.NewObjectNotFoundError("order", "1")))
	assert.False(t, errs.IsInvalidInput(errors.New("boom")))
	assert.False(t, errs.IsInvalidInput(nil))
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("order", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("qty", 0, 1, 2), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("notes"), errs.ErrValueIsRequired)
}
