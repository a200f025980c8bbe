package kernel_test

import (
	"encoding/json"
	"testing"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonical = "550e8400-e29b-41d4-a716-446655440000"

func TestNewUUID_IsValidAndUnique(t *testing.T) {
	a, b := kernel.NewUUID(), kernel.NewUUID()

	assert.NoError(t, a.Validate())
	assert.False(t, a.IsEqual(b))
}

func TestUUIDFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"canonical", canonical, false},
		{"braces", "{" + canonical + "}", false},
		{"urn", "urn:uuid:" + canonical, false},
		{"no hyphens", "550e8400e29b41d4a716446655440000", false},
		{"empty", "", true},
		{"garbage", "order-42", true},
		{"truncated", canonical[:30], true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid UUID format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, canonical, id.String())
		})
	}
}

func TestUUIDFromBytes(t *testing.T) {
	raw := uuid.MustParse(canonical)

	id, err := kernel.UUIDFromBytes(raw[:])
	require.NoError(t, err)
	assert.Equal(t, canonical, id.String())
	assert.Equal(t, raw, id.Bytes())

	_, err = kernel.UUIDFromBytes([]byte{1, 2, 3})
	assert.Error(t, err)

	_, err = kernel.UUIDFromBytes(uuid.Nil[:])
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUUID_ZeroValueIsInvalid(t *testing.T) {
	var id kernel.UUID

	err := id.Validate()

	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestUUID_IsEqual(t *testing.T) {
	a, err := kernel.UUIDFromString(canonical)
	require.NoError(t, err)
	b, err := kernel.UUIDFromString("{" + canonical + "}")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(kernel.NewUUID()))
}

func TestUUID_TextMarshalling(t *testing.T) {
	id, err := kernel.UUIDFromString(canonical)
	require.NoError(t, err)

	data, err := json.Marshal(struct {
		ID kernel.UUID `json:"id"`
	}{ID: id})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+canonical+`"}`, string(data))

	var restored struct {
		ID kernel.UUID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.True(t, id.IsEqual(restored.ID))

	var bad kernel.UUID
	assert.Error(t, bad.UnmarshalText([]byte("not-a-uuid")))
}
