package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider_Creation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		inputData   map[string]any
		expectEmpty bool
	}{
		{
			name:        "nil data creates empty map",
			inputData:   nil,
			expectEmpty: true,
		},
		{
			name:        "empty data creates empty map",
			inputData:   map[string]any{},
			expectEmpty: true,
		},
		{
			name:        "populated mapping is stored",
			inputData:   map[string]any{"x": 2.0, "y": 40.0},
			expectEmpty: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := NewStaticProvider(tt.inputData)
			require.NotNil(t, provider, "Provider should never be nil")

			result, err := provider.GetData(context.Background())
			assert.NoError(t, err, "GetData should never return an error")

			if tt.expectEmpty {
				assert.Empty(t, result, "Result map should be empty")
			} else {
				assert.Equal(t, tt.inputData, result, "Result should match input data")
			}
		})
	}
}

func TestStaticProvider_GetDataReturnsClone(t *testing.T) {
	t.Parallel()

	provider := NewStaticProvider(map[string]any{"x": 1.0})

	first, err := provider.GetData(context.Background())
	require.NoError(t, err)
	first["x"] = 99.0
	first["injected"] = true

	second, err := provider.GetData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": 1.0}, second,
		"mutating a returned map must not affect the provider")
}

func TestStaticProvider_AddDataToContext(t *testing.T) {
	t.Parallel()

	provider := NewStaticProvider(map[string]any{"x": 1.0})
	ctx, err := provider.AddDataToContext(context.Background(), map[string]any{"y": 2.0})

	assert.ErrorIs(t, err, ErrStaticProviderNoRuntimeUpdates)
	assert.Equal(t, context.Background(), ctx, "context should be returned unchanged")
}
