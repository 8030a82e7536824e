package data

import (
	"context"
	"errors"
	"maps"
)

// ErrStaticProviderNoRuntimeUpdates is returned by StaticProvider.AddDataToContext,
// since static variable mappings cannot be updated after creation.
var ErrStaticProviderNoRuntimeUpdates = errors.New(
	"StaticProvider doesn't support adding data at runtime")

// StaticProvider returns a predefined variable mapping. It's useful for
// evaluations where the full set of variables is known in advance and doesn't
// need to be retrieved from the context.
type StaticProvider struct {
	data map[string]any
}

// NewStaticProvider creates a new StaticProvider with the provided mapping.
func NewStaticProvider(data map[string]any) *StaticProvider {
	if data == nil {
		data = make(map[string]any)
	}
	return &StaticProvider{
		data: data,
	}
}

// GetData returns the static mapping regardless of the context. A clone is
// returned, so the caller cannot mutate the provider's copy.
func (p *StaticProvider) GetData(ctx context.Context) (map[string]any, error) {
	return maps.Clone(p.data), nil
}

// AddDataToContext always returns ErrStaticProviderNoRuntimeUpdates.
// The mapping held by a StaticProvider is immutable for its lifetime.
func (p *StaticProvider) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	return ctx, ErrStaticProviderNoRuntimeUpdates
}
