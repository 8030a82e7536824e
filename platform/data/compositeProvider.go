package data

import (
	"context"
	"errors"
	"fmt"
	"maps"
)

// CompositeProvider combines multiple providers, with later providers
// overriding values from earlier ones in the chain. The usual arrangement is
// a StaticProvider carrying construction-time variables followed by a
// ContextProvider carrying per-evaluation variables.
type CompositeProvider struct {
	providers []Provider
}

// NewCompositeProvider creates a provider that queries given providers in order.
func NewCompositeProvider(providers ...Provider) *CompositeProvider {
	return &CompositeProvider{
		providers: providers,
	}
}

// GetData retrieves the variable mapping from all providers and merges them
// into a single map. Queries providers in sequence, with later providers
// overriding values from earlier ones. Returns error on first provider failure.
func (p *CompositeProvider) GetData(ctx context.Context) (map[string]any, error) {
	result := make(map[string]any)

	for i, provider := range p.providers {
		if provider == nil {
			continue
		}

		data, err := provider.GetData(ctx)
		if err != nil {
			return nil, fmt.Errorf("error from provider %d: %w", i, err)
		}

		result = deepMerge(result, data)
	}

	return result, nil
}

// deepMerge recursively merges map[string]any maps. Values from dst override
// those from src. Nested maps merge; other types are replaced entirely.
func deepMerge(src, dst map[string]any) map[string]any {
	result := maps.Clone(src)

	for k, dstVal := range dst {
		srcVal, exists := result[k]

		if !exists {
			result[k] = dstVal
			continue
		}

		srcMap, srcIsMap := srcVal.(map[string]any)
		dstMap, dstIsMap := dstVal.(map[string]any)

		if srcIsMap && dstIsMap {
			result[k] = deepMerge(srcMap, dstMap)
		} else {
			result[k] = dstVal
		}
	}

	return result
}

// AddDataToContext distributes the variable maps to all providers in the
// chain. StaticProviders always reject runtime updates, so their errors only
// surface when the chain contains no updatable provider at all.
func (p *CompositeProvider) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	finalCtx := ctx

	var errs []error
	var staticErrs []error
	successCount := 0
	totalCount := 0
	staticCount := 0

	for i, provider := range p.providers {
		if provider == nil {
			continue
		}

		_, isStaticProvider := provider.(*StaticProvider)
		if !isStaticProvider {
			totalCount++
		} else {
			staticCount++
		}

		nextCtx, err := provider.AddDataToContext(finalCtx, data...)
		if err != nil {
			if isStaticProvider && errors.Is(err, ErrStaticProviderNoRuntimeUpdates) {
				staticErrs = append(staticErrs, fmt.Errorf("error from provider %d: %w", i, err))
				continue
			}

			errs = append(errs, fmt.Errorf("error from provider %d: %w", i, err))
			continue
		}

		finalCtx = nextCtx
		successCount++
	}

	// A chain of only StaticProviders cannot accept runtime data.
	if staticCount > 0 && totalCount == 0 && len(staticErrs) > 0 {
		return ctx, errors.Join(staticErrs...)
	}

	// If all updatable providers failed, return an error.
	if totalCount > 0 && successCount == 0 && len(errs) > 0 {
		return ctx, errors.Join(errs...)
	}

	return finalCtx, nil
}
