package data

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/mathpine/go-prefixeval/platform/constants"
)

// ContextProvider retrieves and stores the variable mapping in the context
// using a specified key.
type ContextProvider struct {
	contextKey constants.ContextKey
}

// NewContextProvider creates a new ContextProvider with the given context key.
// The context key determines where the variable mapping is stored in the
// context object.
func NewContextProvider(contextKey constants.ContextKey) *ContextProvider {
	return &ContextProvider{
		contextKey: contextKey,
	}
}

// GetData extracts the variable mapping from the context using the configured
// context key. A missing value is treated as an empty mapping.
func (p *ContextProvider) GetData(ctx context.Context) (map[string]any, error) {
	if p.contextKey == "" {
		return nil, fmt.Errorf("context key is empty")
	}

	value := ctx.Value(p.contextKey)
	if value == nil {
		return make(map[string]any), nil
	}

	d, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid input data type: expected map[string]any, got %T", value)
	}

	return d, nil
}

// AddDataToContext merges the provided maps into the context. Nested maps are
// recursively merged, and later values override earlier ones for duplicate
// keys. Values already stored under the context key are carried forward.
func (p *ContextProvider) AddDataToContext(
	ctx context.Context,
	data ...map[string]any,
) (context.Context, error) {
	if p.contextKey == "" {
		return ctx, fmt.Errorf("context key is empty")
	}

	var errz []error
	toStore := make(map[string]any)

	if existingData := ctx.Value(p.contextKey); existingData != nil {
		if existingMap, ok := existingData.(map[string]any); ok {
			maps.Copy(toStore, existingMap)
		}
	}

	for _, dataMap := range data {
		if dataMap == nil {
			continue
		}

		for key, value := range dataMap {
			if key == "" {
				errz = append(errz, fmt.Errorf("empty keys are not allowed"))
				continue
			}

			mergeIntoMap(toStore, key, value)
		}
	}

	newCtx := context.WithValue(ctx, p.contextKey, toStore)
	return newCtx, errors.Join(errz...)
}

// mergeIntoMap recursively merges values into the target map
func mergeIntoMap(target map[string]any, key string, value any) {
	if newMap, ok := value.(map[string]any); ok {
		if existingValue, exists := target[key]; exists {
			if existingMap, ok := existingValue.(map[string]any); ok {
				for k, v := range newMap {
					mergeIntoMap(existingMap, k, v)
				}
				return
			}
		}
	}

	// Non-map values simply replace existing values
	target[key] = value
}
