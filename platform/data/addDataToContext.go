package data

import (
	"context"
	"fmt"
	"log/slog"
)

// AddDataToContextHelper implements the common logic for binding a variable
// mapping to a context ahead of evaluation. Engine evaluators call this from
// their AddDataToContext methods so the behavior stays consistent.
func AddDataToContextHelper(
	ctx context.Context,
	logger *slog.Logger,
	provider Provider,
	d ...map[string]any,
) (context.Context, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if provider == nil {
		logger.WarnContext(ctx, "no data provider available for context preparation")
		return ctx, fmt.Errorf("no data provider available")
	}

	enrichedCtx, err := provider.AddDataToContext(ctx, d...)
	if err != nil {
		return ctx, fmt.Errorf("failed to prepare context: %w", err)
	}

	return enrichedCtx, err
}
