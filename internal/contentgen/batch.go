package contentgen

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/prepdeck/prepdeck/internal/item"
)

// GenerateBatch runs one Generate call per input concurrently, bounded by
// cfg.BatchConcurrency, and returns the items in input order. A single
// failed input fails the whole batch; wrap the generator with WithFallback
// when partial degradation is preferred.
func GenerateBatch(ctx context.Context, gen Generator, cfg Config, inputs []GenerateInput) ([]item.LearningItem, error) {
	results := make([][]item.LearningItem, len(inputs))

	grp, gctx := errgroup.WithContext(ctx)
	if cfg.BatchConcurrency > 0 {
		grp.SetLimit(cfg.BatchConcurrency)
	}

	for i, input := range inputs {
		grp.Go(func() error {
			items, err := gen.Generate(gctx, input)
			if err != nil {
				return err
			}
			results[i] = items
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	var all []item.LearningItem
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}
