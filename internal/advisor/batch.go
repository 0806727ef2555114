package advisor

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/riskcore/pkg/models"
)

// BatchResult bundles per-ticker reviews with the failures that did not
// abort the batch. Reviews keep the input order with failed tickers
// removed.
type BatchResult struct {
	Reviews []*models.InstrumentReview `json:"reviews"`
	Errors  []string                   `json:"errors,omitempty"`
}

// AssessBatch assesses several tickers concurrently, bounded by the
// configured fetch concurrency. A failed ticker lands in the errors list;
// the rest of the batch completes regardless.
func (s *Service) AssessBatch(ctx context.Context, tickers []string, profile models.ClientProfile) *BatchResult {
	reviews := make([]*models.InstrumentReview, len(tickers))
	failures := make([]string, len(tickers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, ticker := range tickers {
		g.Go(func() error {
			review, err := s.AssessInstrument(gctx, ticker, profile)
			if err != nil {
				failures[i] = fmt.Sprintf("%s: %v", ticker, err)
				return nil // per-ticker failures never abort the batch
			}
			reviews[i] = review
			return nil
		})
	}
	_ = g.Wait() // workers only ever return nil

	result := &BatchResult{}
	for i := range tickers {
		if reviews[i] != nil {
			result.Reviews = append(result.Reviews, reviews[i])
		}
		if failures[i] != "" {
			result.Errors = append(result.Errors, failures[i])
		}
	}
	return result
}
