package report

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/goodworkapp/goodwork/internal/prompt"
)

// The Gemini free tier throttles aggressively; two in flight keeps the
// fan-out inside the rate limit.
const maxConcurrentReports = 2

func (s *Service) generateConcurrently(ctx context.Context, kinds []prompt.Kind) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReports)
	for _, kind := range kinds {
		g.Go(func() error {
			_, err := s.GenerateReport(ctx, kind, prompt.Params{})
			return err
		})
	}
	return g.Wait()
}
