package app

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"flex_reviews/internal/domain"
)

type AggregateService struct {
	hostaway *HostawayService
	google   *GoogleService
}

func NewAggregateService(h *HostawayService, g *GoogleService) *AggregateService {
	return &AggregateService{hostaway: h, google: g}
}

// AggregateResult is the dashboard's working set: every channel's reviews in
// channel call order, plus statistics over the whole sequence and the
// provenance of each contribution.
type AggregateResult struct {
	Reviews   []domain.Review
	Analytics domain.Analytics
	Sources   map[string]domain.Source
}

// Reviews fetches both channels concurrently and joins before computing
// statistics. It never fails outward: a channel whose live and fixture paths
// both die contributes an empty slice tagged "error", and the rest of the
// aggregate is still served.
func (s *AggregateService) Reviews(ctx context.Context) AggregateResult {
	var hr, gr domain.ChannelResult

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.hostaway.Fetch(ctx, false)
		if err != nil {
			log.Error().Err(err).Str("channel", "hostaway").Msg("channel contributed nothing to aggregate")
			res = domain.ChannelResult{Reviews: []domain.Review{}, Source: domain.SourceError}
		}
		hr = res
		return nil
	})
	g.Go(func() error {
		res, err := s.google.Fetch(ctx)
		if err != nil {
			log.Error().Err(err).Str("channel", "google").Msg("channel contributed nothing to aggregate")
			res = domain.ChannelResult{Reviews: []domain.Review{}, Source: domain.SourceError}
		}
		gr = res
		return nil
	})
	_ = g.Wait()

	// channel call order, then source order within channel; no global sort
	all := make([]domain.Review, 0, len(hr.Reviews)+len(gr.Reviews))
	all = append(all, hr.Reviews...)
	all = append(all, gr.Reviews...)

	return AggregateResult{
		Reviews:   all,
		Analytics: Analyze(all),
		Sources: map[string]domain.Source{
			"hostaway": hr.Source,
			"google":   gr.Source,
		},
	}
}
