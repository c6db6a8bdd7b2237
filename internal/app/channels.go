package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"flex_reviews/internal/domain"
)

// Fixture loaders are injected so the services stay decoupled from the
// embedded data files.
type (
	HostawayFixture func() ([]domain.HostawayReview, error)
	GoogleFixture   func() ([]domain.GoogleReview, error)
)

const (
	cacheKeyHostaway = "channel:hostaway"
	cacheKeyGoogle   = "channel:google"
)

// HostawayService fetches and normalizes the primary booking channel.
// The failure contract is fixture substitution with a provenance tag; there
// is no retry and no backoff. Only a simultaneous live+fixture failure
// surfaces as an error.
type HostawayService struct {
	client  domain.HostawayClient
	cache   domain.Cache
	ttl     time.Duration
	fixture HostawayFixture
}

func NewHostawayService(client domain.HostawayClient, cache domain.Cache, ttl time.Duration, fixture HostawayFixture) *HostawayService {
	return &HostawayService{client: client, cache: cache, ttl: ttl, fixture: fixture}
}

func (s *HostawayService) Fetch(ctx context.Context, mock bool) (domain.ChannelResult, error) {
	if mock {
		return s.fromFixture(domain.SourceMock, "")
	}

	if s.cache != nil {
		var cached domain.ChannelResult
		if ok, _ := s.cache.Get(ctx, cacheKeyHostaway, &cached); ok {
			return cached, nil
		}
	}

	raw, err := s.client.ListReviews(ctx)
	if err != nil {
		log.Warn().Err(err).Str("channel", "hostaway").Msg("live fetch failed, serving fixture data")
		return s.fromFixture(domain.SourceFallbackError, "API error, using fixture data")
	}
	if len(raw) == 0 {
		log.Warn().Str("channel", "hostaway").Msg("live fetch returned zero reviews, serving fixture data")
		return s.fromFixture(domain.SourceFallbackEmpty, "No reviews found upstream, using fixture data")
	}

	res := domain.ChannelResult{Reviews: NormalizeHostaway(raw), Source: domain.SourceLive}
	if s.cache != nil {
		_ = s.cache.Set(ctx, cacheKeyHostaway, res, s.ttl)
	}
	return res, nil
}

func (s *HostawayService) fromFixture(src domain.Source, msg string) (domain.ChannelResult, error) {
	raw, err := s.fixture()
	if err != nil {
		return domain.ChannelResult{}, fmt.Errorf("hostaway fixture fallback failed: %w", err)
	}
	return domain.ChannelResult{Reviews: NormalizeHostaway(raw), Source: src, Message: msg}, nil
}

// GoogleService fetches the aggregator channel. The live integration is a
// feasibility stub: without an API key and place ids it serves fixture data
// tagged "mock", alongside the static capability report exposed by the
// client package.
type GoogleService struct {
	client   domain.GoogleClient
	cache    domain.Cache
	ttl      time.Duration
	fixture  GoogleFixture
	rotation []domain.ListingRef
}

func NewGoogleService(client domain.GoogleClient, cache domain.Cache, ttl time.Duration, fixture GoogleFixture, rotation []domain.ListingRef) *GoogleService {
	return &GoogleService{client: client, cache: cache, ttl: ttl, fixture: fixture, rotation: rotation}
}

func (s *GoogleService) Fetch(ctx context.Context) (domain.ChannelResult, error) {
	if !s.client.Enabled() {
		return s.fromFixture(domain.SourceMock,
			"Google Reviews integration is feasible but requires an API key and Place IDs")
	}

	if s.cache != nil {
		var cached domain.ChannelResult
		if ok, _ := s.cache.Get(ctx, cacheKeyGoogle, &cached); ok {
			return cached, nil
		}
	}

	raw, err := s.client.PlaceReviews(ctx)
	if err != nil {
		log.Warn().Err(err).Str("channel", "google").Msg("live fetch failed, serving fixture data")
		return s.fromFixture(domain.SourceFallbackError, "API error, using fixture data")
	}
	if len(raw) == 0 {
		log.Warn().Str("channel", "google").Msg("live fetch returned zero reviews, serving fixture data")
		return s.fromFixture(domain.SourceFallbackEmpty, "No reviews found upstream, using fixture data")
	}

	res := domain.ChannelResult{Reviews: NormalizeGoogle(raw, s.rotation), Source: domain.SourceLive}
	if s.cache != nil {
		_ = s.cache.Set(ctx, cacheKeyGoogle, res, s.ttl)
	}
	return res, nil
}

func (s *GoogleService) fromFixture(src domain.Source, msg string) (domain.ChannelResult, error) {
	raw, err := s.fixture()
	if err != nil {
		return domain.ChannelResult{}, fmt.Errorf("google fixture fallback failed: %w", err)
	}
	return domain.ChannelResult{Reviews: NormalizeGoogle(raw, s.rotation), Source: src, Message: msg}, nil
}
