// The warmer pre-populates the channel cache so the first dashboard request
// after a deploy does not pay the upstream round trips. It runs once and
// exits; schedule it externally.
package main

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"flex_reviews/internal/adapters/fixtures"
	googlead "flex_reviews/internal/adapters/google"
	"flex_reviews/internal/adapters/hostaway"
	"flex_reviews/internal/adapters/observability"
	redisad "flex_reviews/internal/adapters/redis"
	"flex_reviews/internal/app"
	"flex_reviews/internal/domain"
	"flex_reviews/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("hostawayBase", cfg.HostawayBase).
		Int("workers", cfg.Workers).
		Msg("warmer starting")

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	hostawaySvc := app.NewHostawayService(
		hostaway.New(cfg.HostawayBase, cfg.HostawayKey, cfg.HostawayAccount, 5),
		cache, cfg.CacheTTL, fixtures.Hostaway)
	googleSvc := app.NewGoogleService(
		googlead.New(cfg.GoogleBase, cfg.GoogleKey, cfg.GooglePlaceIDs),
		cache, cfg.CacheTTL, fixtures.Google, shared.ListingRotation)

	type warm struct {
		name  string
		fetch func(context.Context) (domain.ChannelResult, error)
	}
	warms := []warm{
		{name: "hostaway", fetch: func(ctx context.Context) (domain.ChannelResult, error) {
			return hostawaySvc.Fetch(ctx, false)
		}},
		{name: "google", fetch: googleSvc.Fetch},
	}

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, w := range warms {
		w := w

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			res, err := w.fetch(ctx)
			if err != nil {
				log.Warn().Str("channel", w.name).Err(err).Msg("warm failed")
				return
			}
			log.Info().
				Str("channel", w.name).
				Str("source", string(res.Source)).
				Int("reviews", len(res.Reviews)).
				Msg("warm ok")
		}()
	}

	wg.Wait()
	log.Info().Msg("warm-up completed")
}
