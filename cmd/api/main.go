package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"flex_reviews/internal/adapters/fixtures"
	googlead "flex_reviews/internal/adapters/google"
	"flex_reviews/internal/adapters/hostaway"
	server "flex_reviews/internal/adapters/http_server"
	"flex_reviews/internal/adapters/observability"
	redisad "flex_reviews/internal/adapters/redis"
	"flex_reviews/internal/app"
	"flex_reviews/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// deps
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	hostawayClient := hostaway.New(cfg.HostawayBase, cfg.HostawayKey, cfg.HostawayAccount, 5)
	googleClient := googlead.New(cfg.GoogleBase, cfg.GoogleKey, cfg.GooglePlaceIDs)

	hostawaySvc := app.NewHostawayService(hostawayClient, cache, cfg.CacheTTL, fixtures.Hostaway)
	googleSvc := app.NewGoogleService(googleClient, cache, cfg.CacheTTL, fixtures.Google, shared.ListingRotation)
	agg := app.NewAggregateService(hostawaySvc, googleSvc)

	// moderation container: audit to the log stream and count per-field,
	// nothing durable
	mod := app.NewModerationState()
	mod.Subscribe(func(c app.ModerationChange) {
		ev := log.Info().Int64("reviewId", c.ReviewID).Time("at", c.At)
		if c.IsApproved != nil {
			ev = ev.Bool("isApproved", *c.IsApproved)
		}
		if c.IsPublic != nil {
			ev = ev.Bool("isPublic", *c.IsPublic)
		}
		ev.Msg("review_moderated")
	})
	mod.Subscribe(func(c app.ModerationChange) {
		if c.IsApproved != nil {
			observability.ObserveModeration("isApproved")
		}
		if c.IsPublic != nil {
			observability.ObserveModeration("isPublic")
		}
	})

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Agg:      agg,
		Hostaway: hostawaySvc,
		Google:   googleSvc,
		Mod:      mod,
	})

	log.Info().
		Str("addr", cfg.HTTPAddr).
		Bool("googleLive", googleClient.Enabled()).
		Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
