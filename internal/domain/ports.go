package domain

import (
	"context"
	"time"
)

// Source tags where a channel response actually came from, so callers can
// tell real data from substituted fixture data.
type Source string

const (
	SourceLive          Source = "live"
	SourceMock          Source = "mock" // fixture served on explicit request
	SourceFallbackEmpty Source = "fallback-empty"
	SourceFallbackError Source = "fallback-error"
	SourceError         Source = "error" // both live and fixture paths failed
)

// ChannelResult is one channel's contribution to an aggregate request.
type ChannelResult struct {
	Reviews []Review `json:"reviews"`
	Source  Source   `json:"source"`
	Message string   `json:"message,omitempty"`
}

type HostawayClient interface {
	ListReviews(ctx context.Context) ([]HostawayReview, error)
}

type GoogleClient interface {
	// Enabled reports whether the live integration is configured at all.
	// The Google path is a feasibility stub; without a key it never goes live.
	Enabled() bool
	PlaceReviews(ctx context.Context) ([]GoogleReview, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Read models

type PropertyStats struct {
	Name        string  `json:"name"`
	Count       int     `json:"count"`
	AvgRating   float64 `json:"avgRating"`
	TotalRating float64 `json:"totalRating"`
}

type Analytics struct {
	TotalReviews       int                       `json:"totalReviews"`
	AvgRating          float64                   `json:"avgRating"`
	RatingDistribution map[string]int            `json:"ratingDistribution"`
	ByProperty         map[string]*PropertyStats `json:"byProperty"`
}
