package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"flex_reviews/internal/app"
	"flex_reviews/internal/domain"
)

// ---- fakes ----

type fakeHostawayClient struct {
	res  []domain.HostawayReview
	err  error
	hits int
}

func (f *fakeHostawayClient) ListReviews(ctx context.Context) ([]domain.HostawayReview, error) {
	f.hits++
	return f.res, f.err
}

type fakeGoogleClient struct {
	res     []domain.GoogleReview
	err     error
	enabled bool
	hits    int
}

func (f *fakeGoogleClient) Enabled() bool { return f.enabled }
func (f *fakeGoogleClient) PlaceReviews(ctx context.Context) ([]domain.GoogleReview, error) {
	f.hits++
	return f.res, f.err
}

type fakeCache struct {
	store map[string][]byte
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func hostawayFixture() ([]domain.HostawayReview, error) {
	return []domain.HostawayReview{
		{
			ID: 7453, Type: "guest-to-host", Status: "published",
			Rating: ptr(4.5), PublicReview: "fixture review",
			SubmittedAt: "2020-08-21 22:45:14", GuestName: "Shane",
			ListingName: "2B N1 A - 29 Shoreditch Heights",
		},
	}, nil
}

func googleFixture() ([]domain.GoogleReview, error) {
	return []domain.GoogleReview{
		{AuthorName: "James", Rating: 5, Text: "fixture", Time: 1652097600},
	}, nil
}

var testRotation = []domain.ListingRef{
	{Name: "2B N1 A - 29 Shoreditch Heights", ID: "2b-n1-a-29-shoreditch-heights"},
}

// ---- hostaway ----

func TestHostawayFetch_Live(t *testing.T) {
	client := &fakeHostawayClient{res: []domain.HostawayReview{
		{ID: 1, Type: "guest-to-host", Status: "published", Rating: ptr(5.0), ListingName: "X"},
	}}
	cache := &fakeCache{}
	svc := app.NewHostawayService(client, cache, time.Minute, hostawayFixture)

	res, err := svc.Fetch(context.Background(), false)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if res.Source != domain.SourceLive {
		t.Fatalf("source = %q", res.Source)
	}
	if len(res.Reviews) != 1 || res.Reviews[0].ID != 1 {
		t.Fatalf("reviews: %+v", res.Reviews)
	}
	if _, ok := cache.store["channel:hostaway"]; !ok {
		t.Fatalf("live result should be cached")
	}
}

func TestHostawayFetch_FallbackOnError(t *testing.T) {
	client := &fakeHostawayClient{err: errors.New("connection refused")}
	svc := app.NewHostawayService(client, nil, time.Minute, hostawayFixture)

	res, err := svc.Fetch(context.Background(), false)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if res.Source != domain.SourceFallbackError {
		t.Fatalf("source = %q", res.Source)
	}
	if len(res.Reviews) == 0 {
		t.Fatalf("fixture fallback should yield reviews")
	}
	// fallback output still satisfies the canonical schema
	r := res.Reviews[0]
	if r.ID == 0 || r.ListingID == "" || r.Channel != domain.ChannelHostaway || r.Status == "" {
		t.Fatalf("fallback review incomplete: %+v", r)
	}
}

func TestHostawayFetch_FallbackOnEmpty(t *testing.T) {
	client := &fakeHostawayClient{res: nil}
	svc := app.NewHostawayService(client, nil, time.Minute, hostawayFixture)

	res, err := svc.Fetch(context.Background(), false)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if res.Source != domain.SourceFallbackEmpty {
		t.Fatalf("source = %q", res.Source)
	}
}

func TestHostawayFetch_MockSkipsLive(t *testing.T) {
	client := &fakeHostawayClient{res: []domain.HostawayReview{{ID: 99, Status: "published"}}}
	svc := app.NewHostawayService(client, nil, time.Minute, hostawayFixture)

	res, err := svc.Fetch(context.Background(), true)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if res.Source != domain.SourceMock {
		t.Fatalf("source = %q", res.Source)
	}
	if client.hits != 0 {
		t.Fatalf("mock fetch must not hit the live client")
	}
}

func TestHostawayFetch_BothPathsDead(t *testing.T) {
	client := &fakeHostawayClient{err: errors.New("down")}
	broken := func() ([]domain.HostawayReview, error) { return nil, errors.New("fixture corrupt") }
	svc := app.NewHostawayService(client, nil, time.Minute, broken)

	if _, err := svc.Fetch(context.Background(), false); err == nil {
		t.Fatalf("expected error when live and fixture both fail")
	}
}

func TestHostawayFetch_CacheHitShortCircuits(t *testing.T) {
	cached := domain.ChannelResult{
		Reviews: []domain.Review{{ID: 42, Channel: domain.ChannelHostaway}},
		Source:  domain.SourceLive,
	}
	cache := &fakeCache{}
	if err := cache.Set(context.Background(), "channel:hostaway", cached, time.Minute); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	client := &fakeHostawayClient{err: errors.New("should not be called")}
	svc := app.NewHostawayService(client, cache, time.Minute, hostawayFixture)

	res, err := svc.Fetch(context.Background(), false)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if client.hits != 0 {
		t.Fatalf("cache hit must not reach the client")
	}
	if res.Source != domain.SourceLive || len(res.Reviews) != 1 || res.Reviews[0].ID != 42 {
		t.Fatalf("unexpected cached result: %+v", res)
	}
}

// ---- google ----

func TestGoogleFetch_DisabledServesMock(t *testing.T) {
	client := &fakeGoogleClient{enabled: false}
	svc := app.NewGoogleService(client, nil, time.Minute, googleFixture, testRotation)

	res, err := svc.Fetch(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if res.Source != domain.SourceMock {
		t.Fatalf("source = %q", res.Source)
	}
	if client.hits != 0 {
		t.Fatalf("disabled client must not be called")
	}
	if len(res.Reviews) != 1 || res.Reviews[0].Channel != domain.ChannelGoogle {
		t.Fatalf("reviews: %+v", res.Reviews)
	}
}

func TestGoogleFetch_LiveAndFallback(t *testing.T) {
	live := &fakeGoogleClient{enabled: true, res: []domain.GoogleReview{{AuthorName: "A", Rating: 4, Time: 1}}}
	svc := app.NewGoogleService(live, nil, time.Minute, googleFixture, testRotation)
	res, err := svc.Fetch(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if res.Source != domain.SourceLive {
		t.Fatalf("source = %q", res.Source)
	}

	down := &fakeGoogleClient{enabled: true, err: errors.New("quota exceeded")}
	svc = app.NewGoogleService(down, nil, time.Minute, googleFixture, testRotation)
	res, err = svc.Fetch(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if res.Source != domain.SourceFallbackError {
		t.Fatalf("source = %q", res.Source)
	}

	empty := &fakeGoogleClient{enabled: true}
	svc = app.NewGoogleService(empty, nil, time.Minute, googleFixture, testRotation)
	res, err = svc.Fetch(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if res.Source != domain.SourceFallbackEmpty {
		t.Fatalf("source = %q", res.Source)
	}
}
