package google

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"flex_reviews/internal/adapters/observability"
	"flex_reviews/internal/domain"
)

// Client fetches reviews from the Places Details API. The integration is a
// feasibility stub: it only goes live when both an API key and place ids are
// configured, and callers fall back to fixture data otherwise.
type Client struct {
	c        *resty.Client
	key      string
	placeIDs []string
}

func New(base, key string, placeIDs []string) *Client {
	return &Client{
		c: resty.New().
			SetBaseURL(base).
			SetTimeout(20 * time.Second).
			SetHeader("User-Agent", "flex-reviews/1.0"),
		key:      key,
		placeIDs: placeIDs,
	}
}

func (c *Client) Enabled() bool {
	return c.key != "" && len(c.placeIDs) > 0
}

type detailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Reviews []domain.GoogleReview `json:"reviews"`
	} `json:"result"`
}

// PlaceReviews collects the reviews of every configured place, in place id
// order. One bad place id fails the whole fetch; the caller's fixture
// fallback absorbs it.
func (c *Client) PlaceReviews(ctx context.Context) ([]domain.GoogleReview, error) {
	var all []domain.GoogleReview
	for _, placeID := range c.placeIDs {
		var out detailsResponse
		start := time.Now()
		resp, err := c.c.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"place_id": placeID,
				"fields":   "reviews",
				"key":      c.key,
			}).
			SetResult(&out).
			Get("/details/json")
		if err != nil {
			observability.ObserveExternal("google", "/details/json", 0, time.Since(start))
			return nil, err
		}
		observability.ObserveExternal("google", "/details/json", resp.StatusCode(), time.Since(start))
		if resp.IsError() {
			return nil, fmt.Errorf("google: bad status %d for place %s", resp.StatusCode(), placeID)
		}
		if out.Status != "OK" {
			return nil, fmt.Errorf("google: places status %q for place %s", out.Status, placeID)
		}
		all = append(all, out.Result.Reviews...)
	}
	return all, nil
}
