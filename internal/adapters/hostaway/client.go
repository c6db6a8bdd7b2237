package hostaway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"flex_reviews/internal/adapters/observability"
	"flex_reviews/internal/domain"
)

var (
	ErrUnauthorized = errors.New("hostaway: unauthorized")
	ErrForbidden    = errors.New("hostaway: forbidden")
)

// Client talks to the Hostaway reviews endpoint. It rate-limits itself but
// deliberately does not retry: the caller's failure contract is fixture
// substitution, and a retry loop would only delay that.
type Client struct {
	base    string
	hc      *http.Client
	key     string
	account string
	rl      *rate.Limiter
}

func New(base, key, account string, rps int) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base:    strings.TrimRight(base, "/"),
		hc:      &http.Client{Timeout: 20 * time.Second},
		key:     key,
		account: account,
		rl:      rate.NewLimiter(rate.Limit(rps), rps),
	}
}

type listResponse struct {
	Status string                  `json:"status"`
	Result []domain.HostawayReview `json:"result"`
}

func (c *Client) ListReviews(ctx context.Context) ([]domain.HostawayReview, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	url := c.base + "/reviews"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}
	if c.account != "" {
		req.Header.Set("X-Hostaway-Account", c.account)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "flex-reviews/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("hostaway", "/reviews", 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("hostaway", "/reviews", resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK:
		var out listResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, fmt.Errorf("hostaway: decode reviews: %w", err)
		}
		return out.Result, nil
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusForbidden:
		return nil, ErrForbidden
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("hostaway: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}
