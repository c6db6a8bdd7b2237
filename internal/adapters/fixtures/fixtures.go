// Package fixtures carries the static fallback data set served whenever a
// live channel is unreachable, empty, or explicitly mocked.
package fixtures

import (
	_ "embed"
	"encoding/json"

	"flex_reviews/internal/domain"
)

//go:embed mock_reviews.json
var raw []byte

type payload struct {
	Hostaway struct {
		Status string                  `json:"status"`
		Result []domain.HostawayReview `json:"result"`
	} `json:"hostaway"`
	Google []domain.GoogleReview `json:"google"`
}

func load() (payload, error) {
	var p payload
	err := json.Unmarshal(raw, &p)
	return p, err
}

// Hostaway returns the primary channel's fixture records.
func Hostaway() ([]domain.HostawayReview, error) {
	p, err := load()
	if err != nil {
		return nil, err
	}
	return p.Hostaway.Result, nil
}

// Google returns the aggregator channel's fixture records.
func Google() ([]domain.GoogleReview, error) {
	p, err := load()
	if err != nil {
		return nil, err
	}
	return p.Google, nil
}
