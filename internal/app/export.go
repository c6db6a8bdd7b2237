package app

import (
	"encoding/csv"
	"io"
	"strconv"

	"flex_reviews/internal/domain"
)

var exportHeader = []string{
	"id", "listing", "guest", "rating", "channel", "type", "status",
	"submittedAt", "approved", "public", "content",
}

// WriteCSV streams the given reviews as the dashboard's export file, one row
// per review in sequence order.
func WriteCSV(w io.Writer, reviews []domain.Review) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, r := range reviews {
		rec := []string{
			strconv.FormatInt(r.ID, 10),
			r.ListingName,
			r.GuestName,
			strconv.FormatFloat(r.OverallRating, 'f', -1, 64),
			string(r.Channel),
			string(r.Type),
			string(r.Status),
			r.SubmittedAt,
			strconv.FormatBool(r.IsApproved),
			strconv.FormatBool(r.IsPublic),
			r.Content,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
