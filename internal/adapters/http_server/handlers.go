package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"flex_reviews/internal/adapters/google"
	"flex_reviews/internal/adapters/observability"
	"flex_reviews/internal/app"
	"flex_reviews/internal/domain"
)

type Handlers struct {
	Agg      *app.AggregateService
	Hostaway *app.HostawayService
	Google   *app.GoogleService
	Mod      *app.ModerationState
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/api/reviews", h.getReviews)
	s.mux.Patch("/api/reviews", h.patchReview)
	s.mux.Get("/api/reviews/hostaway", h.getHostaway)
	s.mux.Get("/api/reviews/google", h.getGoogle)
	s.mux.Get("/api/reviews/export.csv", h.exportCSV)
	s.mux.Get("/api/properties", h.getProperties)
	s.mux.Get("/api/properties/{listingId}/reviews", h.getPropertyReviews)
}

// ---- response envelopes (wire contract the dashboard consumes) ----

type channelResponse struct {
	Success bool            `json:"success"`
	Data    []domain.Review `json:"data"`
	Source  domain.Source   `json:"source"`
	Message string          `json:"message,omitempty"`
}

type googleChannelResponse struct {
	Success          bool              `json:"success"`
	Data             []domain.Review   `json:"data"`
	Source           domain.Source     `json:"source"`
	CapabilityReport google.Capability `json:"capability_report"`
	Message          string            `json:"message,omitempty"`
}

type aggregateResponse struct {
	Success   bool                     `json:"success"`
	Data      []domain.Review          `json:"data"`
	Analytics domain.Analytics         `json:"analytics"`
	Sources   map[string]domain.Source `json:"sources"`
}

type propertiesResponse struct {
	Success bool                             `json:"success"`
	Data    map[string]*domain.PropertyStats `json:"data"`
}

type reviewListResponse struct {
	Success bool            `json:"success"`
	Data    []domain.Review `json:"data"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg, details string) {
	writeJSON(w, status, errorResponse{Success: false, Error: msg, Details: details})
}

// ---- channels ----

func (h *Handlers) getHostaway(w http.ResponseWriter, r *http.Request) {
	mock := r.URL.Query().Get("mock") == "true"
	res, err := h.Hostaway.Fetch(r.Context(), mock)
	if err != nil {
		// live path and fixture fallback both dead
		writeError(w, http.StatusInternalServerError, "Failed to fetch reviews and fallback failed", err.Error())
		return
	}
	observability.ObserveChannel("hostaway", string(res.Source))
	writeJSON(w, http.StatusOK, channelResponse{Success: true, Data: res.Reviews, Source: res.Source, Message: res.Message})
}

func (h *Handlers) getGoogle(w http.ResponseWriter, r *http.Request) {
	res, err := h.Google.Fetch(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch Google Reviews", err.Error())
		return
	}
	observability.ObserveChannel("google", string(res.Source))
	writeJSON(w, http.StatusOK, googleChannelResponse{
		Success:          true,
		Data:             res.Reviews,
		Source:           res.Source,
		CapabilityReport: google.Feasibility(),
		Message:          res.Message,
	})
}

// ---- aggregate + dashboard ----

func filterFromQuery(r *http.Request) app.Filter {
	q := r.URL.Query()
	var f app.Filter
	if v := q.Get("rating"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Rating = n
		}
	}
	f.Channel = q.Get("channel")
	f.Listing = q.Get("property")
	f.Status = q.Get("status")
	f.Query = q.Get("q")
	return f
}

func (h *Handlers) getReviews(w http.ResponseWriter, r *http.Request) {
	agg := h.Agg.Reviews(r.Context())
	for ch, src := range agg.Sources {
		observability.ObserveChannel(ch, string(src))
	}
	// analytics always cover the full sequence; filters narrow the rows only
	data := filterFromQuery(r).Apply(agg.Reviews)
	writeJSON(w, http.StatusOK, aggregateResponse{
		Success:   true,
		Data:      data,
		Analytics: agg.Analytics,
		Sources:   agg.Sources,
	})
}

func (h *Handlers) patchReview(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ReviewID   *int64 `json:"reviewId"`
		IsApproved *bool  `json:"isApproved"`
		IsPublic   *bool  `json:"isPublic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to update review", "invalid JSON body")
		return
	}
	if body.ReviewID == nil {
		writeError(w, http.StatusBadRequest, "Failed to update review", "reviewId is required")
		return
	}

	// fire-and-forget: the working copy is updated and subscribers notified,
	// nothing durable is written
	h.Mod.Apply(*body.ReviewID, body.IsApproved, body.IsPublic)
	writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: "Review updated successfully"})
}

func (h *Handlers) exportCSV(w http.ResponseWriter, r *http.Request) {
	agg := h.Agg.Reviews(r.Context())
	data := filterFromQuery(r).Apply(agg.Reviews)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="reviews-export.csv"`)
	w.WriteHeader(http.StatusOK)
	if err := app.WriteCSV(w, data); err != nil {
		log.Error().Err(err).Msg("write CSV export failed")
	}
}

// ---- properties ----

func (h *Handlers) getProperties(w http.ResponseWriter, r *http.Request) {
	agg := h.Agg.Reviews(r.Context())
	writeJSON(w, http.StatusOK, propertiesResponse{Success: true, Data: agg.Analytics.ByProperty})
}

func (h *Handlers) getPropertyReviews(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "listingId")
	agg := h.Agg.Reviews(r.Context())
	writeJSON(w, http.StatusOK, reviewListResponse{
		Success: true,
		Data:    app.VisibleReviews(agg.Reviews, listingID),
	})
}
