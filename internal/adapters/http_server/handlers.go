package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"review_radar/internal/app"
	"review_radar/internal/domain"
)

type Handlers struct {
	Q           *app.QueryService
	S           *app.SubmissionService
	SubmitLimit *rate.Limiter
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// reviewDTO is the wire shape; key casing follows the original dataset
// columns (ReviewId, ReviewBody, Location, Timestamp).
type reviewDTO struct {
	ReviewID  string           `json:"ReviewId"`
	Body      string           `json:"ReviewBody"`
	Location  string           `json:"Location"`
	Timestamp string           `json:"Timestamp"`
	Sentiment domain.Sentiment `json:"sentiment"`
}

func toDTO(r domain.RankedReview) reviewDTO {
	return reviewDTO{
		ReviewID:  r.ID,
		Body:      r.Body,
		Location:  r.Location,
		Timestamp: r.Timestamp.Format(domain.TimestampLayout),
		Sentiment: r.Sentiment,
	}
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/reviews", h.listReviews)
	if h.SubmitLimit != nil {
		s.mux.With(RateLimit(h.SubmitLimit)).Post("/reviews", h.submitReview)
	} else {
		s.mux.Post("/reviews", h.submitReview)
	}
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeError translates the core error taxonomy to status codes. ErrInternal
// stays opaque on the wire.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		writeProblem(w, http.StatusBadRequest, "Missing Parameter", "required parameters: 'Location' and 'ReviewBody'")
	case errors.Is(err, domain.ErrInvalidLocation):
		writeProblem(w, http.StatusBadRequest, "Invalid Location", "location is not in the allowed set")
	case errors.Is(err, domain.ErrInvalidDate):
		writeProblem(w, http.StatusBadRequest, "Invalid Date", "start_date/end_date could not be parsed")
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	raw := domain.RawReviewQuery{
		Location:  r.URL.Query().Get("location"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	ranked, err := h.Q.ListReviews(r.Context(), raw)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]reviewDTO, 0, len(ranked))
	for _, rr := range ranked {
		out = append(out, toDTO(rr))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) submitReview(w http.ResponseWriter, r *http.Request) {
	// accepts form- or query-encoded parameters
	if err := r.ParseForm(); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "malformed form body")
		return
	}

	created, err := h.S.Submit(r.Context(), r.Form.Get("Location"), r.Form.Get("ReviewBody"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDTO(created))
}
