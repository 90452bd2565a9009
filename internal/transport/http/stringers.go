package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/zacharypellouchoud1/stringup-backend/internal/app"
	"github.com/zacharypellouchoud1/stringup-backend/internal/domain"
)

// StringerService is the minimal interface needed by the stringer endpoints.
type StringerService interface {
	CreateStringer(ctx context.Context, in app.CreateStringerInput) (domain.Stringer, error)
	GetStringer(ctx context.Context, id int64) (domain.Stringer, error)
	ListStringers(ctx context.Context) ([]domain.Stringer, error)
}

// HandleStringers returns an HTTP handler for listing and creating stringers.
func HandleStringers(svc StringerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			stringers, err := svc.ListStringers(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			resp := make([]stringerResponse, 0, len(stringers))
			for _, s := range stringers {
				resp = append(resp, newStringerResponse(s))
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
			return
		case http.MethodPost:
			var req createStringerRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			stringer, err := svc.CreateStringer(r.Context(), app.CreateStringerInput{
				Name:              req.Name,
				RatePerRacket:     req.RatePerRacket,
				Availability:      req.Availability,
				CapacityToday:     req.CapacityToday,
				RatingQuality:     req.RatingQuality,
				RatingPunctuality: req.RatingPunctuality,
				Location:          req.Location,
			})
			if err != nil {
				switch err {
				case domain.ErrNameRequired:
					writeError(w, http.StatusBadRequest, codeNameRequired, err.Error())
				case domain.ErrInvalidRate:
					writeError(w, http.StatusBadRequest, codeInvalidRate, err.Error())
				case domain.ErrInvalidCapacity:
					writeError(w, http.StatusBadRequest, codeInvalidCapacity, err.Error())
				default:
					writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				}
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(newStringerResponse(stringer))
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

// HandleStringerByID returns an HTTP handler for fetching a single stringer.
func HandleStringerByID(svc StringerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		id, ok := parseStringerPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		stringer, err := svc.GetStringer(r.Context(), id)
		if err != nil {
			switch err {
			case domain.ErrInvalidID:
				writeError(w, http.StatusNotFound, codeInvalidID, err.Error())
			case domain.ErrStringerNotFound:
				writeError(w, http.StatusNotFound, codeStringerNotFound, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(newStringerResponse(stringer))
	}
}

// parseStringerPath extracts the id from /stringers/{id}.
func parseStringerPath(path string) (int64, bool) {
	rest, found := strings.CutPrefix(path, "/stringers/")
	if !found || rest == "" || strings.Contains(rest, "/") {
		return 0, false
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

type createStringerRequest struct {
	Name              string  `json:"name"`
	RatePerRacket     float64 `json:"rate_per_racket"`
	Availability      string  `json:"availability"`
	CapacityToday     int     `json:"capacity_today"`
	RatingQuality     float64 `json:"rating_quality"`
	RatingPunctuality float64 `json:"rating_punctuality"`
	Location          string  `json:"location"`
}

type stringerResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	RatePerRacket     float64 `json:"rate_per_racket"`
	Availability      string  `json:"availability"`
	CapacityToday     int     `json:"capacity_today"`
	RatingQuality     float64 `json:"rating_quality"`
	RatingPunctuality float64 `json:"rating_punctuality"`
	Location          string  `json:"location"`
}

func newStringerResponse(s domain.Stringer) stringerResponse {
	return stringerResponse{
		ID:                s.ID,
		Name:              s.Name,
		RatePerRacket:     s.RatePerRacket,
		Availability:      s.Availability,
		CapacityToday:     s.CapacityToday,
		RatingQuality:     s.RatingQuality,
		RatingPunctuality: s.RatingPunctuality,
		Location:          s.Location,
	}
}
