package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/zacharypellouchoud1/stringup-backend/internal/app"
	"github.com/zacharypellouchoud1/stringup-backend/internal/domain"
)

// BookingCreator is the minimal interface needed to create a booking.
type BookingCreator interface {
	CreateBooking(ctx context.Context, in app.CreateBookingInput) (domain.Booking, error)
}

// HandleCreateBooking returns an HTTP handler for creating bookings.
func HandleCreateBooking(svc BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req createBookingRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		booking, err := svc.CreateBooking(r.Context(), app.CreateBookingInput{
			StringerID: req.StringerID,
			PlayerName: req.PlayerName,
			Notes:      req.Notes,
		})
		if err != nil {
			switch err {
			case domain.ErrInvalidID:
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			case domain.ErrPlayerNameRequired:
				writeError(w, http.StatusBadRequest, codePlayerNameRequired, err.Error())
			case domain.ErrStringerNotFound:
				writeError(w, http.StatusNotFound, codeStringerNotFound, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		resp := createBookingResponse{
			ID:         booking.ID,
			StringerID: booking.StringerID,
			PlayerName: booking.PlayerName,
			Notes:      booking.Notes,
			CreatedAt:  booking.CreatedAt,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type createBookingRequest struct {
	StringerID int64   `json:"stringer_id"`
	PlayerName string  `json:"player_name"`
	Notes      *string `json:"notes"`
}

type createBookingResponse struct {
	ID         int64     `json:"id"`
	StringerID int64     `json:"stringer_id"`
	PlayerName string    `json:"player_name"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
