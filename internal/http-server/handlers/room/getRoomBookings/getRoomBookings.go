package getRoomBookings

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"spaceBooker/internal/booking"
	"spaceBooker/internal/lib/api/response"
	"spaceBooker/internal/lib/logger/sl"
	"spaceBooker/internal/models"
)

type Response struct {
	Room     *models.Room     `json:"room"`
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomBookingsGetter
type RoomBookingsGetter interface {
	RoomBookings(roomID int64) (*models.Room, []models.Booking, error)
}

func New(log *slog.Logger, getter RoomBookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.getRoomBookings.New"

		log = log.With(slog.String("op", op))

		roomIDStr := chi.URLParam(r, "id")
		if roomIDStr == "" {
			log.Error("room id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Err("room id is required"))
			return
		}

		roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
		if err != nil {
			log.Error("invalid room id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Err("invalid room id format"))
			return
		}

		log = log.With(slog.Int64("room_id", roomID))

		room, bookings, err := getter.RoomBookings(roomID)
		if err != nil {
			log.Error("failed to get room bookings", sl.Err(err))

			if errors.Is(err, booking.ErrRoomNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Err("Room not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Err(err.Error()))
			return
		}

		log.Info("room bookings retrieved", slog.Int("count", len(bookings)))

		render.JSON(w, r, Response{Room: room, Bookings: bookings})
	}
}
