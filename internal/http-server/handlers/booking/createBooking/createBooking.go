package createBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"spaceBooker/internal/booking"
	"spaceBooker/internal/lib/api/response"
	"spaceBooker/internal/lib/api/validate"
	"spaceBooker/internal/lib/logger/sl"
	"spaceBooker/internal/models"
)

type Request struct {
	SpaceID   *int64 `json:"space_id" validate:"required"`
	StartTime string `json:"start_time" validate:"required,datetime=2006-01-02 15:04:05"`
	EndTime   string `json:"end_time" validate:"required,datetime=2006-01-02 15:04:05"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(spaceID int64, startTime, endTime string) (models.Booking, error)
}

func New(log *slog.Logger, creator BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Validation(validate.DecodeError(err)))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		fieldErrs := validate.Struct(req, "")
		validate.Window(fieldErrs, "", req.StartTime, req.EndTime)

		if len(fieldErrs) > 0 {
			log.Error("invalid request", slog.Any("errors", fieldErrs))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Validation(fieldErrs))
			return
		}

		created, err := creator.CreateBooking(*req.SpaceID, req.StartTime, req.EndTime)
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrSpaceNotFound):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Err("Space not found"))
			case errors.Is(err, booking.ErrSlotTaken):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Msg("The selected time slot is already booked."))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Err(err.Error()))
			}
			return
		}

		log.Info("booking created", slog.Int64("booking_id", created.ID))

		render.JSON(w, r, created)
	}
}
