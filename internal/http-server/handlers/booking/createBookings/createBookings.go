package createBookings

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"spaceBooker/internal/booking"
	"spaceBooker/internal/lib/api/response"
	"spaceBooker/internal/lib/api/validate"
	"spaceBooker/internal/lib/logger/sl"
)

type BookingItem struct {
	RoomID    *int64 `json:"room_id" validate:"required"`
	StartTime string `json:"start_time" validate:"required,datetime=2006-01-02 15:04:05"`
	EndTime   string `json:"end_time" validate:"required,datetime=2006-01-02 15:04:05"`
}

// RejectedItem echoes the failed request. A conflict is reported under
// "message", the other reasons under "error".
type RejectedItem struct {
	Booking booking.BatchRequest `json:"booking"`
	Error   string               `json:"error,omitempty"`
	Message string               `json:"message,omitempty"`
}

type Response struct {
	Message string                       `json:"message"`
	Errors  []RejectedItem               `json:"error"`
	Data    []booking.ProvisionalBooking `json:"data"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsCreator
type BookingsCreator interface {
	CreateBookings(requests []booking.BatchRequest) (booking.BatchResult, error)
}

func New(log *slog.Logger, creator BookingsCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBookings.New"

		log = log.With(slog.String("op", op))

		var items []BookingItem

		err := render.DecodeJSON(r.Body, &items)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Validation(validate.DecodeError(err)))
			return
		}

		log.Info("request body decoded", slog.Int("items", len(items)))

		fieldErrs := response.FieldErrors{}
		for i, item := range items {
			prefix := strconv.Itoa(i) + "."
			fieldErrs.Merge(validate.Struct(item, prefix))
			validate.Window(fieldErrs, prefix, item.StartTime, item.EndTime)
		}

		if len(fieldErrs) > 0 {
			log.Error("invalid request", slog.Any("errors", fieldErrs))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Validation(fieldErrs))
			return
		}

		requests := make([]booking.BatchRequest, 0, len(items))
		for _, item := range items {
			requests = append(requests, booking.BatchRequest{
				RoomID:    *item.RoomID,
				StartTime: item.StartTime,
				EndTime:   item.EndTime,
			})
		}

		result, err := creator.CreateBookings(requests)
		if err != nil {
			log.Error("failed to process batch", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Err(err.Error()))
			return
		}

		log.Info("batch processed",
			slog.Int("created", len(result.Created)),
			slog.Int("rejected", len(result.Rejected)),
		)

		render.JSON(w, r, buildResponse(result))
	}
}

func buildResponse(result booking.BatchResult) Response {
	rejected := make([]RejectedItem, 0, len(result.Rejected))
	for _, rej := range result.Rejected {
		item := RejectedItem{Booking: rej.Request}
		if errors.Is(rej.Err, booking.ErrSlotTaken) {
			item.Message = rej.Err.Error()
		} else {
			item.Error = rej.Err.Error()
		}
		rejected = append(rejected, item)
	}

	return Response{
		Message: "Bookings created successfully.",
		Errors:  rejected,
		Data:    result.Created,
	}
}
