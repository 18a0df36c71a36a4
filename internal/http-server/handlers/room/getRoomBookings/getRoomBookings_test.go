package getRoomBookings

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spaceBooker/internal/booking"
	"spaceBooker/internal/http-server/handlers/room/getRoomBookings/mocks"
	"spaceBooker/internal/lib/logger/handlers/slogdiscard"
	"spaceBooker/internal/models"
)

func TestGetRoomBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		roomID         string
		mockSetup      func(mock *mocks.RoomBookingsGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			roomID: "1",
			mockSetup: func(mock *mocks.RoomBookingsGetter) {
				mock.On("RoomBookings", int64(1)).Return(
					&models.Room{
						ID:   1,
						Name: "Room1",
						Spaces: []models.Space{
							{ID: 5, RoomID: 1, Name: "Space 1"},
						},
					},
					[]models.Booking{
						{ID: 1, SpaceID: 5, StartTime: "2024-07-25 10:00:00", EndTime: "2024-07-25 12:00:00"},
					},
					nil,
				)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"room": {
					"id": 1,
					"name": "Room1",
					"spaces": [{"id": 5, "room_id": 1, "name": "Space 1"}]
				},
				"bookings": [
					{"id": 1, "space_id": 5, "start_time": "2024-07-25 10:00:00", "end_time": "2024-07-25 12:00:00"}
				]
			}`,
		},
		{
			name:   "Room not found",
			roomID: "42",
			mockSetup: func(mock *mocks.RoomBookingsGetter) {
				mock.On("RoomBookings", int64(42)).Return(nil, nil, booking.ErrRoomNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Room not found"}`,
		},
		{
			name:           "Invalid room id format",
			roomID:         "abc",
			mockSetup:      func(mock *mocks.RoomBookingsGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid room id format"}`,
		},
		{
			name:   "Internal server error",
			roomID: "1",
			mockSetup: func(mock *mocks.RoomBookingsGetter) {
				mock.On("RoomBookings", int64(1)).Return(nil, nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"database error"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewRoomBookingsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/api/rooms/"+tc.roomID+"/bookings", nil)
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Get("/api/rooms/{id}/bookings", handler)

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")

			mockGetter.AssertExpectations(t)
		})
	}
}

func TestHandlerWithoutChiContext(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	mockGetter := mocks.NewRoomBookingsGetter(t)
	handler := New(logger, mockGetter)

	req, err := http.NewRequest("GET", "/", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "room id is required")
}
