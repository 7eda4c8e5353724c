package getAllBookings

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"tripBooker/internal/http-server/handlers/booking/getAllBookings/mocks"
	"tripBooker/internal/lib/logger/handlers/slogdiscard"
	"tripBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetAllBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testBookings := []models.Booking{
		{ID: "booking-1", TripID: 1, TripName: "Mountain Adventure", Date: "2024-05-01", Status: "confirmed"},
		{ID: "booking-3", TripID: 2, TripName: "Beach Paradise", Date: "2024-05-02", Status: "cancelled"},
	}

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.BookingsGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success with bookings",
			mockSetup: func(m *mocks.BookingsGetter) {
				m.On("GetAllBookings", mock.Anything).Return(testBookings, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var bookings []models.Booking
				require.NoError(t, json.Unmarshal([]byte(body), &bookings))

				require.Len(t, bookings, 2)
				assert.Equal(t, "booking-1", bookings[0].ID)
				assert.Equal(t, "booking-3", bookings[1].ID)
				assert.Equal(t, "cancelled", bookings[1].Status)
			},
		},
		{
			name: "Empty ledger",
			mockSetup: func(m *mocks.BookingsGetter) {
				m.On("GetAllBookings", mock.Anything).Return([]models.Booking{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "Nil slice renders empty array",
			mockSetup: func(m *mocks.BookingsGetter) {
				m.On("GetAllBookings", mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "Storage failure",
			mockSetup: func(m *mocks.BookingsGetter) {
				m.On("GetAllBookings", mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to get bookings"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewBookingsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
