package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	bookingRepo "salonbook/database/repository/booking"
	"salonbook/handlers"
	"salonbook/models"
	"salonbook/routes"
	"salonbook/services/booking"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Stub implementations

type stubBookingService struct {
	schedule   *models.DaySchedule
	bookResult *models.Booking
	bookErr    error
	getResult  *models.Booking
	getErr     error
	getCalls   int
}

func (s *stubBookingService) DaySchedule(date string) (*models.DaySchedule, error) {
	if s.schedule == nil {
		return nil, booking.NewInvalidRequestError("invalid date " + date)
	}
	return s.schedule, nil
}

func (s *stubBookingService) Book(_ context.Context, _ models.BookingRequest) (*models.Booking, error) {
	if s.bookErr != nil {
		return nil, s.bookErr
	}
	return s.bookResult, nil
}

func (s *stubBookingService) GetBooking(_ context.Context, _ string) (*models.Booking, error) {
	s.getCalls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.getResult, nil
}

type stubPayments struct {
	secret    string
	intentErr error
}

func (s *stubPayments) Charge(_ context.Context, _ models.PaymentRequest) (*models.Invoice, error) {
	return nil, errors.New("not used")
}

func (s *stubPayments) Refund(_ context.Context, _ string) error { return nil }

func (s *stubPayments) CreateIntent(_ context.Context, _ int64, _ string) (string, error) {
	return s.secret, s.intentErr
}

func newTestRouter(t *testing.T, svc *stubBookingService, payments *stubPayments) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	handler := handlers.NewBookingHandler(svc, payments, cache, zap.NewNop())
	r := gin.New()
	routes.RegisterBookingRoutes(r, handler)
	return r
}

func TestGetDayScheduleMissingDate(t *testing.T) {
	r := newTestRouter(t, &stubBookingService{}, &stubPayments{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/booking/slots", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDaySchedule(t *testing.T) {
	svc := &stubBookingService{
		schedule: &models.DaySchedule{
			Date: "2024-06-01",
			Slots: []models.SlotStatus{
				{Slot: "9:00", Booked: true},
				{Slot: "10:00", Booked: false},
			},
		},
	}
	r := newTestRouter(t, svc, &stubPayments{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/booking/slots?date=2024-06-01", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got models.DaySchedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, *svc.schedule, got)
}

func TestSubmitBookingSuccess(t *testing.T) {
	svc := &stubBookingService{
		bookResult: &models.Booking{ID: "b1", Date: "2024-06-01", Time: "9:00"},
	}
	r := newTestRouter(t, svc, &stubPayments{})

	body := `{"date":"2024-06-01","time":"9:00","name":"Ada","phone":"+15550100","email":"ada@example.com","service":"haircut"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"id":"b1"`)
}

func TestSubmitBookingOutcomeMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid request", booking.NewInvalidRequestError("name is required"), http.StatusBadRequest},
		{"payment declined", booking.NewPaymentDeclinedError("card declined"), http.StatusPaymentRequired},
		{"payment service error", booking.NewPaymentServiceError("processor down"), http.StatusPaymentRequired},
		{"slot taken", booking.NewSlotTakenError("2024-06-01", "9:00"), http.StatusConflict},
		{"persistence failure", booking.NewPersistenceError("db down"), http.StatusServiceUnavailable},
	}

	seen := map[string]bool{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(t, &stubBookingService{bookErr: tc.err}, &stubPayments{})

			body := `{"date":"2024-06-01","time":"9:00","name":"Ada","phone":"x","email":"a@b.c","service":"haircut"}`
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/booking", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			require.Equal(t, tc.wantStatus, w.Code)

			// Every outcome carries its own distinct message.
			var resp struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.NotEmpty(t, resp.Message)
			require.False(t, seen[resp.Message], "outcome messages must be distinct")
			seen[resp.Message] = true
		})
	}
}

func TestGetBookingServesFromCache(t *testing.T) {
	svc := &stubBookingService{
		getResult: &models.Booking{ID: "b1", Date: "2024-06-01", Time: "9:00", Name: "Ada"},
	}
	r := newTestRouter(t, svc, &stubPayments{})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/booking/id/b1", nil))
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"id":"b1"`)
	}

	// Repeat reads are served from Redis; the repo sees a single fetch.
	require.Equal(t, 1, svc.getCalls)
}

func TestGetBookingNotFound(t *testing.T) {
	r := newTestRouter(t, &stubBookingService{getErr: bookingRepo.ErrNotFound}, &stubPayments{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/booking/id/missing", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetServices(t *testing.T) {
	r := newTestRouter(t, &stubBookingService{}, &stubPayments{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/services", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Services []models.ServiceInfo `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Services, 5)
}

func TestCreatePaymentIntent(t *testing.T) {
	r := newTestRouter(t, &stubBookingService{}, &stubPayments{secret: "cs_test_123"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/intent", strings.NewReader(`{"service":"haircut"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "cs_test_123")
}

func TestCreatePaymentIntentUnknownService(t *testing.T) {
	r := newTestRouter(t, &stubBookingService{}, &stubPayments{secret: "cs_test_123"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/intent", strings.NewReader(`{"service":"manicure"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePaymentIntentServiceDown(t *testing.T) {
	r := newTestRouter(t, &stubBookingService{}, &stubPayments{intentErr: errors.New("stripe unreachable")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/intent", strings.NewReader(`{"service":"haircut"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)
}
