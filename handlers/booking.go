package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"salonbook/config"
	bookingRepo "salonbook/database/repository/booking"
	"salonbook/models"
	"salonbook/services/booking"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// bookingCacheTTL bounds how long a committed booking stays in the read
// cache. Bookings are immutable, so the TTL only limits memory, not
// staleness.
const bookingCacheTTL = 10 * time.Minute

type BookingHandler struct {
	Service  booking.BookingService
	Payments booking.PaymentProcessor
	Cache    *redis.Client
	Logger   *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, payments booking.PaymentProcessor, cache *redis.Client, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Payments: payments, Cache: cache, Logger: logger}
}

// GetDaySchedule returns the ordered slot classification for a date.
func (h *BookingHandler) GetDaySchedule(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date", "provide ?date=yyyy-MM-dd")
		return
	}

	schedule, err := h.Service.DaySchedule(date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// SubmitBooking runs one booking attempt and maps each outcome to its own
// status and message.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	confirmed, err := h.Service.Book(c.Request.Context(), req)
	if err != nil {
		status, message := outcomeStatus(err)
		utils.JSONError(c, status, message, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": confirmed})
}

// GetBooking fetches a committed booking, serving repeat reads from Redis.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	cacheKey := "booking:" + id

	if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
		var b models.Booking
		if err := json.Unmarshal([]byte(cached), &b); err == nil {
			c.JSON(http.StatusOK, gin.H{"booking": b})
			return
		}
	}

	b, err := h.Service.GetBooking(ctx, id)
	if err == bookingRepo.ErrNotFound {
		utils.JSONError(c, http.StatusNotFound, "Booking not found", id)
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch booking", err.Error())
		return
	}

	if data, err := json.Marshal(b); err == nil {
		if err := h.Cache.Set(context.Background(), cacheKey, data, bookingCacheTTL).Err(); err != nil {
			h.Logger.Warn("Failed to cache booking", zap.String("id", id), zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// GetServices returns the fixed service catalog with prices.
func (h *BookingHandler) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": models.AllServices()})
}

// CreatePaymentIntent prepares a client-side card payment for a service and
// returns the client secret.
func (h *BookingHandler) CreatePaymentIntent(c *gin.Context) {
	var input struct {
		Service models.ServiceType `json:"service"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	price, err := input.Service.Price()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Unknown service", err.Error())
		return
	}

	secret, err := h.Payments.CreateIntent(c.Request.Context(), int64(price*100), config.AppConfig.Currency)
	if err != nil {
		h.Logger.Error("Failed to create payment intent", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Payment service unavailable", "could not start payment, please try again")
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// outcomeStatus maps a booking outcome to its HTTP status and user message.
func outcomeStatus(err error) (int, string) {
	switch booking.ErrCode(err) {
	case booking.CodeInvalidRequest:
		return http.StatusBadRequest, "Your booking details are incomplete"
	case booking.CodePaymentDeclined:
		return http.StatusPaymentRequired, "Your payment was declined"
	case booking.CodePaymentService:
		return http.StatusPaymentRequired, "Payment could not be processed"
	case booking.CodeSlotTaken:
		return http.StatusConflict, "That time slot was just booked"
	case booking.CodePersistence:
		return http.StatusServiceUnavailable, "Booking could not be saved"
	default:
		return http.StatusInternalServerError, "Booking failed"
	}
}
