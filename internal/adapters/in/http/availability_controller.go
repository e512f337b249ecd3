package http

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/klinikly/slot-availability-service/internal/config"
	"github.com/klinikly/slot-availability-service/internal/core/domain"
	"github.com/klinikly/slot-availability-service/internal/core/json_types"
	"github.com/klinikly/slot-availability-service/internal/core/ports/in"
)

type AvailabilityController struct {
	availability in.AvailabilityUseCase
	cancellation in.CancellationUseCase
	cfg          *config.Config
}

func NewAvailabilityController(availability in.AvailabilityUseCase, cancellation in.CancellationUseCase, cfg *config.Config) *AvailabilityController {
	return &AvailabilityController{
		availability: availability,
		cancellation: cancellation,
		cfg:          cfg,
	}
}

func (c *AvailabilityController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(c.basicAuth())
	{
		api.GET("/doctors/:doctorId/availability", c.dayAvailability)
		api.GET("/doctors/:doctorId/availability/range", c.rangeAvailability)
		api.POST("/bookings/:bookingId/cancellation/evaluate", c.evaluateCancellation)
	}
}

func (c *AvailabilityController) dayAvailability(ctx *gin.Context) {
	doctorID, err := uuid.Parse(ctx.Param("doctorId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID format"})
		return
	}

	date, err := json_types.ParseDate(ctx.Query("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected 2006-01-02"})
		return
	}

	appointmentTypeID, err := uuid.Parse(ctx.Query("appointmentTypeId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment type ID format"})
		return
	}

	availability, err := c.availability.DayAvailability(ctx.Request.Context(), doctorID, date, appointmentTypeID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, availability)
}

func (c *AvailabilityController) rangeAvailability(ctx *gin.Context) {
	doctorID, err := uuid.Parse(ctx.Param("doctorId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor ID format"})
		return
	}

	from, err := json_types.ParseDate(ctx.Query("from"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date format, expected 2006-01-02"})
		return
	}

	to, err := json_types.ParseDate(ctx.Query("to"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date format, expected 2006-01-02"})
		return
	}

	appointmentTypeID, err := uuid.Parse(ctx.Query("appointmentTypeId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment type ID format"})
		return
	}

	days, err := c.availability.RangeAvailability(ctx.Request.Context(), doctorID, from, to, appointmentTypeID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"doctorId": doctorID,
		"days":     days,
	})
}

type EvaluateCancellationRequest struct {
	// Момент оценки; по умолчанию текущее время сервиса
	// Явный now нужен экранам поддержки и тестам
	Now string `json:"now"`
}

func (c *AvailabilityController) evaluateCancellation(ctx *gin.Context) {
	bookingID, err := uuid.Parse(ctx.Param("bookingId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	var req EvaluateCancellationRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	var now time.Time
	if req.Now != "" {
		now, err = time.Parse(time.RFC3339, req.Now)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid now format, expected RFC3339"})
			return
		}
	}

	assessment, err := c.cancellation.EvaluateCancellation(ctx.Request.Context(), bookingID, now)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"bookingId":  bookingID,
		"assessment": assessment,
	})
}

func respondError(ctx *gin.Context, err error) {
	switch {
	case domain.IsInvalidConfiguration(err):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (c *AvailabilityController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
