package availability_service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/klinikly/slot-availability-service/internal/core/domain"
	"github.com/klinikly/slot-availability-service/internal/core/ports/out"
	"github.com/klinikly/slot-availability-service/internal/core/services/cancellation_policy"
)

// EvaluateCancellation оценивает политику отмены записи
// Нулевой now подменяется инжектированными часами сервиса,
// чистый оценщик системное время не читает
func (s *AvailabilityService) EvaluateCancellation(ctx context.Context, bookingID uuid.UUID, now time.Time) (*domain.CancellationAssessment, error) {
	if now.IsZero() {
		now = s.now()
	}

	s.logger.Info("cancellation.evaluate.started", out.LogFields{
		"bookingId": bookingID,
		"now":       now,
	})

	booking, err := s.registryPort.GetBooking(ctx, bookingID)
	if err != nil {
		s.logger.Error("cancellation.evaluate.booking.fetch_failed", out.LogFields{
			"bookingId": bookingID,
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("cancellation.evaluate.booking.fetch_failed: %w", err)
	}

	assessment, err := cancellation_policy.Evaluate(*booking, booking.Policy, now)
	if err != nil {
		s.logger.Error("cancellation.evaluate.failed", out.LogFields{
			"bookingId": bookingID,
			"error":     err.Error(),
		})
		return nil, err
	}

	s.logger.Debug("cancellation.evaluate.finished", out.LogFields{
		"bookingId": bookingID,
		"allowed":   assessment.Allowed,
		"feeAmount": assessment.FeeAmount,
	})

	return &assessment, nil
}
