package in

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/klinikly/slot-availability-service/internal/core/domain"
)

type CancellationUseCase interface {
	// Оценка политики отмены/переноса записи на момент now
	// now всегда передается явно, ядро не читает системные часы
	EvaluateCancellation(ctx context.Context, bookingID uuid.UUID, now time.Time) (*domain.CancellationAssessment, error)
}
