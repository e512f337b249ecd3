package out

import (
	"context"

	"github.com/google/uuid"
	"github.com/klinikly/slot-availability-service/internal/core/domain"
	"github.com/klinikly/slot-availability-service/internal/core/json_types"
)

// CachePort - кэш рассчитанных слотов
// Ключ - (врач, дата, тип приема): требуемая длительность влияет на набор слотов
type CachePort interface {
	GetDaySlots(ctx context.Context, doctorID uuid.UUID, date json_types.Date, appointmentTypeID uuid.UUID) ([]domain.TimeSlot, bool)
	StoreDaySlots(ctx context.Context, doctorID uuid.UUID, date json_types.Date, appointmentTypeID uuid.UUID, slots []domain.TimeSlot)

	InvalidateDoctorDay(ctx context.Context, doctorID uuid.UUID, date json_types.Date)
	InvalidateDoctor(ctx context.Context, doctorID uuid.UUID)
	InvalidateAll(ctx context.Context)
}
