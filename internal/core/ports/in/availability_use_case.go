package in

import (
	"context"

	"github.com/google/uuid"
	"github.com/klinikly/slot-availability-service/internal/core/domain"
	"github.com/klinikly/slot-availability-service/internal/core/json_types"
)

type AvailabilityUseCase interface {
	// Доступность врача на одну дату
	DayAvailability(ctx context.Context, doctorID uuid.UUID, date json_types.Date, appointmentTypeID uuid.UUID) (*domain.DayAvailability, error)

	// Доступность врача на диапазон дат
	RangeAvailability(ctx context.Context, doctorID uuid.UUID, from, to json_types.Date, appointmentTypeID uuid.UUID) ([]domain.DayAvailability, error)

	// Обслуживание кэша при изменении записей и расписаний
	StoreBookingSlot(ctx context.Context, doctorID uuid.UUID, booking domain.ExistingBooking) error
	InvalidateBookingSlot(ctx context.Context, doctorID uuid.UUID, booking domain.ExistingBooking) error
	InvalidateDoctorSlots(ctx context.Context, doctorID uuid.UUID) error
	InvalidateAllSlots(ctx context.Context) error
}
