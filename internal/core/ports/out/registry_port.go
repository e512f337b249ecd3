package out

import (
	"context"

	"github.com/google/uuid"
	"github.com/klinikly/slot-availability-service/internal/core/domain"
	"github.com/klinikly/slot-availability-service/internal/core/json_types"
)

// RegistryPort - реестр клиники: расписания врачей, справочник типов приема и записи
// Сервис читает снапшоты; сериализацию бронирования слота обеспечивает сам реестр
type RegistryPort interface {
	// Методы для работы с расписанием врача
	GetDoctorSchedule(ctx context.Context, doctorID uuid.UUID) (*domain.DoctorSchedule, error)

	// Методы для работы со справочником типов приема
	GetAppointmentType(ctx context.Context, appointmentTypeID uuid.UUID) (*domain.AppointmentType, error)

	// Методы для работы с записями на прием
	GetBookings(ctx context.Context, doctorID uuid.UUID, date json_types.Date) ([]domain.ExistingBooking, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
}
