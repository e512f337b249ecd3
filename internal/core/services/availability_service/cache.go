package availability_service

import (
	"context"

	"github.com/google/uuid"
	"github.com/klinikly/slot-availability-service/internal/core/domain"
	"github.com/klinikly/slot-availability-service/internal/core/ports/out"
)

// Обслуживание кэша по событиям из RabbitMQ
//
// Кэш не патчится на месте: из-за склейки слотов по длительности одна запись
// меняет доступность нескольких кандидатов, поэтому день всегда пересчитывается
// при следующем чтении

func (s *AvailabilityService) StoreBookingSlot(ctx context.Context, doctorID uuid.UUID, booking domain.ExistingBooking) error {
	if !s.cacheEnabled() {
		return nil
	}

	s.logger.Info("cache.booking.stored", out.LogFields{
		"doctorId":  doctorID,
		"bookingId": booking.ID,
		"date":      booking.Date,
	})

	s.cachePort.InvalidateDoctorDay(ctx, doctorID, booking.Date)
	return nil
}

func (s *AvailabilityService) InvalidateBookingSlot(ctx context.Context, doctorID uuid.UUID, booking domain.ExistingBooking) error {
	if !s.cacheEnabled() {
		return nil
	}

	s.logger.Info("cache.booking.invalidated", out.LogFields{
		"doctorId":  doctorID,
		"bookingId": booking.ID,
		"date":      booking.Date,
	})

	s.cachePort.InvalidateDoctorDay(ctx, doctorID, booking.Date)
	return nil
}

func (s *AvailabilityService) InvalidateDoctorSlots(ctx context.Context, doctorID uuid.UUID) error {
	if !s.cacheEnabled() {
		return nil
	}

	s.logger.Info("cache.doctor.invalidated", out.LogFields{
		"doctorId": doctorID,
	})

	s.cachePort.InvalidateDoctor(ctx, doctorID)
	return nil
}

func (s *AvailabilityService) InvalidateAllSlots(ctx context.Context) error {
	if !s.cacheEnabled() {
		return nil
	}

	s.logger.Info("cache.all.invalidated", out.LogFields{})

	s.cachePort.InvalidateAll(ctx)
	return nil
}
