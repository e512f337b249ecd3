package availability_service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/klinikly/slot-availability-service/internal/config"
	"github.com/klinikly/slot-availability-service/internal/core/domain"
	"github.com/klinikly/slot-availability-service/internal/core/json_types"
	"github.com/klinikly/slot-availability-service/internal/core/ports/out"
	"github.com/klinikly/slot-availability-service/internal/core/services/schedule_resolver"
	"github.com/klinikly/slot-availability-service/internal/core/services/slot_engine"
)

// AvailabilityService связывает чистое ядро с портами:
// реестр клиники, кэш слотов и логгер
type AvailabilityService struct {
	registryPort out.RegistryPort
	cachePort    out.CachePort
	logger       out.LoggerPort
	cfg          *config.Config
	now          func() time.Time
}

func NewAvailabilityService(
	registryPort out.RegistryPort,
	cachePort out.CachePort,
	logger out.LoggerPort,
	cfg *config.Config,
	now func() time.Time,
) *AvailabilityService {
	if now == nil {
		now = time.Now
	}
	return &AvailabilityService{
		registryPort: registryPort,
		cachePort:    cachePort,
		logger:       logger.WithModule("AvailabilityService"),
		cfg:          cfg,
		now:          now,
	}
}

func (s *AvailabilityService) DayAvailability(ctx context.Context, doctorID uuid.UUID, date json_types.Date, appointmentTypeID uuid.UUID) (*domain.DayAvailability, error) {
	s.logger.Info("slots.day.started", out.LogFields{
		"doctorId":          doctorID,
		"date":              date,
		"appointmentTypeId": appointmentTypeID,
	})

	appointmentType, err := s.registryPort.GetAppointmentType(ctx, appointmentTypeID)
	if err != nil {
		s.logger.Error("slots.day.appointment_type.fetch_failed", out.LogFields{
			"appointmentTypeId": appointmentTypeID,
			"error":             err.Error(),
		})
		return nil, fmt.Errorf("slots.day.appointment_type.fetch_failed: %w", err)
	}

	schedule, err := s.registryPort.GetDoctorSchedule(ctx, doctorID)
	if err != nil {
		s.logger.Error("slots.day.schedule.fetch_failed", out.LogFields{
			"doctorId": doctorID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("slots.day.schedule.fetch_failed: %w", err)
	}

	resolved, warnings := schedule_resolver.Resolve(schedule.Template, schedule.Overrides, date)
	s.logWarnings(doctorID, warnings)

	availability := &domain.DayAvailability{
		DoctorID:     doctorID,
		Date:         date,
		IsWorkingDay: resolved.IsWorkingDay,
		IsHoliday:    resolved.IsHoliday,
		HolidayName:  resolved.HolidayName,
	}

	// Проверяем кэш только если он включен
	if s.cacheEnabled() {
		if slots, exists := s.cachePort.GetDaySlots(ctx, doctorID, date, appointmentTypeID); exists {
			s.logger.Debug("slots.day.cache.hit", out.LogFields{
				"doctorId":   doctorID,
				"date":       date,
				"slotsCount": len(slots),
			})
			availability.Slots = slots
			return availability, nil
		}
		s.logger.Debug("slots.day.cache.miss", out.LogFields{
			"doctorId": doctorID,
			"date":     date,
		})
	}

	bookings, err := s.registryPort.GetBookings(ctx, doctorID, date)
	if err != nil {
		s.logger.Error("slots.day.bookings.fetch_failed", out.LogFields{
			"doctorId": doctorID,
			"date":     date,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("slots.day.bookings.fetch_failed: %w", err)
	}

	slots, err := slot_engine.GenerateSlots(resolved, s.cfg.Slots.GranularityMinutes, appointmentType.DurationMinutes, bookings)
	if err != nil {
		s.logger.Error("slots.day.generate_failed", out.LogFields{
			"doctorId": doctorID,
			"date":     date,
			"error":    err.Error(),
		})
		return nil, err
	}

	if s.cacheEnabled() {
		s.cachePort.StoreDaySlots(ctx, doctorID, date, appointmentTypeID, slots)
	}

	availability.Slots = slots
	return availability, nil
}

func (s *AvailabilityService) cacheEnabled() bool {
	return s.cachePort != nil && s.cfg.Cache.Enabled
}

func (s *AvailabilityService) logWarnings(doctorID uuid.UUID, warnings []domain.ConfigWarning) {
	for _, warning := range warnings {
		s.logger.Warn("schedule.config."+warning.Code, out.LogFields{
			"doctorId": doctorID,
			"detail":   warning.Detail,
		})
	}
}
