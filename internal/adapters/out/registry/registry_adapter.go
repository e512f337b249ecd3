package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/klinikly/slot-availability-service/internal/config"
	"github.com/klinikly/slot-availability-service/internal/core/domain"
	"github.com/klinikly/slot-availability-service/internal/core/json_types"
	"github.com/klinikly/slot-availability-service/internal/core/ports/out"
)

// RegistryAdapter - HTTP-клиент реестра клиники
// Реестр владеет расписаниями, справочником типов приема и записями;
// здесь только чтение снапшотов
type RegistryAdapter struct {
	client   *http.Client
	baseURL  string
	username string
	password string
	logger   out.LoggerPort
}

func NewRegistryAdapter(cfg *config.Config, logger out.LoggerPort) *RegistryAdapter {
	return &RegistryAdapter{
		client:   &http.Client{Timeout: 10 * time.Second},
		baseURL:  cfg.Registry.URL,
		username: cfg.Registry.Username,
		password: cfg.Registry.Password,
		logger:   logger,
	}
}

func (a *RegistryAdapter) GetDoctorSchedule(ctx context.Context, doctorID uuid.UUID) (*domain.DoctorSchedule, error) {
	url := fmt.Sprintf("%s/api/doctors/%s/schedule", a.baseURL, doctorID)

	var schedule domain.DoctorSchedule
	if err := a.getJSON(ctx, "registry.doctor_schedule", url, &schedule); err != nil {
		return nil, err
	}

	a.logger.Debug("registry.doctor_schedule.fetch_success", out.LogFields{
		"doctorId":       doctorID,
		"overridesCount": len(schedule.Overrides),
	})
	return &schedule, nil
}

func (a *RegistryAdapter) GetAppointmentType(ctx context.Context, appointmentTypeID uuid.UUID) (*domain.AppointmentType, error) {
	url := fmt.Sprintf("%s/api/appointment-types/%s", a.baseURL, appointmentTypeID)

	var appointmentType domain.AppointmentType
	if err := a.getJSON(ctx, "registry.appointment_type", url, &appointmentType); err != nil {
		return nil, err
	}

	return &appointmentType, nil
}

func (a *RegistryAdapter) GetBookings(ctx context.Context, doctorID uuid.UUID, date json_types.Date) ([]domain.ExistingBooking, error) {
	url := fmt.Sprintf("%s/api/doctors/%s/bookings?date=%s", a.baseURL, doctorID, date)

	var response struct {
		Bookings []domain.ExistingBooking `json:"bookings"`
	}
	if err := a.getJSON(ctx, "registry.bookings", url, &response); err != nil {
		return nil, err
	}

	a.logger.Debug("registry.bookings.fetch_success", out.LogFields{
		"doctorId":      doctorID,
		"date":          date,
		"bookingsCount": len(response.Bookings),
	})
	return response.Bookings, nil
}

func (a *RegistryAdapter) GetBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	url := fmt.Sprintf("%s/api/bookings/%s", a.baseURL, bookingID)

	var booking domain.Booking
	if err := a.getJSON(ctx, "registry.booking", url, &booking); err != nil {
		return nil, err
	}

	return &booking, nil
}

func (a *RegistryAdapter) getJSON(ctx context.Context, event, url string, target interface{}) error {
	a.logger.Info(event+".fetch", out.LogFields{
		"url": url,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		a.logger.Error(event+".fetch_failed", out.LogFields{
			"url":   url,
			"error": err.Error(),
		})
		return err
	}

	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error(event+".fetch_failed", out.LogFields{
			"url":   url,
			"error": err.Error(),
		})
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		a.logger.Error(event+".fetch_failed", out.LogFields{
			"url":    url,
			"status": resp.StatusCode,
		})
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		a.logger.Error(event+".decode_response_failed", out.LogFields{
			"url":   url,
			"error": err.Error(),
		})
		return err
	}

	return nil
}
