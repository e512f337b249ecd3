package domain

import (
	"github.com/google/uuid"
	"github.com/klinikly/slot-availability-service/internal/core/json_types"
)

// AppointmentType - справочный тип приема, неизменяемые данные
type AppointmentType struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"durationMinutes"`
	PriceMin        int64     `json:"priceMin"`
	PriceMax        int64     `json:"priceMax"`
	AllowsOnline    bool      `json:"allowsOnline"`
	IsEmergency     bool      `json:"isEmergency"`
}

// ExistingBooking - подтвержденная запись, занимающая интервал дня
// Движок слотов не знает статусов записи - только занятый интервал
type ExistingBooking struct {
	ID    uuid.UUID              `json:"id"`
	Date  json_types.Date        `json:"date"`
	Start json_types.ClockMinute `json:"startMinute"`
	End   json_types.ClockMinute `json:"endMinute"`
}
