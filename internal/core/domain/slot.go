package domain

import (
	"github.com/google/uuid"
	"github.com/klinikly/slot-availability-service/internal/core/json_types"
)

// TimeSlot - предлагаемый пациенту слот
// Полуоткрытый интервал [Start, End), слоты одного дня не пересекаются
type TimeSlot struct {
	Start           json_types.ClockMinute `json:"startMinute"`
	End             json_types.ClockMinute `json:"endMinute"`
	DurationMinutes int                    `json:"durationMinutes"`
	Available       bool                   `json:"available"`
}

// DayAvailability - доступность врача на одну дату
type DayAvailability struct {
	DoctorID     uuid.UUID       `json:"doctorId"`
	Date         json_types.Date `json:"date"`
	IsWorkingDay bool            `json:"isWorkingDay"`
	IsHoliday    bool            `json:"isHoliday"`
	HolidayName  string          `json:"holidayName,omitempty"`
	Slots        []TimeSlot      `json:"slots"`
}
