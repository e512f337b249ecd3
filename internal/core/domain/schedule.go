package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/klinikly/slot-availability-service/internal/core/json_types"
)

type Weekday string

const (
	WeekdayMon Weekday = "mon"
	WeekdayTue Weekday = "tue"
	WeekdayWed Weekday = "wed"
	WeekdayThu Weekday = "thu"
	WeekdayFri Weekday = "fri"
	WeekdaySat Weekday = "sat"
	WeekdaySun Weekday = "sun"
)

var WeekdayMap = map[time.Weekday]Weekday{
	time.Monday:    WeekdayMon,
	time.Tuesday:   WeekdayTue,
	time.Wednesday: WeekdayWed,
	time.Thursday:  WeekdayThu,
	time.Friday:    WeekdayFri,
	time.Saturday:  WeekdaySat,
	time.Sunday:    WeekdaySun,
}

// WorkingWindow - рабочее окно дня, полуоткрытый интервал [Start, End)
type WorkingWindow struct {
	Start json_types.ClockMinute `json:"start"`
	End   json_types.ClockMinute `json:"end"`
}

func (w WorkingWindow) IsZero() bool {
	return w.Start == 0 && w.End == 0
}

func (w WorkingWindow) IsValid() bool {
	return w.End > w.Start
}

type BreakWindow struct {
	Start json_types.ClockMinute `json:"start"`
	End   json_types.ClockMinute `json:"end"`
	Label string                 `json:"label,omitempty"`
}

// DayTemplate - шаблон одного дня недели
// Нулевое окно означает нерабочий день
type DayTemplate struct {
	Window WorkingWindow `json:"window"`
	Breaks []BreakWindow `json:"breaks,omitempty"`
}

type WeeklyScheduleTemplate struct {
	Days map[Weekday]DayTemplate `json:"days"`
}

type OverrideKind string

const (
	OverrideKindHoliday     OverrideKind = "holiday"
	OverrideKindCustomHours OverrideKind = "custom-hours"
	OverrideKindClosed      OverrideKind = "closed"
)

// ScheduleOverride - замена расписания на конкретную дату
// Для своей даты полностью вытесняет недельный шаблон
type ScheduleOverride struct {
	Date        json_types.Date `json:"date"`
	Kind        OverrideKind    `json:"kind"`
	HolidayName string          `json:"holidayName,omitempty"`
	Window      WorkingWindow   `json:"window,omitempty"`
	Breaks      []BreakWindow   `json:"breaks,omitempty"`
}

// ResolvedDaySchedule - результат резолва расписания на дату
// Инвариант: если IsWorkingDay == false, то Window нулевое и Breaks пустые
type ResolvedDaySchedule struct {
	Date         json_types.Date `json:"date"`
	IsWorkingDay bool            `json:"isWorkingDay"`
	IsHoliday    bool            `json:"isHoliday"`
	HolidayName  string          `json:"holidayName,omitempty"`
	Window       WorkingWindow   `json:"workingHours"`
	Breaks       []BreakWindow   `json:"breaks"`
}

// DoctorSchedule - конфигурация расписания врача из реестра клиники
type DoctorSchedule struct {
	DoctorID  uuid.UUID              `json:"doctorId"`
	Template  WeeklyScheduleTemplate `json:"template"`
	Overrides []ScheduleOverride     `json:"overrides"`
}

// ConfigWarning - нефатальная проблема конфигурации расписания
// Резолвер не падает на таких - сломанный календарь хуже пустого дня
type ConfigWarning struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}
