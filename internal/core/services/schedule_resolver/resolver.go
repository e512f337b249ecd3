package schedule_resolver

import (
	"fmt"

	"github.com/klinikly/slot-availability-service/internal/core/domain"
	"github.com/klinikly/slot-availability-service/internal/core/json_types"
)

// Коды предупреждений конфигурации расписания
const (
	WarnDuplicateOverride       = "duplicate_override"
	WarnInvalidOverrideWindow   = "invalid_override_window"
	WarnInvalidTemplateWindow   = "invalid_template_window"
	WarnInvalidBreakWindow      = "invalid_break_window"
	WarnBreakOutsideWorkingHour = "break_outside_working_hours"
)

// Resolve вычисляет эффективное расписание врача на дату:
// замена на дату > недельный шаблон > нерабочий день
// Чистая функция, никакой зависимости от "сегодня";
// проблемы конфигурации возвращаются предупреждениями, а не ошибками
func Resolve(template domain.WeeklyScheduleTemplate, overrides []domain.ScheduleOverride, date json_types.Date) (domain.ResolvedDaySchedule, []domain.ConfigWarning) {
	var warnings []domain.ConfigWarning

	override, warnings := findOverride(overrides, date, warnings)
	if override != nil {
		return resolveFromOverride(*override, date, warnings)
	}

	return resolveFromTemplate(template, date, warnings)
}

// findOverride возвращает первую замену на дату
// Дубликаты на одну дату - ошибка конфигурации: берем первую, остальные репортим
func findOverride(overrides []domain.ScheduleOverride, date json_types.Date, warnings []domain.ConfigWarning) (*domain.ScheduleOverride, []domain.ConfigWarning) {
	var found *domain.ScheduleOverride
	for i := range overrides {
		if !overrides[i].Date.Equal(date) {
			continue
		}
		if found != nil {
			warnings = append(warnings, domain.ConfigWarning{
				Code:   WarnDuplicateOverride,
				Detail: fmt.Sprintf("more than one override for %s, using the first", date),
			})
			continue
		}
		found = &overrides[i]
	}
	return found, warnings
}

func resolveFromOverride(override domain.ScheduleOverride, date json_types.Date, warnings []domain.ConfigWarning) (domain.ResolvedDaySchedule, []domain.ConfigWarning) {
	switch override.Kind {
	case domain.OverrideKindHoliday:
		return domain.ResolvedDaySchedule{
			Date:        date,
			IsHoliday:   true,
			HolidayName: override.HolidayName,
		}, warnings

	case domain.OverrideKindCustomHours:
		if !override.Window.IsValid() {
			// Сломанная замена закрывает день, а не роняет резолв
			warnings = append(warnings, domain.ConfigWarning{
				Code:   WarnInvalidOverrideWindow,
				Detail: fmt.Sprintf("override window %s-%s for %s has end <= start", override.Window.Start, override.Window.End, date),
			})
			return domain.ResolvedDaySchedule{Date: date}, warnings
		}

		breaks, warnings := sanitizeBreaks(override.Window, override.Breaks, date, warnings)
		return domain.ResolvedDaySchedule{
			Date:         date,
			IsWorkingDay: true,
			Window:       override.Window,
			Breaks:       breaks,
		}, warnings

	default:
		// closed и неизвестные виды трактуем как нерабочий день
		return domain.ResolvedDaySchedule{Date: date}, warnings
	}
}

func resolveFromTemplate(template domain.WeeklyScheduleTemplate, date json_types.Date, warnings []domain.ConfigWarning) (domain.ResolvedDaySchedule, []domain.ConfigWarning) {
	day, exists := template.Days[domain.WeekdayMap[date.Weekday()]]
	if !exists || day.Window.IsZero() {
		return domain.ResolvedDaySchedule{Date: date}, warnings
	}

	if !day.Window.IsValid() {
		warnings = append(warnings, domain.ConfigWarning{
			Code:   WarnInvalidTemplateWindow,
			Detail: fmt.Sprintf("template window %s-%s for %s has end <= start", day.Window.Start, day.Window.End, domain.WeekdayMap[date.Weekday()]),
		})
		return domain.ResolvedDaySchedule{Date: date}, warnings
	}

	breaks, warnings := sanitizeBreaks(day.Window, day.Breaks, date, warnings)
	return domain.ResolvedDaySchedule{
		Date:         date,
		IsWorkingDay: true,
		Window:       day.Window,
		Breaks:       breaks,
	}, warnings
}

// sanitizeBreaks отбрасывает перерывы вне рабочего окна и перерывы с end <= start
// Частично пересекающие окно перерывы оставляем - проверка пересечений их учтет
func sanitizeBreaks(window domain.WorkingWindow, breaks []domain.BreakWindow, date json_types.Date, warnings []domain.ConfigWarning) ([]domain.BreakWindow, []domain.ConfigWarning) {
	kept := make([]domain.BreakWindow, 0, len(breaks))
	for _, b := range breaks {
		if b.End <= b.Start {
			warnings = append(warnings, domain.ConfigWarning{
				Code:   WarnInvalidBreakWindow,
				Detail: fmt.Sprintf("break %q %s-%s for %s has end <= start", b.Label, b.Start, b.End, date),
			})
			continue
		}
		if b.End <= window.Start || b.Start >= window.End {
			warnings = append(warnings, domain.ConfigWarning{
				Code:   WarnBreakOutsideWorkingHour,
				Detail: fmt.Sprintf("break %q %s-%s for %s is outside working hours %s-%s", b.Label, b.Start, b.End, date, window.Start, window.End),
			})
			continue
		}
		kept = append(kept, b)
	}
	return kept, warnings
}
