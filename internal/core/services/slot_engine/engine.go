package slot_engine

import (
	"github.com/klinikly/slot-availability-service/internal/core/domain"
	"github.com/klinikly/slot-availability-service/internal/core/json_types"
)

// GenerateSlots разбивает рабочее окно дня на слоты с шагом granularityMinutes
// и помечает недоступными слоты, пересекающие перерывы или занятые интервалы
//
// Если requiredDurationMinutes больше шага, движок склеивает
// ceil(required/granularity) последовательных свободных единиц в один
// слот-кандидат требуемой длительности с якорем на каждом шаге сетки
//
// Чистая функция: без часов, без сети, одинаковый вход - одинаковый выход
func GenerateSlots(day domain.ResolvedDaySchedule, granularityMinutes, requiredDurationMinutes int, occupied []domain.ExistingBooking) ([]domain.TimeSlot, error) {
	if granularityMinutes <= 0 {
		return nil, domain.NewInvalidConfiguration("granularity must be positive, got %d", granularityMinutes)
	}
	if requiredDurationMinutes <= 0 {
		return nil, domain.NewInvalidConfiguration("required duration must be positive, got %d", requiredDurationMinutes)
	}
	for _, booking := range occupied {
		if booking.End <= booking.Start {
			return nil, domain.NewInvalidConfiguration("occupied interval %s-%s has end <= start", booking.Start, booking.End)
		}
	}

	// Нерабочий день - пустой результат, это не ошибка
	if !day.IsWorkingDay || !day.Window.IsValid() {
		return []domain.TimeSlot{}, nil
	}

	// Записи на другие даты пропускаем - движок считает один день
	blocked := make([]domain.ExistingBooking, 0, len(occupied))
	for _, booking := range occupied {
		if booking.Date.IsZero() || booking.Date.Equal(day.Date) {
			blocked = append(blocked, booking)
		}
	}

	units := buildUnits(day, granularityMinutes, blocked)

	if requiredDurationMinutes <= granularityMinutes {
		slots := make([]domain.TimeSlot, 0, len(units))
		for _, unit := range units {
			slots = append(slots, domain.TimeSlot{
				Start:           unit.start,
				End:             unit.end,
				DurationMinutes: granularityMinutes,
				Available:       unit.free,
			})
		}
		return slots, nil
	}

	return coalesceUnits(units, granularityMinutes, requiredDurationMinutes), nil
}

type gridUnit struct {
	start json_types.ClockMinute
	end   json_types.ClockMinute
	free  bool
}

// buildUnits строит сетку единиц шага внутри рабочего окна
// Последняя единица, выходящая за конец окна, отбрасывается
func buildUnits(day domain.ResolvedDaySchedule, granularityMinutes int, occupied []domain.ExistingBooking) []gridUnit {
	step := json_types.ClockMinute(granularityMinutes)

	var units []gridUnit
	for start := day.Window.Start; start+step <= day.Window.End; start += step {
		end := start + step

		free := true
		for _, b := range day.Breaks {
			if overlaps(start, end, b.Start, b.End) {
				free = false
				break
			}
		}
		if free {
			for _, b := range occupied {
				if overlaps(start, end, b.Start, b.End) {
					free = false
					break
				}
			}
		}

		units = append(units, gridUnit{start: start, end: end, free: free})
	}
	return units
}

// coalesceUnits собирает из единиц сетки слоты-кандидаты требуемой длительности
// Кандидат доступен, только если все покрываемые им единицы свободны
// Например, прием на 45 минут при шаге 15 требует 3 последовательных свободных единицы
func coalesceUnits(units []gridUnit, granularityMinutes, requiredDurationMinutes int) []domain.TimeSlot {
	needed := (requiredDurationMinutes + granularityMinutes - 1) / granularityMinutes

	slots := make([]domain.TimeSlot, 0)
	for i := 0; i+needed <= len(units); i++ {
		available := true
		for j := i; j < i+needed; j++ {
			if !units[j].free {
				available = false
				break
			}
		}

		slots = append(slots, domain.TimeSlot{
			Start:           units[i].start,
			End:             units[i].start + json_types.ClockMinute(requiredDurationMinutes),
			DurationMinutes: requiredDurationMinutes,
			Available:       available,
		})
	}
	return slots
}

// Пересечение полуоткрытых интервалов: [aStart, aEnd) и [bStart, bEnd)
func overlaps(aStart, aEnd, bStart, bEnd json_types.ClockMinute) bool {
	return aStart < bEnd && bStart < aEnd
}
