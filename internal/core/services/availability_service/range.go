package availability_service

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/klinikly/slot-availability-service/internal/core/domain"
	"github.com/klinikly/slot-availability-service/internal/core/json_types"
	"github.com/klinikly/slot-availability-service/internal/core/ports/out"
)

// Ограничение одновременных расчетов дней в range-запросе
const rangeWorkerPoolSize = 8

func (s *AvailabilityService) RangeAvailability(ctx context.Context, doctorID uuid.UUID, from, to json_types.Date, appointmentTypeID uuid.UUID) ([]domain.DayAvailability, error) {
	if to.Time.Before(from.Time) {
		return nil, domain.NewInvalidConfiguration("range end %s is before range start %s", to, from)
	}

	days := 0
	for date := from; !date.After(to); date = date.AddDays(1) {
		days++
	}
	if days > s.cfg.Slots.MaxRangeDays {
		return nil, domain.NewInvalidConfiguration("range of %d days exceeds the maximum of %d", days, s.cfg.Slots.MaxRangeDays)
	}

	s.logger.Info("slots.range.started", out.LogFields{
		"doctorId": doctorID,
		"from":     from,
		"to":       to,
		"days":     days,
	})

	result := make([]domain.DayAvailability, 0, days)
	var mu sync.Mutex
	var wg sync.WaitGroup
	errCh := make(chan error, days)

	// Пул воркеров, чтобы не залпом бомбить реестр
	workerPool := make(chan struct{}, rangeWorkerPoolSize)

	for date := from; !date.After(to); date = date.AddDays(1) {
		wg.Add(1)
		workerPool <- struct{}{}

		go func(date json_types.Date) {
			defer func() {
				<-workerPool
				wg.Done()
			}()

			availability, err := s.DayAvailability(ctx, doctorID, date, appointmentTypeID)
			if err != nil {
				errCh <- err
				return
			}

			mu.Lock()
			result = append(result, *availability)
			mu.Unlock()
		}(date)
	}

	wg.Wait()
	close(errCh)

	for err := range errCh {
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Time.Before(result[j].Date.Time)
	})

	return result, nil
}
