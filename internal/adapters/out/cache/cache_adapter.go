package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/klinikly/slot-availability-service/internal/config"
	"github.com/klinikly/slot-availability-service/internal/core/domain"
	"github.com/klinikly/slot-availability-service/internal/core/json_types"
	"github.com/klinikly/slot-availability-service/internal/core/ports/out"
)

type DaySlotsEntry struct {
	Slots    []domain.TimeSlot
	StoredAt time.Time
}

// CacheAdapter - LRU-кэш рассчитанных слотов
// Ключ: "<doctorId>|<date>|<appointmentTypeId>"
type CacheAdapter struct {
	days   *lru.Cache[string, *DaySlotsEntry]
	mu     sync.RWMutex
	logger out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	lruDaysCache, err := lru.New[string, *DaySlotsEntry](cfg.Cache.DaysSize)
	if err != nil {
		logger.Error("cache.days.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.DaysSize,
		})
		return nil, err
	}

	return &CacheAdapter{
		days:   lruDaysCache,
		logger: logger.WithModule("CacheAdapter"),
	}, nil
}

func cacheKey(doctorID uuid.UUID, date json_types.Date, appointmentTypeID uuid.UUID) string {
	return doctorID.String() + "|" + date.String() + "|" + appointmentTypeID.String()
}

func doctorDayPrefix(doctorID uuid.UUID, date json_types.Date) string {
	return doctorID.String() + "|" + date.String() + "|"
}

func doctorPrefix(doctorID uuid.UUID) string {
	return doctorID.String() + "|"
}

func (c *CacheAdapter) GetDaySlots(ctx context.Context, doctorID uuid.UUID, date json_types.Date, appointmentTypeID uuid.UUID) ([]domain.TimeSlot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.days.Get(cacheKey(doctorID, date, appointmentTypeID))
	if !exists {
		c.logger.Debug("cache.days.get.miss", out.LogFields{
			"doctorId": doctorID,
			"date":     date,
		})
		return nil, false
	}

	c.logger.Debug("cache.days.get.hit", out.LogFields{
		"doctorId":   doctorID,
		"date":       date,
		"slotsCount": len(entry.Slots),
	})
	return entry.Slots, true
}

func (c *CacheAdapter) StoreDaySlots(ctx context.Context, doctorID uuid.UUID, date json_types.Date, appointmentTypeID uuid.UUID, slots []domain.TimeSlot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.days.store", out.LogFields{
		"doctorId":   doctorID,
		"date":       date,
		"slotsCount": len(slots),
	})

	c.days.Add(cacheKey(doctorID, date, appointmentTypeID), &DaySlotsEntry{
		Slots:    slots,
		StoredAt: time.Now(),
	})
}

func (c *CacheAdapter) InvalidateDoctorDay(ctx context.Context, doctorID uuid.UUID, date json_types.Date) {
	c.invalidateByPrefix(doctorDayPrefix(doctorID, date))
}

func (c *CacheAdapter) InvalidateDoctor(ctx context.Context, doctorID uuid.UUID) {
	c.invalidateByPrefix(doctorPrefix(doctorID))
}

func (c *CacheAdapter) InvalidateAll(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.days.purge", out.LogFields{})
	c.days.Purge()
}

// invalidateByPrefix удаляет все записи с данным префиксом ключа
// Записей на врача немного (дни x типы приема), линейный проход по ключам приемлем
func (c *CacheAdapter) invalidateByPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for _, key := range c.days.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.days.Remove(key)
			removed++
		}
	}

	c.logger.Debug("cache.days.invalidate", out.LogFields{
		"prefix":  prefix,
		"removed": removed,
	})
}
