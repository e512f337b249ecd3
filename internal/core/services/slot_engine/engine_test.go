package slot_engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klinikly/slot-availability-service/internal/core/domain"
	"github.com/klinikly/slot-availability-service/internal/core/json_types"
)

func workingDay(start, end json_types.ClockMinute, breaks ...domain.BreakWindow) domain.ResolvedDaySchedule {
	return domain.ResolvedDaySchedule{
		Date:         json_types.NewDate(2026, 3, 2),
		IsWorkingDay: true,
		Window:       domain.WorkingWindow{Start: start, End: end},
		Breaks:       breaks,
	}
}

func booking(start, end json_types.ClockMinute) domain.ExistingBooking {
	return domain.ExistingBooking{
		Date:  json_types.NewDate(2026, 3, 2),
		Start: start,
		End:   end,
	}
}

func TestGenerateSlots_MorningWithoutBookings(t *testing.T) {
	// 09:00-12:00, шаг 30 минут, без перерывов и записей
	day := workingDay(json_types.NewClockMinute(9, 0), json_types.NewClockMinute(12, 0))

	slots, err := GenerateSlots(day, 30, 30, nil)
	require.NoError(t, err)
	require.Len(t, slots, 6)

	for i, slot := range slots {
		assert.True(t, slot.Available, "slot %d should be available", i)
		assert.Equal(t, 30, slot.DurationMinutes)
		assert.Equal(t, json_types.NewClockMinute(9, 0)+json_types.ClockMinute(i*30), slot.Start)
		assert.Equal(t, slot.Start+30, slot.End)
	}
}

func TestGenerateSlots_BookingBlocksOverlappingSlot(t *testing.T) {
	day := workingDay(json_types.NewClockMinute(9, 0), json_types.NewClockMinute(12, 0))
	occupied := []domain.ExistingBooking{
		booking(json_types.NewClockMinute(10, 0), json_types.NewClockMinute(10, 30)),
	}

	slots, err := GenerateSlots(day, 30, 30, occupied)
	require.NoError(t, err)
	require.Len(t, slots, 6)

	for _, slot := range slots {
		if slot.Start == json_types.NewClockMinute(10, 0) {
			assert.False(t, slot.Available)
		} else {
			assert.True(t, slot.Available, "slot %s should stay available", slot.Start)
		}
	}
}

func TestGenerateSlots_CoalescesConsecutiveUnits(t *testing.T) {
	// Прием на 45 минут при шаге 15: нужно 3 последовательных свободных единицы
	day := workingDay(json_types.NewClockMinute(9, 0), json_types.NewClockMinute(9, 45))

	slots, err := GenerateSlots(day, 15, 45, nil)
	require.NoError(t, err)
	require.Len(t, slots, 1)

	assert.Equal(t, json_types.NewClockMinute(9, 0), slots[0].Start)
	assert.Equal(t, json_types.NewClockMinute(9, 45), slots[0].End)
	assert.Equal(t, 45, slots[0].DurationMinutes)
	assert.True(t, slots[0].Available)
}

func TestGenerateSlots_CoalescedCandidateBlockedByBusyUnit(t *testing.T) {
	day := workingDay(json_types.NewClockMinute(9, 0), json_types.NewClockMinute(10, 30))
	occupied := []domain.ExistingBooking{
		booking(json_types.NewClockMinute(9, 30), json_types.NewClockMinute(9, 45)),
	}

	slots, err := GenerateSlots(day, 15, 45, occupied)
	require.NoError(t, err)
	// Якоря: 09:00, 09:15, 09:30, 09:45 (окно 90 минут, 6 единиц, нужно 3)
	require.Len(t, slots, 4)

	byStart := make(map[json_types.ClockMinute]domain.TimeSlot)
	for _, slot := range slots {
		byStart[slot.Start] = slot
	}

	assert.False(t, byStart[json_types.NewClockMinute(9, 0)].Available)
	assert.False(t, byStart[json_types.NewClockMinute(9, 15)].Available)
	assert.False(t, byStart[json_types.NewClockMinute(9, 30)].Available)
	assert.True(t, byStart[json_types.NewClockMinute(9, 45)].Available)
}

func TestGenerateSlots_BreakBlocksSlots(t *testing.T) {
	day := workingDay(
		json_types.NewClockMinute(9, 0), json_types.NewClockMinute(13, 0),
		domain.BreakWindow{Start: json_types.NewClockMinute(12, 0), End: json_types.NewClockMinute(13, 0), Label: "lunch"},
	)

	slots, err := GenerateSlots(day, 30, 30, nil)
	require.NoError(t, err)
	require.Len(t, slots, 8)

	for _, slot := range slots {
		if slot.Start >= json_types.NewClockMinute(12, 0) {
			assert.False(t, slot.Available, "slot %s overlaps lunch", slot.Start)
		} else {
			assert.True(t, slot.Available)
		}
	}
}

func TestGenerateSlots_NonWorkingDayIsEmpty(t *testing.T) {
	day := domain.ResolvedDaySchedule{
		Date:      json_types.NewDate(2026, 3, 1),
		IsHoliday: true,
	}

	slots, err := GenerateSlots(day, 30, 30, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_TrailingPartialUnitDropped(t *testing.T) {
	// 09:00-10:10 при шаге 30: последняя неполная единица 10:00-10:10 отбрасывается
	day := workingDay(json_types.NewClockMinute(9, 0), json_types.NewClockMinute(10, 10))

	slots, err := GenerateSlots(day, 30, 30, nil)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, json_types.NewClockMinute(10, 0), slots[1].End)
}

func TestGenerateSlots_OtherDateBookingIgnored(t *testing.T) {
	day := workingDay(json_types.NewClockMinute(9, 0), json_types.NewClockMinute(10, 0))
	occupied := []domain.ExistingBooking{
		{
			Date:  json_types.NewDate(2026, 3, 3),
			Start: json_types.NewClockMinute(9, 0),
			End:   json_types.NewClockMinute(10, 0),
		},
	}

	slots, err := GenerateSlots(day, 30, 30, occupied)
	require.NoError(t, err)
	for _, slot := range slots {
		assert.True(t, slot.Available)
	}
}

func TestGenerateSlots_InvalidInput(t *testing.T) {
	day := workingDay(json_types.NewClockMinute(9, 0), json_types.NewClockMinute(12, 0))

	testCases := []struct {
		name        string
		granularity int
		duration    int
		occupied    []domain.ExistingBooking
	}{
		{name: "zero granularity", granularity: 0, duration: 30},
		{name: "negative granularity", granularity: -15, duration: 30},
		{name: "zero duration", granularity: 30, duration: 0},
		{name: "negative duration", granularity: 30, duration: -30},
		{
			name: "occupied end before start", granularity: 30, duration: 30,
			occupied: []domain.ExistingBooking{booking(json_types.NewClockMinute(10, 0), json_types.NewClockMinute(9, 0))},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GenerateSlots(day, tc.granularity, tc.duration, tc.occupied)
			require.Error(t, err)
			assert.True(t, domain.IsInvalidConfiguration(err))
		})
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	day := workingDay(
		json_types.NewClockMinute(8, 0), json_types.NewClockMinute(17, 0),
		domain.BreakWindow{Start: json_types.NewClockMinute(12, 0), End: json_types.NewClockMinute(13, 0)},
	)
	occupied := []domain.ExistingBooking{
		booking(json_types.NewClockMinute(9, 0), json_types.NewClockMinute(9, 30)),
		booking(json_types.NewClockMinute(15, 45), json_types.NewClockMinute(16, 15)),
	}

	first, err := GenerateSlots(day, 15, 30, occupied)
	require.NoError(t, err)
	second, err := GenerateSlots(day, 15, 30, occupied)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateSlots_SortedAndNonOverlappingUnits(t *testing.T) {
	day := workingDay(json_types.NewClockMinute(8, 0), json_types.NewClockMinute(17, 0))

	slots, err := GenerateSlots(day, 15, 15, nil)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start < slots[i].Start)
		assert.True(t, slots[i-1].End <= slots[i].Start, "units must not overlap")
	}
}
