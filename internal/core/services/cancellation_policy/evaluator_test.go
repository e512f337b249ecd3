package cancellation_policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klinikly/slot-availability-service/internal/core/domain"
)

func bookingAt(scheduledAt time.Time, price int64) domain.Booking {
	return domain.Booking{
		ScheduledAt: scheduledAt,
		PriceAmount: price,
	}
}

func TestEvaluate_RelativeWindow(t *testing.T) {
	appointment := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	policy := domain.CancellationPolicy{
		Kind:                   domain.PolicyKindRelativeWindow,
		HoursBeforeAppointment: 2,
		FeePercentage:          20,
	}

	testCases := []struct {
		name    string
		now     time.Time
		allowed bool
	}{
		{name: "90 minutes of margin", now: time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC), allowed: true},
		{name: "just inside the window", now: time.Date(2026, 3, 2, 11, 55, 0, 0, time.UTC), allowed: true},
		{name: "deadline itself", now: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), allowed: false},
		{name: "past the deadline", now: time.Date(2026, 3, 2, 12, 1, 0, 0, time.UTC), allowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assessment, err := Evaluate(bookingAt(appointment, 100000), policy, tc.now)
			require.NoError(t, err)
			assert.Equal(t, tc.allowed, assessment.Allowed)
			assert.Equal(t, time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), assessment.Deadline)
		})
	}
}

func TestEvaluate_FixedDeadlineFeeAfterExpiry(t *testing.T) {
	deadline := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)
	policy := domain.CancellationPolicy{
		Kind:          domain.PolicyKindFixedDeadline,
		AllowedUntil:  deadline,
		FeePercentage: 20,
	}
	booking := bookingAt(time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC), 150000)

	assessment, err := Evaluate(booking, policy, deadline.Add(time.Hour))
	require.NoError(t, err)

	assert.False(t, assessment.Allowed)
	assert.Equal(t, int64(30000), assessment.FeeAmount)
	assert.Equal(t, int64(120000), assessment.RefundAmount)
	assert.Equal(t, deadline, assessment.Deadline)
}

func TestEvaluate_FixedDeadlineBeforeExpiryIsFree(t *testing.T) {
	deadline := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)
	policy := domain.CancellationPolicy{
		Kind:          domain.PolicyKindFixedDeadline,
		AllowedUntil:  deadline,
		FeePercentage: 20,
	}
	booking := bookingAt(time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC), 150000)

	assessment, err := Evaluate(booking, policy, deadline.Add(-time.Hour))
	require.NoError(t, err)

	assert.True(t, assessment.Allowed)
	assert.Equal(t, int64(0), assessment.FeeAmount)
	assert.Equal(t, int64(150000), assessment.RefundAmount)
}

func TestEvaluate_PastAppointmentNeverAllowed(t *testing.T) {
	appointment := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	policy := domain.CancellationPolicy{
		Kind: domain.PolicyKindFixedDeadline,
		// Дедлайн сконфигурирован позже самого приема
		AllowedUntil:  appointment.Add(24 * time.Hour),
		FeePercentage: 10,
	}

	assessment, err := Evaluate(bookingAt(appointment, 50000), policy, appointment.Add(time.Minute))
	require.NoError(t, err)

	assert.False(t, assessment.Allowed)
}

func TestEvaluate_FeeRounding(t *testing.T) {
	appointment := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	policy := domain.CancellationPolicy{
		Kind:                   domain.PolicyKindRelativeWindow,
		HoursBeforeAppointment: 24,
		FeePercentage:          15,
	}

	// 333 * 15% = 49.95 -> 50
	assessment, err := Evaluate(bookingAt(appointment, 333), policy, appointment.Add(-time.Hour))
	require.NoError(t, err)

	assert.False(t, assessment.Allowed)
	assert.Equal(t, int64(50), assessment.FeeAmount)
	assert.Equal(t, int64(283), assessment.RefundAmount)
}

func TestEvaluate_RefundPlusFeeEqualsPrice(t *testing.T) {
	appointment := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	policy := domain.CancellationPolicy{
		Kind:                   domain.PolicyKindRelativeWindow,
		HoursBeforeAppointment: 2,
		FeePercentage:          37,
	}

	for _, now := range []time.Time{appointment.Add(-3 * time.Hour), appointment.Add(-time.Hour)} {
		assessment, err := Evaluate(bookingAt(appointment, 123457), policy, now)
		require.NoError(t, err)
		assert.Equal(t, int64(123457), assessment.FeeAmount+assessment.RefundAmount)
	}
}

func TestEvaluate_InvalidPolicy(t *testing.T) {
	appointment := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	now := appointment.Add(-time.Hour)

	testCases := []struct {
		name   string
		policy domain.CancellationPolicy
	}{
		{name: "unknown kind", policy: domain.CancellationPolicy{Kind: "graceperiod", FeePercentage: 10}},
		{name: "fee above 100", policy: domain.CancellationPolicy{Kind: domain.PolicyKindRelativeWindow, HoursBeforeAppointment: 1, FeePercentage: 120}},
		{name: "negative fee", policy: domain.CancellationPolicy{Kind: domain.PolicyKindRelativeWindow, HoursBeforeAppointment: 1, FeePercentage: -5}},
		{name: "negative hours", policy: domain.CancellationPolicy{Kind: domain.PolicyKindRelativeWindow, HoursBeforeAppointment: -1, FeePercentage: 10}},
		{name: "fixed deadline without allowedUntil", policy: domain.CancellationPolicy{Kind: domain.PolicyKindFixedDeadline, FeePercentage: 10}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Evaluate(bookingAt(appointment, 100000), tc.policy, now)
			require.Error(t, err)
			assert.True(t, domain.IsInvalidConfiguration(err))
		})
	}
}

func TestEvaluate_DoesNotMutateInputs(t *testing.T) {
	appointment := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	booking := bookingAt(appointment, 100000)
	policy := domain.CancellationPolicy{
		Kind:                   domain.PolicyKindRelativeWindow,
		HoursBeforeAppointment: 2,
		FeePercentage:          20,
	}
	bookingCopy := booking
	policyCopy := policy

	_, err := Evaluate(booking, policy, appointment.Add(-time.Hour))
	require.NoError(t, err)

	assert.Equal(t, bookingCopy, booking)
	assert.Equal(t, policyCopy, policy)
}
