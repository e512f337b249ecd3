package cancellation_policy

import (
	"time"

	"github.com/klinikly/slot-availability-service/internal/core/domain"
)

// Evaluate оценивает политику отмены/переноса записи на момент now
//
// Allowed - гейт: можно ли еще выполнить действие
// FeeAmount/RefundAmount считаются всегда, в том числе после дедлайна -
// гипотетический штраф для экранов поддержки; сам гейт штраф не открывает
//
// now передается вызывающим, системные часы здесь не читаются
func Evaluate(booking domain.Booking, policy domain.CancellationPolicy, now time.Time) (domain.CancellationAssessment, error) {
	if policy.FeePercentage < 0 || policy.FeePercentage > 100 {
		return domain.CancellationAssessment{}, domain.NewInvalidConfiguration("fee percentage must be within [0, 100], got %d", policy.FeePercentage)
	}

	var deadline time.Time
	switch policy.Kind {
	case domain.PolicyKindFixedDeadline:
		if policy.AllowedUntil.IsZero() {
			return domain.CancellationAssessment{}, domain.NewInvalidConfiguration("fixedDeadline policy without allowedUntil")
		}
		deadline = policy.AllowedUntil

	case domain.PolicyKindRelativeWindow:
		if policy.HoursBeforeAppointment < 0 {
			return domain.CancellationAssessment{}, domain.NewInvalidConfiguration("hoursBeforeAppointment must not be negative, got %d", policy.HoursBeforeAppointment)
		}
		deadline = booking.ScheduledAt.Add(-time.Duration(policy.HoursBeforeAppointment) * time.Hour)

	default:
		return domain.CancellationAssessment{}, domain.NewInvalidConfiguration("unknown cancellation policy kind %q", policy.Kind)
	}

	// Прошедший прием отменить нельзя - это нормальный результат, не ошибка
	allowed := now.Before(deadline) && now.Before(booking.ScheduledAt)

	var fee int64
	if !allowed {
		fee = roundedFee(booking.PriceAmount, policy.FeePercentage)
	}

	return domain.CancellationAssessment{
		Allowed:      allowed,
		FeeAmount:    fee,
		RefundAmount: booking.PriceAmount - fee,
		Deadline:     deadline,
	}, nil
}

// roundedFee - процент от цены в минорных единицах, округление half away from zero
func roundedFee(priceAmount int64, feePercentage int) int64 {
	raw := priceAmount * int64(feePercentage)
	if raw >= 0 {
		return (raw + 50) / 100
	}
	return (raw - 50) / 100
}
