package domain

import (
	"time"

	"github.com/google/uuid"
)

type PolicyKind string

const (
	PolicyKindFixedDeadline  PolicyKind = "fixedDeadline"
	PolicyKindRelativeWindow PolicyKind = "relativeWindow"
)

// CancellationPolicy - политика отмены/переноса записи
// Для каждой записи действует ровно один вид:
// fixedDeadline - фиксированный дедлайн, relativeWindow - окно до начала приема
type CancellationPolicy struct {
	Kind                   PolicyKind `json:"kind"`
	AllowedUntil           time.Time  `json:"allowedUntil,omitempty"`
	HoursBeforeAppointment int        `json:"hoursBeforeAppointment,omitempty"`
	FeePercentage          int        `json:"feePercentage"`
}

// Booking - минимальное представление записи для оценки политики
// PriceAmount в минорных единицах валюты
type Booking struct {
	ID          uuid.UUID          `json:"id"`
	DoctorID    uuid.UUID          `json:"doctorId"`
	ScheduledAt time.Time          `json:"scheduledDateTime"`
	PriceAmount int64              `json:"priceAmount"`
	Policy      CancellationPolicy `json:"cancellationPolicy"`
}

// CancellationAssessment - результат оценки политики
// Allowed - гейт "можно ли еще", FeeAmount/RefundAmount - гипотетический
// штраф и возврат после дедлайна; что показывать пациенту решает вызывающий
type CancellationAssessment struct {
	Allowed      bool      `json:"allowed"`
	FeeAmount    int64     `json:"feeAmount"`
	RefundAmount int64     `json:"refundAmount"`
	Deadline     time.Time `json:"deadline"`
}
