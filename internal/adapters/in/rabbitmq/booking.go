package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/klinikly/slot-availability-service/internal/core/domain"
	"github.com/klinikly/slot-availability-service/internal/core/ports/out"
)

type CacheBookingMessage struct {
	DoctorID uuid.UUID              `json:"doctor_id"`
	Booking  domain.ExistingBooking `json:"booking"`
}

func (l *CacheHitListener) startBookingQueue(ctx context.Context) error {
	return l.consume(
		ctx,
		l.cfg.RabbitMq.QueueConfig.BookingQueueName,
		l.cfg.RabbitMq.QueueConfig.BookingQueueBind,
		l.cfg.RabbitMq.QueueConfig.BookingQueueExchange,
		l.processBookingMessage,
	)
}

func (l *CacheHitListener) processBookingMessage(ctx context.Context, msg amqp.Delivery) error {
	routingKey, err := l.parseCacheMessageRoutingKey(msg)
	if err != nil {
		return err
	}

	if routingKey.ResourceType != CacheHitResourceTypeBooking {
		return nil
	}

	var msgJson CacheBookingMessage
	if err := json.Unmarshal(msg.Body, &msgJson); err != nil {
		return err
	}

	l.logger.Info("booking.message.received", out.LogFields{
		"doctorId":  msgJson.DoctorID,
		"bookingId": msgJson.Booking.ID,
		"hitType":   routingKey.CacheHitType,
	})

	switch routingKey.CacheHitType {
	case CacheHitTypeStore:
		return l.useCase.StoreBookingSlot(ctx, msgJson.DoctorID, msgJson.Booking)
	case CacheHitTypeInvalidate:
		return l.useCase.InvalidateBookingSlot(ctx, msgJson.DoctorID, msgJson.Booking)
	}

	return nil
}
