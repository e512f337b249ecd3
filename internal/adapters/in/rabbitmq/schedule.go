package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/klinikly/slot-availability-service/internal/core/ports/out"
)

type CacheScheduleMessage struct {
	DoctorID uuid.UUID `json:"doctor_id"`
}

func (l *CacheHitListener) startScheduleQueue(ctx context.Context) error {
	return l.consume(
		ctx,
		l.cfg.RabbitMq.QueueConfig.ScheduleQueueName,
		l.cfg.RabbitMq.QueueConfig.ScheduleQueueBind,
		l.cfg.RabbitMq.QueueConfig.ScheduleQueueExchange,
		l.processScheduleMessage,
	)
}

// Изменение расписания или календаря праздников делает все дни врача подозрительными
func (l *CacheHitListener) processScheduleMessage(ctx context.Context, msg amqp.Delivery) error {
	routingKey, err := l.parseCacheMessageRoutingKey(msg)
	if err != nil {
		return err
	}

	if routingKey.ResourceType != CacheHitResourceTypeSchedule {
		return nil
	}

	var msgJson CacheScheduleMessage
	if err := json.Unmarshal(msg.Body, &msgJson); err != nil {
		return err
	}

	l.logger.Info("schedule.message.received", out.LogFields{
		"doctorId": msgJson.DoctorID,
		"hitType":  routingKey.CacheHitType,
	})

	return l.useCase.InvalidateDoctorSlots(ctx, msgJson.DoctorID)
}
