package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/klinikly/slot-availability-service/internal/core/ports/out"
)

func (l *CacheHitListener) startAllQueue(ctx context.Context) error {
	return l.consume(
		ctx,
		l.cfg.RabbitMq.QueueConfig.AllQueueName,
		l.cfg.RabbitMq.QueueConfig.AllQueueBind,
		l.cfg.RabbitMq.QueueConfig.AllQueueExchange,
		l.processAllMessage,
	)
}

func (l *CacheHitListener) processAllMessage(ctx context.Context, msg amqp.Delivery) error {
	routingKey, err := l.parseCacheMessageRoutingKey(msg)
	if err != nil {
		return err
	}

	if routingKey.ResourceType != CacheHitResourceTypeAll {
		return nil
	}

	l.logger.Info("_all_.message.received", out.LogFields{
		"hitType": routingKey.CacheHitType,
	})

	return l.useCase.InvalidateAllSlots(ctx)
}
