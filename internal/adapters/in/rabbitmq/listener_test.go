package rabbitmq

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCacheMessageRoutingKey(t *testing.T) {
	listener := &CacheHitListener{}

	testCases := []struct {
		routingKey   string
		resourceType CacheHitResourceType
		hitType      CacheHitType
	}{
		{"clinic.availability-svc.booking.store", CacheHitResourceTypeBooking, CacheHitTypeStore},
		{"clinic.availability-svc.booking.invalidate", CacheHitResourceTypeBooking, CacheHitTypeInvalidate},
		{"clinic.availability-svc.schedule.invalidate", CacheHitResourceTypeSchedule, CacheHitTypeInvalidate},
		{"clinic.availability-svc._all_.invalidate", CacheHitResourceTypeAll, CacheHitTypeInvalidate},
	}

	for _, tc := range testCases {
		t.Run(tc.routingKey, func(t *testing.T) {
			parsed, err := listener.parseCacheMessageRoutingKey(amqp.Delivery{RoutingKey: tc.routingKey})
			require.NoError(t, err)
			assert.Equal(t, "clinic", parsed.Source)
			assert.Equal(t, "availability-svc", parsed.Receiver)
			assert.Equal(t, tc.resourceType, parsed.ResourceType)
			assert.Equal(t, tc.hitType, parsed.CacheHitType)
		})
	}
}

func TestParseCacheMessageRoutingKey_Invalid(t *testing.T) {
	listener := &CacheHitListener{}

	for _, routingKey := range []string{"", "clinic", "clinic.availability-svc", "clinic.availability-svc.booking"} {
		_, err := listener.parseCacheMessageRoutingKey(amqp.Delivery{RoutingKey: routingKey})
		assert.Error(t, err, "routing key %q must be rejected", routingKey)
	}
}
