package mq

import (
	"context"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (c *recordingChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	c.exchange, c.key, c.msg = exchange, key, msg
	return c.err
}

func (c *recordingChannel) Close() error {
	c.closed = true
	return nil
}

func TestPublisher_PublishJSON(t *testing.T) {
	ch := &recordingChannel{}
	p := &Publisher{ch: ch, exchange: "room-booking.events"}

	err := p.PublishJSON(context.Background(), "booking.created", map[string]int64{"id": 7})
	require.NoError(t, err)

	assert.Equal(t, "room-booking.events", ch.exchange)
	assert.Equal(t, "booking.created", ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.JSONEq(t, `{"id":7}`, string(ch.msg.Body))

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestPublisher_Errors(t *testing.T) {
	p := &Publisher{ch: &recordingChannel{err: errors.New("channel closed")}, exchange: "x"}
	assert.Error(t, p.PublishJSON(context.Background(), "booking.deleted", struct{}{}))

	assert.Error(t, p.PublishJSON(context.Background(), "booking.deleted", make(chan int)))
}

func TestPublisher_NilIsNoop(t *testing.T) {
	var p *Publisher
	assert.NoError(t, p.PublishJSON(context.Background(), "booking.created", struct{}{}))
	assert.NoError(t, p.Close())
}
