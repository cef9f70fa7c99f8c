package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eventkit/pkg/events"
)

func TestQueue_Receive(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		reg := newRegistry(t)
		q := newQueue(t, reg, "q")

		_, err := q.Receive()
		assert.ErrorIs(t, err, events.ErrEmpty)
	})

	t.Run("in publish order", func(t *testing.T) {
		reg := newRegistry(t)
		q := newQueue(t, reg, "q", "t")
		for _, v := range []string{"a", "b", "c"} {
			_, err := reg.Publish("t", v)
			require.NoError(t, err)
		}

		var got []any
		for q.Len() > 0 {
			msg, err := q.Receive()
			require.NoError(t, err)
			assert.Equal(t, "t", msg.Topic)
			got = append(got, msg.Payload)
		}
		assert.Equal(t, []any{"a", "b", "c"}, got)
	})

	t.Run("evicted message", func(t *testing.T) {
		reg := newRegistry(t, func(c *events.Config) { c.MaxEvents = 1 })
		q := newQueue(t, reg, "q", "t")
		for range 2 {
			_, err := reg.Publish("t", nil)
			require.NoError(t, err)
		}

		_, err := q.Receive()
		assert.ErrorIs(t, err, events.ErrNotFound)

		msg, err := q.Receive()
		require.NoError(t, err)
		assert.Equal(t, uint32(1), msg.ID)
	})
}

func TestQueue_Pop(t *testing.T) {
	reg := newRegistry(t, func(c *events.Config) { c.QueueCapacity = 3 })
	q := newQueue(t, reg, "q", "t")
	assert.Equal(t, 3, q.Cap())

	_, ok := q.Pop()
	assert.False(t, ok)

	for range 4 {
		_, err := reg.Publish("t", nil)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, q.Len())

	id, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, uint32(0), id)
	assert.Equal(t, 2, q.Len())
}

func TestQueue_Close(t *testing.T) {
	reg := newRegistry(t)
	q := newQueue(t, reg, "q", "t")
	_, err := reg.Publish("t", nil)
	require.NoError(t, err)

	q.Close()
	q.Close()

	assert.True(t, q.Closed())
	assert.Zero(t, q.Len(), "pending IDs are discarded")

	_, ok := q.Pop()
	assert.False(t, ok)

	_, err = q.Receive()
	assert.ErrorIs(t, err, events.ErrClosed)

	_, err = reg.Publish("t", nil)
	require.NoError(t, err)
	assert.Zero(t, q.Len())
	assert.Equal(t, 0, reg.Stats().LiveQueues)
}
