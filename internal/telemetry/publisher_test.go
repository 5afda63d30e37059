package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisherRateLimit(t *testing.T) {
	var sent []Reading
	p := &Publisher{
		every: 3,
		count: 3, // as NewPublisher initializes: first call publishes
	}
	p.send = func(r Reading) { sent = append(sent, r) }

	p.Publish(0.1)
	require.Len(t, sent, 1, "first call publishes immediately")
	assert.Equal(t, 0.1, sent[0].Value)

	// The next `every` calls are swallowed.
	p.Publish(0.2)
	p.Publish(0.3)
	p.Publish(0.4)
	assert.Len(t, sent, 1)

	// The call after the window goes out with the current value.
	p.Publish(0.5)
	require.Len(t, sent, 2)
	assert.Equal(t, 0.5, sent[1].Value)
}

func TestPublisherStampsTime(t *testing.T) {
	var sent []Reading
	p := &Publisher{every: 1, count: 1}
	p.send = func(r Reading) { sent = append(sent, r) }

	p.Publish(0.9)
	require.Len(t, sent, 1)
	assert.NotEmpty(t, sent[0].Time)
}
