package broker

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPublishOutcome(t *testing.T) {
	assert.Equal(t, "ok", publishOutcome(nil))
	assert.Equal(t, "rejected", publishOutcome(fmt.Errorf("publish k: %w", ErrPublishRejected)))
	assert.Equal(t, "error", publishOutcome(errors.New("channel closed")))
}

func TestPublishOutcomeFeedsCounter(t *testing.T) {
	counter := testBrokerMetrics.EventsPublished.WithLabelValues("some.key", "rejected")
	before := testutil.ToFloat64(counter)

	testBrokerMetrics.RecordPublish("some.key", publishOutcome(ErrPublishRejected))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
