package pubsub

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"storefront/internal/domain/constants"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go/protocol"
	metadataAPI "github.com/segmentio/kafka-go/protocol/metadata"
	produceAPI "github.com/segmentio/kafka-go/protocol/produce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKafkaTransport answers metadata with a single-partition topic and
// counts produce requests. A non-nil produceErr fails every produce call.
type fakeKafkaTransport struct {
	topic      string
	produces   atomic.Int32
	produceErr error
}

func (f *fakeKafkaTransport) RoundTrip(_ context.Context, _ net.Addr, msg protocol.Message) (protocol.Message, error) {
	switch req := msg.(type) {
	case *metadataAPI.Request:
		return &metadataAPI.Response{
			Brokers: []metadataAPI.ResponseBroker{{NodeID: 1, Host: "localhost", Port: 9092}},
			Topics: []metadataAPI.ResponseTopic{{
				Name:       f.topic,
				Partitions: []metadataAPI.ResponsePartition{{PartitionIndex: 0, LeaderID: 1}},
			}},
		}, nil
	case *produceAPI.Request:
		f.produces.Add(1)
		if f.produceErr != nil {
			return nil, f.produceErr
		}

		return &produceAPI.Response{
			Topics: []produceAPI.ResponseTopic{{
				Topic:      req.Topics[0].Topic,
				Partitions: []produceAPI.ResponsePartition{{Partition: req.Topics[0].Partitions[0].Partition}},
			}},
		}, nil
	default:
		return nil, errors.Errorf("unexpected kafka request %T", msg)
	}
}

func newTestKafkaPublisher(transport *fakeKafkaTransport, logger *slog.Logger) *kafkaPublisher {
	writer := newKafkaWriter([]string{"localhost:9092"}, transport.topic, logger)
	writer.Transport = transport

	return &kafkaPublisher{writer: writer, logger: logger}
}

func TestKafkaPublisher_PublishDoesNotWaitForBatch(t *testing.T) {
	transport := &fakeKafkaTransport{topic: "storefront-events"}
	publisher := newTestKafkaPublisher(transport, slog.New(slog.DiscardHandler))

	for i := range 5 {
		start := time.Now()
		require.NoError(t, publisher.Publish(context.Background(), newTestEvent()))
		assert.Less(t, time.Since(start), 200*time.Millisecond, "publish %d blocked on the batch", i)
	}

	require.NoError(t, publisher.Close())
	assert.Positive(t, transport.produces.Load())
}

func TestKafkaPublisher_DeliveryFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	transport := &fakeKafkaTransport{topic: "storefront-events", produceErr: errors.New("broker unavailable")}
	publisher := newTestKafkaPublisher(transport, logger)

	require.NoError(t, publisher.Publish(context.Background(), newTestEvent()))
	require.NoError(t, publisher.Close())

	out := buf.String()
	assert.Contains(t, out, "Event delivery failed")
	assert.Contains(t, out, "broker unavailable")
	assert.Contains(t, out, "aggregate_id=prod-1")
	assert.Contains(t, out, "event_type="+constants.EventProductCreated)
}

func TestNewKafkaWriter_Settings(t *testing.T) {
	writer := newKafkaWriter([]string{"localhost:9092"}, "events", slog.New(slog.DiscardHandler))

	assert.True(t, writer.Async)
	assert.Equal(t, kafkaBatchTimeout, writer.BatchTimeout)
	assert.Equal(t, kafkaWriteTimeout, writer.WriteTimeout)
	assert.Equal(t, kafkaMaxAttempts, writer.MaxAttempts)
	assert.NotNil(t, writer.Completion)
}
