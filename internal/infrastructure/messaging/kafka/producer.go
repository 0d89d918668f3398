package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"weblarek/internal/config"
	"weblarek/internal/domain/order"
	"weblarek/internal/infrastructure/encoding/avro"
	"weblarek/pkg/logger"
)

// recordProducer is the part of kgo.Client the producer uses.
type recordProducer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type OrderProducer struct {
	client recordProducer
	codec  *avro.OrderCodec
	topic  string
	logger logger.Logger
}

func NewOrderProducer(cfg config.KafkaConfig, codec *avro.OrderCodec, log logger.Logger) (*OrderProducer, error) {
	if log == nil {
		log = logger.NewNop()
	}
	log.Info("Creating Kafka producer",
		logger.Any("brokers", cfg.Brokers),
		logger.String("topic", cfg.OrderTopic),
	)

	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.OrderTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.DisableIdempotentWrite(),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &OrderProducer{
		client: client,
		codec:  codec,
		topic:  cfg.OrderTopic,
		logger: log,
	}, nil
}

// PublishOrder writes placed as an OrderPlaced record keyed by order id.
func (p *OrderProducer) PublishOrder(ctx context.Context, placed *order.Placed) error {
	payload, err := p.codec.Encode(placed)
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}
	return p.publish(ctx, placed.ID, payload)
}

func (p *OrderProducer) publish(ctx context.Context, key string, payload []byte) error {
	if len(payload) == 0 {
		return fmt.Errorf("payload is empty")
	}

	rec := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(key),
		Value:     payload,
		Timestamp: time.Now().UTC(),
	}

	// one record in, one result out
	results := p.client.ProduceSync(ctx, rec)

	if err := results.FirstErr(); err != nil {
		p.logger.Error("Failed to publish order",
			logger.String("topic", p.topic),
			logger.String("key", key),
			logger.Int("payload_size", len(payload)),
			logger.Error(err),
		)
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}

	p.logger.Debug("Order published", logger.String("topic", p.topic), logger.String("key", key))
	return nil
}

func (p *OrderProducer) Close(ctx context.Context) error {
	p.logger.Info("Closing Kafka producer", logger.String("topic", p.topic))
	if p.client != nil {
		p.client.Close()
	}
	return nil
}
