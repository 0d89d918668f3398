package kafka

import (
	"context"
	"errors"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"

	"weblarek/internal/config"
	"weblarek/internal/domain/order"
	"weblarek/internal/infrastructure/encoding/avro"
	"weblarek/pkg/logger"
)

// OrderHandler persists orders read from the topic.
type OrderHandler interface {
	HandleConsumedOrder(ctx context.Context, placed *order.Placed) error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type OrderConsumer struct {
	reader  messageReader
	codec   *avro.OrderCodec
	handler OrderHandler
	logger  logger.Logger
}

func NewOrderConsumer(cfg config.KafkaConfig, codec *avro.OrderCodec, handler OrderHandler, log logger.Logger) *OrderConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.ConsumerGroup,
		Topic:    cfg.OrderTopic,
		MinBytes: 1,
		MaxBytes: 1e6,
	})
	return newOrderConsumer(reader, codec, handler, log)
}

func newOrderConsumer(reader messageReader, codec *avro.OrderCodec, handler OrderHandler, log logger.Logger) *OrderConsumer {
	if log == nil {
		log = logger.NewNop()
	}
	return &OrderConsumer{
		reader:  reader,
		codec:   codec,
		handler: handler,
		logger:  log,
	}
}

// Start reads until ctx is cancelled. Undecodable records are logged and
// committed; a failing handler stops the loop without committing.
func (c *OrderConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return fmt.Errorf("fetch message: %w", err)
		}

		placed, err := c.codec.Decode(msg.Value)
		if err != nil {
			c.logger.Warn("Skipping undecodable order record",
				logger.String("key", string(msg.Key)),
				logger.Int64("offset", msg.Offset),
				logger.Error(err),
			)
		} else if err := c.handler.HandleConsumedOrder(ctx, placed); err != nil {
			return fmt.Errorf("handle order %s: %w", placed.ID, err)
		} else {
			c.logger.Debug("Order stored", logger.String("order_id", placed.ID))
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			return fmt.Errorf("commit message: %w", err)
		}
	}
}

func (c *OrderConsumer) Close() {
	_ = c.reader.Close()
}
