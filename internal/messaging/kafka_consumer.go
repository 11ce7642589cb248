package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/cypherlabdev/odds-comparison-service/internal/metrics"
	"github.com/cypherlabdev/odds-comparison-service/internal/models"
	"github.com/cypherlabdev/odds-comparison-service/internal/service"
)

// KafkaConsumer consumes odds snapshots from Kafka, builds comparison
// matrices and classification statistics, and caches the results.
type KafkaConsumer struct {
	reader     *kafka.Reader
	engine     service.Engine
	classifier service.Classifier
	cache      service.Cache
	logger     zerolog.Logger
}

// KafkaConsumerConfig holds Kafka consumer configuration
type KafkaConsumerConfig struct {
	Brokers []string // e.g., ["localhost:9092"]
	Topic   string   // e.g., "odds_snapshots"
	GroupID string   // e.g., "odds-comparison"
}

// NewKafkaConsumer creates a new Kafka consumer
func NewKafkaConsumer(
	config KafkaConsumerConfig,
	engine service.Engine,
	classifier service.Classifier,
	cache service.Cache,
	logger zerolog.Logger,
) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.GroupID,
		MinBytes:       1e3,  // 1KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: 1000, // Commit every 1 second
	})

	return &KafkaConsumer{
		reader:     reader,
		engine:     engine,
		classifier: classifier,
		cache:      cache,
		logger:     logger.With().Str("component", "kafka_consumer").Logger(),
	}
}

// Start begins consuming messages from Kafka
func (c *KafkaConsumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("topic", c.reader.Config().Topic).
		Str("group_id", c.reader.Config().GroupID).
		Msg("started consuming from Kafka")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("stopping Kafka consumer")
			return c.reader.Close()

		default:
			// Read message
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if err == context.Canceled {
					return nil
				}
				c.logger.Error().Err(err).Msg("failed to fetch message")
				continue
			}

			// Process message
			if err := c.processMessage(ctx, msg); err != nil {
				c.logger.Error().
					Err(err).
					Int64("offset", msg.Offset).
					Str("key", string(msg.Key)).
					Msg("failed to process message")
				// Don't commit if processing failed
				continue
			}

			// Commit message
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error().Err(err).Msg("failed to commit message")
			}
		}
	}
}

// processMessage processes a single Kafka message
func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message) error {
	start := time.Now()

	var snapshotMsg models.OddsSnapshotMessage
	if err := json.Unmarshal(msg.Value, &snapshotMsg); err != nil {
		metrics.RecordSnapshot(time.Since(start), 0, err)
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	c.logger.Debug().
		Str("batch_id", snapshotMsg.BatchID).
		Str("sport", snapshotMsg.Sport).
		Str("market", string(snapshotMsg.Market)).
		Int("event_count", len(snapshotMsg.Events)).
		Int("result_count", len(snapshotMsg.Results)).
		Msg("processing odds snapshot")

	// Build comparison matrices for every event in the scan
	snapshot := c.engine.BuildSnapshot(&snapshotMsg)

	// Aggregate classification statistics over the full batch
	summary := c.classifier.Summarize(snapshotMsg.Results)

	// Cache computed output in Redis
	if err := c.cache.SetSnapshot(ctx, snapshot, snapshotMsg.Results); err != nil {
		metrics.RecordSnapshot(time.Since(start), 0, err)
		return fmt.Errorf("failed to cache snapshot: %w", err)
	}

	rows := 0
	for i := range snapshot.Events {
		rows += len(snapshot.Events[i].Matrix.Rows)
	}
	metrics.RecordSnapshot(time.Since(start), rows, nil)
	metrics.RecordClassification(
		summary.ArbitrageCount,
		summary.NearMissCount,
		summary.Total-summary.ArbitrageCount-summary.NearMissCount,
	)

	c.logger.Info().
		Str("batch_id", snapshotMsg.BatchID).
		Int("matrix_count", len(snapshot.Events)).
		Int("arbitrage_count", summary.ArbitrageCount).
		Int("near_miss_count", summary.NearMissCount).
		Str("total_profit", summary.TotalProfit.String()).
		Msg("processed and cached odds snapshot")

	return nil
}

// Close closes the Kafka reader
func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
