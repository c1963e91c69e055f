// Package event publishes catalog and graph domain events to Kafka.
// Publishing is best-effort: recommendation traffic never fails because a
// broker is down.
package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lookkg/lookkg/pkg/logger"

	pkgkafka "github.com/lookkg/lookkg/pkg/kafka"

	"github.com/lookkg/lookkg/internal/domain"
	"github.com/lookkg/lookkg/internal/graph"
)

// Kafka topic constants for catalog and graph domain events.
const (
	TopicItemUpserted = "lookkg.item.upserted"
	TopicItemDeleted  = "lookkg.item.deleted"
	TopicGraphRebuilt = "lookkg.graph.rebuilt"
)

// Aggregate type constants.
const (
	AggregateTypeItem  = "item"
	AggregateTypeGraph = "graph"
)

// Source identifier for events originating from this service.
const SourceLookKG = "lookkg"

// ItemUpsertedData is the payload for an item.upserted event.
type ItemUpsertedData struct {
	Item  domain.Item `json:"item"`
	Nodes int         `json:"nodes"`
	Edges int         `json:"edges"`
}

// ItemDeletedData is the payload for an item.deleted event.
type ItemDeletedData struct {
	ItemID string `json:"item_id"`
	Nodes  int    `json:"nodes"`
	Edges  int    `json:"edges"`
}

// GraphRebuiltData is the payload for a graph.rebuilt event.
type GraphRebuiltData struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}

// Producer publishes domain events. A nil Producer is valid and drops every
// event, which is how deployments without Kafka run.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates an event producer. Pass a nil kafka producer to
// disable publishing.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	if kafka == nil {
		return nil
	}
	return &Producer{kafka: kafka, logger: logger}
}

func (p *Producer) publish(ctx context.Context, topic, aggregateID, aggregateType string, data any) error {
	if p == nil {
		return nil
	}
	ev, err := pkgkafka.NewEvent(topic, aggregateID, aggregateType, SourceLookKG, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", topic, err)
	}
	if cid := logger.CorrelationIDFromContext(ctx); cid != "" {
		ev.WithCorrelationID(cid)
	}
	if err := p.kafka.Publish(ctx, topic, ev); err != nil {
		return fmt.Errorf("publish %s event: %w", topic, err)
	}
	p.logger.DebugContext(ctx, "published event",
		slog.String("topic", topic),
		slog.String("aggregate_id", aggregateID),
	)
	return nil
}

// PublishItemUpserted publishes an item.upserted event.
func (p *Producer) PublishItemUpserted(ctx context.Context, item domain.Item, stats graph.Stats) error {
	data := ItemUpsertedData{Item: item, Nodes: stats.Nodes, Edges: stats.Edges}
	return p.publish(ctx, TopicItemUpserted, item.ItemID, AggregateTypeItem, data)
}

// PublishItemDeleted publishes an item.deleted event.
func (p *Producer) PublishItemDeleted(ctx context.Context, itemID string, stats graph.Stats) error {
	data := ItemDeletedData{ItemID: itemID, Nodes: stats.Nodes, Edges: stats.Edges}
	return p.publish(ctx, TopicItemDeleted, itemID, AggregateTypeItem, data)
}

// PublishGraphRebuilt publishes a graph.rebuilt event.
func (p *Producer) PublishGraphRebuilt(ctx context.Context, stats graph.Stats) error {
	data := GraphRebuiltData{Nodes: stats.Nodes, Edges: stats.Edges}
	return p.publish(ctx, TopicGraphRebuilt, "graph", AggregateTypeGraph, data)
}
