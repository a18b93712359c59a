// Package postgres provides pgx-backed persistence for accounts, logged
// records, and outbox events.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// EventMetadata describes how to route an outbox event.
type EventMetadata struct {
	Topic          string
	PartitionKeyFn func(userID string) string
}

var eventCatalog = map[string]EventMetadata{
	"workout.logged": {
		Topic:          "fitness_events",
		PartitionKeyFn: func(userID string) string { return userID },
	},
	"meal.logged": {
		Topic:          "fitness_events",
		PartitionKeyFn: func(userID string) string { return userID },
	},
	"mood.logged": {
		Topic:          "fitness_events",
		PartitionKeyFn: func(userID string) string { return userID },
	},
}

// insertOutbox records an event row inside the caller's transaction so the
// record insert and its event commit or roll back together.
func insertOutbox(ctx context.Context, tx pgx.Tx, aggregateType, aggregateID, userID, eventType string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	meta := eventCatalog[eventType]
	if meta.Topic == "" {
		return fmt.Errorf("unknown event type: %s", eventType)
	}

	partitionKey := meta.PartitionKeyFn(userID)
	dedupeKey := fmt.Sprintf("%s:%s", aggregateID, eventType)

	const stmt = `INSERT INTO outbox (aggregate_type, aggregate_id, event_type, topic, partition_key, payload, dedupe_key)
        VALUES ($1,$2,$3,$4,$5,$6,$7)`

	_, err = tx.Exec(ctx, stmt,
		aggregateType,
		aggregateID,
		eventType,
		meta.Topic,
		partitionKey,
		body,
		dedupeKey,
	)
	return err
}
