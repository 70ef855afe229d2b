package mq

import (
	"context"
	"encoding/json"
	"log"

	"nextshop/models"
	"nextshop/rdx"
)

const channel = "store-events"

// Emit publishes a store event to Redis. Handlers call it after every
// catalog/banner/settings mutation so the cache worker can react.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s event: %v", eventName, err)
	}
}

// StartCacheWorker subscribes to store events and invalidates the Redis
// listing caches for the touched entity type.
func StartCacheWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[CacheWorker] Listening for store events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[CacheWorker] Failed to parse event: %v", err)
			continue
		}

		var prefix string
		switch event.EntityType {
		case "product":
			prefix = "products:"
		case "banner":
			prefix = "banners:"
		case "settings":
			prefix = "settings:"
		default:
			continue
		}
		if err := rdx.RdxDelPrefix(prefix); err != nil {
			log.Printf("[CacheWorker] Cache invalidation for %s failed: %v", event.EntityType, err)
		}
	}
}
