// Package mq carries identity lifecycle events between the auth layer and
// the stores that key state by acting identity. Identity changes are the one
// cross-cutting signal in the system: stores take the acting user as an
// explicit parameter, and this channel tells them when to reload or forget.
package mq

import (
	"context"
	"encoding/json"
	"log"

	"dishcovery/favorites"
	"dishcovery/rdx"
)

const identityChannel = "identity-events"

// IdentityEvent signals that an identity signed in or out.
type IdentityEvent struct {
	UserID string `json:"user_id"`
	Action string `json:"action"` // "login" or "logout"
}

// Emit publishes an identity event; failures are logged, never fatal.
func Emit(event IdentityEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("mq: failed to marshal event: %v", err)
		return
	}
	if err := rdx.Conn.Publish(context.Background(), identityChannel, data).Err(); err != nil {
		log.Printf("mq: failed to publish event: %v", err)
	}
}

// StartIdentityWorker subscribes to identity events and invalidates the
// per-session favorites cache for the affected user, so a fresh sign-in reads
// the persisted blob instead of a stale session map.
func StartIdentityWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, identityChannel)
	ch := sub.Channel()

	log.Println("[IdentityWorker] Listening for identity events...")

	for msg := range ch {
		var event IdentityEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[IdentityWorker] Failed to parse event: %v", err)
			continue
		}
		favorites.DefaultStore.Forget(event.UserID)
		log.Printf("[IdentityWorker] Reset favorites session for %s (%s)", event.UserID, event.Action)
	}
}
