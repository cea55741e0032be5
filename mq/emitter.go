package mq

import (
	"context"
	"encoding/json"
	"log"

	"voyago/rdx"
)

const channel = "booking-events"

// BookingEvent describes a booking lifecycle change published for
// downstream consumers (stats, notifications).
type BookingEvent struct {
	Event     string `json:"event"`
	UserID    string `json:"userId"`
	BookingID string `json:"bookingId"`
	Variant   string `json:"variant"`
	Status    string `json:"status,omitempty"`
}

// Emit publishes a booking event to Redis. Failures are logged, never
// surfaced: events are best-effort.
//
// Callers fire Emit from handler goroutines, and the request context is
// cancelled as soon as the handler returns. The publish is detached from
// that cancellation so the event still goes out.
func Emit(ctx context.Context, event BookingEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event: %v", err)
		return
	}

	if err := rdx.Conn.Publish(publishCtx(ctx), channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish event to Redis: %v", err)
	}
}

// publishCtx strips cancellation from the caller's context while keeping
// its values.
func publishCtx(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

// StartBookingEventWorker consumes booking events and keeps per-variant
// counters in Redis. Runs until the subscription channel closes.
func StartBookingEventWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[BookingEventWorker] Listening for booking events...")

	for msg := range ch {
		var event BookingEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[BookingEventWorker] Failed to parse event: %v", err)
			continue
		}

		key := "stats:" + event.Event + ":" + event.Variant
		if err := rdx.Conn.Incr(ctx, key).Err(); err != nil {
			log.Printf("[BookingEventWorker] Failed to bump %s: %v", key, err)
		}
	}
}
