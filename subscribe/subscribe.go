package subscribe

import (
	"context"
	"log"
	"time"

	"aurora/models"
)

// Func is the asynchronous subscription call the form invokes once an
// email passes validation. Implementations resolve to a result carrying
// success/failure plus a human-readable message, or return an error when
// the call itself could not complete (connectivity loss).
//
// The form treats this as opaque - it never knows whether it is talking
// to the mock or a real endpoint.
type Func func(ctx context.Context, email string) (models.SubscribeResult, error)

// Mock returns a timer-backed subscriber that always accepts after the
// given delay. This is what the app wires in when no subscribe endpoint
// is configured, so the form flow can be exercised without any network.
func Mock(delay time.Duration) Func {
	return func(ctx context.Context, email string) (models.SubscribeResult, error) {
		log.Printf("[Subscribe] Mock subscription for %s (delay %v)", email, delay)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return models.SubscribeResult{}, ctx.Err()
		}

		return models.SubscribeResult{
			OK:      true,
			Message: "You're on the list! We'll be in touch before launch.",
		}, nil
	}
}
