package events

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/utils"
)

// ForwardToAnalytics subscribes to bus and sends every event to PostHog until ctx is done.
// It returns immediately when analytics is not configured.
func ForwardToAnalytics(ctx context.Context, bus *Bus, client *utils.PosthogClientWrapper) {
	if !client.IsInitialized() {
		return
	}
	ch, cancel := bus.Subscribe()
	go func() {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-ch:
				if !ok {
					return
				}
				distinctID := evt.Subject
				if distinctID == "" {
					distinctID = "anonymous"
				}
				client.Enqueue(distinctID, "document_submitted", map[string]any{
					"kind":     string(evt.Kind),
					"folio":    evt.Folio,
					"event_id": evt.ID.String(),
				})
			}
		}
	}()
}
