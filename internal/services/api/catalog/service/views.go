package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	corecat "marketflow/internal/core/catalog"
	"marketflow/internal/platform/logger"
	"marketflow/internal/platform/store"
)

// listingViewsTable is the ClickHouse sink for browse impressions
const listingViewsTable = "listing_views"

// viewRecorder appends listing-view events to ClickHouse fire-and-forget
// insert failures are logged and dropped; callers never observe them
type viewRecorder struct {
	ch      store.Clickhouse
	timeout time.Duration
}

func newViewRecorder(ch store.Clickhouse) *viewRecorder {
	return &viewRecorder{ch: ch, timeout: 5 * time.Second}
}

// RecordAsync dispatches one event per returned listing and returns immediately
func (v *viewRecorder) RecordAsync(listings []corecat.Listing, userID string) {
	if v == nil || v.ch == nil || len(listings) == 0 {
		return
	}

	now := time.Now().UTC()
	rows := make([][]any, 0, len(listings))
	for _, l := range listings {
		rows = append(rows, []any{uuid.NewString(), l.ID, userID, now})
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), v.timeout)
		defer cancel()
		if err := v.ch.Insert(ctx, listingViewsTable, rows); err != nil {
			logger.Named("catalog-views").Warn().Err(err).Int("events", len(rows)).Msg("view event insert dropped")
		}
	}()
}
