//go:build unit

package service

import (
	"context"
	"fmt"
	"go-admin-dashboard/internal/data"
	"testing"
	"time"
)

func TestActivityLog_NewestFirstAndCapped(t *testing.T) {
	ctx := context.Background()
	kv := newMockKV()
	log := NewActivityLog(kv, data.NewIDGenerator())
	log.now = func() time.Time { return time.Date(2024, 5, 1, 14, 5, 0, 0, time.UTC) }

	for i := 0; i < MaxLogEntries+5; i++ {
		if err := log.Record(ctx, fmt.Sprintf("entry %d", i)); err != nil {
			t.Fatalf("Record() returned an unexpected error: %v", err)
		}
	}

	res, err := log.List(ctx, Query{})
	if err != nil {
		t.Fatalf("List() returned an unexpected error: %v", err)
	}
	if res.Total != MaxLogEntries {
		t.Errorf("expected %d entries, got %d", MaxLogEntries, res.Total)
	}
	first := res.Items[0]
	if first.Message != fmt.Sprintf("entry %d", MaxLogEntries+4) {
		t.Errorf("expected newest entry first, got %q", first.Message)
	}
	if first.Timestamp != "2024-05-01 02:05 PM" {
		t.Errorf("unexpected timestamp format %q", first.Timestamp)
	}

	res, _ = log.List(ctx, Query{Search: "ENTRY 204"})
	if res.Total != 1 {
		t.Errorf("expected search to match one entry, got %d", res.Total)
	}
}
