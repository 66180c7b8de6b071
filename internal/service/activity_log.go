package service

import (
	"context"
	"go-admin-dashboard/internal/data"
	"time"
)

// MaxLogEntries caps the stored activity log; older entries are dropped.
const MaxLogEntries = 200

// LogTimestampFormat is the layout of LogEntry.Timestamp.
const LogTimestampFormat = "2006-01-02 03:04 PM"

// ActivityLog records one line per successful dashboard mutation.
type ActivityLog struct {
	kv  data.KVStore
	ids *data.IDGenerator
	now func() time.Time
}

// NewActivityLog creates an ActivityLog stored under the "log" key.
func NewActivityLog(kv data.KVStore, ids *data.IDGenerator) *ActivityLog {
	return &ActivityLog{kv: kv, ids: ids, now: time.Now}
}

var logSpec = ListSpec[data.LogEntry]{
	SearchFields: func(e data.LogEntry) []string { return []string{e.Message, e.Timestamp} },
}

// Append adds message to the log using kv, so it can join a caller's transaction.
func (l *ActivityLog) Append(ctx context.Context, kv data.KV, message string) error {
	entries, err := data.ActivityLog.Load(ctx, kv)
	if err != nil {
		return err
	}
	entry := data.LogEntry{
		ID:        data.NextUnused(l.ids, entries),
		Message:   message,
		Timestamp: l.now().Format(LogTimestampFormat),
	}
	entries = append([]data.LogEntry{entry}, entries...)
	if len(entries) > MaxLogEntries {
		entries = entries[:MaxLogEntries]
	}
	return data.ActivityLog.Save(ctx, kv, entries)
}

// Record adds message to the log in its own transaction.
func (l *ActivityLog) Record(ctx context.Context, message string) error {
	return l.kv.Update(ctx, func(kv data.KV) error {
		return l.Append(ctx, kv, message)
	})
}

// List returns log entries, newest first, matching q.Search.
func (l *ActivityLog) List(ctx context.Context, q Query) (Result[data.LogEntry], error) {
	entries, err := data.ActivityLog.Load(ctx, l.kv)
	if err != nil {
		return Result[data.LogEntry]{}, err
	}
	if q.PageSize == 0 {
		q.PageSize = MaxLogEntries
	}
	return Apply(entries, logSpec, q), nil
}
