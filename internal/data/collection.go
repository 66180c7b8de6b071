package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no record carries the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrMalformed is returned when a stored document is not valid JSON for its key.
	ErrMalformed = errors.New("stored document is malformed")
	// ErrSchemaVersion is returned when a document was written by a newer schema.
	ErrSchemaVersion = errors.New("stored document has an unsupported schema version")
)

// Record is implemented by every type stored in a collection.
type Record interface {
	RecordID() int64
}

// Collection is the accessor for one JSON array stored under one key.
// The key and the schema version together form the storage contract.
type Collection[T Record] struct {
	Key     string
	Version int
}

// NewCollection creates an accessor for key at the given schema version.
func NewCollection[T Record](key string, version int) *Collection[T] {
	return &Collection[T]{Key: key, Version: version}
}

// Accessors for every stored collection.
var (
	Achievements = NewCollection[Achievement](KeyAchievements, 1)
	Activities   = NewCollection[Activity](KeyActivities, 1)
	NewsItems    = NewCollection[News](KeyNews, 1)
	FAQs         = NewCollection[FAQ](KeyFAQ, 1)
	RecycleBin   = NewCollection[FAQ](KeyRecycleBin, 1)
	ActivityLog  = NewCollection[LogEntry](KeyLog, 1)
)

// Load returns the stored array, or an empty slice when the key is absent.
func (c *Collection[T]) Load(ctx context.Context, kv KV) ([]T, error) {
	e, err := kv.Get(ctx, c.Key)
	if err != nil {
		return nil, err
	}
	records := []T{}
	if e == nil {
		return records, nil
	}
	if e.SchemaVersion > c.Version {
		return nil, fmt.Errorf("%w: key %q has version %d, want <= %d", ErrSchemaVersion, c.Key, e.SchemaVersion, c.Version)
	}
	if err := json.Unmarshal(e.Payload, &records); err != nil {
		return nil, fmt.Errorf("%w: key %q: %v", ErrMalformed, c.Key, err)
	}
	if records == nil {
		// A stored "null" reads as an empty collection.
		records = []T{}
	}
	return records, nil
}

// Save serialises the whole slice and overwrites the stored array.
func (c *Collection[T]) Save(ctx context.Context, kv KV, records []T) error {
	if records == nil {
		records = []T{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", c.Key, err)
	}
	return kv.Put(ctx, c.Key, Entry{Payload: payload, SchemaVersion: c.Version})
}

// Find returns the record with the given id and its index, or -1.
func Find[T Record](records []T, id int64) (T, int) {
	for i, r := range records {
		if r.RecordID() == id {
			return r, i
		}
	}
	var zero T
	return zero, -1
}

// Contains reports whether a record with the given id exists.
func Contains[T Record](records []T, id int64) bool {
	_, i := Find(records, id)
	return i >= 0
}

// Replace returns a copy of records with the record matching rec's id swapped in place.
func Replace[T Record](records []T, rec T) ([]T, bool) {
	_, i := Find(records, rec.RecordID())
	if i < 0 {
		return records, false
	}
	out := make([]T, len(records))
	copy(out, records)
	out[i] = rec
	return out, true
}

// Remove returns a copy of records without the record carrying id, and the removed record.
func Remove[T Record](records []T, id int64) ([]T, T, bool) {
	removed, i := Find(records, id)
	if i < 0 {
		return records, removed, false
	}
	out := make([]T, 0, len(records)-1)
	out = append(out, records[:i]...)
	out = append(out, records[i+1:]...)
	return out, removed, true
}
