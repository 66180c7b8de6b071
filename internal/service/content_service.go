package service

import (
	"context"
	"fmt"
	"go-admin-dashboard/internal/data"
)

// Entity is a stored record type that can be re-stamped with a new id.
type Entity[T any] interface {
	data.Record
	WithID(id int64) T
}

// ContentServicer defines the operations every content list and form uses.
type ContentServicer[T any] interface {
	List(ctx context.Context, q Query) (Result[T], error)
	Get(ctx context.Context, id int64) (T, error)
	Validate(rec T) FieldErrors
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, rec T) (T, error)
	Delete(ctx context.Context, id int64) (T, error)
}

// ContentService provides create/read/update/delete over one stored collection.
// Every mutation is a whole-collection read, modify and overwrite inside one
// store transaction.
type ContentService[T Entity[T]] struct {
	kv       data.KVStore
	coll     *data.Collection[T]
	ids      *data.IDGenerator
	spec     ListSpec[T]
	validate func(T) FieldErrors
	label    string
	describe func(T) string
	log      *ActivityLog
	// reserved holds other keys whose records can come back into coll, so
	// their ids are never handed out again.
	reserved []*data.Collection[T]
}

var _ ContentServicer[data.FAQ] = (*ContentService[data.FAQ])(nil)

// Label is the singular display name of the content type, e.g. "Achievement".
func (s *ContentService[T]) Label() string {
	return s.label
}

// List returns one page of the collection filtered and sorted by q.
func (s *ContentService[T]) List(ctx context.Context, q Query) (Result[T], error) {
	records, err := s.coll.Load(ctx, s.kv)
	if err != nil {
		return Result[T]{}, err
	}
	return Apply(records, s.spec, q), nil
}

// Get returns the record with the given id.
func (s *ContentService[T]) Get(ctx context.Context, id int64) (T, error) {
	var zero T
	records, err := s.coll.Load(ctx, s.kv)
	if err != nil {
		return zero, err
	}
	rec, i := data.Find(records, id)
	if i < 0 {
		return zero, fmt.Errorf("%s %d: %w", s.coll.Key, id, data.ErrNotFound)
	}
	return rec, nil
}

// Validate returns the required-field errors of rec.
func (s *ContentService[T]) Validate(rec T) FieldErrors {
	if s.validate == nil {
		return FieldErrors{}
	}
	return s.validate(rec)
}

// Create assigns a fresh id to rec and appends it to the collection.
func (s *ContentService[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	if fe := s.Validate(rec); fe.Any() {
		return zero, &ValidationError{Fields: fe}
	}
	err := s.kv.Update(ctx, func(kv data.KV) error {
		records, err := s.coll.Load(ctx, kv)
		if err != nil {
			return err
		}
		taken := records[:len(records):len(records)]
		for _, c := range s.reserved {
			other, err := c.Load(ctx, kv)
			if err != nil {
				return err
			}
			taken = append(taken, other...)
		}
		rec = rec.WithID(data.NextUnused(s.ids, taken))
		if err := s.coll.Save(ctx, kv, append(records, rec)); err != nil {
			return err
		}
		return s.record(ctx, kv, "added", rec)
	})
	if err != nil {
		return zero, err
	}
	return rec, nil
}

// Update replaces the stored record carrying rec's id.
func (s *ContentService[T]) Update(ctx context.Context, rec T) (T, error) {
	var zero T
	if fe := s.Validate(rec); fe.Any() {
		return zero, &ValidationError{Fields: fe}
	}
	err := s.kv.Update(ctx, func(kv data.KV) error {
		records, err := s.coll.Load(ctx, kv)
		if err != nil {
			return err
		}
		updated, ok := data.Replace(records, rec)
		if !ok {
			return fmt.Errorf("%s %d: %w", s.coll.Key, rec.RecordID(), data.ErrNotFound)
		}
		if err := s.coll.Save(ctx, kv, updated); err != nil {
			return err
		}
		return s.record(ctx, kv, "updated", rec)
	})
	if err != nil {
		return zero, err
	}
	return rec, nil
}

// Delete removes the record with the given id and returns it.
func (s *ContentService[T]) Delete(ctx context.Context, id int64) (T, error) {
	var removed T
	err := s.kv.Update(ctx, func(kv data.KV) error {
		records, err := s.coll.Load(ctx, kv)
		if err != nil {
			return err
		}
		remaining, rec, ok := data.Remove(records, id)
		if !ok {
			return fmt.Errorf("%s %d: %w", s.coll.Key, id, data.ErrNotFound)
		}
		if err := s.coll.Save(ctx, kv, remaining); err != nil {
			return err
		}
		removed = rec
		return s.record(ctx, kv, "deleted", rec)
	})
	return removed, err
}

func (s *ContentService[T]) record(ctx context.Context, kv data.KV, verb string, rec T) error {
	if s.log == nil {
		return nil
	}
	msg := fmt.Sprintf("%s %q %s", s.label, s.describe(rec), verb)
	return s.log.Append(ctx, kv, msg)
}
