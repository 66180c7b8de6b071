package service

import (
	"context"
	"fmt"
	"go-admin-dashboard/internal/data"
)

// RecycleBin holds FAQ entries removed from the FAQ list until they are
// restored or purged. Entries never expire.
type RecycleBin struct {
	kv  data.KVStore
	log *ActivityLog
}

// NewRecycleBin creates a RecycleBin over the "faq" and "recycleBin" keys.
func NewRecycleBin(kv data.KVStore, log *ActivityLog) *RecycleBin {
	return &RecycleBin{kv: kv, log: log}
}

// List returns the bin contents in stored order.
func (b *RecycleBin) List(ctx context.Context) ([]data.FAQ, error) {
	return data.RecycleBin.Load(ctx, b.kv)
}

// Get returns the binned entry with the given id.
func (b *RecycleBin) Get(ctx context.Context, id int64) (data.FAQ, error) {
	entries, err := data.RecycleBin.Load(ctx, b.kv)
	if err != nil {
		return data.FAQ{}, err
	}
	f, i := data.Find(entries, id)
	if i < 0 {
		return data.FAQ{}, fmt.Errorf("%s %d: %w", data.KeyRecycleBin, id, data.ErrNotFound)
	}
	return f, nil
}

// MoveToBin removes the FAQ from the live list and appends it to the bin.
func (b *RecycleBin) MoveToBin(ctx context.Context, id int64) (data.FAQ, error) {
	return b.move(ctx, id, data.FAQs, data.RecycleBin, "moved to Recycle Bin")
}

// Restore removes the entry from the bin and appends it to the live list.
func (b *RecycleBin) Restore(ctx context.Context, id int64) (data.FAQ, error) {
	return b.move(ctx, id, data.RecycleBin, data.FAQs, "restored")
}

// Purge deletes the entry from the bin permanently.
func (b *RecycleBin) Purge(ctx context.Context, id int64) (data.FAQ, error) {
	var removed data.FAQ
	err := b.kv.Update(ctx, func(kv data.KV) error {
		entries, err := data.RecycleBin.Load(ctx, kv)
		if err != nil {
			return err
		}
		remaining, f, ok := data.Remove(entries, id)
		if !ok {
			return fmt.Errorf("%s %d: %w", data.KeyRecycleBin, id, data.ErrNotFound)
		}
		if err := data.RecycleBin.Save(ctx, kv, remaining); err != nil {
			return err
		}
		removed = f
		return b.record(ctx, kv, f, "deleted permanently")
	})
	return removed, err
}

// move relocates one record between two keys in a single transaction.
func (b *RecycleBin) move(ctx context.Context, id int64, from, to *data.Collection[data.FAQ], verb string) (data.FAQ, error) {
	var moved data.FAQ
	err := b.kv.Update(ctx, func(kv data.KV) error {
		src, err := from.Load(ctx, kv)
		if err != nil {
			return err
		}
		dst, err := to.Load(ctx, kv)
		if err != nil {
			return err
		}
		remaining, f, ok := data.Remove(src, id)
		if !ok {
			return fmt.Errorf("%s %d: %w", from.Key, id, data.ErrNotFound)
		}
		if err := from.Save(ctx, kv, remaining); err != nil {
			return err
		}
		if err := to.Save(ctx, kv, append(dst, f)); err != nil {
			return err
		}
		moved = f
		return b.record(ctx, kv, f, verb)
	})
	return moved, err
}

func (b *RecycleBin) record(ctx context.Context, kv data.KV, f data.FAQ, verb string) error {
	if b.log == nil {
		return nil
	}
	return b.log.Append(ctx, kv, fmt.Sprintf("FAQ %q %s", f.Question, verb))
}
