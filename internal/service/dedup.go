package service

import (
	"context"

	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
)

// dedupStore is the storage contract duplicate checks run against.
type dedupStore interface {
	ExistsBySourceURL(ctx context.Context, sourceURL string) (bool, error)
}

// DedupIndex decides whether an incoming record duplicates a known lead.
// It combines a per-run seen set (catches repeats inside one fetch) with
// the storage layer, which stays the sole arbiter of uniqueness across
// runs and processes. An index is scoped to a single ingestion run.
type DedupIndex struct {
	store dedupStore
	seen  map[string]struct{}
}

// NewDedupIndex creates a dedup index for one ingestion run
func NewDedupIndex(store dedupStore) *DedupIndex {
	return &DedupIndex{
		store: store,
		seen:  make(map[string]struct{}),
	}
}

// IsDuplicate reports whether the record was already seen in this run or
// already exists as a lead. New records are marked seen. Records without
// a source identifier are never duplicates: there is nothing stable to
// match them against.
func (d *DedupIndex) IsDuplicate(ctx context.Context, rec domain.RawBusinessRecord) (bool, error) {
	if rec.SourceURL == "" {
		return false, nil
	}

	if _, ok := d.seen[rec.SourceURL]; ok {
		return true, nil
	}

	exists, err := d.store.ExistsBySourceURL(ctx, rec.SourceURL)
	if err != nil {
		return false, err
	}
	if exists {
		d.seen[rec.SourceURL] = struct{}{}
		return true, nil
	}

	d.seen[rec.SourceURL] = struct{}{}
	return false, nil
}
