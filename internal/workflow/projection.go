package workflow

import (
	"sort"
	"sync"

	"github.com/frolovkirill/pdf2office/internal/domain"
)

// Projection is the in-memory view of conversions not yet durably reconciled.
// Entries are keyed by record id so concurrent completions replace their own
// snapshot and never race on positions in a list.
type Projection struct {
	mu      sync.RWMutex
	entries map[string]domain.ConversionRecord
}

func NewProjection() *Projection {
	return &Projection{
		entries: make(map[string]domain.ConversionRecord),
	}
}

// Replace atomically sets the snapshot for rec's id.
func (p *Projection) Replace(rec domain.ConversionRecord) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.entries[rec.ID] = rec
}

// Drop removes the snapshot for id once the durable row is authoritative.
func (p *Projection) Drop(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.entries, id)
}

// Merge combines the durable records with the owner's in-flight snapshots,
// deduplicated by id with in-flight entries taking precedence, ordered
// newest first.
func (p *Projection) Merge(ownerID string, durable []*domain.ConversionRecord) []*domain.ConversionRecord {
	p.mu.RLock()
	defer p.mu.RUnlock()

	merged := make(map[string]domain.ConversionRecord, len(durable)+len(p.entries))
	for _, rec := range durable {
		merged[rec.ID] = *rec
	}

	for id, rec := range p.entries {
		if rec.OwnerID == ownerID {
			merged[id] = rec
		}
	}

	records := make([]*domain.ConversionRecord, 0, len(merged))
	for id := range merged {
		rec := merged[id]
		records = append(records, &rec)
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].ID < records[j].ID
	})

	return records
}
