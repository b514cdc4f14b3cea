package reports

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/ModesteNGOMA/geofuite/internal/pkg/blobstore"
	"github.com/ModesteNGOMA/geofuite/internal/pkg/logger"
	apperrors "github.com/ModesteNGOMA/geofuite/pkg/errors"
)

// StorageKey is the single fixed key the whole collection is mirrored under.
const StorageKey = "geo_fuite_data"

// Repository holds the report collection in memory as the single source of
// truth and mirrors it to the blob store after every mutation. The stored
// blob is the full ordered collection serialized as one JSON array,
// insertion order = display order (most recent first).
type Repository struct {
	mu      sync.RWMutex
	store   *blobstore.Store
	reports []LeakReport
}

// NewRepository loads the collection from the blob store. An absent key
// initializes an empty collection; an unreadable or unparseable blob is
// logged and treated as absent so startup never fails on corrupt data.
func NewRepository(store *blobstore.Store) *Repository {
	r := &Repository{store: store}

	raw, err := store.Get(StorageKey)
	switch {
	case errors.Is(err, apperrors.ErrKeyNotFound):
		r.reports = []LeakReport{}
	case err != nil:
		logger.Warn("failed to read stored reports, starting empty: %v", err)
		r.reports = []LeakReport{}
	default:
		var loaded []LeakReport
		if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
			logger.Warn("stored reports blob is corrupt, starting empty: %v", err)
			loaded = []LeakReport{}
		}
		r.reports = loaded
	}

	return r
}

// Create prepends the report to the collection and persists the whole
// collection. On a persistence failure (quota exceeded) the report stays in
// memory and the error is returned so the caller can report an unpersisted
// state to the user.
func (r *Repository) Create(report *LeakReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports = append([]LeakReport{*report}, r.reports...)
	return r.flushLocked()
}

// List returns a page of reports in display order (most recent first).
func (r *Repository) List(page, limit int) []LeakReport {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if page < 1 {
		page = 1
	}
	// Same fallback as the pagination clamp, for callers bypassing it.
	if limit < 1 {
		limit = 10
	}

	start := (page - 1) * limit
	if start >= len(r.reports) {
		return []LeakReport{}
	}
	end := start + limit
	if end > len(r.reports) {
		end = len(r.reports)
	}

	out := make([]LeakReport, end-start)
	copy(out, r.reports[start:end])
	return out
}

// GetByID returns the report with the given identifier.
func (r *Repository) GetByID(id string) (*LeakReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.reports {
		if r.reports[i].ID == id {
			report := r.reports[i]
			return &report, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// Count returns the collection size.
func (r *Repository) Count() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.reports))
}

// Flush re-persists the current collection unchanged. Persisting the same
// collection twice yields the same serialized blob.
func (r *Repository) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.flushLocked()
}

func (r *Repository) flushLocked() error {
	data, err := json.Marshal(r.reports)
	if err != nil {
		return err
	}
	return r.store.Put(StorageKey, string(data))
}
