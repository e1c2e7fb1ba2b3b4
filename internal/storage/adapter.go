package storage

import (
	"context"
	"encoding/json"

	"github.com/abarbosa/catalogo/internal/models"
	"github.com/charmbracelet/log"
)

// Adapter reads and writes the catalog [models.Snapshot] as a JSON document
// under a fixed key.
//
// Load never fails: a missing key, corrupt document or backend error all
// degrade to the provided fallback. Store reports its error to the caller,
// who decides whether to drop it (the store's write-behind path does).
type Adapter struct {
	backend Backend
	log     *log.Logger
}

// NewAdapter creates an adapter over the given backend. The logger is
// optional; when present, swallowed load failures are logged at debug level.
func NewAdapter(backend Backend, logger *log.Logger) *Adapter {
	return &Adapter{backend: backend, log: logger}
}

// Load returns the snapshot stored under key, or fallback when nothing usable
// is stored there.
func (a *Adapter) Load(ctx context.Context, key string, fallback models.Snapshot) models.Snapshot {
	data, ok, err := a.backend.Get(ctx, key)
	if err != nil {
		a.debug("load failed, using fallback", "key", key, "error", err)
		return fallback
	}
	if !ok {
		return fallback
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		a.debug("stored document is corrupt, using fallback", "key", key, "error", err)
		return fallback
	}
	return snap
}

// Store serializes the snapshot and overwrites whatever is under key.
func (a *Adapter) Store(ctx context.Context, key string, snap models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return a.backend.Set(ctx, key, data)
}

func (a *Adapter) debug(msg string, kv ...any) {
	if a.log != nil {
		a.log.Debug(msg, kv...)
	}
}
