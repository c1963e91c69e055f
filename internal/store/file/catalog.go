// Package file implements the catalog store on a single JSON file. It is
// the default backend: zero infrastructure, suitable for local runs and
// small catalogs.
package file

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	apperrors "github.com/lookkg/lookkg/pkg/errors"

	"github.com/lookkg/lookkg/internal/domain"
	"github.com/lookkg/lookkg/internal/store"
)

const catalogFile = "catalog.json"

var _ store.Catalog = (*Catalog)(nil)

// Catalog persists items as a JSON array under dir/catalog.json.
// Thread-safe via sync.Mutex; every operation reads and rewrites the whole
// file, which is fine at catalog scale.
type Catalog struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

// New creates a file catalog rooted at dir, creating it if needed.
func New(dir string, logger *slog.Logger) (*Catalog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperrors.Store("create data dir", err)
	}
	return &Catalog{path: filepath.Join(dir, catalogFile), logger: logger}, nil
}

// loadLocked reads the catalog file. A missing or corrupt file is treated
// as an empty catalog and reset, never propagated as an error.
func (c *Catalog) loadLocked() []domain.Item {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return []domain.Item{}
	}
	var items []domain.Item
	if err := json.Unmarshal(data, &items); err != nil {
		c.logger.Warn("catalog file corrupt, resetting",
			slog.String("path", c.path),
			slog.String("error", err.Error()),
		)
		_ = os.WriteFile(c.path, []byte("[]"), 0o644)
		return []domain.Item{}
	}
	if items == nil {
		items = []domain.Item{}
	}
	return items
}

func (c *Catalog) saveLocked(items []domain.Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return apperrors.Store("encode catalog", err)
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return apperrors.Store("write catalog", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return apperrors.Store("replace catalog", err)
	}
	return nil
}

// LoadAll returns every item in the catalog.
func (c *Catalog) LoadAll(_ context.Context) ([]domain.Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loadLocked(), nil
}

// Get retrieves an item by id.
func (c *Catalog) Get(_ context.Context, itemID string) (domain.Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, it := range c.loadLocked() {
		if it.ItemID == itemID {
			return it, nil
		}
	}
	return domain.Item{}, apperrors.NotFound("item", itemID)
}

// Add upserts an item. Matching by item_id wins; otherwise a match on the
// normalized (nome, categoria) pair replaces the stored item and keeps its
// id. New items get a generated id.
func (c *Catalog) Add(_ context.Context, item domain.Item) (domain.Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.loadLocked()

	if item.ItemID != "" {
		for i := range items {
			if items[i].ItemID == item.ItemID {
				items[i] = item
				return item, c.saveLocked(items)
			}
		}
	}

	for i := range items {
		if sameKey(items[i], item) {
			item.ItemID = items[i].ItemID
			items[i] = item
			return item, c.saveLocked(items)
		}
	}

	if item.ItemID == "" {
		item.ItemID = store.NewItemID(item.Categoria)
	}
	items = append(items, item)
	return item, c.saveLocked(items)
}

func sameKey(a, b domain.Item) bool {
	return strings.EqualFold(strings.TrimSpace(a.Nome), strings.TrimSpace(b.Nome)) &&
		strings.EqualFold(strings.TrimSpace(a.Categoria), strings.TrimSpace(b.Categoria))
}

// Delete removes an item by id; the bool reports whether it existed.
func (c *Catalog) Delete(_ context.Context, itemID string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.loadLocked()
	kept := items[:0]
	for _, it := range items {
		if it.ItemID != itemID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return false, nil
	}
	return true, c.saveLocked(kept)
}

// Search returns at most limit items matching the query.
func (c *Catalog) Search(_ context.Context, query string, limit int) ([]domain.Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if limit < 0 {
		limit = 0
	}

	items := c.loadLocked()
	out := make([]domain.Item, 0, limit)
	for _, it := range items {
		if len(out) >= limit {
			break
		}
		if store.MatchesQuery(it, query) {
			out = append(out, it)
		}
	}
	return out, nil
}
