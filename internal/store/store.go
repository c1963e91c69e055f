// Package store defines the catalog persistence contract the recommender
// depends on. Implementations live in the file and postgres subpackages.
package store

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/lookkg/lookkg/internal/domain"
)

// Catalog is the persistence contract for normalized items. Add is an
// upsert: keyed by item_id when present, otherwise by the normalized
// (nome, categoria) pair, in which case the existing item keeps its id.
type Catalog interface {
	// LoadAll returns every item in the catalog.
	LoadAll(ctx context.Context) ([]domain.Item, error)

	// Get retrieves an item by its id.
	Get(ctx context.Context, itemID string) (domain.Item, error)

	// Add upserts an item, generating an id when missing, and returns the
	// saved item.
	Add(ctx context.Context, item domain.Item) (domain.Item, error)

	// Delete removes an item by id; the bool reports whether it existed.
	Delete(ctx context.Context, itemID string) (bool, error)

	// Search matches query case-insensitively against every textual
	// attribute and returns at most limit items. A non-positive limit
	// yields no items.
	Search(ctx context.Context, query string, limit int) ([]domain.Item, error)
}

// NewItemID generates an id of the form "<categoria prefix>_<8 hex chars>".
// The prefix is the first 10 characters of the category, or "item" when the
// category is empty.
func NewItemID(categoria string) string {
	prefix := categoria
	if len(prefix) > 10 {
		prefix = prefix[:10]
	}
	if prefix == "" {
		prefix = "item"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return prefix + "_" + suffix
}

// MatchesQuery reports whether an item matches a free-text query: a
// case-insensitive substring test across all textual attributes. Both file
// and postgres backends implement Search with these semantics.
func MatchesQuery(it domain.Item, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []string{
		it.Nome, it.Categoria, it.Cor, it.Material,
		it.Estilo, it.Ocasion, it.Clima, it.Padrao,
	} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
