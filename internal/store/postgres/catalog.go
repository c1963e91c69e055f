// Package postgres implements the catalog store on PostgreSQL for
// deployments where the catalog must outlive a single host.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lookkg/lookkg/pkg/database"
	apperrors "github.com/lookkg/lookkg/pkg/errors"

	"github.com/lookkg/lookkg/internal/domain"
	"github.com/lookkg/lookkg/internal/store"
)

const itemColumns = `item_id, nome, categoria, cor, padrao, material, estilo, ocasion, clima, paleta`

// Catalog implements store.Catalog using PostgreSQL.
type Catalog struct {
	db database.DBTX
}

var _ store.Catalog = (*Catalog)(nil)

// New creates a PostgreSQL-backed catalog.
func New(db database.DBTX) *Catalog {
	return &Catalog{db: db}
}

func scanItem(row pgx.Row) (domain.Item, error) {
	var it domain.Item
	err := row.Scan(
		&it.ItemID, &it.Nome, &it.Categoria, &it.Cor, &it.Padrao,
		&it.Material, &it.Estilo, &it.Ocasion, &it.Clima, &it.Paleta,
	)
	return it, err
}

func collectItems(rows pgx.Rows) ([]domain.Item, error) {
	defer rows.Close()
	items := make([]domain.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// LoadAll returns every item ordered by id.
func (c *Catalog) LoadAll(ctx context.Context) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY item_id`

	rows, err := c.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.Store("load catalog", err)
	}
	items, err := collectItems(rows)
	if err != nil {
		return nil, apperrors.Store("load catalog", err)
	}
	return items, nil
}

// Get retrieves an item by id.
func (c *Catalog) Get(ctx context.Context, itemID string) (domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = $1`

	it, err := scanItem(c.db.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Item{}, apperrors.NotFound("item", itemID)
		}
		return domain.Item{}, apperrors.Store("get item", err)
	}
	return it, nil
}

// Add upserts an item. A provided item_id wins; otherwise the normalized
// (nome, categoria) pair is the key and an existing row keeps its id.
func (c *Catalog) Add(ctx context.Context, item domain.Item) (domain.Item, error) {
	if item.ItemID == "" {
		query := `SELECT item_id FROM items WHERE lower(nome) = lower($1) AND categoria = $2`
		var existingID string
		err := c.db.QueryRow(ctx, query, item.Nome, item.Categoria).Scan(&existingID)
		switch {
		case err == nil:
			item.ItemID = existingID
		case errors.Is(err, pgx.ErrNoRows):
			item.ItemID = store.NewItemID(item.Categoria)
		default:
			return domain.Item{}, apperrors.Store("lookup item by name", err)
		}
	}

	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (item_id) DO UPDATE SET
			nome = EXCLUDED.nome,
			categoria = EXCLUDED.categoria,
			cor = EXCLUDED.cor,
			padrao = EXCLUDED.padrao,
			material = EXCLUDED.material,
			estilo = EXCLUDED.estilo,
			ocasion = EXCLUDED.ocasion,
			clima = EXCLUDED.clima,
			paleta = EXCLUDED.paleta,
			updated_at = now()`

	_, err := c.db.Exec(ctx, query,
		item.ItemID, item.Nome, item.Categoria, item.Cor, item.Padrao,
		item.Material, item.Estilo, item.Ocasion, item.Clima, item.Paleta,
	)
	if err != nil {
		return domain.Item{}, apperrors.Store("upsert item", err)
	}
	return item, nil
}

// Delete removes an item by id; the bool reports whether a row existed.
func (c *Catalog) Delete(ctx context.Context, itemID string) (bool, error) {
	tag, err := c.db.Exec(ctx, `DELETE FROM items WHERE item_id = $1`, itemID)
	if err != nil {
		return false, apperrors.Store("delete item", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Search matches the query case-insensitively against every textual
// attribute, truncated to limit.
func (c *Catalog) Search(ctx context.Context, query string, limit int) ([]domain.Item, error) {
	if limit < 0 {
		limit = 0
	}
	sql := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE $1 = '' OR concat_ws(' ', nome, categoria, cor, material, estilo, ocasion, clima, padrao) ILIKE '%' || $1 || '%'
		ORDER BY item_id
		LIMIT $2`

	rows, err := c.db.Query(ctx, sql, query, limit)
	if err != nil {
		return nil, apperrors.Store("search items", err)
	}
	items, err := collectItems(rows)
	if err != nil {
		return nil, apperrors.Store("search items", err)
	}
	return items, nil
}
