// Package service implements the recommendation use cases on top of the
// catalog store, the compatibility graph and the scoring rules.
package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	apperrors "github.com/lookkg/lookkg/pkg/errors"

	"github.com/lookkg/lookkg/internal/domain"
	"github.com/lookkg/lookkg/internal/event"
	"github.com/lookkg/lookkg/internal/graph"
	"github.com/lookkg/lookkg/internal/scoring"
	"github.com/lookkg/lookkg/internal/store"
	"github.com/lookkg/lookkg/internal/vocab"
)

// Recommendation is one scored suggestion.
type Recommendation struct {
	ItemID    string   `json:"item_id"`
	Nome      string   `json:"nome"`
	Categoria string   `json:"categoria"`
	Score     float64  `json:"score"`
	Rationale []string `json:"rationale"`
}

// CompleteLookResult is the outcome of a greedy look completion.
type CompleteLookResult struct {
	Targets map[string][]Recommendation `json:"targets"`
	Missing []string                    `json:"missing"`
}

// Recommender wires the store, graph, scoring rules and event producer into
// the service operations the HTTP layer exposes.
type Recommender struct {
	store  store.Catalog
	graph  *graph.Graph
	events *event.Producer
	logger *slog.Logger
}

// New creates a Recommender. events may be nil when publishing is disabled.
func New(catalog store.Catalog, g *graph.Graph, events *event.Producer, logger *slog.Logger) *Recommender {
	return &Recommender{store: catalog, graph: g, events: events, logger: logger}
}

// UpsertItem normalizes and validates a raw item, persists it, then
// rescores its edges against the whole catalog. The store write commits
// before the graph mutation so a crash between the two loses only edges,
// which the next rebuild restores.
func (r *Recommender) UpsertItem(ctx context.Context, raw domain.Item) (domain.Item, graph.Stats, error) {
	item, err := raw.Normalize()
	if err != nil {
		return domain.Item{}, graph.Stats{}, err
	}

	saved, err := r.store.Add(ctx, item)
	if err != nil {
		return domain.Item{}, graph.Stats{}, err
	}

	all, err := r.store.LoadAll(ctx)
	if err != nil {
		return domain.Item{}, graph.Stats{}, err
	}
	stats := r.graph.Upsert(saved, all)

	if err := r.events.PublishItemUpserted(ctx, saved, stats); err != nil {
		r.logger.WarnContext(ctx, "failed to publish item.upserted event",
			slog.String("item_id", saved.ItemID),
			slog.String("error", err.Error()),
		)
	}

	r.logger.InfoContext(ctx, "item upserted",
		slog.String("item_id", saved.ItemID),
		slog.String("categoria", saved.Categoria),
		slog.Int("nodes", stats.Nodes),
		slog.Int("edges", stats.Edges),
	)
	return saved, stats, nil
}

// DeleteItem removes an item from the store and the graph.
func (r *Recommender) DeleteItem(ctx context.Context, itemID string) error {
	ok, err := r.store.Delete(ctx, itemID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFound("item", itemID)
	}
	stats := r.graph.Delete(itemID)

	if err := r.events.PublishItemDeleted(ctx, itemID, stats); err != nil {
		r.logger.WarnContext(ctx, "failed to publish item.deleted event",
			slog.String("item_id", itemID),
			slog.String("error", err.Error()),
		)
	}

	r.logger.InfoContext(ctx, "item deleted",
		slog.String("item_id", itemID),
		slog.Int("nodes", stats.Nodes),
		slog.Int("edges", stats.Edges),
	)
	return nil
}

// RebuildGraph reconstructs the graph from the full catalog.
func (r *Recommender) RebuildGraph(ctx context.Context) (graph.Stats, error) {
	all, err := r.store.LoadAll(ctx)
	if err != nil {
		return graph.Stats{}, err
	}
	stats := r.graph.Rebuild(all)

	if err := r.events.PublishGraphRebuilt(ctx, stats); err != nil {
		r.logger.WarnContext(ctx, "failed to publish graph.rebuilt event",
			slog.String("error", err.Error()),
		)
	}

	r.logger.InfoContext(ctx, "graph rebuilt",
		slog.Int("nodes", stats.Nodes),
		slog.Int("edges", stats.Edges),
	)
	return stats, nil
}

// GetItem retrieves one item by id.
func (r *Recommender) GetItem(ctx context.Context, itemID string) (domain.Item, error) {
	return r.store.Get(ctx, itemID)
}

// ListCatalog returns the full catalog.
func (r *Recommender) ListCatalog(ctx context.Context) ([]domain.Item, error) {
	return r.store.LoadAll(ctx)
}

// SearchItems runs a free-text search over the catalog.
func (r *Recommender) SearchItems(ctx context.Context, query string, limit int) ([]domain.Item, error) {
	return r.store.Search(ctx, query, limit)
}

// CategoryAllowed reports whether adding an item of the given category to
// the context keeps the look valid: the category is not already present,
// and its singleton role (if any) is unoccupied.
func CategoryAllowed(ctx []domain.Item, cat string) bool {
	for _, it := range ctx {
		if it.Categoria == cat {
			return false
		}
	}
	role, ok := vocab.Role(cat)
	if !ok || !vocab.SingletonRoles[role] {
		return true
	}
	for _, it := range ctx {
		if r, ok := it.Role(); ok && r == role {
			return false
		}
	}
	return true
}

// Selection narrows the catalog to the context items of a recommendation
// request. Precedence: item_id, then itens (matched by nome or item_id),
// then query (first nome substring match). An empty selection falls back to
// the first catalog item.
type Selection struct {
	ItemID string
	Itens  []string
	Query  string
}

// ResolveSelection resolves a Selection against the catalog.
func (r *Recommender) ResolveSelection(ctx context.Context, sel Selection) ([]domain.Item, error) {
	all, err := r.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	var selected []domain.Item
	switch {
	case sel.ItemID != "":
		if it, err := r.store.Get(ctx, sel.ItemID); err == nil {
			selected = append(selected, it)
		}
	case len(sel.Itens) > 0:
		selected = matchByNameOrID(all, sel.Itens)
	case sel.Query != "":
		q := strings.ToLower(strings.TrimSpace(sel.Query))
		for _, it := range all {
			if strings.Contains(it.Nome, q) {
				selected = append(selected, it)
				break
			}
		}
	}

	if len(selected) == 0 && len(all) > 0 {
		selected = all[:1]
	}
	return selected, nil
}

// ResolveItems resolves look items by nome or item_id, without the
// first-item fallback ResolveSelection applies.
func (r *Recommender) ResolveItems(ctx context.Context, itens []string) ([]domain.Item, error) {
	all, err := r.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return matchByNameOrID(all, itens), nil
}

func matchByNameOrID(all []domain.Item, itens []string) []domain.Item {
	names := make(map[string]bool, len(itens))
	for _, s := range itens {
		names[strings.ToLower(strings.TrimSpace(s))] = true
	}
	var selected []domain.Item
	for _, it := range all {
		if names[it.Nome] || names[it.ItemID] {
			selected = append(selected, it)
		}
	}
	return selected
}

// SuggestComplements scores every admissible candidate against the selected
// context and returns the top_k above the threshold, sorted by score
// descending. Cancellation is honored between candidates.
func (r *Recommender) SuggestComplements(ctx context.Context, selected []domain.Item, topK int, threshold float64, cons scoring.Constraints) ([]Recommendation, error) {
	exclude := make(map[string]bool, len(selected))
	for _, it := range selected {
		exclude[it.ItemID] = true
	}

	results := make([]Recommendation, 0)
	for _, c := range r.graph.Candidates(exclude) {
		if err := ctx.Err(); err != nil {
			return nil, apperrors.Wrap(err, "suggest complements aborted")
		}
		if !CategoryAllowed(selected, c.Categoria) {
			continue
		}
		s, rat := scoring.Bottleneck(selected, c)
		s *= scoring.ConstraintMultiplier(c, cons)
		if s >= threshold {
			results = append(results, Recommendation{
				ItemID:    c.ItemID,
				Nome:      c.Nome,
				Categoria: c.Categoria,
				Score:     s,
				Rationale: scoring.Strings(rat),
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// CompleteLook greedily fills each target category in order. The best match
// for a target joins the working context, so later targets are scored
// against it. Targets that cannot be placed are reported in Missing.
func (r *Recommender) CompleteLook(ctx context.Context, selected []domain.Item, targets []string, topK int) (CompleteLookResult, error) {
	out := CompleteLookResult{
		Targets: make(map[string][]Recommendation),
		Missing: []string{},
	}
	workingCtx := append([]domain.Item(nil), selected...)
	candidates := r.graph.Candidates(nil)

	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return CompleteLookResult{}, apperrors.Wrap(err, "complete look aborted")
		}
		if !CategoryAllowed(workingCtx, target) {
			out.Missing = append(out.Missing, target+" (já existe no look ou papel único ocupado)")
			continue
		}

		type scored struct {
			item domain.Item
			rec  Recommendation
		}
		pool := make([]scored, 0)
		for _, c := range candidates {
			if err := ctx.Err(); err != nil {
				return CompleteLookResult{}, apperrors.Wrap(err, "complete look aborted")
			}
			if c.Categoria != target || !CategoryAllowed(workingCtx, c.Categoria) {
				continue
			}
			s, rat := scoring.Bottleneck(workingCtx, c)
			pool = append(pool, scored{
				item: c,
				rec: Recommendation{
					ItemID:    c.ItemID,
					Nome:      c.Nome,
					Categoria: c.Categoria,
					Score:     s,
					Rationale: scoring.Strings(rat),
				},
			})
		}
		sort.SliceStable(pool, func(i, j int) bool { return pool[i].rec.Score > pool[j].rec.Score })

		if len(pool) == 0 || pool[0].rec.Score <= 0 {
			out.Missing = append(out.Missing, target)
			continue
		}

		n := topK
		if n > len(pool) {
			n = len(pool)
		}
		recs := make([]Recommendation, 0, n)
		for _, p := range pool[:n] {
			recs = append(recs, p.rec)
		}
		out.Targets[target] = recs
		workingCtx = append(workingCtx, pool[0].item)
	}
	return out, nil
}
