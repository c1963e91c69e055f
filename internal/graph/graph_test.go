package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lookkg/lookkg/internal/domain"
	"github.com/lookkg/lookkg/internal/scoring"
)

func seedItem(id, categoria, cor, material, estilo, ocasion, clima string) domain.Item {
	it := domain.Item{
		ItemID:    id,
		Nome:      id,
		Categoria: categoria,
		Cor:       cor,
		Padrao:    "liso",
		Material:  material,
		Estilo:    estilo,
		Ocasion:   ocasion,
		Clima:     clima,
	}
	norm, err := it.Normalize()
	if err != nil {
		panic(err)
	}
	return norm
}

func seedCatalog() []domain.Item {
	return []domain.Item{
		seedItem("saia_azul", "saia", "azul", "jeans", "classico", "casual", "quente"),
		seedItem("blusa_branca", "blusa", "branco", "algodao", "classico", "casual", "quente"),
		seedItem("sapato_nude", "sapato", "nude", "couro", "classico", "casual", "quente"),
		seedItem("bolsa_marrom", "bolsa", "marrom", "couro", "classico", "casual", "quente"),
		seedItem("acessorio_cinza", "acessorio", "cinza", "metal", "classico", "casual", "quente"),
		seedItem("calca_bege", "calca", "bege", "algodao", "classico", "casual", "quente"),
	}
}

// checkConsistency asserts that the graph agrees with ScorePair over the
// given catalog: an edge exists iff the pair scores positive, with matching
// weight.
func checkConsistency(t *testing.T, g *Graph, items []domain.Item) {
	t.Helper()
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			want, _ := scoring.ScorePair(items[i], items[j])
			nbrs, ok := g.Neighbors(items[i].ItemID)
			require.True(t, ok, "node %s missing", items[i].ItemID)
			var got float64
			var found bool
			for _, n := range nbrs {
				if n.Item.ItemID == items[j].ItemID {
					got, found = n.Weight, true
					break
				}
			}
			if want > 0 {
				require.True(t, found, "edge (%s, %s) missing", items[i].ItemID, items[j].ItemID)
				assert.InDelta(t, want, got, 1e-9)
			} else {
				assert.False(t, found, "edge (%s, %s) should not exist", items[i].ItemID, items[j].ItemID)
			}
		}
	}
}

// ============================================================================
// Rebuild Tests
// ============================================================================

func TestRebuild_Empty(t *testing.T) {
	g := New()
	stats := g.Rebuild(nil)
	assert.Equal(t, Stats{Nodes: 0, Edges: 0}, stats)
}

func TestRebuild_SeedCatalog(t *testing.T) {
	g := New()
	items := seedCatalog()
	stats := g.Rebuild(items)
	assert.Equal(t, len(items), stats.Nodes)
	assert.Greater(t, stats.Edges, 0)
	checkConsistency(t, g, items)
}

func TestRebuild_NoEdgeBetweenBottoms(t *testing.T) {
	g := New()
	items := seedCatalog()
	g.Rebuild(items)

	nbrs, ok := g.Neighbors("saia_azul")
	require.True(t, ok)
	for _, n := range nbrs {
		assert.NotEqual(t, "calca_bege", n.Item.ItemID, "two bottoms must not be linked")
	}
}

func TestRebuild_Discards(t *testing.T) {
	g := New()
	g.Rebuild(seedCatalog())
	stats := g.Rebuild(seedCatalog()[:2])
	assert.Equal(t, 2, stats.Nodes)
	checkConsistency(t, g, seedCatalog()[:2])
}

// ============================================================================
// Upsert Tests
// ============================================================================

func TestUpsert_EmptyGraphDelegatesToRebuild(t *testing.T) {
	g := New()
	items := seedCatalog()
	stats := g.Upsert(items[0], items)
	assert.Equal(t, len(items), stats.Nodes)
	checkConsistency(t, g, items)
}

func TestUpsert_AddsNewItemIncrementally(t *testing.T) {
	g := New()
	items := seedCatalog()
	g.Rebuild(items)

	jaqueta := seedItem("jaqueta_preta", "jaqueta", "preto", "couro", "streetwear", "noite", "frio")
	items = append(items, jaqueta)
	stats := g.Upsert(jaqueta, items)

	assert.Equal(t, len(items), stats.Nodes)
	checkConsistency(t, g, items)
}

func TestUpsert_UpdateRemovesDeadEdges(t *testing.T) {
	g := New()
	items := seedCatalog()
	g.Rebuild(items)

	// Recategorize the blusa as a second saia: the saia_azul edge must die.
	updated := seedItem("blusa_branca", "saia", "branco", "algodao", "classico", "casual", "quente")
	for i := range items {
		if items[i].ItemID == "blusa_branca" {
			items[i] = updated
		}
	}
	g.Upsert(updated, items)

	nbrs, ok := g.Neighbors("blusa_branca")
	require.True(t, ok)
	for _, n := range nbrs {
		assert.NotEqual(t, "saia_azul", n.Item.ItemID)
		assert.NotEqual(t, "calca_bege", n.Item.ItemID)
	}
	checkConsistency(t, g, items)
}

// ============================================================================
// Delete Tests
// ============================================================================

func TestDelete_RemovesIncidentEdges(t *testing.T) {
	g := New()
	items := seedCatalog()
	before := g.Rebuild(items)

	degree := g.Degree("saia_azul")
	require.Greater(t, degree, 0)

	after := g.Delete("saia_azul")
	assert.Equal(t, before.Nodes-1, after.Nodes)
	assert.Equal(t, before.Edges-degree, after.Edges)

	_, ok := g.Node("saia_azul")
	assert.False(t, ok)
	for _, it := range items[1:] {
		nbrs, ok := g.Neighbors(it.ItemID)
		require.True(t, ok)
		for _, n := range nbrs {
			assert.NotEqual(t, "saia_azul", n.Item.ItemID)
		}
	}
}

func TestDelete_UnknownIDNoOp(t *testing.T) {
	g := New()
	before := g.Rebuild(seedCatalog())
	after := g.Delete("ghost_00000000")
	assert.Equal(t, before, after)
}

func TestDelete_MatchesRebuildAfterRemoval(t *testing.T) {
	g := New()
	items := seedCatalog()
	g.Rebuild(items)
	incremental := g.Delete("saia_azul")

	fresh := New()
	rebuilt := fresh.Rebuild(items[1:])
	assert.Equal(t, rebuilt, incremental)
}

// ============================================================================
// Query Tests
// ============================================================================

func TestNeighbors_UnknownNode(t *testing.T) {
	g := New()
	g.Rebuild(seedCatalog())
	_, ok := g.Neighbors("ghost_00000000")
	assert.False(t, ok)
}

func TestNeighbors_SortedByWeightDesc(t *testing.T) {
	g := New()
	g.Rebuild(seedCatalog())
	nbrs, ok := g.Neighbors("saia_azul")
	require.True(t, ok)
	for i := 1; i < len(nbrs); i++ {
		assert.GreaterOrEqual(t, nbrs[i-1].Weight, nbrs[i].Weight)
	}
}

func TestCandidates_ExcludesAndSorts(t *testing.T) {
	g := New()
	g.Rebuild(seedCatalog())

	cands := g.Candidates(map[string]bool{"saia_azul": true})
	assert.Len(t, cands, len(seedCatalog())-1)
	for i := 1; i < len(cands); i++ {
		assert.Less(t, cands[i-1].ItemID, cands[i].ItemID)
	}
	for _, c := range cands {
		assert.NotEqual(t, "saia_azul", c.ItemID)
	}
}

func TestStats(t *testing.T) {
	g := New()
	assert.Equal(t, Stats{}, g.Stats())
	stats := g.Rebuild(seedCatalog())
	assert.Equal(t, stats, g.Stats())
}
