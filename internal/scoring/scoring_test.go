package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lookkg/lookkg/internal/domain"
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

var (
	saiaAzul    = seedItem("saia_azul", "saia", "azul", "jeans", "classico", "casual", "quente")
	blusaBranca = seedItem("blusa_branca", "blusa", "branco", "algodao", "classico", "casual", "quente")
	sapatoNude  = seedItem("sapato_nude", "sapato", "nude", "couro", "classico", "casual", "quente")
	calcaBege   = seedItem("calca_bege", "calca", "bege", "algodao", "classico", "casual", "quente")
	blusaPreta  = seedItem("blusa_preta_formal", "blusa", "preto", "algodao", "formal", "formal", "frio")
)

// ============================================================================
// ScorePair Tests
// ============================================================================

func TestScorePair_SameCategoryRejected(t *testing.T) {
	s, rat := ScorePair(blusaBranca, blusaPreta)
	assert.Equal(t, 0.0, s)
	require.Len(t, rat, 1)
	assert.Equal(t, "mesma categoria", rat[0].String())
	assert.Equal(t, KindRejection, rat[0].Kind)
}

func TestScorePair_SelfExclusion(t *testing.T) {
	s, rat := ScorePair(saiaAzul, saiaAzul)
	assert.Equal(t, 0.0, s)
	require.Len(t, rat, 1)
	assert.Equal(t, "mesma categoria", rat[0].String())
}

func TestScorePair_TwoBottomsRejected(t *testing.T) {
	s, rat := ScorePair(saiaAzul, calcaBege)
	assert.Equal(t, 0.0, s)
	require.Len(t, rat, 1)
	assert.Equal(t, "papéis incompatíveis", rat[0].String())
}

func TestScorePair_Symmetry(t *testing.T) {
	items := []domain.Item{saiaAzul, blusaBranca, sapatoNude, calcaBege, blusaPreta}
	for _, a := range items {
		for _, b := range items {
			sa, _ := ScorePair(a, b)
			sb, _ := ScorePair(b, a)
			assert.InDelta(t, sa, sb, 1e-9, "asymmetric for (%s, %s)", a.ItemID, b.ItemID)
		}
	}
}

func TestScorePair_SymmetryBelowClamp(t *testing.T) {
	// A weak pairing whose total stays under 1.0, so the clamp cannot hide
	// a direction-dependent matrix lookup.
	chique := seedItem("saia_vermelha", "saia", "vermelho", "seda", "classico", "formal", "frio")
	treino := seedItem("blusa_laranja", "blusa", "laranja", "malha", "casual", "esportivo", "quente")

	sa, _ := ScorePair(chique, treino)
	sb, _ := ScorePair(treino, chique)
	assert.InDelta(t, sa, sb, 1e-9)
	assert.Less(t, sa, 1.0, "pair must not clamp for this test to mean anything")
}

func TestScorePair_Range(t *testing.T) {
	items := []domain.Item{saiaAzul, blusaBranca, sapatoNude, calcaBege, blusaPreta}
	for _, a := range items {
		for _, b := range items {
			s, _ := ScorePair(a, b)
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0)
		}
	}
}

func TestScorePair_SaiaAzulBlusaBranca(t *testing.T) {
	s, rat := ScorePair(saiaAzul, blusaBranca)
	assert.Greater(t, s, 0.0)

	display := Strings(rat)
	assert.Contains(t, display, "cor: neutro")
	assert.Contains(t, display, "estilo compatível")
	assert.Contains(t, display, "ocasião compatível")
	assert.Contains(t, display, "clima compatível")
	assert.Contains(t, display, "materiais coerentes")
	assert.NotContains(t, display, "padrões colidem")

	// 0.4 (neutro) + 1.0*0.3 + 1.0*0.3 + 1.0*0.3 + 0.7*0.25 (pesado×leve)
	assert.InDelta(t, 1.0, s, 1e-9, "sum 1.475 clamps to 1")
}

func TestScorePair_MissingMaterialIsNeutral(t *testing.T) {
	a := saiaAzul
	a.Material = ""
	s, rat := ScorePair(a, blusaBranca)
	assert.Greater(t, s, 0.0)
	assert.Contains(t, Strings(rat), "materiais neutros")
}

func TestScorePair_PatternClashPenalized(t *testing.T) {
	a := saiaAzul
	a.Padrao = "listrado"
	b := blusaBranca
	b.Padrao = "xadrez"
	sPlain, _ := ScorePair(saiaAzul, blusaBranca)
	sClash, rat := ScorePair(a, b)
	assert.Less(t, sClash, sPlain)
	assert.Contains(t, Strings(rat), "padrões colidem")
}

// ============================================================================
// Color Rule Order Tests
// ============================================================================

func colorPair(corA, corB string) (domain.Item, domain.Item) {
	a := seedItem("a", "saia", corA, "jeans", "casual", "casual", "quente")
	b := seedItem("b", "blusa", corB, "algodao", "casual", "casual", "quente")
	return a, b
}

func firstColorRationale(t *testing.T, rat []Rationale) Rationale {
	t.Helper()
	for _, r := range rat {
		if r.Kind == KindColor {
			return r
		}
	}
	t.Fatal("no color rationale emitted")
	return Rationale{}
}

func TestColorRule_SameColor(t *testing.T) {
	a, b := colorPair("azul", "azul")
	_, rat := ScorePair(a, b)
	r := firstColorRationale(t, rat)
	assert.Equal(t, "cor: mesma cor", r.String())
	assert.InDelta(t, 0.6, r.Contribution, 1e-9)
}

func TestColorRule_Analogous(t *testing.T) {
	a, b := colorPair("azul", "ciano")
	_, rat := ScorePair(a, b)
	r := firstColorRationale(t, rat)
	assert.Equal(t, "cor: análogas", r.String())
	assert.InDelta(t, 0.45, r.Contribution, 1e-9)
}

func TestColorRule_Complementary(t *testing.T) {
	a, b := colorPair("azul", "laranja")
	_, rat := ScorePair(a, b)
	r := firstColorRationale(t, rat)
	assert.Equal(t, "cor: complementares", r.String())
	assert.InDelta(t, 0.5, r.Contribution, 1e-9)
}

func TestColorRule_Triad(t *testing.T) {
	a, b := colorPair("vermelho", "amarelo")
	_, rat := ScorePair(a, b)
	r := firstColorRationale(t, rat)
	assert.Equal(t, "cor: tríade", r.String())
	assert.InDelta(t, 0.35, r.Contribution, 1e-9)
}

func TestColorRule_NeutralAfterRelations(t *testing.T) {
	// marrom and bege are analogous AND both neutral: analogous wins.
	a, b := colorPair("marrom", "bege")
	_, rat := ScorePair(a, b)
	assert.Equal(t, "cor: análogas", firstColorRationale(t, rat).String())
}

func TestColorRule_NeutralVsNeutral(t *testing.T) {
	// Distinct unrelated neutrals fall through to "neutro".
	a, b := colorPair("preto", "branco")
	_, rat := ScorePair(a, b)
	r := firstColorRationale(t, rat)
	assert.Equal(t, "cor: neutro", r.String())
	assert.InDelta(t, 0.4, r.Contribution, 1e-9)
}

func TestColorRule_LowContrast(t *testing.T) {
	a, b := colorPair("rosa", "ciano")
	_, rat := ScorePair(a, b)
	r := firstColorRationale(t, rat)
	assert.Equal(t, "cor: baixo contraste", r.String())
	assert.InDelta(t, 0.2, r.Contribution, 1e-9)
}

// ============================================================================
// Bottleneck Tests
// ============================================================================

func TestBottleneck_EmptyContext(t *testing.T) {
	s, rat := Bottleneck(nil, blusaBranca)
	assert.Equal(t, 0.0, s)
	assert.Empty(t, rat)
}

func TestBottleneck_TakesMinimum(t *testing.T) {
	ctx := []domain.Item{saiaAzul, blusaPreta}
	cand := sapatoNude

	s1, _ := ScorePair(saiaAzul, cand)
	s2, _ := ScorePair(blusaPreta, cand)
	want := s1
	if s2 < want {
		want = s2
	}

	got, _ := Bottleneck(ctx, cand)
	assert.InDelta(t, want, got, 1e-9)
}

func TestBottleneck_TwoBottomsRejectBottomCandidate(t *testing.T) {
	ctx := []domain.Item{saiaAzul, calcaBege}
	s, rat := Bottleneck(ctx, seedItem("saia_verde", "saia", "verde", "jeans", "casual", "casual", "quente"))
	assert.Equal(t, 0.0, s)
	assert.Contains(t, Strings(rat), "mesma categoria")

	s, rat = Bottleneck(ctx, seedItem("calca_preta", "calca", "preto", "algodao", "casual", "casual", "quente"))
	assert.Equal(t, 0.0, s)
	assert.Contains(t, Strings(rat), "papéis incompatíveis")
}

func TestBottleneck_DeduplicatesRationale(t *testing.T) {
	ctx := []domain.Item{blusaBranca, sapatoNude}
	_, rat := Bottleneck(ctx, seedItem("acessorio_cinza", "acessorio", "cinza", "metal", "classico", "casual", "quente"))

	display := Strings(rat)
	seen := make(map[string]int)
	for _, d := range display {
		seen[d]++
	}
	for d, n := range seen {
		assert.Equal(t, 1, n, "rationale %q repeated", d)
	}
}

// ============================================================================
// Constraint Multiplier Tests
// ============================================================================

func TestConstraintMultiplier_None(t *testing.T) {
	assert.InDelta(t, 1.0, ConstraintMultiplier(saiaAzul, Constraints{}), 1e-9)
}

func TestConstraintMultiplier_SingleMatch(t *testing.T) {
	assert.InDelta(t, 1.05, ConstraintMultiplier(saiaAzul, Constraints{Ocasion: "casual"}), 1e-9)
	assert.InDelta(t, 1.05, ConstraintMultiplier(saiaAzul, Constraints{Clima: "quente"}), 1e-9)
}

func TestConstraintMultiplier_BothMatch(t *testing.T) {
	mul := ConstraintMultiplier(saiaAzul, Constraints{Ocasion: "casual", Clima: "quente"})
	assert.InDelta(t, 1.1025, mul, 1e-9)
}

func TestConstraintMultiplier_Mismatch(t *testing.T) {
	mul := ConstraintMultiplier(blusaPreta, Constraints{Ocasion: "casual", Clima: "quente"})
	assert.InDelta(t, 1.0, mul, 1e-9)
}

// ============================================================================
// Role Incompatibility Tests
// ============================================================================

func TestRoleIncompatible(t *testing.T) {
	assert.True(t, RoleIncompatible("saia", "calca"), "two bottoms")
	assert.True(t, RoleIncompatible("sapato", "sapato"))
	assert.True(t, RoleIncompatible("bolsa", "bolsa"))
	assert.False(t, RoleIncompatible("blusa", "jaqueta"), "top is not singleton")
	assert.False(t, RoleIncompatible("blusa", "saia"))
	assert.False(t, RoleIncompatible("vestido", "saia"), "unknown categories never reject")
}
