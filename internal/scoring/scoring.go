// Package scoring implements the pairwise compatibility rules. Scores are
// sums of signed contributions from the vocab tables, clamped to [0,1], with
// a rationale entry per rule that fired.
package scoring

import (
	"fmt"

	"github.com/lookkg/lookkg/internal/domain"
	"github.com/lookkg/lookkg/internal/vocab"
)

// Kind tags the rule family that produced a rationale entry.
type Kind string

const (
	KindRejection Kind = "rejection"
	KindColor     Kind = "color"
	KindStyle     Kind = "style"
	KindOccasion  Kind = "occasion"
	KindClimate   Kind = "climate"
	KindMaterial  Kind = "material"
	KindPattern   Kind = "pattern"
)

// Rationale is one scoring rule outcome. Label is the user-facing reason in
// Portuguese; Contribution is the signed amount the rule added to the score.
type Rationale struct {
	Kind         Kind
	Label        string
	Contribution float64
}

// String renders the entry the way the API surfaces it. Color reasons carry
// a "cor: " prefix; every other kind is its bare label.
func (r Rationale) String() string {
	if r.Kind == KindColor {
		return "cor: " + r.Label
	}
	return r.Label
}

// Strings renders a rationale list for API responses. It never returns nil
// so empty lists serialize as [].
func Strings(rs []Rationale) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.String())
	}
	return out
}

// RoleIncompatible reports whether two categories can never share an edge:
// both map to the same singleton role, or both are bottoms.
func RoleIncompatible(catA, catB string) bool {
	ra, okA := vocab.Role(catA)
	rb, okB := vocab.Role(catB)
	if !okA || !okB {
		return false
	}
	if ra == rb && vocab.SingletonRoles[ra] {
		return true
	}
	return ra == vocab.RoleBottom && rb == vocab.RoleBottom
}

// colorScore applies the color rules in priority order; the first matching
// rule wins.
func colorScore(a, b string) (float64, string) {
	if a == "" || b == "" {
		return 0, ""
	}
	switch {
	case a == b:
		return 0.6, "mesma cor"
	case vocab.Analogous[a][b] || vocab.Analogous[b][a]:
		return 0.45, "análogas"
	case vocab.Complementary[a] == b || vocab.Complementary[b] == a:
		return 0.5, "complementares"
	case vocab.InTriad(a, b):
		return 0.35, "tríade"
	case vocab.Neutrals[a] || vocab.Neutrals[b]:
		return 0.4, "neutro"
	default:
		return 0.2, "baixo contraste"
	}
}

// matrixScore reads a compatibility matrix with default 0.4 and scales the
// contribution by 0.3. The label thresholds apply to the raw matrix value.
func matrixScore(x, y string, m vocab.Matrix, label string) (float64, string) {
	if x == "" || y == "" {
		return 0, ""
	}
	raw := m.Lookup(x, y, 0.4)
	var txt string
	switch {
	case raw >= 0.7:
		txt = fmt.Sprintf("%s compatível", label)
	case raw >= 0.5:
		txt = fmt.Sprintf("%s aceitável", label)
	default:
		txt = fmt.Sprintf("%s distante", label)
	}
	return raw * 0.3, txt
}

func materialScore(a, b string) (float64, string) {
	if a == "" || b == "" {
		return 0.05, "materiais neutros"
	}
	raw := vocab.MaterialMatrix.Lookup(vocab.MaterialGroup(a), vocab.MaterialGroup(b), 0.6)
	return raw * 0.25, "materiais coerentes"
}

func patternPenalty(a, b string) (float64, string) {
	if a == "" || b == "" {
		return 0, ""
	}
	v := vocab.PatternMatrix.Lookup(a, b, 0.0)
	if v < 0 {
		return v, "padrões colidem"
	}
	return v, ""
}

// ScorePair computes the compatibility score of two items with the ordered
// rationale of every rule that fired. Same-category and role-incompatible
// pairs are rejected outright.
func ScorePair(a, b domain.Item) (float64, []Rationale) {
	if a.Categoria == b.Categoria {
		return 0, []Rationale{{Kind: KindRejection, Label: "mesma categoria"}}
	}
	if RoleIncompatible(a.Categoria, b.Categoria) {
		return 0, []Rationale{{Kind: KindRejection, Label: "papéis incompatíveis"}}
	}

	var sum float64
	var rat []Rationale
	add := func(kind Kind, v float64, label string) {
		sum += v
		if label != "" {
			rat = append(rat, Rationale{Kind: kind, Label: label, Contribution: v})
		}
	}

	v, txt := colorScore(a.Cor, b.Cor)
	add(KindColor, v, txt)
	v, txt = matrixScore(a.Estilo, b.Estilo, vocab.StyleMatrix, "estilo")
	add(KindStyle, v, txt)
	v, txt = matrixScore(a.Ocasion, b.Ocasion, vocab.OccasionMatrix, "ocasião")
	add(KindOccasion, v, txt)
	v, txt = matrixScore(a.Clima, b.Clima, vocab.ClimateMatrix, "clima")
	add(KindClimate, v, txt)
	v, txt = materialScore(a.Material, b.Material)
	add(KindMaterial, v, txt)
	v, txt = patternPenalty(a.Padrao, b.Padrao)
	add(KindPattern, v, txt)

	if sum < 0 {
		sum = 0
	} else if sum > 1 {
		sum = 1
	}
	return sum, rat
}

// Bottleneck scores a candidate against every context item and keeps the
// minimum: a candidate is only as good as its weakest pairing. The rationale
// is the union over all pairings, de-duplicated by display string in
// first-seen order.
func Bottleneck(ctx []domain.Item, cand domain.Item) (float64, []Rationale) {
	if len(ctx) == 0 {
		return 0, nil
	}
	min := 0.0
	seen := make(map[string]bool)
	var rat []Rationale
	for i, it := range ctx {
		s, rs := ScorePair(it, cand)
		if i == 0 || s < min {
			min = s
		}
		for _, r := range rs {
			key := r.String()
			if !seen[key] {
				seen[key] = true
				rat = append(rat, r)
			}
		}
	}
	return min, rat
}

// Constraints are the optional recommendation filters that boost matching
// candidates.
type Constraints struct {
	Ocasion string `json:"ocasion,omitempty"`
	Clima   string `json:"clima,omitempty"`
}

// ConstraintMultiplier returns the boost for a candidate matching the given
// constraints: ×1.05 per matching attribute.
func ConstraintMultiplier(c domain.Item, cons Constraints) float64 {
	mul := 1.0
	if cons.Ocasion != "" && c.Ocasion == cons.Ocasion {
		mul *= 1.05
	}
	if cons.Clima != "" && c.Clima == cons.Clima {
		mul *= 1.05
	}
	return mul
}
