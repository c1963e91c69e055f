// Package vocab holds the closed vocabularies and compatibility tables the
// scoring rules operate on. Everything here is compile-time constant data:
// tuning a weight is an edit to a table, never to scoring code.
package vocab

// Garment roles. A subset of roles is singleton: an outfit admits at most
// one item per singleton role.
const (
	RoleTop       = "top"
	RoleBottom    = "bottom"
	RoleFoot      = "foot"
	RoleBag       = "bag"
	RoleAccessory = "accessory"
	RoleOnepiece  = "onepiece"
)

// Material groups used by the material compatibility matrix.
const (
	GroupLeve      = "leve"
	GroupPesado    = "pesado"
	GroupTecnico   = "tecnico"
	GroupAcessorio = "acessorio"
)

// Palette classes derived from color.
const (
	PaletaFria   = "fria"
	PaletaQuente = "quente"
	PaletaNeutra = "neutra"
)

var (
	// Categories lists the accepted garment categories.
	Categories = []string{"blusa", "jaqueta", "saia", "calca", "sapato", "bolsa", "acessorio"}

	// Patterns lists the accepted surface patterns.
	Patterns = []string{"liso", "listrado", "xadrez", "poa"}

	// Styles lists the accepted aesthetic styles.
	Styles = []string{"classico", "casual", "esportivo", "streetwear", "formal", "romantico"}

	// Occasions lists the accepted target occasions.
	Occasions = []string{"casual", "formal", "esportivo", "trabalho", "noite"}

	// Climates lists the accepted climates.
	Climates = []string{"quente", "frio", "meia-estacao"}

	// Colors lists the accepted colors.
	Colors = []string{
		"preto", "branco", "cinza", "nude", "bege", "marrom",
		"azul", "azul-escuro", "verde", "verde-agua", "ciano",
		"vermelho", "laranja", "amarelo", "rosa",
	}

	// Materials lists the accepted materials.
	Materials = []string{"algodao", "jeans", "couro", "seda", "linho", "la", "poliester", "malha", "metal"}
)

// Synonym maps: accented or loose spellings to the canonical term.
var (
	CategorySynonyms = map[string]string{
		"calça":     "calca",
		"calsa":     "calca",
		"saía":      "saia",
		"camisa":    "blusa",
		"casaco":    "jaqueta",
		"sapatos":   "sapato",
		"bolsas":    "bolsa",
		"acessório": "acessorio",
	}

	ColorSynonyms = map[string]string{
		"beige": "bege",
		"prata": "cinza",
	}

	MaterialSynonyms = map[string]string{
		"algodão": "algodao",
		"lycra":   "poliester",
	}
)

// Palettes classifies each color as cool, warm or neutral.
var Palettes = map[string]string{
	"azul": PaletaFria, "azul-escuro": PaletaFria, "verde": PaletaFria,
	"verde-agua": PaletaFria, "ciano": PaletaFria,
	"vermelho": PaletaQuente, "laranja": PaletaQuente,
	"amarelo": PaletaQuente, "rosa": PaletaQuente,
	"preto": PaletaNeutra, "branco": PaletaNeutra, "cinza": PaletaNeutra,
	"nude": PaletaNeutra, "marrom": PaletaNeutra, "bege": PaletaNeutra,
}

// Neutrals are the colors that pair acceptably with anything.
var Neutrals = map[string]bool{
	"preto": true, "branco": true, "cinza": true,
	"nude": true, "bege": true, "marrom": true,
}

// Analogous maps a color to its analogous neighbors on the wheel.
var Analogous = map[string]map[string]bool{
	"azul":     {"verde-agua": true, "ciano": true, "azul-escuro": true},
	"verde":    {"azul": true, "ciano": true},
	"vermelho": {"laranja": true, "rosa": true},
	"amarelo":  {"laranja": true, "bege": true},
	"marrom":   {"bege": true, "nude": true},
}

// Complementary maps a color to its complement. The map is partial: colors
// whose complement is outside the palette (amarelo ↔ roxo) have no entry
// and simply never fire the complementary rule.
var Complementary = map[string]string{
	"azul": "laranja", "laranja": "azul",
	"vermelho": "verde", "verde": "vermelho",
}

// Triads lists the 3-color harmony sets.
var Triads = []map[string]bool{
	{"vermelho": true, "amarelo": true, "azul": true},
	{"laranja": true, "verde": true, "rosa": true},
}

// Matrix is a two-level compatibility table with a lookup default for
// missing entries.
type Matrix map[string]map[string]float64

// Lookup returns the entry for (x, y), or def when either key is missing.
func (m Matrix) Lookup(x, y string, def float64) float64 {
	if row, ok := m[x]; ok {
		if v, ok := row[y]; ok {
			return v
		}
	}
	return def
}

// StyleMatrix scores style pairings; higher is better.
var StyleMatrix = Matrix{
	"classico":   {"classico": 1.0, "formal": 0.8, "casual": 0.7, "romantico": 0.7, "streetwear": 0.4, "esportivo": 0.3},
	"casual":     {"casual": 1.0, "classico": 0.7, "streetwear": 0.7, "esportivo": 0.6, "romantico": 0.6, "formal": 0.4},
	"esportivo":  {"esportivo": 1.0, "streetwear": 0.7, "casual": 0.6, "classico": 0.3, "formal": 0.2, "romantico": 0.3},
	"streetwear": {"streetwear": 1.0, "casual": 0.7, "esportivo": 0.7, "classico": 0.4, "formal": 0.3, "romantico": 0.4},
	"formal":     {"formal": 1.0, "classico": 0.8, "casual": 0.4, "streetwear": 0.3, "esportivo": 0.2, "romantico": 0.5},
	"romantico":  {"romantico": 1.0, "classico": 0.7, "casual": 0.6, "formal": 0.5, "streetwear": 0.4, "esportivo": 0.3},
}

// OccasionMatrix scores occasion pairings.
var OccasionMatrix = Matrix{
	"casual":    {"casual": 1.0, "esportivo": 0.8, "trabalho": 0.6, "noite": 0.6, "formal": 0.4},
	"formal":    {"formal": 1.0, "trabalho": 0.9, "noite": 0.7, "casual": 0.4, "esportivo": 0.2},
	"esportivo": {"esportivo": 1.0, "casual": 0.8, "trabalho": 0.3, "noite": 0.3, "formal": 0.2},
	"trabalho":  {"trabalho": 1.0, "formal": 0.9, "casual": 0.6, "noite": 0.5, "esportivo": 0.3},
	"noite":     {"noite": 1.0, "formal": 0.7, "casual": 0.6, "trabalho": 0.5, "esportivo": 0.3},
}

// ClimateMatrix scores climate pairings.
var ClimateMatrix = Matrix{
	"quente":       {"quente": 1.0, "meia-estacao": 0.7, "frio": 0.2},
	"frio":         {"frio": 1.0, "meia-estacao": 0.7, "quente": 0.2},
	"meia-estacao": {"meia-estacao": 1.0, "quente": 0.7, "frio": 0.7},
}

// MaterialGroups buckets each material for the material matrix.
var MaterialGroups = map[string]string{
	"algodao": GroupLeve, "linho": GroupLeve, "seda": GroupLeve,
	"jeans": GroupPesado, "couro": GroupPesado, "la": GroupPesado,
	"poliester": GroupTecnico, "malha": GroupTecnico,
	"metal": GroupAcessorio,
}

// MaterialMatrix scores material group pairings.
var MaterialMatrix = Matrix{
	GroupLeve:      {GroupLeve: 1.0, GroupPesado: 0.7, GroupTecnico: 0.6, GroupAcessorio: 0.8},
	GroupPesado:    {GroupPesado: 1.0, GroupLeve: 0.7, GroupTecnico: 0.6, GroupAcessorio: 0.8},
	GroupTecnico:   {GroupTecnico: 1.0, GroupLeve: 0.6, GroupPesado: 0.6, GroupAcessorio: 0.8},
	GroupAcessorio: {GroupAcessorio: 1.0, GroupLeve: 0.8, GroupPesado: 0.8, GroupTecnico: 0.8},
}

// PatternMatrix penalizes pattern clashes. Entries are ≤ 0; liso combines
// with everything.
var PatternMatrix = Matrix{
	"liso":     {"liso": 0.0, "listrado": 0.0, "xadrez": 0.0, "poa": 0.0},
	"listrado": {"liso": 0.0, "listrado": -0.15, "xadrez": -0.15, "poa": -0.05},
	"xadrez":   {"liso": 0.0, "listrado": -0.15, "xadrez": -0.1, "poa": -0.1},
	"poa":      {"liso": 0.0, "listrado": -0.05, "xadrez": -0.1, "poa": -0.1},
}

// Roles maps each category to its outfit role.
var Roles = map[string]string{
	"blusa":     RoleTop,
	"jaqueta":   RoleTop,
	"saia":      RoleBottom,
	"calca":     RoleBottom,
	"sapato":    RoleFoot,
	"bolsa":     RoleBag,
	"acessorio": RoleAccessory,
}

// SingletonRoles are the roles that admit at most one item per outfit.
var SingletonRoles = map[string]bool{
	RoleBottom:   true,
	RoleFoot:     true,
	RoleBag:      true,
	RoleOnepiece: true,
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// ValidCategory reports whether v is an accepted category.
func ValidCategory(v string) bool { return contains(Categories, v) }

// ValidPattern reports whether v is an accepted pattern.
func ValidPattern(v string) bool { return contains(Patterns, v) }

// ValidStyle reports whether v is an accepted style.
func ValidStyle(v string) bool { return contains(Styles, v) }

// ValidOccasion reports whether v is an accepted occasion.
func ValidOccasion(v string) bool { return contains(Occasions, v) }

// ValidClimate reports whether v is an accepted climate.
func ValidClimate(v string) bool { return contains(Climates, v) }

// ValidColor reports whether v is an accepted color.
func ValidColor(v string) bool { return contains(Colors, v) }

// ValidMaterial reports whether v is an accepted material.
func ValidMaterial(v string) bool { return contains(Materials, v) }

// CanonicalCategory resolves category synonyms.
func CanonicalCategory(v string) string {
	if c, ok := CategorySynonyms[v]; ok {
		return c
	}
	return v
}

// CanonicalColor resolves color synonyms.
func CanonicalColor(v string) string {
	if c, ok := ColorSynonyms[v]; ok {
		return c
	}
	return v
}

// CanonicalMaterial resolves material synonyms.
func CanonicalMaterial(v string) string {
	if c, ok := MaterialSynonyms[v]; ok {
		return c
	}
	return v
}

// Palette classifies a color; unknown colors fall back to neutral.
func Palette(color string) string {
	if p, ok := Palettes[color]; ok {
		return p
	}
	return PaletaNeutra
}

// Role returns the outfit role for a category, if known.
func Role(categoria string) (string, bool) {
	r, ok := Roles[categoria]
	return r, ok
}

// MaterialGroup buckets a material; unknown materials count as light.
func MaterialGroup(material string) string {
	if g, ok := MaterialGroups[material]; ok {
		return g
	}
	return GroupLeve
}

// InTriad reports whether both colors appear together in some triad.
func InTriad(a, b string) bool {
	for _, tri := range Triads {
		if tri[a] && tri[b] {
			return true
		}
	}
	return false
}
