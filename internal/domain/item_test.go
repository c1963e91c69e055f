package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lookkg/lookkg/pkg/errors"
)

// ============================================================================
// Normalization Tests
// ============================================================================

func TestNormalize_LowercasesAndTrims(t *testing.T) {
	it := Item{
		Nome:      "  Blusa Branca  ",
		Categoria: " BLUSA ",
		Cor:       "Branco",
		Estilo:    "Classico",
		Ocasion:   "Trabalho",
		Clima:     "Quente",
	}
	got, err := it.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "blusa branca", got.Nome)
	assert.Equal(t, "blusa", got.Categoria)
	assert.Equal(t, "branco", got.Cor)
	assert.Equal(t, "classico", got.Estilo)
	assert.Equal(t, "trabalho", got.Ocasion)
	assert.Equal(t, "quente", got.Clima)
}

func TestNormalize_ResolvesSynonyms(t *testing.T) {
	it := Item{Nome: "calça social", Categoria: "calça", Cor: "prata", Material: "algodão"}
	got, err := it.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "calca", got.Categoria)
	assert.Equal(t, "cinza", got.Cor)
	assert.Equal(t, "algodao", got.Material)
}

func TestNormalize_FillsDefaults(t *testing.T) {
	it := Item{Nome: "blusa", Categoria: "blusa", Cor: "azul"}
	got, err := it.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "liso", got.Padrao)
	assert.Equal(t, "classico", got.Estilo)
	assert.Equal(t, "casual", got.Ocasion)
	assert.Equal(t, "quente", got.Clima)
	assert.Empty(t, got.Material, "material stays optional")
}

func TestNormalize_DerivesPalette(t *testing.T) {
	cases := map[string]string{
		"azul":     "fria",
		"vermelho": "quente",
		"preto":    "neutra",
	}
	for cor, paleta := range cases {
		it := Item{Nome: "x", Categoria: "blusa", Cor: cor}
		got, err := it.Normalize()
		require.NoError(t, err)
		assert.Equal(t, paleta, got.Paleta, "cor %q", cor)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	it := Item{
		ItemID:    "blusa_ab12cd34",
		Nome:      "  Camisa Social ",
		Categoria: "camisa",
		Cor:       "beige",
		Material:  "lycra",
		Estilo:    "FORMAL",
		Ocasion:   "trabalho",
		Clima:     "meia-estacao",
	}
	once, err := it.Normalize()
	require.NoError(t, err)
	twice, err := once.Normalize()
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestNormalize_PreservesItemID(t *testing.T) {
	it := Item{ItemID: "calca_12345678", Nome: "calça", Categoria: "calca", Cor: "preto"}
	got, err := it.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "calca_12345678", got.ItemID)
}

// ============================================================================
// Validation Tests
// ============================================================================

func TestNormalize_InvalidCategory(t *testing.T) {
	it := Item{Nome: "vestido floral", Categoria: "vestido", Cor: "rosa"}
	_, err := it.Normalize()
	require.Error(t, err)
	assert.Equal(t, "categoria inválida: vestido", err.Error())
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestNormalize_InvalidColor(t *testing.T) {
	it := Item{Nome: "bolsa", Categoria: "bolsa", Cor: "dourado"}
	_, err := it.Normalize()
	require.Error(t, err)
	assert.Equal(t, "cor inválida: dourado", err.Error())
}

func TestNormalize_InvalidPattern(t *testing.T) {
	it := Item{Nome: "saia", Categoria: "saia", Cor: "azul", Padrao: "floral"}
	_, err := it.Normalize()
	require.Error(t, err)
	assert.Equal(t, "padrao inválido: floral", err.Error())
}

func TestNormalize_InvalidStyle(t *testing.T) {
	it := Item{Nome: "saia", Categoria: "saia", Cor: "azul", Estilo: "boho"}
	_, err := it.Normalize()
	require.Error(t, err)
	assert.Equal(t, "estilo inválido: boho", err.Error())
}

func TestNormalize_InvalidOccasion(t *testing.T) {
	it := Item{Nome: "saia", Categoria: "saia", Cor: "azul", Ocasion: "festa"}
	_, err := it.Normalize()
	require.Error(t, err)
	assert.Equal(t, "ocasion inválida: festa", err.Error())
}

func TestNormalize_InvalidClimate(t *testing.T) {
	it := Item{Nome: "saia", Categoria: "saia", Cor: "azul", Clima: "inverno"}
	_, err := it.Normalize()
	require.Error(t, err)
	assert.Equal(t, "clima inválido: inverno", err.Error())
}

func TestNormalize_InvalidMaterial(t *testing.T) {
	it := Item{Nome: "saia", Categoria: "saia", Cor: "azul", Material: "viscose"}
	_, err := it.Normalize()
	require.Error(t, err)
	assert.Equal(t, "material inválido: viscose", err.Error())
}

func TestNormalize_ValidationOrder_CategoryFirst(t *testing.T) {
	// Multiple invalid fields: category is reported first.
	it := Item{Nome: "x", Categoria: "vestido", Cor: "dourado", Padrao: "floral"}
	_, err := it.Normalize()
	require.Error(t, err)
	assert.Equal(t, "categoria inválida: vestido", err.Error())
}

// ============================================================================
// Role Tests
// ============================================================================

func TestItemRole(t *testing.T) {
	it := Item{Categoria: "calca"}
	role, ok := it.Role()
	assert.True(t, ok)
	assert.Equal(t, "bottom", role)

	it = Item{Categoria: "vestido"}
	_, ok = it.Role()
	assert.False(t, ok)
}
