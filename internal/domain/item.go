// Package domain defines the catalog item entity and its normalization
// rules.
package domain

import (
	"strings"

	apperrors "github.com/lookkg/lookkg/pkg/errors"

	"github.com/lookkg/lookkg/internal/vocab"
)

// Item is a normalized catalog garment. Paleta is derived from Cor and is
// never supplied by callers.
type Item struct {
	ItemID    string `json:"item_id"`
	Nome      string `json:"nome"`
	Categoria string `json:"categoria"`
	Cor       string `json:"cor"`
	Padrao    string `json:"padrao"`
	Material  string `json:"material,omitempty"`
	Estilo    string `json:"estilo"`
	Ocasion   string `json:"ocasion"`
	Clima     string `json:"clima"`
	Paleta    string `json:"paleta"`
}

func norm(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// Normalize lowercases and trims every attribute, resolves synonyms, fills
// defaults for optional fields, derives the palette and validates each
// attribute against its vocabulary. It is pure: the receiver is not
// modified and the result is fully canonical, so normalizing twice yields
// the same item.
func (it Item) Normalize() (Item, error) {
	out := Item{
		ItemID:    it.ItemID,
		Nome:      norm(it.Nome),
		Categoria: vocab.CanonicalCategory(norm(it.Categoria)),
		Cor:       vocab.CanonicalColor(norm(it.Cor)),
		Padrao:    norm(it.Padrao),
		Material:  vocab.CanonicalMaterial(norm(it.Material)),
		Estilo:    norm(it.Estilo),
		Ocasion:   norm(it.Ocasion),
		Clima:     norm(it.Clima),
	}
	if out.Padrao == "" {
		out.Padrao = "liso"
	}
	if out.Estilo == "" {
		out.Estilo = "classico"
	}
	if out.Ocasion == "" {
		out.Ocasion = "casual"
	}
	if out.Clima == "" {
		out.Clima = "quente"
	}
	out.Paleta = vocab.Palette(out.Cor)

	if !vocab.ValidCategory(out.Categoria) {
		return Item{}, apperrors.Validation("categoria", "categoria inválida", out.Categoria)
	}
	if !vocab.ValidPattern(out.Padrao) {
		return Item{}, apperrors.Validation("padrao", "padrao inválido", out.Padrao)
	}
	if !vocab.ValidStyle(out.Estilo) {
		return Item{}, apperrors.Validation("estilo", "estilo inválido", out.Estilo)
	}
	if !vocab.ValidOccasion(out.Ocasion) {
		return Item{}, apperrors.Validation("ocasion", "ocasion inválida", out.Ocasion)
	}
	if !vocab.ValidClimate(out.Clima) {
		return Item{}, apperrors.Validation("clima", "clima inválido", out.Clima)
	}
	if !vocab.ValidColor(out.Cor) {
		return Item{}, apperrors.Validation("cor", "cor inválida", out.Cor)
	}
	if out.Material != "" && !vocab.ValidMaterial(out.Material) {
		return Item{}, apperrors.Validation("material", "material inválido", out.Material)
	}

	return out, nil
}

// Role returns the outfit role of the item's category.
func (it Item) Role() (string, bool) {
	return vocab.Role(it.Categoria)
}
