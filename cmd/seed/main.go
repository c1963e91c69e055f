// Command seed populates a running service with a reference wardrobe via
// the public API, then triggers a graph rebuild.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/lookkg/lookkg/pkg/logger"
)

type seedItem struct {
	Nome      string `json:"nome"`
	Categoria string `json:"categoria"`
	Cor       string `json:"cor"`
	Padrao    string `json:"padrao,omitempty"`
	Material  string `json:"material,omitempty"`
	Estilo    string `json:"estilo,omitempty"`
	Ocasion   string `json:"ocasion,omitempty"`
	Clima     string `json:"clima,omitempty"`
}

// The wardrobe below is curated to the canonical vocabularies; source
// catalogs with off-vocabulary values (dourado, azul claro, floral) are
// mapped to their closest canonical terms or skipped.
var items = []seedItem{
	// Base look
	{Nome: "saia azul", Categoria: "saia", Cor: "azul", Padrao: "liso", Material: "jeans", Estilo: "classico", Ocasion: "casual", Clima: "quente"},
	{Nome: "blusa branca", Categoria: "blusa", Cor: "branco", Padrao: "liso", Material: "algodao", Estilo: "classico", Ocasion: "casual", Clima: "quente"},
	{Nome: "sapato nude", Categoria: "sapato", Cor: "nude", Padrao: "liso", Material: "couro", Estilo: "classico", Ocasion: "casual", Clima: "quente"},
	{Nome: "bolsa marrom", Categoria: "bolsa", Cor: "marrom", Padrao: "liso", Material: "couro", Estilo: "classico", Ocasion: "casual", Clima: "quente"},
	{Nome: "acessorio cinza", Categoria: "acessorio", Cor: "cinza", Padrao: "liso", Material: "metal", Estilo: "classico", Ocasion: "casual", Clima: "quente"},
	{Nome: "calca bege", Categoria: "calca", Cor: "bege", Padrao: "liso", Material: "algodao", Estilo: "classico", Ocasion: "casual", Clima: "quente"},
	{Nome: "blusa preta formal", Categoria: "blusa", Cor: "preto", Padrao: "liso", Material: "algodao", Estilo: "formal", Ocasion: "formal", Clima: "frio"},

	// Blusas
	{Nome: "blusa azul algodao", Categoria: "blusa", Cor: "azul", Material: "algodao", Estilo: "casual", Ocasion: "casual", Clima: "meia-estacao"},
	{Nome: "blusa rosa seda", Categoria: "blusa", Cor: "rosa", Material: "seda", Estilo: "romantico", Ocasion: "noite", Clima: "quente"},
	{Nome: "camiseta branca basica", Categoria: "blusa", Cor: "branco", Material: "algodao", Estilo: "casual", Ocasion: "casual", Clima: "quente"},
	{Nome: "camisa social azul", Categoria: "blusa", Cor: "azul", Material: "algodao", Estilo: "formal", Ocasion: "trabalho", Clima: "meia-estacao"},
	{Nome: "blusa listrada azul", Categoria: "blusa", Cor: "azul", Padrao: "listrado", Material: "malha", Estilo: "casual", Ocasion: "casual", Clima: "meia-estacao"},
	{Nome: "blusa preta canelada", Categoria: "blusa", Cor: "preto", Material: "malha", Estilo: "streetwear", Ocasion: "casual", Clima: "frio"},

	// Saias
	{Nome: "saia midi preta", Categoria: "saia", Cor: "preto", Material: "malha", Estilo: "classico", Ocasion: "trabalho", Clima: "meia-estacao"},
	{Nome: "saia jeans clara", Categoria: "saia", Cor: "azul", Material: "jeans", Estilo: "casual", Ocasion: "casual", Clima: "quente"},
	{Nome: "saia plissada bege", Categoria: "saia", Cor: "bege", Material: "poliester", Estilo: "classico", Ocasion: "formal", Clima: "meia-estacao"},
	{Nome: "saia xadrez preta", Categoria: "saia", Cor: "preto", Padrao: "xadrez", Material: "algodao", Estilo: "streetwear", Ocasion: "casual", Clima: "frio"},
	{Nome: "saia jeans escura desfiada", Categoria: "saia", Cor: "azul-escuro", Material: "jeans", Estilo: "streetwear", Ocasion: "casual", Clima: "meia-estacao"},

	// Calças
	{Nome: "calca jeans skinny azul escuro", Categoria: "calca", Cor: "azul-escuro", Material: "jeans", Estilo: "casual", Ocasion: "casual", Clima: "meia-estacao"},
	{Nome: "calca social preta", Categoria: "calca", Cor: "preto", Material: "poliester", Estilo: "formal", Ocasion: "trabalho", Clima: "meia-estacao"},
	{Nome: "calca de linho bege", Categoria: "calca", Cor: "bege", Material: "linho", Estilo: "classico", Ocasion: "trabalho", Clima: "quente"},
	{Nome: "calca jogger verde", Categoria: "calca", Cor: "verde", Material: "malha", Estilo: "esportivo", Ocasion: "esportivo", Clima: "meia-estacao"},
	{Nome: "calca pantacourt branca", Categoria: "calca", Cor: "branco", Material: "malha", Estilo: "classico", Ocasion: "casual", Clima: "quente"},
	{Nome: "calca xadrez cinza", Categoria: "calca", Cor: "cinza", Padrao: "xadrez", Material: "algodao", Estilo: "streetwear", Ocasion: "casual", Clima: "frio"},

	// Sapatos
	{Nome: "tenis branco casual", Categoria: "sapato", Cor: "branco", Material: "couro", Estilo: "casual", Ocasion: "casual", Clima: "meia-estacao"},
	{Nome: "sandalia rasteira amarela", Categoria: "sapato", Cor: "amarelo", Material: "couro", Estilo: "casual", Ocasion: "casual", Clima: "quente"},
	{Nome: "bota preta cano curto", Categoria: "sapato", Cor: "preto", Material: "couro", Estilo: "streetwear", Ocasion: "casual", Clima: "frio"},
	{Nome: "scarpin nude salto medio", Categoria: "sapato", Cor: "nude", Material: "couro", Estilo: "classico", Ocasion: "formal", Clima: "meia-estacao"},
	{Nome: "tenis esportivo cinza", Categoria: "sapato", Cor: "cinza", Material: "malha", Estilo: "esportivo", Ocasion: "esportivo", Clima: "meia-estacao"},
	{Nome: "sandalia de salto preta", Categoria: "sapato", Cor: "preto", Material: "couro", Estilo: "formal", Ocasion: "noite", Clima: "quente"},

	// Bolsas
	{Nome: "bolsa tiracolo preta", Categoria: "bolsa", Cor: "preto", Material: "couro", Estilo: "classico", Ocasion: "trabalho", Clima: "meia-estacao"},
	{Nome: "bolsa de palha bege", Categoria: "bolsa", Cor: "bege", Material: "linho", Estilo: "casual", Ocasion: "casual", Clima: "quente"},
	{Nome: "bolsa vermelha estruturada", Categoria: "bolsa", Cor: "vermelho", Material: "couro", Estilo: "streetwear", Ocasion: "noite", Clima: "meia-estacao"},
	{Nome: "mochila marrom casual", Categoria: "bolsa", Cor: "marrom", Material: "couro", Estilo: "casual", Ocasion: "casual", Clima: "meia-estacao"},
	{Nome: "bolsa pequena prata festa", Categoria: "bolsa", Cor: "prata", Material: "metal", Estilo: "romantico", Ocasion: "noite", Clima: "meia-estacao"},
	{Nome: "bolsa transversal bege", Categoria: "bolsa", Cor: "bege", Material: "couro", Estilo: "classico", Ocasion: "casual", Clima: "meia-estacao"},

	// Acessórios
	{Nome: "brinco amarelo argola", Categoria: "acessorio", Cor: "amarelo", Material: "metal", Estilo: "classico", Ocasion: "noite", Clima: "quente"},
	{Nome: "colar longo com pingente", Categoria: "acessorio", Cor: "prata", Material: "metal", Estilo: "casual", Ocasion: "casual", Clima: "meia-estacao"},
	{Nome: "pulseira de couro marrom", Categoria: "acessorio", Cor: "marrom", Material: "couro", Estilo: "streetwear", Ocasion: "casual", Clima: "meia-estacao"},
	{Nome: "relogio de metal prateado", Categoria: "acessorio", Cor: "prata", Material: "metal", Estilo: "classico", Ocasion: "trabalho", Clima: "meia-estacao"},
	{Nome: "cinto preto fivela amarela", Categoria: "acessorio", Cor: "preto", Material: "couro", Estilo: "classico", Ocasion: "casual", Clima: "meia-estacao"},
}

func main() {
	log := logger.New("lookkg-seed", "info")

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8000"
	}

	if err := waitAPI(apiURL + "/health"); err != nil {
		log.Error("api did not become ready", slog.String("error", err.Error()))
		os.Exit(1)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	for _, it := range items {
		if err := post(client, apiURL+"/v1/items", it); err != nil {
			log.Error("seed item failed",
				slog.String("nome", it.Nome),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		log.Info("seeded item", slog.String("nome", it.Nome))
	}

	if err := post(client, apiURL+"/v1/graph/rebuild", map[string]any{}); err != nil {
		log.Error("graph rebuild failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("seed complete", slog.Int("items", len(items)))
}

func waitAPI(url string) error {
	const tries = 20
	for i := 0; i < tries; i++ {
		resp, err := http.Get(url) // #nosec G107 -- operator-supplied URL
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(2 * time.Second)
	}
	return fmt.Errorf("no healthy response from %s after %d attempts", url, tries)
}

func post(client *http.Client, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return nil
}
