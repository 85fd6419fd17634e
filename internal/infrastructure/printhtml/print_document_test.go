package printhtml_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
	"github.com/officinemattio/verniciatura-api/internal/infrastructure/printhtml"
)

func sampleOrder(ordem string, urgente bool) *entity.Order {
	return &entity.Order{
		ID: "id-" + ordem,
		OrderForm: entity.OrderForm{
			Ordem:              ordem,
			MatriculaQuadro:    "MT-" + ordem,
			Modelo:             "Granfondo",
			Tamanho:            "56",
			AgenteComercial:    "Bianchi",
			Catalogo2026:       true,
			CorBase:            "Blu Notte",
			AcabamentoBase:     entity.AcabamentoBrilhoso,
			AcabamentoBaseRock: true,
			CorDetalhes:        "Bianco",
			AcabamentoDetalhes: entity.AcabamentoOpaco,
			CorLogo:            "Argento",
			AcabamentoLogo:     entity.AcabamentoOpaco,
			CorLetras:          "Nero",
			AcabamentoLetras:   entity.AcabamentoOpaco,
			Urgente:            urgente,
		},
		CreatedAt: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestRender_DocumentoCompleto(t *testing.T) {
	r := printhtml.NewEtreeRenderer()

	data, err := r.Render([]*entity.Order{
		sampleOrder("OM-1", false),
		sampleOrder("OM-2", true),
	})
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "<!DOCTYPE html")
	assert.Contains(t, html, "Pedidos de Pintura - Officine Mattio")
	assert.Contains(t, html, "window.print()")

	// Uma linha por pedido, com os valores projetados
	assert.Contains(t, html, "OM-1")
	assert.Contains(t, html, "OM-2")
	assert.Contains(t, html, "Blu Notte")
	assert.Contains(t, html, "Bianchi")
	assert.Contains(t, html, "15/03/2026")

	// Booleanos saem como ✓/-
	assert.Contains(t, html, "✓")
	assert.Contains(t, html, "<td>-</td>")
}

func TestRender_SemPedidos_SoTabelaVazia(t *testing.T) {
	r := printhtml.NewEtreeRenderer()

	data, err := r.Render(nil)
	require.NoError(t, err)

	html := string(data)
	assert.Contains(t, html, "<thead>")
	assert.NotContains(t, html, "OM-", "sem pedidos, sem linhas")
}
