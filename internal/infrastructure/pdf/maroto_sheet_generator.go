// Package pdf implementa a geração das fichas impressas que acompanham o
// quadro pela fábrica: a scheda colore A4 pendurada na cabine de pintura e
// a etiqueta A5 colada na caixa de expedição. Os textos saem em italiano,
// o idioma do chão de fábrica.
//
// Layout da scheda A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  SCHEDA COLORE              │  Ordine + Data                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INFORMAZIONI GENERALI: matricola / modello / taglia /      │
//	│                         agente / catalogo / urgente         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA DE ZONAS: Colore | Finitura | Rock                  │
//	│    Base / Accent / Logo / Scritte                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RICHIESTE EXTRA (texto livre)                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/message"

	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
	"github.com/officinemattio/verniciatura-api/pkg/i18n"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 20, Green: 20, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorUrgent  = &props.Color{Red: 200, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSheetGenerator implementa export.SheetGenerator usando Maroto v2.
type MarotoSheetGenerator struct {
	printer *message.Printer
}

// NewMarotoSheetGenerator constrói o gerador com textos em italiano.
func NewMarotoSheetGenerator() *MarotoSheetGenerator {
	return &MarotoSheetGenerator{printer: i18n.Printer(i18n.Italian)}
}

// SchedaColore gera a ficha A4 do pedido e devolve seus bytes.
func (g *MarotoSheetGenerator) SchedaColore(order *entity.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Scheda Colore "+order.Ordem, true).
		WithAuthor("Officine Mattio", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.6}))
	m.AddRows(g.generalInfoRows(order)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.zoneTableRows(order)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.extrasRows(order)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar scheda colore: %w", err)
	}
	return doc.GetBytes(), nil
}

// BoxLabel gera a etiqueta A5 da caixa: só o essencial para expedição,
// em corpo grande o suficiente para leitura no estoque.
func (g *MarotoSheetGenerator) BoxLabel(order *entity.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 11}).
		WithTitle("Box "+order.Ordem, true).
		WithAuthor("Officine Mattio", true).
		Build()

	m := maroto.New(cfg)
	p := g.printer

	m.AddRows(row.New(14).Add(col.New(12).Add(
		text.New("OFFICINE MATTIO", props.Text{
			Style: fontstyle.Bold, Size: 16, Align: align.Center, Color: colorPrimary, Top: 2,
		}),
	)))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.6}))

	field := func(label, value string) core.Row {
		return row.New(12).Add(
			col.New(5).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 2,
			})),
			col.New(7).Add(text.New(value, props.Text{Size: 12, Top: 2})),
		)
	}
	m.AddRows(
		field(i18n.T(p, "orders.order"), order.Ordem),
		field(i18n.T(p, "orders.frameNumber"), order.MatriculaQuadro),
		field(i18n.T(p, "orders.model"), order.Modelo),
		field(i18n.T(p, "orders.size"), order.Tamanho),
		field(i18n.T(p, "orders.base"), order.CorBase),
	)

	if order.Urgente {
		m.AddRows(row.New(14).Add(col.New(12).Add(
			text.New("*** "+i18n.T(p, "orders.urgent")+" ***", props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center, Color: colorUrgent, Top: 3,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar etiqueta da caixa: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções da scheda ──────────────────────────────────────────────────────────

// headerRow: título à esquerda, número do pedido e data à direita.
func (g *MarotoSheetGenerator) headerRow(order *entity.Order) core.Row {
	p := g.printer
	return row.New(18).Add(
		col.New(7).Add(
			text.New(i18n.T(p, "orders.sheetTitle"), props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
			}),
			text.New("Officine Mattio", props.Text{Size: 9, Top: 10, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(i18n.T(p, "orders.order")+" "+order.Ordem, props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Right, Top: 2,
			}),
			text.New(i18n.T(p, "common.date")+": "+order.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// generalInfoRows: bloco de identificação do quadro.
func (g *MarotoSheetGenerator) generalInfoRows(order *entity.Order) []core.Row {
	p := g.printer
	pair := func(label, value string) core.Col {
		return col.New(6).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Size: 10, Top: 5}),
		)
	}

	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(i18n.T(p, "orders.generalInfo"), props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(11).Add(
			pair(i18n.T(p, "orders.frameNumber"), order.MatriculaQuadro),
			pair(i18n.T(p, "orders.model"), order.Modelo),
		),
		row.New(11).Add(
			pair(i18n.T(p, "orders.size"), order.Tamanho),
			pair(i18n.T(p, "orders.agent"), order.AgenteComercial),
		),
		row.New(11).Add(
			pair(i18n.T(p, "orders.catalog2026"), i18n.YesNo(p, order.Catalogo2026)),
			pair(i18n.T(p, "orders.urgent"), i18n.YesNo(p, order.Urgente)),
		),
	}
	if order.Urgente {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("*** "+i18n.T(p, "orders.urgent")+" ***", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: colorUrgent, Top: 2,
			}),
		)))
	}
	return rows
}

// zoneTableRows: tabela de zonas de pintura (Colore | Finitura | Rock).
func (g *MarotoSheetGenerator) zoneTableRows(order *entity.Order) []core.Row {
	p := g.printer
	header := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}))
	}
	zone := func(label, cor, acabamento string, rock bool) core.Row {
		return row.New(9).Add(
			col.New(3).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1})),
			col.New(4).Add(text.New(cor, props.Text{Size: 10, Top: 1})),
			col.New(3).Add(text.New(acabamento, props.Text{Size: 10, Top: 1})),
			col.New(2).Add(text.New(i18n.YesNo(p, rock), props.Text{Size: 10, Top: 1})),
		)
	}

	return []core.Row{
		row.New(8).Add(
			header("", 3),
			header(i18n.T(p, "orders.color"), 4),
			header(i18n.T(p, "orders.finish"), 3),
			header("Rock", 2),
		),
		zone(i18n.T(p, "orders.base"), order.CorBase, order.AcabamentoBase, order.AcabamentoBaseRock),
		zone(i18n.T(p, "orders.details"), order.CorDetalhes, order.AcabamentoDetalhes, order.AcabamentoDetalhesRock),
		zone(i18n.T(p, "orders.logo"), order.CorLogo, order.AcabamentoLogo, order.AcabamentoLogoRock),
		zone(i18n.T(p, "orders.letters"), order.CorLetras, order.AcabamentoLetras, order.AcabamentoLetrasRock),
	}
}

// extrasRows: pedidos extras em texto livre (ou traço quando vazio).
func (g *MarotoSheetGenerator) extrasRows(order *entity.Order) []core.Row {
	p := g.printer
	extras := order.PedidosExtras
	if extras == "" {
		extras = "—"
	}
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(i18n.T(p, "orders.extras"), props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(20).Add(col.New(12).Add(
			text.New(extras, props.Text{Size: 10, Top: 2, Color: colorGray}),
		)),
	}
}
