// Package printhtml monta o documento de impressão dos pedidos: um XHTML
// autocontido com CSS inline, uma tabela com uma linha por pedido
// selecionado, pronto para o diálogo de impressão do navegador.
package printhtml

import (
	"bytes"
	"fmt"

	"github.com/beevik/etree"

	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
)

// printCSS estilos do documento. O botão de imprimir some na impressão.
const printCSS = `
body { font-family: Arial, sans-serif; padding: 20px; }
table { width: 100%; border-collapse: collapse; margin-bottom: 30px; font-size: 10px; }
th, td { border: 1px solid #ddd; padding: 6px; text-align: left; }
th { background-color: #333; color: white; }
h1 { color: #333; }
@media print { button { display: none; } }
`

// Cabeçalhos da tabela, na ordem das colunas.
var headers = []string{
	"Ordem", "Matrícula", "Modelo", "Tamanho", "Agente", "Cat. 2026",
	"Cor Base", "Acab. Base", "Rock Base",
	"Cor Det.", "Acab. Det.", "Rock Det.",
	"Cor Logo", "Acab. Logo", "Rock Logo",
	"Cor Letras", "Acab. Letras", "Rock Letras",
	"Pedidos Extras", "Data",
}

// EtreeRenderer implementa export.PrintRenderer usando etree.
type EtreeRenderer struct{}

// NewEtreeRenderer constrói o renderizador.
func NewEtreeRenderer() *EtreeRenderer { return &EtreeRenderer{} }

// Render gera o documento completo e devolve seus bytes UTF-8.
func (r *EtreeRenderer) Render(orders []*entity.Order) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateDirective("DOCTYPE html")

	html := doc.CreateElement("html")
	head := html.CreateElement("head")
	head.CreateElement("meta").CreateAttr("charset", "utf-8")
	head.CreateElement("title").SetText("Pedidos - Impressão")
	head.CreateElement("style").SetText(printCSS)

	body := html.CreateElement("body")
	body.CreateElement("h1").SetText("Pedidos de Pintura - Officine Mattio")

	btn := body.CreateElement("button")
	btn.CreateAttr("onclick", "window.print()")
	btn.SetText("Imprimir")

	table := body.CreateElement("table")
	thead := table.CreateElement("thead")
	headRow := thead.CreateElement("tr")
	for _, h := range headers {
		headRow.CreateElement("th").SetText(h)
	}

	tbody := table.CreateElement("tbody")
	for _, order := range orders {
		tr := tbody.CreateElement("tr")
		for _, v := range rowValues(order) {
			tr.CreateElement("td").SetText(v)
		}
	}

	doc.Indent(2)
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("print: serializar documento: %w", err)
	}
	return buf.Bytes(), nil
}

// rowValues projeta um pedido na ordem das colunas. Booleanos saem como
// "✓"/"-", igual à tela; texto livre vazio vira traço.
func rowValues(o *entity.Order) []string {
	return []string{
		o.Ordem,
		o.MatriculaQuadro,
		o.Modelo,
		o.Tamanho,
		o.AgenteComercial,
		check(o.Catalogo2026),
		o.CorBase, o.AcabamentoBase, check(o.AcabamentoBaseRock),
		o.CorDetalhes, o.AcabamentoDetalhes, check(o.AcabamentoDetalhesRock),
		o.CorLogo, o.AcabamentoLogo, check(o.AcabamentoLogoRock),
		o.CorLetras, o.AcabamentoLetras, check(o.AcabamentoLetrasRock),
		dash(o.PedidosExtras),
		o.CreatedAt.Format("02/01/2006"),
	}
}

func check(v bool) string {
	if v {
		return "✓"
	}
	return "-"
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
