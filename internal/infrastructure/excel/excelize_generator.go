// Package excel gera a planilha de pedidos usada pelo comercial. A
// planilha sai em português, uma linha por pedido selecionado, na ordem
// da seleção.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/message"

	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
	"github.com/officinemattio/verniciatura-api/pkg/i18n"
)

// SheetName aba única da planilha.
const SheetName = "Pedidos"

// Colunas fixas, na ordem de exibição. O acabamento de cada zona sai
// colapsado com o indicador Rock ("Brilhoso + Rock") em vez de uma coluna
// booleana separada.
var columns = []struct {
	header string
	width  float64
}{
	{"Ordem", 15},
	{"Matrícula do Quadro", 20},
	{"Modelo", 15},
	{"Tamanho", 10},
	{"Agente Comercial", 20},
	{"Catálogo 2026", 15},
	{"Cor Base", 15},
	{"Acabamento Base", 20},
	{"Cor Detalhes", 15},
	{"Acabamento Detalhes", 20},
	{"Cor Logo", 15},
	{"Acabamento Logo", 20},
	{"Cor Letras", 15},
	{"Acabamento Letras", 20},
	{"Pedidos Extras", 30},
	{"Data de Criação", 15},
}

// ExcelizeGenerator implementa export.SpreadsheetGenerator com excelize.
type ExcelizeGenerator struct {
	printer *message.Printer
}

// NewExcelizeGenerator constrói o gerador com textos em pt-BR.
func NewExcelizeGenerator() *ExcelizeGenerator {
	return &ExcelizeGenerator{printer: i18n.Printer(i18n.PortugueseBR)}
}

// Generate monta a planilha em memória e devolve os bytes do .xlsx.
func (g *ExcelizeGenerator) Generate(orders []*entity.Order) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("excel: renomear aba: %w", err)
	}

	for i, c := range columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("excel: coluna %d: %w", i+1, err)
		}
		if err := f.SetColWidth(SheetName, name, name, c.width); err != nil {
			return nil, fmt.Errorf("excel: largura da coluna %s: %w", name, err)
		}
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, c.header); err != nil {
			return nil, fmt.Errorf("excel: cabeçalho %s: %w", c.header, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(columns), 1)
		_ = f.SetCellStyle(SheetName, "A1", last, headerStyle)
	}

	for rowIdx, order := range orders {
		values := g.rowValues(order)
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, fmt.Errorf("excel: célula %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: serializar planilha: %w", err)
	}
	return buf.Bytes(), nil
}

// rowValues projeta um pedido na ordem exata das colunas.
func (g *ExcelizeGenerator) rowValues(o *entity.Order) []string {
	return []string{
		o.Ordem,
		o.MatriculaQuadro,
		o.Modelo,
		o.Tamanho,
		o.AgenteComercial,
		i18n.YesNo(g.printer, o.Catalogo2026),
		o.CorBase,
		Finish(o.AcabamentoBase, o.AcabamentoBaseRock),
		o.CorDetalhes,
		Finish(o.AcabamentoDetalhes, o.AcabamentoDetalhesRock),
		o.CorLogo,
		Finish(o.AcabamentoLogo, o.AcabamentoLogoRock),
		o.CorLetras,
		Finish(o.AcabamentoLetras, o.AcabamentoLetrasRock),
		o.PedidosExtras,
		o.CreatedAt.Format("02/01/2006"),
	}
}

// Finish renderiza o acabamento de uma zona, com o sufixo Rock colapsado.
// Ex.: "Brilhoso + Rock".
func Finish(acabamento string, rock bool) string {
	if rock {
		return acabamento + " + Rock"
	}
	return acabamento
}
