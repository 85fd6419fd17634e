package export

import "github.com/officinemattio/verniciatura-api/internal/domain/entity"

// File resultado de uma exportação pronto para download.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SpreadsheetGenerator gera a planilha de pedidos.
type SpreadsheetGenerator interface {
	Generate(orders []*entity.Order) ([]byte, error)
}

// PrintRenderer gera o documento de impressão (uma ficha por pedido).
type PrintRenderer interface {
	Render(orders []*entity.Order) ([]byte, error)
}

// SheetGenerator gera os PDFs de um pedido: a scheda colore A4 para a
// cabine de pintura e a etiqueta A5 da caixa.
type SheetGenerator interface {
	SchedaColore(order *entity.Order) ([]byte, error)
	BoxLabel(order *entity.Order) ([]byte, error)
}
