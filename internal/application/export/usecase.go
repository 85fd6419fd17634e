package export

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/officinemattio/verniciatura-api/internal/domain"
	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
	"github.com/officinemattio/verniciatura-api/internal/domain/repository"
	"github.com/officinemattio/verniciatura-api/pkg/logger"
)

// ExportUseCase exportações da seleção de pedidos: planilha Excel,
// documento de impressão e pacote de PDFs. Só o export de PDF muda o
// estado dos pedidos (marca como completed); os outros dois são leituras.
type ExportUseCase struct {
	orderRepo   repository.OrderRepository
	spreadsheet SpreadsheetGenerator
	printer     PrintRenderer
	sheets      SheetGenerator
	log         *logger.Logger
}

// NewExportUseCase constrói o caso de uso de exportação.
func NewExportUseCase(
	orderRepo repository.OrderRepository,
	spreadsheet SpreadsheetGenerator,
	printer PrintRenderer,
	sheets SheetGenerator,
	log *logger.Logger,
) *ExportUseCase {
	return &ExportUseCase{
		orderRepo:   orderRepo,
		spreadsheet: spreadsheet,
		printer:     printer,
		sheets:      sheets,
		log:         log,
	}
}

// Excel gera a planilha dos pedidos selecionados, na ordem recebida.
func (uc *ExportUseCase) Excel(ctx context.Context, ids []string) (*File, error) {
	orders, err := uc.resolve(ids)
	if err != nil {
		return nil, err
	}
	data, err := uc.spreadsheet.Generate(orders)
	if err != nil {
		return nil, fmt.Errorf("gerar planilha: %w", err)
	}
	return &File{
		Filename:    fmt.Sprintf("pedidos_%s.xlsx", time.Now().Format("2006-01-02")),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        data,
	}, nil
}

// Print gera o documento de impressão (uma ficha por pedido selecionado).
func (uc *ExportUseCase) Print(ctx context.Context, ids []string) (*File, error) {
	orders, err := uc.resolve(ids)
	if err != nil {
		return nil, err
	}
	data, err := uc.printer.Render(orders)
	if err != nil {
		return nil, fmt.Errorf("gerar documento de impressão: %w", err)
	}
	return &File{
		Filename:    fmt.Sprintf("pedidos_%s.html", time.Now().Format("2006-01-02")),
		ContentType: "text/html; charset=utf-8",
		Data:        data,
	}, nil
}

// PDF gera, para cada pedido selecionado, a scheda colore A4 e a etiqueta
// A5 da caixa, empacota tudo em um ZIP e por fim marca os pedidos como
// completed em um único UPDATE. Se a geração falhar, nenhum status muda;
// se a marcação falhar depois do ZIP pronto, o erro é propagado e o
// arquivo é descartado.
func (uc *ExportUseCase) PDF(ctx context.Context, ids []string) (*File, error) {
	orders, err := uc.resolve(ids)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, order := range orders {
		scheda, err := uc.sheets.SchedaColore(order)
		if err != nil {
			return nil, fmt.Errorf("gerar scheda colore do pedido %s: %w", order.Ordem, err)
		}
		if err := addZipEntry(zw, fmt.Sprintf("Scheda_%s.pdf", order.Ordem), scheda); err != nil {
			return nil, err
		}
		label, err := uc.sheets.BoxLabel(order)
		if err != nil {
			return nil, fmt.Errorf("gerar etiqueta da caixa do pedido %s: %w", order.Ordem, err)
		}
		if err := addZipEntry(zw, fmt.Sprintf("Box_%s.pdf", order.Ordem), label); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("fechar zip: %w", err)
	}

	if err := uc.orderRepo.UpdateStatusIn(ids, entity.OrderStatusCompleted); err != nil {
		return nil, fmt.Errorf("marcar pedidos como concluídos: %w", err)
	}
	uc.log.Info().Int("pedidos", len(orders)).Msg("pedidos exportados em PDF e marcados como concluídos")

	return &File{
		Filename:    fmt.Sprintf("schede_colore_%s.zip", time.Now().Format("2006-01-02")),
		ContentType: "application/zip",
		Data:        buf.Bytes(),
	}, nil
}

// resolve carrega os pedidos na ordem pedida. ID inexistente aborta a
// exportação inteira: melhor nenhum arquivo do que um pacote incompleto.
func (uc *ExportUseCase) resolve(ids []string) ([]*entity.Order, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: nenhum pedido selecionado", domain.ErrInvalidInput)
	}
	orders := make([]*entity.Order, 0, len(ids))
	for _, id := range ids {
		order, err := uc.orderRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, id)
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func addZipEntry(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("criar entrada %s no zip: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("gravar %s no zip: %w", name, err)
	}
	return nil
}
