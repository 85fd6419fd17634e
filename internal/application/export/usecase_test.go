package export_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officinemattio/verniciatura-api/internal/application/export"
	"github.com/officinemattio/verniciatura-api/internal/domain"
	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
	"github.com/officinemattio/verniciatura-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders    map[string]*entity.Order
	statusIn  []string
	statusSet string
	statusErr error
}

func (r *fakeOrderRepo) Create(order *entity.Order) error { return nil }
func (r *fakeOrderRepo) Update(order *entity.Order) error { return nil }
func (r *fakeOrderRepo) Delete(id string) error           { return nil }

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) ListAll() ([]*entity.Order, error) { return nil, nil }

func (r *fakeOrderRepo) UpdateStatusIn(ids []string, status string) error {
	if r.statusErr != nil {
		return r.statusErr
	}
	r.statusIn = append([]string(nil), ids...)
	r.statusSet = status
	for _, id := range ids {
		if o, ok := r.orders[id]; ok {
			o.Status = status
		}
	}
	return nil
}

// fakeSpreadsheet registra os pedidos recebidos, na ordem.
type fakeSpreadsheet struct {
	got []string
	err error
}

func (g *fakeSpreadsheet) Generate(orders []*entity.Order) ([]byte, error) {
	if g.err != nil {
		return nil, g.err
	}
	for _, o := range orders {
		g.got = append(g.got, o.Ordem)
	}
	return []byte("xlsx-bytes"), nil
}

type fakePrinter struct{}

func (fakePrinter) Render(orders []*entity.Order) ([]byte, error) {
	return []byte(fmt.Sprintf("<html>%d pedidos</html>", len(orders))), nil
}

type fakeSheets struct {
	schedaErr error
}

func (g *fakeSheets) SchedaColore(order *entity.Order) ([]byte, error) {
	if g.schedaErr != nil {
		return nil, g.schedaErr
	}
	return []byte("scheda-" + order.Ordem), nil
}

func (g *fakeSheets) BoxLabel(order *entity.Order) ([]byte, error) {
	return []byte("box-" + order.Ordem), nil
}

func seedRepo(ordens ...string) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: make(map[string]*entity.Order)}
	for i, ordem := range ordens {
		id := fmt.Sprintf("id-%d", i+1)
		repo.orders[id] = &entity.Order{
			ID:        id,
			OrderForm: entity.OrderForm{Ordem: ordem},
			Status:    entity.OrderStatusPending,
			CreatedAt: time.Now(),
		}
	}
	return repo
}

func newUC(repo *fakeOrderRepo, sheet *fakeSpreadsheet, sheets *fakeSheets) *export.ExportUseCase {
	return export.NewExportUseCase(repo, sheet, fakePrinter{}, sheets,
		logger.New(logger.Config{Env: "test", Level: "error"}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Excel / Print
// ──────────────────────────────────────────────────────────────────────────────

func TestExcel_PreservaOrdemDaSelecaoENaoMudaStatus(t *testing.T) {
	repo := seedRepo("OM-1", "OM-2", "OM-3")
	sheet := &fakeSpreadsheet{}
	uc := newUC(repo, sheet, &fakeSheets{})

	// Seleção em ordem diferente da criação
	file, err := uc.Excel(context.Background(), []string{"id-3", "id-1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"OM-3", "OM-1"}, sheet.got,
		"a planilha recebe os pedidos na ordem da seleção")
	assert.Equal(t, fmt.Sprintf("pedidos_%s.xlsx", time.Now().Format("2006-01-02")), file.Filename)
	assert.Equal(t, []byte("xlsx-bytes"), file.Data)
	assert.Empty(t, repo.statusIn, "exportar planilha não muda status")
}

func TestExcel_SelecaoVazia_Rejeitada(t *testing.T) {
	uc := newUC(seedRepo("OM-1"), &fakeSpreadsheet{}, &fakeSheets{})
	_, err := uc.Excel(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExcel_IDInexistente_AbortaExportacao(t *testing.T) {
	uc := newUC(seedRepo("OM-1"), &fakeSpreadsheet{}, &fakeSheets{})
	_, err := uc.Excel(context.Background(), []string{"id-1", "id-fantasma"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPrint_GeraDocumentoSemMudarStatus(t *testing.T) {
	repo := seedRepo("OM-1", "OM-2")
	uc := newUC(repo, &fakeSpreadsheet{}, &fakeSheets{})

	file, err := uc.Print(context.Background(), []string{"id-1", "id-2"})
	require.NoError(t, err)

	assert.Contains(t, string(file.Data), "2 pedidos")
	assert.Contains(t, file.ContentType, "text/html")
	assert.Empty(t, repo.statusIn, "exportar para impressão não muda status")
}

// ──────────────────────────────────────────────────────────────────────────────
// PDF: único caminho para status=completed
// ──────────────────────────────────────────────────────────────────────────────

func TestPDF_GeraZipEMarcaConcluidos(t *testing.T) {
	repo := seedRepo("OM-1", "OM-2")
	uc := newUC(repo, &fakeSpreadsheet{}, &fakeSheets{})

	file, err := uc.PDF(context.Background(), []string{"id-2", "id-1"})
	require.NoError(t, err)
	assert.Equal(t, "application/zip", file.ContentType)

	zr, err := zip.NewReader(bytes.NewReader(file.Data), int64(len(file.Data)))
	require.NoError(t, err)

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"Scheda_OM-2.pdf", "Box_OM-2.pdf",
		"Scheda_OM-1.pdf", "Box_OM-1.pdf",
	}, names, "dois PDFs por pedido, na ordem da seleção")

	assert.Equal(t, []string{"id-2", "id-1"}, repo.statusIn,
		"os mesmos ids exportados são marcados")
	assert.Equal(t, entity.OrderStatusCompleted, repo.statusSet)
	assert.Equal(t, entity.OrderStatusCompleted, repo.orders["id-1"].Status)
	assert.Equal(t, entity.OrderStatusCompleted, repo.orders["id-2"].Status)
}

func TestPDF_FalhaNaGeracao_NaoMudaStatus(t *testing.T) {
	repo := seedRepo("OM-1")
	uc := newUC(repo, &fakeSpreadsheet{}, &fakeSheets{schedaErr: errors.New("fonte indisponível")})

	_, err := uc.PDF(context.Background(), []string{"id-1"})
	require.Error(t, err)
	assert.Empty(t, repo.statusIn, "falha na geração não marca nada como concluído")
	assert.Equal(t, entity.OrderStatusPending, repo.orders["id-1"].Status)
}

func TestPDF_FalhaAoMarcar_PropagaErro(t *testing.T) {
	repo := seedRepo("OM-1")
	repo.statusErr = errors.New("banco fora do ar")
	uc := newUC(repo, &fakeSpreadsheet{}, &fakeSheets{})

	_, err := uc.PDF(context.Background(), []string{"id-1"})
	assert.Error(t, err, "zip pronto mas marcação falhou: o erro propaga")
}
