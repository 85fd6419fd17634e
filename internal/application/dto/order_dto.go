package dto

import (
	"time"

	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
)

// OrderFormRequest é o snapshot completo do formulário de pedido. Os
// nomes JSON seguem as colunas persistidas, que são também os field_name
// do histórico de edições.
type OrderFormRequest struct {
	Ordem           string `json:"ordem"`
	MatriculaQuadro string `json:"matricula_quadro"`
	Modelo          string `json:"modelo"`
	Tamanho         string `json:"tamanho"`
	AgenteComercial string `json:"agente_comercial"`
	Catalogo2026    bool   `json:"catalogo_2026"`

	CorBase            string `json:"cor_base"`
	AcabamentoBase     string `json:"acabamento_base"`
	AcabamentoBaseRock bool   `json:"acabamento_base_rock"`

	CorDetalhes            string `json:"cor_detalhes"`
	AcabamentoDetalhes     string `json:"acabamento_detalhes"`
	AcabamentoDetalhesRock bool   `json:"acabamento_detalhes_rock"`

	CorLogo            string `json:"cor_logo"`
	AcabamentoLogo     string `json:"acabamento_logo"`
	AcabamentoLogoRock bool   `json:"acabamento_logo_rock"`

	CorLetras            string `json:"cor_letras"`
	AcabamentoLetras     string `json:"acabamento_letras"`
	AcabamentoLetrasRock bool   `json:"acabamento_letras_rock"`

	PedidosExtras string `json:"pedidos_extras"`
	Urgente       bool   `json:"urgente"`
}

// ToForm converte a requisição no snapshot de domínio, aplicando o
// default de acabamento ("Opaco") como o formulário original.
func (r OrderFormRequest) ToForm() entity.OrderForm {
	acabamento := func(v string) string {
		if v == "" {
			return entity.AcabamentoOpaco
		}
		return v
	}
	return entity.OrderForm{
		Ordem:           r.Ordem,
		MatriculaQuadro: r.MatriculaQuadro,
		Modelo:          r.Modelo,
		Tamanho:         r.Tamanho,
		AgenteComercial: r.AgenteComercial,
		Catalogo2026:    r.Catalogo2026,

		CorBase:            r.CorBase,
		AcabamentoBase:     acabamento(r.AcabamentoBase),
		AcabamentoBaseRock: r.AcabamentoBaseRock,

		CorDetalhes:            r.CorDetalhes,
		AcabamentoDetalhes:     acabamento(r.AcabamentoDetalhes),
		AcabamentoDetalhesRock: r.AcabamentoDetalhesRock,

		CorLogo:            r.CorLogo,
		AcabamentoLogo:     acabamento(r.AcabamentoLogo),
		AcabamentoLogoRock: r.AcabamentoLogoRock,

		CorLetras:            r.CorLetras,
		AcabamentoLetras:     acabamento(r.AcabamentoLetras),
		AcabamentoLetrasRock: r.AcabamentoLetrasRock,

		PedidosExtras: r.PedidosExtras,
		Urgente:       r.Urgente,
	}
}

// OrderResponse saída de um pedido.
type OrderResponse struct {
	ID string `json:"id"`
	OrderFormRequest
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Status    string    `json:"status"`
}

// FromOrder converte a entidade em resposta.
func FromOrder(o *entity.Order) OrderResponse {
	return OrderResponse{
		ID: o.ID,
		OrderFormRequest: OrderFormRequest{
			Ordem:           o.Ordem,
			MatriculaQuadro: o.MatriculaQuadro,
			Modelo:          o.Modelo,
			Tamanho:         o.Tamanho,
			AgenteComercial: o.AgenteComercial,
			Catalogo2026:    o.Catalogo2026,

			CorBase:            o.CorBase,
			AcabamentoBase:     o.AcabamentoBase,
			AcabamentoBaseRock: o.AcabamentoBaseRock,

			CorDetalhes:            o.CorDetalhes,
			AcabamentoDetalhes:     o.AcabamentoDetalhes,
			AcabamentoDetalhesRock: o.AcabamentoDetalhesRock,

			CorLogo:            o.CorLogo,
			AcabamentoLogo:     o.AcabamentoLogo,
			AcabamentoLogoRock: o.AcabamentoLogoRock,

			CorLetras:            o.CorLetras,
			AcabamentoLetras:     o.AcabamentoLetras,
			AcabamentoLetrasRock: o.AcabamentoLetrasRock,

			PedidosExtras: o.PedidosExtras,
			Urgente:       o.Urgente,
		},
		CreatedBy: o.CreatedBy,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
		Status:    o.Status,
	}
}

// EditHistoryResponse uma entrada do histórico de edições.
type EditHistoryResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	FieldName   string    `json:"field_name"`
	OldValue    string    `json:"old_value"`
	NewValue    string    `json:"new_value"`
	EditedBy    string    `json:"edited_by"`
	EditorEmail string    `json:"editor_email"`
	EditedAt    time.Time `json:"edited_at"`
}

// ExportRequest seleção de pedidos para exportação (planilha, impressão
// ou PDF), na ordem escolhida pelo usuário.
type ExportRequest struct {
	IDs []string `json:"ids"`
}
