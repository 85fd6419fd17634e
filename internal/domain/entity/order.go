package entity

import "time"

// Status de um pedido de pintura. Todo pedido nasce pendente; qualquer
// edição volta o status para pendente (pedido editado sempre exige nova
// revisão) e só a geração de documentos marca como concluído.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// Acabamentos de pintura válidos por zona.
const (
	AcabamentoOpaco    = "Opaco"
	AcabamentoBrilhoso = "Brilhoso"
)

// Tamanhos selecionáveis de quadro.
var Tamanhos = []string{"48", "50", "52", "54", "56", "58", "60", "63", "XS", "S", "M", "L", "XL", "CUSTOM"}

// OrderForm é o conjunto de campos editáveis de um pedido, exatamente o
// que o formulário envia. Identificadores, timestamps, criador e status
// ficam fora: eles não participam do diff de auditoria.
type OrderForm struct {
	Ordem           string
	MatriculaQuadro string
	Modelo          string
	Tamanho         string
	AgenteComercial string
	Catalogo2026    bool

	CorBase            string
	AcabamentoBase     string
	AcabamentoBaseRock bool

	CorDetalhes            string
	AcabamentoDetalhes     string
	AcabamentoDetalhesRock bool

	CorLogo            string
	AcabamentoLogo     string
	AcabamentoLogoRock bool

	CorLetras            string
	AcabamentoLetras     string
	AcabamentoLetrasRock bool

	PedidosExtras string
	Urgente       bool
}

// Order representa um pedido de pintura (um quadro/bicicleta/roda).
type Order struct {
	ID string
	OrderForm
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
	Status    string // pending, completed
}
