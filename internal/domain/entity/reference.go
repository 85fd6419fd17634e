package entity

// Color é um item do catálogo de cores: somente leitura para a aplicação,
// ordenado por display_order e depois por nome.
type Color struct {
	ID           string
	Name         string
	HexCode      string
	DisplayOrder int
}

// Model é um modelo de quadro/roda selecionável no formulário.
type Model struct {
	ID   string
	Name string
}

// Agent é um agente comercial selecionável no formulário.
type Agent struct {
	ID   string
	Name string
}
