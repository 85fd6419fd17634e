// Package orderdiff implementa o diff campo a campo entre dois snapshots
// do formulário de pedido, base do histórico de edições.
//
// A comparação é textual e explícita: cada campo do formulário tem uma
// única representação em string (booleanos viram "true"/"false") e dois
// snapshots são comparados por igualdade dessas strings. Um valor ausente
// é representado por "", portanto "" e ausente são equivalentes e nunca
// geram registro de auditoria.
//
// Identificadores, timestamps, criador e status ficam fora do diff: só o
// conjunto de campos do formulário participa.
package orderdiff

import (
	"strconv"

	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
)

// Change descreve a alteração de um único campo em um salvamento.
type Change struct {
	FieldName string
	OldValue  string
	NewValue  string
}

// FieldValue é um campo do formulário já convertido para texto.
// Name usa o nome da coluna persistida (ex.: "cor_base"), que é o que o
// histórico de edições exibe.
type FieldValue struct {
	Name  string
	Value string
}

// Fields devolve os campos do formulário em ordem estável, cada um com a
// sua representação textual canônica.
func Fields(f entity.OrderForm) []FieldValue {
	b := strconv.FormatBool
	return []FieldValue{
		{"ordem", f.Ordem},
		{"matricula_quadro", f.MatriculaQuadro},
		{"modelo", f.Modelo},
		{"tamanho", f.Tamanho},
		{"agente_comercial", f.AgenteComercial},
		{"catalogo_2026", b(f.Catalogo2026)},
		{"cor_base", f.CorBase},
		{"acabamento_base", f.AcabamentoBase},
		{"acabamento_base_rock", b(f.AcabamentoBaseRock)},
		{"cor_detalhes", f.CorDetalhes},
		{"acabamento_detalhes", f.AcabamentoDetalhes},
		{"acabamento_detalhes_rock", b(f.AcabamentoDetalhesRock)},
		{"cor_logo", f.CorLogo},
		{"acabamento_logo", f.AcabamentoLogo},
		{"acabamento_logo_rock", b(f.AcabamentoLogoRock)},
		{"cor_letras", f.CorLetras},
		{"acabamento_letras", f.AcabamentoLetras},
		{"acabamento_letras_rock", b(f.AcabamentoLetrasRock)},
		{"pedidos_extras", f.PedidosExtras},
		{"urgente", b(f.Urgente)},
	}
}

// Diff compara dois snapshots do formulário e devolve uma Change por campo
// cujo valor textual difere, na ordem de Fields. Campos iguais não geram
// entrada; um update sem alteração real devolve slice vazio.
func Diff(oldForm, newForm entity.OrderForm) []Change {
	oldFields := Fields(oldForm)
	newFields := Fields(newForm)

	var changes []Change
	for i, nf := range newFields {
		if of := oldFields[i]; of.Value != nf.Value {
			changes = append(changes, Change{
				FieldName: nf.Name,
				OldValue:  of.Value,
				NewValue:  nf.Value,
			})
		}
	}
	return changes
}

// CreationChange devolve a entrada sintética de criação: field_name
// "created", old_value vazio e uma mensagem legível com o autor.
func CreationChange(editorEmail string) Change {
	return Change{
		FieldName: entity.FieldCreated,
		OldValue:  "",
		NewValue:  "Pedido criado por " + editorEmail,
	}
}
