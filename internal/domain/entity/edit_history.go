package entity

import "time"

// FieldCreated é o field_name sentinela do primeiro registro de histórico
// de um pedido (entrada sintética de criação, old_value vazio).
const FieldCreated = "created"

// EditHistoryEntry é um registro imutável de auditoria: o antes/depois de
// um campo em uma operação de salvamento. Só há inserção, nunca update.
type EditHistoryEntry struct {
	ID        string
	OrderID   string
	FieldName string // nome da coluna do pedido, ou "created"
	OldValue  string // valor anterior convertido em texto ("" se ausente)
	NewValue  string
	EditedBy  string
	EditedAt  time.Time

	// EditorEmail vem do join com users na leitura; não é persistido aqui.
	EditorEmail string
}
