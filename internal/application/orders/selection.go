package orders

// Selection é o conjunto de pedidos marcados para exportação. A seleção é
// independente dos filtros da listagem: estreitar o filtro não desmarca
// linhas que ficaram ocultas.
type Selection map[string]struct{}

// NewSelection cria uma seleção vazia.
func NewSelection() Selection {
	return make(Selection)
}

// Has informa se o pedido está selecionado.
func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Toggle inverte a seleção de um pedido.
func (s Selection) Toggle(id string) {
	if s.Has(id) {
		delete(s, id)
	} else {
		s[id] = struct{}{}
	}
}

// Remove desmarca um pedido (ex.: após exclusão).
func (s Selection) Remove(id string) {
	delete(s, id)
}

// Len devolve o total de pedidos selecionados, visíveis ou não.
func (s Selection) Len() int {
	return len(s)
}

// ToggleAll alterna contra as linhas atualmente filtradas: se o total
// selecionado já iguala o total filtrado, limpa tudo; senão a seleção
// passa a ser exatamente as linhas filtradas. Nunca opera sobre o
// conjunto global de pedidos.
func (s Selection) ToggleAll(filteredIDs []string) {
	if s.Len() == len(filteredIDs) {
		for id := range s {
			delete(s, id)
		}
		return
	}
	for id := range s {
		delete(s, id)
	}
	for _, id := range filteredIDs {
		s[id] = struct{}{}
	}
}
