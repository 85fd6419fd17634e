// Package i18n concentra os textos exibidos nos documentos gerados pela
// aplicação. Cada adaptador de exportação pede explicitamente o idioma de
// saída (planilha em pt-BR, scheda/e-mail em italiano); não existe idioma
// global mutável.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Idiomas suportados pelos documentos.
var (
	PortugueseBR = language.BrazilianPortuguese
	Italian      = language.Italian
)

var translations = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(PortugueseBR))

	set := func(key, pt, it string) {
		_ = b.SetString(PortugueseBR, key, pt)
		_ = b.SetString(Italian, key, it)
	}

	set("common.yes", "Sim", "Sì")
	set("common.no", "Não", "No")
	set("common.date", "Data de Criação", "Data")

	set("orders.sheetTitle", "FICHA DE COR", "SCHEDA COLORE")
	set("orders.generalInfo", "Informações Gerais", "Informazioni Generali")
	set("orders.order", "Ordem", "Ordine")
	set("orders.frameNumber", "Matrícula do Quadro", "Matricola Telaio")
	set("orders.model", "Modelo", "Modello")
	set("orders.size", "Tamanho", "Taglia")
	set("orders.agent", "Agente Comercial", "Agente Commerciale")
	set("orders.catalog2026", "Catálogo 2026", "Catalogo 2026")
	set("orders.urgent", "Urgente", "Urgente")

	set("orders.base", "Cor Base", "Colore Base")
	set("orders.details", "Detalhes", "Accent")
	set("orders.logo", "Logo", "Logo")
	set("orders.letters", "Letras", "Scritte")
	set("orders.color", "Cor", "Colore")
	set("orders.finish", "Acabamento", "Finitura")
	set("orders.rock", "Acabamento Rock", "Finitura Rock")

	set("orders.extras", "Pedidos Extras", "Richieste Extra")
	set("orders.notes", "Observações", "Note")

	set("email.newOrder", "Novo Pedido de Pintura", "Nuovo Ordine di Verniciatura")
	set("email.modifiedOrder", "Ordem Modificada", "Ordine Modificato")
	set("email.createdBy", "Criado por", "Creato da")
	set("email.modifiedBy", "Modificado por", "Modificato da")
	set("email.system", "Sistema de Gestão de Pintura - Officine Mattio", "Sistema di Gestione Verniciatura - Officine Mattio")

	return b
}

// Printer devolve um *message.Printer ligado ao catálogo da aplicação.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(translations))
}

// T resolve uma chave do catálogo no idioma do printer.
func T(p *message.Printer, key string) string {
	return p.Sprintf(key)
}

// YesNo renderiza um booleano como texto localizado ("Sim"/"Não", "Sì"/"No").
// As exportações nunca emitem booleanos crus.
func YesNo(p *message.Printer, v bool) string {
	if v {
		return p.Sprintf("common.yes")
	}
	return p.Sprintf("common.no")
}
