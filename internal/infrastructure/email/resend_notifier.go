// Package email envia as notificações de pedido via API REST do Resend.
// O corpo do e-mail sai em italiano (destinatário é a fábrica); o assunto
// chega pronto do caso de uso.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"golang.org/x/text/message"

	"github.com/officinemattio/verniciatura-api/internal/application/orders"
	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
	"github.com/officinemattio/verniciatura-api/pkg/i18n"
)

const resendURL = "https://api.resend.com/emails"

// Config credenciais e endereços da notificação.
type Config struct {
	APIKey string // chave da API do Resend; vazia desabilita o envio
	From   string // remetente (ex.: "Verniciatura <onboarding@resend.dev>")
	To     string // destinatário fixo na fábrica
}

// ResendNotifier implementa orders.Notifier contra o Resend.
type ResendNotifier struct {
	cfg        Config
	httpClient *http.Client
	printer    *message.Printer
}

// NewResendNotifier constrói o notificador com timeout de rede curto: o
// envio roda no caminho do salvamento e não pode segurá-lo por muito tempo.
func NewResendNotifier(cfg Config) *ResendNotifier {
	return &ResendNotifier{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		printer:    i18n.Printer(i18n.Italian),
	}
}

// resendRequest payload do POST /emails.
type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// SendOrderNotification monta o corpo HTML e entrega ao Resend.
func (n *ResendNotifier) SendOrderNotification(ctx context.Context, notif orders.Notification) error {
	if n.cfg.APIKey == "" {
		return fmt.Errorf("email: RESEND_API_KEY não configurada")
	}

	html, err := n.renderBody(notif)
	if err != nil {
		return fmt.Errorf("email: montar corpo: %w", err)
	}

	payload, err := json.Marshal(resendRequest{
		From:    n.cfg.From,
		To:      []string{n.cfg.To},
		Subject: notif.Subject,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("email: serializar payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendURL,
		bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("email: criar request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.cfg.APIKey)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("email: timeout ou cancelamento: %w", ctx.Err())
		}
		return fmt.Errorf("email: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		rawBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		var apiErr resendError
		if json.Unmarshal(rawBody, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("email: resend %d [%s]: %s", resp.StatusCode, apiErr.Name, apiErr.Message)
		}
		return fmt.Errorf("email: resend %d: %s", resp.StatusCode, string(rawBody))
	}
	return nil
}

// ── Corpo HTML ────────────────────────────────────────────────────────────────

type zoneView struct {
	Title  string
	Color  string
	Finish string
}

type bodyView struct {
	Header      string
	ActorLabel  string
	ActorEmail  string
	Date        string
	GeneralInfo string
	Order       *entity.Order
	Catalog     string
	Zones       []zoneView
	ExtrasTitle string
	Extras      string
	Footer      string
}

var bodyTmpl = template.Must(template.New("order-email").Parse(`<!DOCTYPE html>
<html>
  <head>
    <style>
      body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
      .container { max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { background: #1a1a1a; color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0; }
      .content { background: #f9fafb; padding: 30px; border-radius: 0 0 8px 8px; }
      .section { background: white; padding: 20px; margin-bottom: 20px; border-radius: 8px; }
      .section h3 { margin-top: 0; color: #1a1a1a; border-bottom: 2px solid #1a1a1a; padding-bottom: 10px; }
      .field { margin-bottom: 12px; }
      .field-label { font-weight: 600; color: #666; }
      .footer { text-align: center; padding: 20px; color: #666; font-size: 14px; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <h1>{{.Header}}</h1>
        <p>Officine Mattio</p>
      </div>
      <div class="content">
        <p><strong>{{.ActorLabel}}:</strong> {{.ActorEmail}}</p>
        <p><strong>Data:</strong> {{.Date}}</p>
        <div class="section">
          <h3>{{.GeneralInfo}}</h3>
          <div class="field"><span class="field-label">Ordine:</span> {{.Order.Ordem}}</div>
          <div class="field"><span class="field-label">Matricola Telaio:</span> {{.Order.MatriculaQuadro}}</div>
          <div class="field"><span class="field-label">Modello:</span> {{.Order.Modelo}}</div>
          <div class="field"><span class="field-label">Taglia:</span> {{.Order.Tamanho}}</div>
          <div class="field"><span class="field-label">Agente Commerciale:</span> {{.Order.AgenteComercial}}</div>
          <div class="field"><span class="field-label">Catalogo 2026:</span> {{.Catalog}}</div>
        </div>
        {{range .Zones}}
        <div class="section">
          <h3>{{.Title}}</h3>
          <div class="field"><span class="field-label">Colore:</span> {{.Color}}</div>
          <div class="field"><span class="field-label">Finitura:</span> {{.Finish}}</div>
        </div>
        {{end}}
        {{if .Extras}}
        <div class="section">
          <h3>{{.ExtrasTitle}}</h3>
          <p>{{.Extras}}</p>
        </div>
        {{end}}
      </div>
      <div class="footer">
        <p>{{.Footer}}</p>
      </div>
    </div>
  </body>
</html>
`))

// renderBody projeta a notificação na view e executa o template.
func (n *ResendNotifier) renderBody(notif orders.Notification) (string, error) {
	p := n.printer
	o := notif.Order

	header := i18n.T(p, "email.newOrder")
	actorLabel := i18n.T(p, "email.createdBy")
	if notif.Modified {
		header = i18n.T(p, "email.modifiedOrder")
		actorLabel = i18n.T(p, "email.modifiedBy")
	}

	finish := func(acabamento string, rock bool) string {
		if rock {
			return acabamento + " + Rock"
		}
		return acabamento
	}

	view := bodyView{
		Header:      header,
		ActorLabel:  actorLabel,
		ActorEmail:  notif.UserEmail,
		Date:        time.Now().Format("02/01/2006 15:04"),
		GeneralInfo: i18n.T(p, "orders.generalInfo"),
		Order:       &o,
		Catalog:     i18n.YesNo(p, o.Catalogo2026),
		Zones: []zoneView{
			{i18n.T(p, "orders.base"), o.CorBase, finish(o.AcabamentoBase, o.AcabamentoBaseRock)},
			{i18n.T(p, "orders.details"), o.CorDetalhes, finish(o.AcabamentoDetalhes, o.AcabamentoDetalhesRock)},
			{i18n.T(p, "orders.logo"), o.CorLogo, finish(o.AcabamentoLogo, o.AcabamentoLogoRock)},
			{i18n.T(p, "orders.letters"), o.CorLetras, finish(o.AcabamentoLetras, o.AcabamentoLetrasRock)},
		},
		ExtrasTitle: i18n.T(p, "orders.extras"),
		Extras:      o.PedidosExtras,
		Footer:      i18n.T(p, "email.system"),
	}

	var buf bytes.Buffer
	if err := bodyTmpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}
