package htmlexport

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"calcplanner/internal/adapter/export"
	"calcplanner/internal/domain/entities"
	"calcplanner/internal/usecase/interfaces"
)

const estimateHTMLTemplate = `<!DOCTYPE html>
<html lang="pt-PT">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Orçamento - {{.Name}}</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { font-family: Arial, Helvetica, sans-serif; margin: 40px; line-height: 1.6; color: #333; background: #fff; }
    .container { max-width: 800px; margin: 0 auto; padding: 20px; }
    h1 { text-align: center; border-bottom: 3px solid #4A90E2; padding-bottom: 15px; margin-bottom: 30px; font-size: 28px; }
    h2 { color: #4A90E2; margin: 25px 0 15px 0; font-size: 20px; }
    .info { margin: 20px 0; padding: 20px; background: #f8f9fa; border-radius: 10px; border-left: 4px solid #4A90E2; }
    table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
    th { text-align: left; font-size: 12px; text-transform: uppercase; color: #666; border-bottom: 2px solid #4A90E2; padding: 8px 4px; }
    td { padding: 8px 4px; border-bottom: 1px solid #eee; font-size: 14px; }
    .num { text-align: right; }
    .missing { color: #b00020; }
    .cost-item { margin: 10px 0; padding: 8px 0; border-bottom: 1px solid #eee; font-size: 16px; }
    .cost-item strong { color: #4A90E2; }
    .total { font-size: 24px; font-weight: bold; text-align: center; margin: 40px 0; padding: 25px; background: #4A90E2; color: #fff; border-radius: 10px; }
    .footer { text-align: center; margin-top: 50px; color: #666; font-size: 12px; border-top: 1px solid #eee; padding-top: 20px; }
    @media print { body { margin: 20px; } .container { max-width: none; padding: 0; } }
  </style>
</head>
<body>
  <div class="container">
    <h1>Orçamento: {{.Name}}</h1>

    <div class="info">
      <strong>Data:</strong> {{formatDate .CreatedAt}}<br>
      <strong>Materiais selecionados:</strong> {{len .Breakdown.Lines}} itens
    </div>

    <h2>Materiais</h2>
    <table>
      <thead>
        <tr><th>Material</th><th class="num">Quantidade</th><th class="num">Preço unitário</th><th class="num">Subtotal</th></tr>
      </thead>
      <tbody>
      {{- range .Breakdown.Lines}}
        <tr{{if .MaterialMissing}} class="missing"{{end}}>
          <td>{{lineName .}}</td>
          <td class="num">{{formatQty .Quantity}} {{.Unit}}</td>
          <td class="num">{{formatMoney .UnitPrice}}</td>
          <td class="num">{{formatMoney .MaterialCost}}</td>
        </tr>
      {{- end}}
      </tbody>
    </table>

    <h2>Mão de Obra</h2>
    <table>
      <thead>
        <tr><th>Material</th><th class="num">Quantidade</th><th class="num">Preço / unidade</th><th class="num">Subtotal</th></tr>
      </thead>
      <tbody>
      {{- $rate := .Breakdown.LaborRatePerUnit}}
      {{- range .Breakdown.Lines}}
        <tr>
          <td>{{lineName .}}</td>
          <td class="num">{{formatQty .Quantity}}</td>
          <td class="num">{{formatMoney $rate}}</td>
          <td class="num">{{formatMoney .LaborCost}}</td>
        </tr>
      {{- end}}
      </tbody>
    </table>

    <h2>Custos Detalhados</h2>
    <div class="cost-item"><strong>Materiais:</strong> {{formatMoney .Breakdown.MaterialsCost}}</div>
    <div class="cost-item"><strong>Mão de Obra:</strong> {{formatMoney .Breakdown.LaborCost}}</div>
    <div class="cost-item"><strong>Acabamentos:</strong> {{formatMoney .Breakdown.FinishingCost}}</div>

    <div class="total">TOTAL: {{formatMoney .Breakdown.Total}}</div>

    <div class="footer">
      Orçamento gerado automaticamente pelo sistema CalcPlanner<br>
      Data de geração: {{formatDate .GeneratedAt}} às {{formatTime .GeneratedAt}}
    </div>
  </div>
</body>
</html>
`

type Renderer struct {
	tmpl *template.Template
}

var _ interfaces.IDocumentRenderer = (*Renderer)(nil)

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("estimate").Funcs(template.FuncMap{
		"formatMoney": func(float64) string { return "" },
		"formatQty":   export.Quantity,
		"formatDate":  func(t time.Time) string { return t.Format(export.DateLayout) },
		"formatTime":  func(t time.Time) string { return t.Format(export.TimeLayout) },
		"lineName":    export.LineName,
	}).Parse(estimateHTMLTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse estimate template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Format() entities.ExportFormat { return entities.ExportFormatHTML }

func (r *Renderer) Render(in entities.ExportInput) (entities.ExportDocument, error) {
	// the currency differs per call, so formatMoney is rebound on a clone
	tmpl, err := r.tmpl.Clone()
	if err != nil {
		return entities.ExportDocument{}, err
	}
	tmpl.Funcs(template.FuncMap{
		"formatMoney": func(v float64) string { return export.Money(in.Currency, v) },
	})

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, in); err != nil {
		return entities.ExportDocument{}, fmt.Errorf("execute estimate template: %w", err)
	}
	return entities.ExportDocument{
		FileName:    export.FileName(in.Name, in.CreatedAt, entities.ExportFormatHTML),
		ContentType: "text/html; charset=utf-8",
		Body:        buf.Bytes(),
	}, nil
}
