package report

import (
	"bytes"
	"html/template"
	"time"

	"taller-backend/internal/expense"
	"taller-backend/internal/models"
)

// Documento imprimible en pantalla: HTML autocontenido, con estilos
// embebidos y sin recursos externos. Al cargarse dispara la impresión solo;
// el que lo abre lo descarta después.
const printTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; margin: 24px; color: #222; }
  h1 { text-align: center; font-size: 20px; margin-bottom: 4px; }
  .filtros { text-align: center; color: #666; font-size: 12px; margin-bottom: 16px; }
  table { width: 100%; border-collapse: collapse; font-size: 12px; }
  th, td { border: 1px solid #999; padding: 4px 6px; text-align: left; }
  th { background: #e6e6e6; }
  td.num { text-align: right; }
  .totales { margin-top: 16px; display: flex; flex-direction: column; align-items: flex-end; gap: 4px; }
  .totales div { border: 1px solid #333; padding: 6px 12px; font-weight: bold; font-size: 13px; }
  .pie { margin-top: 24px; text-align: center; color: #888; font-size: 10px; }
  @media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="filtros">{{.FilterSummary}}</div>
<table>
  <thead>
    <tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
  </thead>
  <tbody>
    {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
    {{end}}
  </tbody>
</table>
<div class="totales">
  {{range .Totals}}<div>{{.}}</div>
  {{end}}
</div>
<div class="pie">Impreso el {{.PrintedAt}}</div>
<script>window.addEventListener('load', function () { window.print(); });</script>
</body>
</html>
`

var printTmpl = template.Must(template.New("print").Parse(printTemplate))

type printDocument struct {
	Title         string
	FilterSummary string
	Headers       []string
	Rows          [][]string
	Totals        []string
	PrintedAt     string
}

func renderPrintDocument(doc printDocument) (string, error) {
	var buf bytes.Buffer
	if err := printTmpl.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// BuildExpensePrintDocument arma el documento imprimible del listado de
// gastos, con la misma estructura que el PDF.
func BuildExpensePrintDocument(rows []models.RecurringExpense, totals []expense.CurrencyTotals, filterSummary string, now time.Time) (string, error) {
	doc := printDocument{
		Title:         "Listado de Gastos Fijos",
		FilterSummary: filterSummary,
		Headers:       []string{"Descripción", "Monto", "Moneda", "Venc.", "Periodicidad", "Destino"},
		PrintedAt:     now.Format("02/01/2006 15:04"),
	}

	for _, e := range rows {
		doc.Rows = append(doc.Rows, []string{
			e.Description,
			formatNumber(e.Amount, amountDecimals(e.Currency)),
			e.Currency.Code(),
			intToString(e.DueDay),
			e.PeriodLabel(),
			e.Destination,
		})
	}
	for _, t := range totals {
		doc.Totals = append(doc.Totals, "Total "+t.Currency.Code()+": "+formatNumber(t.Total, amountDecimals(t.Currency)))
	}

	return renderPrintDocument(doc)
}

// BuildPaymentHistoryPrintDocument arma el documento imprimible del
// historial de pagos.
func BuildPaymentHistoryPrintDocument(rows []models.ExpensePayment, totals []expense.PaymentTotals, filterSummary string, now time.Time) (string, error) {
	doc := printDocument{
		Title:         "Historial de Pagos",
		FilterSummary: filterSummary,
		Headers:       []string{"Fecha", "Concepto", "Monto", "Moneda", "Método de pago", "Notas"},
		PrintedAt:     now.Format("02/01/2006 15:04"),
	}

	for _, p := range rows {
		doc.Rows = append(doc.Rows, []string{
			p.Date.Format("02/01/2006"),
			p.Expense.Description,
			formatNumber(p.Amount, amountDecimals(p.Currency)),
			p.Currency.Code(),
			p.PaymentMethod.Name,
			p.Notes,
		})
	}
	for _, t := range totals {
		doc.Totals = append(doc.Totals, "Total "+t.Currency.Code()+": "+formatNumber(t.Total, amountDecimals(t.Currency)))
	}

	return renderPrintDocument(doc)
}
