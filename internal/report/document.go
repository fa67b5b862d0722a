package report

import (
	"time"

	"taller-backend/internal/expense"
	"taller-backend/internal/models"

	"github.com/jung-kurt/gofpdf"
)

const (
	docMarginSide   = 10
	docMarginTop    = 15
	docMarginBottom = 20

	docRowHeight    = 7
	docHeaderHeight = 8

	// alto mínimo que exigen las cajas de totales antes de empezar a
	// dibujarlas; si no queda, van enteras a la página siguiente
	docTotalsMinHeight = 36
	docTotalsBoxHeight = 12
)

// newDocument crea el PDF base: A4 vertical, pie de página con la fecha de
// impresión en cada página emitida.
func newDocument(now time.Time) (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetMargins(docMarginSide, docMarginTop, docMarginSide)
	pdf.SetAutoPageBreak(false, docMarginBottom)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 10, tr("Impreso el "+now.Format("02/01/2006 15:04")), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	return pdf, tr
}

func drawTitle(pdf *gofpdf.Fpdf, tr func(string) string, title, filterSummary string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 6, tr(filterSummary), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)
}

type docColumn struct {
	title string
	width float64
	align string
}

func drawTableHeader(pdf *gofpdf.Fpdf, tr func(string) string, cols []docColumn) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range cols {
		pdf.CellFormat(col.width, docHeaderHeight, tr(col.title), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
}

func drawTableRow(pdf *gofpdf.Fpdf, tr func(string) string, cols []docColumn, values []string) {
	for i, col := range cols {
		// recorte simple para que la celda no desborde
		runes := []rune(values[i])
		for pdf.GetStringWidth(tr(string(runes))) > col.width-2 && len(runes) > 1 {
			runes = runes[:len(runes)-1]
		}
		pdf.CellFormat(col.width, docRowHeight, tr(string(runes)), "1", 0, col.align, false, 0, "")
	}
	pdf.Ln(-1)
}

// drawTotalsBoxes dibuja una caja por moneda inmediatamente después del
// final de la tabla. El cursor garantiza que el bloque completo tenga lugar
// antes de dibujar la primera caja.
func drawTotalsBoxes(pdf *gofpdf.Fpdf, tr func(string) string, cur *Cursor, lines []string) {
	// en una página nueva los totales no llevan encabezado de tabla
	cur.OnNewPage(nil)
	cur.RequireSpace(docTotalsMinHeight)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	for _, line := range lines {
		pdf.CellFormat(90, docTotalsBoxHeight, tr(line), "1", 1, "R", false, 0, "")
		pdf.Ln(1)
	}
}

// BuildExpenseDocument arma el PDF del listado de gastos fijos: título,
// resumen de filtros, tabla y una caja de total por moneda.
func BuildExpenseDocument(rows []models.RecurringExpense, totals []expense.CurrencyTotals, filterSummary string, now time.Time) *gofpdf.Fpdf {
	pdf, tr := newDocument(now)

	cols := []docColumn{
		{"Descripción", 60, "L"},
		{"Monto", 27, "R"},
		{"Moneda", 18, "C"},
		{"Venc.", 15, "C"},
		{"Periodicidad", 32, "C"},
		{"Destino", 38, "L"},
	}

	cur := NewCursor(pdf, docMarginBottom)
	cur.OnNewPage(func() {
		drawTableHeader(pdf, tr, cols)
	})

	pdf.AddPage()
	drawTitle(pdf, tr, "Listado de Gastos Fijos", filterSummary)
	drawTableHeader(pdf, tr, cols)

	for _, e := range rows {
		cur.RequireSpace(docRowHeight)
		drawTableRow(pdf, tr, cols, []string{
			e.Description,
			formatNumber(e.Amount, amountDecimals(e.Currency)),
			e.Currency.Code(),
			intToString(e.DueDay),
			e.PeriodLabel(),
			e.Destination,
		})
	}

	lines := make([]string, 0, len(totals))
	for _, t := range totals {
		lines = append(lines, "Total "+t.Currency.Code()+": "+formatNumber(t.Total, amountDecimals(t.Currency)))
	}
	drawTotalsBoxes(pdf, tr, cur, lines)

	return pdf
}

// BuildPaymentHistoryDocument arma el PDF del historial de pagos.
func BuildPaymentHistoryDocument(rows []models.ExpensePayment, totals []expense.PaymentTotals, filterSummary string, now time.Time) *gofpdf.Fpdf {
	pdf, tr := newDocument(now)

	cols := []docColumn{
		{"Fecha", 22, "C"},
		{"Concepto", 56, "L"},
		{"Monto", 27, "R"},
		{"Moneda", 18, "C"},
		{"Método", 33, "L"},
		{"Notas", 34, "L"},
	}

	cur := NewCursor(pdf, docMarginBottom)
	cur.OnNewPage(func() {
		drawTableHeader(pdf, tr, cols)
	})

	pdf.AddPage()
	drawTitle(pdf, tr, "Historial de Pagos", filterSummary)
	drawTableHeader(pdf, tr, cols)

	for _, p := range rows {
		cur.RequireSpace(docRowHeight)
		drawTableRow(pdf, tr, cols, []string{
			p.Date.Format("02/01/2006"),
			p.Expense.Description,
			formatNumber(p.Amount, amountDecimals(p.Currency)),
			p.Currency.Code(),
			p.PaymentMethod.Name,
			p.Notes,
		})
	}

	lines := make([]string, 0, len(totals))
	for _, t := range totals {
		lines = append(lines, "Total "+t.Currency.Code()+": "+formatNumber(t.Total, amountDecimals(t.Currency)))
	}
	drawTotalsBoxes(pdf, tr, cur, lines)

	return pdf
}

func amountDecimals(c models.Currency) int {
	if c == models.CurrencyDolares {
		return 2
	}
	return 0
}

func intToString(v int) string {
	return formatNumber(float64(v), 0)
}
