package report

import (
	"fmt"
	"strings"
	"time"

	"taller-backend/internal/models"

	"github.com/jung-kurt/gofpdf"
)

const (
	receiptBlockTop    = 12.0  // y del bloque ORIGINAL
	receiptBlockCopy   = 158.0 // y del bloque COPIA
	receiptCutLineY    = 148.5 // línea de corte punteada
	receiptSide        = 15.0
	receiptLineHeight  = 7.0
	receiptNotesWidth  = 150.0 // ancho fijo para envolver las notas
	receiptSignatureDY = 95.0  // distancia del inicio del bloque a las firmas

	// las notas envueltas nunca pueden llegar a la zona fija de firmas
	receiptMaxNoteLines = 4
)

// BuildReceipt arma el recibo de un pago en duplicado: dos bloques casi
// idénticos en regiones verticales fijas de una misma hoja, ORIGINAL arriba
// y COPIA abajo, separados por una línea de corte. El recibo se imprime
// directo, nunca se guarda como archivo.
func BuildReceipt(p models.ExpensePayment) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(receiptSide, receiptBlockTop, receiptSide)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	drawReceiptBlock(pdf, tr, receiptBlockTop, "ORIGINAL", p)

	pdf.SetDrawColor(120, 120, 120)
	pdf.SetDashPattern([]float64{2, 2}, 0)
	pageW, _ := pdf.GetPageSize()
	pdf.Line(receiptSide, receiptCutLineY, pageW-receiptSide, receiptCutLineY)
	pdf.SetDashPattern([]float64{}, 0)
	pdf.SetDrawColor(0, 0, 0)

	drawReceiptBlock(pdf, tr, receiptBlockCopy, "COPIA", p)

	return pdf
}

func drawReceiptBlock(pdf *gofpdf.Fpdf, tr func(string) string, top float64, label string, p models.ExpensePayment) {
	pageW, _ := pdf.GetPageSize()
	width := pageW - 2*receiptSide

	pdf.SetXY(receiptSide, top)
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(width, 9, tr("RECIBO DE PAGO"), "", 1, "C", false, 0, "")

	pdf.SetX(receiptSide)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(width, 5, label, "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	writeField := func(name, value string) {
		pdf.SetX(receiptSide)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(42, receiptLineHeight, tr(name+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(width-42, receiptLineHeight, tr(value), "", 1, "L", false, 0, "")
	}

	writeField("Fecha", longSpanishDate(p.Date))
	writeField("Concepto", p.Expense.Description)
	if p.Expense.Destination != "" {
		writeField("Destino", p.Expense.Destination)
	}
	writeField("Monto", FormatAmount(p.Amount, p.Currency))
	writeField("Método de pago", p.PaymentMethod.Name)

	if p.Notes != "" {
		pdf.SetX(receiptSide)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(42, receiptLineHeight, tr("Notas:"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		// las notas se envuelven a un ancho fijo de columna
		lines := capLines(pdf.SplitText(tr(p.Notes), receiptNotesWidth-42), receiptMaxNoteLines)
		for i, line := range lines {
			if i > 0 {
				pdf.SetX(receiptSide + 42)
			}
			pdf.CellFormat(width-42, receiptLineHeight, line, "", 1, "L", false, 0, "")
		}
	}

	// firmas en posición fija dentro del bloque
	sigY := top + receiptSignatureDY
	sigWidth := 65.0
	gap := width - 2*sigWidth

	pdf.SetXY(receiptSide, sigY)
	pdf.CellFormat(sigWidth, 1, "", "B", 0, "", false, 0, "")
	pdf.SetX(receiptSide + sigWidth + gap)
	pdf.CellFormat(sigWidth, 1, "", "B", 1, "", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(receiptSide, sigY+2)
	pdf.CellFormat(sigWidth, 5, tr("Entregado por"), "", 0, "C", false, 0, "")
	pdf.SetX(receiptSide + sigWidth + gap)
	pdf.CellFormat(sigWidth, 5, tr("Recibido por"), "", 1, "C", false, 0, "")
}

// capLines recorta el texto envuelto a una cantidad máxima de líneas,
// marcando el corte en la última.
func capLines(lines []string, max int) []string {
	if len(lines) <= max {
		return lines
	}
	capped := make([]string, max)
	copy(capped, lines[:max])
	capped[max-1] = strings.TrimRight(capped[max-1], " ") + "..."
	return capped
}

// longSpanishDate - fecha larga en castellano: "31 de agosto de 2026"
func longSpanishDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), models.SpanishMonths[t.Month()-1], t.Year())
}
