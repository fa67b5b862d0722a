// Package report genera los artefactos de salida del listado de gastos
// fijos y del historial de pagos: documento imprimible en pantalla,
// planilla xlsx y documento PDF paginado, más el recibo de pago en
// duplicado.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"taller-backend/internal/expense"
	"taller-backend/internal/models"
)

// Mode - formato de salida de un reporte
type Mode string

const (
	ModePrint Mode = "print" // documento imprimible en pantalla
	ModeExcel Mode = "excel" // planilla xlsx
	ModePDF   Mode = "pdf"   // documento PDF paginado
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePrint, ModeExcel, ModePDF:
		return Mode(s), nil
	case "":
		return ModePrint, nil
	}
	return "", fmt.Errorf("modo de reporte inválido: %q", s)
}

// Los nombres de planilla llevan solo la fecha; los PDF llevan fecha, hora y
// milisegundos porque el mismo reporte puede exportarse varias veces en una
// sesión.
func dateStamp(t time.Time) string {
	return t.Format("2006-01-02")
}

func timeStamp(t time.Time) string {
	return fmt.Sprintf("%s_%03d", t.Format("20060102_150405"), t.Nanosecond()/int(time.Millisecond))
}

func ExpenseFileName(mode Mode, t time.Time) string {
	switch mode {
	case ModeExcel:
		return "expenses_" + dateStamp(t) + ".xlsx"
	case ModePDF:
		return "expenses_" + timeStamp(t) + ".pdf"
	}
	return ""
}

func PaymentHistoryFileName(mode Mode, t time.Time) string {
	switch mode {
	case ModeExcel:
		return "payment_history_" + dateStamp(t) + ".xlsx"
	case ModePDF:
		return "payment_history_" + timeStamp(t) + ".pdf"
	}
	return ""
}

// ExpenseFilterSummary arma el texto del encabezado de filtros uniendo solo
// los filtros activos. Sin filtros activos el reporte es completo.
func ExpenseFilterSummary(destination, periodicity string) string {
	parts := make([]string, 0, 2)
	if destination != "" && destination != expense.FilterAll {
		parts = append(parts, "Destino: "+destination)
	}
	if periodicity != "" && periodicity != expense.FilterAll {
		parts = append(parts, "Periodicidad: "+periodicity)
	}
	if len(parts) == 0 {
		return "Informe completo"
	}
	return strings.Join(parts, " - ")
}

func PaymentFilterSummary(expenseName string) string {
	if expenseName == "" || expenseName == expense.FilterAll {
		return "Informe completo"
	}
	return "Gasto: " + expenseName
}

// FormatAmount - monto con código de moneda: guaraníes sin decimales,
// dólares con dos.
func FormatAmount(amount float64, currency models.Currency) string {
	if currency == models.CurrencyDolares {
		return currency.Code() + " " + formatNumber(amount, 2)
	}
	return currency.Code() + " " + formatNumber(amount, 0)
}

// formatNumber separa miles con punto y decimales con coma.
func formatNumber(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		fracPart = s[i+1:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if fracPart != "" {
		out += "," + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
