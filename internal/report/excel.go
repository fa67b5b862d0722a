package report

import (
	"fmt"

	"taller-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

var expenseHeaders = []string{"Descripción", "Monto", "Moneda", "Vencimiento", "Periodicidad", "Destino", "Estado"}

var paymentHeaders = []string{"Fecha", "Concepto", "Monto", "Moneda", "Método de pago", "Notas"}

// BuildExpenseWorkbook arma la planilla de gastos: una hoja, una fila plana
// por gasto con los campos ya formateados para mostrar.
func BuildExpenseWorkbook(rows []models.RecurringExpense) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	if err := writeHeaderRow(f, sheet, expenseHeaders); err != nil {
		return nil, err
	}

	for i, e := range rows {
		values := []interface{}{
			e.Description,
			e.Amount,
			e.Currency.Code(),
			e.DueDay,
			e.PeriodLabel(),
			e.Destination,
			string(e.Status),
		}
		if err := writeRow(f, sheet, i+2, values); err != nil {
			return nil, err
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 40)
	_ = f.SetColWidth(sheet, "B", "G", 16)

	return f, nil
}

// BuildPaymentHistoryWorkbook arma la planilla del historial de pagos.
func BuildPaymentHistoryWorkbook(rows []models.ExpensePayment) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	if err := writeHeaderRow(f, sheet, paymentHeaders); err != nil {
		return nil, err
	}

	for i, p := range rows {
		values := []interface{}{
			p.Date.Format("02/01/2006"),
			p.Expense.Description,
			p.Amount,
			p.Currency.Code(),
			p.PaymentMethod.Name,
			p.Notes,
		}
		if err := writeRow(f, sheet, i+2, values); err != nil {
			return nil, err
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "B", 40)
	_ = f.SetColWidth(sheet, "C", "F", 16)

	return f, nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell := fmt.Sprintf("A%d", row)
	return f.SetSheetRow(sheet, cell, &values)
}
