package report

import (
	"testing"
	"time"

	"taller-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildExpenseWorkbook(t *testing.T) {
	rows := []models.RecurringExpense{
		{
			Description: "Alquiler del local",
			Amount:      3500000,
			Currency:    models.CurrencyGuaranies,
			DueDay:      5,
			Destination: models.DestinationCasaCentral,
			Status:      models.StatusActivo,
		},
		{
			Description: "Seguro contra incendios",
			Amount:      450,
			Currency:    models.CurrencyDolares,
			DueDay:      1,
			IsAnnual:    true,
			DueMonth:    "marzo",
			Destination: models.DestinationSucursal,
			Status:      models.StatusInactivo,
		},
	}

	f, err := BuildExpenseWorkbook(rows)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)

	got, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Descripción", got)

	got, _ = f.GetCellValue(sheet, "A2")
	assert.Equal(t, "Alquiler del local", got)
	got, _ = f.GetCellValue(sheet, "C2")
	assert.Equal(t, "Gs", got)
	got, _ = f.GetCellValue(sheet, "E2")
	assert.Equal(t, "Mensual", got)

	got, _ = f.GetCellValue(sheet, "C3")
	assert.Equal(t, "USD", got)
	got, _ = f.GetCellValue(sheet, "E3")
	assert.Equal(t, "Anual (marzo)", got)
	got, _ = f.GetCellValue(sheet, "G3")
	assert.Equal(t, "inactivo", got)
}

func TestBuildPaymentHistoryWorkbook(t *testing.T) {
	rows := []models.ExpensePayment{
		{
			Expense:       models.RecurringExpense{Description: "Internet"},
			Date:          time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
			Amount:        280000,
			Currency:      models.CurrencyGuaranies,
			PaymentMethod: models.PaymentMethod{Name: "Transferencia"},
			Notes:         "abril",
		},
	}

	f, err := BuildPaymentHistoryWorkbook(rows)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)

	got, _ := f.GetCellValue(sheet, "A1")
	assert.Equal(t, "Fecha", got)
	got, _ = f.GetCellValue(sheet, "A2")
	assert.Equal(t, "02/04/2026", got)
	got, _ = f.GetCellValue(sheet, "B2")
	assert.Equal(t, "Internet", got)
	got, _ = f.GetCellValue(sheet, "E2")
	assert.Equal(t, "Transferencia", got)
	got, _ = f.GetCellValue(sheet, "F2")
	assert.Equal(t, "abril", got)
}

func TestWorkbookWritesToBuffer(t *testing.T) {
	f, err := BuildExpenseWorkbook(nil)
	require.NoError(t, err)
	defer f.Close()

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	assert.Greater(t, buf.Len(), 0)
}
