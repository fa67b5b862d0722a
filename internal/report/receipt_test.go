package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"taller-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayment() models.ExpensePayment {
	return models.ExpensePayment{
		ID: 7,
		Expense: models.RecurringExpense{
			Description: "Alquiler del local",
			Destination: models.DestinationCasaCentral,
		},
		Date:          time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Amount:        3500000,
		Currency:      models.CurrencyGuaranies,
		PaymentMethod: models.PaymentMethod{Name: "Efectivo"},
		Notes:         "Pago correspondiente al mes de agosto, entregado en caja",
	}
}

func TestBuildReceiptSinglePage(t *testing.T) {
	pdf := BuildReceipt(samplePayment())

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))

	// original y copia comparten una única hoja física
	assert.Equal(t, 1, pdf.PageCount())
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestBuildReceiptWithoutOptionalFields(t *testing.T) {
	p := samplePayment()
	p.Expense.Destination = ""
	p.Notes = ""

	pdf := BuildReceipt(p)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	assert.Equal(t, 1, pdf.PageCount())
}

func TestBuildReceiptLongNotes(t *testing.T) {
	p := samplePayment()
	p.Notes = strings.Repeat("nota larga que se envuelve a lo ancho de la columna ", 5)

	pdf := BuildReceipt(p)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	assert.Equal(t, 1, pdf.PageCount())
}

func TestCapLines(t *testing.T) {
	lines := []string{"uno", "dos", "tres", "cuatro", "cinco", "seis"}

	got := capLines(lines, receiptMaxNoteLines)
	assert.Equal(t, []string{"uno", "dos", "tres", "cuatro..."}, got)

	// por debajo del tope no se toca nada
	short := []string{"uno", "dos"}
	assert.Equal(t, short, capLines(short, receiptMaxNoteLines))
	assert.Empty(t, capLines(nil, receiptMaxNoteLines))
}

func TestReceiptNotesNeverReachSignatures(t *testing.T) {
	// aun con la nota más larga que admite la columna, el bloque de notas
	// termina antes de la zona fija de firmas
	notesTop := receiptBlockTop + 9 + 5 + 4 + 5*receiptLineHeight
	notesBottom := notesTop + receiptMaxNoteLines*receiptLineHeight
	assert.Less(t, notesBottom, receiptBlockTop+receiptSignatureDY)
}

func TestLongSpanishDate(t *testing.T) {
	assert.Equal(t, "31 de agosto de 2026", longSpanishDate(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1 de enero de 2027", longSpanishDate(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)))
}
