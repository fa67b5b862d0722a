package expense

import (
	"testing"

	"taller-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validExpense() models.RecurringExpense {
	return models.RecurringExpense{
		Description: "Alquiler del local",
		Amount:      3500000,
		Currency:    models.CurrencyGuaranies,
		DueDay:      5,
		Destination: models.DestinationCasaCentral,
	}
}

func TestValidateExpenseOK(t *testing.T) {
	e := validExpense()
	assert.NoError(t, validateExpense(&e))
}

func TestValidateExpenseAnnualRequiresMonth(t *testing.T) {
	e := validExpense()
	e.IsAnnual = true
	e.DueMonth = ""

	err := validateExpense(&e)
	require.Error(t, err)
	assert.Equal(t, "El mes de vencimiento es obligatorio para gastos anuales", err.Error())
}

func TestValidateExpenseAnnualMonth(t *testing.T) {
	e := validExpense()
	e.IsAnnual = true
	e.DueMonth = "Marzo" // se normaliza a minúsculas

	require.NoError(t, validateExpense(&e))
	assert.Equal(t, "marzo", e.DueMonth)

	e.DueMonth = "march"
	assert.Error(t, validateExpense(&e))
}

func TestValidateExpenseMonthlyClearsMonth(t *testing.T) {
	e := validExpense()
	e.IsAnnual = false
	e.DueMonth = "marzo"

	require.NoError(t, validateExpense(&e))
	assert.Empty(t, e.DueMonth)
}

func TestValidateExpenseFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.RecurringExpense)
	}{
		{"descripción vacía", func(e *models.RecurringExpense) { e.Description = "   " }},
		{"monto cero", func(e *models.RecurringExpense) { e.Amount = 0 }},
		{"monto negativo", func(e *models.RecurringExpense) { e.Amount = -10 }},
		{"moneda inválida", func(e *models.RecurringExpense) { e.Currency = "euros" }},
		{"día cero", func(e *models.RecurringExpense) { e.DueDay = 0 }},
		{"día fuera de rango", func(e *models.RecurringExpense) { e.DueDay = 32 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validExpense()
			tt.mutate(&e)
			assert.Error(t, validateExpense(&e))
		})
	}
}
