package expense

import (
	"testing"
	"time"

	"taller-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func sampleExpenses() []models.RecurringExpense {
	return []models.RecurringExpense{
		{ID: 1, Description: "Alquiler del local", DueDay: 5, Destination: models.DestinationCasaCentral, Currency: models.CurrencyGuaranies, Amount: 3500000},
		{ID: 2, Description: "Seguro contra incendios", DueDay: 1, IsAnnual: true, DueMonth: "marzo", Destination: models.DestinationSucursal, Currency: models.CurrencyDolares, Amount: 450},
		{ID: 3, Description: "Internet", DueDay: 10, Destination: models.DestinationSucursal, Currency: models.CurrencyGuaranies, Amount: 280000},
		{ID: 4, Description: "Patente municipal", DueDay: 3, IsAnnual: true, DueMonth: "enero", Destination: "Depósito", Currency: models.CurrencyGuaranies, Amount: 900000},
	}
}

func TestFilterExpensesText(t *testing.T) {
	list := sampleExpenses()

	tests := []struct {
		name    string
		text    string
		wantIDs []uint
	}{
		{
			name:    "vacío trae todo ordenado por vencimiento",
			text:    "",
			wantIDs: []uint{2, 4, 1, 3},
		},
		{
			name:    "coincidencia parcial sin distinguir mayúsculas",
			text:    "SEGURO",
			wantIDs: []uint{2},
		},
		{
			name:    "también busca en el destino",
			text:    "depósito",
			wantIDs: []uint{4},
		},
		{
			name:    "sin coincidencias",
			text:    "zzz",
			wantIDs: []uint{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterExpenses(list, NewListQuery().WithText(tt.text))
			ids := make([]uint, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterExpensesCategorical(t *testing.T) {
	list := sampleExpenses()

	got := FilterExpenses(list, NewListQuery().WithDestination(models.DestinationSucursal))
	assert.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, models.DestinationSucursal, e.Destination)
	}

	got = FilterExpenses(list, NewListQuery().WithPeriodicity(PeriodicityAnual))
	assert.Len(t, got, 2)
	for _, e := range got {
		assert.True(t, e.IsAnnual)
	}

	got = FilterExpenses(list, NewListQuery().WithPeriodicity(PeriodicityMensual))
	assert.Len(t, got, 2)
	for _, e := range got {
		assert.False(t, e.IsAnnual)
	}

	// combinación de ambos filtros
	got = FilterExpenses(list, NewListQuery().
		WithDestination(models.DestinationSucursal).
		WithPeriodicity(PeriodicityMensual))
	assert.Len(t, got, 1)
	assert.Equal(t, uint(3), got[0].ID)
}

func TestFilterExpensesOrderedByDueDay(t *testing.T) {
	got := FilterExpenses(sampleExpenses(), NewListQuery())
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].DueDay, got[i].DueDay)
	}
}

func TestListQueryResetsPage(t *testing.T) {
	// cualquier cambio de filtro vuelve a la página 1, venga de donde venga
	for _, page := range []int{1, 2, 5, 99} {
		q := NewListQuery().WithPage(page)

		assert.Equal(t, 1, q.WithText("luz").Page)
		assert.Equal(t, 1, q.WithDestination(models.DestinationSucursal).Page)
		assert.Equal(t, 1, q.WithPeriodicity(PeriodicityAnual).Page)
	}
}

func TestListQueryDefaults(t *testing.T) {
	q := NewListQuery()
	assert.Equal(t, FilterAll, q.Destination)
	assert.Equal(t, FilterAll, q.Periodicity)
	assert.Equal(t, 1, q.Page)

	// vacío equivale a "todos"
	q = q.WithDestination("")
	assert.Equal(t, FilterAll, q.Destination)
	q = q.WithPeriodicity("")
	assert.Equal(t, FilterAll, q.Periodicity)

	assert.Equal(t, 1, NewListQuery().WithPage(0).Page)
}

func TestFilterPayments(t *testing.T) {
	list := []models.ExpensePayment{
		{
			ID:      1,
			Expense: models.RecurringExpense{Description: "Alquiler del local"},
			Date:    time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			Notes:   "pago adelantado",
		},
		{
			ID:      2,
			Expense: models.RecurringExpense{Description: "Internet"},
			Date:    time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	assert.Len(t, FilterPayments(list, ""), 2)

	got := FilterPayments(list, "alquiler")
	assert.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)

	// busca en la fecha formateada
	got = FilterPayments(list, "02/04/2026")
	assert.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ID)

	// busca en las notas
	got = FilterPayments(list, "adelantado")
	assert.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)
}
