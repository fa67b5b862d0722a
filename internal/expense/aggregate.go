package expense

import (
	"strings"

	"taller-backend/internal/models"
)

// CurrencyTotals - totales de una moneda desglosados por destino. Un gasto
// cuyo destino no es ninguno de los dos con nombre propio suma igual al
// total general pero no entra en ningún desglose.
type CurrencyTotals struct {
	Currency    models.Currency `json:"currency"`
	CasaCentral float64         `json:"casa_central"`
	Sucursal    float64         `json:"sucursal"`
	Total       float64         `json:"total"`
}

// PaymentTotals - total pagado por moneda, sin desglose por destino.
type PaymentTotals struct {
	Currency models.Currency `json:"currency"`
	Total    float64         `json:"total"`
}

// SummarizeExpenses recorre una sola vez la colección ya filtrada (nunca la
// paginada) y acumula por moneda. El orden del resultado es el orden en que
// aparece cada moneda por primera vez.
func SummarizeExpenses(list []models.RecurringExpense) []CurrencyTotals {
	totals := make([]CurrencyTotals, 0, 2)
	index := make(map[models.Currency]int, 2)

	for _, e := range list {
		i, ok := index[e.Currency]
		if !ok {
			i = len(totals)
			index[e.Currency] = i
			totals = append(totals, CurrencyTotals{Currency: e.Currency})
		}

		totals[i].Total += e.Amount
		switch {
		case strings.EqualFold(e.Destination, models.DestinationCasaCentral):
			totals[i].CasaCentral += e.Amount
		case strings.EqualFold(e.Destination, models.DestinationSucursal):
			totals[i].Sucursal += e.Amount
		}
	}

	return totals
}

// SummarizePayments suma los pagos por moneda, en orden de primera aparición.
func SummarizePayments(list []models.ExpensePayment) []PaymentTotals {
	totals := make([]PaymentTotals, 0, 2)
	index := make(map[models.Currency]int, 2)

	for _, p := range list {
		i, ok := index[p.Currency]
		if !ok {
			i = len(totals)
			index[p.Currency] = i
			totals = append(totals, PaymentTotals{Currency: p.Currency})
		}
		totals[i].Total += p.Amount
	}

	return totals
}
