package expense

import (
	"sort"
	"strings"

	"taller-backend/internal/models"
)

// Valores de los filtros categóricos. "todos" desactiva el filtro.
const (
	FilterAll          = "todos"
	PeriodicityMensual = "mensual"
	PeriodicityAnual   = "anual"
)

// ListQuery - estado de vista de un listado: texto de búsqueda, filtros
// categóricos y página actual. Cualquier cambio de filtro vuelve a la
// página 1; por eso las transiciones devuelven una copia con Page=1 y la
// página se aplica siempre al final.
type ListQuery struct {
	Text        string
	Destination string
	Periodicity string
	Page        int
}

func NewListQuery() ListQuery {
	return ListQuery{
		Destination: FilterAll,
		Periodicity: FilterAll,
		Page:        1,
	}
}

func (q ListQuery) WithText(text string) ListQuery {
	q.Text = strings.TrimSpace(text)
	q.Page = 1
	return q
}

func (q ListQuery) WithDestination(destination string) ListQuery {
	if destination == "" {
		destination = FilterAll
	}
	q.Destination = destination
	q.Page = 1
	return q
}

func (q ListQuery) WithPeriodicity(periodicity string) ListQuery {
	if periodicity == "" {
		periodicity = FilterAll
	}
	q.Periodicity = periodicity
	q.Page = 1
	return q
}

func (q ListQuery) WithPage(page int) ListQuery {
	if page < 1 {
		page = 1
	}
	q.Page = page
	return q
}

// FilterExpenses aplica búsqueda por texto y filtros de destino y
// periodicidad sobre la colección completa, y ordena el resultado por día
// de vencimiento ascendente. No pagina: los totales se calculan sobre todo
// el conjunto filtrado.
func FilterExpenses(list []models.RecurringExpense, q ListQuery) []models.RecurringExpense {
	text := strings.ToLower(strings.TrimSpace(q.Text))

	out := make([]models.RecurringExpense, 0, len(list))
	for _, e := range list {
		if text != "" {
			haystack := strings.ToLower(e.Description + " " + e.Destination)
			if !strings.Contains(haystack, text) {
				continue
			}
		}
		if q.Destination != "" && q.Destination != FilterAll {
			if !strings.EqualFold(e.Destination, q.Destination) {
				continue
			}
		}
		switch q.Periodicity {
		case PeriodicityAnual:
			if !e.IsAnnual {
				continue
			}
		case PeriodicityMensual:
			if e.IsAnnual {
				continue
			}
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDay < out[j].DueDay
	})

	return out
}

// FilterPayments aplica solo búsqueda por texto: concepto del gasto, fecha
// y notas. Los pagos conservan el orden natural de la colección.
func FilterPayments(list []models.ExpensePayment, text string) []models.ExpensePayment {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return list
	}

	out := make([]models.ExpensePayment, 0, len(list))
	for _, p := range list {
		haystack := strings.ToLower(p.Expense.Description + " " + p.Date.Format("02/01/2006") + " " + p.Notes)
		if strings.Contains(haystack, text) {
			out = append(out, p)
		}
	}
	return out
}
