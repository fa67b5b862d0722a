package expense

import (
	"fmt"
	"strings"

	"taller-backend/internal/database"
	"taller-backend/internal/models"
	"taller-backend/internal/pagination"

	"github.com/gofiber/fiber/v2"
)

const defaultPageSize = 10

type CreateExpenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	DueDay      int     `json:"due_day"`
	IsAnnual    bool    `json:"is_annual"`
	DueMonth    string  `json:"due_month"`
	Destination string  `json:"destination"`
}

type UpdateExpenseRequest struct {
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Currency    *string  `json:"currency"`
	DueDay      *int     `json:"due_day"`
	IsAnnual    *bool    `json:"is_annual"`
	DueMonth    *string  `json:"due_month"`
	Destination *string  `json:"destination"`
	Status      *string  `json:"status"`
}

type ExpenseResponse struct {
	ID          uint    `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	DueDay      int     `json:"due_day"`
	IsAnnual    bool    `json:"is_annual"`
	DueMonth    string  `json:"due_month,omitempty"`
	Destination string  `json:"destination"`
	Status      string  `json:"status"`
	PeriodLabel string  `json:"period_label"`
}

type ExpenseListResponse struct {
	Items      []ExpenseResponse `json:"items"`
	Totals     []CurrencyTotals  `json:"totals"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalItems int               `json:"total_items"`
	TotalPages int               `json:"total_pages"`
	PageWindow []int             `json:"page_window"`
	HasPrev    bool              `json:"has_prev"`
	HasNext    bool              `json:"has_next"`
}

func toExpenseResponse(e models.RecurringExpense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Currency:    string(e.Currency),
		DueDay:      e.DueDay,
		IsAnnual:    e.IsAnnual,
		DueMonth:    e.DueMonth,
		Destination: e.Destination,
		Status:      string(e.Status),
		PeriodLabel: e.PeriodLabel(),
	}
}

// validateExpense - invariantes del gasto fijo, se controlan antes de tocar
// la base. El mes de vencimiento solo existe para gastos anuales.
func validateExpense(e *models.RecurringExpense) error {
	e.Description = strings.TrimSpace(e.Description)
	if e.Description == "" {
		return fiber.NewError(fiber.StatusBadRequest, "La descripción es obligatoria")
	}
	if e.Amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "El monto debe ser mayor a cero")
	}
	if !e.Currency.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "Moneda inválida")
	}
	if e.DueDay < 1 || e.DueDay > 31 {
		return fiber.NewError(fiber.StatusBadRequest, "El día de vencimiento debe estar entre 1 y 31")
	}
	if e.IsAnnual {
		e.DueMonth = strings.ToLower(strings.TrimSpace(e.DueMonth))
		if e.DueMonth == "" {
			return fiber.NewError(fiber.StatusBadRequest, "El mes de vencimiento es obligatorio para gastos anuales")
		}
		if !models.ValidMonth(e.DueMonth) {
			return fiber.NewError(fiber.StatusBadRequest, "Mes de vencimiento inválido")
		}
	} else {
		e.DueMonth = ""
	}
	return nil
}

// POST /api/expenses
func CreateExpenseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		exp := models.RecurringExpense{
			Description: body.Description,
			Amount:      body.Amount,
			Currency:    models.Currency(body.Currency),
			DueDay:      body.DueDay,
			IsAnnual:    body.IsAnnual,
			DueMonth:    body.DueMonth,
			Destination: strings.TrimSpace(body.Destination),
			Status:      models.StatusActivo,
		}

		if err := validateExpense(&exp); err != nil {
			return err
		}

		if err := database.DB.Create(&exp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo guardar el gasto")
		}

		return c.Status(fiber.StatusCreated).JSON(toExpenseResponse(exp))
	}
}

// PATCH /api/expenses/:id
// Actualización parcial. El cambio de estado activo/inactivo entra por acá;
// repetir el estado actual es un éxito sin efecto.
func UpdateExpenseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var exp models.RecurringExpense
		if err := database.DB.First(&exp, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Gasto no encontrado")
		}

		var body UpdateExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.Description != nil {
			exp.Description = *body.Description
		}
		if body.Amount != nil {
			exp.Amount = *body.Amount
		}
		if body.Currency != nil {
			exp.Currency = models.Currency(*body.Currency)
		}
		if body.DueDay != nil {
			exp.DueDay = *body.DueDay
		}
		if body.IsAnnual != nil {
			exp.IsAnnual = *body.IsAnnual
		}
		if body.DueMonth != nil {
			exp.DueMonth = *body.DueMonth
		}
		if body.Destination != nil {
			exp.Destination = strings.TrimSpace(*body.Destination)
		}
		if body.Status != nil {
			st := models.ExpenseStatus(*body.Status)
			if st != models.StatusActivo && st != models.StatusInactivo {
				return fiber.NewError(fiber.StatusBadRequest, "Estado inválido")
			}
			exp.Status = st
		}

		// los invariantes se validan sobre el registro ya combinado
		if err := validateExpense(&exp); err != nil {
			return err
		}

		if err := database.DB.Save(&exp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el gasto")
		}

		return c.JSON(toExpenseResponse(exp))
	}
}

// GET /api/expenses?q=...&destination=...&periodicity=...&page=...&page_size=...
// Carga la colección completa, filtra y ordena en memoria, calcula los
// totales sobre el conjunto filtrado y recién después pagina.
func ListExpensesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := NewListQuery().
			WithText(c.Query("q")).
			WithDestination(c.Query("destination")).
			WithPeriodicity(c.Query("periodicity"))

		pageSize := defaultPageSize
		if psStr := c.Query("page_size"); psStr != "" {
			var ps int
			if _, err := fmt.Sscan(psStr, &ps); err != nil || ps < 1 || ps > 100 {
				return fiber.NewError(fiber.StatusBadRequest, "page_size inválido")
			}
			pageSize = ps
		}
		if pStr := c.Query("page"); pStr != "" {
			var p int
			if _, err := fmt.Sscan(pStr, &p); err != nil || p < 1 {
				return fiber.NewError(fiber.StatusBadRequest, "page inválido")
			}
			query = query.WithPage(p)
		}

		var all []models.RecurringExpense
		if err := database.DB.Order("id asc").Find(&all).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los gastos")
		}

		filtered := FilterExpenses(all, query)
		totals := SummarizeExpenses(filtered)

		totalPages := pagination.Pages(len(filtered), pageSize)
		page := pagination.Clamp(query.Page, totalPages)
		visible := pagination.Slice(filtered, page, pageSize)

		items := make([]ExpenseResponse, 0, len(visible))
		for _, e := range visible {
			items = append(items, toExpenseResponse(e))
		}

		return c.JSON(ExpenseListResponse{
			Items:      items,
			Totals:     totals,
			Page:       page,
			PageSize:   pageSize,
			TotalItems: len(filtered),
			TotalPages: totalPages,
			PageWindow: pagination.Window(page, totalPages),
			HasPrev:    page > 1,
			HasNext:    page < totalPages,
		})
	}
}
