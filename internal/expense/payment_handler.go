package expense

import (
	"fmt"
	"time"

	"taller-backend/internal/database"
	"taller-backend/internal/models"
	"taller-backend/internal/pagination"

	"github.com/gofiber/fiber/v2"
)

type CreatePaymentRequest struct {
	ExpenseID       uint     `json:"expense_id"`
	Date            string   `json:"date"` // "2026-08-31"
	Amount          *float64 `json:"amount"`
	Currency        *string  `json:"currency"`
	PaymentMethodID uint     `json:"payment_method_id"`
	Notes           string   `json:"notes"`
}

type UpdatePaymentRequest struct {
	Date            *string  `json:"date"`
	Amount          *float64 `json:"amount"`
	Currency        *string  `json:"currency"`
	PaymentMethodID *uint    `json:"payment_method_id"`
	Notes           *string  `json:"notes"`
}

type PaymentResponse struct {
	ID              uint    `json:"id"`
	ExpenseID       uint    `json:"expense_id"`
	Expense         string  `json:"expense"`
	Destination     string  `json:"destination"`
	Date            string  `json:"date"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	PaymentMethodID uint    `json:"payment_method_id"`
	PaymentMethod   string  `json:"payment_method"`
	Notes           string  `json:"notes,omitempty"`
}

type PaymentListResponse struct {
	Items      []PaymentResponse `json:"items"`
	Totals     []PaymentTotals   `json:"totals"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalItems int               `json:"total_items"`
	TotalPages int               `json:"total_pages"`
	PageWindow []int             `json:"page_window"`
	HasPrev    bool              `json:"has_prev"`
	HasNext    bool              `json:"has_next"`
}

type PaymentMethodResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

func toPaymentResponse(p models.ExpensePayment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		ExpenseID:       p.ExpenseID,
		Expense:         p.Expense.Description,
		Destination:     p.Expense.Destination,
		Date:            p.Date.Format("2006-01-02"),
		Amount:          p.Amount,
		Currency:        string(p.Currency),
		PaymentMethodID: p.PaymentMethodID,
		PaymentMethod:   p.PaymentMethod.Name,
		Notes:           p.Notes,
	}
}

// POST /api/expense-payments
// Monto y moneda se precargan del gasto cuando no vienen en el cuerpo, pero
// quedan como campos independientes del pago. La moneda del pago no se
// valida contra la del gasto.
func CreateExpensePaymentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePaymentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.ExpenseID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "expense_id es obligatorio")
		}
		if body.PaymentMethodID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Debe seleccionar un método de pago")
		}

		var exp models.RecurringExpense
		if err := database.DB.First(&exp, "id = ?", body.ExpenseID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Gasto no encontrado")
		}

		var method models.PaymentMethod
		if err := database.DB.First(&method, "id = ? AND active = ?", body.PaymentMethodID, true).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Método de pago inválido o inactivo")
		}

		date := time.Now()
		if body.Date != "" {
			d, err := time.Parse("2006-01-02", body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "La fecha debe tener formato 'YYYY-MM-DD'")
			}
			date = d
		}

		amount := exp.Amount
		if body.Amount != nil {
			amount = *body.Amount
		}
		if amount <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "El monto debe ser mayor a cero")
		}

		currency := exp.Currency
		if body.Currency != nil {
			currency = models.Currency(*body.Currency)
			if !currency.Valid() {
				return fiber.NewError(fiber.StatusBadRequest, "Moneda inválida")
			}
		}

		payment := models.ExpensePayment{
			ExpenseID:       exp.ID,
			Date:            date,
			Amount:          amount,
			Currency:        currency,
			PaymentMethodID: method.ID,
			Notes:           body.Notes,
		}

		if err := database.DB.Create(&payment).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar el pago")
		}

		payment.Expense = exp
		payment.PaymentMethod = method
		return c.Status(fiber.StatusCreated).JSON(toPaymentResponse(payment))
	}
}

// PATCH /api/expense-payments/:id
func UpdateExpensePaymentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var payment models.ExpensePayment
		if err := database.DB.Preload("Expense").Preload("PaymentMethod").
			First(&payment, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Pago no encontrado")
		}

		var body UpdatePaymentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if body.Date != nil {
			d, err := time.Parse("2006-01-02", *body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "La fecha debe tener formato 'YYYY-MM-DD'")
			}
			payment.Date = d
		}
		if body.Amount != nil {
			if *body.Amount <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "El monto debe ser mayor a cero")
			}
			payment.Amount = *body.Amount
		}
		if body.Currency != nil {
			currency := models.Currency(*body.Currency)
			if !currency.Valid() {
				return fiber.NewError(fiber.StatusBadRequest, "Moneda inválida")
			}
			payment.Currency = currency
		}
		if body.PaymentMethodID != nil {
			var method models.PaymentMethod
			if err := database.DB.First(&method, "id = ? AND active = ?", *body.PaymentMethodID, true).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Método de pago inválido o inactivo")
			}
			payment.PaymentMethodID = method.ID
			payment.PaymentMethod = method
		}
		if body.Notes != nil {
			payment.Notes = *body.Notes
		}

		if err := database.DB.Save(&payment).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo actualizar el pago")
		}

		return c.JSON(toPaymentResponse(payment))
	}
}

// DELETE /api/expense-payments/:id
// Borrado definitivo. No hay acción compensatoria sobre el gasto referido:
// los pagos son registro histórico.
func DeleteExpensePaymentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.ExpensePayment{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo eliminar el pago")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/expense-payments?q=...&page=...&page_size=...
func ListExpensePaymentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pageSize := defaultPageSize
		if psStr := c.Query("page_size"); psStr != "" {
			var ps int
			if _, err := fmt.Sscan(psStr, &ps); err != nil || ps < 1 || ps > 100 {
				return fiber.NewError(fiber.StatusBadRequest, "page_size inválido")
			}
			pageSize = ps
		}
		page := 1
		if pStr := c.Query("page"); pStr != "" {
			if _, err := fmt.Sscan(pStr, &page); err != nil || page < 1 {
				return fiber.NewError(fiber.StatusBadRequest, "page inválido")
			}
		}

		var all []models.ExpensePayment
		if err := database.DB.Preload("Expense").Preload("PaymentMethod").
			Order("id asc").Find(&all).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los pagos")
		}

		filtered := FilterPayments(all, c.Query("q"))
		totals := SummarizePayments(filtered)

		totalPages := pagination.Pages(len(filtered), pageSize)
		page = pagination.Clamp(page, totalPages)
		visible := pagination.Slice(filtered, page, pageSize)

		items := make([]PaymentResponse, 0, len(visible))
		for _, p := range visible {
			items = append(items, toPaymentResponse(p))
		}

		return c.JSON(PaymentListResponse{
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

// GET /api/payment-methods
// Devuelve el catálogo completo; el que consume decide si muestra los
// inactivos.
func ListPaymentMethodsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var methods []models.PaymentMethod
		if err := database.DB.Order("name asc").Find(&methods).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los métodos de pago")
		}

		res := make([]PaymentMethodResponse, 0, len(methods))
		for _, m := range methods {
			res = append(res, PaymentMethodResponse{
				ID:     m.ID,
				Name:   m.Name,
				Active: m.Active,
			})
		}
		return c.JSON(res)
	}
}
