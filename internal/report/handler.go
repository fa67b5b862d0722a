package report

import (
	"bytes"
	"strings"
	"time"

	"taller-backend/internal/database"
	"taller-backend/internal/expense"
	"taller-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GET /api/reports/expenses?mode=print|excel|pdf&q=...&destination=...&periodicity=...
// Los filtros de destino y periodicidad son propios de la exportación y se
// suman al texto de búsqueda de la pantalla. Los totales y el contenido
// salen del conjunto filtrado completo, nunca paginado.
func ExpenseReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		mode, err := ParseMode(c.Query("mode"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Modo de reporte inválido")
		}

		destination := c.Query("destination")
		periodicity := c.Query("periodicity")

		query := expense.NewListQuery().
			WithText(c.Query("q")).
			WithDestination(destination).
			WithPeriodicity(periodicity)

		var all []models.RecurringExpense
		if err := database.DB.Order("id asc").Find(&all).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron cargar los gastos")
		}

		filtered := expense.FilterExpenses(all, query)
		if len(filtered) == 0 {
			// estado informativo, no un error: no se genera ningún artefacto
			return c.JSON(fiber.Map{
				"info": "No hay gastos que coincidan con los filtros seleccionados",
			})
		}

		totals := expense.SummarizeExpenses(filtered)
		summary := ExpenseFilterSummary(query.Destination, query.Periodicity)
		now := time.Now()

		switch mode {
		case ModeExcel:
			f, err := BuildExpenseWorkbook(filtered)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar la planilla")
			}
			buf, err := f.WriteToBuffer()
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar la planilla")
			}
			return sendAttachment(c, xlsxContentType, ExpenseFileName(mode, now), buf.Bytes())

		case ModePDF:
			pdf := BuildExpenseDocument(filtered, totals, summary, now)
			var buf bytes.Buffer
			if err := pdf.Output(&buf); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el documento")
			}
			return sendAttachment(c, "application/pdf", ExpenseFileName(mode, now), buf.Bytes())

		default:
			html, err := BuildExpensePrintDocument(filtered, totals, summary, now)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el documento")
			}
			c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
			return c.SendString(html)
		}
	}
}

// filterPaymentHistory arma el conjunto a exportar: primero la búsqueda de
// texto que tenía la pantalla, y encima el filtro por gasto propio de la
// exportación.
func filterPaymentHistory(all []models.ExpensePayment, text, expenseName string) []models.ExpensePayment {
	filtered := expense.FilterPayments(all, text)
	if expenseName == "" || expenseName == expense.FilterAll {
		return filtered
	}
	out := make([]models.ExpensePayment, 0, len(filtered))
	for _, p := range filtered {
		if strings.EqualFold(p.Expense.Description, expenseName) {
			out = append(out, p)
		}
	}
	return out
}

// GET /api/reports/payment-history?mode=...&q=...&expense=...
// El historial de pagos se exporta completo o limitado a un gasto puntual
// por nombre, siempre sobre lo que la búsqueda de pantalla dejó visible.
func PaymentHistoryReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		mode, err := ParseMode(c.Query("mode"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Modo de reporte inválido")
		}

		expenseName := strings.TrimSpace(c.Query("expense"))

		var all []models.ExpensePayment
		if err := database.DB.Preload("Expense").Preload("PaymentMethod").
			Order("id asc").Find(&all).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron cargar los pagos")
		}

		filtered := filterPaymentHistory(all, c.Query("q"), expenseName)

		if len(filtered) == 0 {
			return c.JSON(fiber.Map{
				"info": "No hay pagos que coincidan con los filtros seleccionados",
			})
		}

		totals := expense.SummarizePayments(filtered)
		summary := PaymentFilterSummary(expenseName)
		now := time.Now()

		switch mode {
		case ModeExcel:
			f, err := BuildPaymentHistoryWorkbook(filtered)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar la planilla")
			}
			buf, err := f.WriteToBuffer()
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar la planilla")
			}
			return sendAttachment(c, xlsxContentType, PaymentHistoryFileName(mode, now), buf.Bytes())

		case ModePDF:
			pdf := BuildPaymentHistoryDocument(filtered, totals, summary, now)
			var buf bytes.Buffer
			if err := pdf.Output(&buf); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el documento")
			}
			return sendAttachment(c, "application/pdf", PaymentHistoryFileName(mode, now), buf.Bytes())

		default:
			html, err := BuildPaymentHistoryPrintDocument(filtered, totals, summary, now)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el documento")
			}
			c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
			return c.SendString(html)
		}
	}
}

// GET /api/expense-payments/:id/receipt
// El recibo siempre sale inline: se imprime, no se descarga.
func ReceiptHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var payment models.ExpensePayment
		if err := database.DB.Preload("Expense").Preload("PaymentMethod").
			First(&payment, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Pago no encontrado")
		}

		pdf := BuildReceipt(payment)
		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el recibo")
		}

		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, "inline")
		return c.Send(buf.Bytes())
	}
}

// sendAttachment - si la generación falló antes no se manda nada: nunca un
// archivo a medias.
func sendAttachment(c *fiber.Ctx, contentType, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
