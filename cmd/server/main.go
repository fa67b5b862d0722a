package main

import (
	"log"
	"strings"

	"taller-backend/internal/auth"
	"taller-backend/internal/config"
	"taller-backend/internal/database"
	"taller-backend/internal/expense"
	"taller-backend/internal/models"
	"taller-backend/internal/report"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Error inesperado:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Error inesperado del servidor",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Público
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protegido
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Gastos fijos
	protected.Post("/expenses", expense.CreateExpenseHandler())
	protected.Get("/expenses", expense.ListExpensesHandler())
	protected.Patch("/expenses/:id", expense.UpdateExpenseHandler())

	// Pagos de gastos fijos
	protected.Post("/expense-payments", expense.CreateExpensePaymentHandler())
	protected.Get("/expense-payments", expense.ListExpensePaymentsHandler())
	protected.Patch("/expense-payments/:id", expense.UpdateExpensePaymentHandler())
	protected.Delete("/expense-payments/:id", auth.RequireRole(models.RoleAdmin), expense.DeleteExpensePaymentHandler())
	protected.Get("/expense-payments/:id/receipt", report.ReceiptHandler())

	// Catálogo de métodos de pago
	protected.Get("/payment-methods", expense.ListPaymentMethodsHandler())

	// Reportes
	protected.Get("/reports/expenses", report.ExpenseReportHandler())
	protected.Get("/reports/payment-history", report.PaymentHistoryReportHandler())

	log.Println("Servidor escuchando en el puerto:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
