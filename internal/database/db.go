package database

import (
	"log"

	"taller-backend/internal/config"
	"taller-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("No se pudo conectar a la base de datos: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.RecurringExpense{},
		&models.PaymentMethod{},
		&models.ExpensePayment{},
	)
	if err != nil {
		log.Fatalf("Error en AutoMigrate: %v", err)
	}

	seedPaymentMethods()

	log.Println("Conexión a la base de datos exitosa. Migración completada.")
}

// seedPaymentMethods - carga inicial del catálogo de métodos de pago
func seedPaymentMethods() {
	var count int64
	DB.Model(&models.PaymentMethod{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []string{"Efectivo", "Transferencia", "Cheque", "Tarjeta"}
	for _, name := range defaults {
		if err := DB.Create(&models.PaymentMethod{Name: name, Active: true}).Error; err != nil {
			log.Printf("No se pudo crear el método de pago %q: %v", name, err)
		}
	}
	log.Printf("Catálogo de métodos de pago inicializado con %d entradas", len(defaults))
}
