package models

import (
	"strings"
	"time"
)

type Currency string

const (
	CurrencyGuaranies Currency = "guaranies"
	CurrencyDolares   Currency = "dolares"
)

// Code - código corto usado en reportes y planillas
func (c Currency) Code() string {
	if c == CurrencyDolares {
		return "USD"
	}
	return "Gs"
}

func (c Currency) Valid() bool {
	return c == CurrencyGuaranies || c == CurrencyDolares
}

type ExpenseStatus string

const (
	StatusActivo   ExpenseStatus = "activo"
	StatusInactivo ExpenseStatus = "inactivo"
)

// Los dos destinos con nombre propio. El campo Destination acepta texto
// libre; los reportes solo desglosan estos dos.
const (
	DestinationCasaCentral = "Casa Central"
	DestinationSucursal    = "Sucursal"
)

var SpanishMonths = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

func ValidMonth(name string) bool {
	for _, m := range SpanishMonths {
		if strings.EqualFold(m, name) {
			return true
		}
	}
	return false
}

// RecurringExpense - Gasto fijo (mensual o anual)
type RecurringExpense struct {
	ID          uint          `gorm:"primaryKey"`
	Description string        `gorm:"size:255;not null"`
	Amount      float64       `gorm:"not null"`
	Currency    Currency      `gorm:"size:20;not null"`
	DueDay      int           `gorm:"not null"` // día de vencimiento (1-31)
	IsAnnual    bool          `gorm:"not null;default:false"`
	DueMonth    string        `gorm:"size:20"` // solo para gastos anuales
	Destination string        `gorm:"size:100"`
	Status      ExpenseStatus `gorm:"size:20;not null;default:activo"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PeriodLabel - etiqueta de periodicidad para pantalla y reportes
func (e RecurringExpense) PeriodLabel() string {
	if e.IsAnnual {
		return "Anual (" + e.DueMonth + ")"
	}
	return "Mensual"
}

type PaymentMethod struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ExpensePayment - Pago registrado contra un gasto fijo. El pago referencia
// al gasto pero no es parte de él: borrar un pago no toca el gasto.
type ExpensePayment struct {
	ID              uint `gorm:"primaryKey"`
	ExpenseID       uint `gorm:"index;not null"`
	Expense         RecurringExpense
	Date            time.Time `gorm:"index;not null"`
	Amount          float64   `gorm:"not null"`
	Currency        Currency  `gorm:"size:20;not null"`
	PaymentMethodID uint      `gorm:"index;not null"`
	PaymentMethod   PaymentMethod
	Notes           string `gorm:"size:255"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
