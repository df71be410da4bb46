package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one employee's salary slip for one month.
type Record struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Month        string // month name, "January".."December"
	Year         int
	BasicSalary  decimal.Decimal
	Allowances   decimal.Decimal
	Deductions   decimal.Decimal
	NetSalary    decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
