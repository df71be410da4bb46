package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the registry record for a single staff member. EmployeeCode is
// the business identifier shown on screens (EMP001 and so on); ID is the
// store-assigned canonical key.
type Employee struct {
	ID           string
	EmployeeCode string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	DateOfBirth  *time.Time
	Department   string
	Position     string
	Salary       decimal.Decimal // annual
	ImageURL     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
