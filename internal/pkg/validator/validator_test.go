package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@company.com",
		"first.last@sub.domain.org",
		"user+tag@company.co",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plain",
		"@company.com",
		"user@",
		"user@company",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-02-15")
	assert.True(t, ok)
	assert.Equal(t, 2024, date.Year())
	assert.Equal(t, 15, date.Day())

	_, ok = IsValidDate("15-02-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("EMP001"))
	assert.True(t, IsValidEmployeeCode("EMP12345"))
	assert.False(t, IsValidEmployeeCode("emp001"))
	assert.False(t, IsValidEmployeeCode("EMP01"))
	assert.False(t, IsValidEmployeeCode("EMP001X"))
	assert.False(t, IsValidEmployeeCode(""))
}

func TestIsValidProjectCode(t *testing.T) {
	assert.True(t, IsValidProjectCode("PRJ001"))
	assert.False(t, IsValidProjectCode("PRJ01"))
	assert.False(t, IsValidProjectCode("EMP001"))
}

func TestIsInSlice(t *testing.T) {
	months := []string{"January", "February"}
	assert.True(t, IsInSlice("January", months))
	assert.False(t, IsInSlice("january", months))
	assert.False(t, IsInSlice("March", months))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "email format is invalid"},
	}

	m := errs.ToMap()
	assert.Equal(t, "name is required", m["name"])
	assert.Equal(t, "email format is invalid", m["email"])
	assert.Contains(t, errs.Error(), "name: name is required")
}
