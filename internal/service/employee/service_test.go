package employee

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeRepo struct {
	byID   map[string]employee.Employee
	nextID int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: make(map[string]employee.Employee), nextID: 1}
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByEmployeeCode(_ context.Context, code string) (employee.Employee, error) {
	for _, e := range f.byID {
		if e.EmployeeCode == code {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, e := range f.byID {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.byID {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = fmt.Sprintf("emp-%d", f.nextID)
	f.nextID++
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	f.byID[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) ExistsByCodeOrEmail(_ context.Context, code, email string) (bool, error) {
	for _, e := range f.byID {
		if e.EmployeeCode == code || e.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, id string, req employee.UpdateEmployeeRequest) error {
	e, ok := f.byID[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	e.UpdatedAt = time.Now()
	f.byID[id] = e
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.byID, id)
	return nil
}

func createRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeCode: "EMP001",
		Name:         "Jane Doe",
		Email:        "jane@company.com",
		Department:   "Engineering",
		Position:     "Engineer",
		Salary:       "120000",
	}
}

func TestCreateEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewService(nil, newFakeEmployeeRepo())

	created, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "employee", created.Role)
	assert.Equal(t, "120000", created.Salary.String())

	// default password is hashed, never stored raw
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("employee123")))
}

func TestCreateEmployeeDuplicateCode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewService(nil, newFakeEmployeeRepo())

	_, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	dup := createRequest()
	dup.Email = "other@company.com"
	_, err = svc.Create(ctx, dup)
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewService(nil, newFakeEmployeeRepo())

	_, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	dup := createRequest()
	dup.EmployeeCode = "EMP002"
	_, err = svc.Create(ctx, dup)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestCreateEmployeeInvalidCode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewService(nil, newFakeEmployeeRepo())

	req := createRequest()
	req.EmployeeCode = "X1"
	_, err := svc.Create(ctx, req)
	assert.Error(t, err)
}

func TestGetByCodeOrID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewService(nil, newFakeEmployeeRepo())

	created, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	byID, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	byCode, err := svc.Get(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byCode.ID)

	_, err = svc.Get(ctx, "EMP999")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewService(nil, newFakeEmployeeRepo())

	created, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	name := "Jane Smith"
	updated, err := svc.Update(ctx, "EMP001", employee.UpdateEmployeeRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", updated.Name)
	assert.Equal(t, created.ID, updated.ID)
}

func TestUpdateEmployeeEmailConflict(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewService(nil, newFakeEmployeeRepo())

	_, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	second := createRequest()
	second.EmployeeCode = "EMP002"
	second.Email = "second@company.com"
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	taken := "jane@company.com"
	_, err = svc.Update(ctx, "EMP002", employee.UpdateEmployeeRequest{Email: &taken})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestDeleteEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewService(nil, newFakeEmployeeRepo())

	_, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "EMP001"))
	_, err = svc.Get(ctx, "EMP001")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
