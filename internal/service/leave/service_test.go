package leave

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLeaveRepo is an in-memory leave.ApplicationRepository. failWrites makes
// UpdateStatus fail that many times before succeeding, to exercise the retry
// path. storeErr, when set, fails every read. sawDeadline records whether the
// last read carried a context deadline.
type fakeLeaveRepo struct {
	apps        map[string]leave.Application
	nextID      int
	failWrites  int
	updates     int
	storeErr    error
	sawDeadline bool
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{apps: make(map[string]leave.Application), nextID: 1}
}

func (f *fakeLeaveRepo) Create(_ context.Context, app leave.Application) (leave.Application, error) {
	app.ID = fmt.Sprintf("leave-%d", f.nextID)
	f.nextID++
	legacy := app.ID
	app.LegacyID = &legacy
	app.Status = leave.StatusPending
	app.CreatedAt = time.Now()
	app.UpdatedAt = app.CreatedAt
	f.apps[app.ID] = app
	return app, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return leave.Application{}, leave.ErrLeaveNotFound
	}
	return app, nil
}

func (f *fakeLeaveRepo) Resolve(ctx context.Context, identifier string) (leave.Application, error) {
	_, f.sawDeadline = ctx.Deadline()
	if f.storeErr != nil {
		return leave.Application{}, f.storeErr
	}
	if app, ok := f.apps[identifier]; ok {
		return app, nil
	}
	for _, app := range f.apps {
		if app.LegacyID != nil && *app.LegacyID == identifier {
			return app, nil
		}
	}
	return leave.Application{}, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) ListByEmployeeAndStatus(ctx context.Context, employeeID string, statuses []leave.Status) ([]leave.Application, error) {
	_, f.sawDeadline = ctx.Deadline()
	if f.storeErr != nil {
		return nil, f.storeErr
	}
	var out []leave.Application
	for _, app := range f.apps {
		if app.EmployeeID != employeeID {
			continue
		}
		if len(statuses) == 0 {
			out = append(out, app)
			continue
		}
		for _, st := range statuses {
			if app.Status == st {
				out = append(out, app)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) List(_ context.Context, employeeID string) ([]leave.Application, error) {
	var out []leave.Application
	for _, app := range f.apps {
		if employeeID == "" || app.EmployeeID == employeeID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByStatus(_ context.Context, status leave.Status) ([]leave.Application, error) {
	var out []leave.Application
	for _, app := range f.apps {
		if app.Status == status {
			out = append(out, app)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, id string, status leave.Status, processedAt time.Time) error {
	f.updates++
	if f.failWrites > 0 {
		f.failWrites--
		return errors.New("write refused")
	}
	app, ok := f.apps[id]
	if !ok {
		return leave.ErrLeaveNotFound
	}
	app.Status = status
	app.ProcessedAt = &processedAt
	app.UpdatedAt = time.Now()
	f.apps[id] = app
	return nil
}

func (f *fakeLeaveRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.apps[id]; !ok {
		return leave.ErrLeaveNotFound
	}
	delete(f.apps, id)
	return nil
}

type fakeEmployeeRepo struct {
	codes map[string]employee.Employee
}

func newFakeEmployeeRepo(codes ...string) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{codes: make(map[string]employee.Employee)}
	for i, code := range codes {
		f.codes[code] = employee.Employee{
			ID:           fmt.Sprintf("emp-%d", i+1),
			EmployeeCode: code,
			Name:         "Employee " + code,
		}
	}
	return f
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.codes {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmployeeCode(_ context.Context, code string) (employee.Employee, error) {
	e, ok := f.codes[code]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) ExistsByCodeOrEmail(_ context.Context, code, email string) (bool, error) {
	_, ok := f.codes[code]
	return ok, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, id string, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	return nil
}

func submitRequest() leave.SubmitLeaveRequest {
	return leave.SubmitLeaveRequest{
		EmployeeID:   "EMP001",
		EmployeeName: "Employee EMP001",
		LeaveType:    "annual",
		StartDate:    "2024-02-15",
		EndDate:      "2024-02-20",
		Reason:       "family trip",
	}
}

func newTestService() (*Service, *fakeLeaveRepo) {
	repo := newFakeLeaveRepo()
	return NewService(repo, newFakeEmployeeRepo("EMP001", "EMP002")), repo
}

func TestSubmitCreatesPendingApplication(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Submit(ctx, submitRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Nil(t, created.ProcessedAt)

	// visible in the read model immediately
	found, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, found.Status)
}

func TestSubmitUnknownEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService()

	req := submitRequest()
	req.EmployeeID = "EMP999"

	_, err := svc.Submit(ctx, req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, repo.apps)
}

func TestSubmitEndBeforeStartWritesNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService()

	req := submitRequest()
	req.StartDate = "2024-02-20"
	req.EndDate = "2024-02-15"

	_, err := svc.Submit(ctx, req)
	require.Error(t, err)

	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
	assert.Empty(t, repo.apps)
}

func TestSubmitOverlapRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	first, err := svc.Submit(ctx, submitRequest())
	require.NoError(t, err)

	_, err = svc.Decide(ctx, first.ID, "approved")
	require.NoError(t, err)

	// 2024-02-18..22 overlaps the approved 2024-02-15..20
	overlapping := submitRequest()
	overlapping.StartDate = "2024-02-18"
	overlapping.EndDate = "2024-02-22"

	_, err = svc.Submit(ctx, overlapping)
	var overlapErr *leave.OverlapError
	require.ErrorAs(t, err, &overlapErr)
	assert.Equal(t, first.ID, overlapErr.Conflict.ID)
	assert.Equal(t, leave.StatusApproved, overlapErr.Conflict.Status)

	// 2024-02-21..25 touches nothing and goes through
	clear := submitRequest()
	clear.StartDate = "2024-02-21"
	clear.EndDate = "2024-02-25"

	created, err := svc.Submit(ctx, clear)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, created.Status)
}

func TestSubmitOverlapAgainstPending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Submit(ctx, submitRequest())
	require.NoError(t, err)

	dup := submitRequest()
	_, err = svc.Submit(ctx, dup)

	var overlapErr *leave.OverlapError
	assert.ErrorAs(t, err, &overlapErr)
}

func TestSubmitIgnoresRejectedApplications(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	first, err := svc.Submit(ctx, submitRequest())
	require.NoError(t, err)

	_, err = svc.Decide(ctx, first.ID, "rejected")
	require.NoError(t, err)

	// same window again is fine once the first is rejected
	_, err = svc.Submit(ctx, submitRequest())
	assert.NoError(t, err)
}

func TestDecideApprove(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Submit(ctx, submitRequest())
	require.NoError(t, err)

	decided, err := svc.Decide(ctx, created.ID, "approved")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, decided.Status)
	require.NotNil(t, decided.ProcessedAt)
}

func TestDecideIdempotentSameDecision(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService()

	created, err := svc.Submit(ctx, submitRequest())
	require.NoError(t, err)

	first, err := svc.Decide(ctx, created.ID, "approved")
	require.NoError(t, err)
	writesAfterFirst := repo.updates

	second, err := svc.Decide(ctx, created.ID, "approved")
	require.NoError(t, err)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.ProcessedAt, second.ProcessedAt)
	assert.Equal(t, writesAfterFirst, repo.updates, "repeat decision must not write")
}

func TestDecideConflictingDecision(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Submit(ctx, submitRequest())
	require.NoError(t, err)

	_, err = svc.Decide(ctx, created.ID, "approved")
	require.NoError(t, err)

	_, err = svc.Decide(ctx, created.ID, "rejected")
	assert.ErrorIs(t, err, leave.ErrInvalidTransition)

	// record keeps its first decision
	app, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, app.Status)
}

func TestDecideUnknownIdentifier(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Decide(ctx, "nope", "approved")
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}

func TestDecideInvalidDecisionValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Submit(ctx, submitRequest())
	require.NoError(t, err)

	_, err = svc.Decide(ctx, created.ID, "maybe")
	assert.ErrorIs(t, err, leave.ErrInvalidDecision)
}

func TestSubmitBoundsStoreCalls(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService()

	_, err := svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)
	assert.True(t, repo.sawDeadline)
}

func TestSubmitStoreTimeoutMapsToPersistence(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService()
	repo.storeErr = context.DeadlineExceeded

	_, err := svc.Submit(context.Background(), submitRequest())
	assert.ErrorIs(t, err, leave.ErrPersistence)
	assert.Empty(t, repo.apps)
}

func TestDecideStoreTimeoutMapsToPersistence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService()

	created, err := svc.Submit(ctx, submitRequest())
	require.NoError(t, err)

	repo.storeErr = context.DeadlineExceeded
	_, err = svc.Decide(ctx, created.ID, "approved")
	assert.ErrorIs(t, err, leave.ErrPersistence)
}

func TestDecideRetriesOnceOnWriteFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService()

	created, err := svc.Submit(ctx, submitRequest())
	require.NoError(t, err)

	repo.failWrites = 1
	decided, err := svc.Decide(ctx, created.ID, "approved")
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, decided.Status)
	assert.Equal(t, 2, repo.updates)
}

func TestDecidePersistenceErrorAfterRetry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService()

	created, err := svc.Submit(ctx, submitRequest())
	require.NoError(t, err)

	repo.failWrites = 2
	_, err = svc.Decide(ctx, created.ID, "approved")
	assert.ErrorIs(t, err, leave.ErrPersistence)
	assert.Equal(t, 2, repo.updates)
}

func TestDecideByLegacyIdentifier(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService()

	created, err := svc.Submit(ctx, submitRequest())
	require.NoError(t, err)

	// simulate a historical row whose alias differs from the canonical id
	app := repo.apps[created.ID]
	legacy := "12345"
	app.LegacyID = &legacy
	repo.apps[created.ID] = app

	decided, err := svc.Decide(ctx, legacy, "approved")
	require.NoError(t, err)
	assert.Equal(t, created.ID, decided.ID)
	assert.Equal(t, leave.StatusApproved, decided.Status)
}

func TestDeleteAnyStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Submit(ctx, submitRequest())
	require.NoError(t, err)

	_, err = svc.Decide(ctx, created.ID, "approved")
	require.NoError(t, err)

	// approved records delete just like pending ones
	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}

func TestDeleteUnknownIdentifier(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	err := svc.Delete(ctx, "nope")
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}

func TestListFiltersByEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Submit(ctx, submitRequest())
	require.NoError(t, err)

	other := submitRequest()
	other.EmployeeID = "EMP002"
	other.EmployeeName = "Employee EMP002"
	_, err = svc.Submit(ctx, other)
	require.NoError(t, err)

	mine, err := svc.List(ctx, "EMP001")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
