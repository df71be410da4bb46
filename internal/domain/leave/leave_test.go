package leave

import (
	"testing"
	"time"

	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestApplicationOverlaps(t *testing.T) {
	app := Application{
		StartDate: date("2024-02-15"),
		EndDate:   date("2024-02-20"),
	}

	// inclusive at both ends
	assert.True(t, app.Overlaps(date("2024-02-18"), date("2024-02-22")))
	assert.True(t, app.Overlaps(date("2024-02-10"), date("2024-02-15")))
	assert.True(t, app.Overlaps(date("2024-02-20"), date("2024-02-25")))
	assert.True(t, app.Overlaps(date("2024-02-16"), date("2024-02-17")))
	assert.True(t, app.Overlaps(date("2024-02-01"), date("2024-02-28")))

	assert.False(t, app.Overlaps(date("2024-02-21"), date("2024-02-25")))
	assert.False(t, app.Overlaps(date("2024-02-10"), date("2024-02-14")))
}

func TestSubmitLeaveRequestValidate(t *testing.T) {
	valid := SubmitLeaveRequest{
		EmployeeID:   "EMP001",
		EmployeeName: "Jane Doe",
		LeaveType:    "annual",
		StartDate:    "2024-02-15",
		EndDate:      "2024-02-20",
		Reason:       "family trip",
	}
	assert.NoError(t, valid.Validate())

	start, end := valid.Dates()
	assert.Equal(t, date("2024-02-15"), start)
	assert.Equal(t, date("2024-02-20"), end)
}

func TestSubmitLeaveRequestValidateEndBeforeStart(t *testing.T) {
	req := SubmitLeaveRequest{
		EmployeeID:   "EMP001",
		EmployeeName: "Jane Doe",
		LeaveType:    "sick",
		StartDate:    "2024-02-20",
		EndDate:      "2024-02-15",
		Reason:       "sick",
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "end_date")
}

func TestSubmitLeaveRequestValidateMissingFields(t *testing.T) {
	req := SubmitLeaveRequest{}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	for _, field := range []string{"employee_id", "employee_name", "leave_type", "start_date", "end_date", "reason"} {
		assert.Contains(t, m, field)
	}
}

func TestSubmitLeaveRequestValidateUnknownType(t *testing.T) {
	req := SubmitLeaveRequest{
		EmployeeID:   "EMP001",
		EmployeeName: "Jane Doe",
		LeaveType:    "sabbatical",
		StartDate:    "2024-02-15",
		EndDate:      "2024-02-20",
		Reason:       "time off",
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "leave_type")
}

func TestDecideRequestValidate(t *testing.T) {
	approved := DecideRequest{Decision: "approved"}
	assert.NoError(t, approved.Validate())

	rejected := DecideRequest{Decision: "rejected"}
	assert.NoError(t, rejected.Validate())

	pending := DecideRequest{Decision: "pending"}
	assert.ErrorIs(t, pending.Validate(), ErrInvalidDecision)

	empty := DecideRequest{}
	assert.ErrorIs(t, empty.Validate(), ErrInvalidDecision)
}

func TestToResponse(t *testing.T) {
	legacy := "42"
	processed := date("2024-02-21")
	app := Application{
		ID:           "abc",
		LegacyID:     &legacy,
		EmployeeID:   "EMP001",
		EmployeeName: "Jane Doe",
		Type:         TypeAnnual,
		StartDate:    date("2024-02-15"),
		EndDate:      date("2024-02-20"),
		Reason:       "family trip",
		Status:       StatusApproved,
		CreatedAt:    date("2024-02-10"),
		UpdatedAt:    date("2024-02-21"),
		ProcessedAt:  &processed,
	}

	resp := ToResponse(app)
	assert.Equal(t, "abc", resp.ID)
	assert.Equal(t, &legacy, resp.LegacyID)
	assert.Equal(t, "2024-02-15", resp.StartDate)
	assert.Equal(t, "2024-02-20", resp.EndDate)
	assert.Equal(t, "approved", resp.Status)
	require.NotNil(t, resp.ProcessedAt)
}
