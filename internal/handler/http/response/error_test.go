package response

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandleErrorValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "end_date", Message: "end_date cannot be before start_date"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "end_date cannot be before start_date", resp.Error.Details["end_date"])
}

func TestHandleErrorOverlapCarriesConflict(t *testing.T) {
	conflict := leave.Application{
		ID:         "leave-1",
		EmployeeID: "EMP001",
		Status:     leave.StatusApproved,
		StartDate:  time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
	}

	rec := httptest.NewRecorder()
	HandleError(rec, &leave.OverlapError{Conflict: conflict})

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	require.NotNil(t, resp.Error.Conflict)

	payload, ok := resp.Error.Conflict.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "leave-1", payload["id"])
	assert.Equal(t, "approved", payload["status"])
	assert.Equal(t, "2024-02-15", payload["start_date"])
}

func TestHandleErrorStatusCodes(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{leave.ErrLeaveNotFound, http.StatusNotFound},
		{leave.ErrInvalidTransition, http.StatusConflict},
		{leave.ErrInvalidDecision, http.StatusBadRequest},
		{leave.ErrPersistence, http.StatusInternalServerError},
		{employee.ErrEmployeeNotFound, http.StatusNotFound},
		{employee.ErrEmailExists, http.StatusConflict},
		{fmt.Errorf("failed to list projects: %w", context.DeadlineExceeded), http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		HandleError(rec, tc.err)
		assert.Equal(t, tc.code, rec.Code, tc.err.Error())
	}
}
