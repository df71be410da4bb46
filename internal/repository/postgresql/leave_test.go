package postgresql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

func leaveTestInit(t *testing.T) leave.ApplicationRepository {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if testDB == nil {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		require.NoError(t, err, "failed to connect to test database")
	}

	_, err := testDB.Exec(context.Background(), "TRUNCATE TABLE leave_applications CASCADE")
	require.NoError(t, err)

	return NewLeaveRepository(testDB)
}

func testApplication() leave.Application {
	return leave.Application{
		EmployeeID:   "EMP001",
		EmployeeName: "Jane Doe",
		Type:         leave.TypeAnnual,
		StartDate:    time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
		Reason:       "family trip",
		Status:       leave.StatusPending,
	}
}

func TestLeaveRepositoryCreateNormalizesLegacyID(t *testing.T) {
	repo := leaveTestInit(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testApplication())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	require.NotNil(t, created.LegacyID)
	assert.Equal(t, created.ID, *created.LegacyID)
}

func TestLeaveRepositoryResolve(t *testing.T) {
	repo := leaveTestInit(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testApplication())
	require.NoError(t, err)

	// canonical id
	byID, err := repo.Resolve(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	// legacy alias path: rewrite the alias to simulate a historical row
	_, err = testDB.Exec(ctx, `UPDATE leave_applications SET legacy_id = '42' WHERE id = $1`, created.ID)
	require.NoError(t, err)

	byLegacy, err := repo.Resolve(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byLegacy.ID)

	_, err = repo.Resolve(ctx, "does-not-exist")
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}

func TestLeaveRepositoryUpdateStatus(t *testing.T) {
	repo := leaveTestInit(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testApplication())
	require.NoError(t, err)

	processedAt := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.UpdateStatus(ctx, created.ID, leave.StatusApproved, processedAt))

	reloaded, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, reloaded.Status)
	require.NotNil(t, reloaded.ProcessedAt)
}

func TestLeaveRepositoryListByEmployeeAndStatus(t *testing.T) {
	repo := leaveTestInit(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, testApplication())
	require.NoError(t, err)

	second := testApplication()
	second.StartDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	second.EndDate = time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	_, err = repo.Create(ctx, second)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, first.ID, leave.StatusRejected, time.Now()))

	open, err := repo.ListByEmployeeAndStatus(ctx, "EMP001",
		[]leave.Status{leave.StatusPending, leave.StatusApproved})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, leave.StatusPending, open[0].Status)
}

func TestLeaveRepositoryDelete(t *testing.T) {
	repo := leaveTestInit(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testApplication())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, created.ID), leave.ErrLeaveNotFound)
}
