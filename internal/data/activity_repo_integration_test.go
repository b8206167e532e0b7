package data

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medidea/medidea-api/internal/domain/model"
	"github.com/medidea/medidea-api/internal/testutil"
)

// seedCustomer inserts a customer for FK-dependent tests.
func seedCustomer(t *testing.T, db *sql.DB) *model.Customer {
	t.Helper()
	customer, err := NewCustomerRepo(db).Create(context.Background(), &model.CreateCustomerRequest{
		Name: "Clinica Central",
		City: "Lisboa",
	})
	require.NoError(t, err)
	return customer
}

func TestActivityRepo_Integration_Lifecycle(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		customer := seedCustomer(t, db)
		repo := NewActivityRepo(db)

		created, err := repo.Create(ctx, &model.CreateActivityRequest{
			CustomerID:  customer.ID,
			Kind:        model.ActivityKindMaintenance,
			ScheduledAt: time.Now().Add(24 * time.Hour),
			Description: "quarterly check",
		})
		require.NoError(t, err)
		assert.Equal(t, model.ActivityStatusOpen, created.Status)
		assert.Nil(t, created.CompletedAt)

		// close stamps completed_at
		closed := model.ActivityStatusClosed
		report := "replaced filter"
		updated, err := repo.Update(ctx, created.ID, &model.UpdateActivityRequest{
			Status: &closed,
			Report: &report,
		})
		require.NoError(t, err)
		assert.Equal(t, model.ActivityStatusClosed, updated.Status)
		require.NotNil(t, updated.CompletedAt)
		assert.Equal(t, "replaced filter", updated.Report)

		// reopening clears completed_at
		open := model.ActivityStatusOpen
		reopened, err := repo.Update(ctx, created.ID, &model.UpdateActivityRequest{Status: &open})
		require.NoError(t, err)
		assert.Nil(t, reopened.CompletedAt)
	})
}

func TestActivityRepo_Integration_ListFilters(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		customer := seedCustomer(t, db)
		other := seedCustomer(t, db)
		repo := NewActivityRepo(db)

		for i, cust := range []string{customer.ID, customer.ID, other.ID} {
			_, err := repo.Create(ctx, &model.CreateActivityRequest{
				CustomerID:  cust,
				Kind:        model.ActivityKindRepair,
				ScheduledAt: time.Now().Add(time.Duration(i) * time.Hour),
			})
			require.NoError(t, err)
		}

		all, err := repo.List(ctx, model.ActivitiesListOptions{})
		require.NoError(t, err)
		assert.Len(t, all, 3)

		scoped, err := repo.List(ctx, model.ActivitiesListOptions{CustomerID: &customer.ID})
		require.NoError(t, err)
		assert.Len(t, scoped, 2)

		closed := model.ActivityStatusClosed
		none, err := repo.List(ctx, model.ActivitiesListOptions{Status: &closed})
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestActivityRepo_Integration_UnknownCustomer(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewActivityRepo(db)
		_, err := repo.Create(context.Background(), &model.CreateActivityRequest{
			CustomerID:  "00000000-0000-0000-0000-000000000000",
			Kind:        model.ActivityKindInstallation,
			ScheduledAt: time.Now(),
		})
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})
}
