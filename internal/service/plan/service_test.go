package plan

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenus-health/wellness-admin-go/internal/domain/plan"
	"github.com/serenus-health/wellness-admin-go/internal/pkg/kvstore"
	"github.com/serenus-health/wellness-admin-go/internal/pkg/validator"
	"github.com/serenus-health/wellness-admin-go/internal/repository/kv"
	"github.com/serenus-health/wellness-admin-go/internal/repository/memory"
)

func newTestService(t *testing.T) PlanService {
	t.Helper()

	db, err := kvstore.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	adapter := kv.NewAdapter(db, logger)
	store := memory.NewStore(adapter, logger)

	return NewPlanService(memory.NewPlanRepository(store), logger)
}

func TestPlanService_GetAll(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	plans, err := service.GetAll(ctx)

	require.NoError(t, err)
	require.Len(t, plans, 3)
	assert.Equal(t, "Básico", plans[0].Name)
	assert.Equal(t, "Premium", plans[1].Name)
	assert.Equal(t, "Enterprise", plans[2].Name)
}

func TestPlanService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("adds an active plan without an update stamp", func(t *testing.T) {
		service := newTestService(t)

		created, err := service.Add(ctx, plan.SavePlanRequest{
			Name:        "Corporativo",
			Value:       decimal.NewFromFloat(99.90),
			Periodicity: plan.PeriodicityYearly,
			Features:    []string{"Tudo do Premium", "Workshops trimestrais"},
		})

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.True(t, created.IsActive)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Nil(t, created.UpdatedAt)
		assert.True(t, created.Value.Equal(decimal.NewFromFloat(99.90)))

		plans, err := service.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, plans, 4)
		assert.Equal(t, created.ID, plans[3].ID)
	})

	t.Run("rejects a non-positive value", func(t *testing.T) {
		service := newTestService(t)

		for _, value := range []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(-10)} {
			_, err := service.Add(ctx, plan.SavePlanRequest{Name: "Inválido", Value: value})

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), "value")
		}
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		service := newTestService(t)

		_, err := service.Add(ctx, plan.SavePlanRequest{
			Name:  "   ",
			Value: decimal.NewFromFloat(10),
		})

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "name")
	})
}

func TestPlanService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates and stamps UpdatedAt", func(t *testing.T) {
		service := newTestService(t)

		updated, err := service.Update(ctx, plan.SavePlanRequest{
			ID:    "plan-basico",
			Name:  "Básico Revisado",
			Value: decimal.NewFromFloat(34.90),
		})

		require.NoError(t, err)
		assert.Equal(t, "Básico Revisado", updated.Name)
		assert.True(t, updated.Value.Equal(decimal.NewFromFloat(34.90)))
		require.NotNil(t, updated.UpdatedAt)
		// Untouched fields survive.
		assert.Equal(t, plan.PeriodicityMonthly, updated.Periodicity)
		assert.NotEmpty(t, updated.Features)
	})

	t.Run("missing plan is not found", func(t *testing.T) {
		service := newTestService(t)

		_, err := service.Update(ctx, plan.SavePlanRequest{
			ID:    "plan-missing",
			Name:  "Fantasma",
			Value: decimal.NewFromFloat(10),
		})

		assert.ErrorIs(t, err, plan.ErrPlanNotFound)
	})
}

func TestPlanService_ToggleStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("flips the flag back and forth", func(t *testing.T) {
		service := newTestService(t)

		toggled, err := service.ToggleStatus(ctx, "plan-premium")
		require.NoError(t, err)
		assert.False(t, toggled.IsActive)
		require.NotNil(t, toggled.UpdatedAt)

		toggled, err = service.ToggleStatus(ctx, "plan-premium")
		require.NoError(t, err)
		assert.True(t, toggled.IsActive)
	})

	t.Run("deactivated plan stays in the catalog", func(t *testing.T) {
		service := newTestService(t)

		_, err := service.ToggleStatus(ctx, "plan-premium")
		require.NoError(t, err)

		plans, err := service.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, plans, 3)
	})

	t.Run("missing plan is not found", func(t *testing.T) {
		service := newTestService(t)

		_, err := service.ToggleStatus(ctx, "plan-missing")

		assert.ErrorIs(t, err, plan.ErrPlanNotFound)
	})
}
