package company

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenus-health/wellness-admin-go/internal/domain/company"
	"github.com/serenus-health/wellness-admin-go/internal/domain/user"
	"github.com/serenus-health/wellness-admin-go/internal/pkg/kvstore"
	"github.com/serenus-health/wellness-admin-go/internal/pkg/validator"
	"github.com/serenus-health/wellness-admin-go/internal/repository/kv"
	"github.com/serenus-health/wellness-admin-go/internal/repository/memory"
)

type testEnv struct {
	service   CompanyService
	companies company.CompanyRepository
	users     user.UserRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := kvstore.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	adapter := kv.NewAdapter(db, logger)
	store := memory.NewStore(adapter, logger)
	companies := memory.NewCompanyRepository(store)
	users := memory.NewUserRepository(store)

	return &testEnv{
		service:   NewCompanyService(companies, users, logger),
		companies: companies,
		users:     users,
	}
}

func validRegisterRequest() company.RegisterCompanyRequest {
	return company.RegisterCompanyRequest{
		Name:           "Acme Corporação",
		Domain:         "acme.com.br",
		ContactPerson:  "Maria Silva",
		CorporateEmail: "contato@acme.com.br",
		MobilePhone:    "(11) 91234-5678",
		Plan:           "basic",
		MaxUsers:       10,
	}
}

func TestCompanyService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a company with default checkup settings", func(t *testing.T) {
		env := newTestEnv(t)

		created, err := env.service.Register(ctx, validRegisterRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.True(t, created.IsActive)
		assert.Equal(t, 0, created.CurrentUsers)
		assert.False(t, created.CreatedAt.IsZero())

		settings, err := env.companies.GetSettings(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, company.DefaultNormalIntervalDays, settings.NormalIntervalDays)
		assert.Equal(t, company.DefaultSevereIntervalDays, settings.SevereIntervalDays)
		assert.True(t, settings.AutoRemindersEnabled)
	})

	t.Run("rejects a duplicate domain regardless of case", func(t *testing.T) {
		env := newTestEnv(t)

		req := validRegisterRequest()
		req.Domain = "TECHCORP.COM.BR" // seeded as techcorp.com.br

		_, err := env.service.Register(ctx, req)

		assert.ErrorIs(t, err, company.ErrCompanyDomainExists)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.service.Register(ctx, company.RegisterCompanyRequest{})

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		fields := errs.ToMap()
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "domain")
		assert.Contains(t, fields, "corporate_email")
	})

	t.Run("malformed corporate email fails validation", func(t *testing.T) {
		env := newTestEnv(t)

		req := validRegisterRequest()
		req.CorporateEmail = "not-an-email"

		_, err := env.service.Register(ctx, req)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "corporate_email")
	})
}

func TestCompanyService_Update(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	name := "TechCorp Renomeada"
	inactive := false
	updated, err := env.service.Update(ctx, company.UpdateCompanyRequest{
		ID:       "company-techcorp",
		Name:     &name,
		IsActive: &inactive,
	})

	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.False(t, updated.IsActive)
	// Untouched fields survive the partial update.
	assert.Equal(t, "techcorp.com.br", updated.Domain)
	assert.Equal(t, 2, updated.CurrentUsers)

	_, err = env.service.Update(ctx, company.UpdateCompanyRequest{ID: "company-missing", Name: &name})
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
}

func TestCompanyService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses while users remain", func(t *testing.T) {
		env := newTestEnv(t)

		err := env.service.Delete(ctx, "company-techcorp")

		assert.ErrorIs(t, err, company.ErrCompanyHasUsers)
		_, err = env.service.GetByID(ctx, "company-techcorp")
		assert.NoError(t, err)
	})

	t.Run("deletes an empty company with its settings and recommendations", func(t *testing.T) {
		env := newTestEnv(t)

		created, err := env.service.Register(ctx, validRegisterRequest())
		require.NoError(t, err)
		_, err = env.service.GetOrCreateRecommendations(ctx, created.ID)
		require.NoError(t, err)

		err = env.service.Delete(ctx, created.ID)
		require.NoError(t, err)

		_, err = env.service.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, company.ErrCompanyNotFound)
		_, err = env.companies.GetSettings(ctx, created.ID)
		assert.ErrorIs(t, err, company.ErrSettingsNotFound)
		_, err = env.companies.GetRecommendations(ctx, created.ID)
		assert.ErrorIs(t, err, company.ErrRecommendationNotFound)
	})

	t.Run("unknown company is not found", func(t *testing.T) {
		env := newTestEnv(t)

		err := env.service.Delete(ctx, "company-missing")

		assert.ErrorIs(t, err, company.ErrCompanyNotFound)
	})
}

func TestCompanyService_CheckupSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("get creates defaults once", func(t *testing.T) {
		env := newTestEnv(t)

		first, err := env.service.GetOrCreateCheckupSettings(ctx, "company-techcorp")
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.Equal(t, company.DefaultNormalIntervalDays, first.NormalIntervalDays)
		assert.Equal(t, company.DefaultSevereIntervalDays, first.SevereIntervalDays)
		assert.True(t, first.AutoRemindersEnabled)

		second, err := env.service.GetOrCreateCheckupSettings(ctx, "company-techcorp")
		require.NoError(t, err)
		require.NotNil(t, second)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("unknown company yields nil settings", func(t *testing.T) {
		env := newTestEnv(t)

		settings, err := env.service.GetOrCreateCheckupSettings(ctx, "company-missing")

		require.NoError(t, err)
		assert.Nil(t, settings)
	})

	t.Run("save preserves identity of the existing row", func(t *testing.T) {
		env := newTestEnv(t)

		first, err := env.service.GetOrCreateCheckupSettings(ctx, "company-techcorp")
		require.NoError(t, err)

		saved, err := env.service.SaveCheckupSettings(ctx, company.SaveCheckupSettingsRequest{
			CompanyID:            "company-techcorp",
			NormalIntervalDays:   60,
			SevereIntervalDays:   15,
			AutoRemindersEnabled: false,
		})

		require.NoError(t, err)
		assert.Equal(t, first.ID, saved.ID)
		assert.Equal(t, first.CreatedAt, saved.CreatedAt)
		assert.Equal(t, 60, saved.NormalIntervalDays)
		assert.Equal(t, 15, saved.SevereIntervalDays)
		assert.False(t, saved.AutoRemindersEnabled)
	})

	t.Run("save for unknown company is not found", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.service.SaveCheckupSettings(ctx, company.SaveCheckupSettingsRequest{
			CompanyID:          "company-missing",
			NormalIntervalDays: 60,
			SevereIntervalDays: 15,
		})

		assert.ErrorIs(t, err, company.ErrCompanyNotFound)
	})

	t.Run("interval validation matrix", func(t *testing.T) {
		env := newTestEnv(t)

		cases := []struct {
			name    string
			normal  int
			severe  int
			wantErr bool
		}{
			{"both at lower bound ordering fails", 1, 1, true},
			{"normal below range", 0, 15, true},
			{"normal above range", 366, 15, true},
			{"severe below range", 90, 0, true},
			{"severe above range", 180, 91, true},
			{"severe equals normal", 30, 30, true},
			{"severe above normal", 30, 45, true},
			{"valid boundary pair", 2, 1, false},
			{"valid upper bounds", 365, 90, false},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := env.service.SaveCheckupSettings(ctx, company.SaveCheckupSettingsRequest{
					CompanyID:          "company-techcorp",
					NormalIntervalDays: tc.normal,
					SevereIntervalDays: tc.severe,
				})

				if tc.wantErr {
					var errs validator.ValidationErrors
					assert.ErrorAs(t, err, &errs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestCompanyService_Recommendations(t *testing.T) {
	ctx := context.Background()

	t.Run("get seeds the two defaults once", func(t *testing.T) {
		env := newTestEnv(t)

		first, err := env.service.GetOrCreateRecommendations(ctx, "company-techcorp")
		require.NoError(t, err)
		require.Len(t, first, 2)
		assert.Equal(t, 1, first[0].OrderIndex)
		assert.Equal(t, 2, first[1].OrderIndex)

		second, err := env.service.GetOrCreateRecommendations(ctx, "company-techcorp")
		require.NoError(t, err)
		require.Len(t, second, 2)
		assert.Equal(t, first[0].ID, second[0].ID)
	})

	t.Run("unknown company yields an empty list", func(t *testing.T) {
		env := newTestEnv(t)

		recs, err := env.service.GetOrCreateRecommendations(ctx, "company-missing")

		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("emptied list stays empty", func(t *testing.T) {
		env := newTestEnv(t)

		seeded, err := env.service.GetOrCreateRecommendations(ctx, "company-techcorp")
		require.NoError(t, err)
		for _, rec := range seeded {
			require.NoError(t, env.service.DeleteRecommendation(ctx, "company-techcorp", rec.ID))
		}

		recs, err := env.service.GetOrCreateRecommendations(ctx, "company-techcorp")
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("save without id creates and appends", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.service.GetOrCreateRecommendations(ctx, "company-techcorp")
		require.NoError(t, err)

		created, err := env.service.SaveRecommendation(ctx, company.SaveRecommendationRequest{
			CompanyID:  "company-techcorp",
			Title:      "  Caminhada semanal  ",
			Content:    "Organize uma caminhada em grupo toda sexta-feira.",
			Type:       company.RecommendationExercise,
			OrderIndex: 3,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Caminhada semanal", created.Title)

		recs, err := env.service.GetOrCreateRecommendations(ctx, "company-techcorp")
		require.NoError(t, err)
		require.Len(t, recs, 3)
		assert.Equal(t, created.ID, recs[2].ID)
	})

	t.Run("save with id updates in place", func(t *testing.T) {
		env := newTestEnv(t)
		seeded, err := env.service.GetOrCreateRecommendations(ctx, "company-techcorp")
		require.NoError(t, err)

		updated, err := env.service.SaveRecommendation(ctx, company.SaveRecommendationRequest{
			ID:         seeded[0].ID,
			CompanyID:  "company-techcorp",
			Title:      "Pausas revisadas",
			Content:    "Conteúdo revisado.",
			Type:       seeded[0].Type,
			OrderIndex: seeded[0].OrderIndex,
		})

		require.NoError(t, err)
		assert.Equal(t, seeded[0].ID, updated.ID)
		assert.Equal(t, seeded[0].CreatedAt, updated.CreatedAt)

		recs, err := env.service.GetOrCreateRecommendations(ctx, "company-techcorp")
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "Pausas revisadas", recs[0].Title)
	})

	t.Run("update of a missing id is not found", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.service.GetOrCreateRecommendations(ctx, "company-techcorp")
		require.NoError(t, err)

		_, err = env.service.SaveRecommendation(ctx, company.SaveRecommendationRequest{
			ID:        "rec-missing",
			CompanyID: "company-techcorp",
			Title:     "Título",
			Content:   "Conteúdo",
		})

		assert.ErrorIs(t, err, company.ErrRecommendationNotFound)
	})

	t.Run("blank title or content after trim fails validation", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.service.SaveRecommendation(ctx, company.SaveRecommendationRequest{
			CompanyID: "company-techcorp",
			Title:     "   ",
			Content:   "\t\n",
		})

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		fields := errs.ToMap()
		assert.Contains(t, fields, "title")
		assert.Contains(t, fields, "content")
	})

	t.Run("delete unknown recommendation is not found", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.service.GetOrCreateRecommendations(ctx, "company-techcorp")
		require.NoError(t, err)

		err = env.service.DeleteRecommendation(ctx, "company-techcorp", "rec-missing")
		assert.ErrorIs(t, err, company.ErrRecommendationNotFound)

		err = env.service.DeleteRecommendation(ctx, "company-missing", "rec-whatever")
		assert.ErrorIs(t, err, company.ErrCompanyNotFound)
	})
}
