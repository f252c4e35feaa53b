// Package fixtures holds the built-in collections the store boots from when
// the key-value mirror has no prior data.
package fixtures

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/serenus-health/wellness-admin-go/internal/domain/company"
	"github.com/serenus-health/wellness-admin-go/internal/domain/plan"
	"github.com/serenus-health/wellness-admin-go/internal/domain/user"
)

func strPtr(s string) *string { return &s }

// SuperAdminEmail is the distinguished portal-operator account.
const SuperAdminEmail = "admin@serenus.com"

// GetDefaultUsers returns the demo accounts seeded on first boot.
func GetDefaultUsers() []user.User {
	base := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	return []user.User{
		{
			ID:        "user-admin",
			Name:      "Administrador Serenus",
			Email:     SuperAdminEmail,
			Role:      user.RoleSuperAdmin,
			Avatar:    "https://ui-avatars.com/api/?name=Administrador+Serenus",
			IsActive:  true,
			CreatedAt: base,
		},
		{
			ID:         "user-gerente-techcorp",
			Name:       "Carla Mendes",
			Email:      "carla.mendes@techcorp.com.br",
			Role:       user.RoleGerente,
			CompanyID:  strPtr("company-techcorp"),
			Department: strPtr("Recursos Humanos"),
			Avatar:     "https://ui-avatars.com/api/?name=Carla+Mendes",
			IsActive:   true,
			CreatedAt:  base.AddDate(0, 0, 5),
		},
		{
			ID:         "user-colaborador-techcorp",
			Name:       "Pedro Santos",
			Email:      "pedro.santos@techcorp.com.br",
			Role:       user.RoleColaborador,
			CompanyID:  strPtr("company-techcorp"),
			Department: strPtr("Engenharia"),
			Avatar:     "https://ui-avatars.com/api/?name=Pedro+Santos",
			IsActive:   true,
			CreatedAt:  base.AddDate(0, 0, 7),
		},
		{
			ID:         "user-colaboradora-inova",
			Name:       "Juliana Lima",
			Email:      "juliana.lima@inovasaude.com.br",
			Role:       user.RoleColaborador,
			CompanyID:  strPtr("company-inova"),
			Department: strPtr("Comercial"),
			Avatar:     "https://ui-avatars.com/api/?name=Juliana+Lima",
			IsActive:   true,
			CreatedAt:  base.AddDate(0, 1, 0),
		},
	}
}

// GetDefaultCompanies returns the demo tenants. CurrentUsers must match the
// users above.
func GetDefaultCompanies() []company.Company {
	base := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
	return []company.Company{
		{
			ID:             "company-techcorp",
			Name:           "TechCorp Sistemas",
			Domain:         "techcorp.com.br",
			ContactPerson:  "Carla Mendes",
			CorporateEmail: "contato@techcorp.com.br",
			LandlinePhone:  strPtr("(11) 3333-4444"),
			MobilePhone:    "(11) 98888-1234",
			Logo:           "https://ui-avatars.com/api/?name=TechCorp",
			CreatedAt:      base,
			IsActive:       true,
			Plan:           "premium",
			MaxUsers:       50,
			CurrentUsers:   2,
		},
		{
			ID:             "company-inova",
			Name:           "Inova Saúde",
			Domain:         "inovasaude.com.br",
			ContactPerson:  "Roberto Dias",
			CorporateEmail: "contato@inovasaude.com.br",
			MobilePhone:    "(21) 97777-5678",
			Logo:           "https://ui-avatars.com/api/?name=Inova+Saude",
			CreatedAt:      base.AddDate(0, 0, 12),
			IsActive:       true,
			Plan:           "basic",
			MaxUsers:       20,
			CurrentUsers:   1,
		},
	}
}

// GetDefaultPlans returns the three catalog tiers, matching the remote
// seeding performed by cmd/seedplans.
func GetDefaultPlans() []plan.SubscriptionPlan {
	base := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	return []plan.SubscriptionPlan{
		{
			ID:          "plan-basico",
			Name:        "Básico",
			Value:       decimal.NewFromFloat(29.90),
			Periodicity: plan.PeriodicityMonthly,
			Features: []string{
				"Checkups trimestrais",
				"Até 20 colaboradores",
				"Relatórios básicos",
			},
			IsActive:    true,
			CreatedAt:   base,
			Description: strPtr("Para pequenas equipes começando o programa de bem-estar"),
		},
		{
			ID:          "plan-premium",
			Name:        "Premium",
			Value:       decimal.NewFromFloat(59.90),
			Periodicity: plan.PeriodicityMonthly,
			Features: []string{
				"Checkups mensais",
				"Até 100 colaboradores",
				"Relatórios avançados",
				"Recomendações personalizadas",
			},
			IsActive:    true,
			CreatedAt:   base,
			Description: strPtr("Acompanhamento completo para empresas em crescimento"),
		},
		{
			ID:          "plan-enterprise",
			Name:        "Enterprise",
			Value:       decimal.NewFromFloat(149.90),
			Periodicity: plan.PeriodicityMonthly,
			Features: []string{
				"Checkups sob demanda",
				"Colaboradores ilimitados",
				"Relatórios avançados",
				"Recomendações personalizadas",
				"Suporte dedicado",
			},
			IsActive:    true,
			CreatedAt:   base,
			Description: strPtr("Programa corporativo completo com suporte dedicado"),
		},
	}
}

// GetDefaultRecommendations returns the two seed entries created lazily the
// first time a company's recommendations are requested.
func GetDefaultRecommendations(companyID string, now time.Time) []company.Recommendation {
	return []company.Recommendation{
		{
			ID:         "rec-" + companyID + "-1",
			CompanyID:  companyID,
			Title:      "Pausas ativas durante o expediente",
			Content:    "Programe pausas curtas de alongamento a cada duas horas de trabalho para reduzir tensão muscular e fadiga visual.",
			Type:       company.RecommendationExercise,
			OrderIndex: 1,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:         "rec-" + companyID + "-2",
			CompanyID:  companyID,
			Title:      "Hidratação e alimentação equilibrada",
			Content:    "Mantenha uma garrafa de água na mesa e prefira lanches leves ao longo do dia. Pequenos hábitos sustentam a energia da equipe.",
			Type:       company.RecommendationNutrition,
			OrderIndex: 2,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
}
