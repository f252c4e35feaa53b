package plan

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/serenus-health/wellness-admin-go/internal/domain/plan"
)

type PlanService interface {
	GetAll(ctx context.Context) ([]plan.SubscriptionPlan, error)
	GetByID(ctx context.Context, id string) (plan.SubscriptionPlan, error)
	Add(ctx context.Context, req plan.SavePlanRequest) (plan.SubscriptionPlan, error)
	Update(ctx context.Context, req plan.SavePlanRequest) (plan.SubscriptionPlan, error)
	ToggleStatus(ctx context.Context, id string) (plan.SubscriptionPlan, error)
}

type PlanServiceImpl struct {
	plans  plan.PlanRepository
	logger *slog.Logger
}

func NewPlanService(plans plan.PlanRepository, logger *slog.Logger) PlanService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlanServiceImpl{
		plans:  plans,
		logger: logger,
	}
}

// GetAll implements PlanService.
func (s *PlanServiceImpl) GetAll(ctx context.Context) ([]plan.SubscriptionPlan, error) {
	return s.plans.GetAll(ctx)
}

// GetByID implements PlanService.
func (s *PlanServiceImpl) GetByID(ctx context.Context, id string) (plan.SubscriptionPlan, error) {
	return s.plans.GetByID(ctx, id)
}

// Add implements PlanService. A freshly added plan carries no UpdatedAt
// until it is modified.
func (s *PlanServiceImpl) Add(ctx context.Context, req plan.SavePlanRequest) (plan.SubscriptionPlan, error) {
	if err := req.Validate(); err != nil {
		return plan.SubscriptionPlan{}, err
	}

	newPlan := plan.SubscriptionPlan{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Value:       req.Value,
		Periodicity: req.Periodicity,
		Features:    req.Features,
		IsActive:    true,
		CreatedAt:   time.Now(),
		Description: req.Description,
	}
	if newPlan.Periodicity == "" {
		newPlan.Periodicity = plan.PeriodicityMonthly
	}
	if newPlan.Features == nil {
		newPlan.Features = []string{}
	}
	if req.IsActive != nil {
		newPlan.IsActive = *req.IsActive
	}

	return s.plans.Create(ctx, newPlan)
}

// Update implements PlanService. CreatedAt is preserved; UpdatedAt is
// stamped on every modification.
func (s *PlanServiceImpl) Update(ctx context.Context, req plan.SavePlanRequest) (plan.SubscriptionPlan, error) {
	if err := req.Validate(); err != nil {
		return plan.SubscriptionPlan{}, err
	}

	current, err := s.plans.GetByID(ctx, req.ID)
	if err != nil {
		return plan.SubscriptionPlan{}, err
	}

	current.Name = req.Name
	current.Value = req.Value
	if req.Periodicity != "" {
		current.Periodicity = req.Periodicity
	}
	if req.Features != nil {
		current.Features = req.Features
	}
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}
	if req.Description != nil {
		current.Description = req.Description
	}
	now := time.Now()
	current.UpdatedAt = &now

	return s.plans.Update(ctx, current)
}

// ToggleStatus implements PlanService. Deactivated plans stay in the catalog
// and on companies already subscribed to them.
func (s *PlanServiceImpl) ToggleStatus(ctx context.Context, id string) (plan.SubscriptionPlan, error) {
	current, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return plan.SubscriptionPlan{}, err
	}

	current.IsActive = !current.IsActive
	now := time.Now()
	current.UpdatedAt = &now

	return s.plans.Update(ctx, current)
}
