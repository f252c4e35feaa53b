package memory

import (
	"context"

	"github.com/serenus-health/wellness-admin-go/internal/domain/plan"
)

type PlanRepositoryImpl struct {
	store *Store
}

func NewPlanRepository(store *Store) plan.PlanRepository {
	return &PlanRepositoryImpl{store: store}
}

// GetByID implements plan.PlanRepository.
func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id string) (plan.SubscriptionPlan, error) {
	s := r.store
	s.plansMu.RLock()
	defer s.plansMu.RUnlock()

	for _, p := range s.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return plan.SubscriptionPlan{}, plan.ErrPlanNotFound
}

// GetAll implements plan.PlanRepository. Order is insertion order.
func (r *PlanRepositoryImpl) GetAll(ctx context.Context) ([]plan.SubscriptionPlan, error) {
	s := r.store
	s.plansMu.RLock()
	defer s.plansMu.RUnlock()

	out := make([]plan.SubscriptionPlan, len(s.plans))
	copy(out, s.plans)
	return out, nil
}

// Create implements plan.PlanRepository.
func (r *PlanRepositoryImpl) Create(ctx context.Context, newPlan plan.SubscriptionPlan) (plan.SubscriptionPlan, error) {
	s := r.store
	s.plansMu.Lock()
	defer s.plansMu.Unlock()

	s.plans = append(s.plans, newPlan)
	s.persistPlans()
	return newPlan, nil
}

// Update implements plan.PlanRepository.
func (r *PlanRepositoryImpl) Update(ctx context.Context, updated plan.SubscriptionPlan) (plan.SubscriptionPlan, error) {
	s := r.store
	s.plansMu.Lock()
	defer s.plansMu.Unlock()

	for i, p := range s.plans {
		if p.ID == updated.ID {
			s.plans[i] = updated
			s.persistPlans()
			return updated, nil
		}
	}
	return plan.SubscriptionPlan{}, plan.ErrPlanNotFound
}
