package plan

import (
	"context"
)

type PlanRepository interface {
	GetByID(ctx context.Context, id string) (SubscriptionPlan, error)
	GetAll(ctx context.Context) ([]SubscriptionPlan, error)
	Create(ctx context.Context, newPlan SubscriptionPlan) (SubscriptionPlan, error)
	Update(ctx context.Context, updated SubscriptionPlan) (SubscriptionPlan, error)
}
