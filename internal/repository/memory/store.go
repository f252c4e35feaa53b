// Package memory implements the domain repositories over in-memory
// collections owned by a single Store. Every successful mutation is mirrored
// through the kv adapter; a failed mirror write degrades persistence but
// never fails the operation.
package memory

import (
	"log/slog"
	"sync"

	"github.com/serenus-health/wellness-admin-go/internal/domain/company"
	"github.com/serenus-health/wellness-admin-go/internal/domain/plan"
	"github.com/serenus-health/wellness-admin-go/internal/domain/user"
	"github.com/serenus-health/wellness-admin-go/internal/fixtures"
	"github.com/serenus-health/wellness-admin-go/internal/pkg/validator"
	"github.com/serenus-health/wellness-admin-go/internal/repository/kv"
)

// Store owns all in-memory collections. It is constructed once at process
// start and handed to the repositories; nothing else mutates the collections.
//
// Each collection has its own RWMutex so that two operations touching the
// same collection can never interleave their read-modify-write.
type Store struct {
	adapter *kv.Adapter
	logger  *slog.Logger

	usersMu       sync.RWMutex
	usersByEmail  map[string]*user.User // key: normalized email
	userEmailByID map[string]string     // id -> normalized email
	userOrder     []string              // normalized emails, insertion order

	companiesMu     sync.RWMutex
	companies       []company.Company
	settings        map[string]company.CheckupSettings  // key: company id
	recommendations map[string][]company.Recommendation // key: company id

	plansMu sync.RWMutex
	plans   []plan.SubscriptionPlan
}

// NewStore bootstraps the collections from the kv mirror when present, or
// from the built-in defaults otherwise. Defaults are mirrored back so a
// fresh install persists immediately.
func NewStore(adapter *kv.Adapter, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		adapter:         adapter,
		logger:          logger,
		usersByEmail:    make(map[string]*user.User),
		userEmailByID:   make(map[string]string),
		settings:        make(map[string]company.CheckupSettings),
		recommendations: make(map[string][]company.Recommendation),
	}

	users, ok := adapter.LoadUsers()
	if !ok {
		users = fixtures.GetDefaultUsers()
		adapter.SaveUsers(users)
		logger.Info("store: seeded default users", "count", len(users))
	}
	for i := range users {
		s.indexUser(users[i])
	}

	companies, ok := adapter.LoadCompanies()
	if !ok {
		companies = fixtures.GetDefaultCompanies()
		adapter.SaveCompanies(companies)
		logger.Info("store: seeded default companies", "count", len(companies))
	}
	s.companies = companies

	plans, ok := adapter.LoadPlans()
	if !ok {
		plans = fixtures.GetDefaultPlans()
		adapter.SavePlans(plans)
		logger.Info("store: seeded default plans", "count", len(plans))
	}
	s.plans = plans

	return s
}

// indexUser inserts a user into both indexes. Caller holds usersMu or is the
// constructor.
func (s *Store) indexUser(u user.User) {
	key := validator.NormalizeEmail(u.Email)
	copied := u
	s.usersByEmail[key] = &copied
	s.userEmailByID[u.ID] = key
	s.userOrder = append(s.userOrder, key)
}

// dropUserIndex removes a user from both indexes. Caller holds usersMu.
func (s *Store) dropUserIndex(id string) {
	key, ok := s.userEmailByID[id]
	if !ok {
		return
	}
	delete(s.usersByEmail, key)
	delete(s.userEmailByID, id)
	for i, k := range s.userOrder {
		if k == key {
			s.userOrder = append(s.userOrder[:i], s.userOrder[i+1:]...)
			break
		}
	}
}

// snapshotUsers returns the users in insertion order. Caller holds usersMu.
func (s *Store) snapshotUsers() []user.User {
	out := make([]user.User, 0, len(s.userOrder))
	for _, key := range s.userOrder {
		if u, ok := s.usersByEmail[key]; ok {
			out = append(out, *u)
		}
	}
	return out
}

// persistUsers mirrors the user collection. Caller holds usersMu.
func (s *Store) persistUsers() {
	s.adapter.SaveUsers(s.snapshotUsers())
}

// persistCompanies mirrors the company collection. Caller holds companiesMu.
func (s *Store) persistCompanies() {
	companies := make([]company.Company, len(s.companies))
	copy(companies, s.companies)
	s.adapter.SaveCompanies(companies)
}

// persistPlans mirrors the plan collection. Caller holds plansMu.
func (s *Store) persistPlans() {
	plans := make([]plan.SubscriptionPlan, len(s.plans))
	copy(plans, s.plans)
	s.adapter.SavePlans(plans)
}
