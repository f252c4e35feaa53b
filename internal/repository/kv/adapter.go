// Package kv is the durable mirror of the portal's in-memory collections.
// Writes report success as a boolean: a failed write leaves the in-memory
// state authoritative for the rest of the session instead of aborting the
// operation that triggered it.
package kv

import (
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/serenus-health/wellness-admin-go/internal/domain/company"
	"github.com/serenus-health/wellness-admin-go/internal/domain/plan"
	"github.com/serenus-health/wellness-admin-go/internal/domain/user"
	"github.com/serenus-health/wellness-admin-go/internal/pkg/kvstore"
)

// Fixed keys for the three mirrored collections and the session record.
const (
	KeyUsers     = "serenus:users"
	KeyCompanies = "serenus:companies"
	KeyPlans     = "serenus:plans"
	KeySession   = "serenus:session"
)

type Adapter struct {
	db     *badger.DB
	logger *slog.Logger
}

func NewAdapter(db *badger.DB, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{db: db, logger: logger}
}

func (a *Adapter) SaveUsers(users []user.User) bool {
	if users == nil {
		users = []user.User{}
	}
	return a.put(KeyUsers, users)
}

// LoadUsers returns the stored user collection. The second result is false
// when nothing usable is stored; a malformed record counts as no data.
func (a *Adapter) LoadUsers() ([]user.User, bool) {
	var users []user.User
	if !a.get(KeyUsers, &users) {
		return nil, false
	}
	return users, true
}

func (a *Adapter) SaveCompanies(companies []company.Company) bool {
	if companies == nil {
		companies = []company.Company{}
	}
	return a.put(KeyCompanies, companies)
}

func (a *Adapter) LoadCompanies() ([]company.Company, bool) {
	var companies []company.Company
	if !a.get(KeyCompanies, &companies) {
		return nil, false
	}
	return companies, true
}

func (a *Adapter) SavePlans(plans []plan.SubscriptionPlan) bool {
	if plans == nil {
		plans = []plan.SubscriptionPlan{}
	}
	return a.put(KeyPlans, plans)
}

func (a *Adapter) LoadPlans() ([]plan.SubscriptionPlan, bool) {
	var plans []plan.SubscriptionPlan
	if !a.get(KeyPlans, &plans) {
		return nil, false
	}
	return plans, true
}

// SaveSession stores the last-known authenticated user record.
func (a *Adapter) SaveSession(u user.User) bool {
	return a.put(KeySession, u)
}

func (a *Adapter) LoadSession() (user.User, bool) {
	var u user.User
	if !a.get(KeySession, &u) {
		return user.User{}, false
	}
	if u.ID == "" {
		return user.User{}, false
	}
	return u, true
}

func (a *Adapter) ClearSession() bool {
	err := a.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(KeySession))
	})
	if err != nil {
		a.logger.Error("kv: clear session failed", "error", err)
		return false
	}
	return true
}

func (a *Adapter) put(key string, v any) bool {
	data, err := kvstore.MarshalTagged(v)
	if err != nil {
		a.logger.Error("kv: encode failed", "key", key, "error", err)
		return false
	}
	err = a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		a.logger.Error("kv: write failed", "key", key, "error", err)
		return false
	}
	return true
}

func (a *Adapter) get(key string, v any) bool {
	var data []byte
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false
	}
	if err != nil {
		a.logger.Error("kv: read failed", "key", key, "error", err)
		return false
	}
	if err := kvstore.UnmarshalTagged(data, v); err != nil {
		// Malformed stored records are treated as no data, not fatal.
		a.logger.Warn("kv: discarding malformed record", "key", key, "error", err)
		return false
	}
	return true
}
