package kv

import (
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenus-health/wellness-admin-go/internal/domain/user"
	"github.com/serenus-health/wellness-admin-go/internal/pkg/kvstore"
)

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	db, err := kvstore.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewAdapter(db, nil)
}

func TestAdapter_UsersRoundTrip(t *testing.T) {
	adapter := newTestAdapter(t)

	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	users := []user.User{
		{ID: "u1", Name: "Ana", Email: "ana@acme.com", Role: user.RoleColaborador, CreatedAt: created},
	}

	ok := adapter.SaveUsers(users)
	require.True(t, ok)

	loaded, ok := adapter.LoadUsers()
	require.True(t, ok)
	require.Len(t, loaded, 1)
	assert.Equal(t, "u1", loaded[0].ID)
	assert.True(t, loaded[0].CreatedAt.Equal(created))
}

func TestAdapter_LoadMissingCollection(t *testing.T) {
	adapter := newTestAdapter(t)

	_, ok := adapter.LoadUsers()
	assert.False(t, ok)
	_, ok = adapter.LoadCompanies()
	assert.False(t, ok)
	_, ok = adapter.LoadPlans()
	assert.False(t, ok)
}

func TestAdapter_EmptyCollectionStaysEmpty(t *testing.T) {
	adapter := newTestAdapter(t)

	require.True(t, adapter.SaveUsers(nil))

	loaded, ok := adapter.LoadUsers()
	require.True(t, ok)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

func TestAdapter_MalformedRecordIsNoData(t *testing.T) {
	db, err := kvstore.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	adapter := NewAdapter(db, nil)

	err = db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(KeyUsers), []byte("{broken"))
	})
	require.NoError(t, err)

	_, ok := adapter.LoadUsers()
	assert.False(t, ok)
}

func TestAdapter_SessionLifecycle(t *testing.T) {
	adapter := newTestAdapter(t)

	_, ok := adapter.LoadSession()
	assert.False(t, ok)

	last := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)
	session := user.User{
		ID:          "admin-1",
		Email:       "admin@serenus.com",
		Role:        user.RoleSuperAdmin,
		CreatedAt:   last.AddDate(-1, 0, 0),
		LastCheckup: &last,
	}
	require.True(t, adapter.SaveSession(session))

	restored, ok := adapter.LoadSession()
	require.True(t, ok)
	assert.Equal(t, "admin-1", restored.ID)
	require.NotNil(t, restored.LastCheckup)
	assert.True(t, restored.LastCheckup.Equal(last))

	require.True(t, adapter.ClearSession())
	_, ok = adapter.LoadSession()
	assert.False(t, ok)
}
