package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/sso/internal/sso/domain"
	"github.com/aussiebroadwan/sso/internal/sso/store"
	"github.com/aussiebroadwan/sso/internal/sso/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "sso.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(t.Context()))
}

func TestUsers(t *testing.T) {
	st := newTestStore(t)
	ctx := t.Context()

	first := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(48 * time.Hour)

	_, err := st.Users().GetUser(ctx, "ABC123")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, st.Users().UpsertUser(ctx, domain.User{
		GUID:             "ABC123",
		Username:         "JDOE",
		DisplayName:      "Doe, Jane",
		IdentityProvider: "idir",
		LastLoginAt:      first,
	}))
	require.NoError(t, st.Users().UpsertUser(ctx, domain.User{
		GUID:             "ABC123",
		Username:         "JDOE",
		DisplayName:      "Doe, Jane CITZ:EX",
		IdentityProvider: "idir",
		LastLoginAt:      second,
	}))

	u, err := st.Users().GetUser(ctx, "ABC123")
	require.NoError(t, err)
	require.Equal(t, "Doe, Jane CITZ:EX", u.DisplayName)
	require.Equal(t, first, u.FirstSeenAt)
	require.Equal(t, second, u.LastLoginAt)
}

func TestActivity(t *testing.T) {
	st := newTestStore(t)
	ctx := t.Context()
	base := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

	require.NoError(t, st.Users().UpsertUser(ctx, domain.User{GUID: "u1", Username: "alice", LastLoginAt: base}))

	records := []domain.Activity{
		{ID: "01", Event: domain.EventLogin, UserGUID: "u1", IdentityProvider: "idir", OccurredAt: base},
		{ID: "02", Event: domain.EventLogout, UserGUID: "u1", SessionID: "s1", OccurredAt: base.Add(time.Hour)},
		{ID: "03", Event: domain.EventLogin, UserGUID: "u2", OccurredAt: base.Add(2 * time.Hour)},
	}
	for _, a := range records {
		require.NoError(t, st.Activity().RecordActivity(ctx, a))
	}

	t.Run("newest first", func(t *testing.T) {
		got, err := st.Activity().ListRecentActivity(ctx, "", 10)
		require.NoError(t, err)
		require.Len(t, got, 3)
		require.Equal(t, "03", got[0].ID)
		require.Equal(t, "", got[0].Username)
		require.Equal(t, "01", got[2].ID)
		require.Equal(t, "alice", got[2].Username)
		require.Equal(t, base, got[2].OccurredAt)
	})

	t.Run("filter by user and limit", func(t *testing.T) {
		got, err := st.Activity().ListRecentActivity(ctx, "u1", 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "02", got[0].ID)
		require.Equal(t, domain.EventLogout, got[0].Event)
		require.Equal(t, "s1", got[0].SessionID)
	})

	t.Run("delete before cutoff", func(t *testing.T) {
		n, err := st.Activity().DeleteActivityBefore(ctx, base.Add(90*time.Minute))
		require.NoError(t, err)
		require.EqualValues(t, 2, n)

		got, err := st.Activity().ListRecentActivity(ctx, "", 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
	})
}

func TestWithTxRollsBack(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := st.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Users().UpsertUser(ctx, domain.User{GUID: "u1", LastLoginAt: time.Now()}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = st.Users().GetUser(ctx, "u1")
	require.ErrorIs(t, err, store.ErrNotFound)
}
