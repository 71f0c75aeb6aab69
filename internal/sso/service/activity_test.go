package service_test

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/sso/internal/sso/domain"
	"github.com/aussiebroadwan/sso/internal/sso/service"
	"github.com/aussiebroadwan/sso/internal/sso/store/drivers/sqlite"
	"github.com/aussiebroadwan/sso/pkg/ssox"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "sso.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	return st
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func testUser() *ssox.User {
	return &ssox.User{
		GUID:             "ABC123",
		Username:         "JDOE",
		DisplayName:      "Doe, Jane",
		IdentityProvider: "idir",
		OriginalData:     &ssox.OriginalUser{SessionID: "sess-1"},
	}
}

func TestActivityService(t *testing.T) {
	st := newStore(t)
	login := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	svc := &service.ActivityService{Store: st, Now: fixedClock(login)}
	ctx := t.Context()

	require.NoError(t, svc.RecordLogin(ctx, testUser()))

	profile, err := svc.Profile(ctx, "ABC123")
	require.NoError(t, err)
	require.Equal(t, "JDOE", profile.Username)
	require.Equal(t, login, profile.LastLoginAt)

	svc.Now = fixedClock(login.Add(time.Hour))
	require.NoError(t, svc.RecordLogout(ctx, testUser()))

	got, err := svc.ListRecent(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, domain.EventLogout, got[0].Event)
	require.Equal(t, "sess-1", got[0].SessionID)
	require.Equal(t, "JDOE", got[0].Username)
	require.Equal(t, domain.EventLogin, got[1].Event)

	t.Run("nil user", func(t *testing.T) {
		require.ErrorIs(t, svc.RecordLogin(ctx, nil), service.ErrNoUser)
		require.ErrorIs(t, svc.RecordLogout(ctx, &ssox.User{}), service.ErrNoUser)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		got, err := svc.ListRecent(ctx, "ABC123", service.MaxActivityLimit+1)
		require.NoError(t, err)
		require.Len(t, got, 2)
	})
}

func TestHousekeepingCleanup(t *testing.T) {
	st := newStore(t)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	ctx := t.Context()

	old := &service.ActivityService{Store: st, Now: fixedClock(now.Add(-48 * time.Hour))}
	recent := &service.ActivityService{Store: st, Now: fixedClock(now.Add(-time.Hour))}
	require.NoError(t, old.RecordLogout(ctx, testUser()))
	require.NoError(t, recent.RecordLogout(ctx, testUser()))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hk := service.NewHousekeepingService(st, logger, time.Hour, 24*time.Hour)
	hk.Now = fixedClock(now)

	require.EqualValues(t, 1, hk.Cleanup(ctx))

	left, err := recent.ListRecent(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, left, 1)
}

func TestHousekeepingStartStop(t *testing.T) {
	st := newStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	hk := service.NewHousekeepingService(st, logger, 0, 0)
	require.Equal(t, time.Hour, hk.Interval)
	require.Equal(t, 30*24*time.Hour, hk.Retention)

	hk.Start()
	hk.Stop()
}
