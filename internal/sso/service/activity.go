package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/sso/internal/sso/domain"
	"github.com/aussiebroadwan/sso/internal/sso/store"
	"github.com/aussiebroadwan/sso/pkg/idx"
	"github.com/aussiebroadwan/sso/pkg/ssox"
)

const (
	DefaultActivityLimit = 50
	MaxActivityLimit     = 500
)

var ErrNoUser = errors.New("service: no user")

// ActivityService records logins and logouts and answers questions about them.
// RecordLogin and RecordLogout have the signature of the route handler hooks.
type ActivityService struct {
	Store store.Store

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *ActivityService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// RecordLogin upserts the user's profile and appends a login record.
func (s *ActivityService) RecordLogin(ctx context.Context, u *ssox.User) error {
	if u == nil || u.GUID == "" {
		return ErrNoUser
	}
	at := s.now()

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpsertUser(ctx, domain.User{
			GUID:             u.GUID,
			Username:         u.Username,
			DisplayName:      u.DisplayName,
			Email:            u.Email,
			IdentityProvider: u.IdentityProvider,
			LastLoginAt:      at,
		}); err != nil {
			return err
		}
		return tx.Activity().RecordActivity(ctx, newActivity(domain.EventLogin, u, at))
	})
	if err != nil {
		return fmt.Errorf("record login: %w", err)
	}
	return nil
}

// RecordLogout appends a logout record.
func (s *ActivityService) RecordLogout(ctx context.Context, u *ssox.User) error {
	if u == nil || u.GUID == "" {
		return ErrNoUser
	}
	if err := s.Store.Activity().RecordActivity(ctx, newActivity(domain.EventLogout, u, s.now())); err != nil {
		return fmt.Errorf("record logout: %w", err)
	}
	return nil
}

// ListRecent returns the newest activity, optionally for one user. limit is
// clamped to [1, MaxActivityLimit]; zero means DefaultActivityLimit.
func (s *ActivityService) ListRecent(ctx context.Context, userGUID string, limit int) ([]domain.Activity, error) {
	switch {
	case limit <= 0:
		limit = DefaultActivityLimit
	case limit > MaxActivityLimit:
		limit = MaxActivityLimit
	}
	return s.Store.Activity().ListRecentActivity(ctx, userGUID, limit)
}

// Profile returns what the service has recorded about a user.
func (s *ActivityService) Profile(ctx context.Context, guid string) (domain.User, error) {
	return s.Store.Users().GetUser(ctx, guid)
}

func newActivity(event domain.ActivityEvent, u *ssox.User, at time.Time) domain.Activity {
	a := domain.Activity{
		ID:               idx.NewAt(at).String(),
		Event:            event,
		UserGUID:         u.GUID,
		IdentityProvider: u.IdentityProvider,
		OccurredAt:       at,
	}
	if u.OriginalData != nil {
		a.SessionID = u.OriginalData.SessionID
	}
	return a
}
