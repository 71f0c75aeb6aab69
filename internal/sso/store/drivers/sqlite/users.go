package sqlite

import (
	"context"

	"github.com/aussiebroadwan/sso/internal/sso/domain"
)

type usersRepo struct {
	q querier
}

const upsertUser = `
INSERT INTO users (guid, username, display_name, email, identity_provider, first_seen_at, last_login_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (guid) DO UPDATE SET
    username          = excluded.username,
    display_name      = excluded.display_name,
    email             = excluded.email,
    identity_provider = excluded.identity_provider,
    last_login_at     = excluded.last_login_at`

func (r *usersRepo) UpsertUser(ctx context.Context, u domain.User) error {
	firstSeen := u.FirstSeenAt
	if firstSeen.IsZero() {
		firstSeen = u.LastLoginAt
	}
	_, err := r.q.ExecContext(ctx, upsertUser,
		u.GUID,
		u.Username,
		u.DisplayName,
		u.Email,
		u.IdentityProvider,
		toMillis(firstSeen),
		toMillis(u.LastLoginAt),
	)
	return err
}

const getUser = `
SELECT guid, username, display_name, email, identity_provider, first_seen_at, last_login_at
FROM users WHERE guid = ?`

func (r *usersRepo) GetUser(ctx context.Context, guid string) (domain.User, error) {
	var (
		u                  domain.User
		firstSeen, lastLog int64
	)
	err := r.q.QueryRowContext(ctx, getUser, guid).Scan(
		&u.GUID,
		&u.Username,
		&u.DisplayName,
		&u.Email,
		&u.IdentityProvider,
		&firstSeen,
		&lastLog,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.FirstSeenAt = fromMillis(firstSeen)
	u.LastLoginAt = fromMillis(lastLog)
	return u, nil
}
