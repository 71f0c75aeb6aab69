package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/sso/internal/sso/domain"
)

var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface. Concrete drivers implement it and
// expose sub-repositories so that transactions stay one level deep.
type Store interface {
	Users() Users
	Activity() Activity

	ApplyMigrations() error

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is the subset of Store available inside WithTx.
type Tx interface {
	Users() Users
	Activity() Activity
}

type Users interface {
	// UpsertUser inserts u or refreshes its profile fields and last_login_at.
	// FirstSeenAt is only written on insert.
	UpsertUser(ctx context.Context, u domain.User) error

	GetUser(ctx context.Context, guid string) (domain.User, error)
}

type Activity interface {
	RecordActivity(ctx context.Context, a domain.Activity) error

	// ListRecentActivity returns up to limit records, newest first. An empty
	// userGUID lists everyone.
	ListRecentActivity(ctx context.Context, userGUID string, limit int) ([]domain.Activity, error)

	// DeleteActivityBefore removes records older than cutoff and reports how
	// many were removed.
	DeleteActivityBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
