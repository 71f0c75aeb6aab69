package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/sso/internal/sso/domain"
)

type activityRepo struct {
	q querier
}

const insertActivity = `
INSERT INTO user_activity (id, event, user_guid, identity_provider, session_id, occurred_at)
VALUES (?, ?, ?, ?, ?, ?)`

func (r *activityRepo) RecordActivity(ctx context.Context, a domain.Activity) error {
	_, err := r.q.ExecContext(ctx, insertActivity,
		a.ID,
		string(a.Event),
		a.UserGUID,
		a.IdentityProvider,
		a.SessionID,
		toMillis(a.OccurredAt),
	)
	return err
}

const listActivity = `
SELECT a.id, a.event, a.user_guid, COALESCE(u.username, ''), a.identity_provider, a.session_id, a.occurred_at
FROM user_activity a
LEFT JOIN users u ON u.guid = a.user_guid
WHERE (?1 = '' OR a.user_guid = ?1)
ORDER BY a.occurred_at DESC, a.id DESC
LIMIT ?2`

func (r *activityRepo) ListRecentActivity(ctx context.Context, userGUID string, limit int) ([]domain.Activity, error) {
	rows, err := r.q.QueryContext(ctx, listActivity, userGUID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Activity, 0, limit)
	for rows.Next() {
		var (
			a          domain.Activity
			event      string
			occurredAt int64
		)
		if err := rows.Scan(&a.ID, &event, &a.UserGUID, &a.Username, &a.IdentityProvider, &a.SessionID, &occurredAt); err != nil {
			return nil, err
		}
		a.Event = domain.ActivityEvent(event)
		a.OccurredAt = fromMillis(occurredAt)
		out = append(out, a)
	}
	return out, rows.Err()
}

const deleteActivityBefore = `DELETE FROM user_activity WHERE occurred_at < ?`

func (r *activityRepo) DeleteActivityBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx, deleteActivityBefore, toMillis(cutoff))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
