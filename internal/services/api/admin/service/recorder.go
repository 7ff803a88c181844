package service

import (
	"context"
	"time"

	"marketflow/internal/platform/logger"
	"marketflow/internal/services/api/admin/domain"
	"marketflow/internal/services/api/admin/repo"
)

// recorder writes audit rows fire-and-forget
// the caller's mutation has already committed when Record runs, so ordering is
// action first, audit second; a lost audit row is logged and dropped, never
// retried
type recorder struct {
	repo    repo.Repo
	timeout time.Duration

	// done is signalled per completed write; nil outside tests
	done chan struct{}
}

func newRecorder(r repo.Repo) *recorder {
	return &recorder{repo: r, timeout: 5 * time.Second}
}

// Record dispatches the audit insert and returns without waiting on it
func (a *recorder) Record(_ context.Context, e domain.AuditEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()

		err := a.repo.InsertActivity(ctx, e.ActorID, string(e.Action), e.TargetType, e.TargetID, e.Details)
		if err != nil {
			logger.Named("audit").Warn().
				Err(err).
				Str("action", string(e.Action)).
				Str("target_type", e.TargetType).
				Str("target_id", e.TargetID).
				Msg("audit write dropped")
		}
		if a.done != nil {
			a.done <- struct{}{}
		}
	}()
}
