package opportunity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

// PurgeArchivedBefore physically removes every opportunity archived before
// threshold. Each removal runs in its own transaction and leaves a destroy
// revision. An opportunity restored or archived again after it was listed is
// skipped. It returns the number of purged opportunities; on error the count
// covers what was purged before the failure.
func (s *Service) PurgeArchivedBefore(ctx context.Context, threshold time.Time) (int, error) {
	purged, skipped := 0, 0
	for {
		ids, err := s.opportunities.ListArchivedBefore(ctx, threshold, purgeBatchSize)
		if err != nil {
			return purged, fmt.Errorf("list archived opportunities: %w", err)
		}
		if len(ids) == 0 {
			break
		}

		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return purged, err
			}
			err := s.purgeOne(ctx, id, threshold)
			switch {
			case errors.Is(err, domain.ErrConflict):
				skipped++
				s.log.InfoContext(ctx, "opportunity no longer due for purge",
					slog.String("opportunity_id", id.String()),
				)
			case errors.Is(err, domain.ErrNotFound):
				skipped++
			case err != nil:
				return purged, err
			default:
				purged++
			}
		}

		if len(ids) < purgeBatchSize {
			break
		}
	}

	s.log.InfoContext(ctx, "archived opportunities purged",
		slog.Int("purged", purged),
		slog.Int("skipped", skipped),
		slog.Time("threshold", threshold),
	)
	return purged, nil
}

func (s *Service) purgeOne(ctx context.Context, id uuid.UUID, threshold time.Time) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.opportunities.Purge(txCtx, id, threshold); err != nil {
			return fmt.Errorf("purge opportunity %s: %w", id, err)
		}
		return nil
	})
}
