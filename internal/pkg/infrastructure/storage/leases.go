package storage

import (
	"context"
	"errors"
	"time"

	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/pkg/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AcquireLease attempts to claim the named lock for the given duration.
// At most one live lease exists per lock id; the primary key on the leases
// table makes the insert-if-absent atomic, so two instances racing for the
// same lock resolve to exactly one holder. A stale lease (expiry in the past)
// is reclaimed by deleting it and retrying the insert once. Losing either
// race reports not-held without error.
func (s *Storage) AcquireLease(ctx context.Context, lockID string, duration time.Duration) (types.Lease, bool, error) {
	now := time.Now().UTC()

	lease := types.Lease{
		LockID:      lockID,
		HolderToken: uuid.NewString(),
		AcquiredAt:  now,
		ExpiresAt:   now.Add(duration),
	}

	acquired, err := s.insertLease(ctx, lease)
	if err != nil {
		return types.Lease{}, false, err
	}
	if acquired {
		return lease, true, nil
	}

	// The delete is guarded by the expiry check, so a live holder is never evicted.
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM leases
		WHERE lock_id = @lock_id AND expires_at <= @now
	`, pgx.NamedArgs{
		"lock_id": lockID,
		"now":     now,
	})
	if err != nil {
		return types.Lease{}, false, err
	}

	if tag.RowsAffected() == 0 {
		return types.Lease{}, false, nil
	}

	acquired, err = s.insertLease(ctx, lease)
	if err != nil {
		return types.Lease{}, false, err
	}
	if !acquired {
		return types.Lease{}, false, nil
	}

	return lease, true, nil
}

func (s *Storage) insertLease(ctx context.Context, lease types.Lease) (bool, error) {
	args := pgx.NamedArgs{
		"lock_id":      lease.LockID,
		"holder_token": lease.HolderToken,
		"acquired_at":  lease.AcquiredAt,
		"expires_at":   lease.ExpiresAt,
	}

	tag, err := s.pool.Exec(ctx, `
		INSERT INTO leases (lock_id, holder_token, acquired_at, expires_at)
		VALUES (@lock_id, @holder_token, @acquired_at, @expires_at)
		ON CONFLICT (lock_id) DO NOTHING
	`, args)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

// ReleaseLease deletes the lease row. The holder token guards against a
// holder that overran its expiry deleting a successor's lease.
func (s *Storage) ReleaseLease(ctx context.Context, lockID, holderToken string) error {
	_, err := s.pool.Exec(ctx, `
		DELETE FROM leases
		WHERE lock_id = @lock_id AND holder_token = @holder_token
	`, pgx.NamedArgs{
		"lock_id":      lockID,
		"holder_token": holderToken,
	})

	return err
}

func (s *Storage) GetLease(ctx context.Context, lockID string) (types.Lease, error) {
	var lease types.Lease

	err := s.pool.QueryRow(ctx, `
		SELECT lock_id, holder_token, acquired_at, expires_at
		FROM leases
		WHERE lock_id = @lock_id
	`, pgx.NamedArgs{
		"lock_id": lockID,
	}).Scan(&lease.LockID, &lease.HolderToken, &lease.AcquiredAt, &lease.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Lease{}, ErrNoRows
		}
		return types.Lease{}, err
	}

	return lease, nil
}
