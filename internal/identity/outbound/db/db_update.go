package db

import (
	"context"

	"github.com/docuvault/docuvault/internal/pkg/goerror"
)

// IncrementChallengeAttempts bumps the attempt counter and returns the new
// value. The guard keeps the counter from moving on challenges that are
// already verified, locked, or expired; goerror.ErrNotFound signals the guard
// rejected the update.
func (s *DB) IncrementChallengeAttempts(ctx context.Context, id int64) (_ int16, err error) {
	ctx, span := s.startSpan(ctx, "IncrementChallengeAttempts")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		UPDATE otp_challenges
		SET attempts = attempts + 1
		WHERE id = $1 AND verified = FALSE AND attempts < $2 AND expires_at > now()
		RETURNING attempts`, id, maxAttempts)

	var attempts int16
	if err = row.Scan(&attempts); err != nil {
		err = s.mapError(err)
		return 0, err
	}

	return attempts, nil
}

// MarkChallengeVerified flips the challenge to verified with the same guard,
// so only one concurrent caller can win and a locked or expired challenge can
// never be consumed. goerror.ErrNotFound signals the guard rejected the flip.
func (s *DB) MarkChallengeVerified(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "MarkChallengeVerified")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE otp_challenges
		SET verified = TRUE
		WHERE id = $1 AND verified = FALSE AND attempts < $2 AND expires_at > now()`,
		id, maxAttempts)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}
