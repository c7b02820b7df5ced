package db

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/docuvault/docuvault/internal/identity/entity"
)

const maxAttempts = 3

// ReplaceChallenge supersedes every outstanding challenge for the number and
// installs the new one in a single transaction, so at most one challenge is
// ever live.
func (s *DB) ReplaceChallenge(ctx context.Context, in entity.NewChallenge) (err error) {
	ctx, span := s.startSpan(ctx, "ReplaceChallenge")
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rolback", "error", rErr)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM otp_challenges WHERE mobile_number = $1`, in.MobileNumber); err != nil {
		err = s.mapError(err)
		return err
	}

	if _, err = tx.Exec(ctx, `
		INSERT INTO otp_challenges (id, mobile_number, code_hash, expires_at)
		VALUES ($1, $2, $3, $4)`,
		in.ID, in.MobileNumber, in.CodeHash, in.ExpiresAt); err != nil {
		err = s.mapError(err)
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		err = s.mapError(err)
		return err
	}

	return nil
}
