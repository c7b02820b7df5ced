package db

import (
	"context"

	"github.com/docuvault/docuvault/internal/identity/entity"
)

func (s *DB) GetActiveChallenge(ctx context.Context, mobileNumber string) (_ *entity.Challenge, err error) {
	ctx, span := s.startSpan(ctx, "GetActiveChallenge")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		SELECT id, mobile_number, code_hash, expires_at, attempts, verified, created_at
		FROM otp_challenges
		WHERE mobile_number = $1
		ORDER BY created_at DESC
		LIMIT 1`, mobileNumber)

	var ch entity.Challenge
	if err = row.Scan(&ch.ID, &ch.MobileNumber, &ch.CodeHash, &ch.ExpiresAt, &ch.Attempts, &ch.Verified, &ch.CreatedAt); err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return &ch, nil
}

func (s *DB) GetUserByID(ctx context.Context, id int64) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByID")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		SELECT id, mobile_number, name, email, role, last_login, created_at
		FROM users
		WHERE id = $1`, id)

	var u entity.User
	if err = row.Scan(&u.ID, &u.MobileNumber, &u.Name, &u.Email, &u.Role, &u.LastLogin, &u.CreatedAt); err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return &u, nil
}

func (s *DB) GetUserList(ctx context.Context, filter entity.UserListFilter) (_ []entity.User, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "GetUserList")
	defer func() { s.endSpan(span, err) }()

	var count int64
	if err = s.conn.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		err = s.mapError(err)
		return nil, 0, err
	}

	rows, err := s.conn.Query(ctx, `
		SELECT id, mobile_number, name, email, role, last_login, created_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, filter.Size, filter.Page)
	if err != nil {
		err = s.mapError(err)
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]entity.User, 0, filter.Size)
	for rows.Next() {
		var u entity.User
		if err = rows.Scan(&u.ID, &u.MobileNumber, &u.Name, &u.Email, &u.Role, &u.LastLogin, &u.CreatedAt); err != nil {
			err = s.mapError(err)
			return nil, 0, err
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		err = s.mapError(err)
		return nil, 0, err
	}

	return users, count, nil
}
