package db

import (
	"context"

	"github.com/docuvault/docuvault/internal/identity/entity"
)

func (s *DB) CreateUser(ctx context.Context, user entity.NewUser) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO users (id, mobile_number, name, email, role)
		VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.MobileNumber, user.Name, user.Email, user.Role)
	err = s.mapError(err)
	return err
}

// UpsertUserLogin provisions the account on first login and stamps last_login
// on every login. The insert and the stamp are one statement so concurrent
// logins for the same number cannot race a find-then-create.
func (s *DB) UpsertUserLogin(ctx context.Context, in entity.LoginUser) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "UpsertUserLogin")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		INSERT INTO users (id, mobile_number, name, role, last_login)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (mobile_number)
		DO UPDATE SET last_login = EXCLUDED.last_login
		RETURNING id, mobile_number, name, email, role, last_login, created_at`,
		in.ID, in.MobileNumber, in.Name, entity.RoleUser, in.LoginAt)

	var u entity.User
	if err = row.Scan(&u.ID, &u.MobileNumber, &u.Name, &u.Email, &u.Role, &u.LastLogin, &u.CreatedAt); err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return &u, nil
}
