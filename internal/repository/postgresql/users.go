package postgresql

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frolovkirill/pdf2office/internal/domain"
)

const TableUsers = "users"

const uniqueViolationCode = "23505"

type UsersRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewUsersRepository(pool *pgxpool.Pool) *UsersRepository {
	return &UsersRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *UsersRepository) CreateUser(ctx context.Context, email, displayName string, passwordHash []byte) (*domain.User, error) {
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	sql, args, err := r.qb.
		Insert(TableUsers).
		Columns(
			"id",
			"email",
			"display_name",
			"password_hash",
			"created_at",
		).
		Values(
			user.ID,
			user.Email,
			user.DisplayName,
			user.PasswordHash,
			user.CreatedAt,
		).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	_, err = r.pool.Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, domain.ErrEmailTaken
		}
		return nil, executeQueryError(err)
	}

	return user, nil
}

func (r *UsersRepository) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	sql, args, err := r.selectUsers().
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, collectRowsError(err)
	}

	return user, nil
}

func (r *UsersRepository) UserByID(ctx context.Context, id string) (*domain.User, error) {
	sql, args, err := r.selectUsers().
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionExpired
		}
		return nil, collectRowsError(err)
	}

	return user, nil
}

func (r *UsersRepository) selectUsers() sq.SelectBuilder {
	return r.qb.
		Select(
			"id",
			"email",
			"display_name",
			"password_hash",
			"created_at",
		).
		From(TableUsers)
}
