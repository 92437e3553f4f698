package postgresql

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frolovkirill/pdf2office/internal/domain"
)

const TableConversions = "conversions"

type ConversionsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewConversionsRepository(pool *pgxpool.Pool) *ConversionsRepository {
	return &ConversionsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts the record with status processing. The id is assigned here,
// before any asynchronous work starts, and stays stable for the record's
// lifetime.
func (r *ConversionsRepository) Create(ctx context.Context, ownerID, originalName, originalType string, format domain.Format) (*domain.ConversionRecord, error) {
	rec := &domain.ConversionRecord{
		ID:           uuid.NewString(),
		OwnerID:      ownerID,
		OriginalName: originalName,
		OriginalType: originalType,
		TargetFormat: format,
		Status:       domain.StatusProcessing,
		CreatedAt:    time.Now().UTC(),
	}

	sql, args, err := r.qb.
		Insert(TableConversions).
		Columns(
			"id",
			"owner_id",
			"original_name",
			"original_type",
			"target_format",
			"status",
			"created_at",
		).
		Values(
			rec.ID,
			rec.OwnerID,
			rec.OriginalName,
			rec.OriginalType,
			rec.TargetFormat,
			rec.Status,
			rec.CreatedAt,
		).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	_, err = r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	return rec, nil
}

// UpdateStatus lands a terminal status. The WHERE clause enforces the
// monotonic lifecycle: rows that already reached a terminal state are never
// touched again.
func (r *ConversionsRepository) UpdateStatus(ctx context.Context, id string, status domain.Status, locator string) error {
	sql, args, err := r.qb.
		Update(TableConversions).
		Set("status", status).
		Set("download_locator", locator).
		Where(sq.Eq{
			"id":     id,
			"status": domain.StatusProcessing,
		}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (r *ConversionsRepository) Record(ctx context.Context, id string) (*domain.ConversionRecord, error) {
	sql, args, err := r.selectRecords().
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	rec, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.ConversionRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, collectRowsError(err)
	}

	return rec, nil
}

// Query returns the owner's records newest first.
func (r *ConversionsRepository) Query(ctx context.Context, ownerID string) ([]*domain.ConversionRecord, error) {
	sql, args, err := r.selectRecords().
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.ConversionRecord])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return records, nil
}

func (r *ConversionsRepository) selectRecords() sq.SelectBuilder {
	return r.qb.
		Select(
			"id",
			"owner_id",
			"original_name",
			"original_type",
			"target_format",
			"status",
			"COALESCE(download_locator, '') AS download_locator",
			"created_at",
		).
		From(TableConversions)
}
