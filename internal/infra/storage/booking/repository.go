package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/kinetic-booking/internal/domain"
	"github.com/m04kA/kinetic-booking/pkg/psqlbuilder"
)

const bookingsTable = "bookings"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db      DBExecutor
	builder squirrel.StatementBuilderType
	now     func() time.Time
}

// NewRepository создает новый экземпляр репозитория; driver задает формат плейсхолдеров
func NewRepository(db DBExecutor, driver string) *Repository {
	return &Repository{
		db:      db,
		builder: psqlbuilder.ForDriver(driver),
		now:     time.Now,
	}
}

// Insert создает запись бронирования и возвращает ее с заполненными ID и CreatedAt
func (r *Repository) Insert(ctx context.Context, record *domain.BookingRecord) (*domain.BookingRecord, error) {
	if record == nil {
		return nil, fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	createdAt := r.now().UTC().Truncate(time.Microsecond)

	query, args, err := r.builder.Insert(bookingsTable).
		Columns(
			"name",
			"phone_number",
			"email",
			"work",
			"created_at",
		).
		Values(
			record.Name,
			record.PhoneNumber,
			record.Email,
			record.Work,
			createdAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	stored := *record
	stored.CreatedAt = createdAt

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&stored.ID); err != nil {
		return nil, fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	return &stored, nil
}

// ListRecent возвращает до limit последних бронирований, новые первыми
func (r *Repository) ListRecent(ctx context.Context, limit uint64) ([]domain.BookingRecord, error) {
	query, args, err := r.builder.
		Select("id", "name", "phone_number", "email", "work", "created_at").
		From(bookingsTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]domain.BookingRecord, 0, limit)
	for rows.Next() {
		var rec domain.BookingRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.PhoneNumber, &rec.Email, &rec.Work, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListRecent - scan row: %v", ErrScanRow, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecent - iterate rows: %v", ErrExecQuery, err)
	}

	return records, nil
}
