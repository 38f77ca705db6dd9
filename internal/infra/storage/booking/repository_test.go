package booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/kinetic-booking/internal/domain"
	"github.com/m04kA/kinetic-booking/internal/infra/storage/migrations"
	"github.com/m04kA/kinetic-booking/pkg/psqlbuilder"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := sql.Open(psqlbuilder.DriverSQLite, ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = migrations.Up(context.Background(), db, psqlbuilder.DriverSQLite, nopLogger{})
	require.NoError(t, err)

	return NewRepository(db, psqlbuilder.DriverSQLite)
}

func janeRecord() *domain.BookingRecord {
	return &domain.BookingRecord{
		Name:        "Jane Doe",
		PhoneNumber: 9876543210,
		Email:       "jane@x.com",
		Work:        "Booking: January 15, 2026 at 5:00 PM | Company: Acme",
	}
}

func TestRepository_Insert(t *testing.T) {
	repo := newTestRepository(t)
	now := time.Date(2026, time.January, 10, 9, 30, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	input := janeRecord()
	stored, err := repo.Insert(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stored.ID)
	assert.Equal(t, now, stored.CreatedAt)
	assert.Equal(t, input.Work, stored.Work)
	assert.Zero(t, input.ID, "input record is not mutated")

	second, err := repo.Insert(context.Background(), janeRecord())
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestRepository_Insert_NilRecord(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Insert(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestRepository_Insert_ExecError(t *testing.T) {
	db, err := sql.Open(psqlbuilder.DriverSQLite, ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	// без миграций таблицы нет
	repo := NewRepository(db, psqlbuilder.DriverSQLite)
	_, err = repo.Insert(context.Background(), janeRecord())
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_ListRecent(t *testing.T) {
	repo := newTestRepository(t)
	base := time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)

	for i, name := range []string{"Jane Doe", "John Roe", "Ann Poe"} {
		at := base.Add(time.Duration(i) * time.Hour)
		repo.now = func() time.Time { return at }

		rec := janeRecord()
		rec.Name = name
		_, err := repo.Insert(context.Background(), rec)
		require.NoError(t, err)
	}

	records, err := repo.ListRecent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Ann Poe", records[0].Name)
	assert.Equal(t, "John Roe", records[1].Name)
	assert.Equal(t, int64(9876543210), records[0].PhoneNumber)
	assert.True(t, records[0].CreatedAt.Equal(base.Add(2*time.Hour)))
}
