package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/m04kA/kinetic-booking/pkg/dbmetrics"
	"github.com/m04kA/kinetic-booking/pkg/psqlbuilder"
)

//go:embed postgres/*.sql sqlite3/*.sql
var files embed.FS

// ErrUnsupportedDriver возвращается для драйвера без каталога миграций
var ErrUnsupportedDriver = errors.New("migrations: unsupported driver")

const versionsTable = "schema_migrations"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Up применяет еще не примененные миграции драйвера в порядке имен файлов
// и возвращает имена примененных файлов.
func Up(ctx context.Context, db dbmetrics.DBExecutor, driver string, log Logger) ([]string, error) {
	names, err := fs.Glob(files, path.Join(driver, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
	sort.Strings(names)

	if _, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS `+versionsTable+` (version TEXT PRIMARY KEY)`); err != nil {
		return nil, fmt.Errorf("create %s: %w", versionsTable, err)
	}

	builder := psqlbuilder.ForDriver(driver)
	var applied []string

	for _, name := range names {
		version := strings.TrimSuffix(path.Base(name), ".sql")

		query, args, err := builder.Select("COUNT(*)").From(versionsTable).Where("version = ?", version).ToSql()
		if err != nil {
			return applied, fmt.Errorf("build version query: %w", err)
		}

		var count int
		if err := db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
			return applied, fmt.Errorf("check %s: %w", version, err)
		}
		if count > 0 {
			continue
		}

		body, err := files.ReadFile(name)
		if err != nil {
			return applied, err
		}
		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return applied, fmt.Errorf("apply %s: %w", version, err)
		}

		query, args, err = builder.Insert(versionsTable).Columns("version").Values(version).ToSql()
		if err != nil {
			return applied, fmt.Errorf("build version insert: %w", err)
		}
		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return applied, fmt.Errorf("record %s: %w", version, err)
		}

		log.Info("Migrations: applied %s (%s)", version, driver)
		applied = append(applied, version)
	}

	return applied, nil
}
