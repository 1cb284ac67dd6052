package dbtest

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"
)

// EnvDSN переменная окружения с DSN тестовой базы. Без неё интеграционные
// тесты пропускаются.
const EnvDSN = "PG_TEST_DSN"

// Connect открывает соединение с тестовой базой или пропускает тест.
func Connect(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		t.Skipf("%s is not set", EnvDSN)
	}

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		t.Fatalf("sqlx.Connect: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// MigrateFromFS executes all SQL queries from the files over a database
// connection. Only "up" files are applied, in the order given.
func MigrateFromFS(db *sqlx.DB, fsys fs.FS, fileNames ...string) error {
	for _, fileName := range fileNames {
		if strings.HasSuffix(fileName, ".down.sql") {
			continue
		}

		fileBytes, err := fs.ReadFile(fsys, fileName)
		if err != nil {
			return fmt.Errorf("fs.ReadFile: %w", err)
		}

		if _, err = db.Exec(string(fileBytes)); err != nil {
			return fmt.Errorf("db.Exec(%s): %w", fileName, err)
		}
	}

	return nil
}

// Truncate очищает таблицы между тестами.
func Truncate(db *sqlx.DB, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}

	if _, err := db.Exec("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE"); err != nil {
		return fmt.Errorf("db.Exec: %w", err)
	}

	return nil
}
