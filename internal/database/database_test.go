// internal/database/database_test.go
//
// Unit-tests for Migrate using sqlmock.

package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func TestMigrate_RunsInOrder(t *testing.T) {
	raw, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer raw.Close()
	db := sqlx.NewDb(raw, "mysql")

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS a (id INT)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS b (id INT)")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = Migrate(context.Background(), db, []string{
		"CREATE TABLE IF NOT EXISTS a (id INT)",
		"CREATE TABLE IF NOT EXISTS b (id INT)",
	})
	if err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestMigrate_StopsOnError(t *testing.T) {
	raw, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer raw.Close()
	db := sqlx.NewDb(raw, "mysql")

	boom := errors.New("boom")
	mock.ExpectExec("CREATE TABLE a").WillReturnError(boom)

	err = Migrate(context.Background(), db, []string{"CREATE TABLE a", "CREATE TABLE b"})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}
