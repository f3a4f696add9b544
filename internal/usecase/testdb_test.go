package usecase

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The repository layer is mocked in these tests, so the gorm handle only has
// to hand out transactions. A driver that supports Begin, Commit and Rollback
// and nothing else is enough for that.
type txOnlyDriver struct{}

func (txOnlyDriver) Open(string) (driver.Conn, error) { return txOnlyConn{}, nil }

type txOnlyConn struct{}

func (txOnlyConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("statements not supported")
}
func (txOnlyConn) Close() error              { return nil }
func (txOnlyConn) Begin() (driver.Tx, error) { return txOnlyTx{}, nil }

type txOnlyTx struct{}

func (txOnlyTx) Commit() error   { return nil }
func (txOnlyTx) Rollback() error { return nil }

var registerTxOnlyDriver sync.Once

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	registerTxOnlyDriver.Do(func() {
		sql.Register("txonly", txOnlyDriver{})
	})

	sqlDB, err := sql.Open("txonly", "")
	if err != nil {
		t.Fatalf("failed to open txonly database: %v", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Discard,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	return db
}
