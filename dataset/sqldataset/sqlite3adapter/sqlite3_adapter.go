/*
Package sqlite3adapter provides an implementation of the Adapter interface
in the sqldataset package that works over a SQLite3 database.
*/
package sqlite3adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pbanos/bonsai/dataset/sqldataset"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

type adapter struct {
	db *sqlx.DB
}

/*
New takes a path to a SQLite3 database file and returns an Adapter that
works on the database or an error if it fails to open it.
*/
func New(path string) (sqldataset.Adapter, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return &adapter{db}, nil
}

func (a *adapter) DB() *sqlx.DB {
	return a.db
}

func (a *adapter) ColumnName(name string) (string, error) {
	return sqldataset.ColumnName(name)
}

func (a *adapter) CreateSampleTable(ctx context.Context, table string, featureColumns []string, labelColumn string) error {
	var columns []string
	columns = append(columns, "id INTEGER PRIMARY KEY AUTOINCREMENT")
	for _, c := range featureColumns {
		columns = append(columns, fmt.Sprintf("%s REAL NOT NULL", sqldataset.Quote(c)))
	}
	columns = append(columns, fmt.Sprintf("%s TEXT NOT NULL", sqldataset.Quote(labelColumn)))
	stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s(%s)", sqldataset.Quote(table), strings.Join(columns, ", "))
	if _, err := a.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("running %s creation statement: %v", table, err)
	}
	return nil
}

func (a *adapter) Close() error {
	return a.db.Close()
}
