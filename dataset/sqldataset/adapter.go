/*
Package sqldataset provides functions to read datasets from and write them
to tables on SQL databases. Database specifics are encapsulated by
implementations of the Adapter interface on its subpackages.
*/
package sqldataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

/*
Adapter is an interface providing the methods needed to store rows on a
database backend.
*/
type Adapter interface {
	// DB returns the connection to the database
	DB() *sqlx.DB
	// ColumnName takes a feature or label name and returns the name of
	// the column holding its values, or an error if the name cannot be
	// used as a column
	ColumnName(string) (string, error)
	// CreateSampleTable creates the table with the given name to hold rows
	// whose feature values are held in the given columns and whose label
	// value is held in labelColumn, unless it exists already
	CreateSampleTable(ctx context.Context, table string, featureColumns []string, labelColumn string) error
	Close() error
}

/*
ColumnName checks that name can be used as identifier on a SQL statement and
returns it. It is provided for Adapter implementations.
*/
func ColumnName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty names cannot be used as column names")
	}
	if name == "id" {
		return "", fmt.Errorf(`'%s' is reserved and cannot be used as feature name`, name)
	}
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`name '%s' contains invalid character '"'`, name)
	}
	return name, nil
}

// Quote returns the identifier double-quoted for use on statements
func Quote(identifier string) string {
	return `"` + identifier + `"`
}
