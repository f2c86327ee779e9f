package sqldataset

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/feature"
)

/*
MaxSampleInsertionsPerStatement is the maximum number of rows inserted with a
single statement by Write. Writing more rows results in more statements.
*/
const MaxSampleInsertionsPerStatement = 10

/*
Read takes a context, an Adapter, the metadata of the rows and the name of
the table holding them and returns the dataset with the rows on the table,
or an error.

The table is expected to have a column for each feature and the label, named
after them as the adapter's ColumnName dictates.
*/
func Read(ctx context.Context, a Adapter, md *feature.Metadata, table string) (*dataset.Dataset, error) {
	columns, err := columnsFor(a, md)
	if err != nil {
		return nil, err
	}
	tableName, err := a.ColumnName(table)
	if err != nil {
		return nil, fmt.Errorf("table: %v", err)
	}
	query := fmt.Sprintf("SELECT %s, %s, %s FROM %s", Quote(columns[0]), Quote(columns[1]), Quote(columns[2]), Quote(tableName))
	rows, err := a.DB().QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying rows from %s: %v", table, err)
	}
	defer rows.Close()
	var result []dataset.Row
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("scanning row %d from %s: %v", len(result)+1, table, err)
		}
		r, err := dataset.ParseRow(md, values[0], values[1], values[2])
		if err != nil {
			return nil, fmt.Errorf("parsing row %d from %s: %v", len(result)+1, table, err)
		}
		result = append(result, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating on rows from %s: %v", table, err)
	}
	return dataset.New(result), nil
}

/*
Write takes a context, an Adapter, the metadata of the rows, the name of a
table and a dataset and inserts the rows of the dataset into the table,
creating it if necessary. It returns the number of rows inserted and an
error if they could not all be inserted. Rows are inserted on a single
transaction.
*/
func Write(ctx context.Context, a Adapter, md *feature.Metadata, table string, s *dataset.Dataset) (int, error) {
	columns, err := columnsFor(a, md)
	if err != nil {
		return 0, err
	}
	tableName, err := a.ColumnName(table)
	if err != nil {
		return 0, fmt.Errorf("table: %v", err)
	}
	err = a.CreateSampleTable(ctx, tableName, columns[:feature.Count], columns[feature.Count])
	if err != nil {
		return 0, err
	}
	rows := s.Rows()
	if len(rows) == 0 {
		return 0, nil
	}
	tx, err := a.DB().BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %v", err)
	}
	var count int
	for start := 0; start < len(rows); start += MaxSampleInsertionsPerStatement {
		end := start + MaxSampleInsertionsPerStatement
		if end > len(rows) {
			end = len(rows)
		}
		stmt, args := insertStatement(tableName, columns, md, rows[start:end])
		_, err = tx.ExecContext(ctx, tx.Rebind(stmt), args...)
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("inserting rows %d to %d into %s: %v", start+1, end, table, err)
		}
		count += end - start
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing rows into %s: %v", table, err)
	}
	return count, nil
}

func columnsFor(a Adapter, md *feature.Metadata) ([]string, error) {
	if err := md.Validate(); err != nil {
		return nil, err
	}
	names := []string{md.Features[0].Name(), md.Features[1].Name(), md.Label.Name()}
	columns := make([]string, len(names))
	for i, n := range names {
		c, err := a.ColumnName(n)
		if err != nil {
			return nil, err
		}
		columns[i] = c
	}
	return columns, nil
}

func insertStatement(table string, columns []string, md *feature.Metadata, rows []dataset.Row) (string, []interface{}) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "INSERT INTO %s (%s, %s, %s) VALUES ", Quote(table), Quote(columns[0]), Quote(columns[1]), Quote(columns[2]))
	args := make([]interface{}, 0, len(rows)*len(columns))
	for i, r := range rows {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString("(?, ?, ?)")
		args = append(args, r.Point[0], r.Point[1], md.Label.Format(r.Passed))
	}
	return buf.String(), args
}
