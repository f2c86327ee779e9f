/*
Package csv reads and writes datasets as CSV streams whose header names the
features and the label described by the metadata.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/feature"
	"go.uber.org/zap"
)

/*
Reader parses datasets from CSV streams.

The header or first row of the CSV content is expected to include the names
of the features and the label in the metadata, in any order; other columns
are ignored. When SkipInvalid is set, rows with a missing, non-numeric or
non-finite feature value or an unknown label value are skipped (and logged)
instead of failing the whole read.
*/
type Reader struct {
	Metadata    *feature.Metadata
	SkipInvalid bool
	Logger      *zap.Logger
}

/*
Read takes an io.Reader for a CSV stream and returns the dataset parsed from
it or an error.
*/
func (r *Reader) Read(reader io.Reader) (*dataset.Dataset, error) {
	if err := r.Metadata.Validate(); err != nil {
		return nil, err
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	records, err := gocsv.CSVToMaps(reader)
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %v", err)
	}
	columns := []string{r.Metadata.Features[0].Name(), r.Metadata.Features[1].Name(), r.Metadata.Label.Name()}
	if len(records) > 0 {
		for _, c := range columns {
			if _, ok := records[0][c]; !ok {
				return nil, fmt.Errorf("reading header: missing column %s", c)
			}
		}
	}
	rows := make([]dataset.Row, 0, len(records))
	for i, record := range records {
		row, err := dataset.ParseRow(r.Metadata, record[columns[0]], record[columns[1]], record[columns[2]])
		if err != nil {
			// the header is line 1
			if r.SkipInvalid {
				logger.Warn("skipping invalid CSV row", zap.Int("line", i+2), zap.Error(err))
				continue
			}
			return nil, fmt.Errorf("parsing line %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	logger.Debug("read CSV dataset", zap.Int("rows", len(rows)), zap.Int("skipped", len(records)-len(rows)))
	return dataset.New(rows), nil
}

/*
ReadFile takes a filepath string, opens the file to which it points to and
uses Read to return the dataset parsed from it or an error. If the filepath
is "" os.Stdin is read instead.
*/
func (r *Reader) ReadFile(filepath string) (*dataset.Dataset, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %v", err)
		}
		defer f.Close()
	}
	s, err := r.Read(f)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return s, err
}

/*
Write takes an io.Writer, the metadata and a dataset and writes the dataset
onto the io.Writer as CSV, with a header row naming the features and label,
or returns an error.
*/
func Write(writer io.Writer, md *feature.Metadata, s *dataset.Dataset) error {
	if err := md.Validate(); err != nil {
		return err
	}
	w := gocsv.NewSafeCSVWriter(csv.NewWriter(writer))
	header := []string{md.Features[0].Name(), md.Features[1].Name(), md.Label.Name()}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %v", err)
	}
	for i, r := range s.Rows() {
		record := []string{
			strconv.FormatFloat(r.Point[0], 'g', -1, 64),
			strconv.FormatFloat(r.Point[1], 'g', -1, 64),
			md.Label.Format(r.Passed),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing CSV row for sample %d: %v", i+1, err)
		}
	}
	w.Flush()
	return w.Error()
}
