package csv_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/dataset/csv"
	"github.com/pbanos/bonsai/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metadata() *feature.Metadata {
	return feature.NewMetadata("hours", "attendance", "passed")
}

func TestReader_Read(t *testing.T) {
	in := "attendance,id,hours,passed\n80,a,2.5,1\n95,b,7,true\n40,c,1,0\n"
	r := &csv.Reader{Metadata: metadata()}
	s, err := r.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []dataset.Row{
		dataset.NewRow(2.5, 80, true),
		dataset.NewRow(7, 95, true),
		dataset.NewRow(1, 40, false),
	}, s.Rows())
}

func TestReader_ReadMissingColumn(t *testing.T) {
	r := &csv.Reader{Metadata: metadata()}
	_, err := r.Read(strings.NewReader("hours,passed\n1,1\n"))
	assert.EqualError(t, err, "reading header: missing column attendance")
}

func TestReader_ReadInvalidRow(t *testing.T) {
	in := "hours,attendance,passed\n1,2,1\nx,3,0\n4,5,maybe\n6,7,0\n"
	r := &csv.Reader{Metadata: metadata()}
	_, err := r.Read(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing line 3")

	r.SkipInvalid = true
	s, err := r.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []dataset.Row{dataset.NewRow(1, 2, true), dataset.NewRow(6, 7, false)}, s.Rows())
}

func TestReader_ReadNonFinite(t *testing.T) {
	r := &csv.Reader{Metadata: metadata()}
	_, err := r.Read(strings.NewReader("hours,attendance,passed\nNaN,2,1\n"))
	assert.ErrorIs(t, err, dataset.ErrNonFinite)
}

func TestWrite(t *testing.T) {
	s := dataset.New([]dataset.Row{dataset.NewRow(1.5, 20, true), dataset.NewRow(3, 40, false)})
	var buf bytes.Buffer
	require.NoError(t, csv.Write(&buf, metadata(), s))
	assert.Equal(t, "hours,attendance,passed\n1.5,20,1\n3,40,0\n", buf.String())

	read, err := (&csv.Reader{Metadata: metadata()}).Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, s.Rows(), read.Rows())
}
