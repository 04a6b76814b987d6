package parser

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/models"
)

func TestReadCSV(t *testing.T) {
	t.Run("Should read a semicolon file into text cells", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/data/export.csv",
			[]byte("\ufeffGender ; Age\n F ;23\nMale;1,5\n"), 0o644))

		ds, err := ReadCSV(fs, "/data/export.csv", 0)

		require.NoError(t, err)
		assert.Equal(t, "export.csv", ds.Name)
		assert.Equal(t, []string{"Gender ", " Age"}, ds.Columns)
		assert.Equal(t, [][]models.Cell{
			{models.Text(" F "), models.Text("23")},
			{models.Text("Male"), models.Text("1,5")},
		}, ds.Rows)
	})

	t.Run("Should split .tsv files on tabs by default", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/data/export.tsv", []byte("Gender\tAge\nF\t1;5\n"), 0o644))

		ds, err := ReadCSV(fs, "/data/export.tsv", 0)

		require.NoError(t, err)
		assert.Equal(t, []string{"Gender", "Age"}, ds.Columns)
		assert.Equal(t, []models.Cell{models.Text("F"), models.Text("1;5")}, ds.Rows[0])
	})

	t.Run("Should honor a custom delimiter", func(t *testing.T) {
		ds, err := DecodeCSV(strings.NewReader("a,b\n1,2\n"), ',')

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ds.Columns)
		assert.Equal(t, 1, ds.Len())
	})

	t.Run("Should reject an empty file", func(t *testing.T) {
		_, err := DecodeCSV(strings.NewReader(""), ';')
		assert.ErrorIs(t, err, ErrNoHeader)
	})

	t.Run("Should reject ragged rows", func(t *testing.T) {
		_, err := DecodeCSV(strings.NewReader("a;b\n1\n"), ';')

		var parseErr *csv.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("Should fail on a missing file", func(t *testing.T) {
		_, err := ReadCSV(afero.NewMemMapFs(), "/nope.csv", ';')
		assert.Error(t, err)
	})
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		err      error
	}{
		{"a.csv", FormatCSV, nil},
		{"a.TXT", FormatCSV, nil},
		{"dir/a.xlsx", FormatXLSX, nil},
		{"a.xlsm", FormatXLSX, nil},
		{"a.json", "", ErrUnsupportedFormat},
		{"noext", "", ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		got, err := DetectFormat(tt.path)
		assert.Equal(t, tt.expected, got, "path %q", tt.path)
		assert.ErrorIs(t, err, tt.err, "path %q", tt.path)
	}
}

func TestRead(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.csv", []byte("Gender;Age\nF;1\n"), 0o644))

	ds, err := Read(fs, "in.csv", Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Gender", "Age"}, ds.Columns)

	_, err = Read(fs, "in.parquet", Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDelimiterFor(t *testing.T) {
	assert.Equal(t, TabDelimiter, DelimiterFor("a/b.tsv"))
	assert.Equal(t, TabDelimiter, DelimiterFor("B.TSV"))
	assert.Equal(t, DefaultDelimiter, DelimiterFor("b.csv"))
	assert.Equal(t, DefaultDelimiter, DelimiterFor("b.txt"))
}
