package output

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/models"
	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/parser"
)

func processedDataset() *models.Dataset {
	return &models.Dataset{
		Columns: []string{"Gender", "Age"},
		Rows: [][]models.Cell{
			{models.Text("Female"), models.Number(23)},
			{models.Text("Male"), models.Number(1.5)},
			{models.Text("Male"), models.Number(12.25)},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, WriteCSV(fs, "/out/data.csv", processedDataset(), 0))

	data, err := afero.ReadFile(fs, "/out/data.csv")
	require.NoError(t, err)
	assert.Equal(t, "Gender;Age\nFemale;23\nMale;1.5\nMale;12.25\n", string(data))
}

func TestWriteXLSX(t *testing.T) {
	t.Run("Should round-trip through the workbook reader", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		ds := processedDataset()
		ds.Rows = append(ds.Rows, []models.Cell{models.Text("Male"), models.Missing()})

		require.NoError(t, WriteXLSX(fs, "/out/data.xlsx", ds, "Processed"))

		back, err := parser.ReadXLSX(fs, "/out/data.xlsx", "Processed")
		require.NoError(t, err)
		assert.Equal(t, ds.Columns, back.Columns)
		assert.Equal(t, [][]models.Cell{
			{models.Text("Female"), models.Text("23")},
			{models.Text("Male"), models.Text("1.5")},
			{models.Text("Male"), models.Text("12.25")},
			{models.Text("Male"), models.Text("")},
		}, back.Rows)
	})
}

func TestWrite(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, Write(fs, "a.csv", processedDataset(), ','))
	require.NoError(t, Write(fs, "a.xlsx", processedDataset(), ','))
	assert.ErrorIs(t, Write(fs, "a.json", processedDataset(), ','), parser.ErrUnsupportedFormat)

	data, err := afero.ReadFile(fs, "a.csv")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Gender,Age\n")

	exists, err := afero.Exists(fs, "a.xlsx")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "dir/export_PREPROCESSED.csv", ProcessedPath("dir/export.csv"))
	assert.Equal(t, "dir/export_PREPROCESSED.xlsx", ProcessedPath("dir/export.xlsx"))
	assert.Equal(t, "dir/export_summary.csv", SummaryPath("dir/export.csv"))
	assert.Equal(t, "dir/export_summary.csv", SummaryPath("dir/export.xlsx"))
	assert.Equal(t, "dir/"+ComparisonFile, ComparisonPath("dir/export.csv"))
}
