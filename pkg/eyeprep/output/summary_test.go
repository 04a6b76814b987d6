package output

import (
	"math"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/models"
)

func TestSummarize(t *testing.T) {
	summaries := Summarize(processedDataset(), nil)

	require.Len(t, summaries, 2)

	gender := summaries[0]
	assert.Equal(t, models.ColumnCategorical, gender.Type)
	assert.Equal(t, 2, gender.Unique)
	assert.Equal(t, "Male", gender.MostCommon)
	assert.Zero(t, gender.Missing)

	age := summaries[1]
	assert.Equal(t, models.ColumnNumeric, age.Type)
	assert.Equal(t, 1.5, age.Min)
	assert.Equal(t, 23.0, age.Max)
	assert.InDelta(t, 12.25, age.Mean, 1e-12)
	assert.Equal(t, 12.25, age.Median)
	assert.InDelta(t, 10.75, age.Std, 1e-12)
}

func TestSummarizeEdgeCases(t *testing.T) {
	t.Run("Should give a single value no spread", func(t *testing.T) {
		ds := &models.Dataset{Columns: []string{"x"}, Rows: [][]models.Cell{{models.Number(3)}}}

		s := Summarize(ds, nil)[0]

		assert.Equal(t, models.ColumnNumeric, s.Type)
		assert.True(t, math.IsNaN(s.Std))
	})

	t.Run("Should pick the smallest value on ties", func(t *testing.T) {
		ds := &models.Dataset{
			Columns: []string{"g"},
			Rows:    [][]models.Cell{{models.Text("b")}, {models.Text("a")}, {models.Text("")}},
		}

		s := Summarize(ds, nil)[0]

		assert.Equal(t, "a", s.MostCommon)
		assert.Equal(t, 1, s.Missing)
		assert.Equal(t, 3, s.Unique)
	})

	t.Run("Should report no mode for an empty column", func(t *testing.T) {
		ds := &models.Dataset{Columns: []string{"g"}}

		s := Summarize(ds, nil)[0]

		assert.Equal(t, models.ColumnCategorical, s.Type)
		assert.Equal(t, NoMode, s.MostCommon)
	})
}

func TestSummarizeNumericRoles(t *testing.T) {
	t.Run("Should keep an empty numeric column numeric", func(t *testing.T) {
		ds := models.NewDataset([]string{"Gender", "Age"}, nil)

		summaries := Summarize(ds, []string{"Age"})

		require.Len(t, summaries, 2)
		assert.Equal(t, models.ColumnCategorical, summaries[0].Type)
		age := summaries[1]
		assert.Equal(t, models.ColumnNumeric, age.Type)
		assert.Zero(t, age.Missing)
		assert.True(t, math.IsNaN(age.Mean))
		assert.True(t, math.IsNaN(age.Median))
	})

	t.Run("Should write an empty numeric column with blank statistics", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		ds := models.NewDataset([]string{"Age"}, nil)

		require.NoError(t, WriteSummary(fs, "/s.csv", Summarize(ds, []string{"Age"})))

		data, err := afero.ReadFile(fs, "/s.csv")
		require.NoError(t, err)
		assert.Equal(t, "Column,Type,Missing,Min,Max,Mean,Median,Std,Unique Values,Most Common\nAge,Numeric,0,,,,,,,\n", string(data))
	})
}

func TestWriteSummary(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, WriteSummary(fs, "sum.csv", []models.ColumnSummary{
		{Column: "Gender", Type: models.ColumnCategorical, Unique: 2, MostCommon: "Male"},
		{Column: "Age", Type: models.ColumnNumeric, Min: 1, Max: 3, Mean: 2, Median: 2, Std: math.NaN()},
	}))

	data, err := afero.ReadFile(fs, "sum.csv")
	require.NoError(t, err)
	assert.Equal(t,
		"Column,Type,Missing,Min,Max,Mean,Median,Std,Unique Values,Most Common\n"+
			"Gender,Categorical,0,,,,,,2,Male\n"+
			"Age,Numeric,0,1,3,2,2,,,\n",
		string(data))
}
