package main

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const export = "Gender;Group;Age;Score\n" +
	" F ;ASD;23;-1\n" +
	"Male;TD;1,5;2\n" +
	"m;ASD;;4\n"

func execute(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	var logs bytes.Buffer
	cmd := newRootCmd(fs, &logs)
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(&logs)
	cmd.SetErr(&logs)
	err := cmd.ExecuteContext(t.Context())
	return logs.String(), err
}

func TestRootCmd(t *testing.T) {
	t.Run("Should write the processed file and reports", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/data/web.csv", []byte(export), 0o644))

		logs, err := execute(t, fs, "/data/web.csv")
		require.NoError(t, err)

		data, err := afero.ReadFile(fs, "/data/web_PREPROCESSED.csv")
		require.NoError(t, err)
		assert.Equal(t,
			"Gender;Group;Age;Score\n"+
				"Female;ASD;23;3\n"+
				"Male;TD;1.5;2\n"+
				"Male;ASD;12.25;4\n",
			string(data))

		for _, p := range []string{"/data/web_PREPROCESSED_summary.csv", "/data/preprocessing_comparison.csv"} {
			exists, err := afero.Exists(fs, p)
			require.NoError(t, err)
			assert.True(t, exists, p)
		}
		assert.Contains(t, logs, "processing complete")
		assert.Contains(t, logs, "run=")
	})

	t.Run("Should apply flags over defaults", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/in.csv", []byte("Sex,Age\nw,1\nm,x\n"), 0o644))

		_, err := execute(t, fs, "/in.csv",
			"--delimiter", ",",
			"--output-delimiter", ",",
			"--gender-column", "Sex",
			"--numeric-columns", "Age",
			"--label", "w=Female",
			"--summary=false",
			"--comparison-rows", "0",
			"-o", "/out/clean.csv")
		require.NoError(t, err)

		data, err := afero.ReadFile(fs, "/out/clean.csv")
		require.NoError(t, err)
		assert.Equal(t, "Sex,Age\nFemale,1\nMale,1\n", string(data))

		exists, err := afero.Exists(fs, "/out/clean_summary.csv")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Should read the config file from the command filesystem", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/in.csv", []byte("Sex;Age\nw;1\nm;x\n"), 0o644))
		require.NoError(t, afero.WriteFile(fs, "/cfg.yaml", []byte(`
columns:
  gender_column: Sex
cleaning:
  gender_label_map:
    W: Female
output:
  path: /out/clean.csv
  summary: false
  comparison_rows: 0
`), 0o644))

		_, err := execute(t, fs, "/in.csv", "--config", "/cfg.yaml")
		require.NoError(t, err)

		data, err := afero.ReadFile(fs, "/out/clean.csv")
		require.NoError(t, err)
		assert.Equal(t, "Sex;Age\nFemale;1\nMale;1\n", string(data))
	})

	t.Run("Should split .tsv input on tabs", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/in.tsv", []byte("Gender\tAge\nf\t2\nM\t\n"), 0o644))

		_, err := execute(t, fs, "/in.tsv", "--summary=false", "--comparison-rows", "0")
		require.NoError(t, err)

		data, err := afero.ReadFile(fs, "/in_PREPROCESSED.tsv")
		require.NoError(t, err)
		assert.Equal(t, "Gender;Age\nFemale;2\nMale;2\n", string(data))
	})

	t.Run("Should fail on a missing gender column", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/in.csv", []byte("Age\n1\n"), 0o644))

		_, err := execute(t, fs, "/in.csv")

		assert.ErrorContains(t, err, "gender column")
	})

	t.Run("Should reject invalid flag values", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/in.csv", []byte(export), 0o644))

		_, err := execute(t, fs, "/in.csv", "--empty-column", "zero")

		assert.ErrorContains(t, err, "invalid flags")
	})

	t.Run("Should require exactly one input", func(t *testing.T) {
		_, err := execute(t, afero.NewMemMapFs())
		assert.Error(t, err)
	})
}
