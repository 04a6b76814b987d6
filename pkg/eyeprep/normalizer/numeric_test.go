package normalizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukaji3/eyeprep-go/pkg/eyeprep/models"
)

func TestNormalizeDecimal(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1,5", "1.5"},
		{"-0,25", "-0.25"},
		{"1.5", "1.5"},
		{"1.234,5", "1.234,5"},
		{"1,234,567", "1,234,567"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeDecimal(tt.input), "input %q", tt.input)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name  string
		input models.Cell
		want  models.Cell
	}{
		{"integer text", models.Text("23"), models.Number(23)},
		{"decimal comma", models.Text("1,5"), models.Number(1.5)},
		{"decimal point", models.Text(" 0.75 "), models.Number(0.75)},
		{"exponent", models.Text("1e3"), models.Number(1000)},
		{"negative", models.Text("-1"), models.Number(-1)},
		{"word", models.Text("abc"), models.Missing()},
		{"empty", models.Text(""), models.Missing()},
		{"blank", models.Text("   "), models.Missing()},
		{"nan text", models.Text("NaN"), models.Missing()},
		{"inf text", models.Text("Inf"), models.Missing()},
		{"overflow", models.Text("1e400"), models.Missing()},
		{"thousands", models.Text("1,234,567"), models.Missing()},
		{"hex float", models.Text("0x1p-2"), models.Missing()},
		{"hex upper", models.Text("0X10"), models.Missing()},
		{"digit separator", models.Text("1_000"), models.Missing()},
		{"number", models.Number(4.5), models.Number(4.5)},
		{"nan number", models.Number(math.NaN()), models.Missing()},
		{"missing", models.Missing(), models.Missing()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumber(tt.input))
		})
	}
}

func TestCoerceColumn(t *testing.T) {
	col := []models.Cell{
		models.Text("1"),
		models.Text("-1"),
		models.Text("x"),
		models.Missing(),
		models.Text("2,5"),
	}

	coerced, sentinels := coerceColumn(col, []float64{-1})

	assert.Equal(t, 1, coerced)
	assert.Equal(t, 1, sentinels)
	assert.Equal(t, []models.Cell{
		models.Number(1),
		models.Missing(),
		models.Missing(),
		models.Missing(),
		models.Number(2.5),
	}, col)
}
