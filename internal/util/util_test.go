package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ws396/wmacalc/internal/globals"
	"github.com/ws396/wmacalc/internal/util"
	"go.uber.org/zap"
)

func TestParseFloats(t *testing.T) {
	tests := []struct {
		input string
		want  []float64
	}{
		{"100,102,101", []float64{100, 102, 101}},
		{"100, 102 101", []float64{100, 102, 101}},
		{" 1.5\t-2;3e2 ", []float64{1.5, -2, 300}},
		{"", []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := util.ParseFloats(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects garbage", func(t *testing.T) {
		for _, input := range []string{"1,two,3", "NaN", "1 +Inf"} {
			_, err := util.ParseFloats(input)
			assert.ErrorIs(t, err, globals.ErrBadNumber)
			assert.ErrorIs(t, err, globals.ErrInvalidInput)
		}
	})
}

func TestFormatFloats(t *testing.T) {
	assert.Equal(t, "[101.17 103.17 105.33 108.17]", util.FormatFloats([]float64{607.0 / 6, 619.0 / 6, 632.0 / 6, 649.0 / 6}, 2))
	assert.Equal(t, "[100 102]", util.FormatFloats([]float64{100, 102}, 2))
	assert.Equal(t, "[]", util.FormatFloats(nil, 2))
}

func TestInitZapLogger(t *testing.T) {
	require.NoError(t, util.InitZapLogger("debug", "stderr"))
	assert.True(t, util.Logger.Core().Enabled(zap.DebugLevel))

	err := util.InitZapLogger("loud", "stderr")
	assert.ErrorIs(t, err, globals.ErrInvalidSetting)
}

func TestContains(t *testing.T) {
	assert.True(t, util.Contains([]string{"txt", "json"}, "json"))
	assert.False(t, util.Contains([]string{"txt", "json"}, "xlsx"))
}
