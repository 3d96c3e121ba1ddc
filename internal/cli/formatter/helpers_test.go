package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "$0.00"},
		{"small", 42.5, "$42.50"},
		{"thousands", 1250, "$1,250.00"},
		{"millions", 1234567.89, "$1,234,567.89"},
		{"negative", -5000, "-$5,000.00"},
		{"rounds cents", 99.999, "$100.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(tt.amount))
		})
	}
}

func TestRenderProgress_Clamps(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
	}{
		{"zero", 0},
		{"half", 0.5},
		{"full", 1},
		{"over 100% clamps", 1.5},
		{"negative clamps", -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, 10)
			assert.Contains(t, got, "[")
			assert.Contains(t, got, "%")
		})
	}
}

func TestRenderProgress_Blocks(t *testing.T) {
	assert.Contains(t, RenderProgress(0, 4), emptyBlock)
	assert.Contains(t, RenderProgress(1, 4), filledBlock)
}

func TestRenderSparkline(t *testing.T) {
	assert.Empty(t, RenderSparkline(nil))
	assert.Equal(t, "▁▁▁", RenderSparkline([]float64{0, 0, 0}))

	rising := RenderSparkline([]float64{10, 50, 100})
	assert.Equal(t, 3, len([]rune(rising)))
	assert.Equal(t, '█', []rune(rising)[2])
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "Name"},
		[][]string{{"a1", "short"}, {"b2", "a much longer name"}},
	)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "a much longer name")
	assert.Contains(t, out, "─")
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}
