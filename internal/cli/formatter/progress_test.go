package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgressClampsRange(t *testing.T) {
	assert.Contains(t, RenderProgress(-5, 10), "  0%")
	assert.Contains(t, RenderProgress(250, 10), "100%")
}

func TestRenderProgressFillsProportionally(t *testing.T) {
	out := RenderProgress(50, 10)
	assert.Equal(t, 5, strings.Count(out, filledBlock))
	assert.Equal(t, 5, strings.Count(out, emptyBlock))
}

func TestRenderBarChartShowsEveryLabel(t *testing.T) {
	labels := []string{"Dom", "Seg", "Ter"}
	out := RenderBarChart(labels, []int{0, 30, 60}, 10)
	for _, label := range labels {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "0 min")
	assert.Contains(t, out, "60 min")
}

func TestRenderBarChartScalesToMax(t *testing.T) {
	out := RenderBarChart([]string{"a", "b"}, []int{50, 100}, 10)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, 5, strings.Count(lines[0], filledBlock))
	assert.Equal(t, 10, strings.Count(lines[1], filledBlock))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "12345678", TruncID("123456789abcdef"))
	assert.Equal(t, "short", TruncID("short"))
}
