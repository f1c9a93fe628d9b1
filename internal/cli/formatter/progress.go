package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a percentage bar like [████░░░░]  45%.
// Green above 66, yellow between 33 and 66, red below 33.
func RenderProgress(pct int, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if width < 2 {
		width = 2
	}

	filled := pct * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 33 {
		style = StyleRed
	} else if pct < 66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3d%%", style.Render(bar), pct)
}

// RenderBarChart renders a horizontal bar chart with one labeled row per
// value, scaled to maxWidth columns. Zero rows keep their label so a week
// with no study still shows all seven days.
func RenderBarChart(labels []string, values []int, maxWidth int) string {
	if maxWidth < 1 {
		maxWidth = 1
	}
	max := 0
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	var b strings.Builder
	for i, label := range labels {
		value := 0
		if i < len(values) {
			value = values[i]
		}
		width := 0
		if max > 0 {
			width = value * maxWidth / max
		}
		if value > 0 && width == 0 {
			width = 1
		}
		bar := StyleBlue.Render(strings.Repeat(filledBlock, width))
		fmt.Fprintf(&b, "%s  %s %s\n", StyleDim.Render(label), bar, Dim(fmt.Sprintf("%d min", value)))
	}
	return b.String()
}
