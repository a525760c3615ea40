package charts

import (
	"fmt"
	"strconv"

	"gofit/domain/gof"
)

// BarChart renders a grouped observed-vs-expected bar comparison per
// category as an SVG document.
func BarChart(rows []gof.Observation) string {
	c := newCanvas(720, 420)
	c.title("Observed vs Expected Counts")
	c.axes()

	maxCount := 0.0
	for _, row := range rows {
		if row.Observed > maxCount {
			maxCount = row.Observed
		}
		if row.Expected > maxCount {
			maxCount = row.Expected
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}
	// Headroom so value labels above the tallest bar stay inside the plot.
	maxCount *= 1.15

	groupWidth := 1.0 / float64(len(rows))
	barFrac := groupWidth * 0.35

	for i, row := range rows {
		center := (float64(i) + 0.5) * groupWidth

		drawBar(c, center-barFrac, barFrac, row.Observed/maxCount, colorObserved, row.Observed)
		drawBar(c, center, barFrac, row.Expected/maxCount, colorExpected, row.Expected)

		c.text(c.x(center), c.y(0)+18, "middle", colorAxis, row.Category)
	}

	// y-axis ticks
	for i := 0; i <= 4; i++ {
		frac := float64(i) / 4
		c.line(c.x(0)-4, c.y(frac), c.x(0), c.y(frac), colorAxis, 1, false)
		c.text(c.x(0)-8, c.y(frac)+4, "end", colorAxis, formatCount(frac*maxCount))
	}
	c.text(c.x(0.5), float64(c.height)-12, "middle", colorAxis, "Category")

	// Legend
	c.rect(c.x(1)-150, float64(c.marginT), 12, 12, colorObserved)
	c.text(c.x(1)-134, float64(c.marginT)+10, "start", colorAxis, "Observed")
	c.rect(c.x(1)-150, float64(c.marginT)+18, 12, 12, colorExpected)
	c.text(c.x(1)-134, float64(c.marginT)+28, "start", colorAxis, "Expected")

	return c.render()
}

func drawBar(c *canvas, leftFrac, widthFrac, heightFrac float64, color string, value float64) {
	if heightFrac < 0 {
		heightFrac = 0
	}
	x := c.x(leftFrac)
	top := c.y(heightFrac)
	c.rect(x, top, widthFrac*c.plotWidth(), c.y(0)-top, color)
	c.text(x+widthFrac*c.plotWidth()/2, top-4, "middle", colorAxis, formatCount(value))
}

func formatCount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
