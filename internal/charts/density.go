package charts

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"gofit/domain/gof"
)

const densitySamples = 1000

// DensityChart renders the chi-square density curve for the test's degrees
// of freedom, with the critical region shaded from the critical value, the
// p-value region shaded from the observed statistic, and both boundaries
// drawn as annotated vertical lines.
func DensityChart(result *gof.TestResult) string {
	dist := distuv.ChiSquared{K: float64(result.DegreesOfFreedom)}

	xMax := math.Max(result.CriticalValue, result.Statistic) + 5
	if xMax < 20 {
		xMax = 20 // minimum range for visualization
	}

	xs, ys := sampleDensity(dist, xMax)
	yMax := 0.0
	for _, y := range ys {
		if y > yMax {
			yMax = y
		}
	}
	if yMax == 0 {
		yMax = 1
	}
	yMax *= 1.05

	c := newCanvas(720, 500)
	c.title(fmt.Sprintf("Chi-Square Distribution (df=%d)", result.DegreesOfFreedom))
	c.axes()

	xFrac := func(x float64) float64 { return x / xMax }
	yFrac := func(y float64) float64 { return y / yMax }

	// Shaded regions go under the curve line.
	c.path(regionPath(c, xs, ys, result.CriticalValue, xFrac, yFrac), "none", "rgba(255,165,0,0.3)", 0)
	if result.Statistic < xMax {
		c.path(regionPath(c, xs, ys, result.Statistic, xFrac, yFrac), "none", "rgba(0,0,255,0.2)", 0)
	}

	// Main pdf line
	var d strings.Builder
	for i := range xs {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&d, "%s%.1f %.1f ", cmd, c.x(xFrac(xs[i])), c.y(yFrac(ys[i])))
	}
	c.path(strings.TrimSpace(d.String()), "black", "none", 1.5)

	// Critical value and statistic markers
	critX := c.x(xFrac(result.CriticalValue))
	c.line(critX, c.y(0), critX, c.y(1), colorCritical, 2, true)
	c.text(critX+4, c.y(1)+12, "start", colorCritical, fmt.Sprintf("Crit: %.2f", result.CriticalValue))

	statX := c.x(xFrac(math.Min(result.Statistic, xMax)))
	c.line(statX, c.y(0), statX, c.y(1), "blue", 2, false)
	c.text(statX+4, c.y(1)+26, "start", "blue", fmt.Sprintf("Stat: %.2f", result.Statistic))

	// Axis labels and ticks
	for i := 0; i <= 5; i++ {
		frac := float64(i) / 5
		c.line(c.x(frac), c.y(0), c.x(frac), c.y(0)+4, colorAxis, 1, false)
		c.text(c.x(frac), c.y(0)+18, "middle", colorAxis, fmt.Sprintf("%.1f", frac*xMax))
	}
	c.text(c.x(0.5), float64(c.height)-12, "middle", colorAxis, "Chi-Square Statistic")
	c.text(c.x(1)-4, c.y(1)+44, "end", colorAxis,
		fmt.Sprintf("Critical region alpha=%.2f, p=%.4f", result.Alpha, result.PValue))

	return c.render()
}

// sampleDensity evaluates the pdf on a uniform grid over (0, xMax]. The
// grid starts one step in: at df=1 the density diverges at zero, so the
// first sample would otherwise be +Inf.
func sampleDensity(dist distuv.ChiSquared, xMax float64) ([]float64, []float64) {
	step := xMax / densitySamples
	xs := make([]float64, 0, densitySamples)
	ys := make([]float64, 0, densitySamples)
	for i := 1; i <= densitySamples; i++ {
		x := step * float64(i)
		y := dist.Prob(x)
		if math.IsInf(y, 0) || math.IsNaN(y) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}

// regionPath builds a closed polygon under the curve from the given
// boundary to the right edge of the plot.
func regionPath(c *canvas, xs, ys []float64, from float64, xFrac, yFrac func(float64) float64) string {
	var d strings.Builder
	fmt.Fprintf(&d, "M%.1f %.1f ", c.x(xFrac(from)), c.y(0))
	for i := range xs {
		if xs[i] < from {
			continue
		}
		fmt.Fprintf(&d, "L%.1f %.1f ", c.x(xFrac(xs[i])), c.y(yFrac(ys[i])))
	}
	fmt.Fprintf(&d, "L%.1f %.1f Z", c.x(1), c.y(0))
	return d.String()
}
