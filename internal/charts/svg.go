package charts

import (
	"fmt"
	"strings"
)

// Shared palette, matching the observed/expected colors of the bar chart
// with the annotation colors of the distribution chart.
const (
	colorObserved = "#636EFA"
	colorExpected = "#EF553B"
	colorCritical = "orange"
	colorAxis     = "#4b4b4b"
)

// canvas accumulates SVG elements with a fixed plot area inside margins.
type canvas struct {
	width   int
	height  int
	marginL int
	marginR int
	marginT int
	marginB int
	body    strings.Builder
}

func newCanvas(width, height int) *canvas {
	return &canvas{
		width:   width,
		height:  height,
		marginL: 60,
		marginR: 20,
		marginT: 40,
		marginB: 60,
	}
}

func (c *canvas) plotWidth() float64 { return float64(c.width - c.marginL - c.marginR) }
func (c *canvas) plotHeight() float64 { return float64(c.height - c.marginT - c.marginB) }

// x maps a [0,1] fraction of the plot area to an SVG x coordinate.
func (c *canvas) x(frac float64) float64 {
	return float64(c.marginL) + frac*c.plotWidth()
}

// y maps a [0,1] fraction of the plot area to an SVG y coordinate,
// flipped so 0 is the bottom axis.
func (c *canvas) y(frac float64) float64 {
	return float64(c.marginT) + (1-frac)*c.plotHeight()
}

func (c *canvas) rect(x, y, w, h float64, fill string) {
	fmt.Fprintf(&c.body, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n", x, y, w, h, fill)
}

func (c *canvas) line(x1, y1, x2, y2 float64, stroke string, width float64, dashed bool) {
	dash := ""
	if dashed {
		dash = ` stroke-dasharray="6,4"`
	}
	fmt.Fprintf(&c.body, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"%s/>`+"\n",
		x1, y1, x2, y2, stroke, width, dash)
}

func (c *canvas) text(x, y float64, anchor, fill, content string) {
	fmt.Fprintf(&c.body, `<text x="%.1f" y="%.1f" text-anchor="%s" fill="%s" font-size="12" font-family="sans-serif">%s</text>`+"\n",
		x, y, anchor, fill, escape(content))
}

func (c *canvas) title(content string) {
	fmt.Fprintf(&c.body, `<text x="%d" y="22" text-anchor="middle" fill="%s" font-size="16" font-family="sans-serif">%s</text>`+"\n",
		c.width/2, colorAxis, escape(content))
}

func (c *canvas) path(d, stroke, fill string, width float64) {
	fmt.Fprintf(&c.body, `<path d="%s" stroke="%s" stroke-width="%.1f" fill="%s"/>`+"\n", d, stroke, width, fill)
}

// axes draws the left and bottom plot-area borders.
func (c *canvas) axes() {
	c.line(c.x(0), c.y(0), c.x(1), c.y(0), colorAxis, 1, false)
	c.line(c.x(0), c.y(0), c.x(0), c.y(1), colorAxis, 1, false)
}

func (c *canvas) render() string {
	var out strings.Builder
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		c.width, c.height, c.width, c.height)
	out.WriteString(`<rect width="100%" height="100%" fill="white"/>` + "\n")
	out.WriteString(c.body.String())
	out.WriteString("</svg>\n")
	return out.String()
}

func escape(s string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return replacer.Replace(s)
}
