package drawablegen

import (
	"fmt"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// PolyLine
// set of connected line segments that typically form an open shape.
type PolyLine struct {
	ID     string `xml:"id,attr"`
	Points string `xml:"points,attr"`
}

// PathData implements the PathDataConverter interface.
func (p *PolyLine) PathData(_ mt.Transform) (string, error) {
	return polyPathData(p.Points, false), nil
}

// Polygon is an SVG polygon element, a polyline closed back onto its
// first point.
type Polygon struct {
	ID     string `xml:"id,attr"`
	Points string `xml:"points,attr"`
}

// PathData implements the PathDataConverter interface.
func (p *Polygon) PathData(_ mt.Transform) (string, error) {
	return polyPathData(p.Points, true), nil
}

// polyPathData joins a points list into move/line commands. Fewer than
// two numbers yield no path; a dangling unpaired number is dropped.
func polyPathData(points string, closed bool) string {
	nums := scanNumbers("points", points)
	if len(nums) < 2 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M %s %s", nums[0], nums[1])
	for i := 2; i+1 < len(nums); i += 2 {
		fmt.Fprintf(&b, " L %s %s", nums[i], nums[i+1])
	}
	if closed {
		b.WriteString(" Z")
	}
	return b.String()
}
