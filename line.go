package drawablegen

import (
	"fmt"

	mt "github.com/rustyoz/Mtransform"
)

// Line is an SVG line element. Endpoint attributes are carried as text
// and written to the path exactly as they appear in the source markup.
type Line struct {
	ID string `xml:"id,attr"`
	X1 string `xml:"x1,attr"`
	Y1 string `xml:"y1,attr"`
	X2 string `xml:"x2,attr"`
	Y2 string `xml:"y2,attr"`
}

// PathData implements the PathDataConverter interface.
func (l *Line) PathData(_ mt.Transform) (string, error) {
	return fmt.Sprintf("M %s %s L %s %s",
		orZero(l.X1), orZero(l.Y1), orZero(l.X2), orZero(l.Y2)), nil
}
