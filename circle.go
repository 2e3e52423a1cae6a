package drawablegen

import (
	"fmt"

	mt "github.com/rustyoz/Mtransform"
)

// Circle is an SVG circle element
type Circle struct {
	ID     string `xml:"id,attr"`
	Cx     string `xml:"cx,attr"`
	Cy     string `xml:"cy,attr"`
	Radius string `xml:"r,attr"`
}

// PathData implements the PathDataConverter interface. The circle is
// drawn as two 180 degree arcs meeting back at the left-most point.
func (c *Circle) PathData(tf mt.Transform) (string, error) {
	cx, err := parseFloat("circle", "cx", c.Cx)
	if err != nil {
		return "", err
	}
	cy, err := parseFloat("circle", "cy", c.Cy)
	if err != nil {
		return "", err
	}
	r, err := parseFloat("circle", "r", c.Radius)
	if err != nil {
		return "", err
	}

	tcx, tcy := tf.Apply(cx, cy)
	ex, _ := tf.Apply(cx+r, cy)
	tr := ex - tcx

	left := ftoa(tcx-tr) + "," + ftoa(tcy)
	right := ftoa(tcx+tr) + "," + ftoa(tcy)
	radii := ftoa(tr) + "," + ftoa(tr)

	return fmt.Sprintf("M %s A %s 0 1,0 %s A %s 0 1,0 %s",
		left, radii, right, radii, left), nil
}
