package drawablegen

import (
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// Rect is an SVG rect element, optionally with rounded corners.
type Rect struct {
	ID     string `xml:"id,attr"`
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Rx     string `xml:"rx,attr"`
	Ry     string `xml:"ry,attr"`
}

// PathData implements the PathDataConverter interface. A sharp
// rectangle closes over relative edges; rounded corners trace the four
// edges joined by clockwise quarter arcs, starting where the top-left
// arc ends. Radii are written as given, not clamped to the
// half-extents.
func (r *Rect) PathData(tf mt.Transform) (string, error) {
	x, err := parseFloat("rect", "x", r.X)
	if err != nil {
		return "", err
	}
	y, err := parseFloat("rect", "y", r.Y)
	if err != nil {
		return "", err
	}
	w, err := parseFloat("rect", "width", r.Width)
	if err != nil {
		return "", err
	}
	h, err := parseFloat("rect", "height", r.Height)
	if err != nil {
		return "", err
	}
	rx, err := parseFloat("rect", "rx", r.Rx)
	if err != nil {
		return "", err
	}
	ry, err := parseFloat("rect", "ry", r.Ry)
	if err != nil {
		return "", err
	}

	// Transform the origin and derive the scaled extents from the far
	// corner, so only scale transforms are assumed.
	tx, ty := tf.Apply(x, y)
	fx, fy := tf.Apply(x+w, y+h)
	tw, th := fx-tx, fy-ty

	if rx == 0 && ry == 0 {
		return "M " + ftoa(tx) + " " + ftoa(ty) +
			" h " + ftoa(tw) +
			" v " + ftoa(th) +
			" h " + ftoa(-tw) + " Z", nil
	}

	ex, _ := tf.Apply(x+rx, y)
	_, ey := tf.Apply(x, y+ry)
	srx, sry := ex-tx, ey-ty

	arc := "A " + ftoa(srx) + "," + ftoa(sry) + " 0 0 1 "
	pt := func(px, py float64) string { return ftoa(px) + "," + ftoa(py) }

	var b strings.Builder
	b.WriteString("M " + pt(tx+srx, ty))
	b.WriteString(" L " + pt(tx+tw-srx, ty))
	b.WriteString(" " + arc + pt(tx+tw, ty+sry))
	b.WriteString(" L " + pt(tx+tw, ty+th-sry))
	b.WriteString(" " + arc + pt(tx+tw-srx, ty+th))
	b.WriteString(" L " + pt(tx+srx, ty+th))
	b.WriteString(" " + arc + pt(tx, ty+th-sry))
	b.WriteString(" L " + pt(tx, ty+sry))
	b.WriteString(" " + arc + pt(tx+srx, ty))
	b.WriteString(" Z")
	return b.String(), nil
}
