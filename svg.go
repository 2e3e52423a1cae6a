package drawablegen

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// viewportSize is the logical edge length of the emitted drawable.
const viewportSize = 24.0

// PathDataConverter turns one SVG shape element into path data. All
// supported shape elements implement this interface.
type PathDataConverter interface {
	// PathData returns the path-data string for the shape, or "" when
	// the shape has too few points to draw anything.
	PathData(tf mt.Transform) (string, error)
}

// ConvertShapes scans one SVG markup fragment and converts every
// drawable shape inside the <svg> element into path data, in document
// order. Shapes nested in groups are found too. A fragment without an
// <svg> wrapper yields no paths.
func ConvertShapes(markup string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(markup))

	var paths []string
	tf := mt.Identity()
	inSvg := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return paths, nil
		}
		if err != nil {
			return nil, fmt.Errorf("scanning svg markup: %v", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		if start.Name.Local == "svg" {
			inSvg = true
			tf, err = viewBoxTransform(attrValue(start, "viewBox"))
			if err != nil {
				return nil, err
			}
			continue
		}
		if !inSvg {
			continue
		}

		var shape PathDataConverter
		switch start.Name.Local {
		case "path":
			shape = &Path{}
		case "line":
			shape = &Line{}
		case "polyline":
			shape = &PolyLine{}
		case "polygon":
			shape = &Polygon{}
		case "rect":
			shape = &Rect{}
		case "circle":
			shape = &Circle{}
		default:
			// Unrecognized tags are skipped; the decoder still walks
			// into their children, so grouped shapes are not lost.
			continue
		}

		if err := decoder.DecodeElement(shape, &start); err != nil {
			return nil, fmt.Errorf("decoding %s element: %v", start.Name.Local, err)
		}

		d, err := shape.PathData(tf)
		if err != nil {
			return nil, err
		}
		if d != "" {
			paths = append(paths, d)
		}
	}
}

// viewBoxTransform maps document coordinates onto the fixed 24-unit
// viewport. Only the scale of the viewBox is honored; offset origins
// are not. An absent viewBox leaves coordinates untouched.
func viewBoxTransform(viewBox string) (mt.Transform, error) {
	if viewBox == "" {
		return mt.Identity(), nil
	}

	fields := scanNumbers("viewBox", viewBox)
	if len(fields) != 4 {
		return mt.Identity(), fmt.Errorf("svg: malformed viewBox %q", viewBox)
	}
	w, err := parseFloat("svg", "viewBox", fields[2])
	if err != nil {
		return mt.Identity(), err
	}
	h, err := parseFloat("svg", "viewBox", fields[3])
	if err != nil {
		return mt.Identity(), err
	}
	if w <= 0 || h <= 0 {
		return mt.Identity(), fmt.Errorf("svg: degenerate viewBox %q", viewBox)
	}

	t := mt.NewTransform()
	t.Scale(viewportSize/w, viewportSize/h)
	return *t, nil
}

func attrValue(e xml.StartElement, name string) string {
	for _, a := range e.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
