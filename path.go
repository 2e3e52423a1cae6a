package drawablegen

import mt "github.com/rustyoz/Mtransform"

// Path is an SVG XML path element. Its description is already written
// in the path mini-language, so it passes through untouched.
type Path struct {
	ID string `xml:"id,attr"`
	D  string `xml:"d,attr"`
}

// PathData implements the PathDataConverter interface.
func (p *Path) PathData(_ mt.Transform) (string, error) {
	return p.D, nil
}
