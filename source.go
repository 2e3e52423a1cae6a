package drawablegen

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// iconPrefix is the enum qualifier carried by icon names in the
// definition source.
const iconPrefix = "IconType::"

// Icon is one name/markup pair recognized in the definition source.
type Icon struct {
	Name   string
	Markup string
}

// iconPattern recognizes one enum arm holding a raw SVG string literal:
//
//	IconType::Name => { r#"<svg ...>...</svg>"# }
var iconPattern = regexp.MustCompile(`(?s)IconType::(\w+)\s*=>\s*\{\s*r#"(<svg.*?</svg>)"#`)

// ExtractIcons scans the definition source for icon arms, in source
// order. Definitions that do not have the expected shape are skipped;
// extraction is best effort over a semi-structured literal.
func ExtractIcons(src string) []Icon {
	var icons []Icon
	for _, m := range iconPattern.FindAllStringSubmatch(src, -1) {
		icons = append(icons, Icon{Name: m[1], Markup: m[2]})
	}
	return icons
}

// LoadIconSet reads a YAML mapping of icon name to SVG markup, keeping
// document order. This is the decoupled alternative to the embedded
// definition source.
func LoadIconSet(r io.Reader) ([]Icon, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("reading icon set: %v", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("icon set: top level must be a mapping of name to markup")
	}

	icons := make([]Icon, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		icons = append(icons, Icon{
			Name:   root.Content[i].Value,
			Markup: strings.TrimSpace(root.Content[i+1].Value),
		})
	}
	return icons, nil
}
