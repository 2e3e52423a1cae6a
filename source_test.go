package drawablegen

import (
	"strings"
	"testing"

	"github.com/cheekybits/is"
)

const testSource = `
    match icon {
        IconType::Play => {
            r#"<svg viewBox="0 0 24 24" fill="none"><polygon points="5 3 19 12 5 21 5 3"/></svg>"#
        }
        IconType::Close => {
            r#"<svg viewBox="0 0 24 24" fill="none"><line x1="18" y1="6" x2="6" y2="18"/><line x1="6" y1="6" x2="18" y2="18"/></svg>"#
        }
        IconType::Broken => {
            "not a raw svg literal"
        }
    }
`

func TestExtractIcons(t *testing.T) {
	is := is.New(t)

	icons := ExtractIcons(testSource)
	is.Equal(len(icons), 2)
	is.Equal(icons[0].Name, "Play")
	is.OK(strings.Contains(icons[0].Markup, "<polygon"))
	is.Equal(icons[1].Name, "Close")
	is.OK(strings.HasPrefix(icons[1].Markup, "<svg"))
	is.OK(strings.HasSuffix(icons[1].Markup, "</svg>"))
}

func TestExtractIconsNoMatches(t *testing.T) {
	is := is.New(t)
	is.Equal(len(ExtractIcons("nothing to see")), 0)
}

func TestLoadIconSet(t *testing.T) {
	is := is.New(t)

	set := `
Play: '<svg viewBox="0 0 24 24"><polygon points="5 3 19 12 5 21 5 3"/></svg>'
Close: '<svg viewBox="0 0 24 24"><line x1="18" y1="6" x2="6" y2="18"/></svg>'
Android: '<svg viewBox="0 0 24 24"><rect x="5" y="2" width="14" height="20" rx="2" ry="2"/></svg>'
`
	icons, err := LoadIconSet(strings.NewReader(set))
	is.NoErr(err)
	is.Equal(len(icons), 3)
	is.Equal(icons[0].Name, "Play")
	is.Equal(icons[1].Name, "Close")
	is.Equal(icons[2].Name, "Android")
	is.OK(strings.HasPrefix(icons[2].Markup, "<svg"))
}

func TestLoadIconSetRejectsNonMapping(t *testing.T) {
	is := is.New(t)
	_, err := LoadIconSet(strings.NewReader("- one\n- two\n"))
	is.Err(err)
}
