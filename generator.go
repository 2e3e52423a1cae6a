package drawablegen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Status classifies what happened to one recognized icon.
type Status int

const (
	// StatusWritten means the icon's drawable file was written.
	StatusWritten Status = iota
	// StatusSkipped means the icon produced no drawable paths, so no
	// file was written.
	StatusSkipped
)

// Result reports the outcome for one recognized icon, in batch order.
type Result struct {
	Name     string
	Filename string
	Status   Status
}

// Generator writes one vector drawable per convertible icon into
// OutputDir.
type Generator struct {
	OutputDir string
	Log       zerolog.Logger
}

// NewGenerator returns a Generator writing into dir. Diagnostics are
// discarded until Log is replaced.
func NewGenerator(dir string) *Generator {
	return &Generator{OutputDir: dir, Log: zerolog.Nop()}
}

// Generate converts every icon and writes one drawable per icon that
// yields at least one path, overwriting existing files. Results come
// back in input order, one per icon. The first conversion or write
// error aborts the whole batch.
func (g *Generator) Generate(icons []Icon) ([]Result, error) {
	if err := os.MkdirAll(g.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %v", err)
	}

	results := make([]Result, 0, len(icons))
	for _, icon := range icons {
		paths, err := ConvertShapes(icon.Markup)
		if err != nil {
			return nil, fmt.Errorf("converting %s: %v", icon.Name, err)
		}

		res := Result{Name: icon.Name, Filename: DrawableFilename(icon.Name)}
		if len(paths) == 0 {
			res.Status = StatusSkipped
			g.Log.Debug().Str("icon", icon.Name).Msg("no drawable shapes, skipping")
			results = append(results, res)
			continue
		}

		doc := BuildDrawable(paths)
		if err := os.WriteFile(filepath.Join(g.OutputDir, res.Filename), []byte(doc), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %v", res.Filename, err)
		}
		res.Status = StatusWritten
		g.Log.Debug().Str("icon", icon.Name).Str("file", res.Filename).Msg("wrote drawable")
		results = append(results, res)
	}
	return results, nil
}
