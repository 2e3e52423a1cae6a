package main

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vasalvit/drawablegen"
)

// outputDir is where the Android resource files land, relative to the
// repository root the tool is run from.
const outputDir = "android/app/src/main/res/drawable"

// iconSetFile overrides the embedded definitions with a YAML icon set
// when present in the working directory.
const iconSetFile = "icons.yaml"

//go:embed icons.rs
var iconSource string

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC822})

	icons, err := loadIcons()
	if err != nil {
		log.Fatal().Err(err).Msg("loading icon definitions")
	}

	gen := drawablegen.NewGenerator(outputDir)
	gen.Log = log.Logger

	results, err := gen.Generate(icons)
	if err != nil {
		log.Fatal().Err(err).Msg("generation failed")
	}

	for _, res := range results {
		if res.Status == drawablegen.StatusWritten {
			fmt.Printf("Generated %s\n", res.Filename)
		}
	}
}

// loadIcons prefers a local YAML icon set over the embedded definition
// source.
func loadIcons() ([]drawablegen.Icon, error) {
	f, err := os.Open(iconSetFile)
	if os.IsNotExist(err) {
		return drawablegen.ExtractIcons(iconSource), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return drawablegen.LoadIconSet(f)
}
