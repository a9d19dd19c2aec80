package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"wallbreaker/pkg/game/devtools"
	"wallbreaker/pkg/game/generator"
	"wallbreaker/pkg/game/renderer"
)

func initGotext() {
	gotext.Configure("locales", "en_US", "default")
}

func main() {
	budget := flag.Int("budget", 2, "wall break budget the level is generated for")
	rows := flag.Int("rows", generator.DefaultRows, "grid rows (rounded down to odd)")
	cols := flag.Int("cols", generator.DefaultCols, "grid columns (rounded down to odd)")
	seed := flag.Int64("seed", 0, "random seed, 0 means time-based")
	dump := flag.String("dump", "", "also write a text dump of the level to this file")
	verbose := flag.Bool("verbose", false, "log discarded generation attempts")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	initGotext()
	renderer.InitColors()

	if *budget < 0 {
		log.WithField("budget", *budget).Fatal("break budget must be non-negative")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	gen := generator.NewMaze(*rows, *cols, rand.New(rand.NewSource(*seed)))

	log.WithFields(log.Fields{
		"generator": gen.Name(),
		"budget":    *budget,
		"seed":      *seed,
	}).Info("generating level")

	level := gen.Generate(*budget)
	fmt.Print(renderer.RenderLevel(level))

	if *dump != "" {
		path, err := devtools.DumpLevelToFile(level, *dump)
		if err != nil {
			log.WithError(err).Fatal("level dump failed")
		}
		log.WithField("path", path).Info("level dump written")
	}
}
