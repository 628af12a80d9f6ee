package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"dungeondigger/pkg/game/devtools"
	"dungeondigger/pkg/game/generator"
	"dungeondigger/pkg/game/renderer"
	ebitenrenderer "dungeondigger/pkg/game/renderer/ebiten"
	"dungeondigger/pkg/game/renderer/tui"
	"dungeondigger/pkg/game/server"
)

// options holds the parsed command line
type options struct {
	cfg       generator.Config
	generator string
	renderer  string
	dump      string
	html      bool
	serve     string
	verbose   bool
}

func parseFlags(args []string) (options, error) {
	opts := options{cfg: generator.DefaultConfig()}

	fs := flag.NewFlagSet("dungeondigger", flag.ContinueOnError)
	fs.IntVar(&opts.cfg.Width, "width", opts.cfg.Width, "grid width")
	fs.IntVar(&opts.cfg.Height, "height", opts.cfg.Height, "grid height")
	fs.Int64Var(&opts.cfg.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.Float64Var(&opts.cfg.DugPercentage, "dug", opts.cfg.DugPercentage, "fraction of the map to carve (digger)")
	fs.StringVar(&opts.generator, "generator", generator.DefaultGenerator.Name(), fmt.Sprintf("map generator %v", generator.Names()))
	fs.StringVar(&opts.renderer, "renderer", "tui", "renderer to use: tui or ebiten")
	fs.StringVar(&opts.dump, "dump", "", "write a debug dump of the dungeon to this file")
	fs.BoolVar(&opts.html, "html", false, "save an HTML screenshot of the dungeon")
	fs.StringVar(&opts.serve, "serve", "", "serve dungeons over HTTP on this address instead of rendering one")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

func setupLogging(verbose bool) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

func run(opts options) error {
	if opts.serve != "" {
		return server.New(opts.cfg, log.StandardLogger()).ListenAndServe(opts.serve)
	}

	gen, err := generator.Lookup(opts.generator)
	if err != nil {
		return err
	}

	switch opts.renderer {
	case "tui":
		renderer.SetRenderer(tui.New(os.Stdout))
	case "ebiten":
		regenerate := func() (*generator.Dungeon, error) {
			cfg := opts.cfg
			cfg.Seed = 0
			return gen.Generate(cfg)
		}
		renderer.SetRenderer(ebitenrenderer.New(regenerate, log.StandardLogger()))
	default:
		return fmt.Errorf("%w: unknown renderer %q", generator.ErrInvalidConfig, opts.renderer)
	}

	d, err := gen.Generate(opts.cfg)
	if err != nil {
		return err
	}

	if opts.dump != "" {
		path, err := devtools.DumpDungeonToFile(d, opts.dump)
		if err != nil {
			return err
		}
		log.WithField("path", path).Info("dungeon dumped")
	}
	if opts.html {
		path, err := devtools.SaveScreenshotHTML(d)
		if err != nil {
			return err
		}
		log.WithField("path", path).Info("screenshot saved")
	}

	renderer.Init()
	renderer.Clear()
	return renderer.RenderDungeon(d)
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	setupLogging(opts.verbose)

	if err := run(opts); err != nil {
		log.WithError(err).Error("dungeondigger failed")
		os.Exit(1)
	}
}
