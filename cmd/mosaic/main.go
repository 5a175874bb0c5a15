// Command mosaic reassembles a tile file, prints the corner product and the
// roughness, and optionally renders the composed image.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/forny/tilemosaic/agent"
	"github.com/forny/tilemosaic/config"
	"github.com/forny/tilemosaic/render"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	configPath = flag.String("config", "", "path to mosaic.json (default: $MOSAIC_CONFIG, executable dir, cwd)")
	jsonOut    = flag.Bool("json", false, "print the report as JSON")
	renderPath = flag.String("render", "", "write the composed image to this file (.png or .bmp)")
	show       = flag.Bool("show", false, "print the composed image to the terminal")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] tiles.txt\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	config.Set(cfg)
	if lvl, err := cfg.Level(); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := run(flag.Arg(0)); err != nil {
		log.Fatal().Err(err).Msg("mosaic failed")
	}
}

func run(path string) error {
	res, err := agent.SolveFile(path)
	if err != nil {
		return err
	}

	if *jsonOut {
		out, err := sonic.ConfigStd.MarshalIndent(res.Report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	} else {
		fmt.Printf("corner product: %d\n", res.Report.CornerProduct)
		fmt.Printf("roughness:      %d\n", res.Report.Roughness)
	}

	if *show {
		pal, err := render.PaletteFrom(config.Current().Render)
		if err != nil {
			return err
		}
		fmt.Print(render.Terminal(res.Map, res.Scan, res.Scan.BestFlop(), pal))
	}

	if *renderPath != "" {
		if err := agent.WriteImage(res, *renderPath, ""); err != nil {
			return err
		}
		log.Info().Str("path", *renderPath).Msg("Image written")
	}
	return nil
}
