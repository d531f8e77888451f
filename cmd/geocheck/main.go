package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/woozymasta/geofence/internal/config"
	"github.com/woozymasta/geofence/internal/geo"
	"github.com/woozymasta/geofence/internal/logger"
	"github.com/woozymasta/geofence/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string        `short:"c" long:"config"    env:"CONFIG_FILE" description:"Path to configuration file" default:"config.yaml"`
	CacheDir   string        `short:"d" long:"cache-dir" env:"CACHE_DIR"   description:"Directory with cached remote areas" default:"areas"`
	Input      string        `short:"i" long:"in"        description:"Input GeoJSON FeatureCollection of points. Reads from stdin if empty"`
	Output     string        `short:"o" long:"out"       description:"Output file path. Writes to stdout if empty"`
	Format     string        `short:"f" long:"format"    description:"Output format" choice:"json" choice:"yaml" default:"json"`
	Timeout    time.Duration `short:"t" long:"timeout"   env:"FETCH_TIMEOUT" description:"Remote area download timeout" default:"15s"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Read Input
	var inputData []byte
	if opts.Input != "" {
		inputData, err = os.ReadFile(opts.Input)
	} else {
		inputData, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Fatal().Err(err).Str("input", opts.Input).Msg("Failed to read input")
	}

	var fc geo.FeatureCollection
	if err := json.Unmarshal(inputData, &fc); err != nil {
		log.Fatal().Err(err).Msg("Input is not a GeoJSON FeatureCollection")
	}

	areas := processor.ResolveAreas(processor.NewHTTPClient(opts.Timeout), cfg, opts.CacheDir)
	tagged, skipped := processor.TagPoints(areas, fc)

	// marshal
	var outputData []byte
	if opts.Format == "yaml" {
		outputData, err = yaml.Marshal(tagged)
	} else {
		outputData, err = json.MarshalIndent(tagged, "", "  ")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal output")
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, outputData, 0644); err != nil {
			log.Fatal().Err(err).Str("output", opts.Output).Msg("Failed to write output")
		}
		log.Info().
			Int("points", len(tagged.Features)).
			Int("skipped", skipped).
			Int("areas", len(areas)).
			Str("output", opts.Output).
			Str("format", opts.Format).
			Msg("Points checked")
	} else {
		fmt.Println(string(outputData))
	}
}
