package main

import (
	"os"
	"time"

	"github.com/woozymasta/geofence/internal/config"
	"github.com/woozymasta/geofence/internal/logger"
	"github.com/woozymasta/geofence/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string        `short:"c" long:"config"    env:"CONFIG_FILE" description:"Path to configuration file" default:"config.yaml"`
	CacheDir   string        `short:"d" long:"cache-dir" env:"CACHE_DIR"   description:"Directory to store remote areas" default:"areas"`
	Limit      []string      `short:"l" long:"limit"     env:"LIMIT_NAMES" description:"Limit processing to specific area names"`
	Timeout    time.Duration `short:"t" long:"timeout"   env:"FETCH_TIMEOUT" description:"Download timeout" default:"15s"`
	Force      bool          `short:"f" long:"force"     description:"Force overwrite of existing files"`
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

	client := processor.NewHTTPClient(opts.Timeout)

	// Filter areas if limit is set
	areasToProcess := cfg.Areas
	if len(opts.Limit) > 0 {
		areasToProcess = make([]config.Area, 0)
		availableAreas := make(map[string]config.Area)
		for _, a := range cfg.Areas {
			availableAreas[a.Name] = a
		}

		seen := make(map[string]bool)

		for _, limitName := range opts.Limit {
			if seen[limitName] {
				continue
			}
			seen[limitName] = true

			if a, ok := availableAreas[limitName]; ok {
				areasToProcess = append(areasToProcess, a)
			} else {
				log.Error().
					Str("name", limitName).
					Msg("Area specified in --limit not found in configuration")
			}
		}
	}

	log.Info().
		Int("areas_total", len(cfg.Areas)).
		Int("areas_queued", len(areasToProcess)).
		Str("cache_dir", opts.CacheDir).
		Msg("Starting loader")

	failed := 0
	for _, a := range areasToProcess {
		if a.URL == "" {
			log.Debug().Str("area", a.Name).Msg("Area is defined locally, nothing to download")
			continue
		}

		if err := processor.CacheArea(client, a, opts.CacheDir, opts.Force); err != nil {
			failed++
			log.Error().Err(err).Str("area", a.Name).Msg("Failed to cache area")
		}
	}

	if failed > 0 {
		log.Fatal().Int("failed", failed).Msg("Loader finished with errors")
	}

	log.Info().Msg("Loader finished successfully")
}
