package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/woozymasta/geofence/internal/config"
	"github.com/woozymasta/geofence/internal/logger"
	"github.com/woozymasta/geofence/internal/processor"
	"github.com/woozymasta/geofence/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string        `short:"c" long:"config"    env:"CONFIG_FILE"    description:"Path to configuration file" default:"config.yaml"`
	CacheDir   string        `short:"d" long:"cache-dir" env:"CACHE_DIR"      description:"Directory with cached remote areas" default:"areas"`
	Addr       string        `short:"a" long:"addr"      env:"LISTEN_ADDRESS" description:"Address to listen on"       default:"0.0.0.0"`
	Port       int           `short:"p" long:"port"      env:"LISTEN_PORT"    description:"Port to listen on"          default:"8080"`
	Timeout    time.Duration `short:"t" long:"timeout"   env:"FETCH_TIMEOUT"  description:"Remote area download timeout" default:"15s"`
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

	// Setup Logging
	opts.Logger.Setup()

	// Load Config
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	areas := processor.ResolveAreas(processor.NewHTTPClient(opts.Timeout), cfg, opts.CacheDir)
	srvCtx := server.NewServerContext(cfg, areas)

	// Routes
	mux := http.NewServeMux()
	mux.HandleFunc("/api/areas", srvCtx.HandleAreasList)
	mux.HandleFunc("/api/areas/", srvCtx.HandleArea)
	mux.HandleFunc("/api/contains", srvCtx.HandleContains)
	mux.HandleFunc("/api/extent", srvCtx.HandleExtent)

	handler := server.RequestLogger(mux)

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	log.Info().
		Str("addr", listenAddr).
		Int("areas_loaded", len(areas)).
		Msg("Web server started")

	if err := http.ListenAndServe(listenAddr, handler); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
