package server

import (
	"github.com/woozymasta/geofence/internal/config"
	"github.com/woozymasta/geofence/internal/processor"

	"github.com/rs/zerolog/log"
)

// ServerContext holds dependencies for request handlers.
// It is read-only once built and shared by all requests.
type ServerContext struct {
	Config       *config.Config
	Areas        []processor.Area
	NameResolver map[string]int
}

// NewServerContext indexes resolved areas by name and alias.
func NewServerContext(cfg *config.Config, areas []processor.Area) *ServerContext {
	log.Info().Int("config_areas_count", len(cfg.Areas)).Msg("Initializing server context")

	resolver := make(map[string]int, len(areas))
	for i, area := range areas {
		resolver[area.Name] = i
		for _, alias := range area.Aliases {
			if _, taken := resolver[alias]; taken {
				log.Warn().
					Str("area", area.Name).
					Str("alias", alias).
					Msg("Alias already taken, ignoring")
				continue
			}
			resolver[alias] = i
		}

		log.Debug().
			Str("area", area.Name).
			Strs("aliases", area.Aliases).
			Msg("Area added to context")
	}

	if len(areas) < len(cfg.Areas) {
		log.Warn().
			Int("configured", len(cfg.Areas)).
			Int("resolved", len(areas)).
			Msg("Some configured areas could not be resolved")
	}

	log.Info().
		Int("valid_areas_count", len(areas)).
		Msg("Server context initialized successfully")

	return &ServerContext{
		Config:       cfg,
		Areas:        areas,
		NameResolver: resolver,
	}
}

// lookup resolves an area by name or alias.
func (s *ServerContext) lookup(name string) (processor.Area, bool) {
	i, ok := s.NameResolver[name]
	if !ok {
		return processor.Area{}, false
	}
	return s.Areas[i], true
}
