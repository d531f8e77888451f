// Package config handles configuration loading and shared data structures.
package config

import (
	"os"

	"github.com/woozymasta/geofence/internal/geo"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	Attribution string `yaml:"attribution,omitempty" json:"attribution,omitempty"`
	Areas       []Area `yaml:"areas" json:"areas"`
}

// Area is a named polygon. Exactly one of Polygon, Points or URL defines its shape.
type Area struct {
	Index *int `yaml:"index,omitempty" json:"index,omitempty"`

	// closed ring given directly in config.yaml
	Polygon geo.Ring `yaml:"polygon,omitempty" json:"-"`
	// rectangle around the extent of these positions
	Points []geo.Position `yaml:"points,omitempty" json:"-"`

	Properties geo.Properties `yaml:"properties,omitempty" json:"properties,omitempty"`

	Name    string   `yaml:"name" json:"name"`
	URL     string   `yaml:"url,omitempty" json:"-"`
	Aliases []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

// Source names the way the area shape is defined.
func (a Area) Source() string {
	switch {
	case len(a.Polygon) > 0:
		return "polygon"
	case len(a.Points) > 0:
		return "points"
	case a.URL != "":
		return "url"
	default:
		return ""
	}
}

// Validate checks that the area has a name and exactly one shape source.
func (a Area) Validate() error {
	if a.Name == "" {
		return errors.New("area name is required")
	}

	sources := 0
	if len(a.Polygon) > 0 {
		sources++
	}
	if len(a.Points) > 0 {
		sources++
	}
	if a.URL != "" {
		sources++
	}
	if sources != 1 {
		return errors.Errorf("area %q must define exactly one of polygon, points or url, got %d", a.Name, sources)
	}

	return nil
}

// Validate checks every area and that names and aliases are unique.
func (c *Config) Validate() error {
	seen := make(map[string]string)
	for _, a := range c.Areas {
		if err := a.Validate(); err != nil {
			return err
		}

		for _, name := range append([]string{a.Name}, a.Aliases...) {
			if owner, ok := seen[name]; ok {
				return errors.Errorf("name %q of area %q already used by area %q", name, a.Name, owner)
			}
			seen[name] = a.Name
		}
	}

	return nil
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	return Parse(data)
}

// Parse decodes and validates a YAML configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cfg, nil
}
