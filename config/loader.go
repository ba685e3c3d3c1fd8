package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/truckguide/announce"
	"github.com/theoremus-urban-solutions/truckguide/guidance"
)

// Config is the global application configuration
var Config = Default()

// DefaultPaths are searched by LoadAppConfig when no path is given.
var DefaultPaths = []string{"config.yml", "./config/config.yml"}

// Default returns the configuration used when no file is present.
func Default() AppConfig {
	return AppConfig{
		Logging: LoggingConfig{Level: "info"},
		Guidance: GuidanceConfig{
			StrikeLimit: guidance.DefaultStrikeLimit,
			SnapMode:    string(guidance.SnapVertex),
			RoadClass:   "local",
		},
	}
}

// LoadAppConfig loads and validates the application configuration from the
// first readable path and stores it in Config. With no paths DefaultPaths are
// tried, and a missing file leaves the defaults in place.
func LoadAppConfig(paths ...string) error {
	explicit := len(paths) > 0
	if !explicit {
		paths = DefaultPaths
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			Config = Default()
			return nil
		}
		return err
	}
	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Parse decodes and validates YAML configuration, then fills defaults.
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	def := Default()
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
	if cfg.Guidance.StrikeLimit == 0 {
		cfg.Guidance.StrikeLimit = def.Guidance.StrikeLimit
	}
	if cfg.Guidance.SnapMode == "" {
		cfg.Guidance.SnapMode = def.Guidance.SnapMode
	}
	if cfg.Guidance.RoadClass == "" {
		cfg.Guidance.RoadClass = def.Guidance.RoadClass
	}
	return cfg, nil
}

// Validate checks the configuration against its field constraints. Call it
// again after applying overrides to a loaded configuration.
func (c AppConfig) Validate() error {
	return validator.New().Struct(c)
}

// EngineOptions converts the guidance section into engine options.
func (c GuidanceConfig) EngineOptions() (guidance.Options, error) {
	class, err := announce.ParseRoadClass(c.RoadClass)
	if err != nil {
		return guidance.Options{}, err
	}
	return guidance.Options{
		StrikeLimit:       c.StrikeLimit,
		SnapMode:          guidance.SnapMode(c.SnapMode),
		ContinuousReroute: c.ContinuousReroute,
		RoadClass:         class,
	}, nil
}
