package config

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	JSON  bool   `yaml:"json"`
}

// GuidanceConfig contains guidance engine tuning
type GuidanceConfig struct {
	StrikeLimit       int    `yaml:"strikeLimit" validate:"gte=0"`
	SnapMode          string `yaml:"snapMode" validate:"omitempty,oneof=vertex segment"`
	ContinuousReroute bool   `yaml:"continuousReroute"`
	RoadClass         string `yaml:"roadClass" validate:"omitempty,oneof=highway arterial local"`
}

// FallbackConfig controls degraded geometry synthesis
type FallbackConfig struct {
	// Bearing is used when the route response gives no arrival location.
	Bearing *float64 `yaml:"bearing" validate:"omitempty,gte=0,lt=360"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Guidance GuidanceConfig `yaml:"guidance"`
	Fallback FallbackConfig `yaml:"fallback"`
}
