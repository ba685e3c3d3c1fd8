package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	lib "github.com/theoremus-urban-solutions/truckguide"
	"github.com/theoremus-urban-solutions/truckguide/config"
	"github.com/theoremus-urban-solutions/truckguide/geometry"
	"github.com/theoremus-urban-solutions/truckguide/internal"
	"github.com/theoremus-urban-solutions/truckguide/polyline"
	"github.com/theoremus-urban-solutions/truckguide/routing"
	"github.com/theoremus-urban-solutions/truckguide/trace"
)

func main() {
	mode := flag.String("mode", "replay", "decode|geojson|replay")
	configPath := flag.String("config", "", "config file (default: config.yml if present)")
	encoded := flag.String("polyline", "", "flexible polyline string (decode mode)")
	routePath := flag.String("route", "", "route response JSON file")
	tracePath := flag.String("trace", "", "GPS fix trace JSON file (replay mode)")
	roadClass := flag.String("roadClass", "", "highway|arterial|local (overrides config)")
	snapMode := flag.String("snap", "", "vertex|segment (overrides config)")
	logLevel := flag.String("logLevel", "", "debug|info|warn|error (overrides config)")
	flag.Parse()

	var err error
	if *configPath != "" {
		err = config.LoadAppConfig(*configPath)
	} else {
		err = config.LoadAppConfig()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Config
	if *roadClass != "" {
		cfg.Guidance.RoadClass = *roadClass
	}
	if *snapMode != "" {
		cfg.Guidance.SnapMode = *snapMode
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid flags: %v\n", err)
		os.Exit(2)
	}

	log, err := internal.NewLogger(cfg.Logging.Level, cfg.Logging.JSON)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	switch *mode {
	case "decode":
		err = runDecode(os.Stdout, *encoded)
	case "geojson":
		err = runGeoJSON(os.Stdout, cfg, *routePath, log)
	case "replay":
		err = runReplay(os.Stdout, cfg, *routePath, *tracePath, log)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Error("truckguide failed", zap.String("mode", *mode), zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func runDecode(w io.Writer, encoded string) error {
	enc := json.NewEncoder(w)
	for _, p := range polyline.Decode(encoded) {
		if err := enc.Encode(p); err != nil {
			return err
		}
	}
	return nil
}

func runGeoJSON(w io.Writer, cfg config.AppConfig, routePath string, log *zap.Logger) error {
	in, err := loadRoute(routePath, cfg)
	if err != nil {
		return err
	}
	data, err := geometry.NewBuilder(log).Build(in).FeatureCollection().MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func runReplay(w io.Writer, cfg config.AppConfig, routePath, tracePath string, log *zap.Logger) error {
	in, err := loadRoute(routePath, cfg)
	if err != nil {
		return err
	}
	if tracePath == "" {
		return fmt.Errorf("replay needs -trace")
	}
	fixes, err := trace.LoadFile(tracePath)
	if err != nil {
		return err
	}
	opts, err := cfg.Guidance.EngineOptions()
	if err != nil {
		return err
	}
	session, err := lib.NewSession(in, opts, log)
	if err != nil {
		return err
	}
	return replay(w, session, in, fixes, log)
}

func loadRoute(path string, cfg config.AppConfig) (geometry.Input, error) {
	if path == "" {
		return geometry.Input{}, fmt.Errorf("missing -route")
	}
	f, err := os.Open(path)
	if err != nil {
		return geometry.Input{}, err
	}
	defer f.Close()
	in, err := routing.ParseInput(f)
	if err != nil {
		return geometry.Input{}, fmt.Errorf("%s: %w", path, err)
	}
	if b := cfg.Fallback.Bearing; b != nil {
		in.FallbackBearing = *b
	}
	return in, nil
}

