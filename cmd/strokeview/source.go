package main

import (
	"flag"
	"fmt"

	"strokeview/internal/config"
	"strokeview/internal/drawing"
	"strokeview/internal/logger"
)

// sourceFlags are shared by every command that reads drawings.
type sourceFlags struct {
	config string
	api    string
	file   string
}

func (f *sourceFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.config, "config", config.DefaultPath, "viewer config file")
	fs.StringVar(&f.api, "api", "", "drawings API base URL (overrides config)")
	fs.StringVar(&f.file, "file", "", "read drawings from a JSON file instead of the API")
}

// load reads the config file, then applies the environment and the command line over it.
func (f *sourceFlags) load(width, height int) (config.Config, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return cfg, err
	}
	lookup, err := config.EnvLookup(config.EnvFile)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", config.EnvFile, err)
	}
	cfg.ApplyEnv(lookup)
	cfg.Resolve(config.Flags{APIURL: f.api, File: f.file, Width: width, Height: height})
	return cfg, nil
}

// openSource returns the file source when one is configured, the HTTP API otherwise.
func openSource(cfg config.Config, log *logger.Logger) (drawing.Source, error) {
	if cfg.File != "" {
		log.Logf("reading drawings from %s", cfg.File)
		fs, err := drawing.LoadFile(cfg.File)
		if err != nil {
			return nil, err
		}
		return fs, nil
	}
	log.Logf("reading drawings from %s", cfg.APIURL)
	return drawing.NewHTTPSource(cfg.APIURL), nil
}
