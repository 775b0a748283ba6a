package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds the settings that can come from a config file as well as from
// flags.
type config struct {
	// Format is the fmt verb used to print results.
	Format string `yaml:"format"`
	// Lines makes each line of an input file a separate expression.
	Lines bool `yaml:"lines"`
	// Echo prints the postfix form of each expression before its result.
	Echo bool `yaml:"echo"`
	// Dump writes the tokens of each expression to stderr.
	Dump bool `yaml:"dump"`
}

func defaults() config {
	return config{Format: "%g"}
}

// merge returns c with the settings whose flag names are in set taken from
// flags.
func (c config) merge(flags config, set map[string]bool) config {
	if set["fmt"] {
		c.Format = flags.Format
	}
	if set["n"] {
		c.Lines = flags.Lines
	}
	if set["echo"] {
		c.Echo = flags.Echo
	}
	if set["dump"] {
		c.Dump = flags.Dump
	}
	return c
}

// parseConfig reads YAML settings from r on top of the defaults. Unknown keys
// are errors so that typos don't go unnoticed.
func parseConfig(r io.Reader) (config, error) {
	cfg := defaults()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return config{}, err
	}
	if cfg.Format == "" {
		return config{}, errors.New("format must not be empty")
	}
	return cfg, nil
}

// readConfig parses the config file with the given name.
func readConfig(name string) (config, error) {
	f, err := os.Open(name)
	if err != nil {
		return config{}, err
	}
	defer f.Close()
	cfg, err := parseConfig(f)
	if err != nil {
		return config{}, fmt.Errorf("reading config %s: %w", name, err)
	}
	return cfg, nil
}
