package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolveYAML is a [kong.ConfigurationLoader] that reads flag defaults from a
// YAML configuration file. Flag names with hyphens (e.g., "log-level") may be
// written with underscores in the file (e.g., "log_level"). Command-line
// flags override config file values.
//
//	log_level: debug
//	log_format: text
//	log_pretty: true
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}

	dec := yaml.NewDecoder(r)

	if err := dec.Decode(&values); err != nil {
		if err == io.EOF {
			// Empty config file.
			return yamlConfig{}, nil
		}

		return nil, err
	}

	// Kong expects scalar values as strings.
	for key, val := range values {
		switch v := val.(type) {
		case int, int64, uint64, float64:
			values[key] = fmt.Sprint(v)
		}
	}

	return yamlConfig(values), nil
}

// yamlConfig implements [kong.Resolver] for YAML configs.
type yamlConfig map[string]any

// Validate implements [kong.Resolver].
func (r yamlConfig) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (r yamlConfig) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found; Kong falls back to the flag's default.
	return nil, nil
}
