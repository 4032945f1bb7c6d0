package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ecollajta/smarttwin/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultProcessYAML []byte

var (
	ErrUnknownStation = errors.New("unknown station")
	ErrInvalidBounds  = errors.New("station min_staff exceeds max_staff")
)

// DefaultProcessConfig returns the embedded reference line configuration.
func DefaultProcessConfig() domain.ProcessConfig {
	cfg, err := decodeProcessConfig(domain.ProcessConfig{}, defaultProcessYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded process config: %v", err))
	}
	return cfg
}

// LoadProcessConfig reads a YAML process config from path. An empty path
// returns the defaults.
func LoadProcessConfig(path string) (domain.ProcessConfig, error) {
	if path == "" {
		return DefaultProcessConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ProcessConfig{}, fmt.Errorf("reading process config: %w", err)
	}
	cfg, err := ParseProcessConfig(data)
	if err != nil {
		return domain.ProcessConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseProcessConfig decodes YAML over the defaults, so a document only
// needs the keys it changes. An explicit null clears a default.
func ParseProcessConfig(data []byte) (domain.ProcessConfig, error) {
	return decodeProcessConfig(DefaultProcessConfig(), data)
}

func decodeProcessConfig(base domain.ProcessConfig, data []byte) (domain.ProcessConfig, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&base); err != nil && !errors.Is(err, io.EOF) {
		return domain.ProcessConfig{}, fmt.Errorf("decoding process config: %w", err)
	}
	if err := validateStations(base); err != nil {
		return domain.ProcessConfig{}, err
	}
	return base, nil
}

func validateStations(cfg domain.ProcessConfig) error {
	for s, c := range cfg.Stations {
		if !domain.ValidStations[string(s)] {
			return fmt.Errorf("%w: %q", ErrUnknownStation, s)
		}
		if c.MinStaff != nil && c.MaxStaff != nil && *c.MinStaff > 0 && *c.MaxStaff > 0 && *c.MinStaff > *c.MaxStaff {
			return fmt.Errorf("%w: %s (%d > %d)", ErrInvalidBounds, s, *c.MinStaff, *c.MaxStaff)
		}
	}
	return nil
}
