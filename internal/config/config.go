// Package config loads run settings from an optional YAML file.
//
// Every key is optional. Command-line flags that are set explicitly take precedence over
// the file.
//
//	filter: _eq
//	continuous: false
//	out: samples.csv
//	verbose: true
//	percentiles: [0.5, 0.75, 0.9, 0.99, 1.0]
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shivanshkc/ctbench/pkg/ctbench"
)

// MaxFileSize is the largest config file accepted.
const MaxFileSize = 1024 * 1024

// File mirrors the YAML config file.
type File struct {
	Filter      string    `yaml:"filter"`
	Continuous  bool      `yaml:"continuous"`
	Out         string    `yaml:"out"`
	Verbose     bool      `yaml:"verbose"`
	Percentiles []float64 `yaml:"percentiles"`
}

// Load reads and validates the config file at path. Unknown keys are rejected.
func Load(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, fmt.Errorf("error reading config: %w", err)
	}
	if info.Size() > MaxFileSize {
		return File{}, fmt.Errorf("config %s is %d bytes, limit is %d", path, info.Size(), MaxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("error reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML config data. Empty data yields the zero File.
func Parse(data []byte) (File, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("error parsing config: %w", err)
	}

	if len(f.Percentiles) > 0 {
		if err := ctbench.BandTable(f.Percentiles).Validate(); err != nil {
			return File{}, fmt.Errorf("error in config percentiles: %w", err)
		}
	}
	return f, nil
}

// BandTable returns the configured percentile table, or the default table if none is set.
func (f File) BandTable() ctbench.BandTable {
	if len(f.Percentiles) == 0 {
		return ctbench.DefaultBandTable()
	}
	return ctbench.BandTable(f.Percentiles)
}
