package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/atcidulko/HW4-IB/internal/fastq"
)

// DefaultPath is read when no config path is given.
const DefaultPath = "config.json"

type Config struct {
	LogFile          string          `json:"log_file"`
	LogLevel         string          `json:"log_level"`
	OutputDir        string          `json:"output_dir"`
	GCBounds         json.RawMessage `json:"gc_bounds,omitempty"`
	LengthBounds     json.RawMessage `json:"length_bounds,omitempty"`
	QualityThreshold float64         `json:"quality_threshold"`
}

// Criteria converts the filter settings into fastq.Criteria. Bounds of an
// unexpected shape are dropped and fall back to the filter defaults.
func (c *Config) Criteria() fastq.Criteria {
	return fastq.Criteria{
		GC:               fastq.DecodeBound(c.GCBounds),
		Length:           fastq.DecodeBound(c.LengthBounds),
		QualityThreshold: c.QualityThreshold,
	}
}

// LoadConfig loads a JSON config from the given path. If path is empty, looks
// for ./config.json. A missing file is not an error: defaults are returned.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	defer f.Close()
	var c Config
	dec := json.NewDecoder(f)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
