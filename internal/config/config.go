// Package config resolves benchmark settings from command-line input and
// configuration files.
//
// YAML (.yaml, .yml) and CUE (.cue) files are accepted. Both are checked
// against the embedded CUE schema. Cycle counts are the exception: they are
// read leniently, exactly like the command-line argument.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

const (
	// DefaultCycles is used when no valid cycle count is given.
	DefaultCycles = 1000

	// MaxCycles is the largest accepted cycle count. Twenty units at this
	// count still fit a running order.
	MaxCycles = 100_000_000
)

// Cycles is a cycle count read from a configuration file. It decodes the
// way ParseCycles reads an argument, so "-5", "abc" and 0 all become
// DefaultCycles instead of failing the load.
type Cycles int

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Cycles) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: cycles must be a scalar", node.Line)
	}
	*c = Cycles(ParseCycles(node.Value))
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. Quoted numbers are accepted.
func (c *Cycles) UnmarshalJSON(data []byte) error {
	raw := string(data)
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		raw = s
	}
	*c = Cycles(ParseCycles(raw))
	return nil
}

// Config holds benchmark settings. Zero values mean "not set".
type Config struct {
	Cycles Cycles   `yaml:"cycles,omitempty" json:"cycles,omitempty"`
	Seed   *uint64  `yaml:"seed,omitempty" json:"seed,omitempty"`
	Mode   string   `yaml:"mode,omitempty" json:"mode,omitempty"`
	Units  []string `yaml:"units,omitempty" json:"units,omitempty"`
}

// ConfigError describes a configuration file that failed to load or validate.
type ConfigError struct {
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("config: %s", e.Message)
}

// ParseCycles reads a cycles-per-unit argument. Missing, non-numeric and
// out-of-range input all fall back to DefaultCycles; this never fails.
func ParseCycles(arg string) int {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 || n > MaxCycles {
		return DefaultCycles
	}
	return n
}

// EffectiveCycles returns c.Cycles, or DefaultCycles when unset or out of
// range.
func (c *Config) EffectiveCycles() int {
	if c.Cycles < 1 || c.Cycles > MaxCycles {
		return DefaultCycles
	}
	return int(c.Cycles)
}

// Load reads and validates a configuration file. The format is chosen by
// file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Message: fmt.Sprintf("read: %v", err)}
	}

	var cfg *Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err = parseYAML(data)
	case ".cue":
		cfg, err = parseCUE(path, data)
	default:
		return nil, &ConfigError{Path: path, Message: "unsupported extension: want .yaml, .yml or .cue"}
	}
	if err != nil {
		return nil, &ConfigError{Path: path, Message: err.Error()}
	}

	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Path: path, Message: err.Error()}
	}
	return cfg, nil
}

// parseYAML decodes with strict field checking so typos such as "cycle:"
// are reported instead of silently ignored.
func parseYAML(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	return &cfg, nil
}

func parseCUE(path string, data []byte) (*Config, error) {
	cctx := cuecontext.New()
	schema, err := compileSchema(cctx)
	if err != nil {
		return nil, err
	}

	v := cctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, firstCUEError(err)
	}
	unified := schema.Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, firstCUEError(err)
	}

	// Decoding through JSON lets Cycles apply its own fallback.
	data, err = unified.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("export CUE: %w", err)
	}
	var cfg Config
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode CUE: %w", err)
	}
	return &cfg, nil
}

// Validate checks c against the schema.
func (c *Config) Validate() error {
	cctx := cuecontext.New()
	schema, err := compileSchema(cctx)
	if err != nil {
		return err
	}

	v := cctx.Encode(c.fields())
	if err := v.Err(); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := schema.Unify(v).Validate(cue.Concrete(true)); err != nil {
		return firstCUEError(err)
	}

	seen := make(map[string]bool, len(c.Units))
	for _, name := range c.Units {
		if seen[name] {
			return fmt.Errorf("units: %q listed twice", name)
		}
		seen[name] = true
	}
	return nil
}

// fields returns only the settings that are set, so unset zero values are
// not checked against the schema's constraints.
func (c *Config) fields() map[string]any {
	m := make(map[string]any)
	if c.Cycles != 0 {
		m["cycles"] = int(c.Cycles)
	}
	if c.Seed != nil {
		m["seed"] = *c.Seed
	}
	if c.Mode != "" {
		m["mode"] = c.Mode
	}
	if c.Units != nil {
		m["units"] = c.Units
	}
	return m
}

func compileSchema(cctx *cue.Context) (cue.Value, error) {
	schema := cctx.CompileString(schemaCUE, cue.Filename("schema.cue")).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("compile config schema: %w", err)
	}
	return schema, nil
}

// firstCUEError keeps only the first of possibly many CUE errors.
func firstCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	return errs[0]
}
