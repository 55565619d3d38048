// Package config holds feature flags and tunables for the type layer,
// loadable from a YAML file the way the host project loads funxy.yaml.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// IsTestMode mirrors the host's config.IsTestMode: set once at process
// startup to get deterministic, normalized output from components that
// otherwise vary run to run (none currently do in this subsystem, but the
// flag is kept for parity with callers that flip it in TestMain).
var IsTestMode = false

// DefaultMaxFuncArgs is the arity cap enforced by the parser absent an
// overriding config file.
const DefaultMaxFuncArgs = 255

// Options are the tunables the parser and CLI consult.
type Options struct {
	// AllowFloat enables parsing of the 'float' scalar type. Hosts that
	// compile to a target without a distinct float representation can
	// disable it to get a clean parseError instead of a confusing downstream
	// failure.
	AllowFloat bool `yaml:"allowFloat"`

	// MaxFuncArgs caps the number of declared parameters (including a
	// trailing variadic) accepted by the func(...) parser.
	MaxFuncArgs int `yaml:"maxFuncArgs"`

	// ColorDiagnostics enables ANSI coloring of CLI diagnostic output.
	// Ignored when stdout is not a terminal; see cmd/typecheck.
	ColorDiagnostics bool `yaml:"colorDiagnostics"`
}

// Default returns the built-in defaults used when no config file is present.
func Default() Options {
	return Options{
		AllowFloat:       true,
		MaxFuncArgs:      DefaultMaxFuncArgs,
		ColorDiagnostics: true,
	}
}

// Load reads a YAML config file at path. A missing file is not an error:
// Load returns the built-in defaults. A present-but-malformed file is an
// error.
func Load(path string) (Options, error) {
	opts := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, err
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, err
	}
	return opts, nil
}
