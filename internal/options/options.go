package options

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Options are the tunables a user may set in an options file.
type Options struct {
	ErrorMarker string
	LogLevel    string
	LogFormat   string
}

// Defaults returns the built-in option values.
func Defaults() Options {
	return Options{
		ErrorMarker: "#ERR",
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// fileSchema is the top-level structure of an options file for decoding.
type fileSchema struct {
	Options *optionsBlock `hcl:"options,block"`
}

// optionsBlock mirrors the `options` block. Attributes are optional;
// unset ones keep their default.
type optionsBlock struct {
	ErrorMarker string `hcl:"error_marker,optional"`
	LogLevel    string `hcl:"log_level,optional"`
	LogFormat   string `hcl:"log_format,optional"`
}

// LoadFile parses the HCL options file at path and merges it over the
// defaults. Attribute expressions may refer to the process environment via
// the `env` map, e.g. `log_level = env.GRIDCALC_LOG_LEVEL`.
func LoadFile(path string) (Options, error) {
	opts := Defaults()

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return opts, fmt.Errorf("failed to parse options file %s: %w", path, diags)
	}

	var parsed fileSchema
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(), &parsed)
	if diags.HasErrors() {
		return opts, fmt.Errorf("failed to decode options file %s: %w", path, diags)
	}

	if parsed.Options == nil {
		return opts, nil
	}
	if parsed.Options.ErrorMarker != "" {
		opts.ErrorMarker = parsed.Options.ErrorMarker
	}
	if parsed.Options.LogLevel != "" {
		opts.LogLevel = parsed.Options.LogLevel
	}
	if parsed.Options.LogFormat != "" {
		opts.LogFormat = parsed.Options.LogFormat
	}
	return opts, nil
}

// evalContext builds the expression context for option values, exposing the
// process environment as the `env` map.
func evalContext() *hcl.EvalContext {
	envVars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			envVars[k] = cty.StringVal(v)
		}
	}

	env := cty.MapValEmpty(cty.String)
	if len(envVars) > 0 {
		env = cty.MapVal(envVars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}
