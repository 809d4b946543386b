// Package settings contains the run configuration of rocketsass.
package settings

import (
	"io/ioutil"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/Othello1111/rocketsass/pkg/compiler"
	"github.com/Othello1111/rocketsass/pkg/scan"
)

const (
	DefaultPath       = "./css/scss/"
	DefaultConfigFile = "rocketsass.yml"
)

// Options describes a single run. It's built once (defaults, config file,
// flags) and passed by value afterwards.
type Options struct {
	Path         string            `yaml:"path"`
	IgnorePrefix string            `yaml:"ignore"`
	Extensions   []string          `yaml:"extensions,omitempty"`
	Compiler     string            `yaml:"compiler"`
	Env          map[string]string `yaml:"env,omitempty"`
	DryRun       bool              `yaml:"dry"`
	Brotli       bool              `yaml:"brotli"`
	Progress     bool              `yaml:"progress"`
	Log          struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

var logLevels = map[string]zerolog.Level{
	"trace":   zerolog.TraceLevel,
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warn":    zerolog.WarnLevel,
	"warning": zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
}

// Defaults returns the options used when neither a config file nor flags
// override anything.
func Defaults() Options {
	opts := Options{
		Path:         DefaultPath,
		IgnorePrefix: scan.DefaultIgnorePrefix,
		Extensions:   append([]string(nil), scan.DefaultExtensions...),
		Compiler:     compiler.DefaultCommand,
	}
	opts.Log.Level = "info"
	return opts
}

// LoadFile decodes the YAML file at path on top of base. Keys missing from the
// file keep their value from base. If required is false, a missing file is
// not an error.
func LoadFile(path string, base Options, required bool) (Options, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if !required && eris.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return base, eris.Wrapf(err, "Could not open file %s.", path)
	}

	result := base
	result.Extensions = append([]string(nil), base.Extensions...)
	if base.Env != nil {
		result.Env = make(map[string]string, len(base.Env))
		for k, v := range base.Env {
			result.Env[k] = v
		}
	}
	err = yaml.Unmarshal(data, &result)
	if err != nil {
		return base, eris.Wrapf(err, "Failed to parse %s.", path)
	}

	return result, nil
}

// Validate verifies that all fields have valid values
func (o Options) Validate() error {
	if strings.TrimSpace(o.Path) == "" {
		return eris.New("Invalid value for path: must not be empty")
	}

	if strings.TrimSpace(o.Compiler) == "" {
		return eris.New("Invalid value for compiler: must not be empty")
	}

	if len(o.Extensions) == 0 {
		return eris.New("Invalid value for extensions: at least one extension is required")
	}

	for _, ext := range o.Extensions {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			return eris.Errorf("Invalid value for extensions: %q (must start with a dot)", ext)
		}
	}

	if _, ok := logLevels[o.Log.Level]; !ok {
		return eris.Errorf("Invalid value for log.level: %s", o.Log.Level)
	}

	return nil
}

// LogLevel converts the .Log.Level field to a zerolog.Level
func (o Options) LogLevel() zerolog.Level {
	level, ok := logLevels[o.Log.Level]
	if !ok {
		return zerolog.InfoLevel
	}
	return level
}

func (o Options) Filter() scan.Filter {
	return scan.Filter{
		IgnorePrefix: o.IgnorePrefix,
		Extensions:   o.Extensions,
	}
}
