// Package config loads generator configuration from a file, the environment
// and defaults.
package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"header-generator/internal/gen"
	"header-generator/internal/plan"
)

// Sentinel validation errors.
var (
	ErrEmptySuffix       = errors.New("file name suffix must not be empty")
	ErrInvalidIdentifier = errors.New("not a C++ identifier")
	ErrInvalidLogFormat  = errors.New("log format must be console or json")
)

// EnvPrefix prefixes environment overrides (HEADERGEN_OUTPUT_DIR, HEADERGEN_RUNTIME_NAMESPACE, ...).
const EnvPrefix = "HEADERGEN"

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config holds all configuration for header generation.
type Config struct {
	// Typesystem is the document to load; a CLI argument overrides it.
	Typesystem         string        `mapstructure:"typesystem"`
	Module             string        `mapstructure:"module"`
	Package            string        `mapstructure:"package"`
	OutputDir          string        `mapstructure:"output_dir"`
	LicenseFile        string        `mapstructure:"license_file"`
	WrapperSuffix      string        `mapstructure:"wrapper_suffix"`
	ModuleHeaderSuffix string        `mapstructure:"module_header_suffix"`
	Runtime            RuntimeConfig `mapstructure:"runtime"`
	Logging            LoggingConfig `mapstructure:"logging"`
}

// RuntimeConfig names the binding runtime's C++ surface.
type RuntimeConfig struct {
	Namespace  string `mapstructure:"namespace"`
	Header     string `mapstructure:"header"`
	LocalMacro string `mapstructure:"local_macro"`
	ObjectBase string `mapstructure:"object_base"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig loads configuration from file and environment variables. An
// empty path looks for header-generator.{yaml,toml,...} in the working
// directory; a missing file is not an error then.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("header-generator")
		viperCfg.AddConfigPath(".")
	}

	viperCfg.SetEnvPrefix(EnvPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viperCfg.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	var config Config
	if err := viperCfg.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := validateConfig(&config); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	defaults := gen.DefaultConfig()

	viperCfg.SetDefault("typesystem", "")
	viperCfg.SetDefault("module", "")
	viperCfg.SetDefault("package", "")
	viperCfg.SetDefault("output_dir", "generated")
	viperCfg.SetDefault("license_file", "")
	viperCfg.SetDefault("wrapper_suffix", defaults.Naming.WrapperSuffix)
	viperCfg.SetDefault("module_header_suffix", defaults.ModuleHeaderSuffix)

	viperCfg.SetDefault("runtime.namespace", defaults.RuntimeNamespace)
	viperCfg.SetDefault("runtime.header", defaults.RuntimeHeader)
	viperCfg.SetDefault("runtime.local_macro", defaults.LocalMacro)
	viperCfg.SetDefault("runtime.object_base", defaults.Naming.ObjectBase)

	viperCfg.SetDefault("logging.level", "info")
	viperCfg.SetDefault("logging.format", "console")
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.WrapperSuffix == "" {
		return errors.Wrap(ErrEmptySuffix, "wrapper_suffix")
	}

	if config.ModuleHeaderSuffix == "" {
		return errors.Wrap(ErrEmptySuffix, "module_header_suffix")
	}

	identifiers := []struct{ key, value string }{
		{"runtime.namespace", config.Runtime.Namespace},
		{"runtime.local_macro", config.Runtime.LocalMacro},
		{"runtime.object_base", config.Runtime.ObjectBase},
	}

	for _, id := range identifiers {
		if !identifierPattern.MatchString(id.value) {
			return errors.Wrapf(ErrInvalidIdentifier, "%s: %q", id.key, id.value)
		}
	}

	switch config.Logging.Format {
	case "console", "json":
	default:
		return errors.Wrapf(ErrInvalidLogFormat, "%q", config.Logging.Format)
	}

	return nil
}

// Generator converts the configuration into generator settings, reading
// the license file if one is configured.
func (c *Config) Generator() (gen.Config, error) {
	cfg := gen.Config{
		Module:             c.Module,
		Package:            c.Package,
		RuntimeNamespace:   c.Runtime.Namespace,
		RuntimeHeader:      c.Runtime.Header,
		LocalMacro:         c.Runtime.LocalMacro,
		ModuleHeaderSuffix: c.ModuleHeaderSuffix,
		Naming: plan.Options{
			WrapperSuffix: c.WrapperSuffix,
			ObjectBase:    c.Runtime.ObjectBase,
		},
	}

	if c.LicenseFile != "" {
		data, err := os.ReadFile(c.LicenseFile)
		if err != nil {
			return gen.Config{}, errors.Wrapf(err, "reading license file %s", c.LicenseFile)
		}

		cfg.License = string(data)
	}

	return cfg, nil
}

// JSONLogging reports whether logs should be JSON encoded.
func (c *Config) JSONLogging() bool {
	return c.Logging.Format == "json"
}
