package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// FileName is the config file looked up in the search path, without
	// extension.
	FileName = "adaptergen"
	// EnvPrefix prefixes environment overrides, e.g. ADAPTERGEN_OUTPUT.
	EnvPrefix = "ADAPTERGEN"
)

// Config represents the adaptergen CLI configuration.
type Config struct {
	Answers      string `mapstructure:"answers"`
	Output       string `mapstructure:"output"`
	TemplatesDir string `mapstructure:"templates_dir"`
	DryRun       bool   `mapstructure:"dry_run"`
	Force        bool   `mapstructure:"force"`
	Verbose      bool   `mapstructure:"verbose"`
	Interactive  bool   `mapstructure:"interactive"`
}

// flagKeys maps command line flag names to config keys.
var flagKeys = map[string]string{
	"answers":       "answers",
	"output":        "output",
	"templates-dir": "templates_dir",
	"dry-run":       "dry_run",
	"force":         "force",
	"verbose":       "verbose",
	"interactive":   "interactive",
}

// Option configures Load.
type Option func(*loader)

type loader struct {
	searchPaths []string
	configFile  string
}

// WithSearchPath adds a directory searched for adaptergen.yaml. Defaults to
// the working directory.
func WithSearchPath(dir string) Option {
	return func(l *loader) {
		if strings.TrimSpace(dir) != "" {
			l.searchPaths = append(l.searchPaths, dir)
		}
	}
}

// WithConfigFile reads an explicit config file instead of searching.
func WithConfigFile(path string) Option {
	return func(l *loader) {
		l.configFile = strings.TrimSpace(path)
	}
}

// Load resolves the configuration. Precedence from lowest to highest:
// defaults, config file, ADAPTERGEN_* environment, flags set on the command
// line. flags may be nil.
func Load(flags *pflag.FlagSet, options ...Option) (*Config, error) {
	l := &loader{}
	for _, opt := range options {
		if opt != nil {
			opt(l)
		}
	}

	v := viper.New()

	v.SetDefault("answers", "")
	v.SetDefault("output", ".")
	v.SetDefault("templates_dir", "")
	v.SetDefault("dry_run", false)
	v.SetDefault("force", false)
	v.SetDefault("verbose", false)
	v.SetDefault("interactive", false)

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		if len(l.searchPaths) == 0 {
			v.AddConfigPath(".")
		}
		for _, dir := range l.searchPaths {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("config: bind flag %q: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks option combinations that cannot work together.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("config: output directory must not be empty")
	}
	if c.DryRun && c.Force {
		return errors.New("config: --force has no effect with --dry-run")
	}
	return nil
}
