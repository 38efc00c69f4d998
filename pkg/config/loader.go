package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/doksnet/pkg/errors"
	"github.com/arthur-debert/doksnet/pkg/logging"
)

const (
	// EnvPrefix prefixes environment overrides
	EnvPrefix = "DOKSNET_"

	// ProjectFileName is the per-project config file
	ProjectFileName = ".doksnet.toml"
)

// LoadOptions selects the config sources
type LoadOptions struct {
	// ProjectDir is searched for .doksnet.toml. Empty skips the project layer.
	ProjectDir string
	// UserFile overrides the user config path. Empty uses the XDG location.
	UserFile string
	// Overrides are applied last, keyed by dotted path (e.g. "output.format").
	Overrides map[string]interface{}
}

// UserConfigPath returns the XDG user config file location
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "doksnet", "config.toml")
}

// Default returns the embedded defaults alone
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(defaultsProvider{}, toml.Parser()); err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	cfg, err := decode(k)
	if err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	return cfg
}

// Load merges every layer and returns the validated configuration
func Load(opts LoadOptions) (*Config, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(defaultsProvider{}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config
	userFile := opts.UserFile
	if userFile == "" {
		userFile = UserConfigPath()
	}
	if err := loadFile(k, userFile); err != nil {
		return nil, err
	}

	// 3. Project config
	if opts.ProjectDir != "" {
		if err := loadFile(k, filepath.Join(opts.ProjectDir, ProjectFileName)); err != nil {
			return nil, err
		}
	}

	// 4. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 5. Explicit overrides (command line)
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := decode(k)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("store", cfg.Store.File).
		Int("preview", cfg.Preview.Limit).
		Str("format", cfg.Output.Format).
		Msg("Configuration loaded")
	return cfg, nil
}

func decode(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.ComposeDecodeHookFunc(mapstructure.StringToTimeDurationHookFunc()),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to decode configuration")
	}

	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Config file merged")
	return nil
}

// Validate checks field constraints
func Validate(cfg *Config) error {
	validate := validator.New()
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		fe := validationErrors[0]
		return errors.Newf(errors.ErrConfigValid, "invalid value %v for %s (%s)",
			fe.Value(), configKey(fe.Namespace()), fe.Tag()).
			WithDetail("key", configKey(fe.Namespace())).
			WithDetail("rule", fe.Tag())
	}
	return errors.Wrap(err, errors.ErrConfigValid, "invalid configuration")
}

// configKey turns "Config.Output.Format" into "output.format"
func configKey(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToLower(strings.Join(parts, "."))
}
