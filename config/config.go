package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/spanviz/builder"
	"github.com/katalvlaran/spanviz/control"
)

// Keys, as used in files, flags, and (upper-cased) environment variables.
const (
	KeySize             = "size"
	KeyShape            = "shape"
	KeySpeed            = "speed"
	KeyAlgorithm        = "algorithm"
	KeySeed             = "seed"
	KeyConnectionChance = "connection_chance"
	KeyWeights          = "weights"
	KeyLogLevel         = "log_level"
	KeyLogDevelopment   = "log_development"
)

// EnvPrefix prefixes every environment override: SPANVIZ_SIZE=30.
const EnvPrefix = "SPANVIZ"

// FileName is the config file looked up in the working directory when no
// explicit path is given.
const FileName = "spanviz"

// Defaults.
const (
	DefaultSize      = 20
	DefaultShape     = "grid"
	DefaultAlgorithm = "both"
	DefaultWeights   = builder.WeightsUniform
	DefaultLogLevel  = "info"
)

// ErrRead indicates the config file exists but could not be read or parsed.
var ErrRead = errors.New("config: cannot read config")

// Config is the validated configuration of one generate-and-run session.
type Config struct {
	Size             int     `mapstructure:"size" validate:"min=2,max=60"`
	Shape            string  `mapstructure:"shape" validate:"required,shape"`
	Speed            float64 `mapstructure:"speed" validate:"gt=0,lte=1"`
	Algorithm        string  `mapstructure:"algorithm" validate:"required,algorithm"`
	Seed             int64   `mapstructure:"seed"`
	ConnectionChance float64 `mapstructure:"connection_chance" validate:"gte=0,lte=1"`
	Weights          string  `mapstructure:"weights" validate:"required,weights"`
	LogLevel         string  `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogDevelopment   bool    `mapstructure:"log_development"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Size:             DefaultSize,
		Shape:            DefaultShape,
		Speed:            control.DefaultSpeed,
		Algorithm:        DefaultAlgorithm,
		ConnectionChance: builder.DefaultConnectionChance,
		Weights:          DefaultWeights,
		LogLevel:         DefaultLogLevel,
	}
}

// SetDefaults registers every default on v so environment variables and
// Unmarshal see all keys.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeySize, d.Size)
	v.SetDefault(KeyShape, d.Shape)
	v.SetDefault(KeySpeed, d.Speed)
	v.SetDefault(KeyAlgorithm, d.Algorithm)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyConnectionChance, d.ConnectionChance)
	v.SetDefault(KeyWeights, d.Weights)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogDevelopment, d.LogDevelopment)
}

// NewViper returns a viper instance with defaults and environment binding
// in place. A non-empty file is read immediately; otherwise spanviz.yaml is
// looked up in the working directory and silently skipped when absent.
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrRead, file, err)
		}

		return v, nil
	}

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: %w", ErrRead, err)
		}
	}

	return v, nil
}

// FromViper decodes v into a Config and validates it.
func FromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrRead, err)
	}
	cfg.Shape = strings.ToLower(strings.TrimSpace(cfg.Shape))
	cfg.Algorithm = strings.ToLower(strings.TrimSpace(cfg.Algorithm))
	cfg.Weights = strings.ToLower(strings.TrimSpace(cfg.Weights))
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load is NewViper followed by FromViper.
func Load(file string) (Config, error) {
	v, err := NewViper(file)
	if err != nil {
		return Config{}, err
	}

	return FromViper(v)
}
