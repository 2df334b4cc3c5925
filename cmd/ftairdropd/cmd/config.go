package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	appparams "github.com/babylonlabs-io/ftairdrop/app/params"
)

const (
	// EnvPrefix prefixes the environment variables overriding app.toml.
	EnvPrefix = "FTAIRDROP"

	appConfigName = "app"
	appConfigType = "toml"

	LogFormatJSON  = "json"
	LogFormatPlain = "plain"
)

// AppConfig is the node configuration read from <home>/config/app.toml.
type AppConfig struct {
	ChainID   string `mapstructure:"chain-id"`
	DBBackend string `mapstructure:"db-backend"`
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		ChainID:   appparams.DefaultChainID,
		DBBackend: string(dbm.GoLevelDBBackend),
		LogLevel:  zerolog.InfoLevel.String(),
		LogFormat: LogFormatPlain,
	}
}

func (c AppConfig) Validate() error {
	if c.ChainID == "" {
		return errors.New("chain-id cannot be empty")
	}
	switch dbm.BackendType(c.DBBackend) {
	case dbm.GoLevelDBBackend, dbm.MemDBBackend:
	default:
		return fmt.Errorf("unsupported db-backend %q", c.DBBackend)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log-level: %w", err)
	}
	if c.LogFormat != LogFormatJSON && c.LogFormat != LogFormatPlain {
		return fmt.Errorf("log-format must be %q or %q, got %q", LogFormatJSON, LogFormatPlain, c.LogFormat)
	}
	return nil
}

// Logger builds the node logger described by the config.
func (c AppConfig) Logger(w io.Writer) (log.Logger, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd())
	}
	opts := []log.Option{log.LevelOption(level), log.ColorOption(color)}
	if c.LogFormat == LogFormatJSON {
		opts = append(opts, log.OutputJSONOption())
	}
	return log.NewLogger(w, opts...), nil
}

func configDir(home string) string {
	return filepath.Join(home, "config")
}

func dataDir(home string) string {
	return filepath.Join(home, "data")
}

// setConfigDefaults registers the config file location, defaults and the
// environment overrides on v.
func setConfigDefaults(v *viper.Viper, home string) {
	def := DefaultAppConfig()
	v.SetDefault(flagChainID, def.ChainID)
	v.SetDefault(flagDBBackend, def.DBBackend)
	v.SetDefault(flagLogLevel, def.LogLevel)
	v.SetDefault(flagLogFormat, def.LogFormat)

	v.SetConfigName(appConfigName)
	v.SetConfigType(appConfigType)
	v.AddConfigPath(configDir(home))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// ReadConfig loads app.toml from home, if present, and applies environment
// and flag overrides bound to v.
func ReadConfig(v *viper.Viper, home string) (AppConfig, error) {
	setConfigDefaults(v, home)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, fmt.Errorf("failed to read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// WriteConfig writes cfg to <home>/config/app.toml.
func WriteConfig(home string, cfg AppConfig) error {
	if err := os.MkdirAll(configDir(home), 0o755); err != nil {
		return err
	}

	v := viper.New()
	v.Set(flagChainID, cfg.ChainID)
	v.Set(flagDBBackend, cfg.DBBackend)
	v.Set(flagLogLevel, cfg.LogLevel)
	v.Set(flagLogFormat, cfg.LogFormat)
	return v.WriteConfigAs(filepath.Join(configDir(home), appConfigName+"."+appConfigType))
}
